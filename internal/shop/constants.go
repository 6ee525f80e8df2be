package shop

// Log message constants
const (
	LogMsgPurchaseCalled    = "PurchaseOne called"
	LogMsgPurchaseCompleted = "Purchase completed"
	LogMsgCheckoutCalled    = "CheckoutCart called"
	LogMsgCheckoutCompleted = "Checkout completed"
)

// Error message constants
const (
	ErrMsgBeginPurchaseFailed  = "Failed to begin purchase transaction"
	ErrMsgCommitPurchaseFailed = "Failed to commit purchase transaction"
)

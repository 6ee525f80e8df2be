package metrics

// Metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"

	MetricNamePurchasesTotal   = "shop_purchases_total"
	MetricNameCheckoutsTotal   = "shop_checkouts_total"
	MetricNameWithdrawalsTotal = "shop_withdrawals_total"
	MetricNameCommandsTotal    = "bot_commands_total"
)

// Help texts
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request duration in seconds"
	HelpTextHTTPRequestsInFlight = "Number of HTTP requests currently being served"

	HelpTextPurchasesTotal   = "Total number of completed skin purchases"
	HelpTextCheckoutsTotal   = "Total number of cart checkouts by outcome"
	HelpTextWithdrawalsTotal = "Total number of confirmed withdrawals"
	HelpTextCommandsTotal    = "Total number of bot commands handled"
)

// Label names
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelRarity  = "rarity"
	LabelOutcome = "outcome"
	LabelCommand = "command"
)

// Checkout outcome label values
const (
	OutcomeCompleted    = "completed"
	OutcomeEmptyCart    = "empty_cart"
	OutcomeInsufficient = "insufficient_funds"
	OutcomeStockChanged = "stock_changed"
	OutcomeError        = "error"
)

// HTTPLatencyBuckets covers the ops endpoints; they are all sub-second
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1}

package bot

import (
	"fmt"
	"strconv"
	"strings"
)

// Action identifies what a message component does. Component custom_ids are
// decoded into a Command exactly once, at the interaction boundary; nothing
// past ParseCustomID ever inspects the raw string.
type Action string

const (
	ActionCatalogPage     Action = "catalog_page"
	ActionSkinView        Action = "skin_view"
	ActionBuy             Action = "buy"
	ActionCartAdd         Action = "cart_add"
	ActionCartRemove      Action = "cart_remove"
	ActionCartView        Action = "cart_view"
	ActionCartClear       Action = "cart_clear"
	ActionCheckout        Action = "checkout"
	ActionWithdraw        Action = "withdraw"
	ActionWithdrawConfirm Action = "withdraw_confirm"
	ActionInventoryPage   Action = "inventory_page"

	ActionAdminAddItem     Action = "admin_add_item"
	ActionAdminDeleteItem  Action = "admin_delete_item"
	ActionAdminEditBalance Action = "admin_edit_balance"
	ActionAdminListUsers   Action = "admin_list_users"
	ActionAdminStats       Action = "admin_stats"
	ActionAdminSearch      Action = "admin_search"
)

var knownActions = map[Action]struct{}{
	ActionCatalogPage:      {},
	ActionSkinView:         {},
	ActionBuy:              {},
	ActionCartAdd:          {},
	ActionCartRemove:       {},
	ActionCartView:         {},
	ActionCartClear:        {},
	ActionCheckout:         {},
	ActionWithdraw:         {},
	ActionWithdrawConfirm:  {},
	ActionInventoryPage:    {},
	ActionAdminAddItem:     {},
	ActionAdminDeleteItem:  {},
	ActionAdminEditBalance: {},
	ActionAdminListUsers:   {},
	ActionAdminStats:       {},
	ActionAdminSearch:      {},
}

// Command is a decoded component interaction. SkinID and Page are zero when
// the action does not use them.
type Command struct {
	Action Action
	SkinID int64
	Page   int
}

// CustomID encodes the command for a component custom_id
func (c Command) CustomID() string {
	return fmt.Sprintf("%s:%d:%d", c.Action, c.SkinID, c.Page)
}

// ParseCustomID decodes a component custom_id back into a Command
func ParseCustomID(raw string) (Command, error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 3 {
		return Command{}, fmt.Errorf("malformed custom_id %q", raw)
	}

	action := Action(parts[0])
	if _, ok := knownActions[action]; !ok {
		return Command{}, fmt.Errorf("unknown action %q", parts[0])
	}

	skinID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return Command{}, fmt.Errorf("bad skin id in custom_id %q", raw)
	}

	page, err := strconv.Atoi(parts[2])
	if err != nil {
		return Command{}, fmt.Errorf("bad page in custom_id %q", raw)
	}

	return Command{Action: action, SkinID: skinID, Page: page}, nil
}

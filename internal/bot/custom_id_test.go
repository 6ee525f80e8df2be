package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomID_RoundTrip(t *testing.T) {
	cases := []Command{
		{Action: ActionCatalogPage, Page: 3},
		{Action: ActionSkinView, SkinID: 42},
		{Action: ActionBuy, SkinID: 42, Page: 2},
		{Action: ActionCartAdd, SkinID: 42, Page: 1},
		{Action: ActionCheckout},
		{Action: ActionWithdrawConfirm, SkinID: 7},
		{Action: ActionAdminStats},
	}

	for _, want := range cases {
		got, err := ParseCustomID(want.CustomID())
		require.NoError(t, err, "custom_id %q should parse", want.CustomID())
		assert.Equal(t, want, got)
	}
}

func TestParseCustomID_UnknownAction(t *testing.T) {
	_, err := ParseCustomID("self_destruct:0:0")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown action")
}

func TestParseCustomID_Malformed(t *testing.T) {
	cases := []string{"", "catalog_page", "catalog_page:1", "catalog_page:1:2:3", "skin_view:abc:0", "catalog_page:0:abc"}
	for _, raw := range cases {
		_, err := ParseCustomID(raw)
		assert.Error(t, err, "custom_id %q should be rejected", raw)
	}
}

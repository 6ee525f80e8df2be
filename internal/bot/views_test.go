package bot

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m1kellaa/SkinShopBot_Go/internal/domain"
)

func viewButtons(components []discordgo.MessageComponent) map[string]discordgo.Button {
	buttons := map[string]discordgo.Button{}
	for _, c := range components {
		row, ok := c.(discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, rc := range row.Components {
			if btn, ok := rc.(discordgo.Button); ok {
				buttons[btn.Label] = btn
			}
		}
	}
	return buttons
}

// The skin card offers a direct purchase alongside the cart.
func TestSkinDetailView_BuyButton(t *testing.T) {
	b := &Bot{}
	skin := domain.Skin{
		ID:       7,
		Name:     "Dragon Blade",
		Price:    decimal.RequireFromString("12.50"),
		Rarity:   domain.RarityLegendary,
		Quantity: 3,
	}

	_, components := b.skinDetailView(skin, 1)

	buttons := viewButtons(components)
	buy, ok := buttons["Buy now"]
	require.True(t, ok, "the skin card should offer a direct buy")
	assert.False(t, buy.Disabled)

	want := Command{Action: ActionBuy, SkinID: 7, Page: 1}
	got, err := ParseCustomID(buy.CustomID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSkinDetailView_BuyDisabledWhenSoldOut(t *testing.T) {
	b := &Bot{}
	skin := domain.Skin{
		ID:       7,
		Name:     "Dragon Blade",
		Price:    decimal.RequireFromString("12.50"),
		Quantity: 0,
	}

	_, components := b.skinDetailView(skin, 0)

	buttons := viewButtons(components)
	require.Contains(t, buttons, "Buy now")
	assert.True(t, buttons["Buy now"].Disabled)
	require.Contains(t, buttons, "Add to cart")
	assert.True(t, buttons["Add to cart"].Disabled)
}

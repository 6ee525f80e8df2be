package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeItems(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return items
}

func TestPaginate_FirstPage(t *testing.T) {
	page, cur, total := Paginate(makeItems(12), 0)

	assert.Equal(t, []int{0, 1, 2, 3, 4}, page)
	assert.Equal(t, 0, cur)
	assert.Equal(t, 3, total)
}

func TestPaginate_LastPartialPage(t *testing.T) {
	page, cur, total := Paginate(makeItems(12), 2)

	assert.Equal(t, []int{10, 11}, page)
	assert.Equal(t, 2, cur)
	assert.Equal(t, 3, total)
}

// Stale paging buttons can carry any page number; the result clamps instead
// of erroring.
func TestPaginate_ClampsOutOfRange(t *testing.T) {
	page, cur, total := Paginate(makeItems(12), 99)
	assert.Equal(t, []int{10, 11}, page)
	assert.Equal(t, 2, cur)
	assert.Equal(t, 3, total)

	page, cur, _ = Paginate(makeItems(12), -5)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, page)
	assert.Equal(t, 0, cur)
}

func TestPaginate_Empty(t *testing.T) {
	page, cur, total := Paginate([]int{}, 0)

	assert.Empty(t, page)
	assert.Equal(t, 0, cur)
	assert.Equal(t, 1, total, "an empty list still has one (empty) page")
}

func TestPaginate_ExactMultiple(t *testing.T) {
	_, _, total := Paginate(makeItems(10), 0)

	assert.Equal(t, 2, total)
}

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyFilterAllReturnsInputUnchanged(t *testing.T) {
	items := []Item{menuItem(1, "beverages"), menuItem(2, "snacks"), menuItem(3, "beverages")}

	got := ApplyFilter(items, "category", FilterAll)

	require.Len(t, got, 3)
	for i := range items {
		assert.Equal(t, items[i].ID, got[i].ID)
	}
}

func TestApplyFilterByCategoryPreservesOrder(t *testing.T) {
	items := []Item{menuItem(1, "beverages"), menuItem(2, "snacks"), menuItem(3, "beverages")}

	got := ApplyFilter(items, "category", "beverages")

	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)
}

func TestApplyFilterIsCaseSensitive(t *testing.T) {
	items := []Item{menuItem(1, "Beverages")}

	assert.Empty(t, ApplyFilter(items, "category", "beverages"))
	assert.Len(t, ApplyFilter(items, "category", "Beverages"), 1)
}

func TestApplyFilterDoesNotMutateInput(t *testing.T) {
	items := []Item{menuItem(1, "beverages"), menuItem(2, "snacks")}

	_ = ApplyFilter(items, "category", "snacks")
	_ = ApplyFilter(items, "category", "beverages")

	require.Len(t, items, 2)
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, "beverages", items[0].Field("category"))
	assert.Equal(t, "2", items[1].ID)
}

func TestApplyFilterIsIdempotent(t *testing.T) {
	items := []Item{menuItem(1, "beverages"), menuItem(2, "snacks"), menuItem(3, "beverages")}

	once := ApplyFilter(items, "category", "beverages")
	twice := ApplyFilter(once, "category", "beverages")

	assert.Equal(t, once, twice)
}

func TestApplyFilterNoFilterField(t *testing.T) {
	items := []Item{menuItem(1, "beverages")}

	// Collections without a category axis return everything.
	assert.Len(t, ApplyFilter(items, "", "beverages"), 1)
}

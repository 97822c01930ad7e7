package product

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func catalogFixture() []Product {
	return []Product{
		{ID: 1, Name: "Barcode Scanner", Description: "handheld scanner", Category: "Electronics", SupplierName: "TechSource", Price: dec("24.99")},
		{ID: 2, Name: "Label Printer", Description: "thermal printer", Category: "Electronics", SupplierName: "TechSource", Price: dec("129.50")},
		{ID: 3, Name: "Shipping Boxes", Description: "corrugated boxes", Category: "Packaging", SupplierName: "PackRight", Price: dec("3.75")},
		{ID: 4, Name: "Office Chair", Description: "mesh task chair", Category: "Office Supplies", SupplierName: "Meridian", Price: dec("212.00")},
		{ID: 5, Name: "Pallet Wrap", Description: "stretch wrap film", Category: "Packaging", SupplierName: "PackRight", Price: dec("18.40")},
	}
}

func ids(ps []Product) []int {
	out := make([]int, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func TestFilterSearchIsCaseInsensitiveAcrossFields(t *testing.T) {
	ps := catalogFixture()

	byName := FilterAndSort(ps, Filter{Search: "SCANNER"})
	assert.Equal(t, []int{1}, ids(byName))

	byDescription := FilterAndSort(ps, Filter{Search: "thermal"})
	assert.Equal(t, []int{2}, ids(byDescription))

	bySupplier := FilterAndSort(ps, Filter{Search: "packright"})
	assert.Equal(t, []int{3, 5}, ids(bySupplier))
}

func TestFilterCategoryExactMatch(t *testing.T) {
	got := FilterAndSort(catalogFixture(), Filter{Category: "Packaging"})
	assert.Equal(t, []int{3, 5}, ids(got))
}

func TestFilterPriceBoundsAreInclusive(t *testing.T) {
	min, max := dec("18.40"), dec("129.50")
	got := FilterAndSort(catalogFixture(), Filter{PriceMin: &min, PriceMax: &max})
	assert.Equal(t, []int{1, 2, 5}, ids(got))
}

// Filters are AND-combined predicates, so applying them in one pass must
// match chaining two FilterAndSort calls.
func TestFilterComposition(t *testing.T) {
	ps := catalogFixture()
	min, max := dec("10"), dec("50")

	combined := FilterAndSort(ps, Filter{Category: "Electronics", PriceMin: &min, PriceMax: &max})
	chained := FilterAndSort(FilterAndSort(ps, Filter{Category: "Electronics"}), Filter{PriceMin: &min, PriceMax: &max})

	assert.ElementsMatch(t, ids(combined), ids(chained))
	assert.Equal(t, []int{1}, ids(combined))
}

func TestSortKeys(t *testing.T) {
	ps := catalogFixture()

	assert.Equal(t, []int{1, 2, 4, 5, 3}, ids(FilterAndSort(ps, Filter{Sort: SortName})))
	assert.Equal(t, []int{3, 5, 1, 2, 4}, ids(FilterAndSort(ps, Filter{Sort: SortPriceLow})))
	assert.Equal(t, []int{4, 2, 1, 5, 3}, ids(FilterAndSort(ps, Filter{Sort: SortPriceHigh})))
}

func TestSortIsStableOnEqualKeys(t *testing.T) {
	ps := []Product{
		{ID: 1, Name: "A", Price: dec("10.00")},
		{ID: 2, Name: "B", Price: dec("10.00")},
		{ID: 3, Name: "C", Price: dec("10.00")},
	}
	got := FilterAndSort(ps, Filter{Sort: SortPriceLow})
	assert.Equal(t, []int{1, 2, 3}, ids(got))
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	ps := catalogFixture()
	FilterAndSort(ps, Filter{Sort: SortPriceHigh, Search: "a"})
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(ps))
}

func TestFilterEmptyResultIsNotNil(t *testing.T) {
	got := FilterAndSort(catalogFixture(), Filter{Search: "no such product"})
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCategoriesDistinctFirstSeenOrder(t *testing.T) {
	got := Categories(catalogFixture())
	assert.Equal(t, []string{"Electronics", "Packaging", "Office Supplies"}, got)
}

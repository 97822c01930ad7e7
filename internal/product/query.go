package product

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

type SortKey string

const (
	SortName      SortKey = "name"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
)

// Filter describes one catalog view. Zero/nil fields are no-ops for their
// stage, so the zero Filter returns the input unchanged (sorted by nothing).
type Filter struct {
	Search   string
	Category string
	PriceMin *decimal.Decimal // inclusive
	PriceMax *decimal.Decimal // inclusive
	Sort     SortKey
}

// FilterAndSort derives the display list for a catalog view: search filter,
// then category, then price range (all AND-combined), then a stable sort by
// the sort key. The input slice is never mutated; the result is never nil.
func FilterAndSort(products []Product, f Filter) []Product {
	out := make([]Product, 0, len(products))

	q := strings.ToLower(strings.TrimSpace(f.Search))
	for _, p := range products {
		if q != "" && !matchesSearch(p, q) {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.PriceMin != nil && p.Price.LessThan(*f.PriceMin) {
			continue
		}
		if f.PriceMax != nil && p.Price.GreaterThan(*f.PriceMax) {
			continue
		}
		out = append(out, p)
	}

	switch f.Sort {
	case SortName:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price.LessThan(out[j].Price) })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price.GreaterThan(out[j].Price) })
	}
	return out
}

// matchesSearch mirrors the storefront search box: name, description and
// supplier name, case-insensitive substring.
func matchesSearch(p Product, q string) bool {
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.SupplierName), q)
}

// Categories returns the distinct categories in first-seen order, feeding
// the category filter sidebar.
func Categories(products []Product) []string {
	seen := make(map[string]bool, len(products))
	out := make([]string, 0, len(products))
	for _, p := range products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out
}

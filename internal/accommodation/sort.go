package accommodation

import (
	"math"
	"sort"
)

// SortOption names an ordering strategy for an already-filtered collection.
type SortOption string

const (
	SortRecommended SortOption = "recommended"
	SortPriceAsc    SortOption = "price-asc"
	SortPriceDesc   SortOption = "price-desc"
	SortRating      SortOption = "rating"
)

// ValidSortOption returns true if s is a known sort option.
func ValidSortOption(s string) bool {
	switch SortOption(s) {
	case SortRecommended, SortPriceAsc, SortPriceDesc, SortRating:
		return true
	}
	return false
}

// Sort returns a new slice ordered per opt. The input is not mutated and the
// sort is stable: records that compare equal keep their relative input order.
// Unknown options return the input order unchanged.
//
// A NaN price or rating is ordered as the lowest possible value, so malformed
// records sink to the cheap/worst end instead of breaking the comparator.
func Sort(accs []*Accommodation, opt SortOption) []*Accommodation {
	sorted := make([]*Accommodation, len(accs))
	copy(sorted, accs)

	switch opt {
	case SortRecommended:
		// Popular listings first, then by rating.
		sort.SliceStable(sorted, func(i, j int) bool {
			if sorted[i].IsPopular != sorted[j].IsPopular {
				return sorted[i].IsPopular
			}
			return numOrLowest(sorted[i].Rating) > numOrLowest(sorted[j].Rating)
		})
	case SortPriceAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return numOrLowest(sorted[i].PricePerNight) < numOrLowest(sorted[j].PricePerNight)
		})
	case SortPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return numOrLowest(sorted[i].PricePerNight) > numOrLowest(sorted[j].PricePerNight)
		})
	case SortRating:
		sort.SliceStable(sorted, func(i, j int) bool {
			return numOrLowest(sorted[i].Rating) > numOrLowest(sorted[j].Rating)
		})
	}

	return sorted
}

// numOrLowest maps NaN to the lowest orderable value.
func numOrLowest(f float64) float64 {
	if math.IsNaN(f) {
		return math.Inf(-1)
	}
	return f
}

package accommodation

import "strings"

// PriceRange bounds the nightly price, inclusive on both ends.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterOptions is a set of independent, optional predicates. A record passes
// only when every specified predicate holds; nil fields impose no constraint.
//
// SearchQuery is a pointer because presence matters beyond the text itself:
// whenever it is set (even to the empty string) the filter is considered to be
// running on a public search surface and drafts are excluded.
type FilterOptions struct {
	SearchQuery   *string     `json:"search_query,omitempty"`
	Islands       []string    `json:"islands,omitempty"`
	Locations     []string    `json:"locations,omitempty"`
	Types         []string    `json:"types,omitempty"`
	PriceRange    *PriceRange `json:"price_range,omitempty"`
	Facilities    []string    `json:"facilities,omitempty"`
	MinStars      *int        `json:"min_stars,omitempty"`
	Organizations []string    `json:"organizations,omitempty"`
}

// Filter reduces accs to the records matching opts. The input is never
// mutated and survivors keep their relative order. Records that fail to
// satisfy a specified predicate because a field is missing are dropped
// rather than raising an error.
func Filter(accs []*Accommodation, opts FilterOptions) []*Accommodation {
	out := make([]*Accommodation, 0, len(accs))
	for _, a := range accs {
		if a == nil {
			continue
		}
		if matches(a, opts) {
			out = append(out, a)
		}
	}
	return out
}

func matches(a *Accommodation, opts FilterOptions) bool {
	// Public search surfaces never show drafts.
	if opts.SearchQuery != nil && !a.Published() {
		return false
	}

	if opts.SearchQuery != nil && *opts.SearchQuery != "" {
		q := strings.ToLower(*opts.SearchQuery)
		if !strings.Contains(strings.ToLower(a.Name), q) &&
			!strings.Contains(strings.ToLower(a.Location), q) &&
			!strings.Contains(strings.ToLower(a.Description), q) {
			return false
		}
	}

	if len(opts.Islands) > 0 && !containsFold(opts.Islands, a.Island) {
		return false
	}
	if len(opts.Locations) > 0 && !containsFold(opts.Locations, a.Location) {
		return false
	}
	if len(opts.Types) > 0 && !containsFold(opts.Types, a.Type) {
		return false
	}

	if pr := opts.PriceRange; pr != nil {
		// Written positively so a NaN price fails closed.
		if !(a.PricePerNight >= pr.Min && a.PricePerNight <= pr.Max) {
			return false
		}
	}

	// Every requested facility must be present (AND semantics).
	for _, want := range opts.Facilities {
		if !containsFold(a.Facilities, want) {
			return false
		}
	}

	if opts.MinStars != nil && a.Stars < *opts.MinStars {
		return false
	}

	if len(opts.Organizations) > 0 && !containsFold(opts.Organizations, a.Organization) {
		return false
	}

	return true
}

// containsFold reports whether set contains s, ignoring case.
func containsFold(set []string, s string) bool {
	for _, member := range set {
		if strings.EqualFold(member, s) {
			return true
		}
	}
	return false
}

package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/canariagids/canariagids/internal/accommodation"
)

type listFlags struct {
	search        string
	islands       []string
	locations     []string
	types         []string
	facilities    []string
	organizations []string
	minPrice      float64
	maxPrice      float64
	minStars      int
	sort          string
	page          int
	pageSize      int
	all           bool
}

func newListCmd() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accommodations",
		Long:  "Filter, sort and paginate the accommodation listings the way the public site does. Use --all to include drafts.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(flags)
		},
	}

	cmd.Flags().StringVar(&flags.search, "search", "", "search name, location and description")
	cmd.Flags().StringSliceVar(&flags.islands, "island", nil, "filter by island (repeatable)")
	cmd.Flags().StringSliceVar(&flags.locations, "location", nil, "filter by location (repeatable)")
	cmd.Flags().StringSliceVar(&flags.types, "type", nil, "filter by accommodation type (repeatable)")
	cmd.Flags().StringSliceVar(&flags.facilities, "facility", nil, "require a facility (repeatable, all must match)")
	cmd.Flags().StringSliceVar(&flags.organizations, "organization", nil, "filter by travel organization (repeatable)")
	cmd.Flags().Float64Var(&flags.minPrice, "min-price", 0, "minimum price per night")
	cmd.Flags().Float64Var(&flags.maxPrice, "max-price", 0, "maximum price per night (0 = no limit)")
	cmd.Flags().IntVar(&flags.minStars, "min-stars", 0, "minimum star rating (3-5)")
	cmd.Flags().StringVar(&flags.sort, "sort", "recommended", "sort order (recommended|price-asc|price-desc|rating)")
	cmd.Flags().IntVar(&flags.page, "page", 1, "page number")
	cmd.Flags().IntVar(&flags.pageSize, "page-size", accommodation.DefaultPageSize, "page size")
	cmd.Flags().BoolVar(&flags.all, "all", false, "include drafts (admin view)")

	return cmd
}

func runList(flags listFlags) error {
	if !accommodation.ValidSortOption(flags.sort) {
		return fmt.Errorf("invalid sort option: %s", flags.sort)
	}

	repo, database, err := newAccommodationRepo()
	if err != nil {
		return err
	}
	defer closeDB(database)

	opts := accommodation.FilterOptions{
		Islands:       flags.islands,
		Locations:     flags.locations,
		Types:         flags.types,
		Facilities:    flags.facilities,
		Organizations: flags.organizations,
	}
	// The public view sets the search query even when empty, which is what
	// hides drafts. --all leaves it unset unless there is search text.
	if !flags.all || flags.search != "" {
		opts.SearchQuery = &flags.search
	}
	if flags.minPrice > 0 || flags.maxPrice > 0 {
		pr := accommodation.PriceRange{Min: flags.minPrice, Max: math.Inf(1)}
		if flags.maxPrice > 0 {
			pr.Max = flags.maxPrice
		}
		opts.PriceRange = &pr
	}
	if flags.minStars > 0 {
		opts.MinStars = &flags.minStars
	}

	accs, err := repo.List()
	if err != nil {
		return err
	}

	filtered := accommodation.Filter(accs, opts)
	sorted := accommodation.Sort(filtered, accommodation.SortOption(flags.sort))
	page := accommodation.Paginate(sorted, flags.page, flags.pageSize)

	if isJSON() {
		return printJSON(page)
	}

	return printAccommodationTable(page)
}

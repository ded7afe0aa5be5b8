package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/canariagids/canariagids/internal/accommodation"
)

func newAddCmd() *cobra.Command {
	var (
		a         accommodation.Accommodation
		homeOrder int
		publish   bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an accommodation",
		Long:  "Add a new accommodation listing. New listings start as drafts unless --publish is given.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.Status = accommodation.StatusDraft
			if publish {
				a.Status = accommodation.StatusPublished
			}
			if homeOrder > 0 {
				a.HomePageOrder = &homeOrder
			}
			return runAdd(&a)
		},
	}

	cmd.Flags().StringVar(&a.Name, "name", "", "display name (required)")
	cmd.Flags().StringVar(&a.Slug, "slug", "", "URL slug (default: derived from name)")
	cmd.Flags().StringVar(&a.Island, "island", "", "island")
	cmd.Flags().StringVar(&a.Location, "location", "", "location on the island")
	cmd.Flags().StringVar(&a.Description, "description", "", "description")
	cmd.Flags().StringVar(&a.ImageURL, "image-url", "", "image URL")
	cmd.Flags().StringVar(&a.ImageAlt, "image-alt", "", "image alt text")
	cmd.Flags().StringVar(&a.Type, "type", "Hotel", "accommodation type (Hotel|Resort|Appartement|Villa|Bungalow)")
	cmd.Flags().Float64Var(&a.PricePerNight, "price", 0, "price per night")
	cmd.Flags().Float64Var(&a.Rating, "rating", 1, "guest rating (1-10)")
	cmd.Flags().IntVar(&a.ReviewCount, "reviews", 0, "review count")
	cmd.Flags().IntVar(&a.Stars, "stars", 3, "star rating (3-5)")
	cmd.Flags().StringSliceVar(&a.Facilities, "facility", nil, "facility (repeatable)")
	cmd.Flags().StringVar(&a.Organization, "organization", "", "travel organization")
	cmd.Flags().BoolVar(&a.IsPopular, "popular", false, "mark as popular")
	cmd.Flags().IntVar(&homeOrder, "home-order", 0, "home page position (1-6, 0 = not featured)")
	cmd.Flags().BoolVar(&publish, "publish", false, "publish immediately instead of saving as draft")

	if err := cmd.MarkFlagRequired("name"); err != nil {
		panic(err)
	}

	return cmd
}

func runAdd(a *accommodation.Accommodation) error {
	repo, database, err := newAccommodationRepo()
	if err != nil {
		return err
	}
	defer closeDB(database)

	saved, err := accommodation.NewService(repo).Save(a)
	if err != nil {
		return fmt.Errorf("adding accommodation: %w", err)
	}

	if isJSON() {
		return printJSON(saved)
	}

	fmt.Println("Accommodation added.")
	printAccommodationSummary(saved)
	return nil
}

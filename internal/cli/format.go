package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/canariagids/canariagids/internal/accommodation"
	"github.com/canariagids/canariagids/internal/auth"
	"github.com/canariagids/canariagids/internal/island"
)

// printJSON marshals v as indented JSON and writes it to stdout.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printAccommodationSummary prints a single accommodation in text format.
func printAccommodationSummary(a *accommodation.Accommodation) {
	fmt.Printf("%s (%s)\n", a.Name, a.ID)
	fmt.Printf("  Slug:         %s\n", a.Slug)
	fmt.Printf("  Island:       %s\n", a.Island)
	fmt.Printf("  Location:     %s\n", a.Location)
	fmt.Printf("  Type:         %s\n", a.Type)
	fmt.Printf("  Price/night:  €%.0f\n", a.PricePerNight)
	fmt.Printf("  Rating:       %.1f (%d reviews)\n", a.Rating, a.ReviewCount)
	fmt.Printf("  Stars:        %s\n", strings.Repeat("★", a.Stars))
	fmt.Printf("  Organization: %s\n", a.Organization)
	fmt.Printf("  Status:       %s\n", a.Status)
	if len(a.Facilities) > 0 {
		fmt.Printf("  Facilities:   %s\n", strings.Join(a.Facilities, ", "))
	}
	if a.IsPopular {
		fmt.Println("  Popular:      yes")
	}
	if a.HomePageOrder != nil {
		fmt.Printf("  Home page:    position %d\n", *a.HomePageOrder)
	}
	if a.Description != "" {
		fmt.Printf("  Description:  %s\n", a.Description)
	}
}

// printAccommodationTable prints a page of accommodations as a formatted table.
func printAccommodationTable(page accommodation.Page) error {
	if page.TotalItems == 0 {
		fmt.Println("No accommodations found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tNAME\tISLAND\tTYPE\tPRICE\tRATING\tSTARS\tSTATUS"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	if _, err := fmt.Fprintln(w, "--\t----\t------\t----\t-----\t------\t-----\t------"); err != nil {
		return fmt.Errorf("writing table separator: %w", err)
	}

	for _, a := range page.Items {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t€%.0f\t%.1f\t%d\t%s\n",
			a.ID, a.Name, a.Island, a.Type, a.PricePerNight, a.Rating, a.Stars, a.Status,
		); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	fmt.Printf("\nPage %d of %d (%d results)\n", page.PageNumber, page.TotalPages, page.TotalItems)
	return nil
}

// printIslandTable prints islands as a formatted table.
func printIslandTable(islands []*island.Island) error {
	if len(islands) == 0 {
		fmt.Println("No islands found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tNAME\tSLUG\tACTIVE"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}

	for _, i := range islands {
		active := "yes"
		if !i.IsActive {
			active = "no"
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", i.ID, i.Name, i.Slug, active); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	return w.Flush()
}

// printAPIKeyTable prints API keys as a formatted table.
func printAPIKeyTable(keys []auth.APIKey) error {
	if len(keys) == 0 {
		fmt.Println("No API keys.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tNAME\tPREFIX\tCREATED\tLAST USED"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}

	for _, k := range keys {
		lastUsed := "never"
		if k.LastUsedAt != nil {
			lastUsed = k.LastUsedAt.Format("2006-01-02 15:04")
		}
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s…\t%s\t%s\n",
			k.ID, k.Name, k.KeyPrefix, k.CreatedAt.Format("2006-01-02"), lastUsed,
		); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	return w.Flush()
}

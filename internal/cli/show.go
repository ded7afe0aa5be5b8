package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/canariagids/canariagids/internal/accommodation"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id|slug>",
		Short: "Show accommodation details",
		Long:  "Show full details for an accommodation, looked up by ID or slug.",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	repo, database, err := newAccommodationRepo()
	if err != nil {
		return err
	}
	defer closeDB(database)

	a, err := repo.GetByID(args[0])
	if errors.Is(err, accommodation.ErrNotFound) {
		a, err = repo.GetBySlug(args[0])
	}
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(a)
	}

	printAccommodationSummary(a)
	return nil
}

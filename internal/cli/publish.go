package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/canariagids/canariagids/internal/accommodation"
)

func newPublishCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "publish <id>",
		Short: "Publish an accommodation",
		Long:  "Mark an accommodation as published so it appears on public listing surfaces.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetStatus(args[0], accommodation.StatusPublished)
		},
	}
}

func newUnpublishCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unpublish <id>",
		Short: "Unpublish an accommodation",
		Long:  "Move an accommodation back to draft so it disappears from public listing surfaces.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetStatus(args[0], accommodation.StatusDraft)
		},
	}
}

func runSetStatus(id string, status accommodation.Status) error {
	repo, database, err := newAccommodationRepo()
	if err != nil {
		return err
	}
	defer closeDB(database)

	a, err := accommodation.NewService(repo).SetStatus(id, status)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(a)
	}

	fmt.Printf("%s is now %s\n", a.Name, a.Status)
	return nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove an accommodation",
		Long:  "Permanently remove an accommodation listing.",
		Args:  cobra.ExactArgs(1),
		RunE:  runRemove,
	}
}

func runRemove(cmd *cobra.Command, args []string) error {
	repo, database, err := newAccommodationRepo()
	if err != nil {
		return err
	}
	defer closeDB(database)

	if err := repo.Delete(args[0]); err != nil {
		return err
	}

	if isJSON() {
		return printJSON(map[string]interface{}{"id": args[0], "removed": true})
	}

	fmt.Printf("Removed accommodation %s\n", args[0])
	return nil
}

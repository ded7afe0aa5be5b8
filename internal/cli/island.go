package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/canariagids/canariagids/internal/island"
)

func newIslandCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "island",
		Short: "Manage islands",
		Long:  "List, add, activate, deactivate and remove islands.",
	}

	cmd.AddCommand(
		newIslandListCmd(),
		newIslandAddCmd(),
		newIslandActivateCmd(),
		newIslandDeactivateCmd(),
		newIslandRemoveCmd(),
	)

	return cmd
}

func newIslandListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List islands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIslandList(all)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include deactivated islands")

	return cmd
}

func runIslandList(all bool) error {
	database, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(database)

	islands, err := island.NewRepository(database).List(!all)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(islands)
	}

	return printIslandTable(islands)
}

func newIslandAddCmd() *cobra.Command {
	var slugFlag string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an island",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIslandAdd(args[0], slugFlag)
		},
	}

	cmd.Flags().StringVar(&slugFlag, "slug", "", "URL slug (default: derived from name)")

	return cmd
}

func runIslandAdd(name, slug string) error {
	database, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(database)

	i := &island.Island{Name: name, Slug: slug, IsActive: true}
	saved, err := island.NewRepository(database).Save(i)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(saved)
	}

	fmt.Printf("Added island %s (%s)\n", saved.Name, saved.ID)
	return nil
}

func newIslandActivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "activate <id>",
		Short: "Show an island on public surfaces",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIslandSetActive(args[0], true)
		},
	}
}

func newIslandDeactivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deactivate <id>",
		Short: "Hide an island from public surfaces",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIslandSetActive(args[0], false)
		},
	}
}

func runIslandSetActive(id string, active bool) error {
	database, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(database)

	if err := island.NewRepository(database).SetActive(id, active); err != nil {
		return err
	}

	state := "active"
	if !active {
		state = "inactive"
	}
	fmt.Printf("Island %s is now %s\n", id, state)
	return nil
}

func newIslandRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove an island",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIslandRemove(args[0])
		},
	}
}

func runIslandRemove(id string) error {
	database, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(database)

	if err := island.NewRepository(database).Delete(id); err != nil {
		return err
	}

	fmt.Printf("Removed island %s\n", id)
	return nil
}

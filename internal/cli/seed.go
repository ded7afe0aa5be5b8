package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/canariagids/canariagids/internal/accommodation"
	"github.com/canariagids/canariagids/internal/island"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the initial content set",
		Long:  "Load the launch content: the initial accommodation listings and the seven Canary Islands. Fails if the database already has content.",
		Args:  cobra.NoArgs,
		RunE:  runSeed,
	}
}

func runSeed(cmd *cobra.Command, args []string) error {
	database, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(database)

	accCount, err := accommodation.Seed(accommodation.NewRepository(database))
	if err != nil {
		return fmt.Errorf("seeding accommodations: %w", err)
	}

	islCount, err := island.Seed(island.NewRepository(database))
	if err != nil {
		return fmt.Errorf("seeding islands: %w", err)
	}

	fmt.Printf("Seeded %d accommodations and %d islands.\n", accCount, islCount)
	return nil
}

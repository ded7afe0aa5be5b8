// Package cli defines the cobra command tree for canariagids.
package cli

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/canariagids/canariagids/internal/accommodation"
	"github.com/canariagids/canariagids/internal/db"
)

var (
	flagFormat string
	flagDB     string
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "cgids",
		Short:         "Manage Canary Islands accommodation listings",
		Long:          "Back-office tool for the canariagids travel site. Manage accommodation listings and islands, seed content, issue API keys, and run the JSON API server.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&flagDB, "db", "", "SQLite database path (default: ~/.canariagids/canariagids.db)")

	root.AddCommand(
		newListCmd(),
		newShowCmd(),
		newAddCmd(),
		newPublishCmd(),
		newUnpublishCmd(),
		newRemoveCmd(),
		newIslandCmd(),
		newSeedCmd(),
		newServeCmd(),
		newAPIKeyCmd(),
		newVersionCmd(),
	)

	return root
}

// openDB opens the SQLite database using the --db flag or default path.
func openDB() (*sql.DB, error) {
	path := flagDB
	if path == "" {
		var err error
		path, err = db.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return db.Open(path)
}

// newAccommodationRepo opens the database and wraps it in a repository.
// The caller owns the returned database handle.
func newAccommodationRepo() (*accommodation.Repository, *sql.DB, error) {
	database, err := openDB()
	if err != nil {
		return nil, nil, err
	}
	return accommodation.NewRepository(database), database, nil
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}

// closeDB closes the database, logging any error to stderr.
func closeDB(database *sql.DB) {
	if err := database.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: closing database: %v\n", err)
	}
}

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/canariagids/canariagids/internal/auth"
)

func newAPIKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apikey",
		Short: "Manage admin API keys",
		Long:  "Create, list and revoke the API keys that guard the admin API endpoints.",
	}

	cmd.AddCommand(
		newAPIKeyCreateCmd(),
		newAPIKeyListCmd(),
		newAPIKeyRevokeCmd(),
	)

	return cmd
}

func newAPIKeyCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create an API key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAPIKeyCreate(args[0])
		},
	}
}

func runAPIKeyCreate(name string) error {
	database, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(database)

	raw, key, err := auth.NewAPIKeyStore(database).Create(name)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(map[string]interface{}{"id": key.ID, "name": key.Name, "key": raw})
	}

	fmt.Printf("Created API key %q (id %d).\n", key.Name, key.ID)
	fmt.Println("Store it now, it is shown only once:")
	fmt.Println(raw)
	return nil
}

func newAPIKeyListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List API keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAPIKeyList()
		},
	}
}

func runAPIKeyList() error {
	database, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(database)

	keys, err := auth.NewAPIKeyStore(database).List()
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(keys)
	}

	return printAPIKeyTable(keys)
}

func newAPIKeyRevokeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "revoke <id>",
		Short: "Revoke an API key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid key ID: %s", args[0])
			}
			return runAPIKeyRevoke(id)
		},
	}
}

func runAPIKeyRevoke(id int64) error {
	database, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(database)

	if err := auth.NewAPIKeyStore(database).Delete(id); err != nil {
		return err
	}

	fmt.Printf("Revoked API key %d\n", id)
	return nil
}

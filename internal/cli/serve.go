package cli

import (
	"github.com/spf13/cobra"

	"github.com/canariagids/canariagids/internal/logging"
	"github.com/canariagids/canariagids/internal/web"
)

func newServeCmd() *cobra.Command {
	var port int
	var dev bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the JSON API server",
		Long:  "Start the HTTP server exposing the public listing API and the admin API.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, port, dev)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "port to listen on (default 8080, or config file)")
	cmd.Flags().BoolVar(&dev, "dev", false, "dev mode: human-readable logs")

	return cmd
}

func runServe(cmd *cobra.Command, port int, dev bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if port == 0 {
		port = cfg.Port
	}
	if port == 0 {
		port = 8080
	}
	if flagDB == "" && cfg.DBPath != "" {
		flagDB = cfg.DBPath
	}
	if !cmd.Flags().Changed("dev") {
		dev = cfg.DevMode
	}

	logging.Setup(dev)

	database, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(database)

	srv := web.NewServer(database, cfg.PageSize)
	return srv.ListenAndServe(port)
}

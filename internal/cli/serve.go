package cli

import (
	"os/signal"
	"syscall"

	"storefront/internal/infra/db"
	"storefront/internal/server"

	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, gdb, err := openDB()
			if err != nil {
				return err
			}
			defer closeDB(gdb)

			if migrate {
				if err := db.Migrate(gdb); err != nil {
					return err
				}
			}

			e, err := buildServer(cfg, gdb)
			if err != nil {
				return err
			}

			logger.Infof("listening on %s (tax_rate=%s strict_stock=%t)", cfg.Addr(), cfg.TaxRate, cfg.StrictStock)
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return server.Start(ctx, e, cfg)
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", false, "run migrations before starting")
	return cmd
}

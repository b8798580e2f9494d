package cli

import (
	"storefront/internal/infra/db"

	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, gdb, err := openDB()
			if err != nil {
				return err
			}
			defer closeDB(gdb)

			if err := db.Migrate(gdb); err != nil {
				return err
			}
			cmd.Println("migrated")
			return nil
		},
	}
}

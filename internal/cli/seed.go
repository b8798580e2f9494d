package cli

import (
	"fmt"

	"storefront/internal/infra/db"
	infraRepo "storefront/internal/infra/repository"
	"storefront/internal/seed"

	"github.com/spf13/cobra"
)

func newSeedCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load categories, models and stock from a YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, gdb, err := openDB()
			if err != nil {
				return err
			}
			defer closeDB(gdb)

			if file == "" {
				file = cfg.CatalogFile
			}
			if file == "" {
				return fmt.Errorf("--file or CATALOG_FILE is required")
			}

			logger.Infof("seeding from %s", file)
			f, err := seed.Load(file)
			if err != nil {
				return err
			}
			if err := db.Migrate(gdb); err != nil {
				return err
			}

			res, err := seed.Apply(cmd.Context(), infraRepo.NewProductGormRepository(gdb), f)
			if err != nil {
				return err
			}
			cmd.Printf("seeded %d categories, %d series, %d models\n", res.Categories, res.Series, res.Models)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "catalog YAML file (default: CATALOG_FILE)")
	return cmd
}

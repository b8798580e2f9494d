package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand は storefront コマンド（serve / migrate / seed）
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "storefront",
		Short:         "Online storefront (catalog, cart, checkout)",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newServeCommand(),
		newMigrateCommand(),
		newSeedCommand(),
	)
	return root
}

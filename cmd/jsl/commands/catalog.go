package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and convert library catalogs",
	}

	list := &cobra.Command{
		Use:   "list [catalog]",
		Short: "List the installed libraries in catalog order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			format, _ := cmd.Flags().GetString("format")
			return c.app.ListCatalog(cmd.Context(), path, format, cmd.OutOrStdout())
		},
	}
	list.Flags().StringP("format", "f", "text", "Output format: text or yaml")

	imp := &cobra.Command{
		Use:   "import <source> <catalog.db>",
		Short: "Copy a catalog into a SQLite catalog database",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.ImportCatalog(cmd.Context(), args[0], args[1])
		},
	}

	cmd.AddCommand(list, imp)
	return cmd
}

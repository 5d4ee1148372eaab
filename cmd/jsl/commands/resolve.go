package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/jsl/internal/app"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [page.yaml...]",
		Short: "Resolve the scripts of recorded page requests",
		Long: "Runs one request cycle per page file and prints the resulting script manifest " +
			"and diagnostics. Pages are resolved concurrently.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return nil
			}
			catalogPath, _ := cmd.Flags().GetString("catalog")
			format, _ := cmd.Flags().GetString("format")
			concurrency, _ := cmd.Flags().GetInt("concurrency")

			return c.app.Resolve(cmd.Context(), args, app.ResolveOptions{
				CatalogPath: catalogPath,
				Format:      format,
				Concurrency: concurrency,
				Out:         cmd.OutOrStdout(),
			})
		},
	}
	cmd.Flags().StringP("catalog", "c", "", "Catalog file (.yaml) or SQLite database (default from settings)")
	cmd.Flags().StringP("format", "f", "", "Output format: auto, text, json or html (default from settings)")
	cmd.Flags().IntP("concurrency", "j", 0, "Pages resolved in parallel (default: number of CPUs)")
	return cmd
}

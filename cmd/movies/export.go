package cmd

import (
	"fmt"

	"github.com/kerbaras/movies/pkg/integrations"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export matching movies as an EPUB catalog",
	Long:  "Write the movies matching the given filters, in display order, to an EPUB file",
	Run: func(cmd *cobra.Command, args []string) {
		out, _ := cmd.Flags().GetString("out")
		title, _ := cmd.Flags().GetString("title")
		if out == "" {
			out = cfg.Export.Dir
		}

		controller, err := filteredController(cmd)
		cobra.CheckErr(err)

		path, err := integrations.NewEPubBuilder(out).Export(title, controller.Movies())
		if err != nil {
			cobra.CheckErr(fmt.Errorf("export failed: %w", err))
		}

		fmt.Printf("📖 Exported %d movies to %s\n", len(controller.Movies()), path)
	},
}

func init() {
	addFilterFlags(exportCmd)
	exportCmd.Flags().StringP("out", "o", "", "Output directory (defaults to export.dir)")
	exportCmd.Flags().StringP("title", "t", "Movies", "Catalog title, also used as the file name")
}

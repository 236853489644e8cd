package cmd

import (
	"fmt"
	"log"

	"github.com/kerbaras/movies/pkg/data"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Store the built-in catalog in the library database",
	Run: func(cmd *cobra.Command, args []string) {
		force, _ := cmd.Flags().GetBool("force")

		repo := data.NewDuckDBRepository()
		defer repo.Close()

		count, err := repo.CountMovies()
		cobra.CheckErr(err)
		if count > 0 && !force {
			log.Printf("library already has %d movies, use --force to replace them", count)
			return
		}

		movies := data.InitializeMovies()
		if err := repo.ReplaceMovies(movies); err != nil {
			cobra.CheckErr(fmt.Errorf("seed failed: %w", err))
		}
		fmt.Printf("🌱 Stored %d movies in %s\n", len(movies), cfg.Database.Path)
	},
}

func init() {
	seedCmd.Flags().BoolP("force", "f", false, "Replace movies already in the library")
}

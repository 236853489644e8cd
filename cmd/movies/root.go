package cmd

import (
	"log"
	"os"

	"github.com/kerbaras/movies/pkg/app"
	"github.com/kerbaras/movies/pkg/config"
	"github.com/kerbaras/movies/pkg/data"
	"github.com/kerbaras/movies/pkg/integrations"
	"github.com/kerbaras/movies/pkg/services"
	"github.com/kerbaras/movies/pkg/sources"
	"github.com/spf13/cobra"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "movies",
	Short: "A terminal movie browser",
	Long:  "Browse, filter and sort a movie collection with a TUI and CLI",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		data.DBPath = cfg.Database.Path
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		// Launch TUI by default
		controller, err := services.LoadMovieController(provider())
		cobra.CheckErr(err)

		a := app.NewApp(controller, integrations.NewEPubBuilder(cfg.Export.Dir))
		if err := a.Run(); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	log.SetFlags(0)
	log.SetPrefix("movies: ")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(genresCmd)
}

// provider picks the master list source from configuration.
func provider() sources.Provider {
	if cfg.Library.Static {
		return sources.NewStatic()
	}
	return sources.NewLibrary(data.NewDuckDBRepository(), cfg.Library.Seed)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package cmd

import (
	"fmt"

	"github.com/kerbaras/movies/pkg/data"
	"github.com/kerbaras/movies/pkg/services"
	"github.com/spf13/cobra"
)

// addFilterFlags registers the flags shared by list and export.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("query", "q", "", "Match title or description (case-insensitive)")
	cmd.Flags().StringP("genre", "g", "", "Only movies of this genre")
	cmd.Flags().StringP("year", "y", "", "Only movies released in this year")
	cmd.Flags().StringP("rating", "r", "", "Only movies rated at least this")
	cmd.Flags().StringP("sort", "s", "none", "Title order: none, asc or desc")
}

// filteredController loads the master list and applies the filter flags to it.
func filteredController(cmd *cobra.Command) (*services.MovieController, error) {
	query, _ := cmd.Flags().GetString("query")
	genreName, _ := cmd.Flags().GetString("genre")
	year, _ := cmd.Flags().GetString("year")
	rating, _ := cmd.Flags().GetString("rating")
	order, _ := cmd.Flags().GetString("sort")

	genre, err := data.ParseGenre(genreName)
	if err != nil {
		return nil, err
	}

	controller, err := services.LoadMovieController(provider())
	if err != nil {
		return nil, err
	}
	if err := controller.ApplyFilters(query, genre, year, rating); err != nil {
		return nil, err
	}

	switch order {
	case "", "none":
	case "asc":
		controller.SortByTitle()
	case "desc":
		controller.SortByTitle()
		controller.SortByTitle()
	default:
		return nil, fmt.Errorf("invalid sort order %q: use none, asc or desc", order)
	}

	return controller, nil
}

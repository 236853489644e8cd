package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List movies matching the given filters",
	Long:  "Display movies in a formatted table, optionally filtered and sorted by title",
	Run: func(cmd *cobra.Command, args []string) {
		controller, err := filteredController(cmd)
		cobra.CheckErr(err)

		movies := controller.Movies()
		if len(movies) == 0 {
			fmt.Println("🎬 No movies match. Try 'movies list' without filters.")
			return
		}

		columns := []table.Column{
			{Title: "Title", Width: 32},
			{Title: "Year", Width: 6},
			{Title: "Rating", Width: 6},
			{Title: "Genres", Width: 40},
		}

		rows := []table.Row{}
		for _, movie := range movies {
			genres := make([]string, len(movie.Genres))
			for i, g := range movie.Genres {
				genres[i] = g.String()
			}
			rows = append(rows, table.Row{
				truncateString(movie.Title, 30),
				fmt.Sprintf("%d", movie.ReleaseYear),
				fmt.Sprintf("%.1f", movie.Rating),
				truncateString(strings.Join(genres, ", "), 38),
			})
		}

		t := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithFocused(false),
			table.WithHeight(len(rows)),
		)

		s := table.DefaultStyles()
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true)
		s.Selected = s.Selected.
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(false)
		t.SetStyles(s)

		fmt.Printf("\n🎬 %d of %d movies (sort: %s)\n\n", len(movies), len(controller.AllMovies()), controller.SortedState())
		fmt.Println(t.View())
	},
}

func init() {
	addFilterFlags(listCmd)
}

func truncateString(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

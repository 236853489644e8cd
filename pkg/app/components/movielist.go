package components

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/movies/pkg/app/styles"
	"github.com/kerbaras/movies/pkg/data"
)

// cardHeight is the number of lines a rendered card takes, borders included.
const cardHeight = 5

type MovieList struct {
	Items         []data.Movie
	SelectedIndex int
	Width         int
	Height        int
}

func NewMovieList() *MovieList {
	return &MovieList{
		Items:         []data.Movie{},
		SelectedIndex: 0,
		Width:         80,
		Height:        20,
	}
}

// SetItems replaces the list and moves the selection back to the top.
func (m *MovieList) SetItems(items []data.Movie) {
	m.Items = items
	m.SelectedIndex = 0
}

func (m *MovieList) Next() {
	if len(m.Items) == 0 {
		return
	}
	m.SelectedIndex++
	if m.SelectedIndex >= len(m.Items) {
		m.SelectedIndex = 0
	}
}

func (m *MovieList) Prev() {
	if len(m.Items) == 0 {
		return
	}
	m.SelectedIndex--
	if m.SelectedIndex < 0 {
		m.SelectedIndex = len(m.Items) - 1
	}
}

func (m *MovieList) Selected() *data.Movie {
	if len(m.Items) == 0 || m.SelectedIndex >= len(m.Items) {
		return nil
	}
	return &m.Items[m.SelectedIndex]
}

// window returns the [start, end) range of items that fit on screen,
// keeping the selection visible.
func (m *MovieList) window() (int, int) {
	visible := m.Height / cardHeight
	if visible < 1 {
		visible = 1
	}
	if visible >= len(m.Items) {
		return 0, len(m.Items)
	}
	start := m.SelectedIndex - visible/2
	if start < 0 {
		start = 0
	}
	if start+visible > len(m.Items) {
		start = len(m.Items) - visible
	}
	return start, start + visible
}

func (m *MovieList) View() string {
	if len(m.Items) == 0 {
		emptyMsg := styles.MutedStyle.Render("No movies match the current filters")
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, emptyMsg)
	}

	var b strings.Builder
	start, end := m.window()

	for i := start; i < end; i++ {
		movie := m.Items[i]
		cardStyle := styles.CardStyle
		if i == m.SelectedIndex {
			cardStyle = styles.ActiveCardStyle
		}

		title := styles.TitleStyle.UnsetMarginBottom().Render(movie.Title)
		year := styles.MutedStyle.Render(fmt.Sprintf("(%d)", movie.ReleaseYear))
		rating := styles.RatingStyle(movie.Rating).Render(fmt.Sprintf("★ %.1f", movie.Rating))
		header := lipgloss.JoinHorizontal(lipgloss.Top, title, " ", year, "  ", rating)

		genres := make([]string, len(movie.Genres))
		for j, g := range movie.Genres {
			genres[j] = g.String()
		}

		desc := movie.Description
		if limit := m.Width - 10; limit > 3 && utf8.RuneCountInString(desc) > limit {
			desc = string([]rune(desc)[:limit-3]) + "..."
		}

		cardContent := lipgloss.JoinVertical(
			lipgloss.Left,
			header,
			styles.GenreStyle.Render(strings.Join(genres, " • ")),
			styles.TextStyle.Render(desc),
		)

		card := cardStyle.Width(m.Width - 4).Render(cardContent)
		b.WriteString(card)
		b.WriteString("\n")
	}

	if start > 0 || end < len(m.Items) {
		b.WriteString(styles.MutedStyle.Render(fmt.Sprintf("%d–%d of %d", start+1, end, len(m.Items))))
		b.WriteString("\n")
	}

	return b.String()
}

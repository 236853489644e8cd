package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/movies/pkg/app/components"
	"github.com/kerbaras/movies/pkg/app/styles"
	"github.com/kerbaras/movies/pkg/data"
	"github.com/kerbaras/movies/pkg/integrations"
	"github.com/kerbaras/movies/pkg/services"
)

type field int

const (
	queryField field = iota
	genreField
	yearField
	ratingField
	fieldCount
)

// HomeScreen is the filter form plus the movie list. All user actions go
// through the controller; the list is redrawn from its change events.
type HomeScreen struct {
	controller *services.MovieController
	exporter   integrations.Exporter

	query  textinput.Model
	year   textinput.Model
	rating textinput.Model
	// genreIndex 0 means no genre filter; i selects data.Genres()[i-1].
	genreIndex int
	focus      field

	movieList *components.MovieList
	status    string
	err       error

	width  int
	height int
}

func newInput(placeholder string, limit, width int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = width
	return ti
}

func NewHomeScreen(controller *services.MovieController, exporter integrations.Exporter) *HomeScreen {
	s := &HomeScreen{
		controller: controller,
		exporter:   exporter,
		query:      newInput("Search title or description...", 100, 36),
		year:       newInput("Year", 4, 6),
		rating:     newInput("Min rating", 4, 10),
		movieList:  components.NewMovieList(),
	}
	s.query.Focus()

	s.movieList.SetItems(controller.Movies())
	controller.OnChange(s.movieList.SetItems)

	return s
}

func (s *HomeScreen) Init() tea.Cmd {
	return textinput.Blink
}

// Genre is the genre currently picked in the selector.
func (s *HomeScreen) Genre() data.Genre {
	if s.genreIndex == 0 {
		return ""
	}
	return data.Genres()[s.genreIndex-1]
}

func (s *HomeScreen) cycleGenre(delta int) {
	n := len(data.Genres()) + 1
	s.genreIndex = ((s.genreIndex+delta)%n + n) % n
}

func (s *HomeScreen) setFocus(f field) tea.Cmd {
	s.focus = f
	s.query.Blur()
	s.year.Blur()
	s.rating.Blur()

	switch f {
	case queryField:
		return s.query.Focus()
	case yearField:
		return s.year.Focus()
	case ratingField:
		return s.rating.Focus()
	}
	return nil
}

func (s *HomeScreen) applyFilters() {
	s.err = s.controller.ApplyFilters(s.query.Value(), s.Genre(), s.year.Value(), s.rating.Value())
	if s.err == nil {
		s.status = fmt.Sprintf("%d movies match", len(s.controller.Movies()))
	}
}

func (s *HomeScreen) reset() {
	s.query.SetValue("")
	s.year.SetValue("")
	s.rating.SetValue("")
	s.genreIndex = 0
	s.err = nil
	s.controller.Reset()
	s.status = "Filters cleared"
}

func (s *HomeScreen) sort() {
	s.controller.SortByTitle()
	s.err = nil
	s.status = fmt.Sprintf("Sorted %s by title", s.controller.SortedState())
}

func (s *HomeScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.movieList.Width = msg.Width - 4
		s.movieList.Height = msg.Height - 14
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return s, tea.Quit
		case "enter":
			s.applyFilters()
			return s, nil
		case "ctrl+s":
			s.sort()
			return s, nil
		case "ctrl+r":
			s.reset()
			return s, nil
		case "ctrl+e":
			return s, s.export()
		case "tab":
			return s, s.setFocus((s.focus + 1) % fieldCount)
		case "shift+tab":
			return s, s.setFocus((s.focus + fieldCount - 1) % fieldCount)
		case "up":
			s.movieList.Prev()
			return s, nil
		case "down":
			s.movieList.Next()
			return s, nil
		case "left", "right":
			if s.focus == genreField {
				if msg.String() == "left" {
					s.cycleGenre(-1)
				} else {
					s.cycleGenre(1)
				}
				return s, nil
			}
		}

	case exportedMsg:
		s.err = msg.err
		if msg.err == nil {
			s.status = fmt.Sprintf("Exported to %s", msg.path)
		}
		return s, nil
	}

	var cmd tea.Cmd
	switch s.focus {
	case queryField:
		s.query, cmd = s.query.Update(msg)
	case yearField:
		s.year, cmd = s.year.Update(msg)
	case ratingField:
		s.rating, cmd = s.rating.Update(msg)
	}
	return s, cmd
}

func (s *HomeScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	header := styles.TitleStyle.Render("🎬 Movies")

	render := func(f field, view string) string {
		if s.focus == f {
			return styles.FocusedInputStyle.Render(view)
		}
		return styles.InputStyle.Render(view)
	}
	genre := fmt.Sprintf("◀ %-15s ▶", s.Genre())
	form := lipgloss.JoinHorizontal(lipgloss.Top,
		render(queryField, s.query.View()),
		render(genreField, genre),
		render(yearField, s.year.View()),
		render(ratingField, s.rating.View()),
	)

	var statusLine string
	switch {
	case s.err != nil:
		statusLine = styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err))
	case s.status != "":
		statusLine = styles.StatusOK.Render(s.status)
	default:
		statusLine = styles.MutedStyle.Render(fmt.Sprintf("%d movies", len(s.movieList.Items)))
	}

	help := styles.HelpStyle.Render(strings.Join([]string{
		"enter: filter",
		"ctrl+s: " + s.controller.SortLabel(),
		"ctrl+r: clear",
		"ctrl+e: export",
		"tab: next field",
		"←/→: genre",
		"↑/↓: navigate",
		"esc: quit",
	}, " • "))

	return fmt.Sprintf("%s\n%s\n%s\n\n%s%s", header, form, statusLine, s.movieList.View(), help)
}

type exportedMsg struct {
	path string
	err  error
}

func (s *HomeScreen) export() tea.Cmd {
	movies := s.controller.Movies()
	title := s.exportTitle()
	return func() tea.Msg {
		if s.exporter == nil {
			return exportedMsg{err: fmt.Errorf("export is not configured")}
		}
		path, err := s.exporter.Export(title, movies)
		return exportedMsg{path: path, err: err}
	}
}

// exportTitle names the export after the active filters.
func (s *HomeScreen) exportTitle() string {
	parts := []string{"Movies"}
	if q := strings.TrimSpace(s.query.Value()); q != "" {
		parts = append(parts, q)
	}
	if g := s.Genre(); g != "" {
		parts = append(parts, g.String())
	}
	if y := services.ParseReleaseYear(s.year.Value()); y > 0 {
		parts = append(parts, fmt.Sprint(y))
	}
	if r := services.ParseRating(s.rating.Value()); r > 0 {
		parts = append(parts, fmt.Sprintf("rated %g+", r))
	}
	return strings.Join(parts, " - ")
}

package components

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/kerbaras/movies/pkg/data"
)

func threeMovies() []data.Movie {
	return []data.Movie{
		{ID: "1", Title: "Movie 1"},
		{ID: "2", Title: "Movie 2"},
		{ID: "3", Title: "Movie 3"},
	}
}

func TestNewMovieList(t *testing.T) {
	list := NewMovieList()

	if list == nil {
		t.Fatal("Expected movie list to be created")
	}

	if list.SelectedIndex != 0 {
		t.Errorf("Expected SelectedIndex 0, got %d", list.SelectedIndex)
	}

	if len(list.Items) != 0 {
		t.Errorf("Expected 0 items, got %d", len(list.Items))
	}
}

func TestSetItemsResetsSelection(t *testing.T) {
	list := NewMovieList()

	list.SetItems(threeMovies())
	list.SelectedIndex = 2

	list.SetItems(threeMovies()[:1])

	if len(list.Items) != 1 {
		t.Errorf("Expected 1 item, got %d", len(list.Items))
	}
	if list.SelectedIndex != 0 {
		t.Errorf("Expected SelectedIndex to be reset to 0, got %d", list.SelectedIndex)
	}
}

func TestNext(t *testing.T) {
	list := NewMovieList()
	list.SetItems(threeMovies())

	list.Next()
	if list.SelectedIndex != 1 {
		t.Errorf("Expected SelectedIndex 1, got %d", list.SelectedIndex)
	}

	list.Next()
	if list.SelectedIndex != 2 {
		t.Errorf("Expected SelectedIndex 2, got %d", list.SelectedIndex)
	}

	// Should wrap around
	list.Next()
	if list.SelectedIndex != 0 {
		t.Errorf("Expected SelectedIndex to wrap to 0, got %d", list.SelectedIndex)
	}
}

func TestPrev(t *testing.T) {
	list := NewMovieList()
	list.SetItems(threeMovies())

	// Should wrap around when at start
	list.Prev()
	if list.SelectedIndex != 2 {
		t.Errorf("Expected SelectedIndex to wrap to 2, got %d", list.SelectedIndex)
	}

	list.Prev()
	if list.SelectedIndex != 1 {
		t.Errorf("Expected SelectedIndex 1, got %d", list.SelectedIndex)
	}
}

func TestNextPrevEmptyList(t *testing.T) {
	list := NewMovieList()

	// Should not panic with empty list
	list.Next()
	list.Prev()

	if list.SelectedIndex != 0 {
		t.Errorf("Expected SelectedIndex to remain 0, got %d", list.SelectedIndex)
	}
}

func TestSelected(t *testing.T) {
	list := NewMovieList()

	if list.Selected() != nil {
		t.Error("Expected nil for empty list")
	}

	list.SetItems(threeMovies())

	selected := list.Selected()
	if selected == nil {
		t.Fatal("Expected selected item")
	}
	if selected.ID != "1" {
		t.Errorf("Expected selected movie ID '1', got '%s'", selected.ID)
	}

	list.Next()
	if list.Selected().ID != "2" {
		t.Errorf("Expected selected movie ID '2', got '%s'", list.Selected().ID)
	}
}

func TestViewEmptyList(t *testing.T) {
	list := NewMovieList()

	view := list.View()

	if !strings.Contains(view, "No movies match the current filters") {
		t.Error("Expected empty list message")
	}
}

func TestViewWithItems(t *testing.T) {
	list := NewMovieList()
	list.SetItems([]data.Movie{
		{
			ID:          "1",
			Title:       "Test Movie",
			Description: "Something happens",
			Genres:      []data.Genre{data.Drama, data.ScienceFiction},
			ReleaseYear: 2001,
			Rating:      8.5,
		},
	})

	view := list.View()

	for _, want := range []string{"Test Movie", "(2001)", "8.5", "Drama • Science Fiction", "Something happens"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected %q in view", want)
		}
	}
}

func TestViewScrollsToSelection(t *testing.T) {
	list := NewMovieList()
	list.Height = cardHeight * 2

	movies := make([]data.Movie, 10)
	for i := range movies {
		movies[i] = data.Movie{ID: fmt.Sprint(i), Title: fmt.Sprintf("Film %02d", i)}
	}
	list.SetItems(movies)

	view := list.View()
	if !strings.Contains(view, "Film 00") || strings.Contains(view, "Film 05") {
		t.Error("Expected only the first films to be rendered")
	}
	if !strings.Contains(view, "1–2 of 10") {
		t.Error("Expected position indicator")
	}

	list.SelectedIndex = 9
	view = list.View()
	if !strings.Contains(view, "Film 09") || strings.Contains(view, "Film 00") {
		t.Error("Expected the window to follow the selection")
	}
}

func TestViewTruncatesMultibyteDescription(t *testing.T) {
	list := NewMovieList()
	list.Width = 30
	list.SetItems([]data.Movie{
		{ID: "1", Title: "Amélie", Description: strings.Repeat("é", 40)},
	})

	view := list.View()

	if !utf8.ValidString(view) {
		t.Fatal("Expected the view to be valid UTF-8")
	}
	if want := strings.Repeat("é", 17) + "..."; !strings.Contains(view, want) {
		t.Errorf("Expected description cut to %q in view:\n%s", want, view)
	}
}

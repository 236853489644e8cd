package data

import (
	"fmt"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
)

type Movie struct {
	ID          string
	Title       string
	Description string
	Genres      []Genre
	ReleaseYear int
	Rating      float64
}

// HasGenre reports whether genre is one of the movie's genres.
func (m Movie) HasGenre(genre Genre) bool {
	return slices.Contains(m.Genres, genre)
}

// Genre is a fixed category tag. The zero value means "no genre".
type Genre string

const (
	Action         Genre = "ACTION"
	Adventure      Genre = "ADVENTURE"
	Animation      Genre = "ANIMATION"
	Biography      Genre = "BIOGRAPHY"
	Comedy         Genre = "COMEDY"
	Crime          Genre = "CRIME"
	Drama          Genre = "DRAMA"
	Documentary    Genre = "DOCUMENTARY"
	Family         Genre = "FAMILY"
	Fantasy        Genre = "FANTASY"
	History        Genre = "HISTORY"
	Horror         Genre = "HORROR"
	Musical        Genre = "MUSICAL"
	Mystery        Genre = "MYSTERY"
	Romance        Genre = "ROMANCE"
	ScienceFiction Genre = "SCIENCE_FICTION"
	Sport          Genre = "SPORT"
	Thriller       Genre = "THRILLER"
	War            Genre = "WAR"
	Western        Genre = "WESTERN"
)

var genres = []Genre{
	Action, Adventure, Animation, Biography, Comedy, Crime, Drama, Documentary, Family, Fantasy,
	History, Horror, Musical, Mystery, Romance, ScienceFiction, Sport, Thriller, War, Western,
}

// Genres returns every genre in declaration order.
func Genres() []Genre {
	return slices.Clone(genres)
}

// String renders the genre for display, e.g. "Science Fiction".
func (g Genre) String() string {
	if g == "" {
		return "All genres"
	}
	words := strings.Split(strings.ToLower(string(g)), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// ParseGenre accepts names like "drama", "Science Fiction" or "science-fiction".
// An empty name yields the zero Genre.
func ParseGenre(name string) (Genre, error) {
	key := strings.TrimSpace(name)
	if key == "" {
		return "", nil
	}
	key = strings.ToUpper(strings.NewReplacer(" ", "_", "-", "_").Replace(key))
	if slices.Contains(genres, Genre(key)) {
		return Genre(key), nil
	}

	closest, best := genres[0], -1
	for _, g := range genres {
		d := levenshtein.ComputeDistance(key, string(g))
		if best < 0 || d < best {
			closest, best = g, d
		}
	}
	return "", fmt.Errorf("unknown genre %q (did you mean %q?)", name, strings.ToLower(string(closest)))
}

type SortedState int

const (
	SortNone SortedState = iota
	SortAscending
	SortDescending
)

func (s SortedState) String() string {
	switch s {
	case SortAscending:
		return "ascending"
	case SortDescending:
		return "descending"
	default:
		return "none"
	}
}

// Label is the caption for the sort action that would run next.
func (s SortedState) Label() string {
	if s == SortAscending {
		return "Sort (desc)"
	}
	return "Sort (asc)"
}

package services

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/kerbaras/movies/pkg/data"
	"github.com/kerbaras/movies/pkg/sources"
)

// ErrInvalidArgument is returned when a required movie list is missing.
var ErrInvalidArgument = errors.New("invalid argument")

var errNilList = fmt.Errorf("%w: movie list cannot be nil", ErrInvalidArgument)

// MovieController holds the full movie list and the subset currently shown.
// It is not safe for concurrent use.
type MovieController struct {
	allMovies   []data.Movie
	movies      []data.Movie
	sortedState data.SortedState
	listeners   []func([]data.Movie)
}

// NewMovieController starts with movies as the master list and shows all of them.
func NewMovieController(movies []data.Movie) *MovieController {
	c := &MovieController{allMovies: movies}
	c.Reset()
	return c
}

// LoadMovieController builds a controller from the provider's movies.
func LoadMovieController(provider sources.Provider) (*MovieController, error) {
	movies, err := provider.Movies()
	if err != nil {
		return nil, fmt.Errorf("failed to load movies: %w", err)
	}
	return NewMovieController(movies), nil
}

// OnChange registers fn to be called with the displayed movies whenever they are replaced.
func (c *MovieController) OnChange(fn func([]data.Movie)) {
	c.listeners = append(c.listeners, fn)
}

func (c *MovieController) setMovies(movies []data.Movie) {
	c.movies = slices.Clone(movies)
	if c.movies == nil {
		c.movies = []data.Movie{}
	}
	c.notify()
}

func (c *MovieController) notify() {
	for _, fn := range c.listeners {
		fn(slices.Clone(c.movies))
	}
}

// Movies returns a copy of the displayed movies.
func (c *MovieController) Movies() []data.Movie {
	return slices.Clone(c.movies)
}

// AllMovies returns a copy of the master list.
func (c *MovieController) AllMovies() []data.Movie {
	return slices.Clone(c.allMovies)
}

func (c *MovieController) SortedState() data.SortedState {
	return c.sortedState
}

// SortLabel is the caption for the next sort action.
func (c *MovieController) SortLabel() string {
	return c.sortedState.Label()
}

// Reset shows the whole master list again and clears the sort state.
func (c *MovieController) Reset() {
	c.sortedState = data.SortNone
	c.setMovies(c.allMovies)
}

// ApplyFilters narrows the master list to the movies matching every active
// criterion. Blank or malformed year and rating text disable that criterion.
func (c *MovieController) ApplyFilters(query string, genre data.Genre, releaseYear, rating string) error {
	filtered, err := FilterByGenre(c.allMovies, genre)
	if err != nil {
		return err
	}
	if filtered, err = FilterByQuery(filtered, query); err != nil {
		return err
	}
	if filtered, err = FilterByRelease(filtered, ParseReleaseYear(releaseYear)); err != nil {
		return err
	}
	if filtered, err = FilterByRating(filtered, ParseRating(rating)); err != nil {
		return err
	}

	c.setMovies(filtered)
	return nil
}

// SortByTitle toggles the displayed movies between ascending and descending title order.
func (c *MovieController) SortByTitle() {
	if c.sortedState == data.SortAscending {
		sort.SliceStable(c.movies, func(i, j int) bool {
			return c.movies[i].Title > c.movies[j].Title
		})
		c.sortedState = data.SortDescending
	} else {
		sort.SliceStable(c.movies, func(i, j int) bool {
			return c.movies[i].Title < c.movies[j].Title
		})
		c.sortedState = data.SortAscending
	}
	c.notify()
}

// SetMovieList replaces the master list and shows all of it. The sort state is kept.
func (c *MovieController) SetMovieList(movies []data.Movie) error {
	if movies == nil {
		return errNilList
	}
	c.allMovies = movies
	c.setMovies(movies)
	return nil
}

// ParseReleaseYear returns 0 for blank or non-numeric input.
func ParseReleaseYear(text string) int {
	year, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0
	}
	return year
}

// ParseRating returns 0 for blank, non-numeric or NaN input. Values too large
// for a float64 parse as ±Inf.
func ParseRating(text string) float64 {
	rating, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if (err != nil && !errors.Is(err, strconv.ErrRange)) || math.IsNaN(rating) {
		return 0
	}
	return rating
}

// FilterByQuery keeps movies whose title or description contains query, ignoring case.
func FilterByQuery(movies []data.Movie, query string) ([]data.Movie, error) {
	if movies == nil {
		return nil, errNilList
	}
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return movies, nil
	}
	return filter(movies, func(m data.Movie) bool {
		return strings.Contains(strings.ToLower(m.Title), query) ||
			strings.Contains(strings.ToLower(m.Description), query)
	}), nil
}

// FilterByGenre keeps movies tagged with genre. The zero genre keeps everything.
func FilterByGenre(movies []data.Movie, genre data.Genre) ([]data.Movie, error) {
	if movies == nil {
		return nil, errNilList
	}
	if genre == "" {
		return movies, nil
	}
	return filter(movies, func(m data.Movie) bool {
		return m.HasGenre(genre)
	}), nil
}

// FilterByRelease keeps movies released in year. Years <= 0 keep everything.
func FilterByRelease(movies []data.Movie, year int) ([]data.Movie, error) {
	if movies == nil {
		return nil, errNilList
	}
	if year <= 0 {
		return movies, nil
	}
	return filter(movies, func(m data.Movie) bool {
		return m.ReleaseYear == year
	}), nil
}

// FilterByRating keeps movies rated at least rating. Ratings <= 0 keep everything.
func FilterByRating(movies []data.Movie, rating float64) ([]data.Movie, error) {
	if movies == nil {
		return nil, errNilList
	}
	if rating <= 0 {
		return movies, nil
	}
	return filter(movies, func(m data.Movie) bool {
		return m.Rating >= rating
	}), nil
}

func filter(movies []data.Movie, keep func(data.Movie) bool) []data.Movie {
	out := []data.Movie{}
	for _, m := range movies {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}

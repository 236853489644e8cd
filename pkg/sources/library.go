package sources

import (
	"fmt"
	"log"

	"github.com/kerbaras/movies/pkg/data"
)

// Store is the part of data.Repository the library needs.
type Store interface {
	ListMovies() ([]data.Movie, error)
	ReplaceMovies(movies []data.Movie) error
}

// Library serves movies from a store, optionally seeding it from a fallback
// provider when it is empty.
type Library struct {
	store    Store
	fallback Provider
	seed     bool
}

func NewLibrary(store Store, seed bool) *Library {
	return &Library{store: store, fallback: NewStatic(), seed: seed}
}

// WithFallback replaces the provider used for seeding.
func (l *Library) WithFallback(p Provider) *Library {
	l.fallback = p
	return l
}

func (l *Library) Movies() ([]data.Movie, error) {
	movies, err := l.store.ListMovies()
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	if len(movies) > 0 || !l.seed {
		return movies, nil
	}

	movies, err = l.fallback.Movies()
	if err != nil {
		return nil, fmt.Errorf("failed to load seed catalog: %w", err)
	}
	if err := l.store.ReplaceMovies(movies); err != nil {
		return nil, fmt.Errorf("failed to seed library: %w", err)
	}
	log.Printf("seeded library with %d movies", len(movies))
	return movies, nil
}

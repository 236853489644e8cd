package sources

import "github.com/kerbaras/movies/pkg/data"

// Provider supplies the master list of movies.
type Provider interface {
	Movies() ([]data.Movie, error)
}

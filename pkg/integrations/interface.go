package integrations

import "github.com/kerbaras/movies/pkg/data"

// Exporter writes a list of movies somewhere and returns where it went.
type Exporter interface {
	Export(title string, movies []data.Movie) (string, error)
}

package sources

import "github.com/kerbaras/movies/pkg/data"

// Static serves the built-in catalog.
type Static struct{}

func NewStatic() *Static {
	return &Static{}
}

func (s *Static) Movies() ([]data.Movie, error) {
	return data.InitializeMovies(), nil
}

package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovieHasGenre(t *testing.T) {
	movie := Movie{Title: "Test Movie", Genres: []Genre{Drama, Romance}}

	assert.True(t, movie.HasGenre(Drama))
	assert.True(t, movie.HasGenre(Romance))
	assert.False(t, movie.HasGenre(Action))
	assert.False(t, Movie{}.HasGenre(Drama))
}

func TestGenresOrder(t *testing.T) {
	all := Genres()

	require.Len(t, all, 20)
	assert.Equal(t, Action, all[0])
	assert.Equal(t, Western, all[len(all)-1])

	// Callers get their own copy.
	all[0] = Western
	assert.Equal(t, Action, Genres()[0])
}

func TestGenreString(t *testing.T) {
	assert.Equal(t, "Drama", Drama.String())
	assert.Equal(t, "Science Fiction", ScienceFiction.String())
	assert.Equal(t, "All genres", Genre("").String())
}

func TestParseGenre(t *testing.T) {
	tests := []struct {
		in   string
		want Genre
	}{
		{"", ""},
		{"   ", ""},
		{"drama", Drama},
		{"DRAMA", Drama},
		{" Western ", Western},
		{"science fiction", ScienceFiction},
		{"Science-Fiction", ScienceFiction},
		{"SCIENCE_FICTION", ScienceFiction},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseGenre(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseGenreRoundTrip(t *testing.T) {
	for _, g := range Genres() {
		got, err := ParseGenre(g.String())
		require.NoError(t, err)
		assert.Equal(t, g, got)
	}
}

func TestParseGenreSuggestsClosest(t *testing.T) {
	_, err := ParseGenre("dramma")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "drama"`)

	_, err = ParseGenre("horor")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "horror"`)
}

func TestSortedStateLabel(t *testing.T) {
	assert.Equal(t, "Sort (asc)", SortNone.Label())
	assert.Equal(t, "Sort (desc)", SortAscending.Label())
	assert.Equal(t, "Sort (asc)", SortDescending.Label())

	assert.Equal(t, "none", SortNone.String())
	assert.Equal(t, "ascending", SortAscending.String())
	assert.Equal(t, "descending", SortDescending.String())
}

package data

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "github.com/marcboeker/go-duckdb/v2"
)

const schema = `
CREATE TABLE IF NOT EXISTS movies (
	id           VARCHAR NOT NULL,
	position     INTEGER NOT NULL,
	title        VARCHAR NOT NULL,
	description  VARCHAR NOT NULL DEFAULT '',
	release_year INTEGER NOT NULL DEFAULT 0,
	rating       DOUBLE NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS movie_genres (
	movie_id VARCHAR NOT NULL,
	position INTEGER NOT NULL,
	genre    VARCHAR NOT NULL
);
`

// DefaultDBPath is used when no database path is configured.
const DefaultDBPath = "movies.db"

func InitDuckDB(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return db, nil
}

type Repository struct {
	db *sql.DB
}

var duckDB *sql.DB

// DBPath is the file opened by NewDuckDBRepository.
var DBPath = DefaultDBPath

func NewDuckDBRepository() *Repository {
	if duckDB == nil {
		db, err := InitDuckDB(DBPath)
		if err != nil {
			log.Fatal(err)
		}
		duckDB = db
	}

	return &Repository{db: duckDB}
}

// NewRepository wraps an already initialised database.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Close() error {
	if r.db == duckDB {
		duckDB = nil
	}
	return r.db.Close()
}

// SaveMovie inserts or updates a movie. New movies go to the end of the list;
// existing ones keep their place.
func (r *Repository) SaveMovie(movie *Movie) error {
	if movie == nil {
		return fmt.Errorf("movie cannot be nil")
	}
	if movie.ID == "" {
		movie.ID = MovieID(movie.Title, movie.ReleaseYear)
	}

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var position int
	err = tx.QueryRow(`SELECT position FROM movies WHERE id = ?`, movie.ID).Scan(&position)
	if errors.Is(err, sql.ErrNoRows) {
		err = tx.QueryRow(`SELECT COALESCE(MAX(position) + 1, 0) FROM movies`).Scan(&position)
	}
	if err != nil {
		return fmt.Errorf("failed to resolve position: %w", err)
	}

	if err := saveMovie(tx, movie, position); err != nil {
		return err
	}
	return tx.Commit()
}

func saveMovie(tx *sql.Tx, movie *Movie, position int) error {
	// No key constraint on id: DuckDB rejects delete-then-insert of an
	// indexed key inside one transaction.
	if _, err := tx.Exec(`DELETE FROM movies WHERE id = ?`, movie.ID); err != nil {
		return fmt.Errorf("failed to replace movie %q: %w", movie.Title, err)
	}
	_, err := tx.Exec(
		`INSERT INTO movies (id, position, title, description, release_year, rating) VALUES (?, ?, ?, ?, ?, ?)`,
		movie.ID, position, movie.Title, movie.Description, movie.ReleaseYear, movie.Rating,
	)
	if err != nil {
		return fmt.Errorf("failed to save movie %q: %w", movie.Title, err)
	}

	if _, err := tx.Exec(`DELETE FROM movie_genres WHERE movie_id = ?`, movie.ID); err != nil {
		return fmt.Errorf("failed to clear genres: %w", err)
	}
	for i, genre := range movie.Genres {
		if _, err := tx.Exec(`INSERT INTO movie_genres (movie_id, position, genre) VALUES (?, ?, ?)`, movie.ID, i, string(genre)); err != nil {
			return fmt.Errorf("failed to save genre %s: %w", genre, err)
		}
	}
	return nil
}

// GetMovie returns nil when no movie has the given id.
func (r *Repository) GetMovie(id string) (*Movie, error) {
	var m Movie
	err := r.db.QueryRow(
		`SELECT id, title, description, release_year, rating FROM movies WHERE id = ?`, id,
	).Scan(&m.ID, &m.Title, &m.Description, &m.ReleaseYear, &m.Rating)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	genres, err := r.genres()
	if err != nil {
		return nil, err
	}
	m.Genres = genres[m.ID]
	return &m, nil
}

// ListMovies returns every stored movie in insertion order.
func (r *Repository) ListMovies() ([]Movie, error) {
	rows, err := r.db.Query(`SELECT id, title, description, release_year, rating FROM movies ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := []Movie{}
	for rows.Next() {
		var m Movie
		if err := rows.Scan(&m.ID, &m.Title, &m.Description, &m.ReleaseYear, &m.Rating); err != nil {
			return nil, err
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	genres, err := r.genres()
	if err != nil {
		return nil, err
	}
	for i := range movies {
		movies[i].Genres = genres[movies[i].ID]
	}
	return movies, nil
}

func (r *Repository) genres() (map[string][]Genre, error) {
	rows, err := r.db.Query(`SELECT movie_id, genre FROM movie_genres ORDER BY movie_id, position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]Genre)
	for rows.Next() {
		var id, genre string
		if err := rows.Scan(&id, &genre); err != nil {
			return nil, err
		}
		out[id] = append(out[id], Genre(genre))
	}
	return out, rows.Err()
}

func (r *Repository) DeleteMovie(id string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM movie_genres WHERE movie_id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM movies WHERE id = ?`, id); err != nil {
		return err
	}
	return tx.Commit()
}

// ReplaceMovies swaps the stored list for movies, keeping their order. Every
// entry is stored; one whose id is already taken gets a fresh random id.
func (r *Repository) ReplaceMovies(movies []Movie) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM movie_genres`); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM movies`); err != nil {
		return err
	}
	seen := make(map[string]bool, len(movies))
	for i := range movies {
		m := movies[i]
		if m.ID == "" {
			m.ID = MovieID(m.Title, m.ReleaseYear)
		}
		if seen[m.ID] {
			m.ID = uuid.NewString()
		}
		seen[m.ID] = true
		if err := saveMovie(tx, &m, i); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *Repository) CountMovies() (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM movies`).Scan(&n)
	return n, err
}

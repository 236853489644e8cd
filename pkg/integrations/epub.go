package integrations

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-shiori/go-epub"
	"github.com/kerbaras/movies/pkg/data"
)

type EPubBuilder struct {
	outputDir string
}

// NewEPubBuilder writes catalogs to outputDir. An empty outputDir means a
// fresh temporary directory, created on the first export.
func NewEPubBuilder(outputDir string) *EPubBuilder {
	return &EPubBuilder{outputDir: outputDir}
}

// Export compiles the movies, in the given order, into a single EPub catalog
func (p *EPubBuilder) Export(title string, movies []data.Movie) (string, error) {
	if len(movies) == 0 {
		return "", fmt.Errorf("no movies to export")
	}
	if strings.TrimSpace(title) == "" {
		title = "Movies"
	}

	if p.outputDir == "" {
		dir, err := os.MkdirTemp("", "movies-epub-*")
		if err != nil {
			return "", fmt.Errorf("failed to create temporary output directory: %w", err)
		}
		p.outputDir = dir
	}
	if err := os.MkdirAll(p.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	e, err := epub.NewEpub(title)
	if err != nil {
		return "", fmt.Errorf("failed to create EPub: %w", err)
	}
	e.SetAuthor("movies")
	e.SetDescription(fmt.Sprintf("%d movies", len(movies)))
	e.SetLang("en")

	for i, movie := range movies {
		filename := fmt.Sprintf("movie%04d.xhtml", i+1)
		if _, err := e.AddSection(movieSection(movie), movie.Title, filename, ""); err != nil {
			return "", fmt.Errorf("failed to add movie %q: %w", movie.Title, err)
		}
	}

	outputPath := filepath.Join(p.outputDir, sanitizeFilename(title)+".epub")
	if err := e.Write(outputPath); err != nil {
		return "", fmt.Errorf("failed to write EPub: %w", err)
	}

	return outputPath, nil
}

// movieSection renders a movie as an XHTML body fragment
func movieSection(m data.Movie) string {
	genres := make([]string, len(m.Genres))
	for i, g := range m.Genres {
		genres[i] = g.String()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<h1>%s</h1>\n", html.EscapeString(m.Title))
	fmt.Fprintf(&b, "<p><strong>Released:</strong> %d &#183; <strong>Rating:</strong> %.1f</p>\n", m.ReleaseYear, m.Rating)
	if len(genres) > 0 {
		fmt.Fprintf(&b, "<p><em>%s</em></p>\n", html.EscapeString(strings.Join(genres, ", ")))
	}
	if m.Description != "" {
		fmt.Fprintf(&b, "<p>%s</p>\n", html.EscapeString(m.Description))
	}
	return b.String()
}

// sanitizeFilename removes characters that are invalid in filenames
func sanitizeFilename(name string) string {
	invalid := []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|"}
	result := name
	for _, char := range invalid {
		result = strings.ReplaceAll(result, char, "_")
	}
	// Trim spaces and dots from ends
	result = strings.TrimSpace(result)
	result = strings.Trim(result, ".")
	return result
}

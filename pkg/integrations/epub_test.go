package integrations

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kerbaras/movies/pkg/data"
)

func testMovies() []data.Movie {
	return []data.Movie{
		{
			ID:          "1",
			Title:       "Zeta & Sons",
			Description: "A <loud> family",
			Genres:      []data.Genre{data.Comedy, data.ScienceFiction},
			ReleaseYear: 1999,
			Rating:      5.0,
		},
		{
			ID:          "2",
			Title:       "Alpha",
			ReleaseYear: 2001,
			Rating:      8.0,
		},
	}
}

func TestNewEPubBuilder(t *testing.T) {
	builder := NewEPubBuilder("/tmp/test")
	if builder == nil {
		t.Fatal("Expected builder to be created")
	}

	if builder.outputDir != "/tmp/test" {
		t.Errorf("Expected outputDir '/tmp/test', got '%s'", builder.outputDir)
	}
}

func TestExportDefaultsToTempDir(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("TMPDIR", tmp)

	builder := NewEPubBuilder("")
	path, err := builder.Export("Catalog", testMovies())
	if err != nil {
		t.Fatalf("Failed to export: %v", err)
	}

	if builder.outputDir == "" || filepath.Dir(builder.outputDir) != tmp {
		t.Errorf("Expected a temporary output directory under %s, got '%s'", tmp, builder.outputDir)
	}
	if filepath.Dir(path) != builder.outputDir {
		t.Errorf("Expected export in %s, got %s", builder.outputDir, path)
	}
}

func TestExportTempDirFailure(t *testing.T) {
	t.Setenv("TMPDIR", filepath.Join(t.TempDir(), "missing"))

	builder := NewEPubBuilder("")
	path, err := builder.Export("Catalog", testMovies())
	if err == nil {
		t.Fatalf("Expected error when the temporary directory cannot be created, got %s", path)
	}
	if !strings.Contains(err.Error(), "temporary output directory") {
		t.Errorf("Unexpected error: %v", err)
	}
	if _, statErr := os.Stat("Catalog.epub"); statErr == nil {
		t.Error("Expected nothing written to the working directory")
	}
}

func TestExport(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "nested")
	builder := NewEPubBuilder(outputDir)

	path, err := builder.Export("Drama: 2001", testMovies())
	if err != nil {
		t.Fatalf("Failed to export: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("EPub file was not created at %s", path)
	}

	if filepath.Dir(path) != outputDir {
		t.Errorf("Expected EPub in %s, got %s", outputDir, filepath.Dir(path))
	}

	expectedName := "Drama_ 2001.epub"
	if filepath.Base(path) != expectedName {
		t.Errorf("Expected filename '%s', got '%s'", expectedName, filepath.Base(path))
	}

	content := readEPub(t, path)
	for _, want := range []string{"Zeta &amp; Sons", "A &lt;loud&gt; family", "Comedy, Science Fiction", "Alpha", "Rating:</strong> 8.0"} {
		if !strings.Contains(content, want) {
			t.Errorf("Expected EPub to contain %q", want)
		}
	}
}

func TestExportDefaultTitle(t *testing.T) {
	builder := NewEPubBuilder(t.TempDir())

	path, err := builder.Export("  ", testMovies())
	if err != nil {
		t.Fatalf("Failed to export: %v", err)
	}
	if filepath.Base(path) != "Movies.epub" {
		t.Errorf("Expected 'Movies.epub', got '%s'", filepath.Base(path))
	}
}

func TestExportNoMovies(t *testing.T) {
	builder := NewEPubBuilder(t.TempDir())

	if _, err := builder.Export("Empty", []data.Movie{}); err == nil {
		t.Error("Expected error when exporting no movies")
	}
	if _, err := builder.Export("Empty", nil); err == nil {
		t.Error("Expected error when exporting nil movies")
	}
}

func TestEPubBuilderIsExporter(t *testing.T) {
	var _ Exporter = NewEPubBuilder(t.TempDir())
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Normal Title", "Normal Title"},
		{"Title/With/Slashes", "Title_With_Slashes"},
		{"Title\\With\\Backslashes", "Title_With_Backslashes"},
		{"Title:With:Colons", "Title_With_Colons"},
		{"Title*With?Special<Chars>", "Title_With_Special_Chars_"},
		{"  Spaces Around  ", "Spaces Around"},
		{".Hidden File.", "Hidden File"},
	}

	for _, tt := range tests {
		result := sanitizeFilename(tt.input)
		if result != tt.expected {
			t.Errorf("sanitizeFilename(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func readEPub(t *testing.T, path string) string {
	t.Helper()

	r, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("Failed to open EPub: %v", err)
	}
	defer r.Close()

	var b strings.Builder
	for _, f := range r.File {
		if !strings.HasSuffix(f.Name, ".xhtml") {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("Failed to open %s: %v", f.Name, err)
		}
		body, _ := io.ReadAll(rc)
		rc.Close()
		b.Write(body)
	}
	return b.String()
}

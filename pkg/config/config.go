package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Export   ExportConfig
	Library  LibraryConfig
}

// DatabaseConfig holds duckdb settings.
type DatabaseConfig struct {
	Path string
}

type ExportConfig struct {
	Dir string
}

// LibraryConfig controls where the master list comes from.
type LibraryConfig struct {
	// Seed fills an empty database with the built-in catalog.
	Seed bool
	// Static skips the database and serves the built-in catalog only.
	Static bool
}

func home() string {
	if h, err := os.UserHomeDir(); err == nil {
		return h
	}
	return "."
}

// Load reads configuration from file and env. Env var overrides use prefix MOVIES_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("database.path", filepath.Join(home(), ".movies", "movies.db"))
	v.SetDefault("export.dir", filepath.Join(home(), ".movies", "exports"))
	v.SetDefault("library.seed", true)
	v.SetDefault("library.static", false)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("MOVIES_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(home(), ".config", "movies"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("MOVIES")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

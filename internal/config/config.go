// Package config loads the YAML file shared by the viewer and the sweep.
package config

import (
	"fmt"
	"os"

	"drainage/internal/drainage"
	"drainage/internal/tile"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// EnvPath names the environment variable that overrides the config path.
const EnvPath = "DRAINAGE_CONFIG"

// DefaultPath is used when nothing else is set.
const DefaultPath = "drainage.yaml"

// File is the on-disk configuration.
type File struct {
	Drainage drainage.Config   `yaml:"drainage"`
	Loader   tile.LoaderConfig `yaml:"loader"`
	Log      LogConfig         `yaml:"log"`
	Viewer   ViewerConfig      `yaml:"viewer"`
}

// LogConfig selects the rotated log file. Empty means stdout only.
type LogConfig struct {
	Path string `yaml:"path"`
}

// ViewerConfig holds window settings for cmd/drainage.
type ViewerConfig struct {
	Scale int `yaml:"scale"`
	TPS   int `yaml:"tps"`
}

// Default returns the built-in configuration.
func Default() File {
	return File{
		Drainage: drainage.DefaultConfig(),
		Loader:   tile.DefaultLoaderConfig(),
		Viewer: ViewerConfig{
			Scale: 2,
			TPS:   30,
		},
	}
}

// Path returns the config path from the environment, loading an optional
// .env first.
func Path() string {
	_ = godotenv.Load()
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return DefaultPath
}

// Load reads path over the defaults. On error the defaults are returned
// alongside it.
func Load(path string) (File, error) {
	f := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("config file not found, using defaults: %w", err)
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Default(), fmt.Errorf("error parsing config %s: %w", path, err)
	}
	return f, nil
}

// Save writes f to path.
func Save(path string, f File) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("error serializing config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("error writing config %s: %w", path, err)
	}
	return nil
}

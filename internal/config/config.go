// Package config loads the application configuration from
// ~/.config/ando-archive/config.yaml, falling back to defaults when the
// file is absent. Environment variables override log settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	yaml "gopkg.in/yaml.v2"
)

type WindowConfig struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type ArchiveConfig struct {
	Dir string `yaml:"dir"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Database DatabaseConfig `yaml:"database"`
	Archive  ArchiveConfig  `yaml:"archive"`
	Log      LogConfig      `yaml:"log"`
}

func Default() Config {
	return Config{
		Window:   WindowConfig{Width: 1200, Height: 800},
		Database: DatabaseConfig{Path: "~/.ando-archive/archive.db"},
		Archive:  ArchiveConfig{Dir: "~/.ando-archive/documents"},
		Log:      LogConfig{Level: "info"},
	}
}

// Load reads the config file if present, applies environment overrides
// and expands home-relative paths. A missing file yields defaults; a
// malformed one is an error so a typo does not silently revert the
// whole configuration.
func Load() (Config, error) {
	cfg := Default()

	path, err := configPath()
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.expandPaths(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile reads configuration from an explicit path. The file must
// exist.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.expandPaths(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func configPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".config", "ando-archive", "config.yaml"), nil
}

func (c *Config) applyEnv() {
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
	if os.Getenv("ANDO_JSON_LOGS") == "true" {
		c.Log.JSON = true
	}
}

func (c *Config) expandPaths() error {
	dbPath, err := homedir.Expand(c.Database.Path)
	if err != nil {
		return fmt.Errorf("expanding database path: %w", err)
	}
	c.Database.Path = dbPath

	archiveDir, err := homedir.Expand(c.Archive.Dir)
	if err != nil {
		return fmt.Errorf("expanding archive dir: %w", err)
	}
	c.Archive.Dir = archiveDir
	return nil
}

// Package config loads curation settings from the environment, an optional
// YAML file, and command-line overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/raphaelgruber/rolemodel-curate/internal/models"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration values.
type Config struct {
	// Directories
	RawDir    string
	OutputDir string

	// Curation
	Themes        []string
	PreviewLength int

	// Output
	NoColor bool

	// Logging
	LogFile  string
	LogLevel slog.Level

	// Optional YAML file overlaid on top of the environment
	ConfigFile string
}

// fileConfig is the YAML layout of a config file. Absent keys leave the
// environment value in place.
type fileConfig struct {
	RawDir        string   `yaml:"raw_dir"`
	OutputDir     string   `yaml:"output_dir"`
	PreviewLength *int     `yaml:"preview_length"`
	Themes        []string `yaml:"themes"`
	LogFile       string   `yaml:"log_file"`
	LogLevel      string   `yaml:"log_level"`
}

// Load reads configuration from environment variables.
func Load() Config {
	return Config{
		RawDir:    getEnv("CURATE_RAW_DIR", "Raw_Data"),
		OutputDir: getEnv("CURATE_OUTPUT_DIR", "Generated_JSON_Entries"),

		Themes:        models.DefaultThemes(),
		PreviewLength: getEnvInt("CURATE_PREVIEW_LENGTH", 1500),

		NoColor: os.Getenv("NO_COLOR") != "",

		LogFile:  getEnv("CURATE_LOG_FILE", filepath.Join(os.TempDir(), "curate.log")),
		LogLevel: parseLogLevel(getEnv("CURATE_LOG_LEVEL", "INFO")),

		ConfigFile: getEnv("CURATE_CONFIG", ""),
	}
}

// LoadFile overlays the YAML file at path onto c. Unknown keys are an error.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fc.RawDir != "" {
		c.RawDir = fc.RawDir
	}
	if fc.OutputDir != "" {
		c.OutputDir = fc.OutputDir
	}
	if fc.PreviewLength != nil {
		c.PreviewLength = *fc.PreviewLength
	}
	if len(fc.Themes) > 0 {
		c.Themes = fc.Themes
	}
	if fc.LogFile != "" {
		c.LogFile = fc.LogFile
	}
	if fc.LogLevel != "" {
		c.LogLevel = parseLogLevel(fc.LogLevel)
	}
	c.ConfigFile = path
	return nil
}

// Validate checks that the configuration can drive a session.
func (c Config) Validate() error {
	if strings.TrimSpace(c.RawDir) == "" {
		return errors.New("raw data directory is not set")
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		return errors.New("output directory is not set")
	}
	if c.PreviewLength < 0 {
		return fmt.Errorf("preview length must not be negative, got %d", c.PreviewLength)
	}
	if len(c.Themes) < models.MinThemes {
		return fmt.Errorf("theme vocabulary needs at least %d themes, got %d", models.MinThemes, len(c.Themes))
	}
	seen := make(map[string]bool, len(c.Themes))
	for _, t := range c.Themes {
		if strings.TrimSpace(t) == "" {
			return errors.New("theme vocabulary contains an empty theme")
		}
		if seen[t] {
			return fmt.Errorf("theme vocabulary lists %q twice", t)
		}
		seen[t] = true
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
		slog.Warn("ignoring non-numeric environment value", "key", key, "value", val)
	}
	return defaultVal
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

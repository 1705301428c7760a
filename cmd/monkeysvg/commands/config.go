package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/benoitkugler/forkmonkey/svgscene"
	"gopkg.in/yaml.v3"
)

// Config holds the defaults used when a flag is not given
// on the command line.
type Config struct {
	Width         int    `json:"width" yaml:"width"`
	Height        int    `json:"height" yaml:"height"`
	ThumbnailSize int    `json:"thumbnail_size" yaml:"thumbnail_size"`
	Format        string `json:"format" yaml:"format"` // svg, png or pdf
	Jobs          int    `json:"jobs" yaml:"jobs"`
	LogLevel      string `json:"log_level" yaml:"log_level"`
}

func (c *Config) defaults() {
	if c.Width <= 0 {
		c.Width = 400
	}
	if c.Height <= 0 {
		c.Height = 400
	}
	if c.ThumbnailSize <= 0 {
		c.ThumbnailSize = 100
	}
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	if c.Format == "" {
		c.Format = "svg"
	}
	if c.Jobs <= 0 {
		c.Jobs = 4
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func (c *Config) validate() error {
	if !validFormat(c.Format) {
		return fmt.Errorf("config: unsupported format %q", c.Format)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// loadConfig reads the YAML file at path. An empty path
// returns the defaults.
func loadConfig(path string) (Config, error) {
	var c Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: %w", err)
		}
		if err := yaml.Unmarshal(data, &c); err != nil {
			return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	}
	c.defaults()
	return c, c.validate()
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}

var cfg = func() Config {
	var c Config
	c.defaults()
	return c
}()

// Setup loads the configuration file, if any, and installs a text
// logger on stderr for the CLI and the rendering packages, which
// share the svgscene logger.
// A non empty logLevel overrides the configured one.
func Setup(configPath, logLevel string) error {
	c, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	svgscene.SetLogger(logger)
	cfg = c
	return nil
}

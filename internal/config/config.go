// Package config loads the host configuration from a TOML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the full host configuration.
type Config struct {
	Queue    QueueConfig    `toml:"queue"`
	Viewport ViewportConfig `toml:"viewport"`
	Logging  LoggingConfig  `toml:"logging"`
}

// QueueConfig configures the input event buffer.
type QueueConfig struct {
	// InitialCapacity is the number of records the buffer starts with.
	InitialCapacity int `toml:"initial_capacity"`

	// GrowthIncrement is the slack added on top of demand when the
	// buffer grows.
	GrowthIncrement int `toml:"growth_increment"`

	// MaxCapacity caps buffer growth. Writes beyond it are partially
	// accepted and the shortfall reported.
	MaxCapacity int `toml:"max_capacity"`
}

// ViewportConfig sizes the invalidation tracker's viewport.
type ViewportConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// LoggingConfig configures diagnostics output.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Queue: QueueConfig{
			InitialCapacity: 50,
			GrowthIncrement: 10,
			MaxCapacity:     1 << 16,
		},
		Viewport: ViewportConfig{
			Width:  80,
			Height: 24,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the configuration file at path, falling back to defaults for
// anything the file omits, then applies environment overrides. A missing
// file is not an error; the defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return cfg, fmt.Errorf("reading config file %s: %w", path, err)
			}
		} else if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the pipeline cannot use.
func (c Config) Validate() error {
	if c.Queue.InitialCapacity <= 0 {
		return fmt.Errorf("queue.initial_capacity must be positive, got %d", c.Queue.InitialCapacity)
	}
	if c.Queue.GrowthIncrement < 0 {
		return fmt.Errorf("queue.growth_increment must not be negative, got %d", c.Queue.GrowthIncrement)
	}
	if c.Queue.MaxCapacity < c.Queue.InitialCapacity {
		return fmt.Errorf("queue.max_capacity %d is below initial_capacity %d",
			c.Queue.MaxCapacity, c.Queue.InitialCapacity)
	}
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("viewport must be positive, got %dx%d", c.Viewport.Width, c.Viewport.Height)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown logging.level %q", c.Logging.Level)
	}
	return nil
}

// applyEnv overrides configuration fields from TERMHOST_* environment
// variables. Unparseable numeric values are ignored; the file or default
// wins.
func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv("TERMHOST_LOG_LEVEL"); ok {
		cfg.Logging.Level = v
	}
	if n, ok := lookupInt("TERMHOST_QUEUE_INITIAL_CAPACITY"); ok {
		cfg.Queue.InitialCapacity = n
	}
	if n, ok := lookupInt("TERMHOST_QUEUE_GROWTH_INCREMENT"); ok {
		cfg.Queue.GrowthIncrement = n
	}
	if n, ok := lookupInt("TERMHOST_QUEUE_MAX_CAPACITY"); ok {
		cfg.Queue.MaxCapacity = n
	}
	if n, ok := lookupInt("TERMHOST_VIEWPORT_WIDTH"); ok {
		cfg.Viewport.Width = n
	}
	if n, ok := lookupInt("TERMHOST_VIEWPORT_HEIGHT"); ok {
		cfg.Viewport.Height = n
	}
}

func lookupInt(key string) (int, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

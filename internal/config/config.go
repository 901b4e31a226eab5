package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// FileName is the configuration file looked up in the working directory
const FileName = "biondi.toml"

// Config holds the settings shared by all commands
type Config struct {
	Database      string `toml:"database"`
	Captures      string `toml:"captures"`
	Precision     int    `toml:"precision"`
	WatchDebounce string `toml:"watch_debounce"`
}

// DefaultConfig returns the built-in settings
func DefaultConfig() Config {
	return Config{
		Database:      "body_database.db",
		Captures:      "captures",
		Precision:     4,
		WatchDebounce: "500ms",
	}
}

// Load reads the file at path over the defaults. A missing file is not an
// error and yields the defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg.Validate()
	return cfg, nil
}

// Validate replaces invalid values with their defaults
func (c *Config) Validate() {
	def := DefaultConfig()

	if c.Database == "" {
		c.Database = def.Database
	}
	if c.Captures == "" {
		c.Captures = def.Captures
	}
	if c.Precision < 0 || c.Precision > 8 {
		log.Printf("config: precision %d out of range, using %d", c.Precision, def.Precision)
		c.Precision = def.Precision
	}
	if d, err := time.ParseDuration(c.WatchDebounce); err != nil || d < 0 {
		log.Printf("config: invalid watch_debounce %q, using %s", c.WatchDebounce, def.WatchDebounce)
		c.WatchDebounce = def.WatchDebounce
	}
}

// Debounce returns the parsed watch debounce
func (c Config) Debounce() time.Duration {
	d, err := time.ParseDuration(c.WatchDebounce)
	if err != nil {
		d, _ = time.ParseDuration(DefaultConfig().WatchDebounce)
	}
	return d
}

// Save writes the configuration to path
func (c Config) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

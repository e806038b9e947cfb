// Package config loads dfhelper settings from a YAML file with environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/andareed/dutyfree-helper/calc"
	"github.com/andareed/dutyfree-helper/filters"
)

// Default values applied when fields are absent from the config file.
const (
	DefaultAPIURL          = "https://api.runesuite.io/dutyfree/items"
	DefaultAPITimeout      = 15 * time.Second
	DefaultUserAgent       = "dfhelper/1.0"
	DefaultRefreshInterval = 5 * time.Minute
	DefaultClockInterval   = 15 * time.Second
)

// Config is the top-level configuration.
type Config struct {
	API API `yaml:"api"`

	// RefreshInterval is how often items are re-fetched. An explicit 0
	// disables auto refresh; absent means DefaultRefreshInterval.
	RefreshInterval *time.Duration `yaml:"refresh_interval"`

	// ClockInterval is how often time-ago cells and filters are re-evaluated.
	ClockInterval time.Duration `yaml:"clock_interval"`

	Cache       Cache       `yaml:"cache"`
	Calculators Calculators `yaml:"calculators"`
	Columns     Columns     `yaml:"columns"`
	Filters     Filters     `yaml:"filters"`
}

// API describes the item endpoint.
type API struct {
	URL       string        `yaml:"url"`
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
}

// Cache controls the SQLite item cache.
type Cache struct {
	// Enabled defaults to true; a pointer tells "absent" from "false".
	Enabled *bool  `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// On reports whether the cache should be opened.
func (c Cache) On() bool {
	return c.Enabled == nil || *c.Enabled
}

// Calculators holds calculator settings.
type Calculators struct {
	ProfitMonths int `yaml:"profit_months"`
}

// Columns holds grid column settings.
type Columns struct {
	// Hidden lists column names (case-insensitive) hidden at start.
	Hidden []string `yaml:"hidden"`
}

// Filters holds the filters applied at start.
type Filters struct {
	// Members is "all", "members" or "non-members"; empty leaves the
	// members filter off.
	Members filters.MembersValue `yaml:"members"`
}

// DefaultPath returns $XDG_CONFIG_HOME/dfhelper/config.yaml (or the OS
// equivalent).
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(dir, "dfhelper", "config.yaml")
}

func defaultCachePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "dfhelper.db"
	}
	return filepath.Join(dir, "dfhelper", "items.db")
}

// Default returns a Config with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads path, applies defaults and environment overrides, and
// validates the result. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyDefaults()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.Cache.Path = expandHome(cfg.Cache.Path)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.API.URL == "" {
		c.API.URL = DefaultAPIURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultAPITimeout
	}
	if c.API.UserAgent == "" {
		c.API.UserAgent = DefaultUserAgent
	}
	if c.RefreshInterval == nil {
		d := DefaultRefreshInterval
		c.RefreshInterval = &d
	}
	if c.ClockInterval == 0 {
		c.ClockInterval = DefaultClockInterval
	}
	if c.Cache.Path == "" {
		c.Cache.Path = defaultCachePath()
	}
	if c.Calculators.ProfitMonths == 0 {
		c.Calculators.ProfitMonths = calc.DefaultProfitMonths
	}
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("DFHELPER_API_URL"); v != "" {
		c.API.URL = v
	}
	if v := os.Getenv("DFHELPER_CACHE_PATH"); v != "" {
		c.Cache.Path = v
	}
	if v := os.Getenv("DFHELPER_REFRESH_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid DFHELPER_REFRESH_INTERVAL %q: %w", v, err)
		}
		c.RefreshInterval = &d
	}
	return nil
}

// Refresh is the auto refresh period; 0 means disabled.
func (c *Config) Refresh() time.Duration {
	if c.RefreshInterval == nil {
		return DefaultRefreshInterval
	}
	return *c.RefreshInterval
}

// Validate checks the configuration for values the program cannot use.
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.URL)
	if err != nil {
		return fmt.Errorf("api.url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api.url must be http or https, got %q", c.API.URL)
	}
	if u.Host == "" {
		return fmt.Errorf("api.url has no host: %q", c.API.URL)
	}
	if c.API.Timeout < 0 {
		return errors.New("api.timeout must not be negative")
	}
	if c.Refresh() < 0 {
		return errors.New("refresh_interval must not be negative")
	}
	if c.ClockInterval < 0 {
		return errors.New("clock_interval must not be negative")
	}
	if c.Calculators.ProfitMonths < 1 {
		return fmt.Errorf("calculators.profit_months must be at least 1, got %d", c.Calculators.ProfitMonths)
	}
	if c.Filters.Members != "" {
		v, err := filters.ParseMembersValue(string(c.Filters.Members))
		if err != nil {
			return fmt.Errorf("filters.members: %w", err)
		}
		c.Filters.Members = v
	}
	return nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

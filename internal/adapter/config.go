package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// SourceType identifies where the catalog is read from
type SourceType string

const (
	SourceTypeFile SourceType = "file"
	SourceTypeHTTP SourceType = "http"
)

// Config holds all application configuration
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	Cache   CacheConfig   `mapstructure:"cache"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// CatalogConfig holds catalog source configuration
type CatalogConfig struct {
	Location string        `mapstructure:"location"` // Path or http(s) URL of books.json
	Timeout  time.Duration `mapstructure:"timeout"`
}

// CacheConfig holds the catalog snapshot cache configuration
type CacheConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Dir     string `mapstructure:"dir"`
}

// UIConfig holds UI configuration
type UIConfig struct {
	CurrencySuffix string `mapstructure:"currency_suffix"`
	DefaultSort    string `mapstructure:"default_sort"`   // e.g. "title ascending"
	DefaultFilter  string `mapstructure:"default_filter"` // raw token, "All" for none
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Location: "books.json",
			Timeout:  15 * time.Second,
		},
		Cache: CacheConfig{
			Enabled: true,
			Dir:     defaultCachePath(),
		},
		UI: UIConfig{
			CurrencySuffix: "kr",
			DefaultSort:    "none",
			DefaultFilter:  "All",
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// SourceType returns the kind of source the catalog location points at
func (c CatalogConfig) SourceType() SourceType {
	lower := strings.ToLower(c.Location)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return SourceTypeHTTP
	}
	return SourceTypeFile
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "bookcart", "bookcart.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "bookcart", "bookcart.log")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "bookcart")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "bookcart")
	}
}

// defaultCachePath returns the default cache directory path for the current OS
func defaultCachePath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "bookcart", "cache")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "bookcart", "cache")
	}
}

// newViper returns a viper instance seeded with defaults so that every key
// can be overridden from the environment (BOOKCART_CATALOG_LOCATION, ...)
func newViper(defaults *Config) *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("BOOKCART")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setValues(v.SetDefault, defaults)
	return v
}

// setValues writes every config field through set, using snake_case keys
func setValues(set func(key string, value any), cfg *Config) {
	set("catalog.location", cfg.Catalog.Location)
	set("catalog.timeout", cfg.Catalog.Timeout.String())

	set("cache.enabled", cfg.Cache.Enabled)
	set("cache.dir", cfg.Cache.Dir)

	set("ui.currency_suffix", cfg.UI.CurrencySuffix)
	set("ui.default_sort", cfg.UI.DefaultSort)
	set("ui.default_filter", cfg.UI.DefaultFilter)

	set("logging.file", cfg.Logging.File)
	set("logging.level", cfg.Logging.Level)
}

// LoadConfig loads configuration from file and environment
func LoadConfig() (*Config, error) {
	return loadConfig(defaultConfigPath(), ".")
}

func loadConfig(paths ...string) (*Config, error) {
	cfg := DefaultConfig()
	v := newViper(cfg)
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// EnsureConfig writes the default config file on first run so there is
// something to edit. It reports whether a file was created.
func EnsureConfig() (bool, error) {
	return ensureConfig(defaultConfigPath())
}

func ensureConfig(configPath string) (bool, error) {
	_, err := os.Stat(filepath.Join(configPath, "config.yaml"))
	if err == nil {
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to check config file: %w", err)
	}
	if err := saveConfig(DefaultConfig(), configPath); err != nil {
		return false, err
	}
	return true, nil
}

func saveConfig(cfg *Config, configPath string) error {
	// Ensure config directory exists
	if err := os.MkdirAll(configPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	setValues(v.Set, cfg)

	configFile := filepath.Join(configPath, "config.yaml")
	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ClearCache removes all cached catalog snapshots
func ClearCache(cfg *Config) error {
	if cfg.Cache.Dir == "" {
		return nil
	}
	if err := os.RemoveAll(cfg.Cache.Dir); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	return nil
}

// CachePath returns the cache directory to use, or "" for memory-only mode
func (c *Config) CachePath() string {
	if !c.Cache.Enabled {
		return ""
	}
	return c.Cache.Dir
}

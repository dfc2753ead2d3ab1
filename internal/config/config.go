package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Fonts    FontsConfig    `mapstructure:"fonts"`
	List     ListConfig     `mapstructure:"list"`
	Search   SearchConfig   `mapstructure:"search"`
	Defaults DefaultsConfig `mapstructure:"defaults"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// CatalogConfig holds the remote font catalog settings
type CatalogConfig struct {
	APIKey   string        `mapstructure:"api_key"`   // Empty = skip the remote catalog
	URL      string        `mapstructure:"url"`       // webfonts endpoint
	Timeout  time.Duration `mapstructure:"timeout"`   // Request timeout
	CacheTTL time.Duration `mapstructure:"cache_ttl"` // 0 disables the on-disk catalog cache
}

// FontsConfig holds the font resource endpoint settings
type FontsConfig struct {
	StylesheetURL string        `mapstructure:"stylesheet_url"`
	Weights       []int         `mapstructure:"weights"`
	MaxConcurrent int           `mapstructure:"max_concurrent"`
	Timeout       time.Duration `mapstructure:"timeout"`
}

// ListConfig holds virtual list geometry for the terminal shell
type ListConfig struct {
	ItemHeight int `mapstructure:"item_height"` // Rows per item
	Buffer     int `mapstructure:"buffer"`      // Items rendered beyond each edge
}

// SearchConfig holds search input settings
type SearchConfig struct {
	Debounce time.Duration `mapstructure:"debounce"`
}

// DefaultsConfig holds the initial control values
type DefaultsConfig struct {
	Selector   string `mapstructure:"selector"`
	SampleText string `mapstructure:"sample_text"`
}

// CacheConfig holds the catalog cache location
type CacheConfig struct {
	Dir string `mapstructure:"dir"` // Empty = memory only
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
			URL:      "https://www.googleapis.com/webfonts/v1/webfonts",
			Timeout:  15 * time.Second,
			CacheTTL: 24 * time.Hour,
		},
		Fonts: FontsConfig{
			StylesheetURL: "https://fonts.googleapis.com/css2",
			Weights:       []int{300, 400, 500, 600, 700, 800, 900},
			MaxConcurrent: 4,
			Timeout:       10 * time.Second,
		},
		List: ListConfig{
			ItemHeight: 2,
			Buffer:     5,
		},
		Search: SearchConfig{
			Debounce: 150 * time.Millisecond,
		},
		Defaults: DefaultsConfig{
			Selector:   "body",
			SampleText: "The quick brown fox",
		},
		Cache: CacheConfig{
			Dir: defaultCachePath(),
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "fontpeek", "fontpeek.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "fontpeek", "fontpeek.log")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "fontpeek")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "fontpeek")
	}
}

// defaultCachePath returns the default cache directory path for the current OS
func defaultCachePath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "fontpeek", "cache")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".cache", "fontpeek")
	}
}

// LoadConfig loads configuration from file and environment.
// configFile overrides the search path when non-empty.
func LoadConfig(configFile string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultConfigPath())
		v.AddConfigPath(".")
	}

	// Environment variable overrides, e.g. FONTPEEK_CATALOG_API_KEY
	v.SetEnvPrefix("FONTPEEK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvKeys(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

// bindEnvKeys registers every key so AutomaticEnv applies during Unmarshal
// even when the key is absent from the config file
func bindEnvKeys(v *viper.Viper) {
	for _, key := range []string{
		"catalog.api_key", "catalog.url", "catalog.timeout", "catalog.cache_ttl",
		"fonts.stylesheet_url", "fonts.max_concurrent", "fonts.timeout",
		"list.item_height", "list.buffer",
		"search.debounce",
		"defaults.selector", "defaults.sample_text",
		"cache.dir",
		"logging.file", "logging.level",
	} {
		_ = v.BindEnv(key)
	}
}

// normalize replaces unusable values with defaults
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.List.ItemHeight < 1 {
		c.List.ItemHeight = def.List.ItemHeight
	}
	if c.List.Buffer < 0 {
		c.List.Buffer = def.List.Buffer
	}
	if len(c.Fonts.Weights) == 0 {
		c.Fonts.Weights = def.Fonts.Weights
	}
	if c.Fonts.MaxConcurrent < 1 {
		c.Fonts.MaxConcurrent = 1
	}
	if strings.TrimSpace(c.Defaults.Selector) == "" {
		c.Defaults.Selector = def.Defaults.Selector
	}
	if strings.HasPrefix(c.Cache.Dir, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			c.Cache.Dir = filepath.Join(home, c.Cache.Dir[1:])
		}
	}
}

// HasAPIKey returns true if a catalog API key is configured
func (c *Config) HasAPIKey() bool {
	return strings.TrimSpace(c.Catalog.APIKey) != ""
}

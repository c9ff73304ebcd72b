package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// CatalogType identifies the show catalog backend
type CatalogType string

const (
	CatalogTypeTVMaze CatalogType = "tvmaze"
)

// Config holds all application configuration
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	Storage StorageConfig `mapstructure:"storage"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// CatalogConfig holds catalog API configuration
type CatalogConfig struct {
	Type    CatalogType   `mapstructure:"type"`     // "tvmaze"
	URL     string        `mapstructure:"base_url"` // API base URL
	Timeout time.Duration `mapstructure:"timeout"`  // Per-request timeout
}

// StorageConfig holds persistence configuration
type StorageConfig struct {
	Driver   string `mapstructure:"driver"`    // "bolt", "memory" or "redis"
	Path     string `mapstructure:"path"`      // bolt: state directory
	RedisURL string `mapstructure:"redis_url"` // redis: connection URL
}

// UIConfig holds UI configuration
type UIConfig struct {
	StartPage     string `mapstructure:"start_page"`     // "shows" or "favorites"
	GenreLimit    int    `mapstructure:"genre_limit"`    // Genres shown per row before truncation
	InspectorOpen bool   `mapstructure:"inspector_open"` // Show the detail pane on start
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
			Type:    CatalogTypeTVMaze,
			URL:     "https://api.tvmaze.com",
			Timeout: 30 * time.Second,
		},
		Storage: StorageConfig{
			Driver: "bolt",
			Path:   defaultStatePath(),
		},
		UI: UIConfig{
			StartPage:     "shows",
			GenreLimit:    3,
			InspectorOpen: true,
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
		return filepath.Join(os.Getenv("APPDATA"), "showbox", "showbox.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "showbox", "showbox.log")
	}
}

// defaultConfigPath returns the default config file path for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "showbox")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "showbox")
	}
}

// defaultStatePath returns the default directory for persisted list state
func defaultStatePath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "showbox", "state")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "showbox", "state")
	}
}

// LoadConfig loads configuration from the default locations and environment
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(defaultConfigPath(), ".")
}

// LoadConfigFrom loads config.yaml from the first of dirs that has one.
// SHOWBOX_* environment variables override file values
// (e.g. SHOWBOX_LOGGING_LEVEL=DEBUG).
func LoadConfigFrom(dirs ...string) (*Config, error) {
	v := newViper()
	for _, dir := range dirs {
		v.AddConfigPath(dir)
	}

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newViper returns a viper instance with every key defaulted, so that
// environment overrides apply even to keys missing from the file.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("SHOWBOX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, value := range configValues(DefaultConfig()) {
		v.SetDefault(key, value)
	}
	return v
}

// configValues flattens cfg into snake_case viper keys
func configValues(cfg *Config) map[string]interface{} {
	return map[string]interface{}{
		"catalog.type":      string(cfg.Catalog.Type),
		"catalog.base_url":  cfg.Catalog.URL,
		"catalog.timeout":   cfg.Catalog.Timeout.String(),
		"storage.driver":    cfg.Storage.Driver,
		"storage.path":      cfg.Storage.Path,
		"storage.redis_url": cfg.Storage.RedisURL,
		"ui.start_page":     cfg.UI.StartPage,
		"ui.genre_limit":    cfg.UI.GenreLimit,
		"ui.inspector_open": cfg.UI.InspectorOpen,
		"logging.file":      cfg.Logging.File,
		"logging.level":     cfg.Logging.Level,
	}
}

// Validate rejects configurations the app can't start with
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case "bolt", "memory":
	case "redis":
		if c.Storage.RedisURL == "" {
			return fmt.Errorf("storage.redis_url is required for the redis driver")
		}
	default:
		return fmt.Errorf("unknown storage driver: %q", c.Storage.Driver)
	}

	switch c.UI.StartPage {
	case "shows", "favorites":
	default:
		return fmt.Errorf("unknown ui.start_page: %q", c.UI.StartPage)
	}

	if c.Catalog.Timeout <= 0 {
		return fmt.Errorf("catalog.timeout must be positive")
	}
	return nil
}

// SaveConfig saves the configuration to the default config file
func SaveConfig(cfg *Config) error {
	return SaveConfigTo(defaultConfigPath(), cfg)
}

// SaveConfigTo writes cfg as config.yaml in dir
func SaveConfigTo(dir string, cfg *Config) error {
	// Ensure config directory exists
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Set fields individually to ensure correct key names (snake_case)
	v := viper.New()
	for key, value := range configValues(cfg) {
		v.Set(key, value)
	}

	configFile := filepath.Join(dir, "config.yaml")
	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

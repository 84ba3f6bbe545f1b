package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	// Database
	DBPath string `mapstructure:"db_path"`

	// API server
	APIHost string `mapstructure:"api_host"`
	APIPort int    `mapstructure:"api_port"`

	// Web UI server
	WebHost string `mapstructure:"web_host"`
	WebPort int    `mapstructure:"web_port"`

	// Optional CORS settings
	CORSOrigins []string `mapstructure:"cors_origins"`

	// Session cookie signing key for the web UI flash messages
	SessionSecret string `mapstructure:"session_secret"`

	// Listing page size for the web UI
	PageSize int `mapstructure:"page_size"`

	ConfigPath string
}

const (
	DefaultConfigPath    = "/etc/userhub/config.yml"
	DefaultDBPath        = "userhub.db"
	DefaultAPIHost       = "0.0.0.0"
	DefaultAPIPort       = 8080
	DefaultWebHost       = "0.0.0.0"
	DefaultWebPort       = 8081
	DefaultPageSize      = 5
	DefaultSessionSecret = "change-me"
)

// Load reads the config file, falling back to defaults when no file exists
// at the default location. An explicitly passed path must exist.
func Load(configPath string) (*Config, error) {
	explicit := configPath != ""
	if configPath == "" {
		configPath = DefaultConfigPath
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	// Set defaults
	viper.SetDefault("db_path", DefaultDBPath)
	viper.SetDefault("api_host", DefaultAPIHost)
	viper.SetDefault("api_port", DefaultAPIPort)
	viper.SetDefault("web_host", DefaultWebHost)
	viper.SetDefault("web_port", DefaultWebPort)
	viper.SetDefault("page_size", DefaultPageSize)
	viper.SetDefault("session_secret", DefaultSessionSecret)

	// Allow environment variable overrides
	viper.AutomaticEnv()
	viper.SetEnvPrefix("USERHUB")

	if err := viper.ReadInConfig(); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.ConfigPath = configPath

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("db_path is required")
	}

	if c.PageSize < 1 {
		return fmt.Errorf("page_size must be at least 1")
	}

	if c.SessionSecret == "" {
		return fmt.Errorf("session_secret is required")
	}

	return nil
}

func (c *Config) IsDevMode() bool {
	return os.Getenv("USERHUB_DEV_MODE") == "1"
}

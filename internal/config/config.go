package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// placeholderDatabaseURL marks the connection string shipped in example env files.
const placeholderDatabaseURL = "user:password@host"

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL     string `mapstructure:"DATABASE_URL"`
	DBMaxOpenConns  int    `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBMaxIdleConns  int    `mapstructure:"DB_MAX_IDLE_CONNS"`
	DBRunMigrations bool   `mapstructure:"DB_RUN_MIGRATIONS"`

	// Backend selection
	UseMockData bool   `mapstructure:"USE_MOCK_DATA"`
	UseRealData string `mapstructure:"USE_REAL_DATA"`

	// Mock backend
	MockLatency  time.Duration `mapstructure:"MOCK_LATENCY"`
	SeedMockData bool          `mapstructure:"SEED_MOCK_DATA"`

	// Identity used when a request carries no session
	DefaultUserID    string `mapstructure:"DEFAULT_USER_ID"`
	DefaultUserEmail string `mapstructure:"DEFAULT_USER_EMAIL"`
	RequireAuth      bool   `mapstructure:"REQUIRE_AUTH"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Set default values
	setDefaults(v)

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "5173")
	v.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_MAX_OPEN_CONNS", 20)
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)
	v.SetDefault("DB_RUN_MIGRATIONS", true)

	// Backend selection defaults
	v.SetDefault("USE_MOCK_DATA", false)
	v.SetDefault("USE_REAL_DATA", "")
	v.SetDefault("MOCK_LATENCY", "0s")
	v.SetDefault("SEED_MOCK_DATA", true)

	v.SetDefault("DEFAULT_USER_ID", "user-1")
	v.SetDefault("DEFAULT_USER_EMAIL", "demo@example.com")
	v.SetDefault("REQUIRE_AUTH", false)

	// CORS defaults
	v.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:5173", "http://localhost:4173"})
}

func validate(config *Config) error {
	if config.DefaultUserID == "" {
		return fmt.Errorf("DEFAULT_USER_ID is required")
	}
	if config.MockLatency < 0 {
		return fmt.Errorf("MOCK_LATENCY must not be negative")
	}
	return nil
}

// HasValidDatabaseURL reports whether DATABASE_URL is set to something other
// than the placeholder from the example env file.
func (c *Config) HasValidDatabaseURL() bool {
	url := strings.TrimSpace(c.DatabaseURL)
	return url != "" && !strings.Contains(url, placeholderDatabaseURL)
}

// UseRealBackend is the single decision binding the process to the Postgres
// backend or the in-memory one. USE_MOCK_DATA=true or USE_REAL_DATA=false force
// the in-memory backend.
func (c *Config) UseRealBackend() bool {
	if c.UseMockData {
		return false
	}
	if strings.EqualFold(strings.TrimSpace(c.UseRealData), "false") {
		return false
	}
	return c.HasValidDatabaseURL()
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

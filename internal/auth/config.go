package auth

import (
	"fmt"
	"strings"
	"time"

	apperrors "linkedlist-backend/internal/errors"

	"github.com/spf13/viper"
)

// Session storage modes
const (
	SessionModeStore     = "store"
	SessionModeRedis     = "redis"
	SessionModeStateless = "stateless"
)

// AuthConfig holds all authentication configuration for the application
type AuthConfig struct {
	Environment string `mapstructure:"ENVIRONMENT"`

	// GitHub OAuth application
	ClientID          string `mapstructure:"GITHUB_CLIENT_ID"`
	ClientSecret      string `mapstructure:"GITHUB_CLIENT_SECRET"`
	RedirectURI       string `mapstructure:"GITHUB_REDIRECT_URI"`
	EnterpriseBaseURL string `mapstructure:"GITHUB_ENTERPRISE_URL"`

	// Sessions
	SessionMode   string        `mapstructure:"SESSION_MODE"`
	SessionSecret string        `mapstructure:"SESSION_SECRET"`
	SessionTTL    time.Duration `mapstructure:"SESSION_TTL"`
	RedisURL      string        `mapstructure:"REDIS_URL"`

	// Browser redirects
	LoginPath         string `mapstructure:"LOGIN_PATH"`
	PostLoginRedirect string `mapstructure:"POST_LOGIN_REDIRECT"`
}

// LoadAuthConfig loads and validates authentication configuration
func LoadAuthConfig(configPath string) (*AuthConfig, error) {
	// Create a new viper instance for auth config
	v := viper.New()

	// Set config file details
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("auth")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Set default values
	setAuthDefaults(v)

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading auth config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()

	var config AuthConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling auth config: %w", err)
	}
	config.SessionMode = strings.ToLower(strings.TrimSpace(config.SessionMode))

	// Validate configuration
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("auth config validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfig checks that the selected session mode has what it needs.
// GitHub credentials are optional; without them only login is unavailable.
func (c *AuthConfig) ValidateConfig() error {
	switch c.SessionMode {
	case SessionModeStore:
	case SessionModeRedis:
		if c.RedisURL == "" {
			return apperrors.ErrRedisURLNotSet
		}
	case SessionModeStateless:
		if c.SessionSecret == "" {
			return apperrors.ErrSessionSecretNotSet
		}
	default:
		return fmt.Errorf("%w: %q", apperrors.ErrUnsupportedSessionMode, c.SessionMode)
	}

	if c.SessionTTL <= 0 {
		return apperrors.NewConfigurationError("SESSION_TTL must be positive")
	}
	return nil
}

// GitHubConfigured reports whether OAuth client credentials are present
func (c *AuthConfig) GitHubConfigured() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

// SecureCookies reports whether cookies must carry the Secure attribute
func (c *AuthConfig) SecureCookies() bool {
	return c.Environment == "production"
}

// setAuthDefaults sets default values for auth configuration
func setAuthDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")

	v.SetDefault("GITHUB_CLIENT_ID", "")
	v.SetDefault("GITHUB_CLIENT_SECRET", "")
	v.SetDefault("GITHUB_REDIRECT_URI", "http://localhost:5173/auth/callback/github")
	v.SetDefault("GITHUB_ENTERPRISE_URL", "")

	v.SetDefault("SESSION_MODE", SessionModeStore)
	v.SetDefault("SESSION_SECRET", "")
	v.SetDefault("SESSION_TTL", "720h")
	v.SetDefault("REDIS_URL", "")

	v.SetDefault("LOGIN_PATH", "/login")
	v.SetDefault("POST_LOGIN_REDIRECT", "/")
}

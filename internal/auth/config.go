package auth

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// AuthConfig holds all authentication configuration for the application
type AuthConfig struct {
	JWTSecret  string           `yaml:"jwt_secret" json:"jwt_secret"`
	Issuer     string           `yaml:"issuer" json:"issuer"`
	Audience   string           `yaml:"audience" json:"audience"`
	TokenTTL   time.Duration    `yaml:"token_ttl" json:"token_ttl"`
	Management ManagementConfig `yaml:"management" json:"management"`
}

// ManagementConfig holds credentials for the identity provider's management
// API, used for server-side account administration (profile sync, deletion)
type ManagementConfig struct {
	TokenURL     string `yaml:"token_url" json:"token_url"`
	ClientID     string `yaml:"client_id" json:"client_id"`
	ClientSecret string `yaml:"client_secret" json:"client_secret"`
	Audience     string `yaml:"audience" json:"audience"`
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
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found, use defaults and environment variables
		} else {
			return nil, fmt.Errorf("error reading auth config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()

	var config AuthConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling auth config: %w", err)
	}

	// Override with environment variables for sensitive data
	if jwtSecret := os.Getenv("JWT_SECRET"); jwtSecret != "" {
		config.JWTSecret = jwtSecret
	}
	if clientID := os.Getenv("AUTH_MGMT_CLIENT_ID"); clientID != "" {
		config.Management.ClientID = clientID
	}
	if clientSecret := os.Getenv("AUTH_MGMT_CLIENT_SECRET"); clientSecret != "" {
		config.Management.ClientSecret = clientSecret
	}
	if tokenURL := os.Getenv("AUTH_MGMT_TOKEN_URL"); tokenURL != "" {
		config.Management.TokenURL = tokenURL
	}
	if audience := os.Getenv("AUTH_MGMT_AUDIENCE"); audience != "" {
		config.Management.Audience = audience
	}

	// Validate configuration
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("auth config validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if c.Issuer == "" {
		return fmt.Errorf("issuer is required")
	}

	if c.TokenTTL <= 0 {
		return fmt.Errorf("token TTL must be positive")
	}

	return nil
}

// HasManagementAPI reports whether management API credentials are configured.
// The server runs without them, it just cannot administer provider accounts.
func (c *AuthConfig) HasManagementAPI() bool {
	return c.Management.TokenURL != "" && c.Management.ClientID != "" && c.Management.ClientSecret != ""
}

// setAuthDefaults sets default values for auth configuration
func setAuthDefaults(v *viper.Viper) {
	v.SetDefault("issuer", "boatlog-backend")
	v.SetDefault("audience", "boatlog")
	v.SetDefault("token_ttl", 24*time.Hour)
	// No default JWT secret - must be provided via environment variable
}

package config

import (
	"crypto/rand"
	"encoding/hex"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// GitHub OAuth app
	GitHubClientID     string
	GitHubClientSecret string
	GitHubRedirectURL  string

	// Optional server-side token for unauthenticated catalog reads.
	// Raises the API rate limit; absence is not an error.
	GitHubToken string

	// Session signing secret. Generated per-run when unset, which
	// invalidates all outstanding sessions across restarts.
	SessionSecret string

	// Storage
	StorageType string // "json", "sqlite" or "postgres"
	StorePath   string
	SQLitePath  string
	PostgresURL string

	// API Server
	APIPort string
	APIHost string

	// CLI
	APIEndpoint string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Prefer .env.local for local development, fall back to .env
	if err := godotenv.Load(".env.local"); err != nil {
		_ = godotenv.Load()
	}

	secret := getEnv("SESSION_SECRET", "")
	if secret == "" {
		var err error
		secret, err = randomSecret()
		if err != nil {
			return nil, &ConfigError{Field: "SESSION_SECRET", Message: "failed to generate session secret"}
		}
	}

	return &Config{
		GitHubClientID:     getEnv("GITHUB_CLIENT_ID", ""),
		GitHubClientSecret: getEnv("GITHUB_CLIENT_SECRET", ""),
		GitHubRedirectURL:  getEnv("GITHUB_REDIRECT_URI", "http://localhost:8000/auth/github/callback"),
		GitHubToken:        getEnv("GITHUB_TOKEN", ""),
		SessionSecret:      secret,
		StorageType:        getEnv("STORAGE_TYPE", "json"),
		StorePath:          getEnv("STORE_PATH", "packages.json"),
		SQLitePath:         getEnv("SQLITE_PATH", "./store.db"),
		PostgresURL:        getEnv("POSTGRES_URL", ""),
		APIPort:            getEnv("API_PORT", "8000"),
		APIHost:            getEnv("API_HOST", "localhost"),
		APIEndpoint:        getEnv("API_ENDPOINT", "http://localhost:8000"),
	}, nil
}

// getEnv returns the value of an environment variable or a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func randomSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.GitHubClientID == "" {
		return &ConfigError{Field: "GITHUB_CLIENT_ID", Message: "GitHub OAuth client ID is required"}
	}
	if c.GitHubClientSecret == "" {
		return &ConfigError{Field: "GITHUB_CLIENT_SECRET", Message: "GitHub OAuth client secret is required"}
	}
	if c.StorageType != "json" && c.StorageType != "sqlite" && c.StorageType != "postgres" {
		return &ConfigError{Field: "STORAGE_TYPE", Message: "must be 'json', 'sqlite' or 'postgres'"}
	}
	if c.StorageType == "postgres" && c.PostgresURL == "" {
		return &ConfigError{Field: "POSTGRES_URL", Message: "PostgreSQL URL is required when STORAGE_TYPE is 'postgres'"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}

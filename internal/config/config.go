package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the seeder and the stub server
type Config struct {
	Seeder   SeederConfig
	Server   ServerConfig
	Database DatabaseConfig
	CORS     CORSConfig
	Auth     AuthConfig
}

// SeederConfig holds the settings for a seeding run
type SeederConfig struct {
	BaseURL     string
	Count       int
	EmailDomain string
	Seed        int64 // 0 means unseeded
	Timeout     time.Duration
	APIKey      string
	Schedule    string // cron spec, empty runs once
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// AuthConfig holds the key the stub server expects on write routes.
// An empty key disables the check.
type AuthConfig struct {
	InternalAPIKey string
}

// Defaults used when the environment does not provide a value.
const (
	DefaultBaseURL     = "http://localhost:5001"
	DefaultCount       = 5
	DefaultEmailDomain = "foobartest.mil"
	DefaultTimeout     = 30 * time.Second
)

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	count, err := getEnvInt("SEEDER_COUNT", DefaultCount)
	if err != nil {
		return nil, err
	}
	seed, err := getEnvInt64("SEEDER_SEED", 0)
	if err != nil {
		return nil, err
	}
	timeout, err := getEnvDuration("SEEDER_TIMEOUT", DefaultTimeout)
	if err != nil {
		return nil, err
	}

	config := &Config{
		Seeder: SeederConfig{
			BaseURL:     getEnv("SEEDER_BASE_URL", DefaultBaseURL),
			Count:       count,
			EmailDomain: getEnv("SEEDER_EMAIL_DOMAIN", DefaultEmailDomain),
			Seed:        seed,
			Timeout:     timeout,
			APIKey:      os.Getenv("SEEDER_API_KEY"),
			Schedule:    os.Getenv("SEEDER_SCHEDULE"),
		},
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/portfolio_drafts.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{
				"http://localhost:3000",
				"http://localhost",
			}),
		},
		Auth: AuthConfig{
			InternalAPIKey: os.Getenv("INTERNAL_API_KEY"),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// Validate checks the seeder settings before a run starts.
func (c SeederConfig) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return errors.New("base URL is required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base URL must use http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("base URL must include a host")
	}
	if c.Count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", c.Count)
	}
	if strings.TrimSpace(c.EmailDomain) == "" {
		return errors.New("email domain is required")
	}
	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return n, nil
}

func getEnvInt64(key string, defaultValue int64) (int64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return n, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return d, nil
}

// getEnvList splits a comma separated variable, dropping empty entries.
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

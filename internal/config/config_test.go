package config_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ndewijer/portfolio-draft-seeder/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SEEDER_BASE_URL", "SEEDER_COUNT", "SEEDER_EMAIL_DOMAIN", "SEEDER_SEED",
		"SEEDER_TIMEOUT", "SEEDER_API_KEY", "SEEDER_SCHEDULE",
		"SERVER_PORT", "SERVER_HOST", "DB_PATH", "CORS_ALLOWED_ORIGINS", "INTERNAL_API_KEY",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad(t *testing.T) {
	t.Run("uses defaults when environment is empty", func(t *testing.T) {
		clearEnv(t)

		cfg, err := config.Load()
		if err != nil {
			t.Fatalf("Load() returned unexpected error: %v", err)
		}

		want := config.SeederConfig{
			BaseURL:     config.DefaultBaseURL,
			Count:       5,
			EmailDomain: "foobartest.mil",
			Timeout:     30 * time.Second,
		}
		if diff := cmp.Diff(want, cfg.Seeder); diff != "" {
			t.Errorf("Seeder config mismatch (-want +got):\n%s", diff)
		}
		if cfg.Server.Addr != "localhost:5001" {
			t.Errorf("Expected addr 'localhost:5001', got '%s'", cfg.Server.Addr)
		}
		if len(cfg.CORS.AllowedOrigins) != 2 {
			t.Errorf("Expected 2 default origins, got %d", len(cfg.CORS.AllowedOrigins))
		}
	})

	t.Run("reads overrides from environment", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SEEDER_BASE_URL", "https://api.example.test/prod")
		t.Setenv("SEEDER_COUNT", "12")
		t.Setenv("SEEDER_SEED", "42")
		t.Setenv("SEEDER_TIMEOUT", "5s")
		t.Setenv("SEEDER_SCHEDULE", "@every 1m")
		t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, ,http://b.test")

		cfg, err := config.Load()
		if err != nil {
			t.Fatalf("Load() returned unexpected error: %v", err)
		}

		if cfg.Seeder.BaseURL != "https://api.example.test/prod" {
			t.Errorf("Expected overridden base URL, got '%s'", cfg.Seeder.BaseURL)
		}
		if cfg.Seeder.Count != 12 {
			t.Errorf("Expected count 12, got %d", cfg.Seeder.Count)
		}
		if cfg.Seeder.Seed != 42 {
			t.Errorf("Expected seed 42, got %d", cfg.Seeder.Seed)
		}
		if cfg.Seeder.Timeout != 5*time.Second {
			t.Errorf("Expected timeout 5s, got %v", cfg.Seeder.Timeout)
		}
		if cfg.Seeder.Schedule != "@every 1m" {
			t.Errorf("Expected schedule '@every 1m', got '%s'", cfg.Seeder.Schedule)
		}
		if diff := cmp.Diff([]string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins); diff != "" {
			t.Errorf("Origins mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("rejects a non-numeric count", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SEEDER_COUNT", "five")

		if _, err := config.Load(); err == nil {
			t.Error("Expected error for invalid SEEDER_COUNT")
		}
	})

	t.Run("rejects an invalid timeout", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SEEDER_TIMEOUT", "soon")

		if _, err := config.Load(); err == nil {
			t.Error("Expected error for invalid SEEDER_TIMEOUT")
		}
	})
}

func TestSeederConfig_Validate(t *testing.T) {
	valid := config.SeederConfig{
		BaseURL:     "http://localhost:5001",
		Count:       1,
		EmailDomain: "foobartest.mil",
	}

	tests := []struct {
		name    string
		mutate  func(c *config.SeederConfig)
		wantErr bool
	}{
		{name: "valid config", mutate: func(_ *config.SeederConfig) {}},
		{name: "empty base URL", mutate: func(c *config.SeederConfig) { c.BaseURL = "" }, wantErr: true},
		{name: "unsupported scheme", mutate: func(c *config.SeederConfig) { c.BaseURL = "ftp://host" }, wantErr: true},
		{name: "missing host", mutate: func(c *config.SeederConfig) { c.BaseURL = "http://" }, wantErr: true},
		{name: "zero count", mutate: func(c *config.SeederConfig) { c.Count = 0 }, wantErr: true},
		{name: "empty domain", mutate: func(c *config.SeederConfig) { c.EmailDomain = " " }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			err := c.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

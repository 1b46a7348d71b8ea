package config

import (
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func TestAppConfig_Defaults(t *testing.T) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("expected default addr :8080, got %q", cfg.HTTP.Addr)
	}
	if cfg.Auth.DemoPassword != "1234" {
		t.Errorf("expected default demo password, got %q", cfg.Auth.DemoPassword)
	}
	if cfg.Auth.SessionTTL != 24*time.Hour {
		t.Errorf("expected default session TTL of 24h, got %v", cfg.Auth.SessionTTL)
	}
	if cfg.IsDev {
		t.Error("expected dev mode off by default")
	}
}

func TestAppConfig_ParseEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("APP_BASE_URL", "https://hr.example.com")
	t.Setenv("APP_COOKIE_DOMAIN", "hr.example.com")
	t.Setenv("HTTP_COMPRESSION_ENABLED", "true")
	t.Setenv("HTTP_COMPRESSION_LEVEL", "4")
	t.Setenv("AUTH_DEMO_PASSWORD", "letmein")
	t.Setenv("AUTH_SESSION_TTL", "1h")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}

	if cfg.HTTP.Addr != ":9090" {
		t.Errorf("expected addr :9090, got %q", cfg.HTTP.Addr)
	}
	if cfg.HTTP.BaseURL != "https://hr.example.com" {
		t.Errorf("unexpected base url %q", cfg.HTTP.BaseURL)
	}
	if cfg.HTTP.CookieDomain != "hr.example.com" {
		t.Errorf("unexpected cookie domain %q", cfg.HTTP.CookieDomain)
	}
	if !cfg.HTTP.CompressionEnabled {
		t.Error("expected compression enabled")
	}
	if cfg.HTTP.CompressionLevel != 4 {
		t.Errorf("expected compression level 4, got %d", cfg.HTTP.CompressionLevel)
	}
	if cfg.Auth.DemoPassword != "letmein" {
		t.Errorf("unexpected demo password %q", cfg.Auth.DemoPassword)
	}
	if cfg.Auth.SessionTTL != time.Hour {
		t.Errorf("expected session TTL 1h, got %v", cfg.Auth.SessionTTL)
	}
}

func TestHTTPConfig_SanitizeClampsCompressionLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    int
		expected int
	}{
		{"below range", 0, 1},
		{"negative", -3, 1},
		{"in range", 6, 6},
		{"above range", 12, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := HTTPConfig{CompressionLevel: tt.level}
			cfg.Sanitize()
			if cfg.CompressionLevel != tt.expected {
				t.Errorf("expected level %d, got %d", tt.expected, cfg.CompressionLevel)
			}
		})
	}
}

func TestAuthConfig_SanitizeFallbacks(t *testing.T) {
	cfg := AuthConfig{}
	cfg.Sanitize()

	if cfg.DemoPassword != "1234" {
		t.Errorf("expected password fallback, got %q", cfg.DemoPassword)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("expected TTL fallback, got %v", cfg.SessionTTL)
	}

	cfg = AuthConfig{DemoPassword: "custom", SessionTTL: -time.Minute}
	cfg.Sanitize()
	if cfg.DemoPassword != "custom" {
		t.Errorf("expected password kept, got %q", cfg.DemoPassword)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("expected negative TTL replaced, got %v", cfg.SessionTTL)
	}
}

func TestAppConfig_DetectDevMode(t *testing.T) {
	tests := []struct {
		name     string
		dev      string
		nodeEnv  string
		expected bool
	}{
		{"neither set", "", "", false},
		{"DEV true", "true", "", true},
		{"NODE_ENV development", "", "development", true},
		{"NODE_ENV dev", "", "dev", true},
		{"NODE_ENV production", "", "production", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.dev != "" {
				t.Setenv("DEV", tt.dev)
			}
			t.Setenv("NODE_ENV", tt.nodeEnv)

			var cfg AppConfig
			if err := env.Parse(&cfg); err != nil {
				t.Fatalf("parse config: %v", err)
			}
			cfg.Sanitize()

			if cfg.IsDev != tt.expected {
				t.Errorf("expected IsDev=%v, got %v", tt.expected, cfg.IsDev)
			}
		})
	}
}

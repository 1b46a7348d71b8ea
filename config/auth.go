package config

import "time"

// AuthConfig groups demo authentication and session configuration.
//
// The application authenticates against a fixed in-memory user
// directory; the only secret is the shared demo password.
type AuthConfig struct {
	// DemoPassword is the shared password every directory user signs
	// in with. Override it to something non-obvious when exposing a
	// demo instance publicly.
	DemoPassword string `env:"AUTH_DEMO_PASSWORD" envDefault:"1234"`

	// SessionTTL is the lifetime of the session cookies.
	SessionTTL time.Duration `env:"AUTH_SESSION_TTL" envDefault:"24h"`
}

// Sanitize applies guardrails to authentication configuration values.
func (a *AuthConfig) Sanitize() {
	if a.DemoPassword == "" {
		a.DemoPassword = "1234"
	}
	if a.SessionTTL <= 0 {
		a.SessionTTL = 24 * time.Hour
	}
}

package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config captures the runtime configuration for the application.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Session  SessionConfig
	Station  StationConfig
	Auth     AuthConfig
	LogLevel string
}

// ServerConfig configures the HTTP server runtime behavior.
type ServerConfig struct {
	Addr string
}

// DatabaseConfig contains the database connection settings. The URL scheme
// selects the driver: sqlite://path or postgres://...
type DatabaseConfig struct {
	URL string
}

// SessionConfig controls the browser session cookie.
type SessionConfig struct {
	Lifetime     time.Duration
	CookieName   string
	CookieSecure bool
}

// StationConfig points at the external now-playing endpoint and sets the
// poller cadence.
type StationConfig struct {
	NowPlayingURL string
	PollInterval  time.Duration
	TickInterval  time.Duration
}

// AuthConfig holds the password-reset token settings.
type AuthConfig struct {
	ResetTokenSecret string
	ResetTokenTTL    time.Duration
}

// Load inspects the environment and builds a Config value.
func Load() (Config, error) {
	cfg := Config{}

	cfg.Server = ServerConfig{
		Addr: firstNonEmpty(
			os.Getenv("SERVER_ADDR"),
			os.Getenv("ADDR"),
			":8080",
		),
	}

	cfg.Database = DatabaseConfig{
		URL: firstNonEmpty(
			os.Getenv("DATABASE_URL"),
			os.Getenv("DB_URL"),
			"sqlite://remixradio.db",
		),
	}

	lifetime, err := durationEnv("SESSION_LIFETIME", 12*time.Hour)
	if err != nil {
		return Config{}, err
	}
	cfg.Session = SessionConfig{
		Lifetime:     lifetime,
		CookieName:   firstNonEmpty(os.Getenv("SESSION_COOKIE_NAME"), "kingz_session"),
		CookieSecure: boolEnv("SESSION_COOKIE_SECURE"),
	}

	poll, err := durationEnv("NOWPLAYING_POLL_INTERVAL", 15*time.Second)
	if err != nil {
		return Config{}, err
	}
	tick, err := durationEnv("NOWPLAYING_TICK_INTERVAL", time.Second)
	if err != nil {
		return Config{}, err
	}
	cfg.Station = StationConfig{
		NowPlayingURL: firstNonEmpty(
			os.Getenv("NOWPLAYING_URL"),
			"https://demo.azuracast.com/api/nowplaying/1",
		),
		PollInterval: poll,
		TickInterval: tick,
	}

	ttl, err := durationEnv("RESET_TOKEN_TTL", 30*time.Minute)
	if err != nil {
		return Config{}, err
	}
	cfg.Auth = AuthConfig{
		ResetTokenSecret: firstNonEmpty(os.Getenv("RESET_TOKEN_SECRET"), "kingz-reset-secret"),
		ResetTokenTTL:    ttl,
	}

	cfg.LogLevel = firstNonEmpty(os.Getenv("LOG_LEVEL"), "info")

	if strings.TrimSpace(cfg.Server.Addr) == "" {
		return Config{}, fmt.Errorf("server address must not be empty")
	}
	if cfg.Station.PollInterval <= 0 || cfg.Station.TickInterval <= 0 {
		return Config{}, fmt.Errorf("poller intervals must be positive")
	}

	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return parsed, nil
}

func boolEnv(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

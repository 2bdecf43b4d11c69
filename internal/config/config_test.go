package config

import (
	"testing"
	"time"
)

func TestFirstNonEmpty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{"all empty", []string{"", "   "}, ""},
		{"first non empty", []string{"foo", "bar"}, "foo"},
		{"skips whitespace", []string{"   ", "bar"}, "bar"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := firstNonEmpty(tt.values...); got != tt.want {
				t.Fatalf("firstNonEmpty(%v) = %q, want %q", tt.values, got, tt.want)
			}
		})
	}
}

func TestDurationEnv(t *testing.T) {
	t.Setenv("TEST_DURATION", "")
	got, err := durationEnv("TEST_DURATION", 5*time.Second)
	if err != nil {
		t.Fatalf("durationEnv() error = %v", err)
	}
	if got != 5*time.Second {
		t.Fatalf("durationEnv() = %s, want 5s", got)
	}

	t.Setenv("TEST_DURATION", "2m")
	got, err = durationEnv("TEST_DURATION", 5*time.Second)
	if err != nil {
		t.Fatalf("durationEnv() error = %v", err)
	}
	if got != 2*time.Minute {
		t.Fatalf("durationEnv() = %s, want 2m", got)
	}

	t.Setenv("TEST_DURATION", "nonsense")
	if _, err := durationEnv("TEST_DURATION", 5*time.Second); err == nil {
		t.Fatal("expected error for invalid duration")
	}
}

func TestBoolEnv(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"true", true},
		{"1", true},
		{"YES", true},
		{"off", false},
		{"nope", false},
	}

	for _, tt := range tests {
		t.Setenv("TEST_BOOL", tt.value)
		if got := boolEnv("TEST_BOOL"); got != tt.want {
			t.Fatalf("boolEnv(%q) = %t, want %t", tt.value, got, tt.want)
		}
	}
}

func TestLoadUsesEnvironmentDefaults(t *testing.T) {
	t.Setenv("SERVER_ADDR", "")
	t.Setenv("ADDR", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_URL", "")
	t.Setenv("SESSION_LIFETIME", "")
	t.Setenv("SESSION_COOKIE_NAME", "")
	t.Setenv("NOWPLAYING_URL", "")
	t.Setenv("NOWPLAYING_POLL_INTERVAL", "")
	t.Setenv("NOWPLAYING_TICK_INTERVAL", "")
	t.Setenv("RESET_TOKEN_TTL", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Addr != ":8080" {
		t.Fatalf("Server.Addr = %q, want %q", cfg.Server.Addr, ":8080")
	}
	if cfg.Database.URL != "sqlite://remixradio.db" {
		t.Fatalf("Database.URL = %q", cfg.Database.URL)
	}
	if cfg.Session.Lifetime != 12*time.Hour {
		t.Fatalf("Session.Lifetime = %s", cfg.Session.Lifetime)
	}
	if cfg.Session.CookieName != "kingz_session" {
		t.Fatalf("Session.CookieName = %q", cfg.Session.CookieName)
	}
	if cfg.Station.NowPlayingURL != "https://demo.azuracast.com/api/nowplaying/1" {
		t.Fatalf("Station.NowPlayingURL = %q", cfg.Station.NowPlayingURL)
	}
	if cfg.Station.PollInterval != 15*time.Second {
		t.Fatalf("Station.PollInterval = %s", cfg.Station.PollInterval)
	}
	if cfg.Station.TickInterval != time.Second {
		t.Fatalf("Station.TickInterval = %s", cfg.Station.TickInterval)
	}
	if cfg.Auth.ResetTokenTTL != 30*time.Minute {
		t.Fatalf("Auth.ResetTokenTTL = %s", cfg.Auth.ResetTokenTTL)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel = %q", cfg.LogLevel)
	}
}

func TestLoadPrefersServerAddr(t *testing.T) {
	t.Setenv("SERVER_ADDR", "127.0.0.1:9000")
	t.Setenv("ADDR", ":3000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Fatalf("Server.Addr = %q, want %q", cfg.Server.Addr, "127.0.0.1:9000")
	}
}

func TestLoadRejectsInvalidInterval(t *testing.T) {
	t.Setenv("NOWPLAYING_POLL_INTERVAL", "banana")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid poll interval")
	}
}

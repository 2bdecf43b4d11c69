package state

import (
	"context"
	"strings"

	"remixradio/models"
)

// Branding is the station name and logo pair served to clients.
type Branding struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// Branding returns the current station branding.
func (s *Store) Branding() Branding {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Branding{Name: s.stationName, Logo: s.stationLogo}
}

// SetBranding updates the station name and logo.
func (s *Store) SetBranding(ctx context.Context, name, logo string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.stationName = name
	s.stationLogo = strings.TrimSpace(logo)
	s.persistRaw(ctx, keyStationName, s.stationName)
	s.persistRaw(ctx, keyStationLogo, s.stationLogo)
	return nil
}

// Background returns the current backdrop configuration.
func (s *Store) Background() models.BackgroundConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.background
}

// SetBackground replaces the backdrop configuration. Brightness is clamped
// into [0, 1].
func (s *Store) SetBackground(ctx context.Context, cfg models.BackgroundConfig) error {
	if !models.ValidBackgroundKind(cfg.Kind) {
		return ErrInvalidInput
	}
	cfg.Brightness = models.ClampBrightness(cfg.Brightness)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.background = cfg
	s.persistJSON(ctx, keyBackground, s.background)
	return nil
}

// CheckAdminPasscode compares a submitted passcode against the shared admin
// secret.
func (s *Store) CheckAdminPasscode(passcode string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return passcode != "" && passcode == s.adminPasscode
}

// SetAdminPasscode rotates the shared admin secret.
func (s *Store) SetAdminPasscode(ctx context.Context, passcode string) error {
	passcode = strings.TrimSpace(passcode)
	if passcode == "" {
		return ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.adminPasscode = passcode
	s.persistRaw(ctx, keyAdminPasscode, s.adminPasscode)
	return nil
}

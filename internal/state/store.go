// Package state holds the application-state aggregate: the active session,
// the account registry, the mailing list and every station content
// registry. All mutations go through the Store, which re-serializes the
// owning aggregate to its fixed storage key after each change.
package state

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"

	applog "remixradio/internal/log"
	"remixradio/internal/seed"
	"remixradio/models"
)

// Fixed storage keys, one per persisted aggregate.
const (
	keySession       = "kingz_session"
	keyAccounts      = "kingz_accounts"
	keyMailingList   = "kingz_mailing_list"
	keyAdminPasscode = "kingz_admin_pass"
	keyStationName   = "station_name"
	keyStationLogo   = "station_logo"
	keyBackground    = "bg_config"
	keyDJs           = "custom_djs"
	keyEvents        = "custom_events"
	keyGallery       = "custom_gallery"
	keyChat          = "kingz_chat"
)

// StorageKeys lists every fixed storage key, in load order.
func StorageKeys() []string {
	return []string{
		keySession,
		keyAccounts,
		keyMailingList,
		keyAdminPasscode,
		keyStationName,
		keyStationLogo,
		keyBackground,
		keyDJs,
		keyEvents,
		keyGallery,
		keyChat,
	}
}

var (
	ErrAccountExists      = errors.New("account already exists")
	ErrAccountNotFound    = errors.New("account not found")
	ErrDJNotFound         = errors.New("dj not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmptyMessage       = errors.New("message text must not be empty")
	ErrInvalidInput       = errors.New("invalid input")
)

// Store is the in-memory application state backed by per-key durable
// storage. A single mutex serializes writers; the original client was
// single-threaded, the HTTP server is not.
type Store struct {
	db  *gorm.DB
	now func() time.Time

	mu            sync.Mutex
	session       *models.Session
	accounts      []models.Account
	mailingList   []string
	adminPasscode string
	stationName   string
	stationLogo   string
	background    models.BackgroundConfig
	djs           []models.DJ
	events        []models.EventListing
	gallery       []models.GalleryItem
	chat          []models.ChatMessage
}

// NewStore builds a Store populated with the built-in defaults. Call Load
// to rehydrate persisted aggregates.
func NewStore(db *gorm.DB) *Store {
	s := &Store{
		db:  db,
		now: time.Now,
	}
	s.applyDefaults()
	return s
}

func (s *Store) applyDefaults() {
	s.session = nil
	s.accounts = nil
	s.mailingList = nil
	s.adminPasscode = seed.AdminPasscode
	s.stationName = seed.StationName
	s.stationLogo = seed.StationLogo
	s.background = seed.Background()
	s.djs = seed.DJs()
	s.events = seed.Events()
	s.gallery = seed.Gallery()
	s.chat = seed.Chat(s.now())
}

// Load rehydrates every aggregate from storage. A missing or malformed
// payload leaves the built-in default in place; it never fails the load.
func (s *Store) Load(ctx context.Context) error {
	if s.db == nil {
		return errors.New("state: database handle is nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.loadJSON(ctx, keySession, &s.session)
	s.loadJSON(ctx, keyAccounts, &s.accounts)
	s.loadJSON(ctx, keyMailingList, &s.mailingList)
	s.loadJSON(ctx, keyBackground, &s.background)
	s.loadJSON(ctx, keyDJs, &s.djs)
	s.loadJSON(ctx, keyEvents, &s.events)
	s.loadJSON(ctx, keyGallery, &s.gallery)
	s.loadJSON(ctx, keyChat, &s.chat)
	s.loadString(ctx, keyAdminPasscode, &s.adminPasscode)
	s.loadString(ctx, keyStationName, &s.stationName)
	s.loadString(ctx, keyStationLogo, &s.stationLogo)

	if s.session != nil && !s.session.Active() {
		s.session = nil
	}

	return nil
}

func (s *Store) loadJSON(ctx context.Context, key string, target any) {
	raw, ok := s.fetch(ctx, key)
	if !ok {
		return
	}
	if err := json.Unmarshal([]byte(raw), target); err != nil {
		applog.Warn(ctx, "ignoring malformed stored payload", "key", key, "error", err)
	}
}

func (s *Store) loadString(ctx context.Context, key string, target *string) {
	raw, ok := s.fetch(ctx, key)
	if !ok {
		return
	}
	if raw == "" {
		return
	}
	*target = raw
}

func (s *Store) fetch(ctx context.Context, key string) (string, bool) {
	var entry models.StateEntry
	err := s.db.WithContext(ctx).First(&entry, "key = ?", key).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			applog.Warn(ctx, "failed to read stored payload", "key", key, "error", err)
		}
		return "", false
	}
	return entry.Value, true
}

// persistJSON serializes an aggregate and upserts it under its key.
// Storage failures are logged and do not fail the mutation.
func (s *Store) persistJSON(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		applog.Error(ctx, "failed to serialize aggregate", "key", key, "error", err)
		return
	}
	s.persistRaw(ctx, key, string(raw))
}

func (s *Store) persistRaw(ctx context.Context, key, value string) {
	if s.db == nil {
		return
	}
	entry := models.StateEntry{Key: key, Value: value, UpdatedAt: s.now()}
	if err := s.db.WithContext(ctx).Save(&entry).Error; err != nil {
		applog.Error(ctx, "failed to persist aggregate", "key", key, "error", err)
	}
}

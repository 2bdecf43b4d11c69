package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"remixradio/internal/azuracast"
	"remixradio/internal/state"
	"remixradio/internal/station"
	"remixradio/models"
)

type stubFetcher struct{}

func (stubFetcher) Fetch(context.Context) (azuracast.NowPlaying, error) {
	return azuracast.NowPlaying{
		NowPlaying: azuracast.Track{
			Elapsed:  42,
			Duration: 200,
			Song:     azuracast.Song{Title: "Night Drive", Artist: "Kingz Crew"},
		},
	}, nil
}

func newTestDeps(t *testing.T) *scs.SessionManager {
	t.Helper()

	dsn := "file:handlertest_" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	if err := db.AutoMigrate(&models.StateEntry{}); err != nil {
		t.Fatalf("migrate schema: %v", err)
	}

	st := state.NewStore(db)
	if err := st.Load(context.Background()); err != nil {
		t.Fatalf("load store: %v", err)
	}

	p := station.NewPoller(stubFetcher{}, time.Hour, time.Hour)
	t.Cleanup(p.Stop)

	sm := scs.New()
	Configure(sm, st, p, AuthConfig{ResetTokenSecret: "handler-test-secret", ResetTokenTTL: time.Minute})
	return sm
}

func jsonRequest(t *testing.T, sm *scs.SessionManager, method, target string, payload any) *http.Request {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			t.Fatalf("encode payload: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &body)
	ctx, err := sm.Load(req.Context(), "")
	if err != nil {
		t.Fatalf("load session context: %v", err)
	}
	return req.WithContext(ctx)
}

func TestLoginUnverifiedRoutesToVerify(t *testing.T) {
	sm := newTestDeps(t)

	if _, err := store.SignUp(context.Background(), "fan@x.com", "abc123", ""); err != nil {
		t.Fatalf("seed account: %v", err)
	}

	req := jsonRequest(t, sm, http.MethodPost, "/api/auth/login", map[string]string{
		"email": "fan@x.com", "pass": "abc123",
	})
	rr := httptest.NewRecorder()
	Login(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("login status = %d", rr.Code)
	}
	var resp authStateResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.State != stateVerify {
		t.Fatalf("state = %q, want %q", resp.State, stateVerify)
	}
	if _, ok := store.Session(); ok {
		t.Fatal("unverified login must not establish a session")
	}
}

func TestLoginRejectsWrongPassphrase(t *testing.T) {
	sm := newTestDeps(t)

	if _, err := store.SignUp(context.Background(), "fan@x.com", "abc123", ""); err != nil {
		t.Fatalf("seed account: %v", err)
	}
	if _, err := store.VerifyAccount(context.Background(), "fan@x.com"); err != nil {
		t.Fatalf("verify account: %v", err)
	}

	req := jsonRequest(t, sm, http.MethodPost, "/api/auth/login", map[string]string{
		"email": "fan@x.com", "pass": "ABC123",
	})
	rr := httptest.NewRecorder()
	Login(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rr.Code)
	}
}

func TestForgotAndResetListenerPassphrase(t *testing.T) {
	sm := newTestDeps(t)

	if _, err := store.SignUp(context.Background(), "fan@x.com", "abc123", ""); err != nil {
		t.Fatalf("seed account: %v", err)
	}
	if _, err := store.VerifyAccount(context.Background(), "fan@x.com"); err != nil {
		t.Fatalf("verify account: %v", err)
	}

	req := jsonRequest(t, sm, http.MethodPost, "/api/auth/forgot", map[string]string{
		"email": "fan@x.com", "type": "listener",
	})
	rr := httptest.NewRecorder()
	ForgotPassword(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("forgot status = %d", rr.Code)
	}
	var issued forgotResponse
	if err := json.NewDecoder(rr.Body).Decode(&issued); err != nil {
		t.Fatalf("decode token response: %v", err)
	}
	if issued.Token == "" {
		t.Fatal("expected a reset token in the response")
	}

	req = jsonRequest(t, sm, http.MethodPost, "/api/auth/reset", map[string]string{
		"token": issued.Token, "newPass": "fresh",
	})
	rr = httptest.NewRecorder()
	ResetPassword(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("reset status = %d", rr.Code)
	}

	if _, err := store.Login(context.Background(), "fan@x.com", "abc123"); err == nil {
		t.Fatal("old passphrase still accepted")
	}
	if _, err := store.Login(context.Background(), "fan@x.com", "fresh"); err != nil {
		t.Fatalf("new passphrase rejected: %v", err)
	}
}

func TestForgotUnknownEmail(t *testing.T) {
	sm := newTestDeps(t)

	req := jsonRequest(t, sm, http.MethodPost, "/api/auth/forgot", map[string]string{
		"email": "nobody@x.com", "type": "listener",
	})
	rr := httptest.NewRecorder()
	ForgotPassword(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
}

func TestResetRejectsGarbageToken(t *testing.T) {
	sm := newTestDeps(t)

	req := jsonRequest(t, sm, http.MethodPost, "/api/auth/reset", map[string]string{
		"token": "not-a-token", "newPass": "fresh",
	})
	rr := httptest.NewRecorder()
	ResetPassword(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rr.Code)
	}
}

func TestNowPlayingPlaceholderBeforeFirstPoll(t *testing.T) {
	sm := newTestDeps(t)

	req := jsonRequest(t, sm, http.MethodGet, "/api/nowplaying", nil)
	rr := httptest.NewRecorder()
	NowPlaying(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var status station.Status
	if err := json.NewDecoder(rr.Body).Decode(&status); err != nil {
		t.Fatalf("decode status: %v", err)
	}
	if status.Available {
		t.Fatal("expected available=false before the first poll")
	}
}

func TestSetPlayingTogglesGate(t *testing.T) {
	sm := newTestDeps(t)

	req := jsonRequest(t, sm, http.MethodPost, "/api/player/playing", map[string]bool{"playing": true})
	rr := httptest.NewRecorder()
	SetPlaying(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var status station.Status
	if err := json.NewDecoder(rr.Body).Decode(&status); err != nil {
		t.Fatalf("decode status: %v", err)
	}
	if !status.Playing {
		t.Fatal("expected playing=true after the toggle")
	}
}

func TestAdminDeleteListenerIsIdempotent(t *testing.T) {
	sm := newTestDeps(t)

	if _, err := store.SignUp(context.Background(), "fan@x.com", "abc123", ""); err != nil {
		t.Fatalf("seed account: %v", err)
	}

	req := jsonRequest(t, sm, http.MethodDelete, "/api/admin/listeners/fan@x.com", nil)
	req.SetPathValue("email", "fan@x.com")
	rr := httptest.NewRecorder()
	AdminDeleteListener(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("first delete status = %d", rr.Code)
	}
	if got := len(store.MailingList()); got != 0 {
		t.Fatalf("mailing list size after delete = %d, want 0", got)
	}

	req = jsonRequest(t, sm, http.MethodDelete, "/api/admin/listeners/fan@x.com", nil)
	req.SetPathValue("email", "fan@x.com")
	rr = httptest.NewRecorder()
	AdminDeleteListener(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("second delete status = %d", rr.Code)
	}
}

func TestAdminUpdateBackgroundRejectsUnknownKind(t *testing.T) {
	sm := newTestDeps(t)

	req := jsonRequest(t, sm, http.MethodPut, "/api/admin/background", map[string]any{
		"type": "gradient", "value": "#fff", "brightness": 0.5,
	})
	rr := httptest.NewRecorder()
	AdminUpdateBackground(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}

package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"

	applog "remixradio/internal/log"
	"remixradio/internal/state"
	"remixradio/internal/station"
	"remixradio/models"
)

// Browser session keys.
const (
	sessionAuthenticatedKey = "auth:authenticated"
	sessionEmailKey         = "auth:user:email"
	sessionNameKey          = "auth:user:name"
	sessionRoleKey          = "auth:user:role"
	sessionDJIDKey          = "auth:user:djid"
	sessionPendingEmailKey  = "auth:pending:email"
	sessionAdminKey         = "admin:unlocked"
)

const defaultResetTokenTTL = 30 * time.Minute

// Auth flow states mirrored back to clients.
const (
	stateLogin         = "login"
	stateVerify        = "verify"
	stateAuthenticated = "authenticated"
)

var (
	sessionManager *scs.SessionManager
	store          *state.Store
	poller         *station.Poller
	resetSecret    []byte
	resetTokenTTL  = defaultResetTokenTTL
)

// AuthConfig carries the reset-token settings into the handlers.
type AuthConfig struct {
	ResetTokenSecret string
	ResetTokenTTL    time.Duration
}

// Configure installs the shared dependencies used by the HTTP handlers.
func Configure(sm *scs.SessionManager, st *state.Store, p *station.Poller, authCfg AuthConfig) {
	sessionManager = sm
	store = st
	poller = p
	resetSecret = []byte(authCfg.ResetTokenSecret)
	resetTokenTTL = authCfg.ResetTokenTTL
	if resetTokenTTL <= 0 {
		resetTokenTTL = defaultResetTokenTTL
	}
}

// establishSession records the identity in the browser session, mirrors it
// into the session aggregate, and wakes the now-playing poller.
func establishSession(r *http.Request, session models.Session) error {
	if sessionManager == nil || store == nil {
		return errors.New("session dependencies not configured")
	}
	if err := sessionManager.RenewToken(r.Context()); err != nil {
		return err
	}
	sessionManager.Put(r.Context(), sessionAuthenticatedKey, true)
	sessionManager.Put(r.Context(), sessionEmailKey, session.Email)
	sessionManager.Put(r.Context(), sessionNameKey, session.Name)
	sessionManager.Put(r.Context(), sessionRoleKey, string(session.Role))
	sessionManager.Put(r.Context(), sessionDJIDKey, session.DJID)
	sessionManager.Remove(r.Context(), sessionPendingEmailKey)

	store.SetSession(r.Context(), session)
	// The poller outlives the request; it stops on sign-out or shutdown.
	if poller != nil {
		poller.Start(context.Background())
	}
	return nil
}

// currentSession rebuilds the signed-in identity from the browser session.
func currentSession(r *http.Request) (models.Session, bool) {
	if sessionManager == nil {
		return models.Session{}, false
	}
	if !sessionManager.GetBool(r.Context(), sessionAuthenticatedKey) {
		return models.Session{}, false
	}
	email := sessionManager.GetString(r.Context(), sessionEmailKey)
	if email == "" {
		return models.Session{}, false
	}
	session := models.Session{
		Email:    email,
		Name:     sessionManager.GetString(r.Context(), sessionNameKey),
		Verified: true,
		Role:     models.SessionRole(sessionManager.GetString(r.Context(), sessionRoleKey)),
		DJID:     sessionManager.GetString(r.Context(), sessionDJIDKey),
	}
	if session.Role == "" {
		session.Role = models.RoleListener
	}
	return session, true
}

// ActiveSession returns true when the current request carries a verified,
// signed-in session.
func ActiveSession(r *http.Request) bool {
	_, ok := currentSession(r)
	return ok
}

// AdminUnlocked reports whether the admin overlay has been unlocked on this
// browser session.
func AdminUnlocked(r *http.Request) bool {
	if sessionManager == nil {
		return false
	}
	return sessionManager.GetBool(r.Context(), sessionAdminKey)
}

// RequireAuthentication ensures a verified session exists before the
// resource is reachable. Everything beyond the auth screen sits behind it.
func RequireAuthentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !ActiveSession(r) {
			writeError(w, http.StatusUnauthorized, "sign in required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin gates the admin overlay. The passcode gate is independent of
// the listener/DJ identity.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !ActiveSession(r) {
			writeError(w, http.StatusUnauthorized, "sign in required")
			return
		}
		if !AdminUnlocked(r) {
			writeError(w, http.StatusForbidden, "admin console locked")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Logout destroys the browser session, clears the stored session aggregate
// and stops the now-playing poller. Accounts are left intact.
func Logout(w http.ResponseWriter, r *http.Request) {
	if sessionManager != nil {
		if err := sessionManager.Destroy(r.Context()); err != nil {
			applog.Error(r.Context(), "failed to destroy session", "error", err)
		}
	}
	if store != nil {
		store.ClearSession(r.Context())
	}
	if poller != nil {
		poller.Stop()
	}
	writeJSON(w, http.StatusOK, authStateResponse{State: stateLogin})
}

// SessionInfo reports the current session projection.
func SessionInfo(w http.ResponseWriter, r *http.Request) {
	session, ok := currentSession(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "no active session")
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{State: stateAuthenticated, Session: session})
}

type authStateResponse struct {
	State string `json:"state"`
	Email string `json:"email,omitempty"`
}

type sessionResponse struct {
	State   string         `json:"state"`
	Session models.Session `json:"session"`
}

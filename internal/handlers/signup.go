package handlers

import (
	"errors"
	"net/http"

	applog "remixradio/internal/log"
	"remixradio/internal/state"
	"remixradio/models"
)

type signupRequest struct {
	Email      string `json:"email"`
	Passphrase string `json:"pass"`
	Name       string `json:"name"`
}

// Signup registers a new listener account. The account starts unverified
// and the caller is moved to the verification step; no session is
// established yet.
func Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	account, err := store.SignUp(r.Context(), req.Email, req.Passphrase, req.Name)
	switch {
	case errors.Is(err, state.ErrAccountExists):
		writeError(w, http.StatusConflict, "an account with this email already exists")
		return
	case errors.Is(err, state.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "email and passphrase are required")
		return
	case err != nil:
		applog.Error(r.Context(), "signup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "could not create account")
		return
	}

	sessionManager.Put(r.Context(), sessionPendingEmailKey, account.Email)
	applog.Info(r.Context(), "account created", "email", account.Email)
	writeJSON(w, http.StatusCreated, authStateResponse{State: stateVerify, Email: account.Email})
}

// Login authenticates a listener. A match against an unverified account
// routes back to the verification step instead of establishing a session.
func Login(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	account, err := store.Login(r.Context(), req.Email, req.Passphrase)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid email or passphrase")
		return
	}

	if !account.Verified {
		sessionManager.Put(r.Context(), sessionPendingEmailKey, account.Email)
		writeJSON(w, http.StatusOK, authStateResponse{State: stateVerify, Email: account.Email})
		return
	}

	session := models.ListenerSession(account)
	if err := establishSession(r, session); err != nil {
		applog.Error(r.Context(), "failed to establish session", "error", err)
		writeError(w, http.StatusInternalServerError, "could not establish session")
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{State: stateAuthenticated, Session: session})
}

// Verify marks the pending account as verified and signs it in. The
// verification itself is simulated; any request for the pending email
// succeeds.
func Verify(w http.ResponseWriter, r *http.Request) {
	email := sessionManager.GetString(r.Context(), sessionPendingEmailKey)
	if email == "" {
		var req struct {
			Email string `json:"email"`
		}
		if err := decodeBody(r, &req); err == nil {
			email = req.Email
		}
	}
	if email == "" {
		writeError(w, http.StatusBadRequest, "no pending verification")
		return
	}

	account, err := store.VerifyAccount(r.Context(), email)
	if err != nil {
		writeError(w, http.StatusNotFound, "no account pending verification for this email")
		return
	}

	session := models.ListenerSession(account)
	if err := establishSession(r, session); err != nil {
		applog.Error(r.Context(), "failed to establish session", "error", err)
		writeError(w, http.StatusInternalServerError, "could not establish session")
		return
	}
	applog.Info(r.Context(), "account verified", "email", account.Email)
	writeJSON(w, http.StatusOK, sessionResponse{State: stateAuthenticated, Session: session})
}

package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"remixradio/internal/auth"
	applog "remixradio/internal/log"
	"remixradio/internal/state"
	"remixradio/models"
)

type forgotRequest struct {
	Email string         `json:"email"`
	Type  auth.ResetType `json:"type"`
}

type forgotResponse struct {
	Token string `json:"token"`
}

// ForgotPassword issues a reset token for the given email. Mail dispatch is
// simulated: the token is returned directly in the response.
func ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if req.Type == "" {
		req.Type = auth.ResetListener
	}
	if !auth.ValidResetType(req.Type) {
		writeError(w, http.StatusBadRequest, "unknown reset type")
		return
	}
	if !resetTargetExists(req.Email, req.Type) {
		writeError(w, http.StatusNotFound, "no account found for this email")
		return
	}

	token, err := auth.BuildResetToken(resetSecret, req.Email, req.Type, resetTokenTTL, time.Now())
	if err != nil {
		applog.Error(r.Context(), "failed to build reset token", "error", err)
		writeError(w, http.StatusInternalServerError, "could not issue reset token")
		return
	}
	applog.Info(r.Context(), "reset token issued", "email", models.NormalizeEmail(req.Email), "type", string(req.Type))
	writeJSON(w, http.StatusOK, forgotResponse{Token: token})
}

func resetTargetExists(email string, resetType auth.ResetType) bool {
	normalized := models.NormalizeEmail(email)
	if normalized == "" {
		return false
	}
	switch resetType {
	case auth.ResetDJ:
		for _, dj := range store.DJs() {
			if models.NormalizeEmail(dj.Email) == normalized {
				return true
			}
		}
	default:
		for _, account := range store.Accounts() {
			if account.Email == normalized {
				return true
			}
		}
	}
	return false
}

type resetRequest struct {
	Token      string `json:"token"`
	Passphrase string `json:"newPass"`
}

// ResetPassword consumes a reset token and installs the new passphrase on
// the targeted account or DJ profile.
func ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if strings.TrimSpace(req.Passphrase) == "" {
		writeError(w, http.StatusBadRequest, "new passphrase is required")
		return
	}

	claims, err := auth.ParseResetToken(resetSecret, req.Token, time.Now())
	if err != nil {
		if errors.Is(err, auth.ErrResetTokenExpired) {
			writeError(w, http.StatusUnauthorized, "reset token expired")
			return
		}
		writeError(w, http.StatusUnauthorized, "invalid reset token")
		return
	}

	switch claims.Type {
	case auth.ResetDJ:
		err = store.UpdateDJPassphrase(r.Context(), claims.Email, req.Passphrase)
	default:
		err = store.UpdateAccountPassphrase(r.Context(), claims.Email, req.Passphrase)
	}
	if err != nil {
		if errors.Is(err, state.ErrAccountNotFound) || errors.Is(err, state.ErrDJNotFound) {
			writeError(w, http.StatusNotFound, "reset target no longer exists")
			return
		}
		writeError(w, http.StatusBadRequest, "could not update passphrase")
		return
	}

	applog.Info(r.Context(), "passphrase reset", "email", claims.Email, "type", string(claims.Type))
	writeJSON(w, http.StatusOK, authStateResponse{State: stateLogin, Email: claims.Email})
}

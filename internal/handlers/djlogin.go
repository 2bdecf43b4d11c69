package handlers

import (
	"net/http"

	applog "remixradio/internal/log"
	"remixradio/models"
)

type djLoginRequest struct {
	Name       string `json:"name"`
	Passphrase string `json:"pass"`
}

// DJLogin signs a resident DJ into the booth. Identity is matched by
// case-insensitive name and verbatim passphrase against the DJ roster.
func DJLogin(w http.ResponseWriter, r *http.Request) {
	var req djLoginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	dj, err := store.AuthenticateDJ(r.Context(), req.Name, req.Passphrase)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid DJ name or passphrase")
		return
	}

	session := models.DJSession(dj)
	if err := establishSession(r, session); err != nil {
		applog.Error(r.Context(), "failed to establish session", "error", err)
		writeError(w, http.StatusInternalServerError, "could not establish session")
		return
	}
	applog.Info(r.Context(), "dj signed in", "dj", dj.Name)
	writeJSON(w, http.StatusOK, sessionResponse{State: stateAuthenticated, Session: session})
}

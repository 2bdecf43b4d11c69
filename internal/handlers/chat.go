package handlers

import (
	"errors"
	"net/http"

	"remixradio/internal/state"
)

// ChatHistory returns every chat message in insertion order.
func ChatHistory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, store.ChatMessages())
}

type chatRequest struct {
	Text string `json:"text"`
}

// PostChatMessage appends a message to the room. The author is taken from
// the current session; DJ sessions are flagged on the message.
func PostChatMessage(w http.ResponseWriter, r *http.Request) {
	session, ok := currentSession(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "sign in required")
		return
	}

	var req chatRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	message, err := store.AppendChatMessage(r.Context(), session, req.Text)
	if err != nil {
		if errors.Is(err, state.ErrEmptyMessage) {
			writeError(w, http.StatusBadRequest, "message text is required")
			return
		}
		writeError(w, http.StatusInternalServerError, "could not post message")
		return
	}
	writeJSON(w, http.StatusCreated, message)
}

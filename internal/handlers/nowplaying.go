package handlers

import "net/http"

// NowPlaying serves the latest player status. When no snapshot has been
// fetched yet the response still succeeds, with available set to false.
func NowPlaying(w http.ResponseWriter, r *http.Request) {
	if poller == nil {
		writeError(w, http.StatusServiceUnavailable, "player unavailable")
		return
	}
	writeJSON(w, http.StatusOK, poller.Status())
}

type playingRequest struct {
	Playing bool `json:"playing"`
}

// SetPlaying toggles the playback gate that drives the one-second elapsed
// clock between polls.
func SetPlaying(w http.ResponseWriter, r *http.Request) {
	var req playingRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if poller == nil {
		writeError(w, http.StatusServiceUnavailable, "player unavailable")
		return
	}
	poller.SetPlaying(req.Playing)
	writeJSON(w, http.StatusOK, poller.Status())
}

package handlers

import (
	"net/http"

	"remixradio/internal/seed"
	"remixradio/internal/state"
	"remixradio/models"
)

// ListDJs serves the DJ roster with passphrases redacted.
func ListDJs(w http.ResponseWriter, r *http.Request) {
	djs := store.DJs()
	public := make([]models.DJ, len(djs))
	for i, dj := range djs {
		public[i] = dj.Public()
	}
	writeJSON(w, http.StatusOK, public)
}

// GetDJ serves a single DJ profile by id.
func GetDJ(w http.ResponseWriter, r *http.Request) {
	dj, ok := store.DJByID(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "unknown dj")
		return
	}
	writeJSON(w, http.StatusOK, dj.Public())
}

// ListEvents serves the event flyer roster.
func ListEvents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, store.Events())
}

// ListGallery serves the station gallery.
func ListGallery(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, store.Gallery())
}

type stationResponse struct {
	Branding   state.Branding          `json:"branding"`
	Background models.BackgroundConfig `json:"background"`
	Socials    map[string]string       `json:"socials"`
}

// StationInfo serves the station branding, background config and social
// links in one payload.
func StationInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, stationResponse{
		Branding:   store.Branding(),
		Background: store.Background(),
		Socials:    seed.Socials,
	})
}

package handlers

import (
	"net/http"

	applog "remixradio/internal/log"
	"remixradio/models"
)

type unlockRequest struct {
	Passcode string `json:"passcode"`
}

// AdminUnlock checks the shared passcode and flags the browser session as
// admin. The gate is independent of the listener/DJ identity.
func AdminUnlock(w http.ResponseWriter, r *http.Request) {
	var req unlockRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if !store.CheckAdminPasscode(req.Passcode) {
		writeError(w, http.StatusForbidden, "incorrect passcode")
		return
	}
	sessionManager.Put(r.Context(), sessionAdminKey, true)
	applog.Info(r.Context(), "admin console unlocked")
	writeJSON(w, http.StatusOK, map[string]bool{"unlocked": true})
}

// AdminListeners lists every registered account.
func AdminListeners(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, store.Accounts())
}

// AdminDeleteListener removes an account and its mailing-list entry.
// Deleting an unknown email is a no-op.
func AdminDeleteListener(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")
	removed := store.DeleteAccount(r.Context(), email)
	if removed {
		applog.Info(r.Context(), "account deleted", "email", models.NormalizeEmail(email))
	}
	writeJSON(w, http.StatusOK, map[string]bool{"removed": removed})
}

// AdminMailingList lists the mailing-list emails.
func AdminMailingList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, store.MailingList())
}

type blastRequest struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// AdminBlast acknowledges a mailing-list blast. Delivery is simulated:
// nothing is sent.
func AdminBlast(w http.ResponseWriter, r *http.Request) {
	var req blastRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	recipients := len(store.MailingList())
	applog.Info(r.Context(), "blast queued", "subject", req.Subject, "recipients", recipients)
	writeJSON(w, http.StatusOK, map[string]int{"recipients": recipients})
}

type stationUpdateRequest struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// AdminUpdateStation replaces the station name and logo.
func AdminUpdateStation(w http.ResponseWriter, r *http.Request) {
	var req stationUpdateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if err := store.SetBranding(r.Context(), req.Name, req.Logo); err != nil {
		writeError(w, http.StatusBadRequest, "station name is required")
		return
	}
	writeJSON(w, http.StatusOK, store.Branding())
}

// AdminUpdateBackground replaces the background configuration. Brightness
// is clamped to [0,1] by the store.
func AdminUpdateBackground(w http.ResponseWriter, r *http.Request) {
	var cfg models.BackgroundConfig
	if err := decodeBody(r, &cfg); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if err := store.SetBackground(r.Context(), cfg); err != nil {
		writeError(w, http.StatusBadRequest, "background type must be image or color")
		return
	}
	writeJSON(w, http.StatusOK, store.Background())
}

type passcodeRequest struct {
	Passcode string `json:"passcode"`
}

// AdminUpdatePasscode rotates the shared admin passcode. The current
// browser session stays unlocked.
func AdminUpdatePasscode(w http.ResponseWriter, r *http.Request) {
	var req passcodeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if err := store.SetAdminPasscode(r.Context(), req.Passcode); err != nil {
		writeError(w, http.StatusBadRequest, "passcode must not be empty")
		return
	}
	applog.Info(r.Context(), "admin passcode rotated")
	writeJSON(w, http.StatusOK, map[string]bool{"updated": true})
}

// AdminUpsertDJ creates a DJ profile or replaces an existing one in place.
func AdminUpsertDJ(w http.ResponseWriter, r *http.Request) {
	var dj models.DJ
	if err := decodeBody(r, &dj); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if id := r.PathValue("id"); id != "" {
		dj.ID = id
	}
	saved, err := store.UpsertDJ(r.Context(), dj)
	if err != nil {
		writeError(w, http.StatusBadRequest, "dj name is required")
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// AdminDeleteDJ removes a DJ profile from the roster.
func AdminDeleteDJ(w http.ResponseWriter, r *http.Request) {
	if !store.DeleteDJ(r.Context(), r.PathValue("id")) {
		writeError(w, http.StatusNotFound, "unknown dj")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"removed": true})
}

// AdminUpsertEvent creates or replaces an event flyer.
func AdminUpsertEvent(w http.ResponseWriter, r *http.Request) {
	var event models.EventListing
	if err := decodeBody(r, &event); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if id := r.PathValue("id"); id != "" {
		event.ID = id
	}
	saved, err := store.UpsertEvent(r.Context(), event)
	if err != nil {
		writeError(w, http.StatusBadRequest, "event title is required")
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// AdminDeleteEvent removes an event flyer.
func AdminDeleteEvent(w http.ResponseWriter, r *http.Request) {
	if !store.DeleteEvent(r.Context(), r.PathValue("id")) {
		writeError(w, http.StatusNotFound, "unknown event")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"removed": true})
}

// AdminUpsertGalleryItem creates or replaces a gallery image.
func AdminUpsertGalleryItem(w http.ResponseWriter, r *http.Request) {
	var item models.GalleryItem
	if err := decodeBody(r, &item); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if id := r.PathValue("id"); id != "" {
		item.ID = id
	}
	saved, err := store.UpsertGalleryItem(r.Context(), item)
	if err != nil {
		writeError(w, http.StatusBadRequest, "image url is required")
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// AdminDeleteGalleryItem removes a gallery image.
func AdminDeleteGalleryItem(w http.ResponseWriter, r *http.Request) {
	if !store.DeleteGalleryItem(r.Context(), r.PathValue("id")) {
		writeError(w, http.StatusNotFound, "unknown gallery item")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"removed": true})
}

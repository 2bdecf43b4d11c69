package server

import (
	"net/http"

	"remixradio/internal/handlers"
)

func newRouter() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", handlers.Health)

	mux.HandleFunc("POST /api/auth/signup", handlers.Signup)
	mux.HandleFunc("POST /api/auth/login", handlers.Login)
	mux.HandleFunc("POST /api/auth/verify", handlers.Verify)
	mux.HandleFunc("POST /api/auth/dj-login", handlers.DJLogin)
	mux.HandleFunc("POST /api/auth/forgot", handlers.ForgotPassword)
	mux.HandleFunc("POST /api/auth/reset", handlers.ResetPassword)
	mux.HandleFunc("POST /api/auth/logout", handlers.Logout)
	mux.HandleFunc("GET /api/auth/session", handlers.SessionInfo)

	authed := func(h http.HandlerFunc) http.Handler {
		return handlers.RequireAuthentication(h)
	}
	mux.Handle("GET /api/nowplaying", authed(handlers.NowPlaying))
	mux.Handle("POST /api/player/playing", authed(handlers.SetPlaying))
	mux.Handle("GET /api/djs", authed(handlers.ListDJs))
	mux.Handle("GET /api/djs/{id}", authed(handlers.GetDJ))
	mux.Handle("GET /api/events", authed(handlers.ListEvents))
	mux.Handle("GET /api/gallery", authed(handlers.ListGallery))
	mux.Handle("GET /api/station", authed(handlers.StationInfo))
	mux.Handle("GET /api/chat", authed(handlers.ChatHistory))
	mux.Handle("POST /api/chat", authed(handlers.PostChatMessage))

	// Unlocking only needs a signed-in session; everything else behind the
	// overlay needs the admin flag as well.
	mux.Handle("POST /api/admin/unlock", authed(handlers.AdminUnlock))

	admin := func(h http.HandlerFunc) http.Handler {
		return handlers.RequireAdmin(h)
	}
	mux.Handle("GET /api/admin/listeners", admin(handlers.AdminListeners))
	mux.Handle("DELETE /api/admin/listeners/{email}", admin(handlers.AdminDeleteListener))
	mux.Handle("GET /api/admin/mailing-list", admin(handlers.AdminMailingList))
	mux.Handle("POST /api/admin/blast", admin(handlers.AdminBlast))
	mux.Handle("PUT /api/admin/station", admin(handlers.AdminUpdateStation))
	mux.Handle("PUT /api/admin/background", admin(handlers.AdminUpdateBackground))
	mux.Handle("PUT /api/admin/passcode", admin(handlers.AdminUpdatePasscode))
	mux.Handle("POST /api/admin/djs", admin(handlers.AdminUpsertDJ))
	mux.Handle("PUT /api/admin/djs/{id}", admin(handlers.AdminUpsertDJ))
	mux.Handle("DELETE /api/admin/djs/{id}", admin(handlers.AdminDeleteDJ))
	mux.Handle("POST /api/admin/events", admin(handlers.AdminUpsertEvent))
	mux.Handle("PUT /api/admin/events/{id}", admin(handlers.AdminUpsertEvent))
	mux.Handle("DELETE /api/admin/events/{id}", admin(handlers.AdminDeleteEvent))
	mux.Handle("POST /api/admin/gallery", admin(handlers.AdminUpsertGalleryItem))
	mux.Handle("PUT /api/admin/gallery/{id}", admin(handlers.AdminUpsertGalleryItem))
	mux.Handle("DELETE /api/admin/gallery/{id}", admin(handlers.AdminDeleteGalleryItem))

	return mux
}

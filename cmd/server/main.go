package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"remixradio/internal/azuracast"
	"remixradio/internal/config"
	"remixradio/internal/db"
	"remixradio/internal/handlers"
	applog "remixradio/internal/log"
	"remixradio/internal/server"
	"remixradio/internal/state"
	"remixradio/internal/station"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		applog.Error(ctx, "failed to load configuration", "error", err)
		os.Exit(1)
	}
	if err := applog.SetLevel(cfg.LogLevel); err != nil {
		applog.Error(ctx, "invalid log level", "error", err)
		os.Exit(1)
	}

	database, err := db.Configure(cfg.Database)
	if err != nil {
		applog.Error(ctx, "failed to initialize database", "error", err)
		os.Exit(1)
	}

	store := state.NewStore(database)
	if err := store.Load(ctx); err != nil {
		applog.Error(ctx, "failed to load application state", "error", err)
		os.Exit(1)
	}

	client, err := azuracast.NewClient(azuracast.Config{URL: cfg.Station.NowPlayingURL})
	if err != nil {
		applog.Error(ctx, "failed to build now-playing client", "error", err)
		os.Exit(1)
	}
	poller := station.NewPoller(client, cfg.Station.PollInterval, cfg.Station.TickInterval)

	srv, err := server.New(server.Config{
		Addr: cfg.Server.Addr,
		Session: server.SessionConfig{
			Lifetime:     cfg.Session.Lifetime,
			CookieName:   cfg.Session.CookieName,
			CookieSecure: cfg.Session.CookieSecure,
		},
		Store:  store,
		Poller: poller,
		Auth: handlers.AuthConfig{
			ResetTokenSecret: cfg.Auth.ResetTokenSecret,
			ResetTokenTTL:    cfg.Auth.ResetTokenTTL,
		},
	})
	if err != nil {
		applog.Error(ctx, "failed to build server", "error", err)
		os.Exit(1)
	}

	// Resume polling if a session survived the last shutdown.
	if session, ok := store.Session(); ok {
		applog.Info(ctx, "resuming session", "email", session.Email)
		poller.Start(ctx)
	}

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			applog.Error(ctx, "server encountered an error", "error", err)
			os.Exit(1)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	<-sigCh

	applog.Info(ctx, "shutting down http server")
	if err := srv.Stop(); err != nil {
		applog.Error(ctx, "graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}

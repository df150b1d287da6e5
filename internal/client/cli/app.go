// Package cli implements the interactive terminal client.
package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	_ "modernc.org/sqlite"

	"github.com/pbishop/crispychat/internal/client/api"
	"github.com/pbishop/crispychat/internal/client/config"
	"github.com/pbishop/crispychat/internal/client/repositories/kv"
	"github.com/pbishop/crispychat/internal/client/session"
	"github.com/pbishop/crispychat/internal/client/services"
	"github.com/pbishop/crispychat/internal/logging"
)

// Mode is the observed server connectivity.
type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

type App struct {
	config  *config.Config
	session services.SessionService
	store   *session.Store
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer
	mode    Mode
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()
	log := logging.NewSlogLogger(slog.Default())

	db, err := kv.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "failed to initialize session database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	store := session.NewStore(db)

	apiClient := api.NewHTTPClient(api.Config{
		BaseURL: c.BaseURL,
		Timeout: c.RequestTimeout,
		Store:   store,
		Logger:  log,
	})

	return &App{
		config:  c,
		session: services.NewSessionService(apiClient, store, log),
		store:   store,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

func (a *App) setMode(mode Mode) {
	if a.mode != mode {
		a.mode = mode
		a.log.Info(context.Background(), "connectivity changed", "mode", mode)
	}
}

// Run hydrates the session from local storage, starts the connectivity
// watcher, and enters the command loop.
func (a *App) Run(ctx context.Context) {
	if err := a.session.Hydrate(ctx); err != nil {
		a.log.Warn(ctx, "startup hydration incomplete", "error", err)
	}

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	a.Root(ctx)
}

// StartOnlineStatusWatcher probes the server health endpoint on the given
// interval and flips the connectivity mode accordingly.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.session.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}

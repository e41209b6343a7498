// Package cli is the terminal presentation layer. It wires prompts and
// commands to the two managers (stories, session) and re-renders from
// their returned state; no layer above it ever inspects error kinds.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/konkrer/hack-or-snooze/internal/api"
	"github.com/konkrer/hack-or-snooze/internal/config"
	"github.com/konkrer/hack-or-snooze/internal/logging"
	"github.com/konkrer/hack-or-snooze/internal/models"
	"github.com/konkrer/hack-or-snooze/internal/repositories"
	"github.com/konkrer/hack-or-snooze/internal/session"
	"github.com/konkrer/hack-or-snooze/internal/stories"
)

// App holds the UI-facing state: the two managers and the current
// principal. user == nil means anonymous. There are no package-level
// globals; the App owns the session slot for its whole lifetime.
type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	session session.Manager
	stories *stories.Service
	user    *models.User
	reader  *bufio.Reader
}

// NewApp builds the full client stack: local database, HTTP API client,
// and the two managers.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := repositories.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("init local state: %w", err)
	}

	apiClient := api.NewHTTPClient(c.BaseURL, log)

	return &App{
		config:  c,
		log:     log,
		db:      db,
		session: session.NewManager(apiClient, db, log),
		stories: stories.NewService(apiClient, log),
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// Close releases the app's resources.
func (a *App) Close(ctx context.Context) error {
	if err := a.session.Close(ctx); err != nil {
		return err
	}
	return a.db.Close()
}

// opCtx derives a per-request context with the configured timeout.
func (a *App) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

// Startup restores a prior session (if one was persisted) and loads the
// story collection. Neither failure is fatal: an unreachable service
// still leaves the user an empty, navigable app.
func (a *App) Startup(ctx context.Context) {
	opCtx, cancel := a.opCtx(ctx)
	defer cancel()

	user, err := a.session.Restore(opCtx)
	if err != nil {
		fmt.Println(failure("That didn't work:/ Could not restore your session."))
		a.log.Warn(ctx, "session restore failed", "error", err)
	}
	a.user = user

	if err := a.refreshStories(ctx); err != nil {
		fmt.Println(failure("API down:/ Try again with 'list'!"))
	}
}

func (a *App) refreshStories(ctx context.Context) error {
	opCtx, cancel := a.opCtx(ctx)
	defer cancel()
	if err := a.stories.Refresh(opCtx); err != nil {
		a.log.Warn(ctx, "story refresh failed", "error", err)
		return err
	}
	return nil
}

// refreshUser re-hydrates the principal from the service so favorites and
// own-stories sublists reflect a just-made story mutation.
func (a *App) refreshUser(ctx context.Context) {
	if !a.isLoggedIn() {
		return
	}
	opCtx, cancel := a.opCtx(ctx)
	defer cancel()

	user, err := a.session.Restore(opCtx)
	if err != nil || user == nil {
		a.log.Warn(ctx, "user refresh failed", "error", err)
		return
	}
	a.user = user
}

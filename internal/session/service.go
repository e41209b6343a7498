// Package session represents the authenticated principal: it mediates
// signup, login, session restore, and favorite-toggling against the remote
// API, and owns the two durable key/value entries (token, username) that
// survive restarts.
package session

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"

	"github.com/konkrer/hack-or-snooze/internal/api"
	"github.com/konkrer/hack-or-snooze/internal/common"
	"github.com/konkrer/hack-or-snooze/internal/dbx"
	"github.com/konkrer/hack-or-snooze/internal/logging"
	"github.com/konkrer/hack-or-snooze/internal/models"
	"github.com/konkrer/hack-or-snooze/internal/repositories/metadata"
)

var validate = validator.New()

// Manager defines the session lifecycle operations for the UI layer.
//
// Contract:
//   - SignUp: create an account, return a principal with a fresh token.
//   - Login: authenticate, return a fully-hydrated principal.
//   - Restore: rebuild a principal from persisted credentials; (nil, nil)
//     means "no session" and is not an error.
//   - ToggleFavorite: flip one story in the principal's favorites with a
//     single network call; ok=false means the principal has no session and
//     nothing was done.
//   - Logout: discard persisted credentials. No server call.
//
// All methods honor context cancellation/timeouts. A Manager is not safe
// for concurrent use.
type Manager interface {
	SignUp(ctx context.Context, username, password, name string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.User, error)
	Restore(ctx context.Context) (*models.User, error)
	ToggleFavorite(ctx context.Context, user *models.User, storyID string) (bool, error)
	Logout(ctx context.Context) error
	Close(ctx context.Context) error
}

// manager is the concrete Manager backed by the remote client and the
// local sqlite store.
type manager struct {
	client api.Client
	db     *sql.DB
	log    logging.Logger
}

// NewManager constructs a Manager bound to the given API client and DB.
func NewManager(client api.Client, db *sql.DB, log logging.Logger) Manager {
	return &manager{client: client, db: db, log: log}
}

type signUpInput struct {
	Username string `validate:"required"`
	Password string `validate:"required,min=5"`
	Name     string `validate:"required"`
}

type loginInput struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// SignUp creates a new account. The returned principal starts with empty
// favorites and own-stories lists and carries the fresh token; the token
// and username are persisted for later Restore.
func (m *manager) SignUp(ctx context.Context, username, password, name string) (*models.User, error) {
	in := signUpInput{Username: username, Password: password, Name: name}
	if err := validate.Struct(in); err != nil {
		return nil, fmt.Errorf("sign up: %w: %w", common.ErrValidation, err)
	}

	user, err := m.client.SignUp(ctx, username, password, name)
	if err != nil {
		return nil, fmt.Errorf("sign up: %w", err)
	}
	if err := m.persistSession(ctx, user); err != nil {
		return nil, fmt.Errorf("sign up: %w", err)
	}
	m.log.Info(ctx, "account created", "username", user.Username)
	return user, nil
}

// Login authenticates and returns a principal hydrated with favorites and
// own stories from the response. The token and username are persisted for
// later Restore.
func (m *manager) Login(ctx context.Context, username, password string) (*models.User, error) {
	in := loginInput{Username: username, Password: password}
	if err := validate.Struct(in); err != nil {
		return nil, fmt.Errorf("login: %w: %w", common.ErrValidation, err)
	}

	user, err := m.client.Login(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if err := m.persistSession(ctx, user); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	m.log.Info(ctx, "logged in", "username", user.Username)
	return user, nil
}

// Restore rebuilds the principal from the persisted token and username.
// Missing or empty credentials mean no prior session: (nil, nil). A cached
// token that parses as a JWT and is already expired is dropped locally
// without a network call; anything else is sent to the server, which stays
// authoritative.
func (m *manager) Restore(ctx context.Context) (*models.User, error) {
	store := metadata.NewSQLiteRepository(m.db)

	token, err := store.Get(ctx, metadata.KeyToken)
	if err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}
	username, err := store.Get(ctx, metadata.KeyUsername)
	if err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}
	if len(token) == 0 || len(username) == 0 {
		return nil, nil
	}

	if tokenExpired(string(token)) {
		m.log.Info(ctx, "cached token expired, clearing session", "username", string(username))
		if err := store.Clear(ctx); err != nil {
			return nil, fmt.Errorf("restore session: %w", err)
		}
		return nil, nil
	}

	user, err := m.client.User(ctx, string(token), string(username))
	if err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}
	m.log.Info(ctx, "session restored", "username", user.Username)
	return user, nil
}

// ToggleFavorite flips storyID in the user's favorites: present means a
// removal request, absent an addition. Exactly one network call is made,
// and on success user.Favorites is replaced wholesale with the snapshot
// the service returned. No other field of the principal is touched.
//
// ok=false means the user carries no session and no call was made.
func (m *manager) ToggleFavorite(ctx context.Context, user *models.User, storyID string) (bool, error) {
	if !user.HasSession() {
		return false, nil
	}

	var (
		refreshed *models.User
		err       error
	)
	if user.IsFavorite(storyID) {
		refreshed, err = m.client.RemoveFavorite(ctx, user.Token, user.Username, storyID)
	} else {
		refreshed, err = m.client.AddFavorite(ctx, user.Token, user.Username, storyID)
	}
	if err != nil {
		return true, fmt.Errorf("toggle favorite: %w", err)
	}

	user.Favorites = refreshed.Favorites
	return true, nil
}

// Logout discards the persisted credentials. The in-memory principal is
// the caller's to drop; there is no server call to make.
func (m *manager) Logout(ctx context.Context) error {
	store := metadata.NewSQLiteRepository(m.db)
	if err := store.Clear(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	m.log.Info(ctx, "logged out")
	return nil
}

// Close releases resources held by the underlying client.
func (m *manager) Close(ctx context.Context) error {
	return m.client.Close()
}

// persistSession writes token and username as a single transaction so a
// half-written session can never be restored.
func (m *manager) persistSession(ctx context.Context, user *models.User) error {
	return dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		store := metadata.NewSQLiteRepository(tx)
		if err := store.Set(ctx, metadata.KeyToken, []byte(user.Token)); err != nil {
			return err
		}
		return store.Set(ctx, metadata.KeyUsername, []byte(user.Username))
	})
}

// tokenExpired reports whether token is a well-formed JWT whose expiry has
// passed. Opaque or claim-less tokens report false: the contract treats
// the token as opaque, so only an unambiguous expiry short-circuits.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

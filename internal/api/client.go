// Package api provides a typed client for the remote story-sharing service.
// It is the only package that talks HTTP; everything above it works with
// the entity types in models and the sentinel errors in common.
package api

import (
	"context"

	"github.com/konkrer/hack-or-snooze/internal/models"
)

// Client defines the remote operations the managers need.
//
// Every method maps to exactly one service call. Failures are wrapped
// around the sentinels in common (ErrUnavailable, ErrUnauthorized,
// ErrNotFound, ErrValidation) so callers can match with errors.Is.
type Client interface {
	Close() error

	// Stories fetches every story. No authentication required.
	Stories(ctx context.Context) ([]models.Story, error)

	// AddStory submits a new story under the token's identity and returns
	// the service-assigned record.
	AddStory(ctx context.Context, token string, draft models.Draft) (models.Story, error)

	// UpdateStory applies a partial update and returns the echoed record.
	UpdateStory(ctx context.Context, token, storyID string, patch models.Patch) (models.Story, error)

	// DeleteStory removes a story and returns the service's confirmation
	// message.
	DeleteStory(ctx context.Context, token, storyID string) (string, error)

	// SignUp creates an account and returns the principal with its fresh
	// token attached.
	SignUp(ctx context.Context, username, password, name string) (*models.User, error)

	// Login authenticates and returns the fully-hydrated principal.
	Login(ctx context.Context, username, password string) (*models.User, error)

	// User re-fetches the principal's current details using a previously
	// issued token.
	User(ctx context.Context, token, username string) (*models.User, error)

	// AddFavorite / RemoveFavorite mutate the user's favorites on the
	// service and return the refreshed principal snapshot.
	AddFavorite(ctx context.Context, token, username, storyID string) (*models.User, error)
	RemoveFavorite(ctx context.Context, token, username, storyID string) (*models.User, error)
}

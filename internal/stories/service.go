// Package stories owns the ordered list of stories currently fetched from
// the service and mediates create/update/delete against the remote API.
//
// Mutations never re-fetch the whole list: each applies the authoritative
// server response (the echoed created/updated record) to the local slice,
// and only after the round-trip succeeds. A failed call leaves the
// collection untouched.
//
// A Service is meant for a single cooperative flow and is not safe for
// concurrent use.
package stories

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/konkrer/hack-or-snooze/internal/api"
	"github.com/konkrer/hack-or-snooze/internal/common"
	"github.com/konkrer/hack-or-snooze/internal/logging"
	"github.com/konkrer/hack-or-snooze/internal/models"
)

var validate = validator.New()

// Service is the story collection manager.
type Service struct {
	client  api.Client
	log     logging.Logger
	stories []models.Story
}

// NewService builds a manager with an empty collection; call Refresh to
// populate it.
func NewService(client api.Client, log logging.Logger) *Service {
	return &Service{client: client, log: log}
}

// Refresh replaces the collection with a fresh fetch of every story,
// newest first as delivered by the service.
func (s *Service) Refresh(ctx context.Context) error {
	fetched, err := s.client.Stories(ctx)
	if err != nil {
		return fmt.Errorf("refresh stories: %w", err)
	}
	s.stories = fetched
	s.log.Debug(ctx, "story collection refreshed", "count", len(fetched))
	return nil
}

// Stories returns a copy of the current collection in order.
func (s *Service) Stories() []models.Story {
	out := make([]models.Story, len(s.stories))
	copy(out, s.stories)
	return out
}

// Get returns the story with the given id from the local collection.
func (s *Service) Get(storyID string) (models.Story, error) {
	i := s.indexOf(storyID)
	if i < 0 {
		return models.Story{}, fmt.Errorf("story %q: %w", storyID, common.ErrNotFound)
	}
	return s.stories[i], nil
}

// Add submits a draft under the token's identity and, on success, inserts
// the service-assigned record at the front of the collection. Returns the
// new record.
func (s *Service) Add(ctx context.Context, token string, draft models.Draft) (models.Story, error) {
	if err := validate.Struct(draft); err != nil {
		return models.Story{}, fmt.Errorf("story draft: %w: %w", common.ErrValidation, err)
	}

	story, err := s.client.AddStory(ctx, token, draft)
	if err != nil {
		return models.Story{}, fmt.Errorf("add story: %w", err)
	}
	s.stories = append([]models.Story{story}, s.stories...)
	return story, nil
}

// Update submits a partial update for storyID and, on success, replaces
// the matching local record in place with the server's echoed record.
// A storyID absent from the local collection is rejected with ErrNotFound
// before any network call.
func (s *Service) Update(ctx context.Context, token, storyID string, patch models.Patch) (models.Story, error) {
	if err := validate.Struct(patch); err != nil {
		return models.Story{}, fmt.Errorf("story patch: %w: %w", common.ErrValidation, err)
	}
	i := s.indexOf(storyID)
	if i < 0 {
		return models.Story{}, fmt.Errorf("update story %q: %w", storyID, common.ErrNotFound)
	}

	story, err := s.client.UpdateStory(ctx, token, storyID, patch)
	if err != nil {
		return models.Story{}, fmt.Errorf("update story: %w", err)
	}
	s.stories[i] = story
	return story, nil
}

// Remove requests deletion of storyID and, on success, removes the matching
// record from the collection. Returns the service's confirmation message.
// Unknown ids are rejected with ErrNotFound before any network call.
func (s *Service) Remove(ctx context.Context, token, storyID string) (string, error) {
	i := s.indexOf(storyID)
	if i < 0 {
		return "", fmt.Errorf("remove story %q: %w", storyID, common.ErrNotFound)
	}

	msg, err := s.client.DeleteStory(ctx, token, storyID)
	if err != nil {
		return "", fmt.Errorf("remove story: %w", err)
	}
	s.stories = append(s.stories[:i], s.stories[i+1:]...)
	return msg, nil
}

func (s *Service) indexOf(storyID string) int {
	for i, story := range s.stories {
		if story.StoryID == storyID {
			return i
		}
	}
	return -1
}

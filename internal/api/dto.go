package api

import "github.com/konkrer/hack-or-snooze/internal/models"

// Wire DTOs. Every service response is decoded into one of these explicit
// shapes before any entity is constructed; a decode failure or a missing
// required field surfaces as common.ErrUnavailable rather than propagating
// half-filled entities.

type storyDTO struct {
	StoryID   string `json:"storyId"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	URL       string `json:"url"`
	Username  string `json:"username"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type userDTO struct {
	Username  string     `json:"username"`
	Name      string     `json:"name"`
	CreatedAt string     `json:"createdAt"`
	UpdatedAt string     `json:"updatedAt"`
	Favorites []storyDTO `json:"favorites"`
	Stories   []storyDTO `json:"stories"`
}

type storiesResponse struct {
	Stories []storyDTO `json:"stories"`
}

type storyResponse struct {
	Story storyDTO `json:"story"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type authResponse struct {
	User  userDTO `json:"user"`
	Token string  `json:"token"`
}

type userResponse struct {
	User userDTO `json:"user"`
}

// Request bodies.

type storyRequest struct {
	Token string `json:"token"`
	Story any    `json:"story"`
}

type tokenRequest struct {
	Token string `json:"token"`
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

type authRequest struct {
	User credentials `json:"user"`
}

func (d storyDTO) toStory() models.Story {
	return models.Story{
		StoryID:   d.StoryID,
		Title:     d.Title,
		Author:    d.Author,
		URL:       d.URL,
		Username:  d.Username,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func toStories(dtos []storyDTO) []models.Story {
	stories := make([]models.Story, len(dtos))
	for i, d := range dtos {
		stories[i] = d.toStory()
	}
	return stories
}

func (d userDTO) toUser(token string) *models.User {
	return &models.User{
		Username:   d.Username,
		Name:       d.Name,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
		Token:      token,
		Favorites:  toStories(d.Favorites),
		OwnStories: toStories(d.Stories),
	}
}

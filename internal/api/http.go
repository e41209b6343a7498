package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/konkrer/hack-or-snooze/internal/common"
	"github.com/konkrer/hack-or-snooze/internal/logging"
	"github.com/konkrer/hack-or-snooze/internal/models"
)

// HTTPClient is the concrete Client over the service's HTTP/JSON API.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	log     logging.Logger
}

// NewHTTPClient builds a client for the service rooted at baseURL.
// Timeouts are the caller's business: pass a context with a deadline.
func NewHTTPClient(baseURL string, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{},
		log:     log,
	}
}

// Close releases transport resources.
func (c *HTTPClient) Close() error {
	c.hc.CloseIdleConnections()
	return nil
}

// errorEnvelope is the service's error body. Only the message is used; the
// HTTP status code drives classification.
type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// do issues one JSON request and decodes a 2xx body into out.
// Non-2xx statuses and transport or decode failures map onto the sentinel
// errors in common.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s: encode request: %w", method, path, err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Error(ctx, "request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%s %s: %w: %w", method, path, common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	c.log.Debug(ctx, "request done", "method", method, "path", path, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.statusError(method, path, resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w: %w", method, path, common.ErrUnavailable, err)
	}
	return nil
}

// statusError turns a non-2xx response into a sentinel-wrapped error,
// keeping the service's message when one is present.
func (c *HTTPClient) statusError(method, path string, resp *http.Response) error {
	msg := resp.Status
	var env errorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err == nil && env.Error.Message != "" {
		msg = env.Error.Message
	}

	var kind error
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = common.ErrUnauthorized
	case http.StatusNotFound:
		kind = common.ErrNotFound
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		kind = common.ErrValidation
	default:
		kind = common.ErrUnavailable
	}
	return fmt.Errorf("%s %s: %w: %s", method, path, kind, msg)
}

func (c *HTTPClient) Stories(ctx context.Context) ([]models.Story, error) {
	var out storiesResponse
	if err := c.do(ctx, http.MethodGet, "/stories", nil, &out); err != nil {
		return nil, err
	}
	return toStories(out.Stories), nil
}

func (c *HTTPClient) AddStory(ctx context.Context, token string, draft models.Draft) (models.Story, error) {
	var out storyResponse
	err := c.do(ctx, http.MethodPost, "/stories", storyRequest{Token: token, Story: draft}, &out)
	if err != nil {
		return models.Story{}, err
	}
	return out.Story.toStory(), nil
}

func (c *HTTPClient) UpdateStory(ctx context.Context, token, storyID string, patch models.Patch) (models.Story, error) {
	var out storyResponse
	path := "/stories/" + url.PathEscape(storyID)
	err := c.do(ctx, http.MethodPatch, path, storyRequest{Token: token, Story: patch}, &out)
	if err != nil {
		return models.Story{}, err
	}
	return out.Story.toStory(), nil
}

func (c *HTTPClient) DeleteStory(ctx context.Context, token, storyID string) (string, error) {
	var out messageResponse
	path := "/stories/" + url.PathEscape(storyID)
	if err := c.do(ctx, http.MethodDelete, path, tokenRequest{Token: token}, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *HTTPClient) SignUp(ctx context.Context, username, password, name string) (*models.User, error) {
	var out authResponse
	body := authRequest{User: credentials{Username: username, Password: password, Name: name}}
	if err := c.do(ctx, http.MethodPost, "/signup", body, &out); err != nil {
		return nil, err
	}
	if out.Token == "" {
		return nil, fmt.Errorf("POST /signup: %w: response carries no token", common.ErrUnavailable)
	}
	return out.User.toUser(out.Token), nil
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*models.User, error) {
	var out authResponse
	body := authRequest{User: credentials{Username: username, Password: password}}
	if err := c.do(ctx, http.MethodPost, "/login", body, &out); err != nil {
		return nil, err
	}
	if out.Token == "" {
		return nil, fmt.Errorf("POST /login: %w: response carries no token", common.ErrUnavailable)
	}
	return out.User.toUser(out.Token), nil
}

func (c *HTTPClient) User(ctx context.Context, token, username string) (*models.User, error) {
	var out userResponse
	path := "/users/" + url.PathEscape(username) + "?token=" + url.QueryEscape(token)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.User.toUser(token), nil
}

func (c *HTTPClient) AddFavorite(ctx context.Context, token, username, storyID string) (*models.User, error) {
	var out userResponse
	path := favoritePath(username, storyID)
	if err := c.do(ctx, http.MethodPost, path, tokenRequest{Token: token}, &out); err != nil {
		return nil, err
	}
	return out.User.toUser(token), nil
}

func (c *HTTPClient) RemoveFavorite(ctx context.Context, token, username, storyID string) (*models.User, error) {
	var out userResponse
	path := favoritePath(username, storyID)
	if err := c.do(ctx, http.MethodDelete, path, tokenRequest{Token: token}, &out); err != nil {
		return nil, err
	}
	return out.User.toUser(token), nil
}

func favoritePath(username, storyID string) string {
	return "/users/" + url.PathEscape(username) + "/favorites/" + url.PathEscape(storyID)
}

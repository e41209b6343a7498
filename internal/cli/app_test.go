package cli

import (
	"bufio"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/konkrer/hack-or-snooze/internal/api"
	"github.com/konkrer/hack-or-snooze/internal/config"
	"github.com/konkrer/hack-or-snooze/internal/logging"
	"github.com/konkrer/hack-or-snooze/internal/models"
	"github.com/konkrer/hack-or-snooze/internal/session"
	"github.com/konkrer/hack-or-snooze/internal/stories"
)

// stubInputs replaces the interactive input seams with a scripted queue of
// text answers and a fixed password. Returns a restore func.
func stubInputs(t *testing.T, answers []string, password string) func() {
	t.Helper()
	origST, origGP, origGC := getSimpleText, getPassword, getConfirm

	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			t.Fatalf("unexpected prompt #%d", i)
		}
		a := answers[i]
		i++
		return a, nil
	}
	getPassword = func(_ io.Writer) (string, error) { return password, nil }
	getConfirm = func(_ *bufio.Reader, _ string, _ io.Writer) (bool, error) { return true, nil }

	return func() {
		getSimpleText, getPassword, getConfirm = origST, origGP, origGC
	}
}

// fakeSession implements session.Manager for handler tests.
type fakeSession struct {
	signUpRet *models.User
	signUpErr error
	loginRet  *models.User
	loginErr  error

	logoutCalled bool
	toggleOK     bool
	toggleErr    error
}

func (f *fakeSession) SignUp(_ context.Context, username, password, name string) (*models.User, error) {
	return f.signUpRet, f.signUpErr
}
func (f *fakeSession) Login(_ context.Context, username, password string) (*models.User, error) {
	return f.loginRet, f.loginErr
}
func (f *fakeSession) Restore(context.Context) (*models.User, error) { return nil, nil }
func (f *fakeSession) ToggleFavorite(_ context.Context, u *models.User, id string) (bool, error) {
	if f.toggleErr != nil {
		return true, f.toggleErr
	}
	return f.toggleOK, nil
}
func (f *fakeSession) Logout(context.Context) error {
	f.logoutCalled = true
	return nil
}
func (f *fakeSession) Close(context.Context) error { return nil }

func testApp(s session.Manager) *App {
	return &App{
		config:  &config.Config{RequestTimeout: time.Second},
		log:     logging.Nop{},
		session: s,
		reader:  bufio.NewReader(strings.NewReader("")),
	}
}

func TestLogin_SetsCurrentUser(t *testing.T) {
	restore := stubInputs(t, []string{"ann"}, "secret")
	defer restore()

	f := &fakeSession{loginRet: &models.User{Username: "ann", Token: "tok"}}
	a := testApp(f)

	require.NoError(t, a.Login(context.Background()))
	require.True(t, a.isLoggedIn())
	assert.Equal(t, "ann", a.user.Username)
}

func TestLogin_FailureLeavesAnonymous(t *testing.T) {
	restore := stubInputs(t, []string{"ann"}, "wrong")
	defer restore()

	f := &fakeSession{loginErr: context.DeadlineExceeded}
	a := testApp(f)

	require.Error(t, a.Login(context.Background()))
	assert.False(t, a.isLoggedIn())
}

func TestSignUp_SetsCurrentUser(t *testing.T) {
	restore := stubInputs(t, []string{"Alice A", "alice"}, "pw123")
	defer restore()

	f := &fakeSession{signUpRet: &models.User{Username: "alice", Name: "Alice A", Token: "tok"}}
	a := testApp(f)

	require.NoError(t, a.SignUp(context.Background()))
	require.True(t, a.isLoggedIn())
	assert.Equal(t, "alice", a.user.Username)
}

func TestLogout_DropsPrincipal(t *testing.T) {
	f := &fakeSession{}
	a := testApp(f)
	a.user = &models.User{Username: "ann"}

	require.NoError(t, a.Logout(context.Background()))
	assert.True(t, f.logoutCalled)
	assert.False(t, a.isLoggedIn())
}

func TestFavorite_AnonymousIsNoop(t *testing.T) {
	// no scripted answers: prompting the anonymous user fails the test
	restore := stubInputs(t, nil, "")
	defer restore()

	f := &fakeSession{toggleOK: false}
	a := testApp(f)

	require.NoError(t, a.Favorite(context.Background()))
	assert.False(t, a.isLoggedIn())
}

func TestEdit_RejectsForeignStory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"stories": []any{
			map[string]any{"storyId": "s1", "title": "t", "author": "b", "url": "http://b.test", "username": "bob"},
		}})
	}))
	t.Cleanup(srv.Close)

	client := api.NewHTTPClient(srv.URL, logging.Nop{})
	a := testApp(&fakeSession{})
	a.stories = stories.NewService(client, logging.Nop{})
	require.NoError(t, a.refreshStories(context.Background()))
	a.user = &models.User{Username: "ann", Token: "tok"}

	restore := stubInputs(t, []string{"s1"}, "")
	defer restore()

	// bob's story: the edit stops before any title prompt or network call
	require.NoError(t, a.Edit(context.Background()))
	assert.Equal(t, "t", a.stories.Stories()[0].Title)
}

// TestSignUpThenSubmit exercises the real stack end to end against a stub
// service: create an account, submit a story, and see the new record land
// at the front of the collection.
func TestSignUpThenSubmit(t *testing.T) {
	var posted struct {
		Token string       `json:"token"`
		Story models.Draft `json:"story"`
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /signup", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"user":  map[string]any{"username": "alice", "name": "Alice A"},
			"token": "e2e-token",
		})
	})
	mux.HandleFunc("GET /stories", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"stories": []any{
			map[string]any{"storyId": "old1", "title": "older", "author": "b", "url": "http://b.test", "username": "bob"},
		}})
	})
	mux.HandleFunc("POST /stories", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&posted))
		json.NewEncoder(w).Encode(map[string]any{"story": map[string]any{
			"storyId": "new1", "title": posted.Story.Title,
			"author": posted.Story.Author, "url": posted.Story.URL, "username": "alice",
		}})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE metadata (key TEXT PRIMARY KEY, value BLOB NOT NULL);`)
	require.NoError(t, err)

	client := api.NewHTTPClient(srv.URL, logging.Nop{})
	a := &App{
		config:  &config.Config{RequestTimeout: time.Second},
		log:     logging.Nop{},
		db:      db,
		session: session.NewManager(client, db, logging.Nop{}),
		stories: stories.NewService(client, logging.Nop{}),
		reader:  bufio.NewReader(strings.NewReader("")),
	}

	restore := stubInputs(t, []string{"Alice A", "alice", "A", "T", "http://x.test"}, "pw123")
	defer restore()

	ctx := context.Background()
	require.NoError(t, a.SignUp(ctx))
	require.True(t, a.isLoggedIn())
	assert.Empty(t, a.user.Favorites)
	assert.Empty(t, a.user.OwnStories)
	assert.NotEmpty(t, a.user.Token)

	require.NoError(t, a.refreshStories(ctx))
	require.NoError(t, a.Submit(ctx))

	assert.Equal(t, "e2e-token", posted.Token)

	list := a.stories.Stories()
	require.Len(t, list, 2)
	assert.Equal(t, "T", list[0].Title)
	assert.Equal(t, "old1", list[1].StoryID)

	require.Len(t, a.user.OwnStories, 1)
	assert.Equal(t, "new1", a.user.OwnStories[0].StoryID)
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_IsFavorite(t *testing.T) {
	user := &User{
		Favorites: []Story{{StoryID: "s1"}, {StoryID: "s2"}},
	}

	assert.True(t, user.IsFavorite("s1"))
	assert.True(t, user.IsFavorite("s2"))
	assert.False(t, user.IsFavorite("s3"))
}

func TestUser_Owns(t *testing.T) {
	user := &User{Username: "alice"}

	assert.True(t, user.Owns(Story{StoryID: "s1", Username: "alice"}))
	assert.False(t, user.Owns(Story{StoryID: "s1", Username: "bob"}))
}

func TestUser_HasSession(t *testing.T) {
	tests := []struct {
		name     string
		user     *User
		expected bool
	}{
		{"nil user", nil, false},
		{"no token", &User{Username: "alice"}, false},
		{"no username", &User{Token: "tok"}, false},
		{"full session", &User{Username: "alice", Token: "tok"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.user.HasSession())
		})
	}
}

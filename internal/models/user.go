package models

// User is the session principal: the authenticated account plus its
// favorites and authored-stories sublists.
//
// Favorites and OwnStories are independent copies of story records, not
// references into any shared collection; the same StoryID may appear in
// several places as separately-constructed values. Both lists are replaced
// wholesale whenever the service returns a fresh snapshot.
type User struct {
	Username  string
	Name      string
	CreatedAt string
	UpdatedAt string

	// Token is the opaque bearer token issued at login/signup. Required by
	// every authenticated call.
	Token string

	Favorites  []Story
	OwnStories []Story
}

// IsFavorite reports whether storyID is present in the user's favorites.
func (u *User) IsFavorite(storyID string) bool {
	for _, s := range u.Favorites {
		if s.StoryID == storyID {
			return true
		}
	}
	return false
}

// Owns reports whether the user authored the given story.
func (u *User) Owns(s Story) bool {
	return u.Username == s.Username
}

// HasSession reports whether the user carries the credentials needed for
// authenticated calls.
func (u *User) HasSession() bool {
	return u != nil && u.Token != "" && u.Username != ""
}

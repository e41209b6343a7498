// Package models defines the entity types exchanged between the API client,
// the managers, and the terminal UI.
package models

// Story is a single submitted link as returned by the service.
//
// A Story is immutable by convention: once built from a service response it
// is never mutated in place. Edits produce a replacement value built from
// the server's echoed record.
type Story struct {
	StoryID   string `json:"storyId"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	URL       string `json:"url"`
	Username  string `json:"username"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// Draft is the user-supplied part of a new story submission.
type Draft struct {
	Author string `json:"author" validate:"required"`
	Title  string `json:"title" validate:"required"`
	URL    string `json:"url" validate:"required,url"`
}

// Patch is a partial story update. Only the title is editable; the service
// ignores unknown fields, so nil-able members are unnecessary here.
type Patch struct {
	Title string `json:"title" validate:"required"`
}

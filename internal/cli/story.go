package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/konkrer/hack-or-snooze/internal/models"
)

// List re-fetches the full story collection and renders it.
func (a *App) List(ctx context.Context) error {
	if err := a.refreshStories(ctx); err != nil {
		fmt.Println(failure("API down:/ Try again with 'list'!"))
		return err
	}
	renderStories(os.Stdout, a.stories.Stories(), a.user)
	return nil
}

// Favorites renders the current user's favorites sublist.
func (a *App) Favorites(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Log in first.")
		return nil
	}
	if len(a.user.Favorites) == 0 {
		fmt.Println("No stories added by user yet!")
		return nil
	}
	renderStories(os.Stdout, a.user.Favorites, a.user)
	return nil
}

// Mine renders the stories the current user authored.
func (a *App) Mine(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Log in first.")
		return nil
	}
	if len(a.user.OwnStories) == 0 {
		fmt.Println("No stories added by user yet!")
		return nil
	}
	renderStories(os.Stdout, a.user.OwnStories, a.user)
	return nil
}

// Submit prompts for a story draft and submits it. The new record lands at
// the front of the collection and is appended to the user's own stories
// without another fetch.
func (a *App) Submit(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Log in first.")
		return nil
	}

	author, err := getSimpleText(a.reader, "Author", os.Stdout)
	if err != nil {
		return err
	}
	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}
	url, err := getSimpleText(a.reader, "URL", os.Stdout)
	if err != nil {
		return err
	}

	opCtx, cancel := a.opCtx(ctx)
	defer cancel()

	draft := models.Draft{Author: author, Title: title, URL: url}
	story, err := a.stories.Add(opCtx, a.user.Token, draft)
	if err != nil {
		fmt.Println(failure("That didn't work:/ Try again!"))
		a.log.Error(ctx, "submit failed", "error", err)
		return err
	}

	a.user.OwnStories = append(a.user.OwnStories, story)
	fmt.Println(success("Story posted: " + story.Title))
	return nil
}

// Edit prompts for a story id and new title, then updates the story. An
// unchanged title is a no-op. After the update the principal is
// re-hydrated so favorites and own stories show the new title.
func (a *App) Edit(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Log in first.")
		return nil
	}

	id, err := getSimpleText(a.reader, "Enter story id to edit", os.Stdout)
	if err != nil {
		return err
	}
	current, err := a.stories.Get(id)
	if err != nil {
		fmt.Println(failure("No such story."))
		return err
	}
	if !a.user.Owns(current) {
		fmt.Println("You can only edit your own stories.")
		return nil
	}

	title, err := getSimpleText(a.reader, fmt.Sprintf("New title (current: %q)", current.Title), os.Stdout)
	if err != nil {
		return err
	}
	if title == current.Title {
		return nil
	}

	opCtx, cancel := a.opCtx(ctx)
	defer cancel()

	updated, err := a.stories.Update(opCtx, a.user.Token, id, models.Patch{Title: title})
	if err != nil {
		fmt.Println(failure("That didn't work:/ Try again!"))
		a.log.Error(ctx, "edit failed", "error", err)
		return err
	}
	fmt.Println(success("Updated at " + updated.UpdatedAt))

	a.refreshUser(ctx)
	return nil
}

// Delete prompts for a story id, confirms, and deletes the story. After
// the deletion the principal is re-hydrated so the story disappears from
// favorites and own stories too.
func (a *App) Delete(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Log in first.")
		return nil
	}

	id, err := getSimpleText(a.reader, "Enter story id to delete", os.Stdout)
	if err != nil {
		return err
	}
	current, err := a.stories.Get(id)
	if err != nil {
		fmt.Println(failure("No such story."))
		return err
	}
	if !a.user.Owns(current) {
		fmt.Println("You can only delete your own stories.")
		return nil
	}
	ok, err := getConfirm(a.reader, "Really delete "+id+"?", os.Stdout)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	opCtx, cancel := a.opCtx(ctx)
	defer cancel()

	msg, err := a.stories.Remove(opCtx, a.user.Token, id)
	if err != nil {
		fmt.Println(failure("That didn't work:/ Try again!"))
		a.log.Error(ctx, "delete failed", "error", err)
		return err
	}
	fmt.Println(msg)

	a.refreshUser(ctx)
	return nil
}

// Favorite toggles a story in the current user's favorites.
func (a *App) Favorite(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Log in first.")
		return nil
	}

	id, err := getSimpleText(a.reader, "Enter story id to (un)favorite", os.Stdout)
	if err != nil {
		return err
	}

	opCtx, cancel := a.opCtx(ctx)
	defer cancel()

	ok, err := a.session.ToggleFavorite(opCtx, a.user, id)
	if err != nil {
		fmt.Println(failure("That didn't work:/ Try again!"))
		a.log.Error(ctx, "favorite toggle failed", "error", err)
		return err
	}
	if !ok {
		fmt.Println("Log in first.")
		return nil
	}

	if a.user.IsFavorite(id) {
		fmt.Println(star("*") + " Added to favorites.")
	} else {
		fmt.Println("Removed from favorites.")
	}
	return nil
}

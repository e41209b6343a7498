package cli

import (
	"context"
	"fmt"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getConfirm    = GetConfirm
)

// SignUp prompts for account details and creates a new account. On success
// the fresh principal becomes the current user.
func (a *App) SignUp(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "Pick a username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	opCtx, cancel := a.opCtx(ctx)
	defer cancel()

	user, err := a.session.SignUp(opCtx, username, password, name)
	if err != nil {
		fmt.Println(failure("That didn't work:/ Try again!"))
		a.log.Error(ctx, "sign up failed", "error", err)
		return err
	}
	a.user = user
	fmt.Println(success("Welcome, " + user.Name + "!"))
	return nil
}

// Login prompts for credentials and authenticates. On success the hydrated
// principal becomes the current user.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	opCtx, cancel := a.opCtx(ctx)
	defer cancel()

	user, err := a.session.Login(opCtx, username, password)
	if err != nil {
		fmt.Println(failure("That didn't work:/ Try again!"))
		a.log.Error(ctx, "login failed", "error", err)
		return err
	}
	a.user = user
	fmt.Println(success("Logged in as " + user.Username + "."))
	return nil
}

// Logout clears the persisted credentials and drops the in-memory
// principal. Anonymous → Authenticated → Anonymous, with no server call.
func (a *App) Logout(ctx context.Context) error {
	opCtx, cancel := a.opCtx(ctx)
	defer cancel()

	if err := a.session.Logout(opCtx); err != nil {
		return err
	}
	a.user = nil
	fmt.Println("Logged out.")
	return nil
}

// Profile shows the current user's account details.
func (a *App) Profile(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Log in first.")
		return nil
	}
	fmt.Printf("Name: %s\n", a.user.Name)
	fmt.Printf("Username: %s\n", a.user.Username)
	fmt.Printf("Account Created: %s\n", a.user.CreatedAt)
	return nil
}

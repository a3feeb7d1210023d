package cli

import (
	"context"
	"errors"

	"github.com/FBurak/Restaurant-Web/internal/client/client"
	"github.com/FBurak/Restaurant-Web/internal/client/console"
	"github.com/FBurak/Restaurant-Web/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for an email and password, signs in and opens the console
// session for the configured restaurant. The password is wiped before
// returning.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		a.info("Already signed in")
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := a.auth.SignIn(ctx, email, string(password)); err != nil {
		a.log.Info(ctx, "login unsuccessful", "error", err)
		switch {
		case errors.Is(err, client.ErrUnauthorized):
			return a.report(errors.New("login unsuccessful: wrong email or password"))
		case errors.Is(err, client.ErrUnavailable):
			return a.report(errors.New("login unsuccessful: server unavailable"))
		}
		return a.report(err)
	}

	a.log.Info(ctx, "login successful")
	if err := a.openSession(ctx); err != nil {
		return err
	}
	a.notifier.Notify(console.Notice{Level: console.LevelSuccess, Text: "Signed in"})
	return nil
}

// Logout offers to resolve unsaved edits, then ends the session and clears
// the stored credentials.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		return nil
	}
	_ = a.ConfirmLeave(ctx)

	err := a.session.SignOut(ctx)
	a.session = nil
	if err != nil {
		return err
	}
	a.notifier.Notify(console.Notice{Level: console.LevelInfo, Text: "Signed out"})
	return nil
}

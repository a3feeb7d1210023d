package cli

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/FBurak/Restaurant-Web/internal/client/console"
	"github.com/FBurak/Restaurant-Web/internal/client/editbuffer"
)

var errNotSignedIn = errors.New("not signed in; use 'login'")

func (a *App) requireSession() (*console.Session, error) {
	if a.session == nil {
		return nil, a.report(errNotSignedIn)
	}
	return a.session, nil
}

// Show prints the document, the edit buffer and both collections.
func (a *App) Show(ctx context.Context) error {
	s, err := a.requireSession()
	if err != nil {
		return err
	}
	renderProfile(a.out, s.Profile(), s.Buffer(), s.State())
	renderGallery(a.out, s.Gallery())
	renderPasswords(a.out, s.Passwords())
	return nil
}

// EditField sets a buffered form field. The about text is Markdown and is
// stored as HTML; with no value it is read over several lines.
func (a *App) EditField(ctx context.Context, name, value string) error {
	s, err := a.requireSession()
	if err != nil {
		return err
	}
	field, err := editbuffer.ParseField(name)
	if err != nil {
		return a.report(err)
	}

	if field == editbuffer.FieldAbout {
		if value == "" {
			if value, err = GetMultiline(a.reader, "About text (Markdown)", a.out); err != nil {
				return err
			}
		}
		if value, err = console.RenderAbout(value); err != nil {
			return a.report(err)
		}
	}
	return a.report(s.Edit(field, value))
}

// SetSocial sets or, with an empty value, clears one social link.
func (a *App) SetSocial(ctx context.Context, network, value string) error {
	s, err := a.requireSession()
	if err != nil {
		return err
	}
	key, err := editbuffer.ParseSocialKey(strings.ToLower(network))
	if err != nil {
		return a.report(err)
	}
	if value == "" {
		return a.report(s.ClearSocial(key))
	}
	return a.report(s.SetSocial(key, value))
}

func (a *App) Save(ctx context.Context) error {
	s, err := a.requireSession()
	if err != nil {
		return err
	}
	if !s.Dirty() {
		a.info("Nothing to save")
		return nil
	}
	return s.Save(ctx)
}

// Discard asks Delete or Keep before dropping unsaved edits. Closing the
// prompt keeps them.
func (a *App) Discard(ctx context.Context) error {
	s, err := a.requireSession()
	if err != nil {
		return err
	}
	if !s.Dirty() {
		a.info("Nothing to discard")
		return nil
	}
	return s.DiscardPrompt(ctx, discardChooser)
}

// ConfirmLeave offers Delete or Keep when there are unsaved edits.
func (a *App) ConfirmLeave(ctx context.Context) error {
	if a.session == nil {
		return nil
	}
	return a.session.DiscardPrompt(ctx, discardChooser)
}

func (a *App) SetName(ctx context.Context, name string) error {
	s, err := a.requireSession()
	if err != nil {
		return err
	}
	return a.report(s.SetName(ctx, name))
}

func (a *App) ToggleVisibility(ctx context.Context) error {
	s, err := a.requireSession()
	if err != nil {
		return err
	}
	visible, err := s.ToggleVisibility(ctx)
	if err != nil {
		return a.report(err)
	}
	if visible {
		a.info("Website is now visible")
	} else {
		a.info("Website is now hidden")
	}
	return nil
}

func (a *App) SetHeader(ctx context.Context, path string) error {
	s, err := a.requireSession()
	if err != nil {
		return err
	}
	_, err = s.SetHeaderImage(ctx, path, progressFor(path, "header "+filepath.Base(path)))
	return err
}

func (a *App) ClearHeader(ctx context.Context) error {
	s, err := a.requireSession()
	if err != nil {
		return err
	}
	return s.ClearHeaderImage(ctx)
}

func (a *App) AddGalleryImage(ctx context.Context, path string) error {
	s, err := a.requireSession()
	if err != nil {
		return err
	}
	_, err = s.AddGalleryImage(ctx, path, progressFor(path, filepath.Base(path)))
	return err
}

// RemoveGalleryImage deletes an image after confirmation.
func (a *App) RemoveGalleryImage(ctx context.Context, id string) error {
	s, err := a.requireSession()
	if err != nil {
		return err
	}
	ok, err := runConfirm("Remove image " + id)
	if err != nil || !ok {
		a.info("Cancelled")
		return nil
	}
	return s.RemoveGalleryItem(ctx, id)
}

func (a *App) AddPassword(ctx context.Context) error {
	s, err := a.requireSession()
	if err != nil {
		return err
	}
	item, err := s.AddPassword(ctx)
	if err != nil {
		return a.report(err)
	}
	a.info("Added password row " + item.ID)
	return nil
}

func (a *App) SetPasswordTitle(ctx context.Context, id, title string) error {
	s, err := a.requireSession()
	if err != nil {
		return err
	}
	return a.report(s.SetPasswordTitle(ctx, id, title))
}

func (a *App) SetPasswordValue(ctx context.Context, id, value string) error {
	s, err := a.requireSession()
	if err != nil {
		return err
	}
	return a.report(s.SetPasswordValue(ctx, id, value))
}

func (a *App) TogglePassword(ctx context.Context, id string) error {
	s, err := a.requireSession()
	if err != nil {
		return err
	}
	return a.report(s.TogglePasswordHidden(ctx, id))
}

func (a *App) DeletePassword(ctx context.Context, id string) error {
	s, err := a.requireSession()
	if err != nil {
		return err
	}
	ok, err := runConfirm("Delete password row " + id)
	if err != nil || !ok {
		a.info("Cancelled")
		return nil
	}
	return s.DeletePassword(ctx, id)
}

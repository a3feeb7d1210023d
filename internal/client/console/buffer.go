package console

import (
	"context"
	"errors"
	"io"

	"github.com/FBurak/Restaurant-Web/internal/client/editbuffer"
)

func (s *Session) Buffer() editbuffer.Fields   { return s.buf.Buffer() }
func (s *Session) State() editbuffer.State     { return s.buf.State() }
func (s *Session) Dirty() bool                 { return s.buf.Dirty() }
func (s *Session) Snapshot() editbuffer.Fields { return s.buf.Snapshot() }

func (s *Session) Edit(field editbuffer.Field, value string) error {
	return s.buf.Edit(field, value)
}

func (s *Session) SetSocial(key editbuffer.SocialKey, value string) error {
	return s.buf.SetSocial(key, value)
}

func (s *Session) ClearSocial(key editbuffer.SocialKey) error {
	return s.buf.ClearSocial(key)
}

// Save writes the buffer when it is Dirty. A failed write keeps the
// buffer Dirty and is not retried.
func (s *Session) Save(ctx context.Context) error {
	wrote, err := s.buf.Save(ctx)
	if err != nil {
		return s.fail(ctx, StoreWriteError, "save", err)
	}
	if wrote {
		s.notify.Notify(Notice{Level: LevelSuccess, Text: noticeSaved})
	}
	return nil
}

// Discard drops unsaved edits and reports whether there were any.
func (s *Session) Discard() bool {
	if !s.buf.Discard() {
		return false
	}
	s.notify.Notify(Notice{Level: LevelInfo, Text: noticeDeleted})
	return true
}

// Choice is the answer to the unsaved-changes prompt.
type Choice int

const (
	// ChoiceClose dismisses the prompt and leaves the buffer Dirty.
	ChoiceClose Choice = iota
	ChoiceDelete
	ChoiceKeep
)

// Chooser asks the user what to do with unsaved changes. An error such as
// an interrupt or end of input counts as closing the prompt.
type Chooser interface {
	ChooseDiscard() (Choice, error)
}

type ChooserFunc func() (Choice, error)

func (f ChooserFunc) ChooseDiscard() (Choice, error) { return f() }

// DiscardPrompt offers Delete or Keep while the buffer is Dirty. Delete
// discards, Keep saves, and closing the prompt does neither.
func (s *Session) DiscardPrompt(ctx context.Context, ch Chooser) error {
	if !s.Dirty() {
		return nil
	}

	choice, err := ch.ChooseDiscard()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			s.log.Debug(ctx, "discard prompt closed", "error", err)
		}
		return nil
	}
	return s.Resolve(ctx, choice)
}

// Resolve applies a prompt answer.
func (s *Session) Resolve(ctx context.Context, choice Choice) error {
	switch choice {
	case ChoiceDelete:
		s.Discard()
	case ChoiceKeep:
		return s.Save(ctx)
	}
	return nil
}

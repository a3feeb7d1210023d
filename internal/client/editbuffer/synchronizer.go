package editbuffer

import (
	"context"
	"fmt"
	"sync"
)

// State of the buffer relative to the last remote snapshot.
type State int

const (
	Clean State = iota
	Dirty
)

func (s State) String() string {
	if s == Dirty {
		return "dirty"
	}
	return "clean"
}

// Policy decides what a remote snapshot does to a Dirty buffer.
type Policy int

const (
	// RemoteWins overwrites the buffer with every snapshot and marks it Clean.
	RemoteWins Policy = iota
	// KeepDirty caches the snapshot but leaves a Dirty buffer untouched.
	KeepDirty
)

// ParsePolicy maps a configuration value to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "remote-wins":
		return RemoteWins, nil
	case "keep-dirty":
		return KeepDirty, nil
	}
	return RemoteWins, fmt.Errorf("unknown snapshot policy %q", s)
}

// Writer performs the remote merge write of the form fields.
type Writer interface {
	MergeWrite(ctx context.Context, f Fields) error
}

// WriterFunc adapts a function to Writer.
type WriterFunc func(ctx context.Context, f Fields) error

func (fn WriterFunc) MergeWrite(ctx context.Context, f Fields) error {
	return fn(ctx, f)
}

type Synchronizer struct {
	writer Writer
	policy Policy

	mu       sync.Mutex
	buffer   Fields
	snapshot Fields
	dirty    bool
	// gen counts edits so that a save only cleans the buffer it wrote.
	gen uint64
	// snapGen counts remote deliveries; a save ack never replaces a newer one.
	snapGen uint64
}

// New returns a Clean synchronizer with empty fields.
func New(w Writer, p Policy) *Synchronizer {
	return &Synchronizer{
		writer:   w,
		policy:   p,
		buffer:   Fields{Socials: Socials{}},
		snapshot: Fields{Socials: Socials{}},
	}
}

// ApplySnapshot records a remote delivery. Under RemoteWins the buffer is
// replaced and the state becomes Clean. Under KeepDirty a Dirty buffer is
// kept and only the cached snapshot changes.
func (s *Synchronizer) ApplySnapshot(f Fields) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot = f.Clone()
	s.snapGen++
	if s.dirty && s.policy == KeepDirty {
		return
	}
	s.buffer = f.Clone()
	s.dirty = false
}

func (s *Synchronizer) touch() {
	s.dirty = true
	s.gen++
}

func (s *Synchronizer) Edit(field Field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.buffer.set(field, value); err != nil {
		return err
	}
	s.touch()
	return nil
}

func (s *Synchronizer) SetSocial(key SocialKey, value string) error {
	if _, err := ParseSocialKey(string(key)); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.buffer.Socials[key] = value
	s.touch()
	return nil
}

func (s *Synchronizer) ClearSocial(key SocialKey) error {
	if _, err := ParseSocialKey(string(key)); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.buffer.Socials, key)
	s.touch()
	return nil
}

// Save writes the buffered fields when Dirty and reports whether a write
// was attempted. On success the buffer becomes Clean unless it was edited
// again while the write was in flight, and the written fields become the
// cached snapshot unless a remote snapshot arrived meanwhile. On failure it
// stays Dirty.
func (s *Synchronizer) Save(ctx context.Context) (bool, error) {
	s.mu.Lock()
	if !s.dirty {
		s.mu.Unlock()
		return false, nil
	}
	out := s.buffer.Clone()
	gen, snapGen := s.gen, s.snapGen
	s.mu.Unlock()

	if err := s.writer.MergeWrite(ctx, out); err != nil {
		return true, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapGen == snapGen {
		s.snapshot = out
	}
	if s.gen == gen {
		s.dirty = false
	}
	return true, nil
}

// Discard restores the cached snapshot when Dirty and reports whether
// anything changed. The store is not touched.
func (s *Synchronizer) Discard() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dirty {
		return false
	}
	s.buffer = s.snapshot.Clone()
	s.dirty = false
	s.gen++
	return true
}

func (s *Synchronizer) Buffer() Fields {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buffer.Clone()
}

func (s *Synchronizer) Snapshot() Fields {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot.Clone()
}

func (s *Synchronizer) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dirty {
		return Dirty
	}
	return Clean
}

func (s *Synchronizer) Dirty() bool {
	return s.State() == Dirty
}

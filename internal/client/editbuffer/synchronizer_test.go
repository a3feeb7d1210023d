package editbuffer

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore records merge writes and keeps the resulting remote fields.
type fakeStore struct {
	mu     sync.Mutex
	remote Fields
	writes int
	err    error
	// during runs inside MergeWrite, before the write is acknowledged.
	during func()
}

func (f *fakeStore) MergeWrite(ctx context.Context, in Fields) error {
	if f.during != nil {
		f.during()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes++
	if f.err != nil {
		return f.err
	}
	f.remote = in.Clone()
	return nil
}

func sample() Fields {
	return Fields{
		About:     "<p>Coffee</p>",
		VideoURL:  "https://youtu.be/a",
		GoogleURL: "https://g.page/r",
		Socials:   Socials{SocialInstagram: "https://instagram.com/kw"},
	}
}

func TestApplySnapshot_OverwritesBufferAndCleans(t *testing.T) {
	s := New(&fakeStore{}, RemoteWins)
	require.NoError(t, s.Edit(FieldAbout, "draft"))
	require.NoError(t, s.SetSocial(SocialTikTok, "tt"))

	s.ApplySnapshot(sample())

	assert.True(t, s.Buffer().Equal(sample()))
	assert.Equal(t, Clean, s.State())
	assert.True(t, s.Snapshot().Equal(sample()))
}

func TestEdits_StayDirtyUntilSaveOrDiscard(t *testing.T) {
	s := New(&fakeStore{}, RemoteWins)
	assert.False(t, s.Dirty())

	steps := []func() error{
		func() error { return s.Edit(FieldAbout, "a") },
		func() error { return s.Edit(FieldVideoURL, "v") },
		func() error { return s.SetSocial(SocialYouTube, "y") },
		func() error { return s.ClearSocial(SocialYouTube) },
		func() error { return s.Edit(FieldAbout, "") },
	}
	for _, step := range steps {
		require.NoError(t, step())
		assert.True(t, s.Dirty())
	}
}

func TestDiscard_RestoresLastSnapshot(t *testing.T) {
	s := New(&fakeStore{}, RemoteWins)
	s.ApplySnapshot(sample())

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Edit(FieldGoogleURL, "x"))
		require.NoError(t, s.ClearSocial(SocialInstagram))
	}

	assert.True(t, s.Discard())
	assert.True(t, s.Buffer().Equal(sample()))
	assert.Equal(t, Clean, s.State())
}

func TestSave_WritesBufferAndIsIdempotent(t *testing.T) {
	store := &fakeStore{}
	s := New(store, RemoteWins)
	s.ApplySnapshot(sample())
	require.NoError(t, s.Edit(FieldAbout, "<p>Tea</p>"))

	wrote, err := s.Save(context.Background())
	require.NoError(t, err)
	assert.True(t, wrote)
	assert.False(t, s.Dirty())
	assert.True(t, store.remote.Equal(s.Buffer()))

	first := store.remote.Clone()
	wrote, err = s.Save(context.Background())
	require.NoError(t, err)
	assert.False(t, wrote)
	assert.True(t, store.remote.Equal(first))
	assert.Equal(t, 1, store.writes)
}

func TestCleanSaveAndDiscardAreNoOps(t *testing.T) {
	store := &fakeStore{}
	s := New(store, RemoteWins)
	s.ApplySnapshot(sample())

	wrote, err := s.Save(context.Background())
	require.NoError(t, err)
	assert.False(t, wrote)
	assert.False(t, s.Discard())

	assert.Zero(t, store.writes)
	assert.Equal(t, Clean, s.State())
	assert.True(t, s.Buffer().Equal(sample()))
}

func TestEditThenDiscard_RestoresEmpty(t *testing.T) {
	s := New(&fakeStore{}, RemoteWins)
	empty := Fields{Socials: Socials{}}
	assert.True(t, s.Buffer().Equal(empty))

	require.NoError(t, s.Edit(FieldAbout, "Hello"))
	assert.True(t, s.Dirty())

	s.Discard()
	assert.True(t, s.Buffer().Equal(empty))
	assert.False(t, s.Dirty())
}

func TestEditThenSave_WritesAndCleans(t *testing.T) {
	store := &fakeStore{}
	s := New(store, RemoteWins)

	require.NoError(t, s.Edit(FieldVideoURL, "https://youtu.be/x"))
	_, err := s.Save(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "https://youtu.be/x", store.remote.VideoURL)
	assert.False(t, s.Dirty())
}

func TestSave_FailureStaysDirty(t *testing.T) {
	boom := errors.New("boom")
	store := &fakeStore{err: boom}
	s := New(store, RemoteWins)
	require.NoError(t, s.Edit(FieldAbout, "x"))

	wrote, err := s.Save(context.Background())
	assert.True(t, wrote)
	assert.ErrorIs(t, err, boom)
	assert.True(t, s.Dirty())
	assert.Equal(t, "x", s.Buffer().About)
	assert.Equal(t, 1, store.writes)
}

func TestSave_EditDuringWriteStaysDirty(t *testing.T) {
	store := &fakeStore{}
	s := New(store, RemoteWins)
	require.NoError(t, s.Edit(FieldAbout, "one"))

	store.during = func() { _ = s.Edit(FieldAbout, "two") }

	_, err := s.Save(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "one", store.remote.About)
	assert.True(t, s.Dirty())
	assert.Equal(t, "two", s.Buffer().About)
}

func TestSave_SnapshotDuringWriteIsKeptForDiscard(t *testing.T) {
	store := &fakeStore{}
	s := New(store, RemoteWins)
	require.NoError(t, s.Edit(FieldAbout, "mine"))

	store.during = func() { s.ApplySnapshot(sample()) }

	_, err := s.Save(context.Background())
	require.NoError(t, err)
	assert.True(t, s.Snapshot().Equal(sample()))

	require.NoError(t, s.Edit(FieldAbout, "again"))
	require.True(t, s.Discard())
	assert.True(t, s.Buffer().Equal(sample()))
}

func TestSave_AckBecomesSnapshotWithoutDelivery(t *testing.T) {
	s := New(&fakeStore{}, RemoteWins)
	require.NoError(t, s.Edit(FieldAbout, "mine"))

	_, err := s.Save(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "mine", s.Snapshot().About)
}

func TestKeepDirtyPolicy(t *testing.T) {
	s := New(&fakeStore{}, KeepDirty)
	require.NoError(t, s.Edit(FieldAbout, "mine"))

	s.ApplySnapshot(sample())
	assert.True(t, s.Dirty())
	assert.Equal(t, "mine", s.Buffer().About)

	s.Discard()
	assert.True(t, s.Buffer().Equal(sample()))

	other := sample()
	other.About = "theirs"
	s.ApplySnapshot(other)
	assert.Equal(t, "theirs", s.Buffer().About)
}

func TestAccessorsReturnCopies(t *testing.T) {
	s := New(&fakeStore{}, RemoteWins)
	s.ApplySnapshot(sample())

	b := s.Buffer()
	b.Socials[SocialFacebook] = "leak"
	assert.NotContains(t, s.Buffer().Socials, SocialFacebook)
	assert.False(t, s.Dirty())
}

func TestUnknownKeysRejected(t *testing.T) {
	s := New(&fakeStore{}, RemoteWins)
	assert.ErrorIs(t, s.Edit(Field("menu"), "x"), ErrUnknownField)
	assert.ErrorIs(t, s.SetSocial(SocialKey("myspace"), "x"), ErrUnknownSocial)
	assert.ErrorIs(t, s.ClearSocial(SocialKey("myspace")), ErrUnknownSocial)
	assert.False(t, s.Dirty())
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("keep-dirty")
	require.NoError(t, err)
	assert.Equal(t, KeepDirty, p)

	p, err = ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, RemoteWins, p)

	_, err = ParsePolicy("merge")
	assert.Error(t, err)
}

func TestConcurrentEditsAndSnapshots(t *testing.T) {
	s := New(&fakeStore{}, RemoteWins)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = s.Edit(FieldAbout, "x")
			_, _ = s.Save(context.Background())
		}()
		go func() {
			defer wg.Done()
			s.ApplySnapshot(sample())
			_ = s.Discard()
		}()
	}
	wg.Wait()
	_ = s.Buffer()
}

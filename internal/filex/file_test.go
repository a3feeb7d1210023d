package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenImage(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "Terrace.JPG")
	require.NoError(t, os.WriteFile(p, []byte("jpegdata"), 0o600))

	f, err := OpenImage(p)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, "Terrace.JPG", f.Name)
	assert.Equal(t, "image/jpeg", f.ContentType)
	assert.Equal(t, int64(8), f.Size)
}

func TestOpenImage_RejectsNonImage(t *testing.T) {
	p := filepath.Join(t.TempDir(), "menu.pdf")
	require.NoError(t, os.WriteFile(p, []byte("%PDF"), 0o600))

	_, err := OpenImage(p)
	require.ErrorIs(t, err, ErrUnsupportedType)
}

func TestOpenImage_Missing(t *testing.T) {
	_, err := OpenImage(filepath.Join(t.TempDir(), "nope.png"))
	require.Error(t, err)
}

func TestOpenImage_Directory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "album.png")
	require.NoError(t, os.Mkdir(dir, 0o700))

	_, err := OpenImage(dir)
	require.Error(t, err)
}

func TestFileNameFromURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"http://localhost:9000/restaurant/uploads/kaffeewerk/gallery_1700000000000_cake.png", "gallery_1700000000000_cake.png"},
		{"https://cdn.example.com/a/b/Caf%C3%A9%20front.jpg?x=1", "Café front.jpg"},
		{"https://cdn.example.com/", DefaultFileName},
		{"", DefaultFileName},
		{"://bad", DefaultFileName},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FileNameFromURL(tt.in), tt.in)
	}
}

func TestEnsureParentDir(t *testing.T) {
	p := filepath.Join(t.TempDir(), "state", "nested", "console.db")

	require.NoError(t, EnsureParentDir(p))
	require.NoError(t, EnsureParentDir(p), "idempotent")

	fi, err := os.Stat(filepath.Dir(p))
	require.NoError(t, err)
	assert.True(t, fi.IsDir())
}

func TestEnsureParentDir_FileInTheWay(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(base, "state"), []byte("x"), 0o600))

	require.Error(t, EnsureParentDir(filepath.Join(base, "state", "console.db")))
}

// Package filex reads local images picked for upload.
package filex

import (
	"errors"
	"fmt"
	"mime"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// DefaultFileName is used when a retrieval URL carries no usable name.
const DefaultFileName = "image.jpg"

// ErrUnsupportedType is returned for files outside the image allow-list.
var ErrUnsupportedType = errors.New("unsupported file type")

var imageTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".avif": "image/avif",
}

// UploadFile is an opened local image ready to be streamed.
type UploadFile struct {
	Name        string
	ContentType string
	Size        int64
	File        *os.File
}

func (u *UploadFile) Close() error { return u.File.Close() }

// OpenImage opens p for upload. Only image extensions are accepted, the
// same way a file picker with accept="image/*" filters its choices.
func OpenImage(p string) (*UploadFile, error) {
	ext := strings.ToLower(filepath.Ext(p))
	ct, ok := imageTypes[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, ext)
	}
	if byExt := mime.TypeByExtension(ext); byExt != "" && strings.HasPrefix(byExt, "image/") {
		ct = byExt
	}

	f, err := os.Open(p)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", p, err)
	}
	fi, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("stat %s: %w", p, err)
	}
	if fi.IsDir() {
		_ = f.Close()
		return nil, fmt.Errorf("%s is a directory", p)
	}

	return &UploadFile{Name: filepath.Base(p), ContentType: ct, Size: fi.Size(), File: f}, nil
}

// FileNameFromURL returns the decoded last path segment of a retrieval URL,
// or DefaultFileName when there is none.
func FileNameFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return DefaultFileName
	}
	name := path.Base(u.Path)
	if name == "." || name == "/" || name == "" {
		return DefaultFileName
	}
	if dec, err := url.PathUnescape(name); err == nil {
		name = dec
	}
	return name
}

// EnsureParentDir creates the directory that will hold p.
func EnsureParentDir(p string) error {
	dir := filepath.Dir(p)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}

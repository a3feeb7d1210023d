// Package netx uploads blobs to presigned object-storage URLs.
package netx

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// HTTPClient is the subset of *http.Client used for uploads.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// DefaultClient is used when callers pass a nil client.
var DefaultClient HTTPClient = http.DefaultClient

// UploadToPresignedURL PUTs size bytes from body to url. Every chunk read
// from body is also written to progress when it is not nil, which lets a
// progress bar follow the transfer.
func UploadToPresignedURL(ctx context.Context, c HTTPClient, url, contentType string, body io.Reader, size int64, progress io.Writer) error {
	if c == nil {
		c = DefaultClient
	}
	if progress != nil {
		body = io.TeeReader(body, progress)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, body)
	if err != nil {
		return err
	}
	req.ContentLength = size
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("upload failed: %s; body: %s", resp.Status, string(b))
	}
	return nil
}

// Package uploader talks to the external image host. Books reference the
// hosted URL it returns, never the raw upload payload.
package uploader

import "context"

// ImageUploader uploads a cover image and returns its canonical hosted URL.
// The image argument is whatever the client submitted: a base64 data URI or
// a remote URL.
type ImageUploader interface {
	Upload(ctx context.Context, image string) (string, error)
}

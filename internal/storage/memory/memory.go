package memory

import (
	"context"
	"fmt"
	"time"
)

// Presigner implements storage.Presigner with deterministic fake URLs.
// Used by tests and offline runs.
type Presigner struct {
	baseURL string
}

// New creates an in-memory presigner rooted at the given base URL.
func New(baseURL string) *Presigner {
	return &Presigner{baseURL: baseURL}
}

// PresignUpload returns a fake upload URL embedding the key and expiry.
func (p *Presigner) PresignUpload(_ context.Context, key, contentType string, expiry time.Duration) (string, error) {
	return fmt.Sprintf("%s/%s?method=PUT&content-type=%s&expires=%d", p.baseURL, key, contentType, int(expiry.Seconds())), nil
}

// PresignDownload returns a fake download URL embedding the key and expiry.
func (p *Presigner) PresignDownload(_ context.Context, key string, expiry time.Duration) (string, error) {
	return fmt.Sprintf("%s/%s?method=GET&expires=%d", p.baseURL, key, int(expiry.Seconds())), nil
}

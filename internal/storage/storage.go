package storage

import (
	"context"
	"time"
)

// Presigner issues time-limited URLs for direct object storage access.
// The service never proxies image bytes; clients upload and download
// against the bucket directly using these URLs.
type Presigner interface {
	// PresignUpload returns a URL authorizing a PUT of the given
	// content type to the object key, valid for the given duration.
	PresignUpload(ctx context.Context, key, contentType string, expiry time.Duration) (string, error)

	// PresignDownload returns a URL authorizing a GET of the object
	// key, valid for the given duration.
	PresignDownload(ctx context.Context, key string, expiry time.Duration) (string, error)
}

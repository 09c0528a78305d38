package ports

import (
	"context"
	"io"
)

// StoredFile describes an upload after it has been persisted.
type StoredFile struct {
	Name     string
	Location string
	Size     int64
}

// UploadStore persists recorded audio uploaded by the browser.
type UploadStore interface {
	Save(ctx context.Context, name string, r io.Reader, contentType string) (*StoredFile, error)
}

// S3Client puts one object into the configured bucket and returns its public URL.
type S3Client interface {
	PutObject(ctx context.Context, key string, r io.Reader, size int64, contentType string) (publicURL string, err error)
}

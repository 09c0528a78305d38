package domain

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/Vovarama1992/voice_agent/internal/ports"
	"github.com/google/uuid"
)

// countingReader remembers how many bytes went to S3.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

type s3UploadStore struct {
	client ports.S3Client
	now    func() time.Time
	newID  func() string
}

// NewS3UploadStore keeps uploads in the bucket behind client.
func NewS3UploadStore(client ports.S3Client) ports.UploadStore {
	return &s3UploadStore{
		client: client,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// ObjectKey: путь в бакете
func (s *s3UploadStore) ObjectKey(filename string) string {
	date := s.now().Format("2006-01-02")
	clean := filepath.Base(filepath.Clean("/" + filename))
	return fmt.Sprintf("uploads/%s/%s-%s", date, s.newID(), clean)
}

func (s *s3UploadStore) Save(ctx context.Context, name string, r io.Reader, contentType string) (*ports.StoredFile, error) {
	clean := filepath.Base(filepath.Clean("/" + name))
	if clean == "/" || clean == "." {
		return nil, fmt.Errorf("invalid file name %q", name)
	}

	cr := &countingReader{r: r}

	// size = -1 → S3 клиент сам определит
	publicURL, err := s.client.PutObject(ctx, s.ObjectKey(clean), cr, -1, contentType)
	if err != nil {
		return nil, err
	}

	return &ports.StoredFile{Name: clean, Location: publicURL, Size: cr.n}, nil
}

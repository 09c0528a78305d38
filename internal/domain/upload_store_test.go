package domain

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	key         string
	body        string
	contentType string
	err         error
}

func (f *fakeS3) PutObject(_ context.Context, key string, r io.Reader, _ int64, contentType string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	b, _ := io.ReadAll(r)
	f.key, f.body, f.contentType = key, string(b), contentType
	return "https://s3.example/bucket/" + key, nil
}

func newTestStore(client *fakeS3) *s3UploadStore {
	s := NewS3UploadStore(client).(*s3UploadStore)
	s.now = func() time.Time { return time.Date(2025, 8, 14, 10, 0, 0, 0, time.UTC) }
	s.newID = func() string { return "id-1" }
	return s
}

func TestS3UploadStoreSave(t *testing.T) {
	client := &fakeS3{}
	store := newTestStore(client)

	f, err := store.Save(context.Background(), "../rec.webm", strings.NewReader("abc"), "audio/webm")
	require.NoError(t, err)

	assert.Equal(t, "uploads/2025-08-14/id-1-rec.webm", client.key)
	assert.Equal(t, "abc", client.body)
	assert.Equal(t, "audio/webm", client.contentType)
	assert.Equal(t, "rec.webm", f.Name)
	assert.Equal(t, int64(3), f.Size)
	assert.Equal(t, "https://s3.example/bucket/uploads/2025-08-14/id-1-rec.webm", f.Location)
}

func TestS3UploadStorePropagatesErrors(t *testing.T) {
	store := newTestStore(&fakeS3{err: errors.New("upload failed: denied")})

	_, err := store.Save(context.Background(), "a.wav", strings.NewReader("abc"), "")
	assert.EqualError(t, err, "upload failed: denied")

	_, err = store.Save(context.Background(), "", strings.NewReader("abc"), "")
	assert.Error(t, err)
}

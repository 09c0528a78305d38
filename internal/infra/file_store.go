package infra

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Vovarama1992/voice_agent/internal/ports"
)

// FileStore keeps uploads in a local directory (default uploads/).
type FileStore struct {
	Dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		dir = "uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &FileStore{Dir: dir}, nil
}

// Save writes r to {dir}/{base(name)}, replacing an existing file of the same name.
func (fs *FileStore) Save(_ context.Context, name string, r io.Reader, _ string) (*ports.StoredFile, error) {
	clean := filepath.Base(filepath.Clean("/" + name))
	if clean == "/" || clean == "." {
		return nil, fmt.Errorf("invalid file name %q", name)
	}

	location := filepath.Join(fs.Dir, clean)
	out, err := os.Create(location)
	if err != nil {
		return nil, err
	}

	size, copyErr := io.Copy(out, r)
	closeErr := out.Close()
	if copyErr != nil {
		_ = os.Remove(location)
		return nil, copyErr
	}
	if closeErr != nil {
		return nil, closeErr
	}

	return &ports.StoredFile{Name: clean, Location: location, Size: size}, nil
}

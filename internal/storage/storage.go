package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// UploadsPath is the location of the upload directory inside the static tree.
// It doubles as the URL path under /static.
const UploadsPath = "images/uploads"

// Image is an uploaded image as stored on disk
type Image struct {
	Filename string
	Path     string
	Size     int64
}

// Store writes uploaded images into a single directory, keyed by sanitized filename.
type Store struct {
	Dir string
}

// New returns a Store rooted at <staticDir>/images/uploads, creating the directory if needed.
func New(staticDir string) (*Store, error) {
	dir := filepath.Join(staticDir, filepath.FromSlash(UploadsPath))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &Store{Dir: dir}, nil
}

// Path returns the on-disk location for a stored filename.
func (s *Store) Path(name string) string {
	return filepath.Join(s.Dir, filepath.Base(name))
}

// Save writes src under name, replacing any existing file with the same name.
// name is expected to be sanitized already; an empty name gets a generated one.
func (s *Store) Save(name string, src io.Reader) (Image, error) {
	if name == "" {
		name = uuid.NewString()
	}
	dest := s.Path(name)

	// Write beside the destination and rename so readers never see a partial file
	tmp, err := os.CreateTemp(s.Dir, ".upload-*")
	if err != nil {
		return Image{}, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	size, err := io.Copy(tmp, src)
	if err != nil {
		tmp.Close()
		return Image{}, fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return Image{}, fmt.Errorf("failed to close %s: %w", name, err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return Image{}, fmt.Errorf("failed to set permissions on %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return Image{}, fmt.Errorf("failed to store %s: %w", name, err)
	}

	return Image{Filename: name, Path: dest, Size: size}, nil
}

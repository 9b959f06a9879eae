package upload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"communitycalendar/internal/domain"
)

type diskStore struct {
	dir string
}

// NewDiskStore returns a FileStore that writes files into dir, creating it on
// first save if needed.
func NewDiskStore(dir string) domain.FileStore {
	return &diskStore{dir: dir}
}

func (s *diskStore) Save(name string, r io.Reader) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create upload dir: %w", err)
	}
	path := filepath.Join(s.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

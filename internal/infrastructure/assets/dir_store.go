package assets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jfgoncalves/morning-weather/internal/pkg/logger"
)

// DirStore reads icon files from a flat local directory.
type DirStore struct {
	dir    string
	logger logger.Logger
}

func NewDirStore(dir string, log logger.Logger) *DirStore {
	return &DirStore{
		dir:    dir,
		logger: logger.Component(log, "asset_store"),
	}
}

func (s *DirStore) Dir() string {
	return s.dir
}

func (s *DirStore) Read(name string) ([]byte, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open asset: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read asset %s: %w", name, err)
	}

	s.logger.Debugf("Read asset %s (%d bytes)", name, len(data))
	return data, nil
}

func (s *DirStore) Exists(name string) bool {
	path, err := s.path(name)
	if err != nil {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// path keeps lookups inside the store directory.
func (s *DirStore) path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return "", fmt.Errorf("invalid asset name %q", name)
	}
	return filepath.Join(s.dir, name), nil
}

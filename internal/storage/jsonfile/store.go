package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/Rejzi-dich/RytonStore/internal/domain"
	"github.com/Rejzi-dich/RytonStore/internal/storage"
)

// jsonFileStore implements the Store interface on a flat JSON document list
type jsonFileStore struct {
	path string
}

// NewJSONFileStore creates a store backed by a single JSON array on disk
func NewJSONFileStore(path string) storage.Store {
	return &jsonFileStore{path: path}
}

// LoadAll reads the whole catalog. A missing file is an empty catalog.
func (s *jsonFileStore) LoadAll(ctx context.Context) ([]domain.Package, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	var packages []domain.Package
	if err := json.Unmarshal(data, &packages); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", s.path, err)
	}
	return packages, nil
}

// SaveAll rewrites the whole catalog file. The last writer wins.
func (s *jsonFileStore) SaveAll(ctx context.Context, packages []domain.Package) error {
	if packages == nil {
		packages = []domain.Package{}
	}

	data, err := json.MarshalIndent(packages, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode packages: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	return nil
}

// Close is a no-op for the file backend
func (s *jsonFileStore) Close() error {
	return nil
}

package storage

import (
	"context"

	"github.com/Rejzi-dich/RytonStore/internal/domain"
)

// Store is the abstract interface for the package catalog persistence layer.
// The catalog is read and rewritten as a whole list: there are no indexed or
// partial writes, and concurrent writers race with last-writer-wins semantics.
// That hazard is a property of the backends, not of the catalog logic.
type Store interface {
	// LoadAll returns every package record in store order.
	// A store that has never been written is an empty catalog, not an error.
	LoadAll(ctx context.Context) ([]domain.Package, error)

	// SaveAll replaces the entire catalog with the given list
	SaveAll(ctx context.Context, packages []domain.Package) error

	// Close releases any resources held by the backend
	Close() error
}

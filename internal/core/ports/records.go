// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/domain"
)

// RecordStore is the content record store. It is read-only to the resolver
// and assumed immutable for the duration of a run.
//
//go:generate mockgen -source=records.go -destination=mocks/mock_records.go -package=mocks
type RecordStore interface {
	// FindByID retrieves the record with the given identifier.
	// Returns nil, nil if not found.
	FindByID(ctx context.Context, id domain.Identifier) (*domain.Record, error)

	// FindByName retrieves the record whose name, or name without its type
	// qualifier, equals name. Returns nil, nil if not found.
	FindByName(ctx context.Context, name string) (*domain.Record, error)

	// FindByNamePattern returns records whose filename matches the glob pattern.
	FindByNamePattern(ctx context.Context, pattern string) ([]domain.Record, error)
}

// RecordCatalog is a RecordStore that can be populated and closed.
type RecordCatalog interface {
	RecordStore

	// Ingest decodes the given record dump files and stores their records.
	// It returns the number of records written.
	Ingest(ctx context.Context, paths []string) (int, error)

	// Close releases the underlying handle.
	Close() error
}

// RecordCatalogOpener opens a record catalog at a location.
type RecordCatalogOpener interface {
	// Open opens, creating if needed, the catalog at path.
	Open(ctx context.Context, path string) (RecordCatalog, error)
}

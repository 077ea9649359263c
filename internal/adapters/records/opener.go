package records

import (
	"context"

	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/ports"
)

// Opener opens SQLite record catalogs.
type Opener struct{}

var _ ports.RecordCatalogOpener = Opener{}

// Open opens the catalog at path.
func (Opener) Open(ctx context.Context, path string) (ports.RecordCatalog, error) {
	s, err := Open(ctx, path)
	if err != nil {
		return nil, err
	}
	return s, nil
}

package records

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/ports"
)

// NodeID is the graft node that provides the record catalog opener.
const NodeID graft.ID = "adapter.record_catalog"

func init() {
	graft.Register(graft.Node[ports.RecordCatalogOpener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RecordCatalogOpener, error) {
			return Opener{}, nil
		},
	})
}

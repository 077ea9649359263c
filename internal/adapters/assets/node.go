package assets

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/ports"
)

// NodeID is the graft node that provides the asset source.
const NodeID graft.ID = "adapter.asset_source"

func init() {
	graft.Register(graft.Node[ports.AssetSource]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.AssetSource, error) {
			return NewOSSource(), nil
		},
	})
}

package scene

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/ports"
)

// NodeID is the graft node that provides the scene store.
const NodeID graft.ID = "adapter.scene_store"

func init() {
	graft.Register(graft.Node[ports.SceneStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SceneStore, error) {
			return NewStore(), nil
		},
	})
}

package progress

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/domain"
	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/ports"
)

// NodeID is the graft node that provides the terminal progress sink.
const NodeID graft.ID = "adapter.progress"

func init() {
	graft.Register(graft.Node[ports.ProgressSink]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ProgressSink, error) {
			return NewReporter(nil, domain.DefaultProgressInterval), nil
		},
	})
}

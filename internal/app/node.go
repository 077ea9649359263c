package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/scorg-tools/Blender-Tools-sub000/internal/adapters/assets"    //nolint:depguard // Wired in app layer
	"github.com/scorg-tools/Blender-Tools-sub000/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"github.com/scorg-tools/Blender-Tools-sub000/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"github.com/scorg-tools/Blender-Tools-sub000/internal/adapters/progress"  //nolint:depguard // Wired in app layer
	"github.com/scorg-tools/Blender-Tools-sub000/internal/adapters/records"   //nolint:depguard // Wired in app layer
	"github.com/scorg-tools/Blender-Tools-sub000/internal/adapters/scene"     //nolint:depguard // Wired in app layer
	"github.com/scorg-tools/Blender-Tools-sub000/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			records.NodeID,
			scene.NodeID,
			assets.NodeID,
			progress.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	catalogs, err := graft.Dep[ports.RecordCatalogOpener](ctx)
	if err != nil {
		return nil, err
	}

	scenes, err := graft.Dep[ports.SceneStore](ctx)
	if err != nil {
		return nil, err
	}

	source, err := graft.Dep[ports.AssetSource](ctx)
	if err != nil {
		return nil, err
	}

	sink, err := graft.Dep[ports.ProgressSink](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, catalogs, scenes, source, sink, tracer, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	c := &Components{
		App:    app,
		Logger: log,
	}
	if v, ok := log.(Verbosity); ok {
		c.Verbosity = v
	}
	return c, nil
}

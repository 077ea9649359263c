// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/scorg-tools/Blender-Tools-sub000/internal/adapters/assets"
	_ "github.com/scorg-tools/Blender-Tools-sub000/internal/adapters/config"
	_ "github.com/scorg-tools/Blender-Tools-sub000/internal/adapters/logger"
	_ "github.com/scorg-tools/Blender-Tools-sub000/internal/adapters/progress"
	_ "github.com/scorg-tools/Blender-Tools-sub000/internal/adapters/records"
	_ "github.com/scorg-tools/Blender-Tools-sub000/internal/adapters/scene"
	_ "github.com/scorg-tools/Blender-Tools-sub000/internal/adapters/telemetry"
	// Register app nodes.
	_ "github.com/scorg-tools/Blender-Tools-sub000/internal/app"
)

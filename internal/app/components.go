package app

import "github.com/scorg-tools/Blender-Tools-sub000/internal/core/ports"

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
	// Verbosity toggles debug output and JSON logs; nil when the logger cannot switch.
	Verbosity Verbosity
}

// Verbosity is implemented by loggers whose level and format can be switched at runtime.
type Verbosity interface {
	SetVerbose(enable bool)
	SetJSON(enable bool)
}

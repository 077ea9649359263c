package ports

import "github.com/scorg-tools/Blender-Tools-sub000/internal/core/domain"

// ConfigLoader defines the interface for loading resolver settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers the configuration from the given working directory and returns the settings.
	// Defaults apply when no configuration file exists.
	Load(cwd string) (domain.Settings, error)
}

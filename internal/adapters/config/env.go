package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/domain"
	"go.trai.ch/zerr"
)

// Overrides are settings taken from the environment. Unset variables leave
// the file or default value in place.
type Overrides struct {
	ExtractionRoot   string        `env:"LOADOUT_EXTRACTION_ROOT"`
	Records          string        `env:"LOADOUT_RECORDS"`
	Include          []string      `env:"LOADOUT_INCLUDE" envSeparator:","`
	MaxDepth         int           `env:"LOADOUT_MAX_DEPTH"`
	MeshExtension    string        `env:"LOADOUT_MESH_EXTENSION"`
	ProgressInterval time.Duration `env:"LOADOUT_PROGRESS_INTERVAL"`
	ProgressTape     string        `env:"LOADOUT_PROGRESS_TAPE"`
}

// ParseOverrides reads Overrides from environ, or from the process
// environment when environ is nil.
func ParseOverrides(environ map[string]string) (Overrides, error) {
	var o Overrides
	if err := env.ParseWithOptions(&o, env.Options{Environment: environ}); err != nil {
		return Overrides{}, zerr.Wrap(err, domain.ErrConfigEnvFailed.Error())
	}
	return o, nil
}

// apply layers the overrides onto s. Relative paths resolve against cwd.
func (o Overrides) apply(s *domain.Settings, cwd string) {
	if o.ExtractionRoot != "" {
		s.ExtractionRoot = resolvePath(cwd, o.ExtractionRoot)
	}
	if o.Records != "" {
		s.RecordsPath = resolvePath(cwd, o.Records)
	}
	if len(o.Include) > 0 {
		s.Include = o.Include
	}
	if o.MaxDepth > 0 {
		s.MaxDepth = o.MaxDepth
	}
	if o.MeshExtension != "" {
		s.MeshExtension = o.MeshExtension
	}
	if o.ProgressInterval > 0 {
		s.ProgressInterval = o.ProgressInterval
	}
	if o.ProgressTape != "" {
		s.ProgressTape = resolvePath(cwd, o.ProgressTape)
	}
}

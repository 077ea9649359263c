// Package config provides the configuration loader for loadout.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/domain"
	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file and environment overrides.
type Loader struct {
	Logger ports.Logger
	// Environ replaces the process environment when non-nil.
	Environ map[string]string
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load finds loadout.yaml in cwd or one of its parents and returns the
// resulting settings. Without a file, defaults rooted at cwd apply.
// Environment overrides are applied last.
func (l *Loader) Load(cwd string) (domain.Settings, error) {
	settings := domain.DefaultSettings(cwd)

	if configPath, ok := findConfiguration(cwd); ok {
		l.Logger.Debug(fmt.Sprintf("using configuration %s", configPath))
		var file File
		if err := readAndUnmarshalYAML(configPath, &file); err != nil {
			return domain.Settings{}, zerr.With(err, "path", configPath)
		}
		if err := file.apply(&settings, filepath.Dir(configPath)); err != nil {
			return domain.Settings{}, zerr.With(err, "path", configPath)
		}
	}

	overrides, err := ParseOverrides(l.Environ)
	if err != nil {
		return domain.Settings{}, err
	}
	overrides.apply(&settings, cwd)

	if !strings.HasPrefix(settings.MeshExtension, ".") {
		settings.MeshExtension = "." + settings.MeshExtension
	}
	return settings, nil
}

func findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

func (f File) apply(s *domain.Settings, configDir string) error {
	s.ExtractionRoot = resolvePath(configDir, f.ExtractionRoot)
	s.RecordsPath = filepath.Join(configDir, domain.DefaultRecordsPath())
	if f.Records != "" {
		s.RecordsPath = resolvePath(configDir, f.Records)
	}
	if len(f.Include) > 0 {
		s.Include = f.Include
	}
	switch {
	case f.MaxDepth < 0:
		return zerr.With(domain.ErrConfigParseFailed, "max_depth", f.MaxDepth)
	case f.MaxDepth > 0:
		s.MaxDepth = f.MaxDepth
	}
	if f.MeshExtension != "" {
		s.MeshExtension = f.MeshExtension
	}
	if f.ProgressInterval != "" {
		d, err := time.ParseDuration(f.ProgressInterval)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "progress_interval", f.ProgressInterval)
		}
		s.ProgressInterval = d
	}
	if f.ProgressTape != "" {
		s.ProgressTape = resolvePath(configDir, f.ProgressTape)
	}
	return nil
}

// resolvePath resolves p against dir. An empty p yields dir.
func resolvePath(dir, p string) string {
	if p == "" {
		return filepath.Clean(dir)
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Clean(filepath.Join(dir, p))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is validated by caller
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}

package domain

import (
	"path/filepath"
	"time"
)

const (
	// StateDirName is the name of the internal workspace directory.
	StateDirName = ".loadout"

	// RecordsFileName is the name of the default SQLite record store.
	RecordsFileName = "records.db"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "loadout.yaml"

	// DescriptorExtension marks a rig descriptor (rig + attachments) rather than a ready mesh.
	DescriptorExtension = ".cdf"

	// DefaultMeshExtension is the extension extracted mesh assets carry.
	DefaultMeshExtension = ".glb"

	// DefaultMaxDepth bounds loadout nesting.
	DefaultMaxDepth = 32

	// DefaultProgressInterval is the minimum time between two unforced progress updates.
	DefaultProgressInterval = 100 * time.Millisecond

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Scene node attribute keys.
const (
	// AttrOrigName is the name a slot is addressed by in loadout matching.
	AttrOrigName = "orig_name"
	// AttrSourceID is the identifier an attached content root was loaded for.
	AttrSourceID = "source_id"
	// AttrSourcePath is the asset file an attached content root was loaded from.
	AttrSourcePath = "source_path"
	// AttrBaseContainer tags the top node of the asset being populated.
	AttrBaseContainer = "loadout_base"
)

// SourceMeshExtensions are the extensions declared in records that map onto extracted mesh files.
var SourceMeshExtensions = []string{".cgf", ".cga", ".chr", ".skin", ".cgfm", ".skinm"}

// DefaultRecordsPath returns the default path for the record store.
// It joins .loadout and records.db.
func DefaultRecordsPath() string {
	return filepath.Join(StateDirName, RecordsFileName)
}

// Settings is the resolved configuration consumed by an import run.
type Settings struct {
	// ExtractionRoot is the directory every asset path is relative to.
	ExtractionRoot string
	// RecordsPath is the SQLite record store location.
	RecordsPath string
	// Include is the top-level port inclusion filter; empty includes everything.
	Include []string
	// MaxDepth bounds loadout nesting.
	MaxDepth int
	// MeshExtension replaces source mesh extensions when locating extracted files.
	MeshExtension string
	// ProgressInterval throttles progress updates.
	ProgressInterval time.Duration
	// ProgressTape, when set, is a file every progress update is journaled to.
	ProgressTape string
}

// DefaultSettings returns settings rooted at dir.
func DefaultSettings(dir string) Settings {
	return Settings{
		ExtractionRoot:   dir,
		RecordsPath:      filepath.Join(dir, DefaultRecordsPath()),
		MaxDepth:         DefaultMaxDepth,
		MeshExtension:    DefaultMeshExtension,
		ProgressInterval: DefaultProgressInterval,
	}
}

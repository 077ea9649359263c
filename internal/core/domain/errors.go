package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidIdentifier is returned when a string is not a canonical 8-4-4-4-12 identifier.
	ErrInvalidIdentifier = zerr.New("invalid identifier")

	// ErrRecordNotFound is returned when no record exists for an identifier.
	ErrRecordNotFound = zerr.New("record not found")

	// ErrNameNotResolved is returned when an entity class name cannot be resolved to an identifier.
	ErrNameNotResolved = zerr.New("entity class name could not be resolved")

	// ErrNoGeometry is returned when a record declares no geometry resource.
	ErrNoGeometry = zerr.New("record declares no geometry")

	// ErrDescriptorMissing is returned when a rig descriptor file does not exist in the extraction root.
	ErrDescriptorMissing = zerr.New("rig descriptor file missing")

	// ErrDescriptorParseFailed is returned when a rig descriptor file cannot be decoded.
	ErrDescriptorParseFailed = zerr.New("failed to parse rig descriptor")

	// ErrAssetNotFound is returned when a mesh asset file does not exist in the extraction root.
	ErrAssetNotFound = zerr.New("asset file not found")

	// ErrAssetLoadFailed is returned when a mesh asset file exists but cannot be loaded.
	ErrAssetLoadFailed = zerr.New("failed to load asset file")

	// ErrAssetEmpty is returned when loading an asset produced no nodes.
	ErrAssetEmpty = zerr.New("asset produced no nodes")

	// ErrPropertyNotFound is returned when a property path does not exist in a component tree.
	ErrPropertyNotFound = zerr.New("property not found")

	// ErrPropertyTypeMismatch is returned when a property has a different kind than requested.
	ErrPropertyTypeMismatch = zerr.New("property type mismatch")

	// ErrMalformedComponent is returned when a component is missing an expected field.
	ErrMalformedComponent = zerr.New("malformed component")

	// ErrSlotUnmatched is returned when no placeholder node corresponds to a loadout entry.
	ErrSlotUnmatched = zerr.New("no slot matches port")

	// ErrCycleDetected is returned when a nested loadout refers back to an identifier on the current resolution path.
	ErrCycleDetected = zerr.New("loadout cycle detected")

	// ErrDepthExceeded is returned when loadout nesting exceeds the configured maximum depth.
	ErrDepthExceeded = zerr.New("loadout nesting too deep")

	// ErrNoBaseContainer is returned when the scene has no node tagged as the base container.
	ErrNoBaseContainer = zerr.New("scene has no base container")

	// ErrNodeNotFound is returned when a scene operation references an unknown node.
	ErrNodeNotFound = zerr.New("scene node not found")

	// ErrNotARig is returned when a rig conversion is requested for a node that carries no rig.
	ErrNotARig = zerr.New("node is not a rig")

	// ErrNoLoadout is returned when an entity has no default loadout to resolve.
	ErrNoLoadout = zerr.New("entity has no default loadout")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigEnvFailed is returned when environment overrides cannot be parsed.
	ErrConfigEnvFailed = zerr.New("failed to parse environment overrides")

	// ErrStoreOpenFailed is returned when the record store cannot be opened.
	ErrStoreOpenFailed = zerr.New("failed to open record store")

	// ErrStoreReadFailed is returned when records cannot be read from the store.
	ErrStoreReadFailed = zerr.New("failed to read record")

	// ErrStoreWriteFailed is returned when records cannot be written to the store.
	ErrStoreWriteFailed = zerr.New("failed to write record")

	// ErrDumpReadFailed is returned when a record dump file cannot be read.
	ErrDumpReadFailed = zerr.New("failed to read record dump")

	// ErrDumpParseFailed is returned when a record dump file cannot be decoded.
	ErrDumpParseFailed = zerr.New("failed to parse record dump")

	// ErrSceneReadFailed is returned when a scene manifest cannot be read.
	ErrSceneReadFailed = zerr.New("failed to read scene manifest")

	// ErrSceneWriteFailed is returned when a scene manifest cannot be written.
	ErrSceneWriteFailed = zerr.New("failed to write scene manifest")

	// ErrImportFailed is returned when a top-level import cannot start.
	ErrImportFailed = zerr.New("import failed")

	// ErrTapeOpenFailed is returned when the progress tape file cannot be created.
	ErrTapeOpenFailed = zerr.New("failed to open progress tape")
)

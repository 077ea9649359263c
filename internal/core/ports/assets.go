package ports

// AssetSource is the root-relative file system holding extracted mesh
// assets and rig descriptors. Paths use forward slashes and are relative to
// root, in the same way BuildInfoStore paths are relative to a project root.
//
//go:generate mockgen -source=assets.go -destination=mocks/mock_assets.go -package=mocks
type AssetSource interface {
	// Locate returns the stored path for rel, falling back to a
	// case-insensitive match. ok is false when nothing matches.
	Locate(root, rel string) (path string, ok bool)

	// ReadFile reads the file at rel.
	ReadFile(root, rel string) ([]byte, error)
}

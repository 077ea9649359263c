package ports

import "context"

// Node is a handle to one scene node.
type Node interface {
	// Name returns the node's unique scene name.
	Name() string
	// Parent returns the parent node, or nil for a top-level node.
	Parent() Node
	// Children returns the direct children in creation order.
	Children() []Node
	// HasMesh reports whether the node carries mesh data.
	HasMesh() bool
	// IsRig reports whether the node is a skeletal rig.
	IsRig() bool
	// Attr returns a custom attribute.
	Attr(key string) (string, bool)
	// SetAttr sets a custom attribute.
	SetAttr(key, value string)
}

// Scene is the set of mutation primitives the resolver drives. Calls are
// not safe for concurrent use; the resolver is strictly sequential.
//
//go:generate mockgen -source=scene.go -destination=mocks/mock_scene.go -package=mocks
type Scene interface {
	// Roots returns the top-level nodes.
	Roots() []Node

	// NewEmpty creates a placeholder node under parent (nil for top level).
	// The scene may rename it to keep names unique.
	NewEmpty(name string, parent Node) Node

	// LoadAssetFile loads a mesh asset relative to the extraction root and
	// returns every node it created. A file that does not exist yields
	// domain.ErrAssetNotFound; a file that loads but holds nothing yields no
	// nodes and no error.
	LoadAssetFile(ctx context.Context, path string) ([]Node, error)

	// ConvertRigToPlaceholders replaces a skeletal rig with placeholder nodes
	// mirroring its joint hierarchy and returns the root placeholder.
	ConvertRigToPlaceholders(rig Node) (Node, error)

	// StripMesh replaces a mesh-bearing node with a placeholder that keeps its
	// name, attributes, parent and children, and returns the placeholder.
	StripMesh(node Node) (Node, error)

	// Reparent moves node under parent. With identity set the node's local
	// transform is reset so it sits exactly on the parent.
	Reparent(node, parent Node, identity bool) error

	// Remove deletes node and its subtree from the scene.
	Remove(node Node) error

	// LinkedDuplicate copies root and its descendants. Copies share mesh data
	// with the originals but have their own transforms and hierarchy.
	LinkedDuplicate(root Node) (Node, error)
}

// SceneStore creates and persists scenes.
type SceneStore interface {
	// New returns an empty scene loading assets from root.
	New(assets AssetSource, root string) Scene
	// Read loads a scene manifest.
	Read(path string, assets AssetSource, root string) (Scene, error)
	// Write saves a scene manifest.
	Write(scene Scene, path string) error
}

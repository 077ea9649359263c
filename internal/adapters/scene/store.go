package scene

import (
	"os"
	"path/filepath"

	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/domain"
	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Store implements ports.SceneStore using YAML scene manifests.
type Store struct{}

var _ ports.SceneStore = (*Store)(nil)

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// New returns an empty scene loading assets from root.
func (st *Store) New(assets ports.AssetSource, root string) ports.Scene {
	return New(assets, root)
}

// Read loads the scene manifest at path.
func (st *Store) Read(path string, assets ports.AssetSource, root string) (ports.Scene, error) {
	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSceneReadFailed.Error()), "path", path)
	}
	s, err := Decode(data, assets, root)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return s, nil
}

// Write saves scene to path, creating parent directories as needed.
func (st *Store) Write(scene ports.Scene, path string) error {
	s, ok := scene.(*Scene)
	if !ok {
		return zerr.With(domain.ErrSceneWriteFailed, "reason", "unsupported scene implementation")
	}
	data, err := s.Encode()
	if err != nil {
		return err
	}

	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrSceneWriteFailed.Error())
	}
	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSceneWriteFailed.Error()), "path", path)
	}
	return nil
}

// Encode renders the scene as a manifest. Nodes sharing mesh data name the
// same mesh, so linked duplicates survive a round trip.
func (s *Scene) Encode() ([]byte, error) {
	doc := document{Nodes: make([]nodeSpec, 0, len(s.roots))}
	for _, r := range s.roots {
		doc.Nodes = append(doc.Nodes, r.spec())
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrSceneWriteFailed.Error())
	}
	return data, nil
}

// Decode builds a scene from a manifest.
func Decode(data []byte, assets ports.AssetSource, root string) (*Scene, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.Wrap(err, domain.ErrSceneReadFailed.Error())
	}

	s := New(assets, root)
	meshes := make(map[string]*Mesh)
	var created []ports.Node
	for _, spec := range doc.Nodes {
		s.build(spec, nil, "", meshes, &created)
	}
	return s, nil
}

package scene

import (
	"context"

	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/domain"
	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// document is the on-disk form of both asset files and scene manifests.
type document struct {
	Nodes []nodeSpec `yaml:"nodes"`
}

type nodeSpec struct {
	Name      string            `yaml:"name"`
	Mesh      string            `yaml:"mesh,omitempty"`
	Rig       []Joint           `yaml:"rig,omitempty"`
	Attrs     map[string]string `yaml:"attrs,omitempty"`
	Transform *Transform        `yaml:"transform,omitempty"`
	Children  []nodeSpec        `yaml:"children,omitempty"`
}

// LoadAssetFile loads the asset manifest at path, relative to the scene's
// extraction root, as new top-level nodes. It returns every node created in
// depth-first order. Each load gets its own mesh data.
func (s *Scene) LoadAssetFile(ctx context.Context, path string) ([]ports.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	located, ok := s.assets.Locate(s.root, path)
	if !ok {
		return nil, zerr.With(domain.ErrAssetNotFound, "path", path)
	}
	data, err := s.assets.ReadFile(s.root, located)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrAssetLoadFailed.Error()), "path", path)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrAssetLoadFailed.Error()), "path", path)
	}

	var created []ports.Node
	meshes := make(map[string]*Mesh)
	for _, spec := range doc.Nodes {
		s.build(spec, nil, located, meshes, &created)
	}
	return created, nil
}

// build instantiates spec under parent. Mesh names are resolved through
// meshes so that nodes naming the same mesh within one document share it.
func (s *Scene) build(spec nodeSpec, parent *Node, source string, meshes map[string]*Mesh, created *[]ports.Node) *Node {
	n := &Node{
		name:      spec.Name,
		joints:    spec.Rig,
		rig:       len(spec.Rig) > 0,
		transform: Identity,
	}
	if n.name == "" {
		n.name = "Empty"
	}
	if spec.Transform != nil {
		n.transform = *spec.Transform
	}
	for k, v := range spec.Attrs {
		n.SetAttr(k, v)
	}
	if spec.Mesh != "" {
		m, ok := meshes[spec.Mesh]
		if !ok {
			m = s.newMesh(spec.Mesh, source)
			meshes[spec.Mesh] = m
		}
		n.mesh = m
	}

	s.add(n, parent)
	*created = append(*created, n)
	for _, c := range spec.Children {
		s.build(c, n, source, meshes, created)
	}
	return n
}

// spec converts n and its descendants back into their document form.
func (n *Node) spec() nodeSpec {
	out := nodeSpec{
		Name:  n.name,
		Rig:   n.joints,
		Attrs: n.attrs,
	}
	if n.mesh != nil {
		out.Mesh = n.mesh.Name
	}
	if n.transform != Identity {
		t := n.transform
		out.Transform = &t
	}
	for _, c := range n.children {
		out.Children = append(out.Children, c.spec())
	}
	return out
}

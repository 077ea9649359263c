// Package scene implements an in-memory scene graph that loadouts are resolved into.
package scene

import (
	"fmt"
	"maps"
	"slices"

	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/domain"
	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/ports"
	"go.trai.ch/zerr"
)

// Transform is a node's local placement relative to its parent.
type Transform struct {
	Location [3]float64 `yaml:"location,flow"`
	Rotation [3]float64 `yaml:"rotation,flow"`
	Scale    [3]float64 `yaml:"scale,flow"`
}

// Identity is the transform that places a node exactly on its parent.
var Identity = Transform{Scale: [3]float64{1, 1, 1}}

// Mesh is geometry data. Linked duplicates point at the same Mesh.
type Mesh struct {
	Name   string
	Source string
}

// Joint is one bone of a rig.
type Joint struct {
	Name     string  `yaml:"name"`
	Children []Joint `yaml:"children,omitempty"`
}

// Node is one scene object.
type Node struct {
	scene     *Scene
	name      string
	parent    *Node
	children  []*Node
	mesh      *Mesh
	joints    []Joint
	rig       bool
	attrs     map[string]string
	transform Transform
}

var _ ports.Node = (*Node)(nil)

// Name returns the node's unique name.
func (n *Node) Name() string { return n.name }

// Parent returns the parent node, or nil at the top level.
func (n *Node) Parent() ports.Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// Children returns the direct children.
func (n *Node) Children() []ports.Node {
	out := make([]ports.Node, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

// HasMesh reports whether the node carries mesh data.
func (n *Node) HasMesh() bool { return n.mesh != nil }

// IsRig reports whether the node is a skeletal rig.
func (n *Node) IsRig() bool { return n.rig }

// Attr returns a custom attribute.
func (n *Node) Attr(key string) (string, bool) {
	v, ok := n.attrs[key]
	return v, ok
}

// SetAttr sets a custom attribute.
func (n *Node) SetAttr(key, value string) {
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[key] = value
}

// Mesh returns the node's mesh data, or nil.
func (n *Node) Mesh() *Mesh { return n.mesh }

// Transform returns the node's local transform.
func (n *Node) Transform() Transform { return n.transform }

// SetTransform sets the node's local transform.
func (n *Node) SetTransform(t Transform) { n.transform = t }

// Scene is an in-memory scene graph. It is not safe for concurrent use.
type Scene struct {
	assets ports.AssetSource
	root   string

	roots  []*Node
	names  map[string]*Node
	meshes map[string]*Mesh
}

var _ ports.Scene = (*Scene)(nil)

// New creates an empty scene that loads asset files from root.
func New(assets ports.AssetSource, root string) *Scene {
	return &Scene{
		assets: assets,
		root:   root,
		names:  make(map[string]*Node),
		meshes: make(map[string]*Mesh),
	}
}

// Roots returns the top-level nodes.
func (s *Scene) Roots() []ports.Node {
	out := make([]ports.Node, len(s.roots))
	for i, r := range s.roots {
		out[i] = r
	}
	return out
}

// Find returns the node with the given name.
func (s *Scene) Find(name string) (*Node, bool) {
	n, ok := s.names[name]
	return n, ok
}

// Len returns the number of nodes in the scene.
func (s *Scene) Len() int { return len(s.names) }

// Meshes returns the number of distinct mesh data blocks.
func (s *Scene) Meshes() int { return len(s.meshes) }

// NewEmpty creates a placeholder under parent, or at the top level when parent is nil.
func (s *Scene) NewEmpty(name string, parent ports.Node) ports.Node {
	var p *Node
	if parent != nil {
		p, _ = s.own(parent)
	}
	return s.add(&Node{name: name, transform: Identity}, p)
}

// ConvertRigToPlaceholders turns a rig into a placeholder carrying one
// child placeholder per joint, mirroring the joint hierarchy. The node keeps
// its name, attributes, parent and existing children.
func (s *Scene) ConvertRigToPlaceholders(rig ports.Node) (ports.Node, error) {
	n, err := s.own(rig)
	if err != nil {
		return nil, err
	}
	if !n.rig {
		return nil, zerr.With(domain.ErrNotARig, "node", n.name)
	}
	for _, j := range n.joints {
		s.addJoint(j, n)
	}
	n.rig, n.joints = false, nil
	return n, nil
}

func (s *Scene) addJoint(j Joint, parent *Node) {
	n := s.add(&Node{name: j.Name, transform: Identity}, parent)
	for _, c := range j.Children {
		s.addJoint(c, n)
	}
}

// StripMesh drops the node's mesh data, leaving a placeholder in place.
func (s *Scene) StripMesh(node ports.Node) (ports.Node, error) {
	n, err := s.own(node)
	if err != nil {
		return nil, err
	}
	if n.mesh != nil {
		mesh := n.mesh
		n.mesh = nil
		s.release(mesh)
	}
	return n, nil
}

// Reparent moves node under parent, or to the top level when parent is nil.
func (s *Scene) Reparent(node, parent ports.Node, identity bool) error {
	n, err := s.own(node)
	if err != nil {
		return err
	}
	var p *Node
	if parent != nil {
		if p, err = s.own(parent); err != nil {
			return err
		}
		for cur := p; cur != nil; cur = cur.parent {
			if cur == n {
				return zerr.With(zerr.With(domain.ErrCycleDetected, "node", n.name), "parent", p.name)
			}
		}
	}

	s.detach(n)
	n.parent = p
	if p == nil {
		s.roots = append(s.roots, n)
	} else {
		p.children = append(p.children, n)
	}
	if identity {
		n.transform = Identity
	}
	return nil
}

// Remove deletes node and its subtree. Mesh data left without users is
// released and the names become free again.
func (s *Scene) Remove(node ports.Node) error {
	n, err := s.own(node)
	if err != nil {
		return err
	}
	s.detach(n)

	var meshes []*Mesh
	var drop func(*Node)
	drop = func(cur *Node) {
		delete(s.names, cur.name)
		if cur.mesh != nil {
			meshes = append(meshes, cur.mesh)
		}
		for _, c := range cur.children {
			drop(c)
		}
		cur.scene = nil
	}
	drop(n)
	for _, m := range meshes {
		s.release(m)
	}
	return nil
}

// LinkedDuplicate copies root and its descendants to the top level. The
// copies share mesh data with the originals.
func (s *Scene) LinkedDuplicate(root ports.Node) (ports.Node, error) {
	n, err := s.own(root)
	if err != nil {
		return nil, err
	}
	return s.duplicate(n, nil), nil
}

func (s *Scene) duplicate(src, parent *Node) *Node {
	dup := s.add(&Node{
		name:      src.name,
		mesh:      src.mesh,
		joints:    slices.Clone(src.joints),
		rig:       src.rig,
		attrs:     maps.Clone(src.attrs),
		transform: src.transform,
	}, parent)
	for _, c := range src.children {
		s.duplicate(c, dup)
	}
	return dup
}

// add registers n under a unique name and links it to parent.
func (s *Scene) add(n *Node, parent *Node) *Node {
	n.scene = s
	n.name = s.uniqueName(n.name)
	s.names[n.name] = n
	n.parent = parent
	if parent == nil {
		s.roots = append(s.roots, n)
	} else {
		parent.children = append(parent.children, n)
	}
	return n
}

func (s *Scene) detach(n *Node) {
	if n.parent == nil {
		s.roots = slices.DeleteFunc(s.roots, func(r *Node) bool { return r == n })
		return
	}
	n.parent.children = slices.DeleteFunc(n.parent.children, func(c *Node) bool { return c == n })
	n.parent = nil
}

// uniqueName appends the first free ".NNN" suffix when name is taken.
func (s *Scene) uniqueName(name string) string {
	if _, taken := s.names[name]; !taken {
		return name
	}
	base := domain.StripDisambiguation(name)
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s.%03d", base, i)
		if _, taken := s.names[candidate]; !taken {
			return candidate
		}
	}
}

// newMesh registers mesh data under a unique name.
func (s *Scene) newMesh(name, source string) *Mesh {
	unique := name
	for i := 1; ; i++ {
		if _, taken := s.meshes[unique]; !taken {
			break
		}
		unique = fmt.Sprintf("%s.%03d", name, i)
	}
	m := &Mesh{Name: unique, Source: source}
	s.meshes[unique] = m
	return m
}

// release forgets mesh data no node uses any more.
func (s *Scene) release(m *Mesh) {
	for _, n := range s.names {
		if n.mesh == m {
			return
		}
	}
	delete(s.meshes, m.Name)
}

func (s *Scene) own(node ports.Node) (*Node, error) {
	n, ok := node.(*Node)
	if ok && n != nil && n.scene == s {
		return n, nil
	}
	name := "<nil>"
	switch {
	case ok && n != nil:
		name = n.name
	case !ok && node != nil:
		name = node.Name()
	}
	return nil, zerr.With(domain.ErrNodeNotFound, "node", name)
}

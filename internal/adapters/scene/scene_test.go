package scene_test

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/scorg-tools/Blender-Tools-sub000/internal/adapters/assets"
	"github.com/scorg-tools/Blender-Tools-sub000/internal/adapters/scene"
	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/domain"
	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rigAsset = `nodes:
  - name: pilot_rig
    attrs:
      lod: "0"
    rig:
      - name: root
        children:
          - name: spine_01
          - name: head
    children:
      - name: body
        mesh: body_mesh
      - name: visor
        mesh: body_mesh
        transform:
          location: [0, 0.1, 1.7]
          rotation: [0, 0, 0]
          scale: [1, 1, 1]
  - name: lod1
    mesh: body_lod1
`

func newScene(t *testing.T, files map[string]string) *scene.Scene {
	t.Helper()
	fsys := fstest.MapFS{}
	for p, content := range files {
		fsys[p] = &fstest.MapFile{Data: []byte(content)}
	}
	return scene.New(assets.NewFSSource(fsys), "")
}

func names(nodes []ports.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Name()
	}
	return out
}

func TestScene_NewEmpty_UniqueNames(t *testing.T) {
	s := newScene(t, nil)
	base := s.NewEmpty("hardpoint", nil)
	a := s.NewEmpty("hardpoint", base)
	b := s.NewEmpty("hardpoint.001", base)

	assert.Equal(t, "hardpoint", base.Name())
	assert.Equal(t, "hardpoint.001", a.Name())
	assert.Equal(t, "hardpoint.002", b.Name())
	assert.Same(t, base, a.Parent())
	assert.Nil(t, base.Parent())
	assert.Equal(t, 3, s.Len())
}

func TestScene_LoadAssetFile(t *testing.T) {
	s := newScene(t, map[string]string{"Objects/Characters/pilot.glb": rigAsset})

	nodes, err := s.LoadAssetFile(t.Context(), "objects/characters/PILOT.glb")
	require.NoError(t, err)

	assert.Equal(t, []string{"pilot_rig", "body", "visor", "lod1"}, names(nodes))
	assert.Len(t, s.Roots(), 2)
	assert.True(t, nodes[0].IsRig())
	assert.False(t, nodes[0].HasMesh())
	lod, ok := nodes[0].Attr("lod")
	assert.True(t, ok)
	assert.Equal(t, "0", lod)

	body := nodes[1].(*scene.Node)
	visor := nodes[2].(*scene.Node)
	assert.Same(t, body.Mesh(), visor.Mesh())
	assert.Equal(t, scene.Identity, body.Transform())
	assert.Equal(t, [3]float64{0, 0.1, 1.7}, visor.Transform().Location)
	assert.Equal(t, 2, s.Meshes())

	again, err := s.LoadAssetFile(t.Context(), "Objects/Characters/pilot.glb")
	require.NoError(t, err)
	assert.Equal(t, "pilot_rig.001", again[0].Name())
	assert.NotSame(t, body.Mesh(), again[1].(*scene.Node).Mesh())
	assert.Equal(t, 4, s.Meshes())
}

func TestScene_LoadAssetFile_Errors(t *testing.T) {
	s := newScene(t, map[string]string{
		"broken.glb": "nodes: {",
		"empty.glb":  "nodes: []\n",
	})

	_, err := s.LoadAssetFile(t.Context(), "missing.glb")
	require.ErrorContains(t, err, domain.ErrAssetNotFound.Error())

	_, err = s.LoadAssetFile(t.Context(), "broken.glb")
	require.ErrorContains(t, err, domain.ErrAssetLoadFailed.Error())

	nodes, err := s.LoadAssetFile(t.Context(), "empty.glb")
	require.NoError(t, err)
	assert.Empty(t, nodes)
}

func TestScene_ConvertRigToPlaceholders(t *testing.T) {
	s := newScene(t, map[string]string{"pilot.glb": rigAsset})
	nodes, err := s.LoadAssetFile(t.Context(), "pilot.glb")
	require.NoError(t, err)

	root, err := s.ConvertRigToPlaceholders(nodes[0])
	require.NoError(t, err)
	assert.Same(t, nodes[0], root)
	assert.False(t, root.IsRig())
	assert.Equal(t, []string{"body", "visor", "root"}, names(root.Children()))

	joint, ok := s.Find("root")
	require.True(t, ok)
	assert.Equal(t, []string{"spine_01", "head"}, names(joint.Children()))

	_, err = s.ConvertRigToPlaceholders(root)
	require.ErrorContains(t, err, domain.ErrNotARig.Error())
}

func TestScene_StripMesh(t *testing.T) {
	s := newScene(t, map[string]string{"pilot.glb": rigAsset})
	nodes, err := s.LoadAssetFile(t.Context(), "pilot.glb")
	require.NoError(t, err)
	body, visor := nodes[1], nodes[2]

	stripped, err := s.StripMesh(body)
	require.NoError(t, err)
	assert.Same(t, body, stripped)
	assert.False(t, stripped.HasMesh())
	assert.Equal(t, 2, s.Meshes(), "mesh still used by visor")

	_, err = s.StripMesh(visor)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Meshes())
}

func TestScene_Reparent(t *testing.T) {
	s := newScene(t, map[string]string{"pilot.glb": rigAsset})
	slot := s.NewEmpty("hardpoint_seat", nil)
	nodes, err := s.LoadAssetFile(t.Context(), "pilot.glb")
	require.NoError(t, err)
	visor := nodes[2].(*scene.Node)

	require.NoError(t, s.Reparent(visor, slot, false))
	assert.Equal(t, [3]float64{0, 0.1, 1.7}, visor.Transform().Location)
	assert.Equal(t, []string{"visor"}, names(slot.Children()))
	assert.Equal(t, []string{"body"}, names(nodes[0].Children()))

	require.NoError(t, s.Reparent(visor, nodes[0], true))
	assert.Equal(t, scene.Identity, visor.Transform())
	assert.Empty(t, slot.Children())

	require.NoError(t, s.Reparent(nodes[0], slot, true))
	err = s.Reparent(slot, visor, true)
	require.ErrorContains(t, err, domain.ErrCycleDetected.Error())

	require.NoError(t, s.Reparent(nodes[0], nil, false))
	assert.Equal(t, []string{"hardpoint_seat", "lod1", "pilot_rig"}, names(s.Roots()))
}

func TestScene_Remove(t *testing.T) {
	s := newScene(t, map[string]string{"pilot.glb": rigAsset})
	slot := s.NewEmpty("hardpoint_seat", nil)
	nodes, err := s.LoadAssetFile(t.Context(), "pilot.glb")
	require.NoError(t, err)
	require.NoError(t, s.Reparent(nodes[0], slot, true))

	require.NoError(t, s.Remove(nodes[0]))
	assert.Empty(t, slot.Children())
	assert.Equal(t, []string{"hardpoint_seat", "lod1"}, names(s.Roots()))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 1, s.Meshes())

	_, ok := s.Find("body")
	assert.False(t, ok)
	assert.Equal(t, "body", s.NewEmpty("body", nil).Name())

	err = s.Remove(nodes[0])
	require.ErrorContains(t, err, domain.ErrNodeNotFound.Error())
}

func TestScene_LinkedDuplicate(t *testing.T) {
	s := newScene(t, map[string]string{"pilot.glb": rigAsset})
	nodes, err := s.LoadAssetFile(t.Context(), "pilot.glb")
	require.NoError(t, err)
	meshes := s.Meshes()

	dup, err := s.LinkedDuplicate(nodes[0])
	require.NoError(t, err)

	assert.Equal(t, "pilot_rig.001", dup.Name())
	assert.Nil(t, dup.Parent())
	assert.True(t, dup.IsRig())
	assert.Equal(t, []string{"body.001", "visor.001"}, names(dup.Children()))
	assert.Same(t, nodes[1].(*scene.Node).Mesh(), dup.Children()[0].(*scene.Node).Mesh())
	assert.Equal(t, meshes, s.Meshes())

	dup.SetAttr("lod", "2")
	lod, _ := nodes[0].Attr("lod")
	assert.Equal(t, "0", lod)

	dup.(*scene.Node).SetTransform(scene.Transform{Scale: [3]float64{2, 2, 2}})
	assert.Equal(t, scene.Identity, nodes[0].(*scene.Node).Transform())
}

func TestScene_ForeignNodes(t *testing.T) {
	a := newScene(t, nil)
	b := newScene(t, nil)
	foreign := b.NewEmpty("other", nil)

	_, err := a.StripMesh(foreign)
	require.ErrorContains(t, err, domain.ErrNodeNotFound.Error())

	err = a.Reparent(a.NewEmpty("mine", nil), foreign, true)
	require.ErrorContains(t, err, domain.ErrNodeNotFound.Error())

	var missing *scene.Node
	_, err = a.LinkedDuplicate(missing)
	require.ErrorContains(t, err, domain.ErrNodeNotFound.Error())
}

func TestStore_RoundTrip(t *testing.T) {
	s := newScene(t, map[string]string{"pilot.glb": rigAsset})
	base := s.NewEmpty("explorer", nil)
	base.SetAttr(domain.AttrBaseContainer, "true")
	nodes, err := s.LoadAssetFile(t.Context(), "pilot.glb")
	require.NoError(t, err)
	require.NoError(t, s.Reparent(nodes[0], base, true))
	dup, err := s.LinkedDuplicate(nodes[0])
	require.NoError(t, err)
	require.NoError(t, s.Reparent(dup, base, true))

	store := scene.NewStore()
	path := filepath.Join(t.TempDir(), "out", "explorer.scene.yaml")
	require.NoError(t, store.Write(s, path))

	read, err := store.Read(path, assets.NewOSSource(), "")
	require.NoError(t, err)
	loaded := read.(*scene.Scene)

	assert.Equal(t, s.Len(), loaded.Len())
	assert.Equal(t, s.Meshes(), loaded.Meshes())
	assert.Equal(t, names(s.Roots()), names(loaded.Roots()))

	body, ok := loaded.Find("body")
	require.True(t, ok)
	bodyDup, ok := loaded.Find("body.001")
	require.True(t, ok)
	assert.Same(t, body.Mesh(), bodyDup.Mesh())

	visor, ok := loaded.Find("visor")
	require.True(t, ok)
	assert.Equal(t, [3]float64{0, 0.1, 1.7}, visor.Transform().Location)

	rig, ok := loaded.Find("pilot_rig")
	require.True(t, ok)
	assert.True(t, rig.IsRig())
	flag, _ := loaded.Roots()[0].Attr(domain.AttrBaseContainer)
	assert.Equal(t, "true", flag)
}

func TestStore_Errors(t *testing.T) {
	store := scene.NewStore()

	_, err := store.Read(filepath.Join(t.TempDir(), "nope.yaml"), assets.NewOSSource(), "")
	require.ErrorContains(t, err, domain.ErrSceneReadFailed.Error())

	_, err = scene.Decode([]byte("nodes: ["), assets.NewOSSource(), "")
	require.ErrorContains(t, err, domain.ErrSceneReadFailed.Error())
}

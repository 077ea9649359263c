package resolver_test

import (
	"testing"

	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/domain"
	"github.com/scorg-tools/Blender-Tools-sub000/internal/engine/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pilotDescriptor = `<?xml version="1.0"?>
<CharacterDefinition>
  <Model File="Objects/Characters/pilot.chr" Material="pilot.mtl"/>
  <AttachmentList>
    <Attachment Type="CA_SKIN" AName="body" Binding="Objects\Characters\body.skin" Flags="0"/>
    <Attachment Type="CA_BONE" AName="helmet_slot" BoneName="head" Binding="Objects/Characters/helmet.cgf"/>
    <Attachment Type="CA_PROX" AName="collision" BoneName="spine_01"/>
  </AttachmentList>
</CharacterDefinition>`

func TestGeometryResolver_Resolve(t *testing.T) {
	tests := []struct {
		name     string
		declared string
		want     []domain.AssetRef
	}{
		{
			name:     "source mesh extension rewritten",
			declared: "Objects/Ships/explorer.cgf",
			want:     []domain.AssetRef{{Path: "Objects/Ships/explorer.glb"}},
		},
		{
			name:     "backslashes and leading slash",
			declared: `\Objects\Ships\explorer.CGA`,
			want:     []domain.AssetRef{{Path: "Objects/Ships/explorer.glb"}},
		},
		{
			name:     "unknown extension kept",
			declared: "Objects/Ships/explorer.glb",
			want:     []domain.AssetRef{{Path: "Objects/Ships/explorer.glb"}},
		},
		{
			name:     "rig descriptor",
			declared: "Objects/Characters/pilot.cdf",
			want: []domain.AssetRef{
				{Path: "Objects/Characters/pilot.glb"},
				{Path: "Objects/Characters/body.glb", BindTarget: "body"},
				{Path: "Objects/Characters/helmet.glb", BindTarget: "head"},
			},
		},
		{
			name:     "rig descriptor with different case",
			declared: "objects/characters/PILOT.cdf",
			want: []domain.AssetRef{
				{Path: "Objects/Characters/pilot.glb"},
				{Path: "Objects/Characters/body.glb", BindTarget: "body"},
				{Path: "Objects/Characters/helmet.glb", BindTarget: "head"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, entity(pilotID, "pilot", tt.declared))
			f.file("Objects/Characters/pilot.cdf", pilotDescriptor)
			g := resolver.NewGeometryResolver(f.records, f.assets, "", "")

			got, err := g.Resolve(t.Context(), pilotID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Files)
			assert.Empty(t, got.Missing)
		})
	}
}

func TestGeometryResolver_MeshExtension(t *testing.T) {
	f := newFixture(t, entity(gunID, "gun_s3", "Objects/Weapons/gun_s3.skin"))
	g := resolver.NewGeometryResolver(f.records, f.assets, "", "gltf")

	got, err := g.Resolve(t.Context(), gunID)
	require.NoError(t, err)
	assert.Equal(t, "Objects/Weapons/gun_s3.gltf", got.Primary().Path)
	assert.False(t, got.IsMultiFile())
}

func TestGeometryResolver_Errors(t *testing.T) {
	f := newFixture(t,
		entity(crateID, "crate_small", ""),
		entity(pilotID, "ghost", "Objects/Characters/ghost.cdf"),
		entity(barrelID, "broken", "Objects/Characters/broken.cdf"),
	)
	f.file("Objects/Characters/broken.cdf", `<CharacterDefinition><AttachmentList/></CharacterDefinition>`)
	g := resolver.NewGeometryResolver(f.records, f.assets, "", "")

	t.Run("unknown record", func(t *testing.T) {
		got, err := g.Resolve(t.Context(), unknownID)
		require.ErrorContains(t, err, domain.ErrRecordNotFound.Error())
		assert.True(t, got.IsEmpty())
	})

	t.Run("no geometry", func(t *testing.T) {
		got, err := g.Resolve(t.Context(), crateID)
		require.ErrorContains(t, err, domain.ErrNoGeometry.Error())
		assert.True(t, got.IsEmpty())
		assert.Empty(t, got.Missing)
	})

	t.Run("descriptor missing", func(t *testing.T) {
		got, err := g.Resolve(t.Context(), pilotID)
		require.ErrorContains(t, err, domain.ErrDescriptorMissing.Error())
		assert.True(t, got.IsEmpty())
		assert.Equal(t, "Objects/Characters/ghost.cdf", got.Missing)
	})

	t.Run("descriptor without model", func(t *testing.T) {
		got, err := g.Resolve(t.Context(), barrelID)
		require.ErrorContains(t, err, domain.ErrDescriptorParseFailed.Error())
		assert.True(t, got.IsEmpty())
		assert.Empty(t, got.Missing)
	})
}

func TestCleanAssetPath(t *testing.T) {
	assert.Equal(t, "Objects/a.cgf", resolver.CleanAssetPath(`  \Objects\\a.cgf `))
	assert.Equal(t, "Objects/a.cgf", resolver.CleanAssetPath("/Objects/./b/../a.cgf"))
	assert.Empty(t, resolver.CleanAssetPath("  "))
}

package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestGeometry(t *testing.T) {
	var empty domain.Geometry
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, domain.AssetRef{}, empty.Primary())
	assert.Nil(t, empty.Dependents())

	single := domain.Geometry{Files: []domain.AssetRef{{Path: "a.glb"}}}
	assert.False(t, single.IsMultiFile())
	assert.Equal(t, "a.glb", single.Primary().Path)
	assert.Nil(t, single.Dependents())

	rig := domain.Geometry{Files: []domain.AssetRef{
		{Path: "rig.glb"},
		{Path: "helmet.glb", BindTarget: "head"},
	}}
	assert.True(t, rig.IsMultiFile())
	assert.Equal(t, []domain.AssetRef{{Path: "helmet.glb", BindTarget: "head"}}, rig.Dependents())
}

func TestAliasMap(t *testing.T) {
	m := domain.AliasMap{}
	m.Add("hp_gun_l", "hardpoint_gun_left")
	m.Add("hp_gun_l", "hardpoint_gun_left")
	m.Add("hp_gun_l", "hardpoint_gun_left_alt")
	m.Add("a_shared", "hardpoint_shared")
	m.Add("z_shared", "hardpoint_shared")

	assert.Equal(t, []string{"hardpoint_gun_left", "hardpoint_gun_left_alt"}, m["hp_gun_l"])

	helper, ok := m.HelperFor("Hardpoint_Gun_Left_Alt")
	assert.True(t, ok)
	assert.Equal(t, "hp_gun_l", helper)

	helper, ok = m.HelperFor("hardpoint_shared")
	assert.True(t, ok)
	assert.Equal(t, "a_shared", helper)

	_, ok = m.HelperFor("hardpoint_nose")
	assert.False(t, ok)

	helper, ok = m.HelperMatching("hp_gun_l.001")
	assert.True(t, ok)
	assert.Equal(t, "hp_gun_l", helper)

	helper, ok = m.HelperMatching("a1b2c3_HP_GUN_L")
	assert.True(t, ok)
	assert.Equal(t, "hp_gun_l", helper)

	_, ok = m.HelperMatching("hp_gun_r")
	assert.False(t, ok)
}

func TestOutcome(t *testing.T) {
	assert.True(t, domain.OutcomeLoaded.Attached())
	assert.True(t, domain.OutcomeLinked.Attached())
	assert.False(t, domain.OutcomeGrouped.Attached())
	assert.False(t, domain.OutcomeMissing.Attached())
}

func TestLogLevel_String(t *testing.T) {
	assert.Equal(t, "DEBUG", domain.LogLevelDebug.String())
	assert.Equal(t, "WARN", domain.LogLevelWarn.String())
	assert.Equal(t, "ERROR", domain.LogLevelError.String())
	assert.Equal(t, "INFO", domain.LogLevel(42).String())
}

func TestDefaultSettings(t *testing.T) {
	s := domain.DefaultSettings("/data/extract")

	assert.Equal(t, "/data/extract", s.ExtractionRoot)
	assert.Equal(t, filepath.Join("/data/extract", ".loadout", "records.db"), s.RecordsPath)
	assert.Equal(t, domain.DefaultMaxDepth, s.MaxDepth)
	assert.Equal(t, ".glb", s.MeshExtension)
	assert.Empty(t, s.Include)
	assert.Equal(t, filepath.Join(".loadout", "records.db"), domain.DefaultRecordsPath())
}

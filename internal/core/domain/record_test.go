package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const explorerRecord = `{
	"id": "3f1c0b6e-9d2a-4c5e-8f7a-1b2c3d4e5f60",
	"name": "EntityClassDefinition.explorer_base",
	"type": "EntityClassDefinition",
	"filename": "Data/Libs/Foundry/Records/entities/spaceships/explorer_base.xml",
	"components": [
		{"name": "SGeometryResourceParams", "properties": {
			"Geometry": {"Geometry": {"Geometry": {"path": " Objects/Ships/explorer.cga "}}}
		}},
		{"name": "SEntityComponentDefaultLoadoutParams", "properties": {
			"loadout": {"entries": [
				{"itemPortName": "hardpoint_nose", "entityClassReference": "11111111-2222-4333-8444-555555555555"},
				{"itemPortName": " hardpoint_pylon ", "entityClassReference": "00000000-0000-0000-0000-000000000000",
				 "loadout": {"entries": [
					{"itemPortName": "hardpoint_missile_01", "entityClassName": "missile_s1"}
				 ]}},
				{"entityClassName": "orphan"},
				"garbage"
			]}
		}}
	]
}`

func decodeRecord(t *testing.T, raw string) domain.Record {
	t.Helper()
	var rec domain.Record
	require.NoError(t, json.Unmarshal([]byte(raw), &rec))
	return rec
}

func TestRecord_GeometryPath(t *testing.T) {
	rec := decodeRecord(t, explorerRecord)

	path, err := rec.GeometryPath()
	require.NoError(t, err)
	assert.Equal(t, "Objects/Ships/explorer.cga", path)
	assert.Equal(t, "explorer_base", rec.ShortName())
	assert.True(t, rec.IsEntity())
}

func TestRecord_GeometryPathErrors(t *testing.T) {
	noComponent := domain.Record{ID: "3f1c0b6e-9d2a-4c5e-8f7a-1b2c3d4e5f60"}
	_, err := noComponent.GeometryPath()
	require.ErrorContains(t, err, domain.ErrNoGeometry.Error())

	malformed := decodeRecord(t, `{"components": [{"name": "SGeometryResourceParams", "properties": {"Geometry": 1}}]}`)
	_, err = malformed.GeometryPath()
	require.ErrorContains(t, err, domain.ErrMalformedComponent.Error())

	blank := decodeRecord(t, `{"components": [{"name": "SGeometryResourceParams", "properties": {
		"Geometry": {"Geometry": {"Geometry": {"path": "  "}}}}}]}`)
	_, err = blank.GeometryPath()
	require.ErrorContains(t, err, domain.ErrNoGeometry.Error())
}

func TestRecord_DefaultLoadout(t *testing.T) {
	rec := decodeRecord(t, explorerRecord)

	loadout, ok := rec.DefaultLoadout()
	require.True(t, ok)
	require.Len(t, loadout, 4)

	assert.Equal(t, domain.Entry{
		PortName:  "hardpoint_nose",
		Reference: "11111111-2222-4333-8444-555555555555",
	}, loadout[0])

	pylon := loadout[1]
	assert.Equal(t, "hardpoint_pylon", pylon.PortName)
	assert.True(t, pylon.HasNested)
	require.Len(t, pylon.Nested, 1)
	assert.Equal(t, "missile_s1", pylon.Nested[0].ClassName)
	assert.False(t, pylon.Skippable())

	assert.True(t, loadout[2].Skippable())
	assert.True(t, loadout[3].Skippable())

	var empty domain.Record
	_, ok = empty.DefaultLoadout()
	assert.False(t, ok)
}

func TestRecord_TintPaletteIsNotAnEntity(t *testing.T) {
	rec := domain.Record{Name: "TintPaletteTree.default", Type: domain.RecordTypeTintPalette}
	assert.False(t, rec.IsEntity())
	assert.Equal(t, "default", rec.ShortName())
}

func TestEntry_Skippable(t *testing.T) {
	assert.True(t, domain.Entry{}.Skippable())
	assert.True(t, domain.Entry{PortName: "hardpoint"}.Skippable())
	assert.True(t, domain.Entry{Reference: "x", ClassName: "y"}.Skippable())
	assert.False(t, domain.Entry{PortName: "hardpoint", ClassName: "y"}.Skippable())
	assert.False(t, domain.Entry{PortName: "hardpoint", Reference: string(domain.NullIdentifier)}.Skippable())
}

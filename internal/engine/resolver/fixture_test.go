package resolver_test

import (
	"testing"
	"testing/fstest"

	"github.com/scorg-tools/Blender-Tools-sub000/internal/adapters/assets"
	"github.com/scorg-tools/Blender-Tools-sub000/internal/adapters/records"
	"github.com/scorg-tools/Blender-Tools-sub000/internal/adapters/scene"
	"github.com/scorg-tools/Blender-Tools-sub000/internal/adapters/telemetry"
	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/domain"
	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/ports"
	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/ports/mocks"
	"github.com/scorg-tools/Blender-Tools-sub000/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

const (
	shipID    = "a1000000-0000-4000-8000-000000000001"
	turretID  = "a1000000-0000-4000-8000-000000000002"
	gunID     = "a1000000-0000-4000-8000-000000000003"
	pilotID   = "a1000000-0000-4000-8000-000000000004"
	crateID   = "a1000000-0000-4000-8000-000000000005"
	barrelID  = "a1000000-0000-4000-8000-000000000006"
	paletteID = "a1000000-0000-4000-8000-000000000007"
	unknownID = "a1000000-0000-4000-8000-0000000000ff"
)

const gunAsset = `nodes:
  - name: gun
    mesh: gun_body
    children:
      - name: hardpoint_scope
`

const turretAsset = `nodes:
  - name: turret
    mesh: turret_body
    children:
      - name: hardpoint_b
`

type fixture struct {
	ctrl     *gomock.Controller
	records  *records.Memory
	files    fstest.MapFS
	assets   *assets.Source
	scene    *scene.Scene
	base     ports.Node
	progress *mocks.MockProgressSink
	logger   *mocks.MockLogger
	settings domain.Settings
}

func newFixture(t *testing.T, recs ...domain.Record) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	files := fstest.MapFS{}
	src := assets.NewFSSource(files)
	sc := scene.New(src, "")
	base := sc.NewEmpty("explorer", nil)
	base.SetAttr(domain.AttrBaseContainer, "true")

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	return &fixture{
		ctrl:     ctrl,
		records:  records.NewMemory(recs...),
		files:    files,
		assets:   src,
		scene:    sc,
		base:     base,
		progress: mocks.NewMockProgressSink(ctrl),
		logger:   logger,
		settings: domain.Settings{
			MaxDepth:      domain.DefaultMaxDepth,
			MeshExtension: domain.DefaultMeshExtension,
		},
	}
}

func (f *fixture) file(path, content string) {
	f.files[path] = &fstest.MapFile{Data: []byte(content)}
}

// slots creates empty placeholders under the base container.
func (f *fixture) slots(names ...string) []ports.Node {
	out := make([]ports.Node, 0, len(names))
	for _, name := range names {
		out = append(out, f.scene.NewEmpty(name, f.base))
	}
	return out
}

func (f *fixture) quiet() {
	f.progress.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	f.progress.EXPECT().Clear().AnyTimes()
}

func (f *fixture) session() *resolver.Session {
	return f.sessionWith(f.records)
}

func (f *fixture) sessionWith(store ports.RecordStore) *resolver.Session {
	return resolver.NewSession(store, f.assets, f.scene, f.progress, telemetry.NewNoOpTracer(), f.logger, f.settings)
}

func entity(id, name, geometryPath string, components ...domain.Component) domain.Record {
	rec := domain.Record{
		ID:       domain.Identifier(id),
		Name:     "EntityClassDefinition." + name,
		Type:     domain.RecordTypeEntity,
		Filename: "Data/Libs/Foundry/Records/entities/" + name + ".xml",
	}
	if geometryPath != "" {
		rec.Components = append(rec.Components, geometry(geometryPath))
	}
	rec.Components = append(rec.Components, components...)
	return rec
}

func geometry(path string) domain.Component {
	return domain.Component{
		Name: domain.ComponentGeometry,
		Properties: domain.FromAny(map[string]any{
			"Geometry": map[string]any{
				"Geometry": map[string]any{
					"Geometry": map[string]any{"path": path},
				},
			},
		}),
	}
}

// portContainer takes alternating port and helper names.
func portContainer(pairs ...string) domain.Component {
	items := make([]any, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		items = append(items, map[string]any{
			"Name": pairs[i],
			"AttachmentImplementation": map[string]any{
				"Helper": map[string]any{
					"Helper": map[string]any{"Name": pairs[i+1]},
				},
			},
		})
	}
	return domain.Component{
		Name:       domain.ComponentPortContainer,
		Properties: domain.FromAny(map[string]any{"Ports": items}),
	}
}

func defaultLoadout(entries ...map[string]any) domain.Component {
	return domain.Component{
		Name: domain.ComponentDefaultLoadout,
		Properties: domain.FromAny(map[string]any{
			"loadout": map[string]any{"entries": list(entries)},
		}),
	}
}

func entry(port, ref string, nested ...map[string]any) map[string]any {
	e := map[string]any{
		domain.EntryPortNameProperty:  port,
		domain.EntryReferenceProperty: ref,
	}
	if len(nested) > 0 {
		e["loadout"] = map[string]any{"entries": list(nested)}
	}
	return e
}

func named(port, className string) map[string]any {
	return map[string]any{
		domain.EntryPortNameProperty:  port,
		domain.EntryReferenceProperty: string(domain.NullIdentifier),
		domain.EntryClassNameProperty: className,
	}
}

func loadout(entries ...map[string]any) domain.Loadout {
	return domain.ParseLoadout(domain.FromAny(list(entries)).Sequence)
}

func list(entries []map[string]any) []any {
	out := make([]any, len(entries))
	for i, e := range entries {
		out[i] = e
	}
	return out
}

func outcomes(r resolver.Report) []domain.Outcome {
	out := make([]domain.Outcome, len(r.Results))
	for i, res := range r.Results {
		out[i] = res.Outcome
	}
	return out
}

func child(t *testing.T, n ports.Node) *scene.Node {
	t.Helper()
	children := n.Children()
	if len(children) != 1 {
		t.Fatalf("%s: want exactly one child, got %d", n.Name(), len(children))
	}
	return children[0].(*scene.Node)
}

func find(t *testing.T, root ports.Node, name string) ports.Node {
	t.Helper()
	for _, n := range resolver.Descendants(root) {
		if n.Name() == name {
			return n
		}
	}
	t.Fatalf("%s not found under %s", name, root.Name())
	return nil
}

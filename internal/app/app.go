// Package app implements the application layer for loadout.
package app

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/muesli/termenv"
	"github.com/scorg-tools/Blender-Tools-sub000/internal/adapters/detector"
	"github.com/scorg-tools/Blender-Tools-sub000/internal/adapters/progress"
	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/domain"
	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/ports"
	"github.com/scorg-tools/Blender-Tools-sub000/internal/engine/resolver"
	"github.com/scorg-tools/Blender-Tools-sub000/internal/ui/output"
	"github.com/scorg-tools/Blender-Tools-sub000/internal/ui/style"
	"go.trai.ch/zerr"
)

// SceneFileSuffix is appended to the entity name when no output path is given.
const SceneFileSuffix = ".scene.yaml"

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	catalogs     ports.RecordCatalogOpener
	scenes       ports.SceneStore
	assets       ports.AssetSource
	progress     ports.ProgressSink
	tracer       ports.Tracer
	logger       ports.Logger
	out          io.Writer
	cwd          string
	detect       func() detector.OutputMode
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	catalogs ports.RecordCatalogOpener,
	scenes ports.SceneStore,
	assets ports.AssetSource,
	progress ports.ProgressSink,
	tracer ports.Tracer,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		catalogs:     catalogs,
		scenes:       scenes,
		assets:       assets,
		progress:     progress,
		tracer:       tracer,
		logger:       log,
		out:          os.Stdout,
		cwd:          ".",
		detect:       detector.DetectEnvironment,
	}
}

// WithOutput redirects the import summary and record listings.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// WithWorkingDir sets the directory configuration discovery starts from.
func (a *App) WithWorkingDir(dir string) *App {
	a.cwd = dir
	return a
}

// WithEnvironmentDetector replaces the terminal and CI detection used when
// the output mode is auto.
func (a *App) WithEnvironmentDetector(detect func() detector.OutputMode) *App {
	a.detect = detect
	return a
}

// ImportOptions configuration for the Import method.
type ImportOptions struct {
	// Include overrides the configured top-level port filter when non-empty.
	Include []string
	// ScenePath is an existing scene manifest to populate instead of a new scene.
	ScenePath string
	// OutPath is where the scene manifest is written. It defaults to
	// ScenePath, then to the entity's short name in the working directory.
	OutPath string
	// Quiet suppresses the per-entry summary.
	Quiet bool
	// OutputMode is one of "auto", "linear" or "ci".
	OutputMode string
}

type intervalSetter interface {
	SetInterval(d time.Duration)
}

// Import resolves the entity ref (an identifier or a record name) into a
// scene and writes the scene manifest.
func (a *App) Import(ctx context.Context, ref string, opts ImportOptions) (resolver.Report, error) {
	// 1. Load settings
	settings, err := a.configLoader.Load(a.cwd)
	if err != nil {
		return resolver.Report{}, zerr.Wrap(err, "failed to load configuration")
	}
	if len(opts.Include) > 0 {
		settings.Include = opts.Include
	}
	// 2. Set up progress
	sink, closeSink, err := a.progressFor(ref, opts.OutputMode, settings)
	if err != nil {
		return resolver.Report{}, err
	}
	defer closeSink()

	// 3. Open the record store
	catalog, err := a.catalogs.Open(ctx, settings.RecordsPath)
	if err != nil {
		return resolver.Report{}, err
	}
	defer func() {
		if cerr := catalog.Close(); cerr != nil {
			a.logger.Error(cerr)
		}
	}()

	// 4. Resolve the reference
	rec, err := a.lookup(ctx, catalog, ref)
	if err != nil {
		return resolver.Report{}, zerr.Wrap(err, domain.ErrImportFailed.Error())
	}

	// 5. Create or read the scene
	scene, err := a.openScene(opts.ScenePath, settings)
	if err != nil {
		return resolver.Report{}, err
	}

	// 6. Resolve the default loadout
	a.logger.Info(fmt.Sprintf("importing %s (%s)", rec.ShortName(), rec.ID))
	session := resolver.NewSession(catalog, a.assets, scene, sink, a.tracer, a.logger, settings)
	report, err := session.Populate(ctx, rec.ID)
	if err != nil {
		return report, zerr.With(zerr.Wrap(err, domain.ErrImportFailed.Error()), "entity", rec.Name)
	}

	// 7. Write the scene
	out := importTarget(opts, rec)
	if err := a.scenes.Write(scene, out); err != nil {
		return report, err
	}

	if !opts.Quiet {
		a.summarize(report)
	}
	a.logger.Info(fmt.Sprintf("attached %d of %d entries, wrote %s",
		report.Count(domain.OutcomeLoaded)+report.Count(domain.OutcomeLinked), len(report.Results), out))
	return report, nil
}

// IngestRecords loads record dumps into the configured record store.
func (a *App) IngestRecords(ctx context.Context, paths []string) (int, error) {
	if len(paths) == 0 {
		return 0, zerr.With(domain.ErrDumpReadFailed, "reason", "no dump files given")
	}

	settings, err := a.configLoader.Load(a.cwd)
	if err != nil {
		return 0, zerr.Wrap(err, "failed to load configuration")
	}

	catalog, err := a.catalogs.Open(ctx, settings.RecordsPath)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := catalog.Close(); cerr != nil {
			a.logger.Error(cerr)
		}
	}()

	n, err := catalog.Ingest(ctx, paths)
	if err != nil {
		return n, err
	}
	a.logger.Info(fmt.Sprintf("ingested %d record(s) into %s", n, settings.RecordsPath))
	return n, nil
}

// ShowRecord prints a record with its geometry, port aliases and default loadout.
func (a *App) ShowRecord(ctx context.Context, ref string) error {
	settings, err := a.configLoader.Load(a.cwd)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	catalog, err := a.catalogs.Open(ctx, settings.RecordsPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := catalog.Close(); cerr != nil {
			a.logger.Error(cerr)
		}
	}()

	rec, err := a.lookup(ctx, catalog, ref)
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", rec.Name)
	fmt.Fprintf(&b, "  id:       %s\n", rec.ID)
	if rec.Type != "" {
		fmt.Fprintf(&b, "  type:     %s\n", rec.Type)
	}
	if rec.Filename != "" {
		fmt.Fprintf(&b, "  file:     %s\n", rec.Filename)
	}

	geometry := resolver.NewGeometryResolver(catalog, a.assets, settings.ExtractionRoot, settings.MeshExtension)
	geom, err := geometry.ResolveRecord(rec)
	switch {
	case geom.Missing != "":
		fmt.Fprintf(&b, "  geometry: %s (missing)\n", geom.Missing)
	case err != nil:
		b.WriteString("  geometry: none\n")
	default:
		for _, f := range geom.Files {
			if f.BindTarget != "" {
				fmt.Fprintf(&b, "  geometry: %s -> %s\n", f.Path, f.BindTarget)
				continue
			}
			fmt.Fprintf(&b, "  geometry: %s\n", f.Path)
		}
	}

	aliases := resolver.NewHardpointResolver(catalog, a.logger).AliasesFor(rec)
	for _, helper := range slices.Sorted(maps.Keys(aliases)) {
		fmt.Fprintf(&b, "  helper:   %s <- %s\n", helper, strings.Join(aliases[helper], ", "))
	}

	if loadout, ok := rec.DefaultLoadout(); ok {
		fmt.Fprintf(&b, "  loadout:  %d entries\n", len(loadout))
		writeLoadout(&b, loadout, 2)
	}

	_, err = io.WriteString(a.out, b.String())
	return err
}

// progressFor returns the sink for one import run. Non-interactive output
// keeps only milestones. A configured tape journals every update as well.
func (a *App) progressFor(ref, outputMode string, settings domain.Settings) (ports.ProgressSink, func(), error) {
	if p, ok := a.progress.(intervalSetter); ok {
		p.SetInterval(settings.ProgressInterval)
	}

	sink := a.progress
	mode := detector.ResolveMode(a.detect(), outputMode)
	a.logger.Debug(fmt.Sprintf("progress output mode: %s", mode))
	if mode == detector.ModeCI {
		sink = progress.Milestones{Sink: a.progress}
	}

	if settings.ProgressTape == "" {
		return sink, func() {}, nil
	}
	tape, err := progress.OpenTape(settings.ProgressTape, "import "+ref)
	if err != nil {
		return nil, nil, err
	}
	closeTape := func() {
		if err := tape.Close(); err != nil {
			a.logger.Error(err)
		}
	}
	return progress.Multi{sink, tape}, closeTape, nil
}

func (a *App) lookup(ctx context.Context, catalog ports.RecordStore, ref string) (*domain.Record, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, zerr.With(domain.ErrNameNotResolved, "name", ref)
	}
	if !domain.IsValidReference(ref) {
		return resolver.LookupName(ctx, catalog, ref)
	}

	id, err := domain.ParseIdentifier(ref)
	if err != nil {
		return nil, err
	}
	rec, err := catalog.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, zerr.With(domain.ErrRecordNotFound, "identifier", id.String())
	}
	return rec, nil
}

func (a *App) openScene(path string, settings domain.Settings) (ports.Scene, error) {
	if path == "" {
		return a.scenes.New(a.assets, settings.ExtractionRoot), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		a.logger.Debug(fmt.Sprintf("%s does not exist, starting a new scene", path))
		return a.scenes.New(a.assets, settings.ExtractionRoot), nil
	}
	return a.scenes.Read(path, a.assets, settings.ExtractionRoot)
}

func (a *App) summarize(report resolver.Report) {
	out := output.New(a.out)
	for _, res := range report.Results {
		icon, color := style.Outcome(res.Outcome)
		line := fmt.Sprintf("%s%s %s", strings.Repeat("  ", res.Depth), out.String(icon).Foreground(termenv.RGBColor(string(color))), res.Port)
		if res.Slot != "" && res.Slot != res.Port {
			line += " -> " + res.Slot
		}
		line += " (" + string(res.Outcome) + ")"
		if res.Reason != "" && !res.Outcome.Attached() {
			line += ": " + res.Reason
		}
		_, _ = fmt.Fprintln(a.out, line)
	}
}

func importTarget(opts ImportOptions, rec *domain.Record) string {
	switch {
	case opts.OutPath != "":
		return opts.OutPath
	case opts.ScenePath != "":
		return opts.ScenePath
	default:
		return rec.ShortName() + SceneFileSuffix
	}
}

func writeLoadout(b *strings.Builder, loadout domain.Loadout, indent int) {
	for _, e := range loadout {
		target := e.Reference
		if e.ClassName != "" {
			target = e.ClassName
		}
		fmt.Fprintf(b, "%s- %s: %s\n", strings.Repeat("  ", indent), e.PortName, target)
		writeLoadout(b, e.Nested, indent+1)
	}
}

package resolver

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/domain"
	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/ports"
	"go.trai.ch/zerr"
)

// Report summarises a run.
type Report struct {
	// Results holds one result per processed entry, parents before their nested entries.
	Results []domain.EntryResult
	// Missing lists each asset file that could not be found, once, in discovery order.
	Missing []string
}

// Count returns how many entries ended with outcome o.
func (r Report) Count(o domain.Outcome) int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome == o {
			n++
		}
	}
	return n
}

// Session is one top-level resolution run. It owns the import cache, the
// missing-file list and the inclusion filter, so concurrent imports each
// need their own Session. A Session is not safe for concurrent use.
type Session struct {
	records  ports.RecordStore
	assets   ports.AssetSource
	scene    ports.Scene
	progress ports.ProgressSink
	tracer   ports.Tracer
	logger   ports.Logger

	geometry   *GeometryResolver
	hardpoints *HardpointResolver
	cache      *ImportCache

	root     string
	include  map[string]struct{}
	maxDepth int

	missing     []string
	missingSeen map[string]struct{}
	results     []domain.EntryResult
	path        []domain.Identifier
	depth       int
}

// NewSession creates a Session that populates scene.
func NewSession(
	records ports.RecordStore,
	assets ports.AssetSource,
	scene ports.Scene,
	progress ports.ProgressSink,
	tracer ports.Tracer,
	logger ports.Logger,
	settings domain.Settings,
) *Session {
	maxDepth := settings.MaxDepth
	if maxDepth <= 0 {
		maxDepth = domain.DefaultMaxDepth
	}

	var include map[string]struct{}
	if len(settings.Include) > 0 {
		include = make(map[string]struct{}, len(settings.Include))
		for _, p := range settings.Include {
			include[p] = struct{}{}
		}
	}

	return &Session{
		records:     records,
		assets:      assets,
		scene:       scene,
		progress:    progress,
		tracer:      tracer,
		logger:      logger,
		geometry:    NewGeometryResolver(records, assets, settings.ExtractionRoot, settings.MeshExtension),
		hardpoints:  NewHardpointResolver(records, logger),
		cache:       NewImportCache(),
		root:        settings.ExtractionRoot,
		include:     include,
		maxDepth:    maxDepth,
		missingSeen: make(map[string]struct{}),
	}
}

// Cache returns the session's import cache.
func (s *Session) Cache() *ImportCache {
	return s.cache
}

// Run resolves a top-level loadout against slots. The import cache and the
// missing-file list start empty. Only cancellation stops the run early; the
// missing files found so far are still reported.
func (s *Session) Run(ctx context.Context, loadout domain.Loadout, slots []ports.Node) (Report, error) {
	s.reset()
	return s.run(ctx, loadout, slots, domain.NullIdentifier)
}

// Populate imports the entity id into the scene: it creates the base
// container holding the entity's own geometry unless the scene already has
// one for id, collects the free slots and resolves the entity's default
// loadout into them.
func (s *Session) Populate(ctx context.Context, id domain.Identifier) (Report, error) {
	rec, err := s.records.FindByID(ctx, id)
	if err != nil {
		return Report{}, err
	}
	if rec == nil {
		return Report{}, zerr.With(domain.ErrRecordNotFound, "identifier", id.String())
	}
	loadout, ok := rec.DefaultLoadout()
	if !ok {
		return Report{}, zerr.With(domain.ErrNoLoadout, "entity", rec.Name)
	}

	s.reset()

	base, found := FindBase(s.scene)
	if found {
		if existing, _ := base.Attr(domain.AttrSourceID); existing != id.String() {
			return Report{}, zerr.With(zerr.With(domain.ErrImportFailed, "scene_entity", existing), "entity", id.String())
		}
		s.logger.Debug(fmt.Sprintf("re-importing into existing %s", base.Name()))
	} else {
		base = s.scene.NewEmpty(rec.ShortName(), nil)
		base.SetAttr(domain.AttrBaseContainer, "true")
		base.SetAttr(domain.AttrSourceID, id.String())
		if err := s.populateBase(ctx, rec, base); err != nil {
			return Report{}, err
		}
	}

	slots, err := CollectSlots(s.scene)
	if err != nil {
		return Report{}, err
	}
	return s.run(ctx, loadout, slots, id)
}

func (s *Session) populateBase(ctx context.Context, rec *domain.Record, base ports.Node) error {
	geom, err := s.geometry.ResolveRecord(rec)
	if geom.Missing != "" {
		s.addMissing(geom.Missing)
		return nil
	}
	if err != nil {
		s.logger.Debug(fmt.Sprintf("%s: %v", rec.Name, err))
		return nil
	}

	primary := geom.Primary()
	located, ok := s.assets.Locate(s.root, primary.Path)
	if !ok {
		s.addMissing(primary.Path)
		return nil
	}
	root, err := s.attach(ctx, located, geom, base, rec.ID, attachMode{convertRigs: true})
	if err != nil {
		return err
	}
	s.tagPlaceholders(rec, root)
	return nil
}

func (s *Session) run(ctx context.Context, loadout domain.Loadout, slots []ports.Node, parent domain.Identifier) (Report, error) {
	planned := make([]string, 0, len(loadout))
	for _, e := range loadout {
		if e.PortName != "" && s.included(e.PortName) {
			planned = append(planned, e.PortName)
		}
	}
	s.tracer.EmitPlan(ctx, planned)

	ctx, span := s.tracer.Start(ctx, "resolve loadout",
		ports.WithAttribute("entries", len(loadout)),
		ports.WithAttribute("slots", len(slots)),
	)
	defer span.End()

	err := s.Resolve(ctx, loadout, slots, true, parent)
	s.reportMissing()
	if err != nil {
		span.RecordError(err)
	}
	return s.Report(), err
}

// Report returns the results collected so far.
func (s *Session) Report() Report {
	return Report{
		Results: slices.Clone(s.results),
		Missing: slices.Clone(s.missing),
	}
}

// Resolve attaches every entry of loadout to the matching slot in slots and
// recurses into nested loadouts. parent is the identifier whose subtree the
// slots belong to; the null identifier means no alias map applies. Failures
// are recorded per entry. The only error returned is the context's.
func (s *Session) Resolve(
	ctx context.Context,
	loadout domain.Loadout,
	slots []ports.Node,
	topLevel bool,
	parent domain.Identifier,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	total := len(loadout)
	if topLevel {
		s.progress.Update("Resolving loadout", 0, total, true)
		defer s.progress.Clear()
	}

	aliases, err := s.hardpoints.Aliases(ctx, parent)
	if err != nil {
		s.logger.Debug(fmt.Sprintf("aliases for %s: %v", parent, err))
		aliases = domain.AliasMap{}
	}

	for i, entry := range loadout {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.resolveEntry(ctx, entry, slots, topLevel, parent, aliases); err != nil {
			return err
		}
		if topLevel {
			s.progress.Update(fmt.Sprintf("Resolved %s", entry.PortName), i+1, total, false)
		}
	}
	return nil
}

func (s *Session) resolveEntry(
	ctx context.Context,
	entry domain.Entry,
	slots []ports.Node,
	topLevel bool,
	parent domain.Identifier,
	aliases domain.AliasMap,
) (err error) {
	idx := len(s.results)
	res := domain.EntryResult{Depth: s.depth, Port: entry.PortName}
	s.results = append(s.results, res)

	defer func() {
		if r := recover(); r != nil {
			res.Outcome = domain.OutcomeFailed
			res.Reason = fmt.Sprint(r)
			s.logger.Debug(fmt.Sprintf("%s: %v", entry.PortName, r))
			err = nil
		}
		s.results[idx] = res
	}()

	return s.attachEntry(ctx, entry, slots, topLevel, parent, aliases, &res)
}

func (s *Session) attachEntry(
	ctx context.Context,
	e domain.Entry,
	slots []ports.Node,
	topLevel bool,
	parent domain.Identifier,
	aliases domain.AliasMap,
	res *domain.EntryResult,
) error {
	if e.Skippable() {
		res.Outcome, res.Reason = domain.OutcomeSkipped, "incomplete entry"
		return nil
	}
	if topLevel && !s.included(e.PortName) {
		res.Outcome = domain.OutcomeFiltered
		return nil
	}

	mapped := e.PortName
	if helper, ok := aliases.HelperFor(e.PortName); ok {
		mapped = helper
	}
	slot, err := findSlot(slots, mapped)
	if err != nil {
		return s.skip(res, err)
	}
	res.Slot = slot.Name()

	id, err := s.identify(ctx, e)
	if err != nil {
		if !e.HasNested {
			return s.skip(res, err)
		}
		res.Outcome = domain.OutcomeGrouped
		return s.descend(ctx, res, e.Nested, slots, parent, domain.NullIdentifier)
	}
	res.Identifier = id

	if slices.Contains(s.path, id) {
		return s.skip(res, zerr.With(domain.ErrCycleDetected, "identifier", id.String()))
	}

	if root, ok := s.cache.Get(id); ok {
		dup, err := s.scene.LinkedDuplicate(root)
		if err != nil {
			return s.fail(res, err)
		}
		if err := s.scene.Reparent(dup, slot, true); err != nil {
			return s.fail(res, err)
		}
		res.Outcome = domain.OutcomeLinked
		return nil
	}

	return s.load(ctx, e, id, slot, res)
}

func (s *Session) load(ctx context.Context, e domain.Entry, id domain.Identifier, slot ports.Node, res *domain.EntryResult) error {
	ctx, span := s.tracer.Start(ctx, "load "+e.PortName,
		ports.WithAttribute("port", e.PortName),
		ports.WithAttribute("identifier", id.String()),
	)
	defer span.End()

	rec, err := s.records.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		return s.fail(res, err)
	}
	if rec == nil {
		return s.skip(res, zerr.With(domain.ErrRecordNotFound, "identifier", id.String()))
	}
	if !rec.IsEntity() {
		return s.skip(res, zerr.With(domain.ErrNoGeometry, "type", rec.Type))
	}

	geom, err := s.geometry.ResolveRecord(rec)
	if geom.Missing != "" {
		s.addMissing(geom.Missing)
		res.Outcome, res.Reason = domain.OutcomeMissing, geom.Missing
		return nil
	}
	if err != nil {
		return s.skip(res, err)
	}

	primary := geom.Primary()
	span.SetAttribute("path", primary.Path)
	located, ok := s.assets.Locate(s.root, primary.Path)
	if !ok {
		s.addMissing(primary.Path)
		res.Outcome, res.Reason = domain.OutcomeMissing, primary.Path
		return nil
	}

	mode := attachMode{}
	if geom.IsMultiFile() {
		mode = attachMode{stripMeshes: true, convertRigs: true}
	}
	root, err := s.attach(ctx, located, geom, slot, id, mode)
	if err != nil {
		span.RecordError(err)
		return s.fail(res, err)
	}
	s.cache.Put(id, root)
	res.Outcome = domain.OutcomeLoaded

	nested := e.Nested
	if !e.HasNested {
		nested, _ = rec.DefaultLoadout()
	}
	placeholders := s.tagPlaceholders(rec, root)
	if len(nested) == 0 {
		return nil
	}
	return s.descend(ctx, res, nested, placeholders, id, id)
}

// descend resolves a nested loadout one level deeper. visiting is pushed on
// the resolution path for the duration of the call unless it is null.
func (s *Session) descend(
	ctx context.Context,
	res *domain.EntryResult,
	loadout domain.Loadout,
	slots []ports.Node,
	parent, visiting domain.Identifier,
) error {
	if s.depth+1 > s.maxDepth {
		err := zerr.With(domain.ErrDepthExceeded, "max_depth", s.maxDepth)
		res.Reason = err.Error()
		s.logger.Debug(fmt.Sprintf("%s: %v", res.Port, err))
		return nil
	}

	if !visiting.IsNull() {
		s.path = append(s.path, visiting)
		defer func() { s.path = s.path[:len(s.path)-1] }()
	}
	s.depth++
	defer func() { s.depth-- }()

	return s.Resolve(ctx, loadout, slots, false, parent)
}

// identify resolves an entry to an identifier: a valid reference wins,
// otherwise the class name is looked up.
func (s *Session) identify(ctx context.Context, e domain.Entry) (domain.Identifier, error) {
	if domain.IsValidReference(e.Reference) {
		return domain.ParseIdentifier(e.Reference)
	}
	if e.ClassName == "" {
		return "", zerr.With(domain.ErrNameNotResolved, "reference", e.Reference)
	}
	rec, err := LookupName(ctx, s.records, e.ClassName)
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

// LookupName finds the record for an entity class name, first by record
// name and then by a filename glob. Only the first filename match is used.
func LookupName(ctx context.Context, records ports.RecordStore, name string) (*domain.Record, error) {
	rec, err := records.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		matches, err := records.FindByNamePattern(ctx, "*/"+strings.ToLower(name)+".*")
		if err != nil {
			return nil, err
		}
		if len(matches) == 0 {
			return nil, zerr.With(domain.ErrNameNotResolved, "name", name)
		}
		rec = &matches[0]
	}
	if rec.ID.IsNull() {
		return nil, zerr.With(domain.ErrNameNotResolved, "name", name)
	}
	return rec, nil
}

func (s *Session) included(port string) bool {
	if s.include == nil {
		return true
	}
	_, ok := s.include[port]
	return ok
}

func (s *Session) skip(res *domain.EntryResult, err error) error {
	res.Outcome, res.Reason = domain.OutcomeSkipped, err.Error()
	s.logger.Debug(fmt.Sprintf("skipping %s: %v", res.Port, err))
	return nil
}

func (s *Session) fail(res *domain.EntryResult, err error) error {
	res.Outcome, res.Reason = domain.OutcomeFailed, err.Error()
	s.logger.Debug(fmt.Sprintf("failed %s: %v", res.Port, err))
	return nil
}

func (s *Session) addMissing(path string) {
	if _, seen := s.missingSeen[path]; seen {
		return
	}
	s.missingSeen[path] = struct{}{}
	s.missing = append(s.missing, path)
}

func (s *Session) reportMissing() {
	for _, p := range s.missing {
		s.progress.ReportMissing(p)
	}
	if n := len(s.missing); n > 0 {
		s.logger.Warn(fmt.Sprintf("%d asset file(s) missing from %s", n, s.root))
	}
}

func (s *Session) reset() {
	s.cache.Reset()
	s.missing = nil
	s.missingSeen = make(map[string]struct{})
	s.results = nil
	s.path = nil
	s.depth = 0
}

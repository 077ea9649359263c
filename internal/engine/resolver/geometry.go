package resolver

import (
	"context"
	"path"
	"slices"
	"strings"

	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/domain"
	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/ports"
	"go.trai.ch/zerr"
)

// GeometryResolver turns an identifier into the asset files to load for it.
type GeometryResolver struct {
	records ports.RecordStore
	assets  ports.AssetSource
	root    string
	meshExt string
}

// NewGeometryResolver creates a GeometryResolver reading descriptors from
// root. Source mesh extensions are rewritten to meshExt.
func NewGeometryResolver(records ports.RecordStore, assets ports.AssetSource, root, meshExt string) *GeometryResolver {
	if meshExt == "" {
		meshExt = domain.DefaultMeshExtension
	}
	if !strings.HasPrefix(meshExt, ".") {
		meshExt = "." + meshExt
	}
	return &GeometryResolver{
		records: records,
		assets:  assets,
		root:    root,
		meshExt: meshExt,
	}
}

// Resolve returns the asset files for id.
//
// A record without a geometry component yields an empty Geometry and
// domain.ErrNoGeometry. A declared descriptor that is not in the extraction
// root yields domain.ErrDescriptorMissing and reports its path in
// Geometry.Missing. Existence of the mesh files themselves is not checked.
func (g *GeometryResolver) Resolve(ctx context.Context, id domain.Identifier) (domain.Geometry, error) {
	rec, err := g.records.FindByID(ctx, id)
	if err != nil {
		return domain.Geometry{}, err
	}
	if rec == nil {
		return domain.Geometry{}, zerr.With(domain.ErrRecordNotFound, "identifier", id.String())
	}
	return g.ResolveRecord(rec)
}

// ResolveRecord is Resolve for a record that has already been fetched.
func (g *GeometryResolver) ResolveRecord(rec *domain.Record) (domain.Geometry, error) {
	declared, err := rec.GeometryPath()
	if err != nil {
		return domain.Geometry{}, err
	}
	declared = CleanAssetPath(declared)

	if !strings.EqualFold(path.Ext(declared), domain.DescriptorExtension) {
		return domain.Geometry{Files: []domain.AssetRef{{Path: g.meshPath(declared)}}}, nil
	}

	located, ok := g.assets.Locate(g.root, declared)
	if !ok {
		return domain.Geometry{Missing: declared}, zerr.With(domain.ErrDescriptorMissing, "path", declared)
	}
	data, err := g.assets.ReadFile(g.root, located)
	if err != nil {
		return domain.Geometry{}, zerr.With(zerr.Wrap(err, domain.ErrDescriptorParseFailed.Error()), "path", declared)
	}
	refs, err := ParseDescriptor(data)
	if err != nil {
		return domain.Geometry{}, zerr.With(err, "path", declared)
	}

	files := make([]domain.AssetRef, 0, len(refs))
	for _, ref := range refs {
		files = append(files, domain.AssetRef{
			Path:       g.meshPath(CleanAssetPath(ref.Path)),
			BindTarget: ref.BindTarget,
		})
	}
	return domain.Geometry{Files: files}, nil
}

func (g *GeometryResolver) meshPath(p string) string {
	ext := path.Ext(p)
	if slices.Contains(domain.SourceMeshExtensions, strings.ToLower(ext)) {
		return strings.TrimSuffix(p, ext) + g.meshExt
	}
	return p
}

// CleanAssetPath converts a declared asset path into a forward-slash path
// relative to the extraction root.
func CleanAssetPath(p string) string {
	p = strings.TrimSpace(strings.ReplaceAll(p, `\`, "/"))
	p = strings.TrimLeft(p, "/")
	if p == "" {
		return ""
	}
	return path.Clean(p)
}

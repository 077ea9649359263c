package resolver

import (
	"context"
	"fmt"

	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/domain"
	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/ports"
	"go.trai.ch/zerr"
)

type attachMode struct {
	// stripMeshes replaces every mesh node of the primary file with a placeholder.
	stripMeshes bool
	// convertRigs replaces rigs of the primary file with joint placeholders.
	convertRigs bool
}

// attach loads the primary file at located under parent, applies mode and
// loads the dependent files onto their bind targets. It returns the root of
// the attached subtree.
func (s *Session) attach(
	ctx context.Context,
	located string,
	geom domain.Geometry,
	parent ports.Node,
	id domain.Identifier,
	mode attachMode,
) (ports.Node, error) {
	primary := geom.Primary()

	root, err := s.loadRoot(ctx, located, primary.Path, parent)
	if err != nil {
		return nil, err
	}

	if mode.stripMeshes {
		if root, err = s.replaceEach(root, ports.Node.HasMesh, s.scene.StripMesh); err != nil {
			s.discard(root)
			return nil, err
		}
	}
	if mode.convertRigs {
		if root, err = s.replaceEach(root, ports.Node.IsRig, s.scene.ConvertRigToPlaceholders); err != nil {
			s.discard(root)
			return nil, err
		}
	}
	root.SetAttr(domain.AttrSourceID, id.String())
	root.SetAttr(domain.AttrSourcePath, primary.Path)

	for _, dep := range geom.Dependents() {
		loc, ok := s.assets.Locate(s.root, dep.Path)
		if !ok {
			s.addMissing(dep.Path)
			continue
		}
		target := s.bindTarget(root, dep.BindTarget)
		if _, err := s.loadRoot(ctx, loc, dep.Path, target); err != nil {
			s.logger.Debug(fmt.Sprintf("attachment %s: %v", dep.Path, err))
		}
	}
	return root, nil
}

// loadRoot loads one asset file, attaches its first root under parent and
// parks any further roots beneath the first.
func (s *Session) loadRoot(ctx context.Context, located, declared string, parent ports.Node) (ports.Node, error) {
	nodes, err := s.scene.LoadAssetFile(ctx, located)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrAssetLoadFailed.Error()), "path", declared)
	}
	roots := topNodes(nodes)
	if len(roots) == 0 {
		return nil, zerr.With(domain.ErrAssetEmpty, "path", declared)
	}

	root := roots[0]
	if err := s.scene.Reparent(root, parent, true); err != nil {
		return nil, err
	}
	for _, extra := range roots[1:] {
		if err := s.scene.Reparent(extra, root, false); err != nil {
			return nil, err
		}
	}
	root.SetAttr(domain.AttrSourcePath, declared)
	return root, nil
}

// replaceEach applies replace to every node of the subtree matching want and
// returns the, possibly replaced, subtree root. On error the root is the one
// current at the time of the failure.
func (s *Session) replaceEach(root ports.Node, want func(ports.Node) bool, replace func(ports.Node) (ports.Node, error)) (ports.Node, error) {
	for _, n := range append([]ports.Node{root}, Descendants(root)...) {
		if !want(n) {
			continue
		}
		replaced, err := replace(n)
		if err != nil {
			return root, err
		}
		if n == root {
			root = replaced
		}
	}
	return root, nil
}

// discard removes a half-converted subtree so the slot it was attached to
// stays free.
func (s *Session) discard(root ports.Node) {
	if err := s.scene.Remove(root); err != nil {
		s.logger.Debug(fmt.Sprintf("discard %s: %v", root.Name(), err))
	}
}

// bindTarget returns the placeholder in root's subtree named like joint,
// falling back to root itself.
func (s *Session) bindTarget(root ports.Node, joint string) ports.Node {
	if joint == "" {
		return root
	}
	want := domain.NormalizeSlotName(joint)
	for _, n := range Descendants(root) {
		if IsPlaceholder(n) && domain.NormalizeSlotName(n.Name()) == want {
			return n
		}
	}
	s.logger.Debug(fmt.Sprintf("bind target %q not found under %s", joint, root.Name()))
	return root
}

// tagPlaceholders records on every placeholder below root the name loadout
// entries address it by, and returns those placeholders in depth-first order.
func (s *Session) tagPlaceholders(rec *domain.Record, root ports.Node) []ports.Node {
	aliases := s.hardpoints.AliasesFor(rec)

	var placeholders []ports.Node
	for _, n := range Descendants(root) {
		if !IsPlaceholder(n) {
			continue
		}
		if helper, ok := aliases.HelperMatching(n.Name()); ok {
			n.SetAttr(domain.AttrOrigName, helper)
		} else {
			n.SetAttr(domain.AttrOrigName, domain.NormalizeSlotName(n.Name()))
		}
		placeholders = append(placeholders, n)
	}
	return placeholders
}

// topNodes returns the nodes whose parent is not among nodes, in order.
func topNodes(nodes []ports.Node) []ports.Node {
	set := make(map[ports.Node]struct{}, len(nodes))
	for _, n := range nodes {
		set[n] = struct{}{}
	}
	var roots []ports.Node
	for _, n := range nodes {
		p := n.Parent()
		if p == nil {
			roots = append(roots, n)
			continue
		}
		if _, ok := set[p]; !ok {
			roots = append(roots, n)
		}
	}
	return roots
}

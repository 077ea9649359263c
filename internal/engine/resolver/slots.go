package resolver

import (
	"strings"

	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/domain"
	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/ports"
	"go.trai.ch/zerr"
)

// CollectSlots returns the placeholders under the base container that are
// still free to receive content, in depth-first order.
//
// A placeholder is free when it has no children and no subtree already
// holding mesh content goes by its name or its original name. This keeps re-imports from
// attaching a second copy into a slot filled by an earlier run.
func CollectSlots(scene ports.Scene) ([]ports.Node, error) {
	base, ok := FindBase(scene)
	if !ok {
		return nil, domain.ErrNoBaseContainer
	}

	filled := make(map[string]struct{})
	for _, n := range Descendants(base) {
		if !hasMeshDescendant(n) {
			continue
		}
		filled[domain.NormalizeSlotName(n.Name())] = struct{}{}
		if orig, ok := n.Attr(domain.AttrOrigName); ok {
			filled[domain.NormalizeSlotName(orig)] = struct{}{}
		}
	}

	var slots []ports.Node
	for _, n := range append([]ports.Node{base}, Descendants(base)...) {
		if !IsPlaceholder(n) || len(n.Children()) > 0 {
			continue
		}
		if isFilled(filled, n) {
			continue
		}
		slots = append(slots, n)
	}
	return slots, nil
}

// isFilled reports whether n's own name or its original name belongs to a
// filled family.
func isFilled(filled map[string]struct{}, n ports.Node) bool {
	if _, ok := filled[domain.NormalizeSlotName(n.Name())]; ok {
		return true
	}
	orig, ok := n.Attr(domain.AttrOrigName)
	if !ok || orig == "" {
		return false
	}
	_, ok = filled[domain.NormalizeSlotName(orig)]
	return ok
}

// FindBase returns the node tagged as the base container.
func FindBase(scene ports.Scene) (ports.Node, bool) {
	for _, root := range scene.Roots() {
		for _, n := range append([]ports.Node{root}, Descendants(root)...) {
			if _, ok := n.Attr(domain.AttrBaseContainer); ok {
				return n, true
			}
		}
	}
	return nil, false
}

// IsPlaceholder reports whether n is an empty node.
func IsPlaceholder(n ports.Node) bool {
	return !n.HasMesh() && !n.IsRig()
}

// SlotName returns the name a slot is matched by: its orig_name attribute,
// or the node name when none was recorded.
func SlotName(n ports.Node) string {
	if orig, ok := n.Attr(domain.AttrOrigName); ok && orig != "" {
		return orig
	}
	return n.Name()
}

// Descendants returns every node below n in depth-first pre-order.
func Descendants(n ports.Node) []ports.Node {
	var out []ports.Node
	var walk func(ports.Node)
	walk = func(cur ports.Node) {
		for _, c := range cur.Children() {
			out = append(out, c)
			walk(c)
		}
	}
	walk(n)
	return out
}

func hasMeshDescendant(n ports.Node) bool {
	for _, d := range Descendants(n) {
		if d.HasMesh() {
			return true
		}
	}
	return false
}

// findSlot returns the first slot addressed by name.
func findSlot(slots []ports.Node, name string) (ports.Node, error) {
	lower := strings.ToLower(name)
	for _, s := range slots {
		sn := SlotName(s)
		if domain.MatchesSlotName(sn, name) || domain.MatchesSlotName(sn, lower) {
			return s, nil
		}
	}
	return nil, zerr.With(domain.ErrSlotUnmatched, "port", name)
}

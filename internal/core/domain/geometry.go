package domain

import "strings"

// AssetRef is one mesh-asset file relative to the extraction root.
// BindTarget names the rig joint a dependent file attaches to; it is empty
// for the primary file.
type AssetRef struct {
	Path       string
	BindTarget string
}

// Geometry is the outcome of resolving an identifier to asset files.
// Files is empty when nothing could be resolved, holds one entry for a plain
// mesh, and holds the rig file followed by its dependents otherwise.
type Geometry struct {
	Files []AssetRef
	// Missing is the descriptor path that was declared but not found.
	Missing string
}

// IsEmpty reports whether no asset was resolved.
func (g Geometry) IsEmpty() bool {
	return len(g.Files) == 0
}

// IsMultiFile reports whether the geometry is a rig plus attachments.
func (g Geometry) IsMultiFile() bool {
	return len(g.Files) > 1
}

// Primary returns the rig or plain mesh file.
func (g Geometry) Primary() AssetRef {
	if g.IsEmpty() {
		return AssetRef{}
	}
	return g.Files[0]
}

// Dependents returns the attachment files bound to the primary rig.
func (g Geometry) Dependents() []AssetRef {
	if len(g.Files) < 2 {
		return nil
	}
	return g.Files[1:]
}

// AliasMap maps an asset's internal attachment-helper name to the external
// port names it may be addressed by, in declaration order.
type AliasMap map[string][]string

// Add associates port with helper, ignoring duplicates.
func (m AliasMap) Add(helper, port string) {
	for _, p := range m[helper] {
		if p == port {
			return
		}
	}
	m[helper] = append(m[helper], port)
}

// HelperFor returns the helper whose port list contains port.
// Ports are compared case-insensitively; ties resolve to the lexically first helper.
func (m AliasMap) HelperFor(port string) (string, bool) {
	found := ""
	for helper, ports := range m {
		for _, p := range ports {
			if strings.EqualFold(p, port) && (found == "" || helper < found) {
				found = helper
			}
		}
	}
	return found, found != ""
}

// HelperMatching returns the helper key that raw node name refers to.
func (m AliasMap) HelperMatching(raw string) (string, bool) {
	found := ""
	for helper := range m {
		if MatchesSlotName(raw, helper) || NormalizeSlotName(raw) == NormalizeSlotName(helper) {
			if found == "" || helper < found {
				found = helper
			}
		}
	}
	return found, found != ""
}

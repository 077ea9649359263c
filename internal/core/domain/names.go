package domain

import (
	"regexp"
	"strings"
)

var (
	// Imported node names sometimes carry the first six hex digits of the source identifier.
	identifierFragmentPrefix = regexp.MustCompile(`^([0-9a-fA-F]{6}_)+`)

	// Appended by the scene when a node name is already taken, e.g. "hardpoint_01.001".
	disambiguationSuffix = regexp.MustCompile(`(\.\d+)+$`)

	wholeSuffix = regexp.MustCompile(`^(\.\d+)+$`)
)

// NormalizeSlotName strips the identifier-fragment prefix and the disambiguation
// suffix from a node name and lower-cases it. Two names normalize equal iff they
// denote the same logical hardpoint.
func NormalizeSlotName(name string) string {
	name = identifierFragmentPrefix.ReplaceAllString(name, "")
	name = disambiguationSuffix.ReplaceAllString(name, "")
	return strings.ToLower(name)
}

// MatchesSlotName reports whether raw equals target exactly, or equals target
// followed by a disambiguation suffix. Case and prefixes are significant.
func MatchesSlotName(raw, target string) bool {
	if raw == target {
		return true
	}
	rest, ok := strings.CutPrefix(raw, target)
	if !ok {
		return false
	}
	return wholeSuffix.MatchString(rest)
}

// StripDisambiguation removes a trailing ".NNN" suffix, keeping case and prefixes.
func StripDisambiguation(name string) string {
	return disambiguationSuffix.ReplaceAllString(name, "")
}

package domain

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
	"go.trai.ch/zerr"
)

// Identifier is the canonical, lower-case 8-4-4-4-12 form of a record reference.
type Identifier string

// NullIdentifier is the all-zero "no reference" marker.
const NullIdentifier Identifier = "00000000-0000-0000-0000-000000000000"

// uuid.Parse also accepts urn and braced forms; loadout data only ever carries the bare form.
var referencePattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// IsValidReference reports whether s is a canonical identifier that is not the null sentinel.
func IsValidReference(s string) bool {
	if !referencePattern.MatchString(s) {
		return false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return false
	}
	return id != uuid.Nil
}

// ParseIdentifier validates s and returns its canonical form.
// The null identifier parses successfully; callers decide whether it is acceptable.
func ParseIdentifier(s string) (Identifier, error) {
	s = strings.TrimSpace(s)
	if !referencePattern.MatchString(s) {
		return "", zerr.With(ErrInvalidIdentifier, "value", s)
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, ErrInvalidIdentifier.Error()), "value", s)
	}
	return Identifier(id.String()), nil
}

// IsNull reports whether the identifier is empty or the all-zero sentinel.
func (id Identifier) IsNull() bool {
	return id == "" || id == NullIdentifier
}

// String returns the identifier text.
func (id Identifier) String() string {
	return string(id)
}

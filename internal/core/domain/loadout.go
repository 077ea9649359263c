package domain

import "strings"

// Property names of a loadout entry.
const (
	EntryPortNameProperty  = "itemPortName"
	EntryReferenceProperty = "entityClassReference"
	EntryClassNameProperty = "entityClassName"
	EntryNestedProperty    = "loadout.entries"
)

// Loadout is an ordered list of entries describing what is attached to which port.
type Loadout []Entry

// Entry is one loadout line.
type Entry struct {
	PortName  string
	Reference string
	ClassName string
	Nested    Loadout
	HasNested bool
}

// Skippable reports whether the entry lacks the fields needed to process it.
func (e Entry) Skippable() bool {
	return e.PortName == "" || (e.Reference == "" && e.ClassName == "")
}

// ParseLoadout converts raw entry values into a Loadout. Fields that are
// absent or of the wrong kind are left empty so that the resolver can skip
// the entry instead of failing the whole list.
func ParseLoadout(items []PropertyValue) Loadout {
	out := make(Loadout, 0, len(items))
	for _, item := range items {
		out = append(out, ParseEntry(item))
	}
	return out
}

// ParseEntry converts one raw entry value.
func ParseEntry(v PropertyValue) Entry {
	var e Entry
	e.PortName, _ = v.StringAt(EntryPortNameProperty)
	e.Reference, _ = v.StringAt(EntryReferenceProperty)
	e.ClassName, _ = v.StringAt(EntryClassNameProperty)
	e.PortName = strings.TrimSpace(e.PortName)
	e.Reference = strings.TrimSpace(e.Reference)
	e.ClassName = strings.TrimSpace(e.ClassName)

	if nested, err := v.ItemsAt(EntryNestedProperty); err == nil && len(nested) > 0 {
		e.Nested = ParseLoadout(nested)
		e.HasNested = true
	}
	return e
}

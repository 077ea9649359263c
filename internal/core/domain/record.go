package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Record types with special meaning. Everything else is a general entity.
const (
	RecordTypeEntity      = "EntityClassDefinition"
	RecordTypeTintPalette = "TintPaletteTree"
)

// Component names and property paths read by the resolver.
const (
	ComponentGeometry       = "SGeometryResourceParams"
	ComponentPortContainer  = "SItemPortContainerComponentParams"
	ComponentDefaultLoadout = "SEntityComponentDefaultLoadoutParams"

	GeometryPathProperty = "Geometry.Geometry.Geometry.path"
	PortsProperty        = "Ports"
	PortNameProperty     = "Name"
	PortHelperProperty   = "AttachmentImplementation.Helper.Helper.Name"
	DefaultLoadoutPath   = "loadout.entries"
)

// Component is one named, typed slice of a record.
type Component struct {
	Name       string        `json:"name"`
	Properties PropertyValue `json:"properties"`
}

// Record is an entity description from the content record store.
type Record struct {
	ID         Identifier  `json:"id"`
	Name       string      `json:"name"`
	Type       string      `json:"type"`
	Filename   string      `json:"filename"`
	Components []Component `json:"components"`
}

// IsEntity reports whether the record describes something that can be attached to a scene.
func (r *Record) IsEntity() bool {
	return r.Type != RecordTypeTintPalette
}

// Component returns the first component with the given name.
func (r *Record) Component(name string) (*Component, bool) {
	for i := range r.Components {
		if r.Components[i].Name == name {
			return &r.Components[i], true
		}
	}
	return nil, false
}

// ShortName returns the record name without its "Type." qualifier.
func (r *Record) ShortName() string {
	if _, after, ok := strings.Cut(r.Name, "."); ok {
		return after
	}
	return r.Name
}

// GeometryPath returns the source path declared by the geometry resource component.
func (r *Record) GeometryPath() (string, error) {
	c, ok := r.Component(ComponentGeometry)
	if !ok {
		return "", zerr.With(ErrNoGeometry, "record", r.ID.String())
	}
	path, err := c.Properties.StringAt(GeometryPathProperty)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, ErrMalformedComponent.Error()), "component", c.Name)
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return "", zerr.With(ErrNoGeometry, "record", r.ID.String())
	}
	return path, nil
}

// DefaultLoadout returns the default loadout declared by the record, if any.
func (r *Record) DefaultLoadout() (Loadout, bool) {
	c, ok := r.Component(ComponentDefaultLoadout)
	if !ok {
		return nil, false
	}
	items, err := c.Properties.ItemsAt(DefaultLoadoutPath)
	if err != nil {
		return nil, false
	}
	return ParseLoadout(items), true
}

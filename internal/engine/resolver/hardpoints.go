package resolver

import (
	"context"
	"fmt"
	"strings"

	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/domain"
	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/ports"
	"go.trai.ch/zerr"
)

// HardpointResolver builds the attachment-helper alias map of an entity from
// its port container component.
type HardpointResolver struct {
	records ports.RecordStore
	logger  ports.Logger
}

// NewHardpointResolver creates a HardpointResolver.
func NewHardpointResolver(records ports.RecordStore, logger ports.Logger) *HardpointResolver {
	return &HardpointResolver{records: records, logger: logger}
}

// Aliases returns helper name -> port names for id. The null identifier and
// records without a port container yield an empty map. Ports missing a name
// or helper are skipped.
func (h *HardpointResolver) Aliases(ctx context.Context, id domain.Identifier) (domain.AliasMap, error) {
	aliases := domain.AliasMap{}
	if id.IsNull() {
		return aliases, nil
	}

	rec, err := h.records.FindByID(ctx, id)
	if err != nil {
		return aliases, err
	}
	if rec == nil {
		return aliases, zerr.With(domain.ErrRecordNotFound, "identifier", id.String())
	}
	return h.AliasesFor(rec), nil
}

// AliasesFor is Aliases for a record that has already been fetched.
func (h *HardpointResolver) AliasesFor(rec *domain.Record) domain.AliasMap {
	aliases := domain.AliasMap{}

	c, ok := rec.Component(domain.ComponentPortContainer)
	if !ok {
		return aliases
	}
	items, err := c.Properties.ItemsAt(domain.PortsProperty)
	if err != nil {
		h.logger.Debug(fmt.Sprintf("%s: no ports: %v", rec.Name, err))
		return aliases
	}

	for i, port := range items {
		name, err := port.StringAt(domain.PortNameProperty)
		if err != nil {
			h.logger.Debug(fmt.Sprintf("%s: port %d has no name", rec.Name, i))
			continue
		}
		if !port.Has(domain.PortHelperProperty) {
			h.logger.Debug(fmt.Sprintf("%s: port %s has no helper", rec.Name, name))
			continue
		}
		helper, err := port.StringAt(domain.PortHelperProperty)
		if err != nil {
			h.logger.Debug(fmt.Sprintf("%s: port %s helper: %v", rec.Name, name, err))
			continue
		}
		name, helper = strings.TrimSpace(name), strings.TrimSpace(helper)
		if name == "" || helper == "" {
			continue
		}
		aliases.Add(helper, name)
	}
	return aliases
}

package resolver

import (
	"bytes"
	"encoding/xml"
	"strings"

	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/domain"
	"go.trai.ch/zerr"
)

// characterDefinition is the subset of a rig descriptor the resolver reads.
type characterDefinition struct {
	XMLName xml.Name `xml:"CharacterDefinition"`
	Model   struct {
		File string `xml:"File,attr"`
	} `xml:"Model"`
	Attachments []struct {
		Name     string `xml:"AName,attr"`
		Type     string `xml:"Type,attr"`
		BoneName string `xml:"BoneName,attr"`
		Binding  string `xml:"Binding,attr"`
	} `xml:"AttachmentList>Attachment"`
}

// ParseDescriptor decodes a rig descriptor into the rig file followed by its
// attachment files. Attachments without a binding are ignored. Paths are
// returned as declared; extension rewriting is left to the caller.
func ParseDescriptor(data []byte) ([]domain.AssetRef, error) {
	var def characterDefinition
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = false
	if err := dec.Decode(&def); err != nil {
		return nil, zerr.Wrap(err, domain.ErrDescriptorParseFailed.Error())
	}

	model := strings.TrimSpace(def.Model.File)
	if model == "" {
		return nil, zerr.With(domain.ErrDescriptorParseFailed, "reason", "no model file")
	}

	refs := []domain.AssetRef{{Path: model}}
	for _, a := range def.Attachments {
		binding := strings.TrimSpace(a.Binding)
		if binding == "" {
			continue
		}
		target := strings.TrimSpace(a.BoneName)
		if target == "" {
			target = strings.TrimSpace(a.Name)
		}
		refs = append(refs, domain.AssetRef{Path: binding, BindTarget: target})
	}
	return refs, nil
}

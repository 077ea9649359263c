package domain

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// PropertyKind discriminates the variants of a PropertyValue.
type PropertyKind uint8

const (
	// KindNull is an absent or explicit null value.
	KindNull PropertyKind = iota
	// KindScalar is a string, number or boolean leaf.
	KindScalar
	// KindSequence is an ordered list of values.
	KindSequence
	// KindMapping is a string-keyed map of values.
	KindMapping
)

// String returns the kind name.
func (k PropertyKind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "null"
	}
}

// PropertyValue is one node of a component property tree.
// Exactly one of the payload fields is meaningful, selected by Kind.
type PropertyValue struct {
	Kind     PropertyKind
	Scalar   any
	Sequence []PropertyValue
	Mapping  map[string]PropertyValue
}

// Scalar wraps a leaf value.
func Scalar(v any) PropertyValue {
	if v == nil {
		return PropertyValue{}
	}
	return PropertyValue{Kind: KindScalar, Scalar: v}
}

// Sequence wraps an ordered list of values.
func Sequence(items ...PropertyValue) PropertyValue {
	return PropertyValue{Kind: KindSequence, Sequence: items}
}

// Mapping wraps a keyed set of values.
func Mapping(m map[string]PropertyValue) PropertyValue {
	if m == nil {
		m = map[string]PropertyValue{}
	}
	return PropertyValue{Kind: KindMapping, Mapping: m}
}

// FromAny converts a decoded JSON or YAML tree into a PropertyValue.
func FromAny(v any) PropertyValue {
	switch t := v.(type) {
	case nil:
		return PropertyValue{}
	case PropertyValue:
		return t
	case map[string]any:
		m := make(map[string]PropertyValue, len(t))
		for k, child := range t {
			m[k] = FromAny(child)
		}
		return Mapping(m)
	case []any:
		items := make([]PropertyValue, len(t))
		for i, child := range t {
			items[i] = FromAny(child)
		}
		return Sequence(items...)
	default:
		return Scalar(t)
	}
}

// ToAny converts the value back into plain maps, slices and scalars.
func (p PropertyValue) ToAny() any {
	switch p.Kind {
	case KindScalar:
		return p.Scalar
	case KindSequence:
		out := make([]any, len(p.Sequence))
		for i, item := range p.Sequence {
			out[i] = item.ToAny()
		}
		return out
	case KindMapping:
		out := make(map[string]any, len(p.Mapping))
		for k, v := range p.Mapping {
			out[k] = v.ToAny()
		}
		return out
	default:
		return nil
	}
}

// MarshalJSON implements json.Marshaler.
func (p PropertyValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ToAny())
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *PropertyValue) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = FromAny(raw)
	return nil
}

// IsNull reports whether the value is absent.
func (p PropertyValue) IsNull() bool {
	return p.Kind == KindNull
}

// Field returns the child stored under key of a mapping.
func (p PropertyValue) Field(key string) (PropertyValue, error) {
	if p.Kind != KindMapping {
		return PropertyValue{}, mismatch(key, KindMapping, p.Kind)
	}
	v, ok := p.Mapping[key]
	if !ok || v.IsNull() {
		return PropertyValue{}, zerr.With(ErrPropertyNotFound, "key", key)
	}
	return v, nil
}

// Lookup walks a dotted path ("Geometry.Geometry.path") through nested mappings.
// Numeric segments index into sequences.
func (p PropertyValue) Lookup(path string) (PropertyValue, error) {
	cur := p
	for _, seg := range strings.Split(path, ".") {
		if cur.Kind == KindSequence {
			idx, err := strconv.Atoi(seg)
			if err != nil {
				return PropertyValue{}, zerr.With(mismatch(seg, KindMapping, KindSequence), "path", path)
			}
			if idx < 0 || idx >= len(cur.Sequence) {
				return PropertyValue{}, zerr.With(zerr.With(ErrPropertyNotFound, "key", seg), "path", path)
			}
			cur = cur.Sequence[idx]
			continue
		}
		next, err := cur.Field(seg)
		if err != nil {
			return PropertyValue{}, zerr.With(err, "path", path)
		}
		cur = next
	}
	return cur, nil
}

// Has reports whether path resolves to a non-null value.
func (p PropertyValue) Has(path string) bool {
	_, err := p.Lookup(path)
	return err == nil
}

// Text returns a scalar rendered as text.
func (p PropertyValue) Text() (string, error) {
	if p.Kind != KindScalar {
		return "", mismatch("", KindScalar, p.Kind)
	}
	switch v := p.Scalar.(type) {
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return fmt.Sprint(v), nil
	}
}

// StringAt looks up path and renders it as text.
func (p PropertyValue) StringAt(path string) (string, error) {
	v, err := p.Lookup(path)
	if err != nil {
		return "", err
	}
	s, err := v.Text()
	if err != nil {
		return "", zerr.With(err, "path", path)
	}
	return s, nil
}

// Items returns the elements of a sequence. A mapping is treated as the
// sequence of its values in key order, matching how single-element lists are
// sometimes flattened by record exporters.
func (p PropertyValue) Items() ([]PropertyValue, error) {
	switch p.Kind {
	case KindSequence:
		return p.Sequence, nil
	case KindMapping:
		keys := p.Keys()
		items := make([]PropertyValue, 0, len(keys))
		for _, k := range keys {
			items = append(items, p.Mapping[k])
		}
		return items, nil
	default:
		return nil, mismatch("", KindSequence, p.Kind)
	}
}

// ItemsAt looks up path and returns its elements.
func (p PropertyValue) ItemsAt(path string) ([]PropertyValue, error) {
	v, err := p.Lookup(path)
	if err != nil {
		return nil, err
	}
	items, err := v.Items()
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return items, nil
}

// Keys returns the mapping keys in sorted order.
func (p PropertyValue) Keys() []string {
	if p.Kind != KindMapping {
		return nil
	}
	keys := make([]string, 0, len(p.Mapping))
	for k := range p.Mapping {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func mismatch(key string, want, got PropertyKind) error {
	err := zerr.With(ErrPropertyTypeMismatch, "want", want.String())
	err = zerr.With(err, "got", got.String())
	if key != "" {
		err = zerr.With(err, "key", key)
	}
	return err
}

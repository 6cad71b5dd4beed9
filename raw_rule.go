package jcr

import (
	"encoding/json"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// Num represents JSON number.
type Num jx.Num

// MarshalJSON implements json.Marshaler.
func (n Num) MarshalJSON() ([]byte, error) {
	return json.Marshal(json.RawMessage(n))
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Num) UnmarshalJSON(data []byte) error {
	j, err := jx.DecodeBytes(data).Num()
	if err != nil {
		return errors.Wrapf(err, "invalid number %s", data)
	}
	if j.Str() {
		return errors.Errorf("invalid number %s", data)
	}

	*n = Num(j)
	return nil
}

// RuleType is a variant name of RawRule.
type RuleType string

// Rule types.
const (
	TypeAnyObject     RuleType = "any-object"
	TypeAnyString     RuleType = "any-string"
	TypeAnyInteger    RuleType = "any-integer"
	TypeNull          RuleType = "null"
	TypeBoolean       RuleType = "boolean"
	TypeString        RuleType = "string"
	TypeInteger       RuleType = "integer"
	TypeUnsigned      RuleType = "unsigned"
	TypeDouble        RuleType = "double"
	TypeIntegerRange  RuleType = "integer-range"
	TypeUnsignedRange RuleType = "unsigned-range"
	TypeArray         RuleType = "array"
	TypeObject        RuleType = "object"
)

// UnmarshalJSON implements json.Unmarshaler.
func (r *RuleType) UnmarshalJSON(data []byte) error {
	val, err := jx.DecodeBytes(data).Str()
	if err != nil {
		return err
	}
	switch t := RuleType(val); t {
	case TypeAnyObject,
		TypeAnyString,
		TypeAnyInteger,
		TypeNull,
		TypeBoolean,
		TypeString,
		TypeInteger,
		TypeUnsigned,
		TypeDouble,
		TypeIntegerRange,
		TypeUnsignedRange,
		TypeArray,
		TypeObject:
		*r = t
		return nil
	default:
		return errors.Errorf("unexpected type %q", val)
	}
}

// RawRule is uncompiled rule description.
type RawRule struct {
	Ref  string   `json:"$ref,omitempty"`
	Type RuleType `json:"type,omitempty"`

	// Scalar rules.
	Value     json.RawMessage `json:"value,omitempty"`
	Precision uint8           `json:"precision,omitempty"`

	// Range rules.
	Min Num `json:"min,omitempty"`
	Max Num `json:"max,omitempty"`

	// Composite rules.
	Items    []RawRule  `json:"items,omitempty"`
	Members  RawMembers `json:"members,omitempty"`
	Optional []string   `json:"optional,omitempty"`
	Include  []string   `json:"include,omitempty"`
}

// RawMember is item of RawMembers.
type RawMember struct {
	Name string
	Rule RawRule
}

// RawMembers is unparsed object rule members description.
//
// Unlike map, RawMembers keeps source order.
type RawMembers []RawMember

// MarshalJSON implements json.Marshaler.
func (p RawMembers) MarshalJSON() ([]byte, error) {
	var e jx.Encoder
	e.ObjStart()
	for _, m := range p {
		e.FieldStart(m.Name)
		b, err := json.Marshal(m.Rule)
		if err != nil {
			return nil, errors.Wrap(err, "marshal")
		}
		e.Raw(b)
	}
	e.ObjEnd()
	return e.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *RawMembers) UnmarshalJSON(data []byte) error {
	d := jx.DecodeBytes(data)
	return d.Obj(func(d *jx.Decoder, key string) error {
		var r RawRule
		b, err := d.Raw()
		if err != nil {
			return err
		}

		if err := json.Unmarshal(b, &r); err != nil {
			return errors.Wrapf(err, "member %q", key)
		}

		*p = append(*p, RawMember{
			Name: key,
			Rule: r,
		})
		return nil
	})
}

// Package yamlvalue provides an implementation of Value interface using github.com/go-faster/yaml package.
package yamlvalue

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/go-faster/yaml"

	"github.com/tdakkota/jcr/valueiter"
)

var _ valueiter.Value = Value{}

// Value is valueiter.Value implementation for yaml.
type Value struct {
	Node *yaml.Node
}

// Parse parses given YAML document and returns it as Value.
func Parse(data []byte) (Value, error) {
	var n yaml.Node
	if err := yaml.Unmarshal(data, &n); err != nil {
		return Value{}, errors.Wrap(err, "invalid yaml")
	}
	if _, reason := resolveNode(&n); reason != "" {
		return Value{}, errors.Errorf("invalid yaml: %s", reason)
	}
	return Value{Node: &n}, nil
}

func resolveNode(n *yaml.Node) (_ *yaml.Node, reason string) {
	if n == nil {
		return nil, "node is nil"
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, "document node content is empty"
		}
		return resolveNode(n.Content[0])
	case yaml.AliasNode:
		return resolveNode(n.Alias)
	case yaml.MappingNode:
		if len(n.Content)%2 != 0 {
			return nil, "mapping node content length is not even"
		}
		return n, ""
	case 0:
		return nil, "node is empty"
	default:
		return n, ""
	}
}

func resolveNodeOr(n, fallback *yaml.Node) *yaml.Node {
	n, _ = resolveNode(n)
	if n == nil {
		return fallback
	}
	return n
}

func decode[T any](v Value) (val T) {
	n := resolveNodeOr(v.Node, v.Node)
	if err := n.Decode(&val); err != nil {
		panic(err)
	}
	return val
}

func intKind(n *yaml.Node) valueiter.Kind {
	var i int64
	if err := n.Decode(&i); err == nil {
		return valueiter.Integer
	}
	var u uint64
	if err := n.Decode(&u); err == nil {
		return valueiter.Unsigned
	}
	return valueiter.Double
}

// Kind implements valueiter.Value.
func (v Value) Kind() valueiter.Kind {
	n, _ := resolveNode(v.Node)
	if n == nil {
		return valueiter.Invalid
	}
	switch n.Kind {
	case yaml.MappingNode:
		return valueiter.Object
	case yaml.SequenceNode:
		return valueiter.Array
	case yaml.ScalarNode:
		switch n.Tag {
		case "!!null":
			return valueiter.Null
		case "!!bool":
			return valueiter.Bool
		case "!!int":
			return intKind(n)
		case "!!float":
			return valueiter.Double
		default:
			// Timestamps and binaries are compared as their text.
			return valueiter.String
		}
	default:
		panic(fmt.Sprintf("unexpected node kind: %v", n.Kind))
	}
}

// Bool implements valueiter.Value.
func (v Value) Bool() bool {
	return decode[bool](v)
}

// Int implements valueiter.Value.
func (v Value) Int() int64 {
	return decode[int64](v)
}

// Uint implements valueiter.Value.
func (v Value) Uint() uint64 {
	return decode[uint64](v)
}

// Float implements valueiter.Value.
func (v Value) Float() float64 {
	return decode[float64](v)
}

// Str implements valueiter.Value.
func (v Value) Str() string {
	n := resolveNodeOr(v.Node, v.Node)
	return n.Value
}

// Array implements valueiter.Value.
func (v Value) Array(cb func(valueiter.Value) error) error {
	n, reason := resolveNode(v.Node)
	if n == nil {
		return errors.Errorf("node is invalid: %s", reason)
	}
	for _, n := range n.Content {
		if err := cb(Value{Node: n}); err != nil {
			return err
		}
	}
	return nil
}

// Object implements valueiter.Value.
func (v Value) Object(cb func(name string, value valueiter.Value) error) error {
	n, reason := resolveNode(v.Node)
	if n == nil {
		return errors.Errorf("node is invalid: %s", reason)
	}

	content := n.Content
	for i := 0; i < len(content); i += 2 {
		key := content[i]
		value := content[i+1]
		if key.Kind != yaml.ScalarNode {
			return errors.Errorf("key at line %d is not scalar", key.Line)
		}
		if err := cb(key.Value, Value{Node: value}); err != nil {
			return err
		}
	}
	return nil
}

// EncodeJSON writes value to e as JSON.
func (v Value) EncodeJSON(e *jx.Encoder) error {
	switch kind := v.Kind(); kind {
	case valueiter.Null:
		e.Null()
	case valueiter.Bool:
		e.Bool(v.Bool())
	case valueiter.Integer:
		e.Int64(v.Int())
	case valueiter.Unsigned:
		e.UInt64(v.Uint())
	case valueiter.Double:
		f := v.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return errors.Errorf("%v is not representable in JSON", f)
		}
		// Keep the fraction, so the number is still a double when decoded back.
		b := strconv.AppendFloat(nil, f, 'g', -1, 64)
		if !bytes.ContainsAny(b, ".eE") {
			b = append(b, ".0"...)
		}
		e.Raw(b)
	case valueiter.String:
		e.Str(v.Str())
	case valueiter.Array:
		e.ArrStart()
		i := 0
		if err := v.Array(func(elem valueiter.Value) error {
			if err := elem.(Value).EncodeJSON(e); err != nil {
				return errors.Wrapf(err, "[%d]", i)
			}
			i++
			return nil
		}); err != nil {
			return err
		}
		e.ArrEnd()
	case valueiter.Object:
		e.ObjStart()
		if err := v.Object(func(name string, value valueiter.Value) error {
			e.FieldStart(name)
			if err := value.(Value).EncodeJSON(e); err != nil {
				return errors.Wrapf(err, "%q", name)
			}
			return nil
		}); err != nil {
			return err
		}
		e.ObjEnd()
	default:
		return errors.Errorf("unexpected kind %s", kind)
	}
	return nil
}

// Package govalue provides an implementation of Value interface over in-memory Go values.
//
// Supported dynamic types are nil, bool, signed and unsigned integers of any
// width, float32, float64, string, []any, Object and map[string]any.
// Signed integer types report valueiter.Integer, unsigned integer types report
// valueiter.Unsigned regardless of the stored value.
package govalue

import (
	"fmt"

	"github.com/go-faster/errors"
	"golang.org/x/exp/slices"

	"github.com/tdakkota/jcr/valueiter"
)

var _ valueiter.Value = Value{}

// Member is a name-value pair of Object.
type Member struct {
	Name  string
	Value any
}

// Object is a JSON object which keeps member order.
type Object []Member

// Value is valueiter.Value implementation for Go values.
type Value struct {
	V any
}

// Of wraps given Go value.
func Of(v any) Value {
	return Value{V: v}
}

// Kind implements valueiter.Value.
func (v Value) Kind() valueiter.Kind {
	switch v.V.(type) {
	case nil:
		return valueiter.Null
	case bool:
		return valueiter.Bool
	case int, int8, int16, int32, int64:
		return valueiter.Integer
	case uint, uint8, uint16, uint32, uint64, uintptr:
		return valueiter.Unsigned
	case float32, float64:
		return valueiter.Double
	case string:
		return valueiter.String
	case []any:
		return valueiter.Array
	case Object, map[string]any:
		return valueiter.Object
	default:
		return valueiter.Invalid
	}
}

func (v Value) mismatch(want string) string {
	return fmt.Sprintf("govalue: %T is not %s", v.V, want)
}

// Bool implements valueiter.Value.
func (v Value) Bool() bool {
	b, ok := v.V.(bool)
	if !ok {
		panic(v.mismatch("bool"))
	}
	return b
}

// Int implements valueiter.Value.
func (v Value) Int() int64 {
	switch i := v.V.(type) {
	case int:
		return int64(i)
	case int8:
		return int64(i)
	case int16:
		return int64(i)
	case int32:
		return int64(i)
	case int64:
		return i
	default:
		panic(v.mismatch("signed integer"))
	}
}

// Uint implements valueiter.Value.
func (v Value) Uint() uint64 {
	switch u := v.V.(type) {
	case uint:
		return uint64(u)
	case uint8:
		return uint64(u)
	case uint16:
		return uint64(u)
	case uint32:
		return uint64(u)
	case uint64:
		return u
	case uintptr:
		return uint64(u)
	default:
		panic(v.mismatch("unsigned integer"))
	}
}

// Float implements valueiter.Value.
func (v Value) Float() float64 {
	switch f := v.V.(type) {
	case float32:
		return float64(f)
	case float64:
		return f
	default:
		panic(v.mismatch("double"))
	}
}

// Str implements valueiter.Value.
func (v Value) Str() string {
	s, ok := v.V.(string)
	if !ok {
		panic(v.mismatch("string"))
	}
	return s
}

// Array implements valueiter.Value.
func (v Value) Array(cb func(valueiter.Value) error) error {
	arr, ok := v.V.([]any)
	if !ok {
		return errors.New(v.mismatch("array"))
	}
	for _, elem := range arr {
		if err := cb(Value{V: elem}); err != nil {
			return err
		}
	}
	return nil
}

// Object implements valueiter.Value.
//
// Members of map[string]any are visited in name order.
func (v Value) Object(cb func(name string, value valueiter.Value) error) error {
	switch obj := v.V.(type) {
	case Object:
		for _, m := range obj {
			if err := cb(m.Name, Value{V: m.Value}); err != nil {
				return err
			}
		}
		return nil
	case map[string]any:
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			if err := cb(k, Value{V: obj[k]}); err != nil {
				return err
			}
		}
		return nil
	default:
		return errors.New(v.mismatch("object"))
	}
}

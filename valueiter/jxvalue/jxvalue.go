// Package jxvalue provides an implementation of Value interface using github.com/go-faster/jx package.
package jxvalue

import (
	"bytes"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"github.com/tdakkota/jcr/valueiter"
)

var _ valueiter.Value = Value{}

// Value is valueiter.Value implementation for jx.
type Value struct {
	Raw jx.Raw
}

// Parse validates given JSON and returns it as Value.
func Parse(data []byte) (Value, error) {
	d := jx.GetDecoder()
	defer jx.PutDecoder(d)

	d.ResetBytes(data)
	if err := d.Validate(); err != nil {
		return Value{}, errors.Wrap(err, "invalid json")
	}

	d.ResetBytes(data)
	raw, err := d.Raw()
	if err != nil {
		return Value{}, errors.Wrap(err, "invalid json")
	}
	return Value{Raw: raw}, nil
}

// NumberKind classifies JSON number literal.
//
// Literals with fraction or exponent are Double. Integer literals are Integer
// when they fit int64, Unsigned when they only fit uint64, Double otherwise.
func NumberKind(num []byte) valueiter.Kind {
	if bytes.ContainsAny(num, ".eE") {
		return valueiter.Double
	}
	s := string(num)
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return valueiter.Integer
	}
	if _, err := strconv.ParseUint(s, 10, 64); err == nil {
		return valueiter.Unsigned
	}
	return valueiter.Double
}

func (v Value) decode(f func(d *jx.Decoder)) {
	dec := jx.GetDecoder()
	dec.ResetBytes(v.Raw)
	defer jx.PutDecoder(dec)

	f(dec)
}

// Kind implements valueiter.Value.
func (v Value) Kind() valueiter.Kind {
	switch v.Raw.Type() {
	case jx.Null:
		return valueiter.Null
	case jx.Bool:
		return valueiter.Bool
	case jx.String:
		return valueiter.String
	case jx.Array:
		return valueiter.Array
	case jx.Object:
		return valueiter.Object
	case jx.Number:
		var kind valueiter.Kind
		v.decode(func(d *jx.Decoder) {
			num, err := d.Num()
			if err != nil {
				kind = valueiter.Invalid
				return
			}
			kind = NumberKind(num)
		})
		return kind
	default:
		return valueiter.Invalid
	}
}

// Bool implements valueiter.Value.
func (v Value) Bool() (r bool) {
	v.decode(func(d *jx.Decoder) {
		r = errors.Must(d.Bool())
	})
	return r
}

// Int implements valueiter.Value.
func (v Value) Int() (r int64) {
	v.decode(func(d *jx.Decoder) {
		r = errors.Must(d.Int64())
	})
	return r
}

// Uint implements valueiter.Value.
func (v Value) Uint() (r uint64) {
	v.decode(func(d *jx.Decoder) {
		r = errors.Must(d.UInt64())
	})
	return r
}

// Float implements valueiter.Value.
//
// Literals out of float64 range saturate to ±Inf.
func (v Value) Float() (r float64) {
	v.decode(func(d *jx.Decoder) {
		num := errors.Must(d.Num())
		f, err := strconv.ParseFloat(string(num), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			panic(err)
		}
		r = f
	})
	return r
}

// Str implements valueiter.Value.
func (v Value) Str() string {
	return errors.Must(jx.DecodeBytes(v.Raw).Str())
}

// Array implements valueiter.Value.
func (v Value) Array(cb func(valueiter.Value) error) error {
	dec := jx.GetDecoder()
	dec.ResetBytes(v.Raw)
	defer jx.PutDecoder(dec)

	iter, err := dec.ArrIter()
	if err != nil {
		return err
	}
	for iter.Next() {
		raw, err := dec.Raw()
		if err != nil {
			return err
		}
		if err := cb(Value{Raw: raw}); err != nil {
			return err
		}
	}
	return iter.Err()
}

// Object implements valueiter.Value.
func (v Value) Object(cb func(name string, value valueiter.Value) error) error {
	dec := jx.GetDecoder()
	dec.ResetBytes(v.Raw)
	defer jx.PutDecoder(dec)

	iter, err := dec.ObjIter()
	if err != nil {
		return err
	}
	for iter.Next() {
		key := string(iter.Key())
		raw, err := dec.Raw()
		if err != nil {
			return err
		}
		if err := cb(key, Value{Raw: raw}); err != nil {
			return err
		}
	}
	return iter.Err()
}

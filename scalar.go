package jcr

import (
	"strconv"

	"github.com/tdakkota/jcr/valueiter"
)

var (
	_ Rule = (*AnyObjectRule)(nil)
	_ Rule = (*AnyStringRule)(nil)
	_ Rule = (*AnyIntegerRule)(nil)
	_ Rule = (*NullRule)(nil)
	_ Rule = (*BoolRule)(nil)
	_ Rule = (*StringRule)(nil)
	_ Rule = (*IntegerRule)(nil)
	_ Rule = (*UnsignedRule)(nil)
	_ Rule = (*DoubleRule)(nil)
	_ Rule = (*IntegerRangeRule)(nil)
	_ Rule = (*UnsignedRangeRule)(nil)
)

// AnyObjectRule accepts any object.
type AnyObjectRule struct{ scalar }

// AnyObject creates new AnyObjectRule.
func AnyObject() *AnyObjectRule { return &AnyObjectRule{} }

// Validate implements Rule.
func (r *AnyObjectRule) Validate(v valueiter.Value) bool {
	return v.Kind() == valueiter.Object
}

// Clone implements Rule.
func (r *AnyObjectRule) Clone() Rule { return AnyObject() }

func (r *AnyObjectRule) String() string { return "{ // }" }

// AnyStringRule accepts any string.
type AnyStringRule struct{ scalar }

// AnyString creates new AnyStringRule.
func AnyString() *AnyStringRule { return &AnyStringRule{} }

// Validate implements Rule.
func (r *AnyStringRule) Validate(v valueiter.Value) bool {
	return v.Kind() == valueiter.String
}

// Clone implements Rule.
func (r *AnyStringRule) Clone() Rule { return AnyString() }

func (r *AnyStringRule) String() string { return "string" }

// AnyIntegerRule accepts any integer, signed or unsigned.
type AnyIntegerRule struct{ scalar }

// AnyInteger creates new AnyIntegerRule.
func AnyInteger() *AnyIntegerRule { return &AnyIntegerRule{} }

// Validate implements Rule.
func (r *AnyIntegerRule) Validate(v valueiter.Value) bool {
	k := v.Kind()
	return k == valueiter.Integer || k == valueiter.Unsigned
}

// Clone implements Rule.
func (r *AnyIntegerRule) Clone() Rule { return AnyInteger() }

func (r *AnyIntegerRule) String() string { return "integer" }

// NullRule accepts null.
type NullRule struct{ scalar }

// Null creates new NullRule.
func Null() *NullRule { return &NullRule{} }

// Validate implements Rule.
func (r *NullRule) Validate(v valueiter.Value) bool {
	return v.Kind() == valueiter.Null
}

// Clone implements Rule.
func (r *NullRule) Clone() Rule { return Null() }

func (r *NullRule) String() string { return "null" }

// BoolRule accepts the given boolean.
type BoolRule struct {
	scalar
	val bool
}

// Bool creates new BoolRule.
func Bool(val bool) *BoolRule { return &BoolRule{val: val} }

// Value returns expected value.
func (r *BoolRule) Value() bool { return r.val }

// Validate implements Rule.
func (r *BoolRule) Validate(v valueiter.Value) bool {
	return v.Kind() == valueiter.Bool && v.Bool() == r.val
}

// Clone implements Rule.
func (r *BoolRule) Clone() Rule { return Bool(r.val) }

func (r *BoolRule) String() string { return strconv.FormatBool(r.val) }

// StringRule accepts the given string.
type StringRule struct {
	scalar
	val string
}

// String creates new StringRule.
func String(val string) *StringRule { return &StringRule{val: val} }

// Value returns expected value.
func (r *StringRule) Value() string { return r.val }

// Validate implements Rule.
func (r *StringRule) Validate(v valueiter.Value) bool {
	return v.Kind() == valueiter.String && v.Str() == r.val
}

// Clone implements Rule.
func (r *StringRule) Clone() Rule { return String(r.val) }

func (r *StringRule) String() string { return strconv.Quote(r.val) }

// IntegerRule accepts the given signed integer.
type IntegerRule struct {
	scalar
	val int64
}

// Integer creates new IntegerRule.
func Integer(val int64) *IntegerRule { return &IntegerRule{val: val} }

// Value returns expected value.
func (r *IntegerRule) Value() int64 { return r.val }

// Validate implements Rule.
func (r *IntegerRule) Validate(v valueiter.Value) bool {
	return v.Kind() == valueiter.Integer && v.Int() == r.val
}

// Clone implements Rule.
func (r *IntegerRule) Clone() Rule { return Integer(r.val) }

func (r *IntegerRule) String() string { return strconv.FormatInt(r.val, 10) }

// UnsignedRule accepts the given unsigned integer.
type UnsignedRule struct {
	scalar
	val uint64
}

// Unsigned creates new UnsignedRule.
func Unsigned(val uint64) *UnsignedRule { return &UnsignedRule{val: val} }

// Value returns expected value.
func (r *UnsignedRule) Value() uint64 { return r.val }

// Validate implements Rule.
func (r *UnsignedRule) Validate(v valueiter.Value) bool {
	return v.Kind() == valueiter.Unsigned && v.Uint() == r.val
}

// Clone implements Rule.
func (r *UnsignedRule) Clone() Rule { return Unsigned(r.val) }

func (r *UnsignedRule) String() string { return strconv.FormatUint(r.val, 10) + "u" }

// DoubleRule accepts the given double.
//
// Precision is a printing hint, it does not affect validation.
type DoubleRule struct {
	scalar
	val       float64
	precision uint8
}

// Double creates new DoubleRule.
func Double(val float64, precision uint8) *DoubleRule {
	return &DoubleRule{val: val, precision: precision}
}

// Value returns expected value.
func (r *DoubleRule) Value() float64 { return r.val }

// Precision returns number of significant digits used for printing.
func (r *DoubleRule) Precision() uint8 { return r.precision }

// Validate implements Rule.
func (r *DoubleRule) Validate(v valueiter.Value) bool {
	return v.Kind() == valueiter.Double && v.Float() == r.val
}

// Clone implements Rule.
func (r *DoubleRule) Clone() Rule { return Double(r.val, r.precision) }

func (r *DoubleRule) String() string {
	if r.precision == 0 {
		return strconv.FormatFloat(r.val, 'g', -1, 64)
	}
	return strconv.FormatFloat(r.val, 'g', int(r.precision), 64)
}

// IntegerRangeRule accepts signed integers in inclusive range.
type IntegerRangeRule struct {
	scalar
	min, max int64
}

// IntegerRange creates new IntegerRangeRule.
//
// Range is empty if min > max.
func IntegerRange(min, max int64) *IntegerRangeRule {
	return &IntegerRangeRule{min: min, max: max}
}

// Bounds returns range bounds.
func (r *IntegerRangeRule) Bounds() (min, max int64) { return r.min, r.max }

// Validate implements Rule.
func (r *IntegerRangeRule) Validate(v valueiter.Value) bool {
	if v.Kind() != valueiter.Integer {
		return false
	}
	i := v.Int()
	return i >= r.min && i <= r.max
}

// Clone implements Rule.
func (r *IntegerRangeRule) Clone() Rule { return IntegerRange(r.min, r.max) }

func (r *IntegerRangeRule) String() string {
	return "integer(" + strconv.FormatInt(r.min, 10) + ".." + strconv.FormatInt(r.max, 10) + ")"
}

// UnsignedRangeRule accepts unsigned integers in inclusive range.
type UnsignedRangeRule struct {
	scalar
	min, max uint64
}

// UnsignedRange creates new UnsignedRangeRule.
//
// Range is empty if min > max.
func UnsignedRange(min, max uint64) *UnsignedRangeRule {
	return &UnsignedRangeRule{min: min, max: max}
}

// Bounds returns range bounds.
func (r *UnsignedRangeRule) Bounds() (min, max uint64) { return r.min, r.max }

// Validate implements Rule.
func (r *UnsignedRangeRule) Validate(v valueiter.Value) bool {
	if v.Kind() != valueiter.Unsigned {
		return false
	}
	u := v.Uint()
	return u >= r.min && u <= r.max
}

// Clone implements Rule.
func (r *UnsignedRangeRule) Clone() Rule { return UnsignedRange(r.min, r.max) }

func (r *UnsignedRangeRule) String() string {
	return "unsigned(" + strconv.FormatUint(r.min, 10) + ".." + strconv.FormatUint(r.max, 10) + ")"
}

// Package valueiter provides an interface of JSON value to validate against.
package valueiter

// Kind is JSON value kind.
//
// Integer and Unsigned are disjoint: a value reports exactly one of them,
// depending on the sign domain chosen when the value was represented.
type Kind uint8

const (
	Invalid Kind = iota
	Null
	Bool
	Integer
	Unsigned
	Double
	String
	Array
	Object
)

var kindNames = [...]string{
	Invalid:  "invalid",
	Null:     "null",
	Bool:     "bool",
	Integer:  "integer",
	Unsigned: "unsigned",
	Double:   "double",
	String:   "string",
	Array:    "array",
	Object:   "object",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsNumber whether kind is Integer, Unsigned or Double.
func (k Kind) IsNumber() bool {
	return k == Integer || k == Unsigned || k == Double
}

// Value is JSON value to validate against.
//
// Accessors are only defined for the matching Kind, calling them on other
// kinds may panic.
type Value interface {
	// Kind returns JSON value kind.
	Kind() Kind
	// Bool returns value as bool.
	Bool() bool
	// Int returns value as signed integer.
	Int() int64
	// Uint returns value as unsigned integer.
	Uint() uint64
	// Float returns value as double.
	Float() float64
	// Str returns value as string.
	Str() string
	// Array calls cb for each element in order.
	//
	// Iteration stops at the first error returned by cb.
	Array(cb func(value Value) error) error
	// Object calls cb for each member in input order.
	//
	// Iteration stops at the first error returned by cb.
	Object(cb func(name string, value Value) error) error
}

// Len counts elements of array or members of object.
func Len(v Value) (n int, _ error) {
	switch v.Kind() {
	case Array:
		err := v.Array(func(Value) error {
			n++
			return nil
		})
		return n, err
	case Object:
		err := v.Object(func(string, Value) error {
			n++
			return nil
		})
		return n, err
	default:
		return 0, nil
	}
}

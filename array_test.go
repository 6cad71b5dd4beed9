package jcr

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tdakkota/jcr/valueiter/govalue"
)

func TestArrayValidate(t *testing.T) {
	tests := []struct {
		rule     *ArrayRule
		data     string
		expected bool
	}{
		{Array(AnyString(), AnyString()), `["a", "b"]`, true},
		{Array(AnyString(), AnyString()), `["a"]`, false},
		{Array(AnyString(), AnyString()), `["a", "b", "c"]`, false},
		{Array(AnyString(), AnyInteger()), `[1, "a"]`, false},
		{Array(AnyString(), AnyInteger()), `["a", 1]`, true},
		{Array(), `[]`, true},
		{Array(), `[null]`, false},
		{Array(), `{}`, false},
		{Array(Null()), `null`, false},
		{Array(Array(Integer(1)), Array()), `[[1], []]`, true},
		{Array(Array(Integer(1)), Array()), `[[2], []]`, false},
		{Array(Object(Required("a", Bool(true)))), `[{"a": true}]`, true},
	}
	for i, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("Test%d", i+1), func(t *testing.T) {
			a := require.New(t)
			ok, err := ValidateJSON(tt.rule, []byte(tt.data))
			a.NoError(err)
			a.Equalf(tt.expected, ok, "Rule: %s,\nData: %s", tt.rule, tt.data)
		})
	}
}

func TestArrayValidateShortCircuit(t *testing.T) {
	a := require.New(t)

	var first, second int
	r := Array(
		spyRule{calls: &first, result: false},
		spyRule{calls: &second, result: true},
	)
	a.False(r.Validate(govalue.Of([]any{nil, nil})))
	a.Equal(1, first)
	a.Equal(0, second)

	// Extra element is rejected without visiting item rules again.
	first, second = 0, 0
	r = Array(spyRule{calls: &first, result: true})
	a.False(r.Validate(govalue.Of([]any{nil, nil})))
	a.Equal(1, first)
}

func TestArrayAccessors(t *testing.T) {
	a := require.New(t)

	r := Array(Integer(1))
	a.False(r.IsObject())
	a.Equal(1, r.Len())
	a.GreaterOrEqual(r.Cap(), r.Len())

	r.Append(Integer(3))
	r.Add(1, Integer(2))
	r.Add(100, Integer(4))
	r.Add(-1, Integer(5))
	a.Equal("[ 1, 2, 3, 4, 5 ]", r.String())
	a.Equal(Integer(2), r.At(1))
	a.Panics(func() { r.At(5) })

	items := r.Items()
	items[0] = Null()
	a.Equal(Integer(1), r.At(0))

	a.NoError(r.RemoveRange(1, 3))
	a.Equal("[ 1, 4, 5 ]", r.String())
	a.NoError(r.RemoveRange(1, 1))
	a.Equal(3, r.Len())
	for _, rng := range [][2]int{{-1, 0}, {2, 1}, {0, 4}} {
		a.Errorf(r.RemoveRange(rng[0], rng[1]), "%v", rng)
	}
	a.Equal(3, r.Len())

	r.Reserve(32)
	a.GreaterOrEqual(r.Cap(), 32)
	a.Equal(3, r.Len())

	r.Clear()
	a.Zero(r.Len())
	a.Equal("[  ]", r.String())
}

func TestArrayOwnsItems(t *testing.T) {
	a := require.New(t)

	items := make([]Rule, 1, 4)
	items[0] = Null()
	r1 := Array(items...)
	r2 := Array(items...)
	r1.Append(Integer(1))
	r2.Append(Integer(2))
	a.Equal("[ null, 1 ]", r1.String())
	a.Equal("[ null, 2 ]", r2.String())

	items[0] = AnyString()
	a.Equal(Null(), r1.At(0))

	r3 := Array(items...)
	r3.Insert([]Member{Required("x", Integer(3))})
	a.Equal("[ string, 3 ]", r3.String())
	a.Equal("[ null, 1 ]", r1.String())
}

func TestArrayRejectsNil(t *testing.T) {
	a := require.New(t)

	a.Panics(func() { Array(Null(), nil) })
	r := Array(Null())
	a.Panics(func() { r.Append(nil) })
	a.Panics(func() { r.Add(0, nil) })
	a.Panics(func() { r.Insert([]Member{Required("a", Null()), Required("b", nil)}) })
	// Rejected batches leave the rule intact.
	a.Equal("[ null ]", r.String())
}

func TestArrayInsert(t *testing.T) {
	a := require.New(t)

	r := Array(Null())
	r.Insert([]Member{
		Required("z", Integer(1)),
		Optional("a", Integer(2)),
		Required("z", Integer(3)),
	})
	// Names are discarded, order and duplicates kept.
	a.Equal("[ null, 1, 2, 3 ]", r.String())

	ok, err := ValidateJSON(r, []byte(`[null, 1, 2, 3]`))
	a.NoError(err)
	a.True(ok)
}

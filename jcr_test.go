package jcr

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/tdakkota/jcr/valueiter/govalue"
)

func TestParse(t *testing.T) {
	tests := []struct {
		data    string
		want    string
		wantErr bool
	}{
		// Invalid JSON handling.
		{"", "", true},
		{"{", "", true},
		{"[]", "", true},
		// Invalid structure handling.
		{`{}`, "", true},
		{`{"type":"foobar"}`, "", true},
		{`{"type":1}`, "", true},
		{`{"type":"integer"}`, "", true},
		{`{"type":"integer","value":"1"}`, "", true},
		{`{"type":"unsigned","value":-1}`, "", true},
		{`{"type":"boolean","value":null}`, "", true},
		{`{"type":"integer-range","min":"10"}`, "", true},
		{`{"type":"integer-range","min":true}`, "", true},
		{`{"type":"unsigned-range","min":-1}`, "", true},
		{`{"type":"array","items":{}}`, "", true},
		{`{"type":"array","items":[{}]}`, "", true},
		{`{"type":"object","members":["foobar"]}`, "", true},
		{`{"type":"object","members":{"a":{"type":1}}}`, "", true},
		// Invalid "optional".
		{`{"type":"object","members":{"a":{"type":"null"}},"optional":["a","a"]}`, "", true},
		{`{"type":"object","members":{"a":{"type":"null"}},"optional":["b"]}`, "", true},
		// Invalid "$ref".
		{`{"$ref":"foo"}`, "", true},
		{`{"$ref":"#foo"}`, "", true},
		{`{"$ref":"#/definitions/foo"}`, "", true},
		{`{"$ref":"#/items/x","items":[]}`, "", true},
		{`{"$ref":"#/type/0","type":"null"}`, "", true},
		// Infinite recursion.
		{`{"$ref":"#"}`, "", true},
		{`{"definitions":{"a":{"$ref":"#/definitions/b"},"b":{"$ref":"#/definitions/a"}},"$ref":"#/definitions/a"}`, "", true},
		{`{"definitions":{"a":{"type":"array","items":[{"$ref":"#/definitions/a"}]}},"$ref":"#/definitions/a"}`, "", true},
		// Invalid "include".
		{`{"definitions":{"a":{"type":"null"}},"type":"array","include":["#/definitions/a"]}`, "", true},
		{`{"definitions":{"a":{"type":"array"}},"type":"object","include":["#/definitions/a"]}`, "", true},
		{`{"definitions":{"a":{"type":"object"}},"type":"array","include":["#/definitions/a"]}`, "", true},
		{`{"type":"object","include":["#/definitions/a"]}`, "", true},

		// Scalars.
		{`{"type":"any-object"}`, "{ // }", false},
		{`{"type":"any-string"}`, "string", false},
		{`{"type":"any-integer"}`, "integer", false},
		{`{"type":"null"}`, "null", false},
		{`{"type":"boolean","value":true}`, "true", false},
		{`{"type":"string","value":"foo"}`, `"foo"`, false},
		{`{"type":"integer","value":-10}`, "-10", false},
		{`{"type":"unsigned","value":18446744073709551615}`, "18446744073709551615u", false},
		{`{"type":"double","value":3.14159,"precision":3}`, "3.14", false},
		{`{"type":"integer-range","min":0,"max":150}`, "integer(0..150)", false},
		{`{"type":"integer-range","max":0}`, "integer(-9223372036854775808..0)", false},
		{`{"type":"unsigned-range","min":10}`, "unsigned(10..18446744073709551615)", false},
		// Composites.
		{`{"type":"array"}`, "[  ]", false},
		{`{"type":"array","items":[{"type":"null"},{"type":"any-string"}]}`, "[ null, string ]", false},
		{`{"type":"object"}`, "{  }", false},
		{
			`{"type":"object","members":{"name":{"type":"any-string"},"age":{"type":"integer-range","min":0,"max":150}},"optional":["name"]}`,
			`{ "age": integer(0..150), "name"?: string }`,
			false,
		},
		// Repeated member keeps optionality, last rule wins.
		{
			`{"type":"object","members":{"a":{"type":"null"},"a":{"type":"any-string"}},"optional":["a"]}`,
			`{ "a"?: string }`,
			false,
		},
		{
			`{"type":"object","members":{"a":{"type":"null"},"a":{"type":"any-string"}}}`,
			`{ "a": string }`,
			false,
		},
		// References.
		{`{"definitions":{"a/b":{"type":"null"}},"$ref":"#/definitions/a~1b"}`, "null", false},
		{`{"definitions":{"a~b":{"type":"null"}},"$ref":"#/definitions/a~0b"}`, "null", false},
		{`{"type":"array","items":[{"type":"null"},{"$ref":"#/items/0"}]}`, "[ null, null ]", false},
		// Includes.
		{
			`{
  "definitions": {
    "base": {
      "type": "object",
      "members": {
        "id": {"type": "any-integer"},
        "name": {"type": "any-string"}
      }
    }
  },
  "type": "object",
  "include": ["#/definitions/base"],
  "members": {"name": {"type": "string", "value": "x"}},
  "optional": ["id"]
}`,
			`{ "id"?: integer, "name": "x" }`,
			false,
		},
		{
			`{
  "definitions": {
    "pair": {"type": "array", "items": [{"type": "null"}, {"type": "boolean", "value": true}]}
  },
  "type": "array",
  "items": [{"type": "any-integer"}],
  "include": ["#/definitions/pair", "#/definitions/pair"]
}`,
			"[ integer, null, true, null, true ]",
			false,
		},
	}
	for i, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("Test%d", i+1), func(t *testing.T) {
			a := require.New(t)
			got, err := Parse([]byte(tt.data))
			if tt.wantErr {
				a.Error(err)
				return
			}
			a.NoError(err)
			a.Equal(tt.want, got.String())
		})
	}
}

func TestParseSharedReference(t *testing.T) {
	a := require.New(t)

	r, err := Parse([]byte(`{
  "definitions": {"name": {"type": "any-string"}},
  "type": "object",
  "members": {
    "first": {"$ref": "#/definitions/name"},
    "last": {"$ref": "#/definitions/name"}
  }
}`))
	a.NoError(err)

	obj := r.(*ObjectRule)
	first, err := obj.At("first")
	a.NoError(err)
	last, err := obj.At("last")
	a.NoError(err)
	a.Same(first, last)
}

func TestParseIncludeDoesNotModifySource(t *testing.T) {
	a := require.New(t)

	r, err := Parse([]byte(`{
  "definitions": {
    "base": {"type": "object", "members": {"id": {"type": "any-integer"}}}
  },
  "type": "array",
  "items": [
    {"type": "object", "include": ["#/definitions/base"], "optional": ["id"]},
    {"$ref": "#/definitions/base"}
  ]
}`))
	a.NoError(err)
	a.Equal(`[ { "id"?: integer }, { "id": integer } ]`, r.String())
}

func TestParseYAML(t *testing.T) {
	tests := []struct {
		data    string
		want    string
		wantErr bool
	}{
		{"", "", true},
		{"a: [\n", "", true},
		{"type: double\nvalue: .nan\n", "", true},
		{"type: unknown\n", "", true},
		{"type: null\n", "", true},
		{"type: \"null\"\n", "null", false},
		{"type: unsigned\nvalue: 18446744073709551615\n", "18446744073709551615u", false},
		{
			`type: object
members:
  age:
    type: integer-range
    min: 0
    max: 150
  name:
    type: any-string
`,
			`{ "age": integer(0..150), "name": string }`,
			false,
		},
		{
			`definitions:
  item: &item
    type: any-string
type: array
items:
  - $ref: "#/definitions/item"
  - *item
`,
			"[ string, string ]",
			false,
		},
	}
	for i, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("Test%d", i+1), func(t *testing.T) {
			a := require.New(t)
			got, err := ParseYAML([]byte(tt.data))
			if tt.wantErr {
				a.Error(err)
				return
			}
			a.NoError(err)
			a.Equal(tt.want, got.String())
		})
	}
}

func TestValidateInput(t *testing.T) {
	r := Object(
		Required("age", IntegerRange(0, 150)),
		Required("name", AnyString()),
	)
	tests := []struct {
		data     string
		expected bool
		wantErr  bool
	}{
		{`{"age": 40, "name": "Pat"}`, true, false},
		{`{"age": -1, "name": "Pat"}`, false, false},
		{`{"age": 40}`, false, false},
		{`{"age": 40.0, "name": "Pat"}`, false, false},
		{`{"age": 40, "name": 1}`, false, false},
		{`{`, false, true},
		{``, false, true},
	}
	for i, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("Test%d", i+1), func(t *testing.T) {
			for _, f := range []struct {
				name  string
				check func(Rule, []byte) (bool, error)
			}{
				{"JSON", ValidateJSON},
				{"YAML", ValidateYAML},
			} {
				f := f
				t.Run(f.name, func(t *testing.T) {
					a := require.New(t)
					ok, err := f.check(r, []byte(tt.data))
					if tt.wantErr {
						a.Error(err)
						return
					}
					a.NoError(err)
					a.Equal(tt.expected, ok)
				})
			}
		})
	}
}

func TestValidateYAMLDocument(t *testing.T) {
	a := require.New(t)

	r, err := ParseYAML([]byte(`type: object
members:
  tags:
    type: array
    items:
      - type: any-string
      - type: any-string
  count:
    type: integer-range
    min: 0
    max: 10
optional: [count]
`))
	a.NoError(err)

	for _, tt := range []struct {
		data     string
		expected bool
	}{
		{"tags: [a, b]\ncount: 3\n", true},
		{"tags:\n  - a\n  - b\n", true},
		{"tags: [a]\n", false},
		{"tags: [a, b]\ncount: 11\n", false},
		{"tags: [a, b]\ncount: -1\n", false},
		{"tags: [a, b]\nother: 1\n", false},
	} {
		ok, err := ValidateYAML(r, []byte(tt.data))
		a.NoError(err)
		a.Equalf(tt.expected, ok, "%s", tt.data)
	}
}

func TestValidateGoValue(t *testing.T) {
	a := require.New(t)

	r := Array(Integer(1), Integer(2), Integer(3))
	a.True(Validate(r, govalue.Of([]any{1, 2, 3})))
	a.False(Validate(r, govalue.Of([]any{1, 2})))
	a.False(Validate(r, govalue.Of([]any{uint(1), 2, 3})))

	obj := Object(Required("a", Null()), Optional("b", Bool(false)))
	a.True(Validate(obj, govalue.Of(map[string]any{"a": nil})))
	a.True(Validate(obj, govalue.Of(map[string]any{"a": nil, "b": false})))
	a.False(Validate(obj, govalue.Of(map[string]any{"b": false})))
}

func TestValidateConcurrent(t *testing.T) {
	a := require.New(t)

	r, err := Parse([]byte(`{
  "definitions": {"item": {"type": "integer-range", "min": 0, "max": 9}},
  "type": "object",
  "members": {
    "items": {
      "type": "array",
      "items": [{"$ref": "#/definitions/item"}, {"$ref": "#/definitions/item"}]
    },
    "name": {"type": "any-string"}
  }
}`))
	a.NoError(err)

	var g errgroup.Group
	for i := 0; i < 64; i++ {
		i := i
		g.Go(func() error {
			data := fmt.Sprintf(`{"name": "n%d", "items": [%d, %d]}`, i, i%10, i%20)
			ok, err := ValidateJSON(r, []byte(data))
			if err != nil {
				return err
			}
			if expected := i%20 < 10; ok != expected {
				return fmt.Errorf("%s: expected %v, got %v", data, expected, ok)
			}
			return nil
		})
	}
	a.NoError(g.Wait())
}

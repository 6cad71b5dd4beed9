// Package jcr implements JSON Content Rules validator.
package jcr

import (
	"encoding/json"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"github.com/tdakkota/jcr/valueiter/yamlvalue"
)

// Parse parses given JSON rule document and compiles rule tree.
func Parse(data []byte) (Rule, error) {
	var raw RawRule
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return newCompiler(data).Compile(raw)
}

// ParseYAML parses given YAML rule document and compiles rule tree.
func ParseYAML(data []byte) (Rule, error) {
	v, err := yamlvalue.Parse(data)
	if err != nil {
		return nil, err
	}

	var e jx.Encoder
	if err := v.EncodeJSON(&e); err != nil {
		return nil, errors.Wrap(err, "convert to JSON")
	}
	return Parse(e.Bytes())
}

package jcr

import (
	"github.com/tdakkota/jcr/valueiter/jxvalue"
	"github.com/tdakkota/jcr/valueiter/yamlvalue"
)

// ValidateJSON validates given JSON against rule.
//
// Error is returned only if data is not a valid JSON value.
func ValidateJSON(r Rule, data []byte) (bool, error) {
	v, err := jxvalue.Parse(data)
	if err != nil {
		return false, err
	}
	return r.Validate(v), nil
}

// ValidateYAML validates given YAML against rule.
//
// Error is returned only if data is not a valid YAML document.
func ValidateYAML(r Rule, data []byte) (bool, error) {
	v, err := yamlvalue.Parse(data)
	if err != nil {
		return false, err
	}
	return r.Validate(v), nil
}

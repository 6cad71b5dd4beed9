package jcr

import (
	"fmt"

	"github.com/tdakkota/jcr/valueiter"
)

// Rule is a node of rule tree, a predicate over JSON values.
//
// Rules are immutable after composition: Validate may be called from multiple
// goroutines, Insert may not be called concurrently with anything else.
type Rule interface {
	fmt.Stringer

	// Validate reports whether v conforms to the rule.
	Validate(v valueiter.Value) bool
	// Clone returns deep copy of the rule.
	Clone() Rule
	// IsObject whether rule is *ObjectRule.
	IsObject() bool
	// Insert splices given members into composite rule.
	//
	// Scalar rules ignore the call.
	Insert(members []Member)
}

// Member is a named rule, an element of ObjectRule.
//
// Rule must not be nil.
type Member struct {
	Name     string
	Rule     Rule
	Optional bool
}

// Required creates required member.
func Required(name string, r Rule) Member {
	return Member{Name: name, Rule: r}
}

// Optional creates optional member.
func Optional(name string, r Rule) Member {
	return Member{Name: name, Rule: r, Optional: true}
}

func (m Member) clone() Member {
	m.Rule = m.Rule.Clone()
	return m
}

func (m Member) String() string {
	q := ""
	if m.Optional {
		q = "?"
	}
	return fmt.Sprintf("%q%s: %s", m.Name, q, m.Rule)
}

// Validate reports whether v conforms to r.
func Validate(r Rule, v valueiter.Value) bool {
	return r.Validate(v)
}

// checkRules panics if any rule is nil.
func checkRules(rules ...Rule) {
	for _, r := range rules {
		if r == nil {
			panic("jcr: nil rule")
		}
	}
}

// scalar implements no-op composition for scalar rules.
type scalar struct{}

// IsObject implements Rule.
func (scalar) IsObject() bool { return false }

// Insert implements Rule.
func (scalar) Insert([]Member) {}

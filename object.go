package jcr

import (
	"strings"

	"github.com/go-faster/errors"
	"golang.org/x/exp/slices"

	"github.com/tdakkota/jcr/valueiter"
)

var _ Rule = (*ObjectRule)(nil)

// ObjectRule is a composite rule over JSON objects.
//
// Members are kept sorted by name, names are unique. Object conforms iff
// every member of the input has a rule with the same name, every such rule
// validates member value and every required member is present.
type ObjectRule struct {
	members []Member
}

// Object creates new ObjectRule.
//
// If names repeat, the last member wins.
func Object(members ...Member) *ObjectRule {
	r := &ObjectRule{}
	r.Insert(members)
	return r
}

func compareMember(a, b Member) int {
	return strings.Compare(a.Name, b.Name)
}

func compareName(m Member, name string) int {
	return strings.Compare(m.Name, name)
}

var (
	errUnknownMember  = errors.New("unknown member")
	errMemberMismatch = errors.New("member mismatch")
)

// Validate implements Rule.
func (r *ObjectRule) Validate(v valueiter.Value) bool {
	if v.Kind() != valueiter.Object {
		return false
	}

	required := 0
	for _, m := range r.members {
		if !m.Optional {
			required++
		}
	}

	var (
		seen  []bool
		found = 0
	)
	if required > 0 {
		seen = make([]bool, len(r.members))
	}
	if err := v.Object(func(name string, value valueiter.Value) error {
		idx, ok := r.Index(name)
		if !ok {
			return errUnknownMember
		}
		m := r.members[idx]
		if !m.Rule.Validate(value) {
			return errMemberMismatch
		}
		if seen != nil && !m.Optional && !seen[idx] {
			seen[idx] = true
			found++
		}
		return nil
	}); err != nil {
		return false
	}
	return found == required
}

// Clone implements Rule.
func (r *ObjectRule) Clone() Rule {
	members := make([]Member, len(r.members))
	for i, m := range r.members {
		members[i] = m.clone()
	}
	return &ObjectRule{members: members}
}

// IsObject implements Rule.
func (r *ObjectRule) IsObject() bool { return true }

// Insert implements Rule.
//
// Members are merged by name, the last one wins.
func (r *ObjectRule) Insert(members []Member) {
	if len(members) == 0 {
		return
	}
	for _, m := range members {
		checkRules(m.Rule)
	}
	r.members = append(r.members, members...)
	// Stable sort keeps insertion order of equal names.
	slices.SortStableFunc(r.members, compareMember)

	out := r.members[:0]
	for i, m := range r.members {
		if i+1 < len(r.members) && r.members[i+1].Name == m.Name {
			continue
		}
		out = append(out, m)
	}
	for i := len(out); i < len(r.members); i++ {
		r.members[i] = Member{}
	}
	r.members = out
}

func (r *ObjectRule) String() string {
	var b strings.Builder
	b.WriteString("{ ")
	for i, m := range r.members {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(m.String())
	}
	b.WriteString(" }")
	return b.String()
}

// Len returns number of members.
func (r *ObjectRule) Len() int { return len(r.members) }

// Members returns copy of members, sorted by name.
func (r *ObjectRule) Members() []Member { return slices.Clone(r.members) }

// Index returns position of member with given name.
//
// If member is not found, Index returns position where it would be inserted.
func (r *ObjectRule) Index(name string) (int, bool) {
	return slices.BinarySearchFunc(r.members, name, compareName)
}

// Find returns rule of member with given name.
func (r *ObjectRule) Find(name string) (Rule, bool) {
	idx, ok := r.Index(name)
	if !ok {
		return nil, false
	}
	return r.members[idx].Rule, true
}

// At returns rule of member with given name.
//
// Unlike Find, At returns *MemberNotFoundError if member is absent.
func (r *ObjectRule) At(name string) (Rule, error) {
	rule, ok := r.Find(name)
	if !ok {
		return nil, &MemberNotFoundError{Name: name}
	}
	return rule, nil
}

// Set sets rule of member with given name.
//
// New members are required, existing members keep their optionality.
func (r *ObjectRule) Set(name string, rule Rule) {
	checkRules(rule)
	idx, ok := r.Index(name)
	if ok {
		r.members[idx].Rule = rule
		return
	}
	r.members = slices.Insert(r.members, idx, Member{Name: name, Rule: rule})
}

// SetOptional marks member with given name optional or required.
func (r *ObjectRule) SetOptional(name string, optional bool) error {
	idx, ok := r.Index(name)
	if !ok {
		return &MemberNotFoundError{Name: name}
	}
	r.members[idx].Optional = optional
	return nil
}

// Erase removes member with given name.
func (r *ObjectRule) Erase(name string) bool {
	idx, ok := r.Index(name)
	if !ok {
		return false
	}
	r.members = slices.Delete(r.members, idx, idx+1)
	return true
}

// Reserve ensures capacity for at least n members.
func (r *ObjectRule) Reserve(n int) {
	if n > len(r.members) {
		r.members = slices.Grow(r.members, n-len(r.members))
	}
}

// Clear removes all members.
func (r *ObjectRule) Clear() {
	for i := range r.members {
		r.members[i] = Member{}
	}
	r.members = r.members[:0]
}

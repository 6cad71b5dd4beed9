package jcr

import "strconv"

// Fragment is an ordered set of named rules waiting to be spliced into
// composite rule.
//
// Adding a name twice replaces the rule but keeps the first position.
type Fragment struct {
	members []Member
	index   map[string]int
}

// NewFragment creates new Fragment.
func NewFragment() *Fragment {
	return &Fragment{index: map[string]int{}}
}

func (f *Fragment) add(m Member) {
	checkRules(m.Rule)
	if f.index == nil {
		f.index = map[string]int{}
	}
	if idx, ok := f.index[m.Name]; ok {
		f.members[idx] = m
		return
	}
	f.index[m.Name] = len(f.members)
	f.members = append(f.members, m)
}

// Add adds required member.
func (f *Fragment) Add(name string, r Rule) {
	f.add(Required(name, r))
}

// AddOptional adds optional member.
func (f *Fragment) AddOptional(name string, r Rule) {
	f.add(Optional(name, r))
}

// Len returns number of members.
func (f *Fragment) Len() int { return len(f.members) }

// Drain moves members out of the fragment, leaving it empty.
func (f *Fragment) Drain() []Member {
	members := f.members
	f.members = nil
	f.index = map[string]int{}
	return members
}

// Splice drains f into dst.
//
// Object rule merges members by name, array rule appends member rules in
// fragment order, scalar rules ignore them.
func Splice(dst Rule, f *Fragment) {
	dst.Insert(f.Drain())
}

// Children returns members of composite rule as Fragment.
//
// Array items are named by their index. Scalar rules have no children.
func Children(r Rule) *Fragment {
	f := NewFragment()
	switch r := r.(type) {
	case *ObjectRule:
		for _, m := range r.members {
			f.add(m)
		}
	case *ArrayRule:
		for i, item := range r.items {
			f.Add(strconv.Itoa(i), item)
		}
	}
	return f
}

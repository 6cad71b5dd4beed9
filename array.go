package jcr

import (
	"strings"

	"github.com/go-faster/errors"
	"golang.org/x/exp/slices"

	"github.com/tdakkota/jcr/valueiter"
)

var _ Rule = (*ArrayRule)(nil)

// ArrayRule is a composite rule over JSON arrays.
//
// Array conforms iff it has exactly Len() elements and i-th item rule
// validates i-th element.
type ArrayRule struct {
	items []Rule
}

// Array creates new ArrayRule.
//
// Items are copied, the caller keeps ownership of the slice.
func Array(items ...Rule) *ArrayRule {
	checkRules(items...)
	return &ArrayRule{items: slices.Clone(items)}
}

var errItemMismatch = errors.New("item mismatch")

// Validate implements Rule.
func (r *ArrayRule) Validate(v valueiter.Value) bool {
	if v.Kind() != valueiter.Array {
		return false
	}

	i := 0
	if err := v.Array(func(elem valueiter.Value) error {
		if i >= len(r.items) || !r.items[i].Validate(elem) {
			return errItemMismatch
		}
		i++
		return nil
	}); err != nil {
		return false
	}
	return i == len(r.items)
}

// Clone implements Rule.
func (r *ArrayRule) Clone() Rule {
	items := make([]Rule, len(r.items))
	for i, item := range r.items {
		items[i] = item.Clone()
	}
	return &ArrayRule{items: items}
}

// IsObject implements Rule.
func (r *ArrayRule) IsObject() bool { return false }

// Insert implements Rule.
//
// Member rules are appended in given order, names are discarded.
func (r *ArrayRule) Insert(members []Member) {
	r.items = slices.Grow(r.items, len(members))
	for _, m := range members {
		checkRules(m.Rule)
	}
	for _, m := range members {
		r.items = append(r.items, m.Rule)
	}
}

func (r *ArrayRule) String() string {
	var b strings.Builder
	b.WriteString("[ ")
	for i, item := range r.items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(item.String())
	}
	b.WriteString(" ]")
	return b.String()
}

// Len returns number of item rules.
func (r *ArrayRule) Len() int { return len(r.items) }

// Cap returns capacity of item storage.
func (r *ArrayRule) Cap() int { return cap(r.items) }

// At returns i-th item rule.
//
// At panics if i is out of range.
func (r *ArrayRule) At(i int) Rule { return r.items[i] }

// Items returns copy of item rules.
func (r *ArrayRule) Items() []Rule { return slices.Clone(r.items) }

// Append appends item rules.
func (r *ArrayRule) Append(items ...Rule) {
	checkRules(items...)
	r.items = append(r.items, items...)
}

// Add inserts item rule at given index.
//
// If index is out of range, item is appended.
func (r *ArrayRule) Add(index int, item Rule) {
	checkRules(item)
	if index < 0 || index >= len(r.items) {
		r.items = append(r.items, item)
		return
	}
	r.items = slices.Insert(r.items, index, item)
}

// RemoveRange removes item rules in [from, to).
func (r *ArrayRule) RemoveRange(from, to int) error {
	if from < 0 || from > to || to > len(r.items) {
		return errors.Errorf("invalid range [%d, %d) of %d items", from, to, len(r.items))
	}
	r.items = slices.Delete(r.items, from, to)
	return nil
}

// Reserve ensures capacity for at least n item rules.
func (r *ArrayRule) Reserve(n int) {
	if n > len(r.items) {
		r.items = slices.Grow(r.items, n-len(r.items))
	}
}

// Clear removes all item rules.
func (r *ArrayRule) Clear() {
	for i := range r.items {
		r.items[i] = nil
	}
	r.items = r.items[:0]
}

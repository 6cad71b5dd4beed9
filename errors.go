package jcr

import "fmt"

// MemberNotFoundError reports that object rule has no member with given name.
type MemberNotFoundError struct {
	Name string
}

// Error implements error.
func (e *MemberNotFoundError) Error() string {
	return fmt.Sprintf("member %q not found", e.Name)
}

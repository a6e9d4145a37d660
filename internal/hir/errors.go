package hir

import (
	"errors"
	"fmt"
)

// InvariantError is the panic value used when a structural contract of the
// tree is broken: an id that is not in the crate, a trait reference that did
// not resolve to a trait, and the like. Such errors are not recoverable.
type InvariantError struct {
	Op string
	ID string
}

func (e *InvariantError) Error() string {
	if e.ID == "" {
		return "hir invariant violated: " + e.Op
	}
	return fmt.Sprintf("hir invariant violated: %s (%s)", e.Op, e.ID)
}

func invariant(op string, id fmt.Stringer) {
	ie := &InvariantError{Op: op}
	if id != nil {
		ie.ID = id.String()
	}
	panic(ie)
}

var (
	// ErrDuplicateID is returned by CrateBuilder when an id is registered twice.
	ErrDuplicateID = errors.New("duplicate hir id")
	// ErrBodyIdentity is returned when a body is registered under an id that
	// differs from its root expression's id.
	ErrBodyIdentity = errors.New("body id differs from root expression id")
)

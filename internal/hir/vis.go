package hir

import (
	"oxbow/internal/source"
)

// VisibilityKind discriminates visibilities.
type VisibilityKind uint8

const (
	VisPublic VisibilityKind = iota
	VisCrate
	VisRestricted
	VisInherited
)

// CrateSugar records how crate visibility was spelled.
type CrateSugar uint8

const (
	// PubCrate is `pub(crate)`.
	PubCrate CrateSugar = iota
	// JustCrate is `crate`.
	JustCrate
)

// Visibility of an item or field.
type Visibility struct {
	Kind  VisibilityKind
	Sugar CrateSugar // VisCrate
	Path  *Path      // VisRestricted, `pub(in path)`
	ID    HirID      // VisRestricted
	Span  source.Span
}

// IsPub reports `pub`.
func (v Visibility) IsPub() bool { return v.Kind == VisPublic }

// IsPubRestricted reports `pub(crate)`, `crate` and `pub(in path)`.
func (v Visibility) IsPubRestricted() bool {
	return v.Kind == VisCrate || v.Kind == VisRestricted
}

// Descr names the visibility for diagnostics.
func (v Visibility) Descr() string {
	switch v.Kind {
	case VisPublic:
		return "public"
	case VisInherited:
		return "private"
	case VisCrate:
		return "crate-visible"
	case VisRestricted:
		return "restricted"
	default:
		return "unknown visibility"
	}
}

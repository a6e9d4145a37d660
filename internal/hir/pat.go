package hir

import (
	"oxbow/internal/source"
)

// PatKind enumerates pattern kinds.
type PatKind uint8

const (
	// PatWild is `_`.
	PatWild PatKind = iota
	// PatBinding is `ref mut ident @ sub`; a path resolving to a unit
	// struct or constant is PatPath instead.
	PatBinding
	// PatStruct is `Path { field: pat, .. }`.
	PatStruct
	// PatTupleStruct is `Path(a, .., b)`.
	PatTupleStruct
	// PatOr is `a | b | c`.
	PatOr
	// PatPath is a unit struct, unit variant or constant.
	PatPath
	// PatTuple is `(a, .., b)`.
	PatTuple
	// PatBox is `box pat`.
	PatBox
	// PatRef is `&pat` or `&mut pat`.
	PatRef
	// PatLit is a literal or path expression.
	PatLit
	// PatRange is `lo..=hi` or `lo..hi`.
	PatRange
	// PatSlice is `[a, b, rest @ .., y, z]`.
	PatSlice
)

// String returns a human-readable name for the pattern kind.
func (k PatKind) String() string {
	switch k {
	case PatWild:
		return "Wild"
	case PatBinding:
		return "Binding"
	case PatStruct:
		return "Struct"
	case PatTupleStruct:
		return "TupleStruct"
	case PatOr:
		return "Or"
	case PatPath:
		return "Path"
	case PatTuple:
		return "Tuple"
	case PatBox:
		return "Box"
	case PatRef:
		return "Ref"
	case PatLit:
		return "Lit"
	case PatRange:
		return "Range"
	case PatSlice:
		return "Slice"
	default:
		return "Unknown"
	}
}

// NoDDPos marks a tuple pattern without `..`.
const NoDDPos = -1

// Pat is a pattern node.
type Pat struct {
	ID   HirID
	Kind PatKind
	Data PatData // nil for Wild
	Span source.Span
}

// PatData is the kind-specific payload of a Pat.
type PatData interface {
	patData()
}

// BindingAnnotation is the `ref`/`mut` prefix of a binding.
type BindingAnnotation uint8

const (
	// Unannotated is a plain `x`; the binding mode is inferred.
	Unannotated BindingAnnotation = iota
	// Mutable is `mut x`.
	Mutable
	// RefBinding is `ref x`.
	RefBinding
	// RefMutBinding is `ref mut x`.
	RefMutBinding
)

func (b BindingAnnotation) String() string {
	switch b {
	case Unannotated:
		return ""
	case Mutable:
		return "mut "
	case RefBinding:
		return "ref "
	case RefMutBinding:
		return "ref mut "
	default:
		return "?"
	}
}

// RangeEnd tells whether a range includes its upper bound.
type RangeEnd uint8

const (
	RangeIncluded RangeEnd = iota
	RangeExcluded
)

// FieldPat is `field: pat` inside a struct pattern.
type FieldPat struct {
	ID    HirID
	Ident Ident
	Pat   *Pat
	// IsShorthand is set for `field` written without `: pat`.
	IsShorthand bool
	Span        source.Span
}

// BindingPat holds data for PatBinding. The binding's own id is the
// pattern's id.
type BindingPat struct {
	Annotation BindingAnnotation
	Ident      Ident
	Sub        *Pat // `@ sub`, optional
}

func (BindingPat) patData() {}

// StructPat holds data for PatStruct.
type StructPat struct {
	QPath   QPath
	Fields  []FieldPat
	HasRest bool // trailing `..`
}

func (StructPat) patData() {}

// TupleStructPat holds data for PatTupleStruct. DDPos is the index of
// `..` among Elems, or NoDDPos.
type TupleStructPat struct {
	QPath QPath
	Elems []*Pat
	DDPos int
}

func (TupleStructPat) patData() {}

// OrPat holds data for PatOr.
type OrPat struct {
	Alts []*Pat
}

func (OrPat) patData() {}

// PathPat holds data for PatPath.
type PathPat struct {
	QPath QPath
}

func (PathPat) patData() {}

// TuplePat holds data for PatTuple.
type TuplePat struct {
	Elems []*Pat
	DDPos int
}

func (TuplePat) patData() {}

// BoxPat holds data for PatBox.
type BoxPat struct {
	Inner *Pat
}

func (BoxPat) patData() {}

// RefPat holds data for PatRef.
type RefPat struct {
	Inner *Pat
	Mutbl Mutability
}

func (RefPat) patData() {}

// LitPat holds data for PatLit.
type LitPat struct {
	Expr *Expr
}

func (LitPat) patData() {}

// RangePat holds data for PatRange. Either bound may be absent for
// half-open ranges.
type RangePat struct {
	Lo  *Expr
	Hi  *Expr
	End RangeEnd
}

func (RangePat) patData() {}

// SlicePat holds data for PatSlice. Slice is the `..` element, which is
// a Wild pattern or a binding to one.
type SlicePat struct {
	Before []*Pat
	Slice  *Pat
	After  []*Pat
}

func (SlicePat) patData() {}

// SimpleIdent returns the bound name of a plain `x` or `mut x` pattern.
func (p *Pat) SimpleIdent() (Ident, bool) {
	if p.Kind != PatBinding {
		return Ident{}, false
	}
	b := p.Data.(BindingPat)
	if b.Sub != nil || (b.Annotation != Unannotated && b.Annotation != Mutable) {
		return Ident{}, false
	}
	return b.Ident, true
}

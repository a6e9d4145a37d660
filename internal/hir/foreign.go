package hir

import (
	"oxbow/internal/source"
)

// ForeignItemKind enumerates items inside an `extern` block.
type ForeignItemKind uint8

const (
	ForeignItemFn ForeignItemKind = iota
	ForeignItemStatic
	ForeignItemType
)

func (k ForeignItemKind) String() string {
	switch k {
	case ForeignItemFn:
		return "Fn"
	case ForeignItemStatic:
		return "Static"
	case ForeignItemType:
		return "Type"
	default:
		return "Unknown"
	}
}

// Descr returns the noun used in diagnostics.
func (k ForeignItemKind) Descr() string {
	switch k {
	case ForeignItemFn:
		return "foreign function"
	case ForeignItemStatic:
		return "foreign static item"
	case ForeignItemType:
		return "foreign type"
	default:
		panic(&InvariantError{Op: "descr of unknown foreign item kind"})
	}
}

// ForeignItem is a declaration inside an `extern` block.
type ForeignItem struct {
	Ident Ident
	Attrs []Attribute
	Kind  ForeignItemKind
	Data  ForeignItemData // nil for Type
	ID    HirID
	Span  source.Span
	Vis   Visibility
}

// ForeignItemData is the kind-specific payload of a ForeignItem.
type ForeignItemData interface {
	foreignItemData()
}

// ForeignFn holds data for ForeignItemFn.
type ForeignFn struct {
	Decl       *FnDecl
	ParamNames []Ident
	Generics   Generics
}

func (ForeignFn) foreignItemData() {}

// ForeignStatic holds data for ForeignItemStatic.
type ForeignStatic struct {
	Ty    *Ty
	Mutbl Mutability
}

func (ForeignStatic) foreignItemData() {}

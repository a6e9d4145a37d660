package hir

import (
	"oxbow/internal/source"
)

// TyKind enumerates type node kinds.
type TyKind uint8

const (
	// TySlice is `[T]`.
	TySlice TyKind = iota
	// TyArray is `[T; N]`.
	TyArray
	// TyPtr is `*const T` or `*mut T`.
	TyPtr
	// TyRptr is `&'a T` or `&'a mut T`.
	TyRptr
	// TyBareFn is `fn(A) -> B`.
	TyBareFn
	// TyNever is `!`.
	TyNever
	// TyTup is `(A, B)`, and `()` when empty.
	TyTup
	// TyPath is a path, possibly qualified, `<T as Trait>::Assoc`.
	TyPath
	// TyDef is a use of an opaque `impl Trait` type; the item is the
	// opaque type alias generated for it.
	TyDef
	// TyTraitObject is `dyn A + B + 'a`.
	TyTraitObject
	// TyTypeof is `typeof(expr)`, reserved and unused.
	TyTypeof
	// TyInfer is `_`.
	TyInfer
	// TyErr is a type that failed to lower.
	TyErr
)

// String returns a human-readable name for the type kind.
func (k TyKind) String() string {
	switch k {
	case TySlice:
		return "Slice"
	case TyArray:
		return "Array"
	case TyPtr:
		return "Ptr"
	case TyRptr:
		return "Rptr"
	case TyBareFn:
		return "BareFn"
	case TyNever:
		return "Never"
	case TyTup:
		return "Tup"
	case TyPath:
		return "Path"
	case TyDef:
		return "Def"
	case TyTraitObject:
		return "TraitObject"
	case TyTypeof:
		return "Typeof"
	case TyInfer:
		return "Infer"
	case TyErr:
		return "Err"
	default:
		return "Unknown"
	}
}

// Ty is a type node.
type Ty struct {
	ID   HirID
	Kind TyKind
	Data TyData // nil for Never, Infer, Err
	Span source.Span
}

// TyData is the kind-specific payload of a Ty.
type TyData interface {
	tyData()
}

// MutTy is a pointee type with its mutability.
type MutTy struct {
	Ty    *Ty
	Mutbl Mutability
}

// SliceTy holds data for TySlice.
type SliceTy struct {
	Elem *Ty
}

func (SliceTy) tyData() {}

// ArrayTy holds data for TyArray.
type ArrayTy struct {
	Elem *Ty
	Len  AnonConst
}

func (ArrayTy) tyData() {}

// PtrTy holds data for TyPtr.
type PtrTy struct {
	Mt MutTy
}

func (PtrTy) tyData() {}

// RptrTy holds data for TyRptr.
type RptrTy struct {
	Lifetime Lifetime
	Mt       MutTy
}

func (RptrTy) tyData() {}

// BareFnTy holds data for TyBareFn.
type BareFnTy struct {
	Unsafety      Unsafety
	ABI           ABI
	GenericParams []GenericParam
	Decl          *FnDecl
	ParamNames    []Ident
}

func (BareFnTy) tyData() {}

// TupTy holds data for TyTup.
type TupTy struct {
	Elems []*Ty
}

func (TupTy) tyData() {}

// PathTy holds data for TyPath.
type PathTy struct {
	QPath QPath
}

func (PathTy) tyData() {}

// DefTy holds data for TyDef.
type DefTy struct {
	Item ItemID
	Args []GenericArg
}

func (DefTy) tyData() {}

// TraitObjectTy holds data for TyTraitObject.
type TraitObjectTy struct {
	Bounds   []PolyTraitRef
	Lifetime Lifetime
}

func (TraitObjectTy) tyData() {}

// TypeofTy holds data for TyTypeof.
type TypeofTy struct {
	Expr AnonConst
}

func (TypeofTy) tyData() {}

// IsUnit reports `()`.
func (t *Ty) IsUnit() bool {
	if t.Kind != TyTup {
		return false
	}
	return len(t.Data.(TupTy).Elems) == 0
}

// PrimTy returns the built-in type a path type resolves to.
func (t *Ty) PrimTy() (PrimTy, bool) {
	if t.Kind != TyPath {
		return PrimTy{}, false
	}
	q := t.Data.(PathTy).QPath
	if q.Kind != QPathResolved || q.QSelf != nil || q.Path.Res.Kind != ResPrimTy {
		return PrimTy{}, false
	}
	return q.Path.Res.Prim, true
}

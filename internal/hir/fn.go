package hir

import (
	"oxbow/internal/def"
	"oxbow/internal/source"
)

// Param is a function or closure parameter.
type Param struct {
	Attrs []Attribute
	ID    HirID
	Pat   *Pat
	Span  source.Span
}

// AsyncGeneratorKind tells which async construct created a generator.
type AsyncGeneratorKind uint8

const (
	AsyncBlock AsyncGeneratorKind = iota
	AsyncClosure
	AsyncFn
)

func (k AsyncGeneratorKind) String() string {
	switch k {
	case AsyncBlock:
		return "`async` block"
	case AsyncClosure:
		return "`async` closure body"
	case AsyncFn:
		return "`async fn` body"
	default:
		return "async body"
	}
}

// GeneratorKind tells what created a generator body.
type GeneratorKind struct {
	IsAsync bool
	Async   AsyncGeneratorKind
}

// GeneratorGen is a generator written with `yield`.
var GeneratorGen = GeneratorKind{}

func (k GeneratorKind) String() string {
	if k.IsAsync {
		return k.Async.String()
	}
	return "generator"
}

// YieldSource returns the yield source matching the generator kind.
func (k GeneratorKind) YieldSource() YieldSource {
	if k.IsAsync {
		return YieldAwait
	}
	return YieldPlain
}

// Body is the executable content of a function, closure or constant,
// stored out of line in the crate.
type Body struct {
	Params []Param
	Value  *Expr
	// Generator is set for generator and async bodies.
	Generator *GeneratorKind
}

// ID returns the body's id, which is the id of its root expression.
func (b *Body) ID() BodyID {
	return BodyID{HirID: b.Value.ID}
}

// BodyOwnerKind classifies what owns a body.
type BodyOwnerKind uint8

const (
	BodyOwnerFn BodyOwnerKind = iota
	BodyOwnerClosure
	BodyOwnerConst
	BodyOwnerStatic
)

// IsFnOrClosure reports bodies that run when called.
func (k BodyOwnerKind) IsFnOrClosure() bool {
	return k == BodyOwnerFn || k == BodyOwnerClosure
}

// AnonConst is a constant expression in type position, like an array
// length, with its own body.
type AnonConst struct {
	ID   HirID
	Body BodyID
}

// ImplicitSelfKind describes the `self` parameter of a method.
type ImplicitSelfKind uint8

const (
	// ImplicitSelfNone means no self parameter.
	ImplicitSelfNone ImplicitSelfKind = iota
	// ImplicitSelfImm is `self`.
	ImplicitSelfImm
	// ImplicitSelfMut is `mut self`.
	ImplicitSelfMut
	// ImplicitSelfImmRef is `&self`.
	ImplicitSelfImmRef
	// ImplicitSelfMutRef is `&mut self`.
	ImplicitSelfMutRef
)

// HasImplicitSelf reports whether the function takes self.
func (k ImplicitSelfKind) HasImplicitSelf() bool { return k != ImplicitSelfNone }

// FnRetTyKind discriminates return types.
type FnRetTyKind uint8

const (
	// RetDefault means no return type was written; it is `()`. Span points
	// where the type would be.
	RetDefault FnRetTyKind = iota
	// RetReturn is `-> T`.
	RetReturn
)

// FnRetTy is the return type of a function signature.
type FnRetTy struct {
	Kind FnRetTyKind
	Sp   source.Span // RetDefault
	Ty   *Ty         // RetReturn
}

// Span of the return type, or where it would be.
func (r FnRetTy) Span() source.Span {
	if r.Kind == RetReturn {
		return r.Ty.Span
	}
	return r.Sp
}

func (r FnRetTy) String() string {
	if r.Kind == RetReturn {
		return "-> " + r.Ty.Kind.String()
	}
	return "()"
}

// FnDecl is the parameter and return types of a function.
type FnDecl struct {
	Inputs       []*Ty
	Output       FnRetTy
	CVariadic    bool
	ImplicitSelf ImplicitSelfKind
}

// FnHeader holds the qualifiers of a function.
type FnHeader struct {
	Unsafety  Unsafety
	Constness Constness
	Asyncness IsAsync
	ABI       ABI
}

// IsConst reports a `const fn`.
func (h FnHeader) IsConst() bool { return h.Constness == Const }

// FnSig is a function signature.
type FnSig struct {
	Header FnHeader
	Decl   *FnDecl
}

// Upvar is a variable captured by a closure.
type Upvar struct {
	// Span of the first use of the variable inside the closure.
	Span source.Span
}

// TraitCandidate is a trait that may provide a method at some call site.
type TraitCandidate struct {
	DefID def.DefID
	// ImportID is the `use` that brought the trait into scope, if any.
	ImportID *HirID
}

package hir

import (
	"fmt"

	"oxbow/internal/def"
)

// IntTy is a signed integer primitive.
type IntTy uint8

const (
	Isize IntTy = iota
	I8
	I16
	I32
	I64
	I128
)

func (t IntTy) String() string {
	switch t {
	case Isize:
		return "isize"
	case I8:
		return "i8"
	case I16:
		return "i16"
	case I32:
		return "i32"
	case I64:
		return "i64"
	case I128:
		return "i128"
	default:
		return "i?"
	}
}

// UintTy is an unsigned integer primitive.
type UintTy uint8

const (
	Usize UintTy = iota
	U8
	U16
	U32
	U64
	U128
)

func (t UintTy) String() string {
	switch t {
	case Usize:
		return "usize"
	case U8:
		return "u8"
	case U16:
		return "u16"
	case U32:
		return "u32"
	case U64:
		return "u64"
	case U128:
		return "u128"
	default:
		return "u?"
	}
}

// FloatTy is a floating point primitive.
type FloatTy uint8

const (
	F32 FloatTy = iota
	F64
)

func (t FloatTy) String() string {
	if t == F64 {
		return "f64"
	}
	return "f32"
}

// PrimTyKind enumerates the built-in types.
type PrimTyKind uint8

const (
	PrimInt PrimTyKind = iota
	PrimUint
	PrimFloat
	PrimStr
	PrimBool
	PrimChar
)

// PrimTy is a built-in type a path may resolve to.
type PrimTy struct {
	Kind  PrimTyKind
	Int   IntTy
	Uint  UintTy
	Float FloatTy
}

func (p PrimTy) String() string {
	switch p.Kind {
	case PrimInt:
		return p.Int.String()
	case PrimUint:
		return p.Uint.String()
	case PrimFloat:
		return p.Float.String()
	case PrimStr:
		return "str"
	case PrimBool:
		return "bool"
	case PrimChar:
		return "char"
	default:
		return "prim?"
	}
}

// ResKind discriminates resolutions.
type ResKind uint8

const (
	// ResErr is the zero value: unresolved or failed to resolve.
	ResErr ResKind = iota
	// ResDef is a definition with a DefID.
	ResDef
	// ResPrimTy is a built-in type.
	ResPrimTy
	// ResSelfTy is `Self` inside a trait and/or an impl.
	ResSelfTy
	// ResSelfCtor is `Self` used as a constructor in an impl.
	ResSelfCtor
	// ResLocal is a local binding; Local is the binding pattern's id.
	ResLocal
	// ResToolMod is a tool attribute namespace such as `rustfmt`.
	ResToolMod
	// ResNonMacroAttr is a built-in attribute.
	ResNonMacroAttr
)

func (k ResKind) String() string {
	switch k {
	case ResErr:
		return "err"
	case ResDef:
		return "def"
	case ResPrimTy:
		return "prim_ty"
	case ResSelfTy:
		return "self_ty"
	case ResSelfCtor:
		return "self_ctor"
	case ResLocal:
		return "local"
	case ResToolMod:
		return "tool_mod"
	case ResNonMacroAttr:
		return "non_macro_attr"
	default:
		return "unknown"
	}
}

// Res is the outcome of name resolution stored on paths. The HIR only
// keeps it; computing it is name resolution's job.
type Res struct {
	Kind      ResKind
	DefKind   def.Kind   // ResDef
	DefID     def.DefID  // ResDef; the impl for ResSelfCtor
	Prim      PrimTy     // ResPrimTy
	SelfTrait *def.DefID // ResSelfTy inside a trait
	SelfImpl  *def.DefID // ResSelfTy inside an impl
	Local     HirID      // ResLocal
}

// DefRes builds a resolution to a definition.
func DefRes(kind def.Kind, id def.DefID) Res {
	return Res{Kind: ResDef, DefKind: kind, DefID: id}
}

// LocalRes builds a resolution to a local binding.
func LocalRes(binding HirID) Res {
	return Res{Kind: ResLocal, Local: binding}
}

// PrimRes builds a resolution to a built-in type.
func PrimRes(p PrimTy) Res {
	return Res{Kind: ResPrimTy, Prim: p}
}

// IsDef reports whether r resolves to a definition of kind k.
func (r Res) IsDef(k def.Kind) bool {
	return r.Kind == ResDef && r.DefKind == k
}

// OptDefID returns the DefID of the resolution, if it has one.
func (r Res) OptDefID() (def.DefID, bool) {
	switch r.Kind {
	case ResDef, ResSelfCtor:
		return r.DefID, true
	default:
		return def.DefID{}, false
	}
}

// Descr returns a noun for diagnostics.
func (r Res) Descr() string {
	switch r.Kind {
	case ResDef:
		return r.DefKind.Descr()
	case ResPrimTy:
		return "builtin type"
	case ResSelfTy:
		return "self type"
	case ResSelfCtor:
		return "self constructor"
	case ResLocal:
		return "local variable"
	case ResToolMod:
		return "tool module"
	case ResNonMacroAttr:
		return "built-in attribute"
	case ResErr:
		return "unresolved item"
	default:
		return "unknown resolution"
	}
}

func (r Res) String() string {
	switch r.Kind {
	case ResDef:
		return fmt.Sprintf("Def(%s, %s)", r.DefKind, r.DefID)
	case ResPrimTy:
		return "PrimTy(" + r.Prim.String() + ")"
	case ResLocal:
		return "Local(" + r.Local.String() + ")"
	case ResSelfCtor:
		return "SelfCtor(" + r.DefID.String() + ")"
	default:
		return r.Kind.String()
	}
}

package def

// Namespace is the name-resolution namespace a definition lives in.
type Namespace uint8

const (
	TypeNS Namespace = iota
	ValueNS
	MacroNS
)

func (ns Namespace) String() string {
	switch ns {
	case TypeNS:
		return "type"
	case ValueNS:
		return "value"
	case MacroNS:
		return "macro"
	default:
		return "unknown"
	}
}

// CtorOf tells what kind of definition a constructor builds.
type CtorOf uint8

const (
	CtorOfStruct CtorOf = iota
	CtorOfVariant
)

// CtorKind is the syntactic shape of a constructor.
type CtorKind uint8

const (
	CtorFn CtorKind = iota
	CtorConst
	CtorFictive
)

// Kind classifies a resolved definition.
type Kind uint8

const (
	KindMod Kind = iota
	KindStruct
	KindUnion
	KindEnum
	KindVariant
	KindTrait
	KindOpaqueTy
	KindTyAlias
	KindForeignTy
	KindTraitAlias
	KindAssocTy
	KindAssocOpaqueTy
	KindTyParam
	KindFn
	KindConst
	KindConstParam
	KindStatic
	KindCtor
	KindMethod
	KindAssocConst
	KindMacro
)

// Descr returns the human-facing noun for the kind.
func (k Kind) Descr() string {
	switch k {
	case KindMod:
		return "module"
	case KindStruct:
		return "struct"
	case KindUnion:
		return "union"
	case KindEnum:
		return "enum"
	case KindVariant:
		return "variant"
	case KindTrait:
		return "trait"
	case KindOpaqueTy:
		return "opaque type"
	case KindTyAlias:
		return "type alias"
	case KindForeignTy:
		return "foreign type"
	case KindTraitAlias:
		return "trait alias"
	case KindAssocTy:
		return "associated type"
	case KindAssocOpaqueTy:
		return "associated opaque type"
	case KindTyParam:
		return "type parameter"
	case KindFn:
		return "function"
	case KindConst:
		return "constant"
	case KindConstParam:
		return "const parameter"
	case KindStatic:
		return "static"
	case KindCtor:
		return "constructor"
	case KindMethod:
		return "method"
	case KindAssocConst:
		return "associated constant"
	case KindMacro:
		return "macro"
	default:
		return "unknown"
	}
}

func (k Kind) String() string { return k.Descr() }

// Namespace returns the namespace the kind's names are resolved in.
func (k Kind) Namespace() Namespace {
	switch k {
	case KindMod, KindStruct, KindUnion, KindEnum, KindVariant, KindTrait,
		KindOpaqueTy, KindTyAlias, KindForeignTy, KindTraitAlias,
		KindAssocTy, KindAssocOpaqueTy, KindTyParam:
		return TypeNS
	case KindFn, KindConst, KindConstParam, KindStatic, KindCtor,
		KindMethod, KindAssocConst:
		return ValueNS
	case KindMacro:
		return MacroNS
	default:
		panic("def: unhandled kind in Namespace")
	}
}

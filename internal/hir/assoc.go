package hir

import (
	"oxbow/internal/def"
	"oxbow/internal/source"
)

// TraitItemKind enumerates trait item kinds.
type TraitItemKind uint8

const (
	// TraitItemConst is an associated constant, optionally with a default.
	TraitItemConst TraitItemKind = iota
	// TraitItemFn is a method, required or provided.
	TraitItemFn
	// TraitItemType is an associated type with bounds and an optional
	// default.
	TraitItemType
)

func (k TraitItemKind) String() string {
	switch k {
	case TraitItemConst:
		return "Const"
	case TraitItemFn:
		return "Fn"
	case TraitItemType:
		return "Type"
	default:
		return "Unknown"
	}
}

// TraitItem is an item declared inside a trait.
type TraitItem struct {
	Ident    Ident
	ID       HirID
	Attrs    []Attribute
	Generics Generics
	Kind     TraitItemKind
	Data     TraitItemData
	Span     source.Span
}

// TraitItemData is the kind-specific payload of a TraitItem.
type TraitItemData interface {
	traitItemData()
}

// TraitItemID returns the reference used to find the item in the crate.
func (ti *TraitItem) TraitItemID() TraitItemID { return TraitItemID{HirID: ti.ID} }

// TraitConst holds data for TraitItemConst.
type TraitConst struct {
	Ty      *Ty
	Default *BodyID
}

func (TraitConst) traitItemData() {}

// TraitMethodKind tells whether a trait method has a default body.
type TraitMethodKind uint8

const (
	// MethodRequired has no default body; only parameter names are kept.
	MethodRequired TraitMethodKind = iota
	// MethodProvided has a default body.
	MethodProvided
)

// TraitMethod is the body part of a trait method.
type TraitMethod struct {
	Kind       TraitMethodKind
	ParamNames []Ident // MethodRequired
	Body       BodyID  // MethodProvided
}

// TraitFn holds data for TraitItemFn.
type TraitFn struct {
	Sig    FnSig
	Method TraitMethod
}

func (TraitFn) traitItemData() {}

// TraitType holds data for TraitItemType.
type TraitType struct {
	Bounds  []GenericBound
	Default *Ty
}

func (TraitType) traitItemData() {}

// ImplItemKind enumerates impl item kinds.
type ImplItemKind uint8

const (
	ImplItemConst ImplItemKind = iota
	ImplItemFn
	ImplItemTyAlias
	ImplItemOpaqueTy
)

func (k ImplItemKind) String() string {
	switch k {
	case ImplItemConst:
		return "Const"
	case ImplItemFn:
		return "Fn"
	case ImplItemTyAlias:
		return "TyAlias"
	case ImplItemOpaqueTy:
		return "OpaqueTy"
	default:
		return "Unknown"
	}
}

// Namespace returns the namespace the item's name lives in.
func (k ImplItemKind) Namespace() def.Namespace {
	switch k {
	case ImplItemOpaqueTy, ImplItemTyAlias:
		return def.TypeNS
	case ImplItemConst, ImplItemFn:
		return def.ValueNS
	default:
		panic(&InvariantError{Op: "namespace of unknown impl item kind"})
	}
}

// ImplItem is an item declared inside an impl block.
type ImplItem struct {
	ID          HirID
	Ident       Ident
	Vis         Visibility
	Defaultness Defaultness
	Attrs       []Attribute
	Generics    Generics
	Kind        ImplItemKind
	Data        ImplItemData
	Span        source.Span
}

// ImplItemData is the kind-specific payload of an ImplItem.
type ImplItemData interface {
	implItemData()
}

// ImplItemID returns the reference used to find the item in the crate.
func (ii *ImplItem) ImplItemID() ImplItemID { return ImplItemID{HirID: ii.ID} }

// ImplConst holds data for ImplItemConst.
type ImplConst struct {
	Ty   *Ty
	Body BodyID
}

func (ImplConst) implItemData() {}

// ImplFn holds data for ImplItemFn.
type ImplFn struct {
	Sig  FnSig
	Body BodyID
}

func (ImplFn) implItemData() {}

// ImplTyAlias holds data for ImplItemTyAlias.
type ImplTyAlias struct {
	Ty *Ty
}

func (ImplTyAlias) implItemData() {}

// ImplOpaqueTy holds data for ImplItemOpaqueTy.
type ImplOpaqueTy struct {
	Bounds []GenericBound
}

func (ImplOpaqueTy) implItemData() {}

// AssocKind is the coarse kind of an associated item.
type AssocKind uint8

const (
	AssocConst AssocKind = iota
	AssocFn
	AssocType
	AssocOpaqueTy
)

// AssocItemKind is the kind recorded in item refs. HasSelf is set for
// methods taking self.
type AssocItemKind struct {
	Kind    AssocKind
	HasSelf bool
}

// TraitItemRef is the lightweight record of a trait item kept on the
// trait, so that name lookups need not load the full item.
type TraitItemRef struct {
	ID          TraitItemID
	Ident       Ident
	Kind        AssocItemKind
	Span        source.Span
	Defaultness Defaultness
}

// ImplItemRef is the lightweight record of an impl item kept on the impl.
type ImplItemRef struct {
	ID          ImplItemID
	Ident       Ident
	Kind        AssocItemKind
	Span        source.Span
	Vis         Visibility
	Defaultness Defaultness
}

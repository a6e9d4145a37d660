package hir

import (
	"oxbow/internal/def"
	"oxbow/internal/source"
)

// ItemKind enumerates item kinds.
type ItemKind uint8

const (
	// ItemExternCrate is `extern crate foo` or `extern crate foo_bar as foo`.
	ItemExternCrate ItemKind = iota
	// ItemUse is one import of a `use` tree.
	ItemUse
	// ItemStatic is a `static` item.
	ItemStatic
	// ItemConst is a `const` item.
	ItemConst
	// ItemFn is a function.
	ItemFn
	// ItemMod is a module.
	ItemMod
	// ItemForeignMod is an `extern { }` block.
	ItemForeignMod
	// ItemGlobalAsm is module-level assembly from `global_asm!`.
	ItemGlobalAsm
	// ItemTyAlias is `type Foo = Bar<u8>;`.
	ItemTyAlias
	// ItemOpaqueTy is `type Foo = impl Bar;` or a lowered `impl Trait`.
	ItemOpaqueTy
	// ItemEnum is an enum definition.
	ItemEnum
	// ItemStruct is a struct definition.
	ItemStruct
	// ItemUnion is a union definition.
	ItemUnion
	// ItemTrait is a trait definition.
	ItemTrait
	// ItemTraitAlias is `trait Foo = Bar + Baz;`.
	ItemTraitAlias
	// ItemImpl is an inherent or trait impl block.
	ItemImpl
)

// String returns a human-readable name for the item kind.
func (k ItemKind) String() string {
	switch k {
	case ItemExternCrate:
		return "ExternCrate"
	case ItemUse:
		return "Use"
	case ItemStatic:
		return "Static"
	case ItemConst:
		return "Const"
	case ItemFn:
		return "Fn"
	case ItemMod:
		return "Mod"
	case ItemForeignMod:
		return "ForeignMod"
	case ItemGlobalAsm:
		return "GlobalAsm"
	case ItemTyAlias:
		return "TyAlias"
	case ItemOpaqueTy:
		return "OpaqueTy"
	case ItemEnum:
		return "Enum"
	case ItemStruct:
		return "Struct"
	case ItemUnion:
		return "Union"
	case ItemTrait:
		return "Trait"
	case ItemTraitAlias:
		return "TraitAlias"
	case ItemImpl:
		return "Impl"
	default:
		return "Unknown"
	}
}

// Descr returns the noun used in diagnostics.
func (k ItemKind) Descr() string {
	switch k {
	case ItemExternCrate:
		return "extern crate"
	case ItemUse:
		return "`use` import"
	case ItemStatic:
		return "static item"
	case ItemConst:
		return "constant item"
	case ItemFn:
		return "function"
	case ItemMod:
		return "module"
	case ItemForeignMod:
		return "extern block"
	case ItemGlobalAsm:
		return "global asm item"
	case ItemTyAlias:
		return "type alias"
	case ItemOpaqueTy:
		return "opaque type"
	case ItemEnum:
		return "enum"
	case ItemStruct:
		return "struct"
	case ItemUnion:
		return "union"
	case ItemTrait:
		return "trait"
	case ItemTraitAlias:
		return "trait alias"
	case ItemImpl:
		return "implementation"
	default:
		panic(&InvariantError{Op: "descr of unknown item kind"})
	}
}

// Item is a top-level or nested declaration. The name is a dummy for
// anonymous items such as impls.
type Item struct {
	Ident Ident
	ID    HirID
	Attrs []Attribute
	Kind  ItemKind
	Data  ItemData
	Vis   Visibility
	Span  source.Span
}

// ItemData is the kind-specific payload of an Item.
type ItemData interface {
	itemData()
}

// ItemID returns the reference used to find this item in the crate.
func (it *Item) ItemID() ItemID { return ItemID{ID: it.ID} }

// Descr returns the noun used in diagnostics.
func (it *Item) Descr() string { return it.Kind.Descr() }

// Generics returns the item's generics, or nil for kinds that cannot be
// generic. An item that can be generic but has no parameters returns empty
// generics, not nil. Opaque types created for `-> impl Trait` share the
// generics of their function and report nil.
func (it *Item) Generics() *Generics {
	var g Generics
	switch d := it.Data.(type) {
	case FnItem:
		g = d.Generics
	case TyAliasItem:
		g = d.Generics
	case OpaqueTy:
		if d.ImplTraitFn != nil {
			return nil
		}
		g = d.Generics
	case EnumItem:
		g = d.Generics
	case StructItem:
		g = d.Generics
	case UnionItem:
		g = d.Generics
	case Trait:
		g = d.Generics
	case Impl:
		g = d.Generics
	default:
		return nil
	}
	return &g
}

// ExternCrateItem holds data for ItemExternCrate. OrigName is the crate's
// real name when it was renamed, and empty otherwise.
type ExternCrateItem struct {
	OrigName string
}

func (ExternCrateItem) itemData() {}

// UseKind is the shape of a lowered import.
type UseKind uint8

const (
	// UseSingle is `use foo::bar` or `use foo::bar as baz`; list imports
	// lower to one of these per element.
	UseSingle UseKind = iota
	// UseGlob is `use foo::*`.
	UseGlob
	// UseListStem is the extra `use foo::{}` kept for checks on the
	// prefix of a list import.
	UseListStem
)

// UseItem holds data for ItemUse.
type UseItem struct {
	Path *Path
	Kind UseKind
}

func (UseItem) itemData() {}

// StaticItem holds data for ItemStatic.
type StaticItem struct {
	Ty    *Ty
	Mutbl Mutability
	Body  BodyID
}

func (StaticItem) itemData() {}

// ConstItem holds data for ItemConst.
type ConstItem struct {
	Ty   *Ty
	Body BodyID
}

func (ConstItem) itemData() {}

// FnItem holds data for ItemFn.
type FnItem struct {
	Sig      FnSig
	Generics Generics
	Body     BodyID
}

func (FnItem) itemData() {}

// Mod is a module's item list. Inner spans the module's contents.
type Mod struct {
	Inner   source.Span
	ItemIDs []ItemID
}

func (Mod) itemData() {}

// ForeignMod holds data for ItemForeignMod.
type ForeignMod struct {
	ABI   ABI
	Items []ForeignItem
}

func (ForeignMod) itemData() {}

// GlobalAsm holds data for ItemGlobalAsm.
type GlobalAsm struct {
	Asm string
}

func (GlobalAsm) itemData() {}

// TyAliasItem holds data for ItemTyAlias.
type TyAliasItem struct {
	Ty       *Ty
	Generics Generics
}

func (TyAliasItem) itemData() {}

// OpaqueTyOrigin tells where an opaque type came from.
type OpaqueTyOrigin uint8

const (
	// OriginTypeAlias is `type Foo = impl Trait;`.
	OriginTypeAlias OpaqueTyOrigin = iota
	// OriginFnReturn is `-> impl Trait`.
	OriginFnReturn
	// OriginAsyncFn is the future returned by an `async fn`.
	OriginAsyncFn
	// OriginMisc is `impl Trait` in bindings, consts, statics and bounds.
	OriginMisc
)

// OpaqueTy holds data for ItemOpaqueTy. ImplTraitFn is the function whose
// return type this is, when it came from one.
type OpaqueTy struct {
	Generics    Generics
	Bounds      []GenericBound
	ImplTraitFn *def.DefID
	Origin      OpaqueTyOrigin
}

func (OpaqueTy) itemData() {}

// EnumItem holds data for ItemEnum.
type EnumItem struct {
	Def      EnumDef
	Generics Generics
}

func (EnumItem) itemData() {}

// StructItem holds data for ItemStruct.
type StructItem struct {
	Data     VariantData
	Generics Generics
}

func (StructItem) itemData() {}

// UnionItem holds data for ItemUnion.
type UnionItem struct {
	Data     VariantData
	Generics Generics
}

func (UnionItem) itemData() {}

// Trait holds data for ItemTrait.
type Trait struct {
	IsAuto   IsAuto
	Unsafety Unsafety
	Generics Generics
	Bounds   []GenericBound
	Items    []TraitItemRef
}

func (Trait) itemData() {}

// TraitAlias holds data for ItemTraitAlias.
type TraitAlias struct {
	Generics Generics
	Bounds   []GenericBound
}

func (TraitAlias) itemData() {}

// Impl holds data for ItemImpl. OfTrait is nil for inherent impls.
type Impl struct {
	Unsafety    Unsafety
	Polarity    ImplPolarity
	Defaultness Defaultness
	Constness   Constness
	Generics    Generics
	OfTrait     *TraitRef
	SelfTy      *Ty
	Items       []ImplItemRef
}

func (Impl) itemData() {}

// MacroDef is a `macro_rules!` definition exported from the crate.
type MacroDef struct {
	Name   string
	Vis    Visibility
	Attrs  []Attribute
	ID     HirID
	Span   source.Span
	Body   string
	Legacy bool
}

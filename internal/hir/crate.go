package hir

import (
	"oxbow/internal/def"
	"oxbow/internal/source"
)

// ModuleItems lists the owners declared directly in one module.
type ModuleItems struct {
	Items      []HirID
	TraitItems []TraitItemID
	ImplItems  []ImplItemID
}

// Crate is the HIR of a whole crate. Items, trait items, impl items and
// bodies live in flat id-keyed maps rather than inline in their parents, so
// passes that work one item at a time never touch the others. A Crate is
// produced by CrateBuilder.Build and is read-only afterwards; it can be
// shared between goroutines without locking.
type Crate struct {
	Module                Mod
	Attrs                 []Attribute
	Span                  source.Span
	ExportedMacros        []MacroDef
	NonExportedMacroAttrs []Attribute

	Items      SortedMap[ItemID, *Item]
	TraitItems SortedMap[TraitItemID, *TraitItem]
	ImplItems  SortedMap[ImplItemID, *ImplItem]
	Bodies     SortedMap[BodyID, *Body]
	TraitImpls SortedMap[def.DefID, []HirID]

	// BodyIDs lists every body, sorted by id, for passes that only care
	// about function bodies.
	BodyIDs []BodyID

	Modules    SortedMap[HirID, ModuleItems]
	ProcMacros []HirID
}

// Item returns the item with the given id. A missing item means the crate
// was built from inconsistent lowering output, so it panics.
func (c *Crate) Item(id ItemID) *Item {
	it, ok := c.Items.Get(id)
	if !ok {
		invariant("item not in crate", id)
	}
	return it
}

// TraitItem returns the trait item with the given id or panics.
func (c *Crate) TraitItem(id TraitItemID) *TraitItem {
	ti, ok := c.TraitItems.Get(id)
	if !ok {
		invariant("trait item not in crate", id)
	}
	return ti
}

// ImplItem returns the impl item with the given id or panics.
func (c *Crate) ImplItem(id ImplItemID) *ImplItem {
	ii, ok := c.ImplItems.Get(id)
	if !ok {
		invariant("impl item not in crate", id)
	}
	return ii
}

// Body returns the body with the given id or panics.
func (c *Crate) Body(id BodyID) *Body {
	b, ok := c.Bodies.Get(id)
	if !ok {
		invariant("body not in crate", id)
	}
	return b
}

// ModuleItems returns the owners declared in module, if the module was
// registered.
func (c *Crate) ModuleItems(module HirID) (ModuleItems, bool) {
	return c.Modules.Get(module)
}

// ImplsOfTrait returns the ids of the impl items implementing trait, in the
// order lowering registered them.
func (c *Crate) ImplsOfTrait(trait def.DefID) []HirID {
	ids, _ := c.TraitImpls.Get(trait)
	return ids
}

// OwnerCount returns the number of owners in the crate, the root module
// included.
func (c *Crate) OwnerCount() int {
	return 1 + c.Items.Len() + c.TraitItems.Len() + c.ImplItems.Len()
}

package hir

import (
	"fmt"
	"slices"

	"oxbow/internal/def"
	"oxbow/internal/source"
)

// CrateBuilder collects the output of lowering and freezes it into a Crate.
// It rejects duplicate ids and bodies whose id does not match their root
// expression. The builder must not be reused after Build.
type CrateBuilder struct {
	module Mod
	attrs  []Attribute
	span   source.Span

	exportedMacros        []MacroDef
	nonExportedMacroAttrs []Attribute

	items      map[ItemID]*Item
	traitItems map[TraitItemID]*TraitItem
	implItems  map[ImplItemID]*ImplItem
	bodies     map[BodyID]*Body
	traitImpls map[def.DefID][]HirID
	modules    map[HirID]ModuleItems
	procMacros []HirID
}

// NewCrateBuilder starts an empty crate. The root module is usually only
// known once all of its items are lowered; see SetRoot.
func NewCrateBuilder() *CrateBuilder {
	return &CrateBuilder{
		items:      make(map[ItemID]*Item),
		traitItems: make(map[TraitItemID]*TraitItem),
		implItems:  make(map[ImplItemID]*ImplItem),
		bodies:     make(map[BodyID]*Body),
		traitImpls: make(map[def.DefID][]HirID),
		modules:    make(map[HirID]ModuleItems),
	}
}

// SetRoot sets the crate root module with its inner attributes and the
// span of the whole crate.
func (b *CrateBuilder) SetRoot(module Mod, attrs []Attribute, span source.Span) {
	b.module = module
	b.attrs = attrs
	b.span = span
}

// AddItem registers an item under its own id.
func (b *CrateBuilder) AddItem(it *Item) error {
	id := it.ItemID()
	if _, dup := b.items[id]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}
	b.items[id] = it
	return nil
}

// AddTraitItem registers a trait item under its own id.
func (b *CrateBuilder) AddTraitItem(ti *TraitItem) error {
	id := ti.TraitItemID()
	if _, dup := b.traitItems[id]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}
	b.traitItems[id] = ti
	return nil
}

// AddImplItem registers an impl item under its own id.
func (b *CrateBuilder) AddImplItem(ii *ImplItem) error {
	id := ii.ImplItemID()
	if _, dup := b.implItems[id]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}
	b.implItems[id] = ii
	return nil
}

// AddBody registers body under id. The id must be the id of the body's
// root expression.
func (b *CrateBuilder) AddBody(id BodyID, body *Body) error {
	if body.Value == nil {
		return fmt.Errorf("%w: %s has no value", ErrBodyIdentity, id)
	}
	if body.Value.ID != id.HirID {
		return fmt.Errorf("%w: %s vs value %s", ErrBodyIdentity, id, body.Value.ID)
	}
	if _, dup := b.bodies[id]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}
	b.bodies[id] = body
	return nil
}

// AddModuleItems records the owners declared directly in module.
func (b *CrateBuilder) AddModuleItems(module HirID, items ModuleItems) error {
	if _, dup := b.modules[module]; dup {
		return fmt.Errorf("%w: module %s", ErrDuplicateID, module)
	}
	b.modules[module] = items
	return nil
}

// AddTraitImpl records that impl implements trait.
func (b *CrateBuilder) AddTraitImpl(trait def.DefID, impl HirID) {
	b.traitImpls[trait] = append(b.traitImpls[trait], impl)
}

// AddExportedMacro records a `#[macro_export]` macro.
func (b *CrateBuilder) AddExportedMacro(m MacroDef) {
	b.exportedMacros = append(b.exportedMacros, m)
}

// AddNonExportedMacroAttrs keeps the attributes of macros that were not
// exported, for lints that inspect them.
func (b *CrateBuilder) AddNonExportedMacroAttrs(attrs ...Attribute) {
	b.nonExportedMacroAttrs = append(b.nonExportedMacroAttrs, attrs...)
}

// AddProcMacro records the item defining a procedural macro.
func (b *CrateBuilder) AddProcMacro(id HirID) {
	b.procMacros = append(b.procMacros, id)
}

// Build freezes the collected parts into a Crate.
func (b *CrateBuilder) Build() *Crate {
	bodies := NewSortedMap(b.bodies)
	procMacros := slices.Clone(b.procMacros)
	slices.SortFunc(procMacros, HirID.Compare)
	return &Crate{
		Module:                b.module,
		Attrs:                 b.attrs,
		Span:                  b.span,
		ExportedMacros:        b.exportedMacros,
		NonExportedMacroAttrs: b.nonExportedMacroAttrs,
		Items:                 NewSortedMap(b.items),
		TraitItems:            NewSortedMap(b.traitItems),
		ImplItems:             NewSortedMap(b.implItems),
		Bodies:                bodies,
		TraitImpls:            NewSortedMap(b.traitImpls),
		BodyIDs:               bodies.Keys(),
		Modules:               NewSortedMap(b.modules),
		ProcMacros:            procMacros,
	}
}

package hir

import (
	"oxbow/internal/source"
)

// StructField is a field of a struct, union or variant.
type StructField struct {
	Span  source.Span
	Ident Ident
	Vis   Visibility
	ID    HirID
	Ty    *Ty
	Attrs []Attribute
}

// IsPositional reports a tuple field, named `0`, `1`, ...
func (f *StructField) IsPositional() bool {
	if f.Ident.Name == "" {
		return false
	}
	c := f.Ident.Name[0]
	return c >= '0' && c <= '9'
}

// VariantDataKind discriminates the shape of a struct or variant.
type VariantDataKind uint8

const (
	// VariantStruct is `Bar { .. }`.
	VariantStruct VariantDataKind = iota
	// VariantTuple is `Bar(..)`.
	VariantTuple
	// VariantUnit is `Bar`.
	VariantUnit
)

// VariantData holds the fields and constructor of a struct or variant.
type VariantData struct {
	Kind   VariantDataKind
	Fields []StructField // Struct, Tuple
	// Recovered is set on struct variants whose field list had a syntax
	// error.
	Recovered bool
	CtorID    HirID // Tuple, Unit
}

// FieldList returns the fields; unit variants have none.
func (v *VariantData) FieldList() []StructField {
	if v.Kind == VariantUnit {
		return nil
	}
	return v.Fields
}

// CtorHirID returns the constructor id of tuple and unit shapes.
func (v *VariantData) CtorHirID() (HirID, bool) {
	if v.Kind == VariantStruct {
		return HirID{}, false
	}
	return v.CtorID, true
}

// Variant is an enum variant.
type Variant struct {
	Ident Ident
	Attrs []Attribute
	ID    HirID
	Data  VariantData
	Disr  *AnonConst // explicit discriminant, optional
	Span  source.Span
}

// EnumDef is the variant list of an enum.
type EnumDef struct {
	Variants []Variant
}

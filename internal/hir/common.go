package hir

import (
	"oxbow/internal/source"
)

// Well-known names the HIR itself interprets.
const (
	KwPathRoot           = "{{root}}"
	KwUnderscoreLifetime = "'_"
	KwStaticLifetime     = "'static"
	KwSelfLower          = "self"
	SymOutput            = "Output"
	SymNew               = "new"
	SymStd               = "std"
	SymCore              = "core"
	SymOps               = "ops"
)

// Ident is a name together with the span it was written at.
type Ident struct {
	Name string
	Span source.Span
}

// NewIdent builds an identifier, normalising the name to NFC.
func NewIdent(name string, span source.Span) Ident {
	return Ident{Name: source.NormalizeIdent(name), Span: span}
}

// IdentWithDummySpan builds an identifier for synthesised names.
func IdentWithDummySpan(name string) Ident {
	return Ident{Name: name, Span: source.DummySpan}
}

// IsEmpty reports whether the identifier has no name.
func (id Ident) IsEmpty() bool { return id.Name == "" }

func (id Ident) String() string { return id.Name }

// Label names a loop or labelled block.
type Label struct {
	Ident Ident
}

// AttrStyle tells whether an attribute is `#[outer]` or `#![inner]`.
type AttrStyle uint8

const (
	AttrOuter AttrStyle = iota
	AttrInner
)

// Attribute is an attribute attached to a node. Its arguments are kept as
// source tokens; interpreting them is up to later phases.
type Attribute struct {
	Path       string
	Args       string
	Style      AttrStyle
	DocComment bool
	Span       source.Span
}

// Mutability of a binding, reference or pointer.
type Mutability uint8

const (
	Not Mutability = iota
	Mut
)

// PrefixStr returns "mut " or "".
func (m Mutability) PrefixStr() string {
	if m == Mut {
		return "mut "
	}
	return ""
}

// BorrowKind distinguishes `&x` from `&raw const x`.
type BorrowKind uint8

const (
	BorrowRef BorrowKind = iota
	BorrowRaw
)

// CaptureBy says how a closure captures its environment.
type CaptureBy uint8

const (
	CaptureByRef CaptureBy = iota
	CaptureByValue
)

// Movability of a generator.
type Movability uint8

const (
	Static Movability = iota
	Movable
)

// Unsafety of a function, trait or impl.
type Unsafety uint8

const (
	Normal Unsafety = iota
	Unsafe
)

// PrefixStr returns the keyword prefix for printing.
func (u Unsafety) PrefixStr() string {
	if u == Unsafe {
		return "unsafe "
	}
	return ""
}

func (u Unsafety) String() string {
	if u == Unsafe {
		return "unsafe"
	}
	return "normal"
}

// Constness of a function or impl.
type Constness uint8

const (
	NotConst Constness = iota
	Const
)

// IsAsync marks `async fn`.
type IsAsync uint8

const (
	NotAsync IsAsync = iota
	Async
)

// IsAuto marks `auto trait`.
type IsAuto uint8

const (
	NotAuto IsAuto = iota
	Auto
)

// ImplPolarity distinguishes `impl Trait for T` from `impl !Trait for T`.
type ImplPolarity uint8

const (
	Positive ImplPolarity = iota
	Negative
)

// Defaultness of an associated item or impl.
type Defaultness struct {
	Default  bool // `default` keyword present
	HasValue bool // meaningful only when Default is set
}

// Final is the defaultness of an item without `default`.
var Final = Defaultness{}

// HasValueOrFinal reports whether the item provides a value.
func (d Defaultness) HasValueOrFinal() bool {
	return !d.Default || d.HasValue
}

// IsFinal reports whether the item cannot be specialised.
func (d Defaultness) IsFinal() bool { return !d.Default }

// IsDefault reports whether the item is marked `default`.
func (d Defaultness) IsDefault() bool { return d.Default }

// ABI names a calling convention such as "Rust" or "C".
type ABI string

const (
	ABIRust          ABI = "Rust"
	ABIC             ABI = "C"
	ABISystem        ABI = "system"
	ABIRustIntrinsic ABI = "rust-intrinsic"
	ABIRustCall      ABI = "rust-call"
)

// StrStyle records how a string literal was quoted.
type StrStyle struct {
	Raw    bool
	Hashes uint16 // number of `#` for raw strings
}

// AsmDialect of an inline or global assembly block.
type AsmDialect uint8

const (
	AsmATT AsmDialect = iota
	AsmIntel
)

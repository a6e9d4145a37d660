package hir

import (
	"oxbow/internal/source"
)

// ParamNameKind tells how a lifetime or generic parameter got its name.
type ParamNameKind uint8

const (
	// ParamPlain is a name written in the source, `'a` or `T`.
	ParamPlain ParamNameKind = iota
	// ParamFresh is a synthetic lifetime introduced for elided `'_` in
	// impl headers; Fresh disambiguates siblings.
	ParamFresh
	// ParamError marks a name that failed to lower.
	ParamError
)

// ParamName is the name of a generic parameter.
type ParamName struct {
	Kind  ParamNameKind
	Ident Ident  // ParamPlain
	Fresh uint32 // ParamFresh
}

// PlainParam names a parameter as written.
func PlainParam(ident Ident) ParamName {
	return ParamName{Kind: ParamPlain, Ident: ident}
}

// FreshParam names the n-th synthetic lifetime of an owner.
func FreshParam(n uint32) ParamName {
	return ParamName{Kind: ParamFresh, Fresh: n}
}

// Name returns the identifier of the parameter. Fresh and error names
// report `'_`.
func (p ParamName) Name() Ident {
	if p.Kind == ParamPlain {
		return p.Ident
	}
	return IdentWithDummySpan(KwUnderscoreLifetime)
}

// Modern returns the name with its span reduced to hygiene-relevant
// information. Spans carry no hygiene data here, so the name is only
// normalised.
func (p ParamName) Modern() ParamName {
	if p.Kind == ParamPlain {
		p.Ident = Ident{Name: source.NormalizeIdent(p.Ident.Name), Span: p.Ident.Span}
	}
	return p
}

// LifetimeNameKind enumerates the forms a lifetime reference takes.
type LifetimeNameKind uint8

const (
	// LifetimeParam is a user-given or fresh parameter name.
	LifetimeParam LifetimeNameKind = iota
	// LifetimeImplicit is elided in a fn signature, `&T`.
	LifetimeImplicit
	// LifetimeImplicitObjectDefault is the elided bound of a trait object,
	// `Box<dyn Trait>`; it follows object lifetime default rules.
	LifetimeImplicitObjectDefault
	// LifetimeError marks a lifetime that failed to resolve.
	LifetimeError
	// LifetimeUnderscore is an explicit `'_`.
	LifetimeUnderscore
	// LifetimeStatic is `'static`.
	LifetimeStatic
)

func (k LifetimeNameKind) String() string {
	switch k {
	case LifetimeParam:
		return "param"
	case LifetimeImplicit:
		return "implicit"
	case LifetimeImplicitObjectDefault:
		return "implicit_object_default"
	case LifetimeError:
		return "error"
	case LifetimeUnderscore:
		return "underscore"
	case LifetimeStatic:
		return "static"
	default:
		return "unknown"
	}
}

// LifetimeName is the resolved shape of a lifetime reference.
type LifetimeName struct {
	Kind  LifetimeNameKind
	Param ParamName // LifetimeParam
}

// Ident returns the name as it would be printed.
func (n LifetimeName) Ident() Ident {
	switch n.Kind {
	case LifetimeImplicit, LifetimeImplicitObjectDefault, LifetimeError:
		return Ident{}
	case LifetimeUnderscore:
		return IdentWithDummySpan(KwUnderscoreLifetime)
	case LifetimeStatic:
		return IdentWithDummySpan(KwStaticLifetime)
	case LifetimeParam:
		return n.Param.Name()
	default:
		panic(&InvariantError{Op: "unknown lifetime name kind " + n.Kind.String()})
	}
}

// IsElided reports whether the lifetime was not written by the user.
func (n LifetimeName) IsElided() bool {
	switch n.Kind {
	case LifetimeImplicitObjectDefault, LifetimeImplicit, LifetimeUnderscore:
		return true
	case LifetimeParam:
		// fresh names stand in for `'_` in impl headers
		return n.Param.Kind == ParamFresh
	default:
		return false
	}
}

// IsStatic reports whether the lifetime is `'static`.
func (n LifetimeName) IsStatic() bool { return n.Kind == LifetimeStatic }

// Modern normalises a parameter name; other kinds are returned as is.
func (n LifetimeName) Modern() LifetimeName {
	if n.Kind == LifetimeParam {
		n.Param = n.Param.Modern()
	}
	return n
}

// Lifetime is a lifetime reference.
type Lifetime struct {
	ID   HirID
	Span source.Span
	Name LifetimeName
}

// IsElided reports whether the lifetime was not written by the user.
func (l *Lifetime) IsElided() bool { return l.Name.IsElided() }

// IsStatic reports whether the lifetime is `'static`.
func (l *Lifetime) IsStatic() bool { return l.Name.IsStatic() }

func (l *Lifetime) String() string {
	if id := l.Name.Ident(); !id.IsEmpty() {
		return id.Name
	}
	return "'_"
}

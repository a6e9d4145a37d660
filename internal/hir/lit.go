package hir

import (
	"strconv"

	"oxbow/internal/source"
)

// LitKind discriminates literal values.
type LitKind uint8

const (
	LitStr LitKind = iota
	LitByteStr
	LitByte
	LitChar
	LitInt
	LitFloat
	LitBool
	// LitErr is a literal that failed to lower; its Symbol keeps the text.
	LitErr
)

func (k LitKind) String() string {
	switch k {
	case LitStr:
		return "str"
	case LitByteStr:
		return "byte_str"
	case LitByte:
		return "byte"
	case LitChar:
		return "char"
	case LitInt:
		return "int"
	case LitFloat:
		return "float"
	case LitBool:
		return "bool"
	case LitErr:
		return "err"
	default:
		return "unknown"
	}
}

// LitIntKind tells whether an integer literal carries a suffix.
type LitIntKind uint8

const (
	IntUnsuffixed LitIntKind = iota
	IntSigned
	IntUnsigned
)

// LitIntType is the suffix of an integer literal.
type LitIntType struct {
	Kind LitIntKind
	Int  IntTy  // IntSigned
	Uint UintTy // IntUnsigned
}

// Lit is a literal expression or pattern.
type Lit struct {
	Span source.Span
	Kind LitKind

	// Symbol holds the textual value for Str, Float and Err literals.
	Symbol string
	// Style records the quoting of Str literals.
	Style StrStyle

	Bytes []byte     // ByteStr
	Byte  uint8      // Byte
	Char  rune       // Char
	Int   uint64     // Int; the sign lives in an enclosing negation
	IntTy LitIntType // Int
	Float FloatTyOpt // Float suffix
	Bool  bool       // Bool
}

// FloatTyOpt is the optional suffix of a float literal.
type FloatTyOpt struct {
	Suffixed bool
	Ty       FloatTy
}

// IsNumeric reports whether the literal is an int or float.
func (l *Lit) IsNumeric() bool {
	return l.Kind == LitInt || l.Kind == LitFloat
}

func (l *Lit) String() string {
	switch l.Kind {
	case LitStr:
		return strconv.Quote(l.Symbol)
	case LitByteStr:
		return "b" + strconv.Quote(string(l.Bytes))
	case LitByte:
		return "b" + strconv.QuoteRune(rune(l.Byte))
	case LitChar:
		return strconv.QuoteRune(l.Char)
	case LitInt:
		s := strconv.FormatUint(l.Int, 10)
		switch l.IntTy.Kind {
		case IntSigned:
			s += l.IntTy.Int.String()
		case IntUnsigned:
			s += l.IntTy.Uint.String()
		}
		return s
	case LitFloat:
		if l.Float.Suffixed {
			return l.Symbol + l.Float.Ty.String()
		}
		return l.Symbol
	case LitBool:
		return strconv.FormatBool(l.Bool)
	case LitErr:
		return l.Symbol
	default:
		return "<lit?>"
	}
}

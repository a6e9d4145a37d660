package hir

import (
	"oxbow/internal/source"
)

// BinOpKind enumerates binary operators.
type BinOpKind uint8

const (
	BinAdd BinOpKind = iota
	BinSub
	BinMul
	BinDiv
	BinRem
	BinAnd // &&
	BinOr  // ||
	BinBitXor
	BinBitAnd
	BinBitOr
	BinShl
	BinShr
	BinEq
	BinLt
	BinLe
	BinNe
	BinGe
	BinGt
)

var binOpStrings = [...]string{
	BinAdd:    "+",
	BinSub:    "-",
	BinMul:    "*",
	BinDiv:    "/",
	BinRem:    "%",
	BinAnd:    "&&",
	BinOr:     "||",
	BinBitXor: "^",
	BinBitAnd: "&",
	BinBitOr:  "|",
	BinShl:    "<<",
	BinShr:    ">>",
	BinEq:     "==",
	BinLt:     "<",
	BinLe:     "<=",
	BinNe:     "!=",
	BinGe:     ">=",
	BinGt:     ">",
}

func (k BinOpKind) String() string {
	if int(k) < len(binOpStrings) {
		return binOpStrings[k]
	}
	return "?"
}

// IsLazy reports whether the right operand may not be evaluated.
func (k BinOpKind) IsLazy() bool { return k == BinAnd || k == BinOr }

// IsShift reports `<<` and `>>`.
func (k BinOpKind) IsShift() bool { return k == BinShl || k == BinShr }

// IsComparison reports the six comparison operators.
func (k BinOpKind) IsComparison() bool {
	switch k {
	case BinEq, BinLt, BinLe, BinNe, BinGe, BinGt:
		return true
	default:
		return false
	}
}

// IsByValue reports whether the operator takes its operands by value when
// overloaded. Comparisons take them by reference.
func (k BinOpKind) IsByValue() bool { return !k.IsComparison() }

// Precedence returns the operator's binding strength.
func (k BinOpKind) Precedence() int {
	switch k {
	case BinOr:
		return 5
	case BinAnd:
		return 6
	case BinEq, BinLt, BinLe, BinNe, BinGe, BinGt:
		return 7
	case BinBitOr:
		return 8
	case BinBitXor:
		return 9
	case BinBitAnd:
		return 10
	case BinShl, BinShr:
		return 11
	case BinAdd, BinSub:
		return 12
	case BinMul, BinDiv, BinRem:
		return 13
	default:
		panic(&InvariantError{Op: "precedence of unknown binary operator"})
	}
}

// BinOp is an operator with the span of the operator token.
type BinOp struct {
	Node BinOpKind
	Span source.Span
}

// UnOp enumerates prefix operators.
type UnOp uint8

const (
	UnDeref UnOp = iota // *
	UnNot               // !
	UnNeg               // -
)

func (op UnOp) String() string {
	switch op {
	case UnDeref:
		return "*"
	case UnNot:
		return "!"
	case UnNeg:
		return "-"
	default:
		return "?"
	}
}

// IsByValue reports whether an overloaded operator consumes its operand.
func (op UnOp) IsByValue() bool { return op == UnNeg || op == UnNot }

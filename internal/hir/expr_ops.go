package hir

import (
	"oxbow/internal/def"
)

// PrecClass is the printing precedence class of an expression.
type PrecClass uint8

const (
	PrecClosure PrecClass = iota
	PrecBreak
	PrecContinue
	PrecRet
	PrecYield
	PrecAssign
	PrecAssignOp
	PrecBinary
	PrecCast
	PrecType
	PrecBox
	PrecAddrOf
	PrecUnary
	PrecCall
	PrecMethodCall
	PrecField
	PrecIndex
	PrecInlineAsm
	PrecArray
	PrecRepeat
	PrecTup
	PrecLit
	PrecPath
	PrecLoop
	PrecMatch
	PrecBlock
	PrecStruct
	PrecErr
)

// Precedence bands shared by several classes.
const (
	PrecJump    = -30
	PrecPrefix  = 50
	PrecPostfix = 60
	PrecParen   = 99
)

// ExprPrecedence is the precedence class of an expression; Op is set for
// PrecBinary.
type ExprPrecedence struct {
	Class PrecClass
	Op    BinOpKind
}

// Order returns the binding strength used when deciding whether a
// subexpression needs parentheses. Higher binds tighter.
func (p ExprPrecedence) Order() int {
	switch p.Class {
	case PrecClosure:
		return -40
	case PrecBreak, PrecContinue, PrecRet, PrecYield:
		return PrecJump
	case PrecAssign, PrecAssignOp:
		return 2
	case PrecBinary:
		return p.Op.Precedence()
	case PrecCast, PrecType:
		return 14
	case PrecBox, PrecAddrOf, PrecUnary:
		return PrecPrefix
	case PrecCall, PrecMethodCall, PrecField, PrecIndex, PrecInlineAsm:
		return PrecPostfix
	case PrecArray, PrecRepeat, PrecTup, PrecLit, PrecPath, PrecLoop,
		PrecMatch, PrecBlock, PrecStruct, PrecErr:
		return PrecParen
	default:
		panic(&InvariantError{Op: "order of unknown precedence class"})
	}
}

// Precedence classifies e for printing. DropTemps is transparent.
func (e *Expr) Precedence() ExprPrecedence {
	switch e.Kind {
	case ExprBox:
		return ExprPrecedence{Class: PrecBox}
	case ExprArray:
		return ExprPrecedence{Class: PrecArray}
	case ExprCall:
		return ExprPrecedence{Class: PrecCall}
	case ExprMethodCall:
		return ExprPrecedence{Class: PrecMethodCall}
	case ExprTup:
		return ExprPrecedence{Class: PrecTup}
	case ExprBinary:
		return ExprPrecedence{Class: PrecBinary, Op: e.Data.(BinaryData).Op.Node}
	case ExprUnary:
		return ExprPrecedence{Class: PrecUnary}
	case ExprLit:
		return ExprPrecedence{Class: PrecLit}
	case ExprCast:
		return ExprPrecedence{Class: PrecCast}
	case ExprType:
		return ExprPrecedence{Class: PrecType}
	case ExprDropTemps:
		return e.Data.(DropTempsData).Inner.Precedence()
	case ExprLoop:
		return ExprPrecedence{Class: PrecLoop}
	case ExprMatch:
		return ExprPrecedence{Class: PrecMatch}
	case ExprClosure:
		return ExprPrecedence{Class: PrecClosure}
	case ExprBlock:
		return ExprPrecedence{Class: PrecBlock}
	case ExprAssign:
		return ExprPrecedence{Class: PrecAssign}
	case ExprAssignOp:
		return ExprPrecedence{Class: PrecAssignOp}
	case ExprField:
		return ExprPrecedence{Class: PrecField}
	case ExprIndex:
		return ExprPrecedence{Class: PrecIndex}
	case ExprPath:
		return ExprPrecedence{Class: PrecPath}
	case ExprAddrOf:
		return ExprPrecedence{Class: PrecAddrOf}
	case ExprBreak:
		return ExprPrecedence{Class: PrecBreak}
	case ExprContinue:
		return ExprPrecedence{Class: PrecContinue}
	case ExprRet:
		return ExprPrecedence{Class: PrecRet}
	case ExprInlineAsm:
		return ExprPrecedence{Class: PrecInlineAsm}
	case ExprStruct:
		return ExprPrecedence{Class: PrecStruct}
	case ExprRepeat:
		return ExprPrecedence{Class: PrecRepeat}
	case ExprYield:
		return ExprPrecedence{Class: PrecYield}
	case ExprErr:
		return ExprPrecedence{Class: PrecErr}
	default:
		panic(&InvariantError{Op: "precedence of unknown expression kind " + e.Kind.String(), ID: e.ID.String()})
	}
}

// IsSyntacticPlaceExpr reports whether e denotes a memory location
// syntactically, admitting projections from any base.
func (e *Expr) IsSyntacticPlaceExpr() bool {
	return e.IsPlaceExpr(func(*Expr) bool { return true })
}

// IsPlaceExpr reports whether e denotes a memory location rather than a
// value. Field and index projections are places when allowProjectionsFrom
// admits their base or the base is itself a place.
func (e *Expr) IsPlaceExpr(allowProjectionsFrom func(*Expr) bool) bool {
	switch e.Kind {
	case ExprPath:
		q := e.Data.(PathData).QPath
		if q.Kind != QPathResolved {
			return false
		}
		switch res := q.Path.Res; res.Kind {
		case ResLocal, ResErr:
			return true
		case ResDef:
			return res.DefKind == def.KindStatic
		default:
			return false
		}
	case ExprType:
		return e.Data.(CastData).Expr.IsPlaceExpr(allowProjectionsFrom)
	case ExprUnary:
		return e.Data.(UnaryData).Op == UnDeref
	case ExprField:
		base := e.Data.(FieldData).Base
		return allowProjectionsFrom(base) || base.IsPlaceExpr(allowProjectionsFrom)
	case ExprIndex:
		base := e.Data.(IndexData).Base
		return allowProjectionsFrom(base) || base.IsPlaceExpr(allowProjectionsFrom)
	case ExprBox, ExprArray, ExprCall, ExprMethodCall, ExprTup, ExprBinary,
		ExprLit, ExprCast, ExprDropTemps, ExprLoop, ExprMatch, ExprClosure,
		ExprBlock, ExprAssign, ExprAssignOp, ExprAddrOf, ExprBreak,
		ExprContinue, ExprRet, ExprInlineAsm, ExprStruct, ExprRepeat,
		ExprYield, ExprErr:
		return false
	default:
		panic(&InvariantError{Op: "place check of unknown expression kind " + e.Kind.String(), ID: e.ID.String()})
	}
}

// PeelDropTemps strips any number of DropTemps wrappers.
func (e *Expr) PeelDropTemps() *Expr {
	for e.Kind == ExprDropTemps {
		e = e.Data.(DropTempsData).Inner
	}
	return e
}

package hir

import (
	"oxbow/internal/source"
)

// StmtKind enumerates statement kinds.
type StmtKind uint8

const (
	// StmtLocal is a `let` binding.
	StmtLocal StmtKind = iota
	// StmtItem is an item declared inside a block; only its id is kept.
	StmtItem
	// StmtExpr is a trailing-semicolon-free expression, `if c { }`.
	StmtExpr
	// StmtSemi is an expression followed by `;`.
	StmtSemi
)

// String returns a human-readable name for the statement kind.
func (k StmtKind) String() string {
	switch k {
	case StmtLocal:
		return "Local"
	case StmtItem:
		return "Item"
	case StmtExpr:
		return "Expr"
	case StmtSemi:
		return "Semi"
	default:
		return "Unknown"
	}
}

// Stmt is a statement inside a block.
type Stmt struct {
	ID    HirID
	Kind  StmtKind
	Local *Local // StmtLocal
	Item  ItemID // StmtItem
	Expr  *Expr  // StmtExpr, StmtSemi
	Span  source.Span
}

// Attrs returns the attributes of the statement's content. Items keep
// their attributes on the item itself.
func (s *Stmt) Attrs() []Attribute {
	switch s.Kind {
	case StmtLocal:
		return s.Local.Attrs
	case StmtItem:
		return nil
	case StmtExpr, StmtSemi:
		return s.Expr.Attrs
	default:
		panic(&InvariantError{Op: "attrs of unknown statement kind", ID: s.ID.String()})
	}
}

// LocalSource records where a `let` came from.
type LocalSource uint8

const (
	// LocalNormal is a `let` written by the user.
	LocalNormal LocalSource = iota
	// LocalForLoopDesugar is the binding of a `for` loop pattern.
	LocalForLoopDesugar
	// LocalAsyncFn is a parameter moved into the body of an async fn.
	LocalAsyncFn
	// LocalAwaitDesugar is the pinned future of an `.await`.
	LocalAwaitDesugar
)

// Local is `let pat: ty = init;`.
type Local struct {
	Pat    *Pat
	Ty     *Ty   // optional
	Init   *Expr // optional
	ID     HirID
	Span   source.Span
	Attrs  []Attribute
	Source LocalSource
}

// BlockCheckMode is the safety context of a block.
type BlockCheckMode uint8

const (
	DefaultBlock BlockCheckMode = iota
	UnsafeBlockUser
	UnsafeBlockCompilerGenerated
	PushUnsafeBlock
	PopUnsafeBlock
)

// Block is `{ stmts; expr }`.
type Block struct {
	Stmts []Stmt
	Expr  *Expr // trailing expression, optional
	ID    HirID
	Rules BlockCheckMode
	Span  source.Span
	// TargetedByBreak is set when a labelled `break` leaves this block.
	TargetedByBreak bool
}

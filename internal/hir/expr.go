package hir

import (
	"oxbow/internal/source"
)

// ExprKind enumerates expression kinds.
// Sugar such as `for`, `while`, `if let`, `?` and `.await` is already
// rewritten into Loop and Match; the source tag on those records what was
// written.
type ExprKind uint8

const (
	// ExprBox is `box expr`.
	ExprBox ExprKind = iota
	// ExprArray is `[a, b, c]`.
	ExprArray
	// ExprCall is `f(args)`; also tuple struct and variant constructors.
	ExprCall
	// ExprMethodCall is `recv.method::<T>(args)`.
	ExprMethodCall
	// ExprTup is `(a, b)`.
	ExprTup
	// ExprBinary is `a + b`.
	ExprBinary
	// ExprUnary is `-a`, `!a`, `*a`.
	ExprUnary
	// ExprLit is a literal.
	ExprLit
	// ExprCast is `expr as T`.
	ExprCast
	// ExprType is a type ascription, `expr: T`.
	ExprType
	// ExprDropTemps runs the destructors of temporaries created by its
	// operand before the enclosing expression continues.
	ExprDropTemps
	// ExprLoop is `loop { }`, and the lowering of while and for.
	ExprLoop
	// ExprMatch is `match`, and the lowering of if, if let, ? and await.
	ExprMatch
	// ExprClosure is `|args| body`.
	ExprClosure
	// ExprBlock is `{ }`, possibly labelled.
	ExprBlock
	// ExprAssign is `a = b`.
	ExprAssign
	// ExprAssignOp is `a += b`.
	ExprAssignOp
	// ExprField is `expr.name` or `expr.0`.
	ExprField
	// ExprIndex is `expr[index]`.
	ExprIndex
	// ExprPath is a path to a local, item or associated value.
	ExprPath
	// ExprAddrOf is `&a`, `&mut a`, `&raw const a`.
	ExprAddrOf
	// ExprBreak is `break 'label value`.
	ExprBreak
	// ExprContinue is `continue 'label`.
	ExprContinue
	// ExprRet is `return value`.
	ExprRet
	// ExprInlineAsm is `asm!(..)`.
	ExprInlineAsm
	// ExprStruct is `Path { field: value, ..base }`.
	ExprStruct
	// ExprRepeat is `[value; count]`.
	ExprRepeat
	// ExprYield is `yield value`, and the suspension point of `.await`.
	ExprYield
	// ExprErr is an expression that failed to lower.
	ExprErr
)

// String returns a human-readable name for the expression kind.
func (k ExprKind) String() string {
	switch k {
	case ExprBox:
		return "Box"
	case ExprArray:
		return "Array"
	case ExprCall:
		return "Call"
	case ExprMethodCall:
		return "MethodCall"
	case ExprTup:
		return "Tup"
	case ExprBinary:
		return "Binary"
	case ExprUnary:
		return "Unary"
	case ExprLit:
		return "Lit"
	case ExprCast:
		return "Cast"
	case ExprType:
		return "Type"
	case ExprDropTemps:
		return "DropTemps"
	case ExprLoop:
		return "Loop"
	case ExprMatch:
		return "Match"
	case ExprClosure:
		return "Closure"
	case ExprBlock:
		return "Block"
	case ExprAssign:
		return "Assign"
	case ExprAssignOp:
		return "AssignOp"
	case ExprField:
		return "Field"
	case ExprIndex:
		return "Index"
	case ExprPath:
		return "Path"
	case ExprAddrOf:
		return "AddrOf"
	case ExprBreak:
		return "Break"
	case ExprContinue:
		return "Continue"
	case ExprRet:
		return "Ret"
	case ExprInlineAsm:
		return "InlineAsm"
	case ExprStruct:
		return "Struct"
	case ExprRepeat:
		return "Repeat"
	case ExprYield:
		return "Yield"
	case ExprErr:
		return "Err"
	default:
		return "Unknown"
	}
}

// Expr is an expression node.
type Expr struct {
	ID    HirID
	Kind  ExprKind
	Data  ExprData // nil for Err
	Attrs []Attribute
	Span  source.Span
}

// ExprData is the kind-specific payload of an Expr.
type ExprData interface {
	exprData()
}

// BoxData holds data for ExprBox.
type BoxData struct {
	Inner *Expr
}

func (BoxData) exprData() {}

// ArrayData holds data for ExprArray.
type ArrayData struct {
	Elems []*Expr
}

func (ArrayData) exprData() {}

// CallData holds data for ExprCall.
type CallData struct {
	Callee *Expr
	Args   []*Expr
}

func (CallData) exprData() {}

// MethodCallData holds data for ExprMethodCall. Args[0] is the receiver.
type MethodCallData struct {
	Segment PathSegment
	// Span of the method name and its arguments, without the receiver.
	Span source.Span
	Args []*Expr
}

func (MethodCallData) exprData() {}

// TupData holds data for ExprTup.
type TupData struct {
	Elems []*Expr
}

func (TupData) exprData() {}

// BinaryData holds data for ExprBinary and ExprAssignOp.
type BinaryData struct {
	Op    BinOp
	Left  *Expr
	Right *Expr
}

func (BinaryData) exprData() {}

// UnaryData holds data for ExprUnary.
type UnaryData struct {
	Op      UnOp
	Operand *Expr
}

func (UnaryData) exprData() {}

// LitData holds data for ExprLit.
type LitData struct {
	Lit Lit
}

func (LitData) exprData() {}

// CastData holds data for ExprCast and ExprType.
type CastData struct {
	Expr *Expr
	Ty   *Ty
}

func (CastData) exprData() {}

// DropTempsData holds data for ExprDropTemps.
type DropTempsData struct {
	Inner *Expr
}

func (DropTempsData) exprData() {}

// LoopSource records the surface syntax a loop was lowered from.
type LoopSource uint8

const (
	LoopPlain LoopSource = iota
	LoopWhile
	LoopWhileLet
	LoopForLoop
)

// Name returns the keyword for diagnostics.
func (s LoopSource) Name() string {
	switch s {
	case LoopPlain:
		return "loop"
	case LoopWhile, LoopWhileLet:
		return "while"
	case LoopForLoop:
		return "for"
	default:
		return "loop"
	}
}

// LoopData holds data for ExprLoop.
type LoopData struct {
	Body   *Block
	Label  *Label
	Source LoopSource
}

func (LoopData) exprData() {}

// MatchSourceKind records the surface syntax a match was lowered from.
type MatchSourceKind uint8

const (
	MatchNormal MatchSourceKind = iota
	MatchIfDesugar
	MatchIfLetDesugar
	MatchWhileDesugar
	MatchWhileLetDesugar
	MatchForLoopDesugar
	MatchTryDesugar
	MatchAwaitDesugar
)

// MatchSource is the origin of a match. ContainsElse is set for `if let`
// with an `else` branch.
type MatchSource struct {
	Kind         MatchSourceKind
	ContainsElse bool
}

// Name returns the keyword for diagnostics.
func (s MatchSource) Name() string {
	switch s.Kind {
	case MatchNormal:
		return "match"
	case MatchIfDesugar, MatchIfLetDesugar:
		return "if"
	case MatchWhileDesugar, MatchWhileLetDesugar:
		return "while"
	case MatchForLoopDesugar:
		return "for"
	case MatchTryDesugar:
		return "?"
	case MatchAwaitDesugar:
		return ".await"
	default:
		return "match"
	}
}

// GuardKind discriminates arm guards.
type GuardKind uint8

const (
	GuardIf GuardKind = iota
)

// Guard is the `if cond` of a match arm.
type Guard struct {
	Kind GuardKind
	Expr *Expr
}

// Arm is one arm of a match.
type Arm struct {
	ID    HirID
	Span  source.Span
	Attrs []Attribute
	Pat   *Pat
	Guard *Guard
	Body  *Expr
}

// MatchData holds data for ExprMatch.
type MatchData struct {
	Scrutinee *Expr
	Arms      []Arm
	Source    MatchSource
}

func (MatchData) exprData() {}

// ClosureData holds data for ExprClosure. Movability is set for generator
// closures only.
type ClosureData struct {
	CaptureBy  CaptureBy
	Decl       *FnDecl
	Body       BodyID
	DeclSpan   source.Span
	Movability *Movability
}

func (ClosureData) exprData() {}

// BlockData holds data for ExprBlock.
type BlockData struct {
	Block *Block
	Label *Label
}

func (BlockData) exprData() {}

// AssignData holds data for ExprAssign.
type AssignData struct {
	Lhs *Expr
	Rhs *Expr
}

func (AssignData) exprData() {}

// FieldData holds data for ExprField.
type FieldData struct {
	Base  *Expr
	Ident Ident
}

func (FieldData) exprData() {}

// IndexData holds data for ExprIndex.
type IndexData struct {
	Base  *Expr
	Index *Expr
}

func (IndexData) exprData() {}

// PathData holds data for ExprPath.
type PathData struct {
	QPath QPath
}

func (PathData) exprData() {}

// AddrOfData holds data for ExprAddrOf.
type AddrOfData struct {
	Kind    BorrowKind
	Mutbl   Mutability
	Operand *Expr
}

func (AddrOfData) exprData() {}

// LoopIDError explains why a break or continue has no target.
type LoopIDError uint8

const (
	LoopIDOk LoopIDError = iota
	OutsideLoopScope
	UnlabeledCfInWhileCondition
	UnresolvedLabel
)

func (e LoopIDError) Error() string {
	switch e {
	case OutsideLoopScope:
		return "not inside loop scope"
	case UnlabeledCfInWhileCondition:
		return "unlabeled control flow (break or continue) in while condition"
	case UnresolvedLabel:
		return "label not found"
	default:
		return "ok"
	}
}

// Destination is the target of a break or continue.
type Destination struct {
	Label *Label
	// TargetID is the loop or labelled block; meaningful when Err is
	// LoopIDOk.
	TargetID HirID
	Err      LoopIDError
}

// Target returns the target id, or the reason there is none.
func (d Destination) Target() (HirID, error) {
	if d.Err != LoopIDOk {
		return HirID{}, d.Err
	}
	return d.TargetID, nil
}

// BreakData holds data for ExprBreak.
type BreakData struct {
	Dest  Destination
	Value *Expr
}

func (BreakData) exprData() {}

// ContinueData holds data for ExprContinue.
type ContinueData struct {
	Dest Destination
}

func (ContinueData) exprData() {}

// RetData holds data for ExprRet.
type RetData struct {
	Value *Expr
}

func (RetData) exprData() {}

// InlineAsmOutput is one output operand of an asm block.
type InlineAsmOutput struct {
	Constraint string
	IsRW       bool
	IsIndirect bool
	Span       source.Span
}

// InlineAsmInner is the template and options of an asm block.
type InlineAsmInner struct {
	Asm         string
	AsmStrStyle StrStyle
	Outputs     []InlineAsmOutput
	Inputs      []string
	Clobbers    []string
	Volatile    bool
	AlignStack  bool
	Dialect     AsmDialect
}

// InlineAsmData holds data for ExprInlineAsm.
type InlineAsmData struct {
	Inner   InlineAsmInner
	Outputs []*Expr
	Inputs  []*Expr
}

func (InlineAsmData) exprData() {}

// Field is `name: value` inside a struct expression.
type Field struct {
	ID          HirID
	Ident       Ident
	Expr        *Expr
	Span        source.Span
	IsShorthand bool
}

// StructData holds data for ExprStruct.
type StructData struct {
	QPath  QPath
	Fields []Field
	Base   *Expr // `..base`, optional
}

func (StructData) exprData() {}

// RepeatData holds data for ExprRepeat.
type RepeatData struct {
	Elem  *Expr
	Count AnonConst
}

func (RepeatData) exprData() {}

// YieldSource records whether a yield was written or comes from `.await`.
type YieldSource uint8

const (
	YieldPlain YieldSource = iota
	YieldAwait
)

func (s YieldSource) String() string {
	if s == YieldAwait {
		return "`await`"
	}
	return "`yield`"
}

// YieldData holds data for ExprYield.
type YieldData struct {
	Value  *Expr
	Source YieldSource
}

func (YieldData) exprData() {}

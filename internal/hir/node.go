package hir

// NodeKind tells which concrete type a Node holds.
type NodeKind uint8

const (
	NodeCrate NodeKind = iota
	NodeItem
	NodeForeignItem
	NodeTraitItem
	NodeImplItem
	NodeMacroDef
	NodeVariant
	NodeCtor
	NodeStructField
	NodeVisibility
	NodeGenerics
	NodeGenericParam
	NodeWherePredicate
	NodeGenericBound
	NodePolyTraitRef
	NodeTraitRef
	NodePath
	NodePathSegment
	NodeTypeBinding
	NodeLifetime
	NodeTy
	NodeAnonConst
	NodeBody
	NodeParam
	NodeExpr
	NodeField
	NodeArm
	NodeBlock
	NodeStmt
	NodeLocal
	NodePat
	NodeBinding
	NodeFieldPat
)

var nodeKindNames = [...]string{
	NodeCrate:          "Crate",
	NodeItem:           "Item",
	NodeForeignItem:    "ForeignItem",
	NodeTraitItem:      "TraitItem",
	NodeImplItem:       "ImplItem",
	NodeMacroDef:       "MacroDef",
	NodeVariant:        "Variant",
	NodeCtor:           "Ctor",
	NodeStructField:    "StructField",
	NodeVisibility:     "Visibility",
	NodeGenerics:       "Generics",
	NodeGenericParam:   "GenericParam",
	NodeWherePredicate: "WherePredicate",
	NodeGenericBound:   "GenericBound",
	NodePolyTraitRef:   "PolyTraitRef",
	NodeTraitRef:       "TraitRef",
	NodePath:           "Path",
	NodePathSegment:    "PathSegment",
	NodeTypeBinding:    "TypeBinding",
	NodeLifetime:       "Lifetime",
	NodeTy:             "Ty",
	NodeAnonConst:      "AnonConst",
	NodeBody:           "Body",
	NodeParam:          "Param",
	NodeExpr:           "Expr",
	NodeField:          "Field",
	NodeArm:            "Arm",
	NodeBlock:          "Block",
	NodeStmt:           "Stmt",
	NodeLocal:          "Local",
	NodePat:            "Pat",
	NodeBinding:        "Binding",
	NodeFieldPat:       "FieldPat",
}

// NumNodeKinds sizes per-kind tables.
const NumNodeKinds = len(nodeKindNames)

func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return "Unknown"
}

// Node is any HIR node a Visitor can be handed. Implementations are the
// pointer types of the nodes listed in NodeKind.
type Node interface {
	NodeKind() NodeKind
}

func (*Crate) NodeKind() NodeKind          { return NodeCrate }
func (*Item) NodeKind() NodeKind           { return NodeItem }
func (*ForeignItem) NodeKind() NodeKind    { return NodeForeignItem }
func (*TraitItem) NodeKind() NodeKind      { return NodeTraitItem }
func (*ImplItem) NodeKind() NodeKind       { return NodeImplItem }
func (*MacroDef) NodeKind() NodeKind       { return NodeMacroDef }
func (*Variant) NodeKind() NodeKind        { return NodeVariant }
func (*VariantData) NodeKind() NodeKind    { return NodeCtor }
func (*StructField) NodeKind() NodeKind    { return NodeStructField }
func (*Visibility) NodeKind() NodeKind     { return NodeVisibility }
func (*Generics) NodeKind() NodeKind       { return NodeGenerics }
func (*GenericParam) NodeKind() NodeKind   { return NodeGenericParam }
func (*WherePredicate) NodeKind() NodeKind { return NodeWherePredicate }
func (*GenericBound) NodeKind() NodeKind   { return NodeGenericBound }
func (*PolyTraitRef) NodeKind() NodeKind   { return NodePolyTraitRef }
func (*TraitRef) NodeKind() NodeKind       { return NodeTraitRef }
func (*Path) NodeKind() NodeKind           { return NodePath }
func (*PathSegment) NodeKind() NodeKind    { return NodePathSegment }
func (*TypeBinding) NodeKind() NodeKind    { return NodeTypeBinding }
func (*Lifetime) NodeKind() NodeKind       { return NodeLifetime }
func (*Ty) NodeKind() NodeKind             { return NodeTy }
func (*AnonConst) NodeKind() NodeKind      { return NodeAnonConst }
func (*Body) NodeKind() NodeKind           { return NodeBody }
func (*Param) NodeKind() NodeKind          { return NodeParam }
func (*Expr) NodeKind() NodeKind           { return NodeExpr }
func (*Field) NodeKind() NodeKind          { return NodeField }
func (*Arm) NodeKind() NodeKind            { return NodeArm }
func (*Block) NodeKind() NodeKind          { return NodeBlock }
func (*Stmt) NodeKind() NodeKind           { return NodeStmt }
func (*Local) NodeKind() NodeKind          { return NodeLocal }
func (*FieldPat) NodeKind() NodeKind       { return NodeFieldPat }

// NodeKind reports NodeBinding for binding patterns so callers looking for
// introduced names need not inspect the pattern.
func (p *Pat) NodeKind() NodeKind {
	if p.Kind == PatBinding {
		return NodeBinding
	}
	return NodePat
}

// NodeIdent returns the name of an owner node.
func NodeIdent(n Node) (Ident, bool) {
	switch n := n.(type) {
	case *Item:
		return n.Ident, true
	case *ForeignItem:
		return n.Ident, true
	case *TraitItem:
		return n.Ident, true
	case *ImplItem:
		return n.Ident, true
	}
	return Ident{}, false
}

// NodeFnDecl returns the signature of a function-like owner, or nil.
func NodeFnDecl(n Node) *FnDecl {
	switch n := n.(type) {
	case *Item:
		if fn, ok := n.Data.(FnItem); ok {
			return fn.Sig.Decl
		}
	case *TraitItem:
		if fn, ok := n.Data.(TraitFn); ok {
			return fn.Sig.Decl
		}
	case *ImplItem:
		if fn, ok := n.Data.(ImplFn); ok {
			return fn.Sig.Decl
		}
	case *ForeignItem:
		if fn, ok := n.Data.(ForeignFn); ok {
			return fn.Decl
		}
	}
	return nil
}

// GenericsOf returns the generics of associated items and functions.
// Other generic items are reached through Item.Generics.
func GenericsOf(n Node) *Generics {
	switch n := n.(type) {
	case *TraitItem:
		return &n.Generics
	case *ImplItem:
		return &n.Generics
	case *Item:
		if fn, ok := n.Data.(FnItem); ok {
			return &fn.Generics
		}
	}
	return nil
}

package hir

import (
	"fmt"
	"reflect"

	"oxbow/internal/source"
)

// Payload types by kind. A nil entry marks a kind without payload. The
// codec decodes through these tables; Walk and Verify check nodes against
// them.

var exprPayloads = [...]ExprData{
	ExprBox:        BoxData{},
	ExprArray:      ArrayData{},
	ExprCall:       CallData{},
	ExprMethodCall: MethodCallData{},
	ExprTup:        TupData{},
	ExprBinary:     BinaryData{},
	ExprUnary:      UnaryData{},
	ExprLit:        LitData{},
	ExprCast:       CastData{},
	ExprType:       CastData{},
	ExprDropTemps:  DropTempsData{},
	ExprLoop:       LoopData{},
	ExprMatch:      MatchData{},
	ExprClosure:    ClosureData{},
	ExprBlock:      BlockData{},
	ExprAssign:     AssignData{},
	ExprAssignOp:   BinaryData{},
	ExprField:      FieldData{},
	ExprIndex:      IndexData{},
	ExprPath:       PathData{},
	ExprAddrOf:     AddrOfData{},
	ExprBreak:      BreakData{},
	ExprContinue:   ContinueData{},
	ExprRet:        RetData{},
	ExprInlineAsm:  InlineAsmData{},
	ExprStruct:     StructData{},
	ExprRepeat:     RepeatData{},
	ExprYield:      YieldData{},
	ExprErr:        nil,
}

var patPayloads = [...]PatData{
	PatWild:        nil,
	PatBinding:     BindingPat{},
	PatStruct:      StructPat{},
	PatTupleStruct: TupleStructPat{},
	PatOr:          OrPat{},
	PatPath:        PathPat{},
	PatTuple:       TuplePat{},
	PatBox:         BoxPat{},
	PatRef:         RefPat{},
	PatLit:         LitPat{},
	PatRange:       RangePat{},
	PatSlice:       SlicePat{},
}

var tyPayloads = [...]TyData{
	TySlice:       SliceTy{},
	TyArray:       ArrayTy{},
	TyPtr:         PtrTy{},
	TyRptr:        RptrTy{},
	TyBareFn:      BareFnTy{},
	TyNever:       nil,
	TyTup:         TupTy{},
	TyPath:        PathTy{},
	TyDef:         DefTy{},
	TyTraitObject: TraitObjectTy{},
	TyTypeof:      TypeofTy{},
	TyInfer:       nil,
	TyErr:         nil,
}

var itemPayloads = [...]ItemData{
	ItemExternCrate: ExternCrateItem{},
	ItemUse:         UseItem{},
	ItemStatic:      StaticItem{},
	ItemConst:       ConstItem{},
	ItemFn:          FnItem{},
	ItemMod:         Mod{},
	ItemForeignMod:  ForeignMod{},
	ItemGlobalAsm:   GlobalAsm{},
	ItemTyAlias:     TyAliasItem{},
	ItemOpaqueTy:    OpaqueTy{},
	ItemEnum:        EnumItem{},
	ItemStruct:      StructItem{},
	ItemUnion:       UnionItem{},
	ItemTrait:       Trait{},
	ItemTraitAlias:  TraitAlias{},
	ItemImpl:        Impl{},
}

var traitItemPayloads = [...]TraitItemData{
	TraitItemConst: TraitConst{},
	TraitItemFn:    TraitFn{},
	TraitItemType:  TraitType{},
}

var implItemPayloads = [...]ImplItemData{
	ImplItemConst:    ImplConst{},
	ImplItemFn:       ImplFn{},
	ImplItemTyAlias:  ImplTyAlias{},
	ImplItemOpaqueTy: ImplOpaqueTy{},
}

var foreignItemPayloads = [...]ForeignItemData{
	ForeignItemFn:     ForeignFn{},
	ForeignItemStatic: ForeignStatic{},
	ForeignItemType:   nil,
}

// payloadFits reports whether data has the payload type registered for
// kind. A kind outside the table never fits.
func payloadFits[D any](protos []D, kind int, data D) bool {
	if kind < 0 || kind >= len(protos) {
		return false
	}
	return reflect.TypeOf(protos[kind]) == reflect.TypeOf(data)
}

type payloadMismatch struct {
	ID   HirID
	Span source.Span
	What string
}

func mismatch(id HirID, sp source.Span, node string, kind fmt.Stringer, data any) payloadMismatch {
	return payloadMismatch{ID: id, Span: sp, What: fmt.Sprintf("%s of kind %s carries %T", node, kind, data)}
}

// checkPayload reports a node whose Data disagrees with its Kind. Nodes
// without a payload always pass.
func checkPayload(n Node) (payloadMismatch, bool) {
	switch n := n.(type) {
	case *Expr:
		if !payloadFits(exprPayloads[:], int(n.Kind), n.Data) {
			return mismatch(n.ID, n.Span, "expression", n.Kind, n.Data), false
		}
	case *Pat:
		if !payloadFits(patPayloads[:], int(n.Kind), n.Data) {
			return mismatch(n.ID, n.Span, "pattern", n.Kind, n.Data), false
		}
	case *Ty:
		if !payloadFits(tyPayloads[:], int(n.Kind), n.Data) {
			return mismatch(n.ID, n.Span, "type", n.Kind, n.Data), false
		}
	case *Item:
		if !payloadFits(itemPayloads[:], int(n.Kind), n.Data) {
			return mismatch(n.ID, n.Span, "item", n.Kind, n.Data), false
		}
	case *TraitItem:
		if !payloadFits(traitItemPayloads[:], int(n.Kind), n.Data) {
			return mismatch(n.ID, n.Span, "trait item", n.Kind, n.Data), false
		}
	case *ImplItem:
		if !payloadFits(implItemPayloads[:], int(n.Kind), n.Data) {
			return mismatch(n.ID, n.Span, "impl item", n.Kind, n.Data), false
		}
	case *ForeignItem:
		if !payloadFits(foreignItemPayloads[:], int(n.Kind), n.Data) {
			return mismatch(n.ID, n.Span, "foreign item", n.Kind, n.Data), false
		}
	}
	return payloadMismatch{}, true
}

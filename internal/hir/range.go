package hir

import (
	"strings"

	"oxbow/internal/source"
)

// SourceMap is the part of a file set the range literal check needs.
// *source.FileSet implements it.
type SourceMap interface {
	EndPoint(span source.Span) source.Span
	Snippet(span source.Span) (string, error)
}

// IsRangeLiteral reports whether e is a desugared range literal (`a..b`,
// `..`, `a..=b`) rather than an explicit struct literal or constructor call
// of a std::ops range type.
//
// The check is a heuristic: it matches the resolved path against
// `::std::ops::Range*` or `::core::ops::Range*` and then looks at the last
// character of the source text, which is `}` or `)` only for the explicit
// forms. Anything it cannot determine yields false.
func IsRangeLiteral(sm SourceMap, e *Expr) bool {
	switch e.Kind {
	case ExprStruct:
		// all range literals but `..=` and `..` lower to struct literals
		d, ok := e.Data.(StructData)
		q := d.QPath
		if ok && q.Kind == QPathResolved && q.QSelf == nil {
			return isRangePath(q.Path) && isRangeLit(sm, e.Span)
		}
	case ExprPath:
		// `..` lowers to the path of the unit struct
		d, ok := e.Data.(PathData)
		q := d.QPath
		if ok && q.Kind == QPathResolved && q.QSelf == nil {
			return isRangePath(q.Path) && isRangeLit(sm, e.Span)
		}
	case ExprCall:
		// `..=` lowers to `::std::ops::RangeInclusive::new(lo, hi)`
		call, ok := e.Data.(CallData)
		if !ok || call.Callee == nil {
			return false
		}
		cd, ok := call.Callee.Data.(PathData)
		q := cd.QPath
		if !ok || q.Kind != QPathTypeRelative || q.QSelf == nil || q.Segment == nil {
			return false
		}
		pt, ok := q.QSelf.Data.(PathTy)
		tq := pt.QPath
		if ok && tq.Kind == QPathResolved && tq.QSelf == nil {
			return isRangePath(tq.Path) && isRangeLit(sm, e.Span) && q.Segment.Ident.Name == SymNew
		}
	}
	return false
}

func isRangePath(p *Path) bool {
	if p == nil || len(p.Segments) != 4 {
		return false
	}
	segs := p.SegmentNames()
	return segs[0] == KwPathRoot &&
		(segs[1] == SymStd || segs[1] == SymCore) &&
		segs[2] == SymOps &&
		strings.HasPrefix(segs[3], "Range")
}

func isRangeLit(sm SourceMap, span source.Span) bool {
	if sm == nil {
		return false
	}
	end, err := sm.Snippet(sm.EndPoint(span))
	if err != nil {
		return false
	}
	return !strings.HasSuffix(end, "}") && !strings.HasSuffix(end, ")")
}

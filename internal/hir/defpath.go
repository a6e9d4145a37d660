package hir

import (
	"strconv"
	"strings"

	"oxbow/internal/def"
)

// DefPath is the definition path of one owner, outermost segment first.
type DefPath struct {
	Owner    HirID
	Segments []def.PathSegment
}

func (p DefPath) String() string {
	var b strings.Builder
	for i, seg := range p.Segments {
		if i > 0 {
			b.WriteString("::")
		}
		b.WriteString(seg.Name)
		if seg.Disambiguator != 0 {
			b.WriteByte('#')
			b.WriteString(strconv.FormatUint(uint64(seg.Disambiguator), 10))
		}
	}
	return b.String()
}

// Hash fingerprints the path within crate.
func (p DefPath) Hash(crate string) def.DefPathHash {
	return def.HashDefPath(crate, p.Segments)
}

// DefPaths lists the path of every owner reachable from the root module:
// items through module item lists, trait and impl items through the refs of
// their parent, foreign items through their extern block. Output is in
// pre-order. Same-named siblings are numbered in source order. Items not
// reachable that way, such as items declared inside bodies, follow at the
// end in id order, each under the root.
func (c *Crate) DefPaths() []DefPath {
	dp := &defPather{crate: c, seen: make(map[HirID]bool)}
	dp.module(nil, c.Module)

	var rest []ItemID
	for id := range c.Items.All() {
		if !dp.seen[id.ID] {
			rest = append(rest, id)
		}
	}
	if len(rest) > 0 {
		sib := make(siblings)
		for _, id := range rest {
			dp.item(nil, sib, id)
		}
	}
	return dp.out
}

type siblings map[string]uint32

func (s siblings) next(name string) def.PathSegment {
	n := s[name]
	s[name] = n + 1
	return def.PathSegment{Name: name, Disambiguator: n}
}

type defPather struct {
	crate *Crate
	seen  map[HirID]bool
	out   []DefPath
}

func (dp *defPather) emit(parent []def.PathSegment, seg def.PathSegment, owner HirID) []def.PathSegment {
	path := make([]def.PathSegment, len(parent), len(parent)+1)
	copy(path, parent)
	path = append(path, seg)
	dp.out = append(dp.out, DefPath{Owner: owner, Segments: path})
	dp.seen[owner] = true
	return path
}

func (dp *defPather) module(parent []def.PathSegment, m Mod) {
	sib := make(siblings)
	for _, id := range m.ItemIDs {
		dp.item(parent, sib, id)
	}
}

func (dp *defPather) item(parent []def.PathSegment, sib siblings, id ItemID) {
	it, ok := dp.crate.Items.Get(id)
	if !ok || dp.seen[id.ID] {
		return
	}
	path := dp.emit(parent, sib.next(itemPathName(it)), id.ID)

	switch data := it.Data.(type) {
	case Mod:
		dp.module(path, data)
	case ForeignMod:
		inner := make(siblings)
		for i := range data.Items {
			fi := &data.Items[i]
			dp.emit(path, inner.next(fi.Ident.Name), fi.ID)
		}
	case Trait:
		inner := make(siblings)
		for _, ref := range data.Items {
			if dp.crate.TraitItems.Has(ref.ID) {
				dp.emit(path, inner.next(ref.Ident.Name), ref.ID.HirID)
			}
		}
	case Impl:
		inner := make(siblings)
		for _, ref := range data.Items {
			if dp.crate.ImplItems.Has(ref.ID) {
				dp.emit(path, inner.next(ref.Ident.Name), ref.ID.HirID)
			}
		}
	}
}

func itemPathName(it *Item) string {
	switch it.Kind {
	case ItemImpl:
		return "{impl}"
	case ItemUse:
		return "{use}"
	case ItemForeignMod:
		return "{extern}"
	case ItemGlobalAsm:
		return "{global_asm}"
	}
	if it.Ident.Name == "" {
		return "{anon}"
	}
	return it.Ident.Name
}

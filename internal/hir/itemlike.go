package hir

import (
	"context"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"

	"oxbow/internal/trace"
)

// ItemLikeVisitor is called once per owner by VisitAllItemLikes. It does
// not descend into the owner; pair it with DeepVisitor for that.
type ItemLikeVisitor interface {
	VisitItem(it *Item)
	VisitTraitItem(ti *TraitItem)
	VisitImplItem(ii *ImplItem)
}

// ParItemLikeVisitor is an ItemLikeVisitor whose methods may be called from
// several goroutines at once. Implementations must synchronise any state
// they share between calls.
type ParItemLikeVisitor interface {
	VisitItem(it *Item)
	VisitTraitItem(ti *TraitItem)
	VisitImplItem(ii *ImplItem)
}

// ItemLikeFuncs adapts plain functions to both visitor interfaces. Nil
// fields are skipped.
type ItemLikeFuncs struct {
	Item      func(*Item)
	TraitItem func(*TraitItem)
	ImplItem  func(*ImplItem)
}

func (f ItemLikeFuncs) VisitItem(it *Item) {
	if f.Item != nil {
		f.Item(it)
	}
}

func (f ItemLikeFuncs) VisitTraitItem(ti *TraitItem) {
	if f.TraitItem != nil {
		f.TraitItem(ti)
	}
}

func (f ItemLikeFuncs) VisitImplItem(ii *ImplItem) {
	if f.ImplItem != nil {
		f.ImplItem(ii)
	}
}

// VisitAllItemLikes calls v for every item, then every trait item, then
// every impl item, each group in id order. The order is deterministic.
func (c *Crate) VisitAllItemLikes(v ItemLikeVisitor) {
	for _, it := range c.Items.All() {
		v.VisitItem(it)
	}
	for _, ti := range c.TraitItems.All() {
		v.VisitTraitItem(ti)
	}
	for _, ii := range c.ImplItems.All() {
		v.VisitImplItem(ii)
	}
}

// ParVisitAllItemLikes calls v for every owner like VisitAllItemLikes, but
// spreads the work over at most jobs goroutines (GOMAXPROCS when jobs is not
// positive). Each of the three maps is split into contiguous partitions and
// all partitions run in one errgroup, so the three groups overlap. No call
// order is guaranteed.
//
// Cancellation is checked before each partition starts; a cancelled ctx
// makes the call return ctx's error with the remaining partitions skipped.
func (c *Crate) ParVisitAllItemLikes(ctx context.Context, jobs int, v ParItemLikeVisitor) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopePass, "par_visit_item_likes", trace.CurrentSpan(ctx).SpanID)
	span.WithExtra("jobs", strconv.Itoa(jobs))
	defer span.End("")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	schedule := func(name string, n int, visit func(i int)) {
		for _, p := range partitions(n, jobs) {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				ps := trace.Begin(tracer, trace.ScopeOwner, name, span.ID())
				for i := p.lo; i < p.hi; i++ {
					visit(i)
				}
				ps.WithExtra("count", strconv.Itoa(p.hi-p.lo)).End("")
				return nil
			})
		}
	}

	schedule("items", c.Items.Len(), func(i int) {
		_, it := c.Items.At(i)
		v.VisitItem(it)
	})
	schedule("trait_items", c.TraitItems.Len(), func(i int) {
		_, ti := c.TraitItems.At(i)
		v.VisitTraitItem(ti)
	})
	schedule("impl_items", c.ImplItems.Len(), func(i int) {
		_, ii := c.ImplItems.At(i)
		v.VisitImplItem(ii)
	})

	return g.Wait()
}

type partition struct{ lo, hi int }

// partitions splits [0, n) into at most parts contiguous, non-empty ranges
// whose sizes differ by at most one.
func partitions(n, parts int) []partition {
	if n <= 0 {
		return nil
	}
	parts = max(1, min(parts, n))
	out := make([]partition, 0, parts)
	size, extra := n/parts, n%parts
	lo := 0
	for i := range parts {
		hi := lo + size
		if i < extra {
			hi++
		}
		out = append(out, partition{lo: lo, hi: hi})
		lo = hi
	}
	return out
}

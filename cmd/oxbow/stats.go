package main

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"oxbow/internal/hir"
)

var statsCmd = &cobra.Command{
	Use:   "stats [flags] <crate.mp>",
	Short: "Count the nodes of a serialized crate, visiting owners in parallel",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) (err error) {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer func() { s.close(err) }()

	c, _, err := s.loadCrate(args[0])
	if err != nil {
		return err
	}
	done := s.timer.Track("stats")
	st, err := collectStats(cmd.Context(), c, s.jobs)
	if err != nil {
		done("cancelled")
		return err
	}
	done(fmt.Sprintf("%d nodes", st.total()))
	fmt.Fprintln(cmd.OutOrStdout(), renderStats(st, s.color))
	return nil
}

// nodeCounter is a hir.Visitor shared by every worker.
type nodeCounter struct {
	kinds [hir.NumNodeKinds]atomic.Int64
}

func (n *nodeCounter) Visit(node hir.Node) hir.Visitor {
	if node == nil {
		return nil
	}
	n.kinds[node.NodeKind()].Add(1)
	return n
}

type crateStats struct {
	items, traitItems, implItems int64
	bodies                       int
	nodes                        [hir.NumNodeKinds]int64
}

func (st *crateStats) total() int64 {
	var n int64
	for _, c := range st.nodes {
		n += c
	}
	return n
}

func collectStats(ctx context.Context, c *hir.Crate, jobs int) (*crateStats, error) {
	var counter nodeCounter
	var items, traitItems, implItems atomic.Int64
	v := hir.ItemLikeFuncs{
		Item: func(it *hir.Item) {
			items.Add(1)
			hir.WalkBodies(c, &counter, it)
		},
		TraitItem: func(ti *hir.TraitItem) {
			traitItems.Add(1)
			hir.WalkBodies(c, &counter, ti)
		},
		ImplItem: func(ii *hir.ImplItem) {
			implItems.Add(1)
			hir.WalkBodies(c, &counter, ii)
		},
	}
	if err := c.ParVisitAllItemLikes(ctx, jobs, v); err != nil {
		return nil, err
	}

	st := &crateStats{
		items:      items.Load(),
		traitItems: traitItems.Load(),
		implItems:  implItems.Load(),
		bodies:     c.Bodies.Len(),
	}
	for k := range counter.kinds {
		st.nodes[k] = counter.kinds[k].Load()
	}
	return st, nil
}

func renderStats(st *crateStats, useColor bool) string {
	type row struct {
		kind  hir.NodeKind
		count int64
	}
	var rows []row
	for k, n := range st.nodes {
		if n > 0 {
			rows = append(rows, row{hir.NodeKind(k), n})
		}
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].count > rows[j].count })

	labelW := 0
	for _, r := range rows {
		labelW = max(labelW, runewidth.StringWidth(r.kind.String()))
	}
	var b strings.Builder
	fmt.Fprintf(&b, "items %d  trait items %d  impl items %d  bodies %d\n",
		st.items, st.traitItems, st.implItems, st.bodies)
	for _, r := range rows {
		fmt.Fprintf(&b, "\n%s %8d", runewidth.FillRight(r.kind.String(), labelW), r.count)
	}
	fmt.Fprintf(&b, "\n\n%s %8d", runewidth.FillRight("total", labelW), st.total())

	title := lipgloss.NewStyle().Bold(true)
	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	if useColor {
		title = title.Foreground(lipgloss.Color("6"))
		box = box.BorderForeground(lipgloss.Color("8"))
	}
	return box.Render(title.Render("node counts") + "\n" + b.String())
}

package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"oxbow/internal/def"
	"oxbow/internal/hir"
	"oxbow/internal/hir/hircache"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [flags] <crate.mp>",
	Short: "List the owners and bodies of a serialized crate",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().Bool("bodies", false, "also list bodies")
	inspectCmd.Flags().Bool("defs", false, "also show which node classes receive a DefID under the active [defs] policy")
}

func runInspect(cmd *cobra.Command, args []string) (err error) {
	withBodies, err := cmd.Flags().GetBool("bodies")
	if err != nil {
		return fmt.Errorf("failed to get bodies flag: %w", err)
	}
	withDefs, err := cmd.Flags().GetBool("defs")
	if err != nil {
		return fmt.Errorf("failed to get defs flag: %w", err)
	}
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer func() { s.close(err) }()

	c, fp, err := s.loadCrate(args[0])
	if err != nil {
		return err
	}
	done := s.timer.Track("inspect")
	printInspect(cmd.OutOrStdout(), c, fp, withBodies)
	if withDefs {
		policy, err := s.cfg.Policy()
		if err != nil {
			return err
		}
		printPolicy(cmd.OutOrStdout(), policy)
	}
	done("")
	return nil
}

type inspectRow struct {
	kind string
	name string
	id   string
	vis  string
}

var (
	kindColor = color.New(color.FgCyan)
	idColor   = color.New(color.Faint)
	headColor = color.New(color.Bold)
)

func printInspect(out io.Writer, c *hir.Crate, fp hircache.Fingerprint, withBodies bool) {
	names := make(map[hir.HirID]string)
	for _, p := range c.DefPaths() {
		names[p.Owner] = p.String()
	}
	nameOf := func(id hir.HirID, fallback string) string {
		if n, ok := names[id]; ok {
			return n
		}
		return fallback
	}

	fmt.Fprintf(out, "%s %s (%d owners, %d bodies)\n", headColor.Sprint("crate"), fp.Short(), c.OwnerCount(), c.Bodies.Len())

	var items []inspectRow
	for id, it := range c.Items.All() {
		items = append(items, inspectRow{kind: it.Kind.String(), name: nameOf(id.ID, it.Ident.Name), id: id.ID.String(), vis: it.Vis.Descr()})
	}
	printSection(out, "items", items)

	var traitItems []inspectRow
	for id, ti := range c.TraitItems.All() {
		traitItems = append(traitItems, inspectRow{kind: ti.Kind.String(), name: nameOf(id.HirID, ti.Ident.Name), id: id.HirID.String()})
	}
	printSection(out, "trait items", traitItems)

	var implItems []inspectRow
	for id, ii := range c.ImplItems.All() {
		implItems = append(implItems, inspectRow{kind: ii.Kind.String(), name: nameOf(id.HirID, ii.Ident.Name), id: id.HirID.String(), vis: ii.Vis.Descr()})
	}
	printSection(out, "impl items", implItems)

	if withBodies {
		var bodies []inspectRow
		for id, b := range c.Bodies.All() {
			kind := "Body"
			if b.Generator != nil {
				kind = b.Generator.String()
			}
			value := "<missing>"
			if b.Value != nil {
				value = b.Value.Kind.String()
			}
			bodies = append(bodies, inspectRow{
				kind: kind,
				name: fmt.Sprintf("%d params, %s", len(b.Params), value),
				id:   id.HirID.String(),
			})
		}
		printSection(out, "bodies", bodies)
	}
}

// printPolicy lists every node class with its DefID assignment; classes
// overridden in [defs] are marked.
func printPolicy(out io.Writer, p def.Policy) {
	base := def.DefaultPolicy()
	rows := make([]inspectRow, 0, len(def.Classes()))
	for _, c := range def.Classes() {
		row := inspectRow{kind: c.String(), name: "no DefID"}
		if p.Assigns(c) {
			row.name = "DefID"
		}
		if p.Assigns(c) != base.Assigns(c) {
			row.id = "override"
		}
		rows = append(rows, row)
	}
	printSection(out, "def policy", rows)
}

// printSection aligns rows by display width so wide identifiers keep the
// columns straight.
func printSection(out io.Writer, title string, rows []inspectRow) {
	if len(rows) == 0 {
		return
	}
	fmt.Fprintf(out, "\n%s\n", headColor.Sprint(title))
	kindW, nameW := 0, 0
	for _, r := range rows {
		kindW = max(kindW, runewidth.StringWidth(r.kind))
		nameW = max(nameW, runewidth.StringWidth(r.name))
	}
	for _, r := range rows {
		line := "  " + kindColor.Sprint(runewidth.FillRight(r.kind, kindW)) +
			"  " + runewidth.FillRight(r.name, nameW) +
			"  " + idColor.Sprint(r.id)
		if r.vis != "" {
			line += "  " + r.vis
		}
		fmt.Fprintln(out, line)
	}
}

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"oxbow/internal/diag"
	"oxbow/internal/hir"
	"oxbow/internal/trace"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [flags] <crate.mp>",
	Short: "Check the structural invariants of a serialized crate",
	Long:  `Check id ownership and uniqueness, body identity, pattern shapes, parenthesized generic arguments and dangling references; exits with status 1 when any error is found`,
	Args:  cobra.ExactArgs(1),
	RunE:  runVerify,
}

func init() {
	verifyCmd.Flags().Int("max-diagnostics", 100, "maximum number of diagnostics to collect")
	verifyCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
}

func runVerify(cmd *cobra.Command, args []string) (err error) {
	maxDiagnostics, err := cmd.Flags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer func() { s.close(err) }()

	c, _, err := s.loadCrate(args[0])
	if err != nil {
		return err
	}

	done := s.timer.Track("verify")
	span := trace.Begin(s.tracer, trace.ScopePass, "verify", s.span.ID())
	bag := diag.NewBag(maxDiagnostics)
	hir.Verify(c, bag)
	span.WithExtra("diagnostics", strconv.Itoa(bag.Len())).End("")
	done(fmt.Sprintf("%d diagnostics", bag.Len()))

	if !reportVerify(cmd.OutOrStdout(), c, bag, withNotes) {
		return errFailed
	}
	return nil
}

// reportVerify prints the bag and a summary line. It reports false when
// the bag holds errors.
func reportVerify(out io.Writer, c *hir.Crate, bag *diag.Bag, withNotes bool) bool {
	if bag.Len() > 0 {
		fmt.Fprintln(out, diag.FormatShort(bag.Items(), nil, withNotes))
	}
	if bag.HasErrors() {
		fmt.Fprintf(out, "%s: %d diagnostics in %d owners\n", color.New(color.FgRed, color.Bold).Sprint("failed"), bag.Len(), c.OwnerCount())
		return false
	}
	fmt.Fprintf(out, "%s: %d owners, %d bodies\n", color.New(color.FgGreen, color.Bold).Sprint("ok"), c.OwnerCount(), c.Bodies.Len())
	return true
}

package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"oxbow/internal/hir"
	"oxbow/internal/hir/hircache"
)

var fingerprintCmd = &cobra.Command{
	Use:   "fingerprint [flags] <crate.mp>",
	Short: "Print the crate fingerprint and the DefPathHash of every owner",
	Args:  cobra.ExactArgs(1),
	RunE:  runFingerprint,
}

func init() {
	fingerprintCmd.Flags().String("crate", "", "crate name mixed into DefPathHashes (default: file name)")
	fingerprintCmd.Flags().Bool("crate-only", false, "print only the crate fingerprint")
}

func runFingerprint(cmd *cobra.Command, args []string) (err error) {
	crateName, err := cmd.Flags().GetString("crate")
	if err != nil {
		return fmt.Errorf("failed to get crate flag: %w", err)
	}
	crateOnly, err := cmd.Flags().GetBool("crate-only")
	if err != nil {
		return fmt.Errorf("failed to get crate-only flag: %w", err)
	}
	if crateName == "" {
		crateName = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
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
	out := cmd.OutOrStdout()
	if crateOnly {
		fmt.Fprintln(out, fp)
		return nil
	}
	done := s.timer.Track("fingerprint")
	printFingerprints(out, c, fp, crateName)
	done("")
	return nil
}

func printFingerprints(out io.Writer, c *hir.Crate, fp hircache.Fingerprint, crateName string) {
	fmt.Fprintf(out, "%s  %s\n", fp, crateName)
	paths := c.DefPaths()
	w := 0
	for _, p := range paths {
		w = max(w, runewidth.StringWidth(p.String()))
	}
	for _, p := range paths {
		fmt.Fprintf(out, "%s  %s  %s\n", p.Hash(crateName), runewidth.FillRight(p.String(), w), p.Owner)
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"oxbow/internal/hir/hircache"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the on-disk crate cache",
}

var cachePutCmd = &cobra.Command{
	Use:   "put <crate.mp>",
	Short: "Store a crate under its fingerprint",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer func() { s.close(err) }()

		store, err := s.store()
		if err != nil {
			return err
		}
		if store == nil {
			return fmt.Errorf("cache is disabled in %s", s.cfg.Path)
		}
		c, _, err := s.loadCrate(args[0])
		if err != nil {
			return err
		}
		done := s.timer.Track("cache put")
		fp, err := store.Put(cmd.Context(), c)
		done("")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), fp)
		return nil
	},
}

var cacheGetCmd = &cobra.Command{
	Use:   "get <fingerprint> <out.mp>",
	Short: "Write the cached crate with the given fingerprint to a file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		fp, err := hircache.ParseFingerprint(args[0])
		if err != nil {
			return err
		}
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer func() { s.close(err) }()

		store, err := s.store()
		if err != nil {
			return err
		}
		c, ok, err := store.Get(cmd.Context(), fp)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("no cached crate %s", fp.Short())
		}
		if _, err := hircache.SaveFile(args[1], c); err != nil {
			return err
		}
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every cached crate",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer func() { s.close(err) }()

		store, err := s.store()
		if err != nil {
			return err
		}
		if store == nil {
			return fmt.Errorf("cache is disabled in %s", s.cfg.Path)
		}
		if err := store.DropAll(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "cleared %s\n", store.Dir())
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cachePutCmd)
	cacheCmd.AddCommand(cacheGetCmd)
	cacheCmd.AddCommand(cacheClearCmd)
}

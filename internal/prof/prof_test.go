package prof_test

import (
	"os"
	"path/filepath"
	"testing"

	"oxbow/internal/prof"
)

func TestSession_WritesRequestedProfiles(t *testing.T) {
	dir := t.TempDir()
	opts := prof.Options{
		CPU:       filepath.Join(dir, "cpu.pprof"),
		Mem:       filepath.Join(dir, "mem.pprof"),
		ExecTrace: filepath.Join(dir, "exec.trace"),
	}
	s, err := prof.Start(opts)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	for _, p := range []string{opts.CPU, opts.Mem, opts.ExecTrace} {
		if fi, err := os.Stat(p); err != nil || fi.Size() == 0 {
			t.Errorf("%s: %v", filepath.Base(p), err)
		}
	}
	if err := s.Stop(); err != nil {
		t.Errorf("second Stop: %v", err)
	}
}

func TestSession_Disabled(t *testing.T) {
	s, err := prof.Start(prof.Options{})
	if err != nil || s != nil {
		t.Fatalf("Start with no outputs = %v, %v", s, err)
	}
	if err := s.Stop(); err != nil {
		t.Errorf("nil Stop: %v", err)
	}
}

func TestStart_BadPath(t *testing.T) {
	_, err := prof.Start(prof.Options{CPU: filepath.Join(t.TempDir(), "missing", "cpu.pprof")})
	if err == nil {
		t.Errorf("Start with an unwritable path succeeded")
	}
}

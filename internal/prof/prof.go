// Package prof wires runtime/pprof and runtime/trace into a command run.
package prof

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
)

// Options names the output files; empty paths disable that profile.
type Options struct {
	CPU       string
	Mem       string
	ExecTrace string
}

func (o Options) Enabled() bool { return o.CPU != "" || o.Mem != "" || o.ExecTrace != "" }

// Session is a running set of profiles. A nil *Session is inert.
type Session struct {
	cpu     *os.File
	exec    *os.File
	memPath string
}

// Start begins the CPU profile and execution trace requested in o. On
// error nothing is left running.
func Start(o Options) (*Session, error) {
	if !o.Enabled() {
		return nil, nil
	}
	s := &Session{memPath: o.Mem}
	if o.CPU != "" {
		f, err := os.Create(o.CPU)
		if err != nil {
			return nil, err
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("cpu profile: %w", err)
		}
		s.cpu = f
	}
	if o.ExecTrace != "" {
		f, err := os.Create(o.ExecTrace)
		if err != nil {
			s.stopCPU()
			return nil, err
		}
		if err := trace.Start(f); err != nil {
			_ = f.Close()
			s.stopCPU()
			return nil, fmt.Errorf("execution trace: %w", err)
		}
		s.exec = f
	}
	return s, nil
}

func (s *Session) stopCPU() error {
	if s.cpu == nil {
		return nil
	}
	pprof.StopCPUProfile()
	err := s.cpu.Close()
	s.cpu = nil
	return err
}

// Stop ends the running profiles and writes the heap profile, if asked.
func (s *Session) Stop() error {
	if s == nil {
		return nil
	}
	var errs []error
	errs = append(errs, s.stopCPU())
	if s.exec != nil {
		trace.Stop()
		errs = append(errs, s.exec.Close())
		s.exec = nil
	}
	if s.memPath != "" {
		errs = append(errs, writeHeap(s.memPath))
		s.memPath = ""
	}
	return errors.Join(errs...)
}

func writeHeap(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()
	runtime.GC()
	return pprof.WriteHeapProfile(f)
}

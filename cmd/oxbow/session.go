package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"oxbow/internal/config"
	"oxbow/internal/hir"
	"oxbow/internal/hir/hircache"
	"oxbow/internal/observ"
	"oxbow/internal/prof"
	"oxbow/internal/trace"
)

// session carries what every command needs: the resolved configuration,
// the tracer attached to cmd's context and the phase timer.
type session struct {
	cmd     *cobra.Command
	cfg     *config.Config
	jobs    int
	color   bool
	timings bool
	timer   *observ.Timer
	tracer  trace.Tracer
	span    *trace.Span
	prof    *prof.Session

	// ring holds recent events when [trace].mode keeps one; it is printed
	// if the command fails.
	ring        *trace.RingTracer
	traceFormat trace.Format
}

// openSession resolves flags over oxbow.toml and installs the tracer. The
// caller must close the session.
func openSession(cmd *cobra.Command) (*session, error) {
	root := cmd.Root().PersistentFlags()

	configPath, err := root.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	var cfg *config.Config
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.Discover(".")
	}
	if err != nil {
		return nil, err
	}

	s := &session{cmd: cmd, cfg: cfg, jobs: cfg.Parallel.Jobs, timer: observ.NewTimer()}

	if root.Changed("jobs") {
		if s.jobs, err = root.GetInt("jobs"); err != nil {
			return nil, fmt.Errorf("failed to get jobs flag: %w", err)
		}
	}
	if s.timings, err = root.GetBool("timings"); err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}

	colorFlag, err := root.GetString("color")
	if err != nil {
		return nil, fmt.Errorf("failed to get color flag: %w", err)
	}
	switch colorFlag {
	case "on":
		s.color = true
	case "off":
		s.color = false
	case "auto":
		s.color = isTerminal(os.Stdout)
	default:
		return nil, fmt.Errorf("unknown color mode %q (must be auto, on or off)", colorFlag)
	}
	color.NoColor = !s.color

	if err := s.setupTracing(); err != nil {
		return nil, err
	}

	var popts prof.Options
	if popts.CPU, err = root.GetString("cpuprofile"); err != nil {
		return nil, fmt.Errorf("failed to get cpuprofile flag: %w", err)
	}
	if popts.Mem, err = root.GetString("memprofile"); err != nil {
		return nil, fmt.Errorf("failed to get memprofile flag: %w", err)
	}
	if popts.ExecTrace, err = root.GetString("exectrace"); err != nil {
		return nil, fmt.Errorf("failed to get exectrace flag: %w", err)
	}
	if s.prof, err = prof.Start(popts); err != nil {
		s.close(nil)
		return nil, err
	}
	return s, nil
}

func (s *session) setupTracing() error {
	flags := s.cmd.Root().PersistentFlags()
	tc := s.cfg.Trace
	var err error
	if flags.Changed("trace") {
		if tc.Output, err = flags.GetString("trace"); err != nil {
			return fmt.Errorf("failed to get trace flag: %w", err)
		}
	}
	if flags.Changed("trace-level") {
		if tc.Level, err = flags.GetString("trace-level"); err != nil {
			return fmt.Errorf("failed to get trace-level flag: %w", err)
		}
	}
	if flags.Changed("trace-mode") {
		if tc.Mode, err = flags.GetString("trace-mode"); err != nil {
			return fmt.Errorf("failed to get trace-mode flag: %w", err)
		}
	}
	if flags.Changed("trace-ring-size") {
		if tc.RingSize, err = flags.GetInt("trace-ring-size"); err != nil {
			return fmt.Errorf("failed to get trace-ring-size flag: %w", err)
		}
	}

	level, err := trace.ParseLevel(tc.Level)
	if err != nil {
		return fmt.Errorf("invalid trace level: %w", err)
	}
	mode, err := trace.ParseMode(tc.Mode)
	if err != nil {
		return fmt.Errorf("invalid trace mode: %w", err)
	}
	// --trace или --trace-mode без уровня включают фазы
	implied := flags.Changed("trace") || flags.Changed("trace-mode")
	if implied && !flags.Changed("trace-level") && level == trace.LevelOff {
		level = trace.LevelPhase
	}
	format, err := trace.ParseFormat(tc.Format)
	if err != nil {
		return err
	}
	s.traceFormat = format
	if format == trace.FormatAuto {
		s.traceFormat = trace.FormatText
	}

	tracer, err := trace.New(trace.Config{
		Level:      level,
		Mode:       mode,
		Format:     format,
		OutputPath: tc.Output,
		RingSize:   tc.RingSize,
	})
	if err != nil {
		return fmt.Errorf("failed to create tracer: %w", err)
	}
	s.tracer = tracer
	s.ring = trace.RingOf(tracer)
	ctx := trace.WithTracer(s.cmd.Context(), tracer)
	s.span = trace.Begin(tracer, trace.ScopeDriver, s.cmd.Name(), 0)
	ctx = trace.WithSpanContext(ctx, trace.SpanContext{SpanID: s.span.ID()})
	s.cmd.SetContext(ctx)
	return nil
}

// close ends the driver span, prints timings and flushes the tracer.
// cmdErr is the command's result; when it is non-nil the trace ring, if
// any, is dumped to stderr.
func (s *session) close(cmdErr error) {
	if s == nil {
		return
	}
	if err := s.prof.Stop(); err != nil {
		fmt.Fprintf(s.cmd.ErrOrStderr(), "prof: %v\n", err)
	}
	s.span.End("")
	if s.timings {
		fmt.Fprint(s.cmd.ErrOrStderr(), s.timer.Summary())
	}
	if cmdErr != nil && s.ring != nil {
		s.dumpRing()
	}
	if err := s.tracer.Flush(); err != nil {
		fmt.Fprintf(s.cmd.ErrOrStderr(), "trace: flush error: %v\n", err)
	}
	if err := s.tracer.Close(); err != nil {
		fmt.Fprintf(s.cmd.ErrOrStderr(), "trace: close error: %v\n", err)
	}
}

func (s *session) dumpRing() {
	w := s.cmd.ErrOrStderr()
	fmt.Fprintf(w, "trace: last %d events of %s:\n", s.ring.Len(), s.cmd.CommandPath())
	if err := s.ring.Dump(w, s.traceFormat); err != nil {
		fmt.Fprintf(w, "trace: dump error: %v\n", err)
	}
}

// loadCrate decodes the crate at path under a "load" phase.
func (s *session) loadCrate(path string) (*hir.Crate, hircache.Fingerprint, error) {
	done := s.timer.Track("load")
	span := trace.Begin(s.tracer, trace.ScopePass, "load", s.span.ID()).WithExtra("path", path)
	c, fp, err := hircache.LoadFile(path)
	if err != nil {
		span.End("error")
		done("failed")
		return nil, fp, err
	}
	span.End(fp.Short())
	done(filepath.Base(path))
	return c, fp, nil
}

// store opens the crate cache unless [cache].disabled is set.
func (s *session) store() (*hircache.Store, error) {
	if s.cfg.Cache.Disabled {
		return nil, nil
	}
	return hircache.Open(s.cfg.Cache.Dir)
}

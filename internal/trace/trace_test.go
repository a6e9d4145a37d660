package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestLevel_ShouldEmit(t *testing.T) {
	tests := []struct {
		level Level
		scope Scope
		want  bool
	}{
		{LevelOff, ScopeDriver, false},
		{LevelError, ScopeDriver, false},
		{LevelPhase, ScopePass, true},
		{LevelPhase, ScopeOwner, false},
		{LevelDetail, ScopeOwner, true},
		{LevelDetail, ScopeNode, false},
		{LevelDebug, ScopeNode, true},
	}
	for _, tt := range tests {
		if got := tt.level.ShouldEmit(tt.scope); got != tt.want {
			t.Errorf("%s.ShouldEmit(%s) = %v, want %v", tt.level, tt.scope, got, tt.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"off", "error", "phase", "detail", "debug"} {
		l, err := ParseLevel(s)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", s, err)
		}
		if l.String() != s {
			t.Errorf("ParseLevel(%q).String() = %q", s, l.String())
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("ParseLevel(loud) succeeded")
	}
}

func TestStreamTracer_Text(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDetail, FormatText)

	span := Begin(tr, ScopePass, "verify", 0)
	Point(tr, ScopeNode, "too-detailed", "")
	span.WithExtra("items", "3").End("ok")

	out := buf.String()
	if !strings.Contains(out, "→ verify") {
		t.Errorf("missing begin line:\n%s", out)
	}
	if !strings.Contains(out, "← verify (ok) {items=3}") {
		t.Errorf("missing end line:\n%s", out)
	}
	if strings.Contains(out, "too-detailed") {
		t.Errorf("node-scope event leaked at detail level:\n%s", out)
	}
}

func TestStreamTracer_NDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDebug, FormatNDJSON)
	Point(tr, ScopeOwner, "cache.hit", "abc")

	var got map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &got); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	if got["name"] != "cache.hit" || got["kind"] != "point" || got["scope"] != "owner" {
		t.Errorf("unexpected event: %v", got)
	}
}

func TestRingTracer_Wraps(t *testing.T) {
	tr := NewRingTracer(2, LevelDebug)
	for _, name := range []string{"a", "b", "c"} {
		Point(tr, ScopePass, name, "")
	}
	events := tr.Snapshot()
	if len(events) != 2 || events[0].Name != "b" || events[1].Name != "c" {
		t.Errorf("snapshot = %+v", events)
	}
}

func TestRingTracer_Dump(t *testing.T) {
	tr := NewRingTracer(2, LevelPhase)
	for _, name := range []string{"load", "verify", "report"} {
		Point(tr, ScopePass, name, "")
	}
	if tr.Len() != 2 || tr.Dropped() != 1 {
		t.Fatalf("len %d dropped %d", tr.Len(), tr.Dropped())
	}
	var buf bytes.Buffer
	if err := tr.Dump(&buf, FormatText); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "... 1 earlier events dropped\n") {
		t.Errorf("missing drop note:\n%s", out)
	}
	if strings.Contains(out, "load") || !strings.Contains(out, "verify") || !strings.Contains(out, "report") {
		t.Errorf("unexpected dump:\n%s", out)
	}
}

func TestNew_Modes(t *testing.T) {
	tests := []struct {
		mode     string
		wantRing bool
	}{
		{"stream", false},
		{"", false},
		{"ring", true},
		{"both", true},
	}
	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			mode, err := ParseMode(tt.mode)
			if err != nil {
				t.Fatal(err)
			}
			var buf bytes.Buffer
			tr, err := New(Config{Level: LevelPhase, Mode: mode, Output: &buf, RingSize: 8})
			if err != nil {
				t.Fatal(err)
			}
			Point(tr, ScopePass, "load", "")
			ring := RingOf(tr)
			if (ring != nil) != tt.wantRing {
				t.Fatalf("RingOf = %v, want ring %v", ring, tt.wantRing)
			}
			if ring != nil && ring.Len() != 1 {
				t.Errorf("ring holds %d events", ring.Len())
			}
			if streamed := buf.Len() > 0; streamed != (mode != ModeRing) {
				t.Errorf("streamed = %v in mode %s", streamed, mode)
			}
		})
	}
	if _, err := ParseMode("tape"); err == nil {
		t.Error("ParseMode(tape) succeeded")
	}
}

func TestContext_DefaultsToNop(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Error("empty context should yield Nop")
	}
	tr := NewRingTracer(1, LevelPhase)
	ctx := WithTracer(context.Background(), tr)
	if FromContext(ctx) != Tracer(tr) {
		t.Error("tracer not propagated")
	}
}

func TestNew_OffIsNop(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil {
		t.Fatal(err)
	}
	if tr.Enabled() {
		t.Error("off tracer is enabled")
	}
}

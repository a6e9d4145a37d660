package diag

import (
	"fmt"
	"path/filepath"
	"strings"

	"oxbow/internal/source"
)

// FormatShort renders diagnostics one per line as
// `severity CODE path:line:col message`, notes included when asked. Spans
// that do not belong to a known file (synthesised nodes) print as
// `<unknown>:0:0`. The order of diags is kept; sort the Bag first.
func FormatShort(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	var b strings.Builder
	line := func(sev string, code Code, sp source.Span, msg string) {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		path, ln, col := resolveSpan(fs, sp)
		fmt.Fprintf(&b, "%s %s %s:%d:%d %s", sev, code.ID(), path, ln, col, sanitizeMessage(msg))
	}
	for i := range diags {
		d := &diags[i]
		line(severityLabel(d.Severity), d.Code, d.Primary, d.Message)
		if includeNotes {
			for _, n := range d.Notes {
				line("note", d.Code, n.Span, n.Msg)
			}
		}
	}
	return b.String()
}

func resolveSpan(fs *source.FileSet, span source.Span) (path string, line, col uint32) {
	if fs == nil || span.IsDummy() {
		return "<unknown>", 0, 0
	}
	f := fs.Get(span.File)
	if f == nil {
		return "<unknown>", 0, 0
	}
	start, _ := fs.Resolve(span)
	return filepath.ToSlash(f.Path), start.Line, start.Col
}

func severityLabel(sev Severity) string {
	switch sev {
	case SevError:
		return "error"
	case SevWarning:
		return "warning"
	default:
		return "info"
	}
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}

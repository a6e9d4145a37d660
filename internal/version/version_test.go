package version

import (
	"testing"

	"github.com/fatih/color"
)

func TestString(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	t.Cleanup(func() { Version, GitCommit, BuildDate = origVersion, origCommit, origDate })

	tests := []struct {
		name                   string
		version, commit, built string
		want                   string
	}{
		{"default", "0.1.0-dev", "", "", "oxbow 0.1.0-dev"},
		{"commit", "1.2.3", "abc123", "", "oxbow 1.2.3 (abc123)"},
		{"full", "1.2.3-rc1", "abc123", "2026-01-15", "oxbow 1.2.3-rc1 (abc123) built 2026-01-15"},
		{"unparsed", "nightly", "", "", "oxbow nightly"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version, GitCommit, BuildDate = tt.version, tt.commit, tt.built
			if got := String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

package source

import (
	"testing"
)

func TestSpan_To(t *testing.T) {
	tests := []struct {
		name     string
		from     Span
		to       Span
		expected Span
	}{
		{
			name:     "joins spans in one file",
			from:     Span{File: 1, Start: 4, End: 6},
			to:       Span{File: 1, Start: 10, End: 14},
			expected: Span{File: 1, Start: 4, End: 14},
		},
		{
			name:     "dummy start yields end",
			from:     DummySpan,
			to:       Span{File: 1, Start: 10, End: 14},
			expected: Span{File: 1, Start: 10, End: 14},
		},
		{
			name:     "different files keep start",
			from:     Span{File: 1, Start: 4, End: 6},
			to:       Span{File: 2, Start: 10, End: 14},
			expected: Span{File: 1, Start: 4, End: 6},
		},
		{
			name:     "end before start collapses",
			from:     Span{File: 1, Start: 10, End: 12},
			to:       Span{File: 1, Start: 2, End: 4},
			expected: Span{File: 1, Start: 10, End: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.To(tt.to); got != tt.expected {
				t.Errorf("To() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSpan_Cover(t *testing.T) {
	s := Span{File: 1, Start: 5, End: 8}
	got := s.Cover(Span{File: 1, Start: 2, End: 6})
	if got != (Span{File: 1, Start: 2, End: 8}) {
		t.Errorf("Cover() = %v", got)
	}
	if got := s.Cover(Span{File: 3, Start: 0, End: 100}); got != s {
		t.Errorf("Cover() across files = %v, want %v", got, s)
	}
}

func TestSpan_Contains(t *testing.T) {
	outer := Span{File: 1, Start: 0, End: 20}
	if !outer.Contains(Span{File: 1, Start: 3, End: 20}) {
		t.Error("expected containment")
	}
	if outer.Contains(Span{File: 1, Start: 3, End: 21}) {
		t.Error("span past end must not be contained")
	}
	if outer.Contains(Span{File: 2, Start: 3, End: 4}) {
		t.Error("span from another file must not be contained")
	}
}

func TestSpan_Shrink(t *testing.T) {
	s := Span{File: 1, Start: 5, End: 8}
	if lo := s.ShrinkToLo(); lo.Start != 5 || lo.End != 5 {
		t.Errorf("ShrinkToLo() = %v", lo)
	}
	if hi := s.ShrinkToHi(); hi.Start != 8 || hi.End != 8 {
		t.Errorf("ShrinkToHi() = %v", hi)
	}
}

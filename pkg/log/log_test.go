package log

import "testing"

func TestVerbosityLevel(t *testing.T) {
	cases := []struct {
		count int
		want  Level
	}{
		{0, InfoLevel},
		{1, DebugLevel},
		{2, TraceLevel},
		{3, TraceLevel},
	}

	for _, c := range cases {
		if got := VerbosityLevel(c.count); got != c.want {
			t.Errorf("VerbosityLevel(%d) = %q, want %q", c.count, got, c.want)
		}
	}
}

func TestVerbosityInfinite(t *testing.T) {
	// Any occurrence count past 2 must keep clamping to trace, never
	// erroring or wrapping back to info.
	for _, count := range []int{2, 5, 100, 1_000_000} {
		if got := VerbosityLevel(count); got != TraceLevel {
			t.Errorf("VerbosityLevel(%d) = %q, want %q", count, got, TraceLevel)
		}
	}
}

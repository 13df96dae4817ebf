package reencode

import (
	"testing"

	"flacup/internal/flacver"
)

func mustParse(t *testing.T, text string) flacver.Version {
	t.Helper()
	v, err := flacver.Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}
	return v
}

func TestNeedsReencodeVersionComparison(t *testing.T) {
	target := mustParse(t, "1.4.3")

	cases := []struct {
		vendor string
		want   bool
	}{
		{"reference libFLAC 1.4.2 20220909", true},
		{"reference libFLAC 1.3.1 20141125", true},
		{"reference libFLAC 1.4.3 20230102", false},
		{"reference libFLAC 1.5.0", false},
		{"reference libFLAC 2.0.0", false},
	}
	for _, tc := range cases {
		if got := NeedsReencode(tc.vendor, target); got != tc.want {
			t.Fatalf("NeedsReencode(%q) = %v, want %v", tc.vendor, got, tc.want)
		}
	}
}

func TestNeedsReencodeUnknownProvenance(t *testing.T) {
	target := mustParse(t, "1.4.3")

	// Anything not shaped like "reference libFLAC <version>" is always a
	// candidate, including empty vendor strings and other encoders.
	for _, vendor := range []string{
		"",
		"Lavf58.76.100",
		"reference libFLAC",
		"reference something 1.4.2",
		"libFLAC reference 1.4.2",
		"reference libFLAC x.y.z",
		"reference libFLAC 1.4.3beta",
	} {
		if !NeedsReencode(vendor, target) {
			t.Fatalf("NeedsReencode(%q) = false, want true", vendor)
		}
	}
}

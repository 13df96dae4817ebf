package flacver

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		input string
		want  Version
	}{
		{"1.4.3", Version{1, 4, 3}},
		{"1.4", Version{1, 4, 0}},
		{"2", Version{2, 0, 0}},
		{" 1.3.1 ", Version{1, 3, 1}},
		{"1.3.1.20141125", Version{1, 3, 1}},
		{"0.9.7", Version{0, 9, 7}},
	}
	for _, tc := range cases {
		got, err := Parse(tc.input)
		if err != nil {
			t.Fatalf("Parse(%q): unexpected error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("Parse(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	for _, input := range []string{"", "   ", "abc", "1.x.3", "v1.4.3", "1.4.3a", "-1.2.3", "..", "1..3"} {
		if _, err := Parse(input); !errors.Is(err, ErrInvalidVersion) {
			t.Fatalf("Parse(%q): expected ErrInvalidVersion, got %v", input, err)
		}
	}
}

func TestCompare(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"1.4.3", "1.4.3", 0},
		{"1.4.2", "1.4.3", -1},
		{"1.4.3", "1.4.2", 1},
		{"1.3.9", "1.4.0", -1},
		{"2.0.0", "1.9.9", 1},
		{"1.4", "1.4.0", 0},
	}
	for _, tc := range cases {
		a, err := Parse(tc.a)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tc.a, err)
		}
		b, err := Parse(tc.b)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tc.b, err)
		}
		if got := a.Compare(b); got != tc.want {
			t.Fatalf("Compare(%s, %s) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
		if wantLess := tc.want < 0; a.Less(b) != wantLess {
			t.Fatalf("Less(%s, %s) = %v, want %v", tc.a, tc.b, a.Less(b), wantLess)
		}
	}
}

func TestString(t *testing.T) {
	v, err := Parse("1.4")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := v.String(); got != "1.4.0" {
		t.Fatalf("String() = %q, want %q", got, "1.4.0")
	}
}

// Package flacver parses and compares dotted FLAC encoder versions.
//
// Version strings observed in the wild range from plain "1.4.3" to tagged
// builds like "1.3.1.20141125"; parsing keeps the first three numeric
// components and ignores anything after them. Text that does not begin with
// numeric dot components is rejected so callers can treat it as unknown
// provenance rather than as an implicit minimum version.
package flacver

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidVersion reports version text that does not parse as numeric
// dotted components.
var ErrInvalidVersion = errors.New("invalid version")

// Version is a parsed major.minor.patch triple, totally ordered by
// component-wise comparison. Missing trailing components default to zero.
type Version struct {
	Major int
	Minor int
	Patch int
}

// Parse converts version text into a Version. The first three dot-separated
// components must be decimal numbers; extra trailing components are
// tolerated and ignored. Everything else fails with ErrInvalidVersion.
func Parse(text string) (Version, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Version{}, fmt.Errorf("%w: empty string", ErrInvalidVersion)
	}

	parts := strings.Split(trimmed, ".")
	limit := len(parts)
	if limit > 3 {
		limit = 3
	}

	values := [3]int{}
	for i := 0; i < limit; i++ {
		component, err := strconv.Atoi(parts[i])
		if err != nil || component < 0 {
			return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, text)
		}
		values[i] = component
	}

	return Version{Major: values[0], Minor: values[1], Patch: values[2]}, nil
}

// Compare returns -1, 0, or 1 as v orders before, equal to, or after other.
func (v Version) Compare(other Version) int {
	if c := compareInt(v.Major, other.Major); c != 0 {
		return c
	}
	if c := compareInt(v.Minor, other.Minor); c != 0 {
		return c
	}
	return compareInt(v.Patch, other.Patch)
}

// Less reports whether v is strictly older than other.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

// String renders the canonical major.minor.patch form.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

package reencode

import (
	"strings"

	"flacup/internal/flacver"
)

// Vendor strings written by the reference encoder look like
// "reference libFLAC 1.4.3 20230102"; the first two tokens are the marker.
const (
	vendorMarkerOrigin  = "reference"
	vendorMarkerLibrary = "libFLAC"
)

// NeedsReencode decides whether a file with the given vendor string should
// be re-encoded against target. Files of unknown provenance (no reference
// marker, too few tokens) and files whose version token does not parse are
// always candidates. A parseable version is a candidate iff it is strictly
// older than target.
func NeedsReencode(vendor string, target flacver.Version) bool {
	fields := strings.Fields(vendor)
	if len(fields) < 3 || fields[0] != vendorMarkerOrigin || fields[1] != vendorMarkerLibrary {
		return true
	}
	version, err := flacver.Parse(fields[2])
	if err != nil {
		return true
	}
	return version.Less(target)
}

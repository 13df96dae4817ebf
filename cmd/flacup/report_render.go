package main

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"flacup/internal/reencode"
)

// renderReport writes the operator-facing run summary. Byte totals use
// decimal units to match how encoder tooling reports file sizes.
func renderReport(out io.Writer, report *reencode.Report) {
	fmt.Fprintln(out)
	if report.Forced {
		fmt.Fprintf(out, "%d files selected (forced), %d skipped\n", report.Candidates, report.Skipped)
	} else {
		fmt.Fprintf(out, "%d of %d files need re-encoding (target %s), %d skipped\n",
			report.Candidates, report.Scanned, report.TargetVersion, report.Skipped)
	}

	if report.DryRun {
		fmt.Fprintf(out, "Dry run: %s of FLAC files would be re-encoded\n", humanize.Bytes(uint64(report.BytesBefore)))
		return
	}
	if report.Candidates == 0 {
		fmt.Fprintln(out, "Nothing to re-encode")
		return
	}

	fmt.Fprintf(out, "Re-encoded %d of %d files in %s\n",
		report.Encoded(), report.Candidates, report.FinishedAt.Sub(report.StartedAt).Round(time.Second))
	saved := report.BytesSaved()
	switch {
	case saved >= 0:
		fmt.Fprintf(out, "Library size: %s -> %s (saved %s)\n",
			humanize.Bytes(uint64(report.BytesBefore)),
			humanize.Bytes(uint64(report.BytesAfter)),
			humanize.Bytes(uint64(saved)))
	default:
		fmt.Fprintf(out, "Library size: %s -> %s (grew %s)\n",
			humanize.Bytes(uint64(report.BytesBefore)),
			humanize.Bytes(uint64(report.BytesAfter)),
			humanize.Bytes(uint64(-saved)))
	}

	if len(report.Failures) == 0 {
		return
	}
	red := color.New(color.FgRed)
	red.Fprintf(out, "\n%d files failed to encode:\n", len(report.Failures))
	for _, failure := range report.Failures {
		red.Fprintf(out, "  exit %d: %s\n", failure.ExitCode, failure.CommandLine)
	}
}

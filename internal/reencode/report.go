package reencode

import (
	"time"

	"flacup/internal/flacver"
)

// Failure is one failed encoder invocation: the exit status and the literal
// command line, enough for an operator to re-run the file by hand.
type Failure struct {
	ExitCode    int
	CommandLine string
}

// Report aggregates one run. It is assembled once by the engine after the
// orchestrator returns; nothing mutates it afterwards.
type Report struct {
	LibraryDir    string
	TargetVersion flacver.Version
	Forced        bool
	DryRun        bool

	StartedAt  time.Time
	FinishedAt time.Time

	// Scanned counts every discovered FLAC file; Directories counts the
	// directories walked to find them.
	Scanned     int
	Directories int

	// Candidates is the number of files selected for re-encoding, Skipped
	// the files excluded because their metadata could not be read.
	Candidates int
	Skipped    int

	// Byte totals over the candidate list, measured before and after the
	// encode phase. Files are rewritten in place, so the same paths are
	// re-measured.
	BytesBefore int64
	BytesAfter  int64

	// Failures in completion order, which is not discovery order.
	Failures []Failure
}

// BytesSaved is the aggregate size difference. It may be negative for
// pathological inputs and is reported as-is.
func (r *Report) BytesSaved() int64 {
	return r.BytesBefore - r.BytesAfter
}

// Encoded is the number of candidates whose encoder invocation succeeded.
func (r *Report) Encoded() int {
	n := r.Candidates - len(r.Failures)
	if n < 0 {
		return 0
	}
	return n
}

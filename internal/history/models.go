package history

import "time"

// Run is one recorded batch run.
type Run struct {
	ID            string
	StartedAt     time.Time
	FinishedAt    time.Time
	LibraryDir    string
	TargetVersion string
	Forced        bool
	DryRun        bool
	Scanned       int
	Candidates    int
	Skipped       int
	FailureCount  int
	BytesBefore   int64
	BytesAfter    int64
}

// BytesSaved is the recorded size difference; negative values mean the
// library grew.
func (r Run) BytesSaved() int64 {
	return r.BytesBefore - r.BytesAfter
}

// Failure is one recorded failed encoder invocation.
type Failure struct {
	ExitCode    int
	CommandLine string
}

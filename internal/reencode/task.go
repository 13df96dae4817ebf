package reencode

// TaskState tracks one encode task through its lifecycle. Every launched
// task moves Queued -> Running -> Succeeded or Failed; no task reaches a
// terminal state without having run.
type TaskState int

const (
	TaskQueued TaskState = iota
	TaskRunning
	TaskSucceeded
	TaskFailed
)

func (s TaskState) String() string {
	switch s {
	case TaskQueued:
		return "queued"
	case TaskRunning:
		return "running"
	case TaskSucceeded:
		return "succeeded"
	case TaskFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Task is one in-flight encode. It is owned exclusively by the
// orchestrator's control goroutine; worker goroutines only wait on the
// child process and report back over the completion channel.
type Task struct {
	Path  string
	State TaskState
}

// Outcome is the terminal result of one task. Successes are only counted
// by callers; failures retain the exit code and the literal command line so
// an operator can re-run the file by hand.
type Outcome struct {
	Path        string
	ExitCode    int
	CommandLine string
	Succeeded   bool
}

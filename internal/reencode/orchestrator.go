package reencode

import (
	"context"
	"log/slog"

	"flacup/internal/logging"
	"flacup/internal/services/flac"
)

// DefaultJobs is the in-flight process bound used when the operator asks
// for a non-positive value.
const DefaultJobs = 4

// Orchestrator supervises a bounded pool of external encoder processes.
// One control goroutine owns all scheduling state; concurrency lives
// entirely in the child processes and the per-task wait goroutines, which
// communicate only over the completion channel.
type Orchestrator struct {
	encoder  flac.Encoder
	jobs     int
	verbose  bool
	progress ProgressFunc
	logger   *slog.Logger
}

// OrchestratorOption configures an Orchestrator.
type OrchestratorOption func(*Orchestrator)

// WithProgress installs a dispatch progress callback.
func WithProgress(fn ProgressFunc) OrchestratorOption {
	return func(o *Orchestrator) {
		o.progress = fn
	}
}

// WithVerbose passes child process output through instead of discarding it.
func WithVerbose(verbose bool) OrchestratorOption {
	return func(o *Orchestrator) {
		o.verbose = verbose
	}
}

// WithLogger sets the orchestrator logger.
func WithLogger(logger *slog.Logger) OrchestratorOption {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// NewOrchestrator builds an orchestrator bounded to jobs concurrent
// encodes. A non-positive jobs value is corrected to DefaultJobs with a
// warning rather than treated as fatal.
func NewOrchestrator(encoder flac.Encoder, jobs int, opts ...OrchestratorOption) *Orchestrator {
	o := &Orchestrator{
		encoder: encoder,
		jobs:    jobs,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.jobs < 1 {
		o.logger.Warn("concurrency limit must be >= 1, using default",
			logging.Int("requested", o.jobs),
			logging.Int("jobs", DefaultJobs))
		o.jobs = DefaultJobs
	}
	return o
}

// Jobs returns the effective concurrency bound.
func (o *Orchestrator) Jobs() int {
	return o.jobs
}

type completion struct {
	task    *Task
	process flac.Process
	waitErr error
}

// Run launches every candidate exactly once, in order, never keeping more
// than the configured number of processes in flight, and returns the
// failed outcomes in completion order. Individual encoder failures are
// recorded and the batch continues; ctx cancellation stops launching new
// tasks and waits for already-started children (which inherit the context
// and are terminated with it) rather than abandoning them.
func (o *Orchestrator) Run(ctx context.Context, candidates []string) []Outcome {
	total := len(candidates)
	completions := make(chan completion, total)

	var failures []Outcome
	inFlight := 0
	dispatched := 0

	fold := func(c completion) {
		inFlight--
		code := c.process.ExitCode()
		if c.waitErr != nil || code != 0 {
			c.task.State = TaskFailed
			failures = append(failures, Outcome{
				Path:        c.task.Path,
				ExitCode:    code,
				CommandLine: c.process.CommandLine(),
			})
			o.logger.Warn("encode failed",
				logging.String("file", c.task.Path),
				logging.Int("exit_code", code))
			return
		}
		c.task.State = TaskSucceeded
	}

	for _, path := range candidates {
		if ctx.Err() != nil {
			break
		}
		for inFlight >= o.jobs {
			fold(<-completions)
		}

		task := &Task{Path: path, State: TaskQueued}
		dispatched++
		o.report(dispatched, total, false)

		process, err := o.encoder.Start(ctx, path, o.verbose)
		if err != nil {
			task.State = TaskFailed
			failures = append(failures, Outcome{Path: path, ExitCode: -1, CommandLine: o.encoder.CommandLine(path)})
			o.logger.Warn("encode launch failed",
				logging.String("file", path),
				logging.Error(err))
			continue
		}
		task.State = TaskRunning
		inFlight++
		go func(task *Task, process flac.Process) {
			err := process.Wait()
			completions <- completion{task: task, process: process, waitErr: err}
		}(task, process)
	}

	for inFlight > 0 {
		fold(<-completions)
	}
	o.report(dispatched, total, true)
	return failures
}

func (o *Orchestrator) report(current, total int, final bool) {
	if o.progress != nil {
		o.progress(current, total, final)
	}
}

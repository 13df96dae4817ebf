package reencode

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"flacup/internal/flacmeta"
	"flacup/internal/flacver"
	"flacup/internal/logging"
	"flacup/internal/services/flac"
)

// Options carries the operator-facing knobs for one run.
type Options struct {
	// MinVersion is the requested target version text; empty means "use
	// the installed encoder's version".
	MinVersion string
	// Force re-encodes every discovered file regardless of vendor string.
	Force bool
	// Jobs bounds concurrent encoder processes; values below 1 fall back
	// to DefaultJobs with a warning.
	Jobs int
	// Verbose passes encoder output through to the console.
	Verbose bool
	// DryRun stops after candidate selection; nothing is encoded.
	DryRun bool
}

// Engine composes the metadata reader, the version policy, and the
// orchestrator into one run over a discovered file list.
type Engine struct {
	encoder  flac.Encoder
	logger   *slog.Logger
	progress ProgressFunc
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithEngineLogger sets the engine logger.
func WithEngineLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithEngineProgress installs the encode-phase progress collaborator.
func WithEngineProgress(fn ProgressFunc) EngineOption {
	return func(e *Engine) {
		e.progress = fn
	}
}

// NewEngine builds an engine around the given encoder client.
func NewEngine(encoder flac.Encoder, opts ...EngineOption) *Engine {
	e := &Engine{
		encoder: encoder,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ResolveTarget determines the version files are compared against: the
// operator-requested version when given, otherwise the installed encoder's
// own version. A requested version that does not parse, or that exceeds
// the installed encoder, is a setup error — re-encoding to a version newer
// than what is installed is not permitted.
func (e *Engine) ResolveTarget(ctx context.Context, requested string) (flacver.Version, error) {
	installed, raw, err := e.encoder.Version(ctx)
	if err != nil {
		return flacver.Version{}, NewSetupError(err)
	}
	e.logger.Info("encoder found",
		logging.String("version", installed.String()),
		logging.String("output", raw))

	if strings.TrimSpace(requested) == "" {
		return installed, nil
	}
	target, err := flacver.Parse(requested)
	if err != nil {
		return flacver.Version{}, Setupf("parse minimum version %q: %w", requested, err)
	}
	if installed.Less(target) {
		return flacver.Version{}, Setupf("installed encoder version (%s) is older than the requested minimum (%s)", installed, target)
	}
	return target, nil
}

// Run executes one batch over files, which the discovery collaborator has
// already filtered to FLAC extensions. Directories is carried through to
// the report for operator context. Only setup problems return an error;
// per-file conditions are folded into the report.
func (e *Engine) Run(ctx context.Context, libraryDir string, files []string, directories int, opts Options) (*Report, error) {
	report := &Report{
		LibraryDir:  libraryDir,
		Forced:      opts.Force,
		DryRun:      opts.DryRun,
		StartedAt:   time.Now().UTC(),
		Scanned:     len(files),
		Directories: directories,
	}

	target, err := e.ResolveTarget(ctx, opts.MinVersion)
	if err != nil {
		return nil, err
	}
	report.TargetVersion = target

	candidates := files
	if !opts.Force {
		candidates = e.filter(files, target, report)
	}
	report.Candidates = len(candidates)
	report.BytesBefore = e.sumSizes(candidates)

	if opts.DryRun {
		report.BytesAfter = report.BytesBefore
		report.FinishedAt = time.Now().UTC()
		return report, nil
	}

	orch := NewOrchestrator(e.encoder, opts.Jobs,
		WithVerbose(opts.Verbose),
		WithProgress(e.progress),
		WithLogger(e.logger))
	for _, outcome := range orch.Run(ctx, candidates) {
		report.Failures = append(report.Failures, Failure{
			ExitCode:    outcome.ExitCode,
			CommandLine: outcome.CommandLine,
		})
	}

	report.BytesAfter = e.sumSizes(candidates)
	report.FinishedAt = time.Now().UTC()
	return report, nil
}

// filter selects the files whose vendor string says they need re-encoding.
// Files whose metadata cannot be read are excluded and counted as skipped;
// a missing vendor string is not an error and falls through to the policy,
// which treats it as unknown provenance.
func (e *Engine) filter(files []string, target flacver.Version, report *Report) []string {
	candidates := make([]string, 0, len(files))
	for _, path := range files {
		vendor, err := flacmeta.ReadVendorString(path)
		if err != nil {
			report.Skipped++
			e.logger.Warn("file skipped", logging.String("file", path), logging.Error(err))
			continue
		}
		if NeedsReencode(vendor, target) {
			candidates = append(candidates, path)
		}
	}
	return candidates
}

// sumSizes totals the on-disk sizes of paths. Files that disappear between
// measurement passes count as zero rather than failing the accounting.
func (e *Engine) sumSizes(paths []string) int64 {
	var total int64
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			e.logger.Debug("stat failed during size accounting",
				logging.String("file", path), logging.Error(err))
			continue
		}
		total += info.Size()
	}
	return total
}

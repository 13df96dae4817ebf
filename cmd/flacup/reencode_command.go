package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"flacup/internal/config"
	"flacup/internal/deps"
	"flacup/internal/history"
	"flacup/internal/logging"
	"flacup/internal/reencode"
	"flacup/internal/scan"
)

func newReencodeCommand(ctx *commandContext) *cobra.Command {
	var minVersion string
	var force bool
	var jobs int
	var verbose bool
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "reencode <directory>",
		Short: "Re-encode FLAC files written by older encoder versions",
		Long: strings.TrimSpace(`
Walks the given directory, reads each FLAC file's vendor string, and
re-encodes the files written by a reference libFLAC older than the target
version. Files of unknown provenance are re-encoded as well. The target
defaults to the installed encoder's own version.`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			encoder, err := ctx.encoderClient()
			if err != nil {
				return err
			}

			libraryDir, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}

			if status := deps.CheckEncoder(cfg.Encoder.Binary); !status.Available {
				return reencode.Setupf("%s", status.Detail)
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			lock := flock.New(cfg.LockPath())
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire run lock: %w", err)
			}
			if !locked {
				return fmt.Errorf("another flacup run is already active (lock held at %s)", cfg.LockPath())
			}
			defer func() {
				if err := lock.Unlock(); err != nil {
					logger.Warn("release run lock", logging.Error(err))
				}
			}()

			discovered, err := scan.FLACFiles(libraryDir, cfg.Scan.Extensions)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d FLAC files found in %d directories\n", len(discovered.Files), discovered.Directories)

			if jobs == 0 {
				jobs = cfg.Encoder.Jobs
			}

			engine := reencode.NewEngine(encoder,
				reencode.WithEngineLogger(logger),
				reencode.WithEngineProgress(newProgressFunc(out, "Encoding")))

			report, err := engine.Run(runCtx, libraryDir, discovered.Files, discovered.Directories, reencode.Options{
				MinVersion: minVersion,
				Force:      force,
				Jobs:       jobs,
				Verbose:    verbose,
				DryRun:     dryRun,
			})
			if err != nil {
				return err
			}

			renderReport(out, report)
			recordRun(cfg, logger, report)
			if runCtx.Err() != nil {
				return runCtx.Err()
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&minVersion, "min-version", "m", "", "Re-encode files older than this encoder version (default: installed version)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Re-encode every file regardless of vendor string")
	cmd.Flags().IntVarP(&jobs, "jobs", "n", 0, "Concurrent encoder processes (default from config)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Pass encoder output through to the console")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Select candidates and report without encoding")

	return cmd
}

// recordRun persists the report to the history store when enabled. History
// failures never fail the run; the encode work is already done.
func recordRun(cfg *config.Config, logger *slog.Logger, report *reencode.Report) {
	if !cfg.History.Enabled || report.DryRun {
		return
	}
	store, err := history.Open(cfg.HistoryPath())
	if err != nil {
		logger.Warn("open history store", logging.Error(err))
		return
	}
	defer store.Close()

	ctx := context.Background()
	if _, err := store.RecordRun(ctx, report); err != nil {
		logger.Warn("record run history", logging.Error(err))
		return
	}
	if err := store.Prune(ctx, cfg.History.KeepRuns); err != nil {
		logger.Warn("prune run history", logging.Error(err))
	}
}

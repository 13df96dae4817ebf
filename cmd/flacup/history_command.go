package main

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"flacup/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past re-encode runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := history.Open(cfg.HistoryPath())
			if err != nil {
				return fmt.Errorf("open history store: %w", err)
			}
			defer store.Close()

			runs, err := store.RecentRuns(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("load run history: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded")
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					shortRunID(run.ID),
					run.StartedAt.Local().Format("2006-01-02 15:04"),
					run.LibraryDir,
					run.TargetVersion,
					strconv.Itoa(run.Scanned),
					strconv.Itoa(run.Candidates),
					strconv.Itoa(run.FailureCount),
					formatSaved(run.BytesSaved()),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Run", "Started", "Library", "Target", "Scanned", "Encoded", "Failed", "Saved"},
				rows,
				4, 5, 6, 7,
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "Maximum number of runs to list (0 for all)")
	cmd.AddCommand(newHistoryFailuresCommand(ctx))
	return cmd
}

func newHistoryFailuresCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "failures <run-id>",
		Short: "Show the failed encoder invocations of a run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := history.Open(cfg.HistoryPath())
			if err != nil {
				return fmt.Errorf("open history store: %w", err)
			}
			defer store.Close()

			runID, err := resolveRunID(cmd, store, args[0])
			if err != nil {
				return err
			}
			failures, err := store.RunFailures(cmd.Context(), runID)
			if err != nil {
				return fmt.Errorf("load run failures: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(failures) == 0 {
				fmt.Fprintln(out, "No failures recorded for this run")
				return nil
			}
			for _, failure := range failures {
				fmt.Fprintf(out, "exit %d: %s\n", failure.ExitCode, failure.CommandLine)
			}
			return nil
		},
	}
}

// resolveRunID accepts either a full run ID or the shortened prefix shown
// in the history table.
func resolveRunID(cmd *cobra.Command, store *history.Store, candidate string) (string, error) {
	if len(candidate) > shortIDLength {
		return candidate, nil
	}
	runs, err := store.RecentRuns(cmd.Context(), 0)
	if err != nil {
		return "", fmt.Errorf("load run history: %w", err)
	}
	var matched string
	for _, run := range runs {
		if shortRunID(run.ID) == candidate {
			if matched != "" {
				return "", fmt.Errorf("run ID prefix %q is ambiguous; use the full ID", candidate)
			}
			matched = run.ID
		}
	}
	if matched == "" {
		return "", fmt.Errorf("no run found for ID %q", candidate)
	}
	return matched, nil
}

const shortIDLength = 8

func shortRunID(id string) string {
	if len(id) <= shortIDLength {
		return id
	}
	return id[:shortIDLength]
}

func formatSaved(saved int64) string {
	if saved < 0 {
		return "-" + humanize.Bytes(uint64(-saved))
	}
	return humanize.Bytes(uint64(saved))
}

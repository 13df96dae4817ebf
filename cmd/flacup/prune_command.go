package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"flacup/internal/config"
	"flacup/internal/prune"
)

func newPruneCommand(ctx *commandContext) *cobra.Command {
	var ignoreHidden bool
	var ignoreSizeKB int64
	var removeMode string

	cmd := &cobra.Command{
		Use:         "prune <directory>",
		Short:       "Find and optionally remove empty directories",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		Long: strings.TrimSpace(`
Finds leaf directories with no meaningful content under the given tree.
Hidden files and files below a size threshold can be disregarded, so a
directory holding only .DS_Store debris still counts as empty.`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch removeMode {
			case "yes", "no", "prompt":
			default:
				return fmt.Errorf("invalid --remove value %q (expected yes, no, or prompt)", removeMode)
			}

			root, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}

			empty, err := prune.Find(root, prune.Options{
				IgnoreHidden: ignoreHidden,
				IgnoreSizeKB: ignoreSizeKB,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(empty) == 0 {
				fmt.Fprintln(out, "No empty directories found")
				return nil
			}
			for _, dir := range empty {
				fmt.Fprintln(out, dir)
			}

			remove := removeMode == "yes"
			if removeMode == "prompt" {
				fmt.Fprintf(out, "\nRemove the above %d directories? (y/N) ", len(empty))
				reader := bufio.NewReader(cmd.InOrStdin())
				answer, _ := reader.ReadString('\n')
				remove = strings.EqualFold(strings.TrimSpace(answer), "y")
			}
			if !remove {
				fmt.Fprintf(out, "%d empty directories found\n", len(empty))
				return nil
			}
			if err := prune.Remove(empty); err != nil {
				return err
			}
			fmt.Fprintf(out, "Removed %d empty directories\n", len(empty))
			return nil
		},
	}

	cmd.Flags().BoolVar(&ignoreHidden, "ignore-hidden", false, "Disregard hidden files when judging emptiness")
	cmd.Flags().Int64Var(&ignoreSizeKB, "ignore-size", 0, "Disregard files smaller than this many KB")
	cmd.Flags().StringVar(&removeMode, "remove", "prompt", "Removal mode: yes, no, or prompt")

	return cmd
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"flacup/internal/config"
	"flacup/internal/fileset"
)

func newDiffCommand(ctx *commandContext) *cobra.Command {
	var namesOnly bool
	var fullPaths bool
	var lower bool

	cmd := &cobra.Command{
		Use:         "diff <dirA> <dirB>",
		Short:       "List files present in the first directory but not the second",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		Long: strings.TrimSpace(`
Compares two directory trees and prints the files of the first tree with
no counterpart in the second. By default paths are compared relative to
each root, so identically structured trees diff cleanly; --full-paths
compares absolute paths and --names compares base names only.`),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rootA, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}
			rootB, err := config.ExpandPath(args[1])
			if err != nil {
				return err
			}

			opts := fileset.Options{Relative: !fullPaths, Lower: lower}
			setA, err := fileset.Build([]string{rootA}, opts)
			if err != nil {
				return err
			}
			setB, err := fileset.Build([]string{rootB}, opts)
			if err != nil {
				return err
			}

			var diff *fileset.Set
			if namesOnly {
				diff = setA.SubtractNames(setB)
			} else {
				diff, err = setA.Subtract(setB)
				if err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			paths := diff.Paths()
			if len(paths) == 0 {
				fmt.Fprintln(out, "No differences found")
				return nil
			}
			for _, path := range paths {
				fmt.Fprintln(out, path)
			}
			fmt.Fprintf(out, "\n%d files only in %s\n", len(paths), args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&namesOnly, "names", false, "Compare base names only, ignoring folder structure")
	cmd.Flags().BoolVar(&fullPaths, "full-paths", false, "Compare absolute paths instead of root-relative paths")
	cmd.Flags().BoolVar(&lower, "lower", false, "Compare case-insensitively")

	return cmd
}

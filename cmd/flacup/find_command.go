package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"flacup/internal/config"
	"flacup/internal/fileset"
)

func newFindCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "find <directory> <name>...",
		Short:       "Locate files by name under a directory tree",
		Args:        cobra.MinimumNArgs(2),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}
			set, err := fileset.Build([]string{root}, fileset.Options{})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, match := range set.Find(args[1:]) {
				fmt.Fprintf(out, "\n%s:\n", match.Name)
				if len(match.Paths) == 0 {
					fmt.Fprintln(out, "No results")
					continue
				}
				for _, path := range match.Paths {
					fmt.Fprintln(out, path)
				}
			}
			return nil
		},
	}
	return cmd
}

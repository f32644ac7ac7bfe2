package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/toyz/testgen/internal/cli"
	"github.com/toyz/testgen/internal/generator"
)

func newCleanCmd() *cobra.Command {
	var (
		outDir  string
		quiet   bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "clean <file.java | dir | dir/...>...",
		Short: "Remove generated test classes that were never edited",
		Long: `Regenerate the test class for every input and delete the existing
<ClassName>Test.java only when it is byte-for-byte identical. Edited test
classes are kept and reported.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			diagnostics := cli.NewDiagnosticSystemWithWriters(cli.LevelFor(quiet, verbose), cmd.OutOrStdout(), cmd.ErrOrStderr())

			removed, kept, err := cli.NewCleaner(generator.NewGenerator()).CleanGeneratedFiles(args, outDir)
			for _, path := range removed {
				diagnostics.PhaseProgress(fmt.Sprintf("Removing %s", path))
			}
			for _, path := range kept {
				diagnostics.Warn("kept %s: it differs from the generated class", path)
			}
			if err != nil {
				return err
			}

			diagnostics.Complete(fmt.Sprintf("removed %d file(s), kept %d", len(removed), len(kept)))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&outDir, "out", "o", "", "directory the tests were generated into (default: next to each input)")
	flags.BoolVarP(&quiet, "quiet", "q", false, "only show errors")
	flags.BoolVarP(&verbose, "verbose", "v", false, "show detailed progress")
	cmd.MarkFlagsMutuallyExclusive("quiet", "verbose")
	return cmd
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/toyz/testgen/internal/cli"
	"github.com/toyz/testgen/internal/generator"
)

type generateOptions struct {
	outDir  string
	stdout  bool
	quiet   bool
	verbose bool
	jobs    int
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate <file.java | dir | dir/...>...",
		Short: "Generate test classes for Java source files",
		Long: `Generate a <ClassName>Test.java file for every input.

Inputs may be .java files, directories (their .java files only) or
dir/... patterns (every .java file below dir). Files already named
*Test.java are skipped when scanning directories.

Every input is processed even when some fail; the command exits
non-zero if any input failed.`,
		Example: `  testgen generate src/main/java/com/example/UserService.java
  testgen generate --out src/test/java/com/example ./src/main/java/com/example
  testgen generate --stdout ./src/...`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.outDir, "out", "o", "", "directory for generated files (default: next to each input)")
	flags.BoolVar(&opts.stdout, "stdout", false, "print generated classes instead of writing files")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "only show errors")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "show detailed progress and error chains")
	flags.IntVarP(&opts.jobs, "jobs", "j", 0, "files processed concurrently (default: GOMAXPROCS)")
	cmd.MarkFlagsMutuallyExclusive("quiet", "verbose")
	cmd.MarkFlagsMutuallyExclusive("out", "stdout")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string, opts *generateOptions) error {
	// generated classes own stdout in --stdout mode
	progress := cmd.OutOrStdout()
	if opts.stdout {
		progress = cmd.ErrOrStderr()
	}
	diagnostics := cli.NewDiagnosticSystemWithWriters(cli.LevelFor(opts.quiet, opts.verbose), progress, cmd.ErrOrStderr())
	diagnostics.Header("Test Generator")

	g := cli.NewGeneratorWith(generator.NewGenerator(), diagnostics, cmd.OutOrStdout(), opts.verbose)
	return g.Run(cmd.Context(), cli.Config{
		Inputs:  args,
		OutDir:  opts.outDir,
		Stdout:  opts.stdout,
		Jobs:    opts.jobs,
		Verbose: opts.verbose,
	})
}

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/toyz/testgen/internal/errors"
	"github.com/toyz/testgen/internal/generator"
)

// ClassGenerator generates a test class and reports the modelled class name
type ClassGenerator interface {
	GenerateClass(source string) (*generator.Result, error)
}

// GenerationSummary records the outcome of a batch run
type GenerationSummary struct {
	Processed      int
	GeneratedFiles []string
	Failed         []string
	Duration       time.Duration
}

// fileResult is the outcome for a single input, kept in input order
type fileResult struct {
	path   string
	result *generator.Result
	err    error
}

// Generator coordinates the CLI generation process
type Generator struct {
	scanner     *SourceScanner
	generator   ClassGenerator
	diagnostics *DiagnosticSystem
	reporter    *DiagnosticReporter
	stdout      io.Writer
	summary     GenerationSummary
}

// NewGenerator creates a new CLI generator
func NewGenerator(diagnostics *DiagnosticSystem, verbose bool) *Generator {
	return NewGeneratorWith(generator.NewGenerator(), diagnostics, os.Stdout, verbose)
}

// NewGeneratorWith creates a CLI generator over a custom class generator and output stream
func NewGeneratorWith(gen ClassGenerator, diagnostics *DiagnosticSystem, stdout io.Writer, verbose bool) *Generator {
	return &Generator{
		scanner:     NewSourceScanner(),
		generator:   gen,
		diagnostics: diagnostics,
		reporter:    NewDiagnosticReporter(diagnostics.ErrorWriter(), verbose),
		stdout:      stdout,
	}
}

// GetSummary returns the generation summary
func (g *Generator) GetSummary() GenerationSummary {
	return g.summary
}

// Run generates a test class for every input. Inputs are processed concurrently;
// one failing input does not stop the others. The returned error lists every failure.
func (g *Generator) Run(ctx context.Context, config Config) error {
	start := time.Now()
	g.summary = GenerationSummary{GeneratedFiles: make([]string, 0), Failed: make([]string, 0)}

	g.diagnostics.PhaseHeader("Discovery")
	files, err := g.scanner.Scan(config.Inputs)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return errors.New(errors.FileSystemErrorCode, "no Java source files found").
			WithSuggestion("pass .java files, directories, or dir/... patterns")
	}
	g.diagnostics.PhaseItem(fmt.Sprintf("Found %d source file(s)", len(files)))

	if config.OutDir != "" && !config.Stdout {
		if err := os.MkdirAll(config.OutDir, 0o755); err != nil {
			return errors.WrapFileSystemError("create directory", config.OutDir, err)
		}
	}

	g.diagnostics.PhaseHeader("Generation")
	results := g.generateAll(ctx, files, config.Jobs)

	failures := errors.NewMultipleErrors()
	written := make(map[string]string, len(results))
	for _, r := range results {
		g.summary.Processed++

		if r.err == nil {
			g.diagnostics.Verbose("generated %s from %s", r.result.TestFileName(), r.path)
			r.err = g.emit(r, config, written)
		}
		if r.err != nil {
			g.summary.Failed = append(g.summary.Failed, r.path)
			g.diagnostics.PhaseFailure(r.path)
			g.reporter.ReportError(r.path, r.err)
			failures.Add(fmt.Errorf("%s: %w", r.path, r.err))
		}
	}

	g.summary.Duration = time.Since(start)
	g.diagnostics.Summary("Summary", map[string]interface{}{
		"Processed": g.summary.Processed,
		"Generated": len(g.summary.GeneratedFiles),
		"Failed":    len(g.summary.Failed),
		"Duration":  g.summary.Duration.Round(time.Millisecond),
	})

	if !failures.IsEmpty() {
		return failures
	}
	g.diagnostics.Complete("Generation complete!")
	return nil
}

// generateAll runs the generator over files with at most jobs in flight
func (g *Generator) generateAll(ctx context.Context, files []string, jobs int) []fileResult {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]fileResult, len(files))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(jobs)
	for i, path := range files {
		i, path := i, path
		group.Go(func() error {
			r := fileResult{path: path}
			if err := ctx.Err(); err != nil {
				r.err = err
			} else {
				r.result, r.err = g.generateFile(path)
			}

			results[i] = r
			return nil
		})
	}
	_ = group.Wait()

	return results
}

func (g *Generator) generateFile(path string) (*generator.Result, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFileSystemError("read", path, err)
	}
	return g.generator.GenerateClass(string(source))
}

// emit writes a generated class to stdout or to its test file.
// written maps each target already produced in this run to its source.
func (g *Generator) emit(r fileResult, config Config, written map[string]string) error {
	if config.Stdout {
		if _, err := io.WriteString(g.stdout, r.result.Output); err != nil {
			return errors.WrapFileSystemError("write", "stdout", err)
		}
		g.summary.GeneratedFiles = append(g.summary.GeneratedFiles, "-")
		return nil
	}

	target := OutputPath(r.path, r.result, config.OutDir)
	if first, ok := written[target]; ok {
		return errors.New(errors.FileSystemErrorCode,
			fmt.Sprintf("%s was already generated from %s in this run", target, first)).
			WithContext("path", target).
			WithSuggestion("generate classes with the same name into different --out directories")
	}
	written[target] = r.path

	g.diagnostics.PhaseProgress(fmt.Sprintf("Writing %s", target))
	if err := os.WriteFile(target, []byte(r.result.Output), 0o644); err != nil {
		return errors.WrapFileSystemError("write", target, err)
	}
	g.summary.GeneratedFiles = append(g.summary.GeneratedFiles, target)
	return nil
}

// OutputPath returns where the test class generated from source is written
func OutputPath(source string, result *generator.Result, outDir string) string {
	dir := outDir
	if dir == "" {
		dir = filepath.Dir(source)
	}
	return filepath.Join(dir, result.TestFileName())
}

package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"sort"
	"strings"


	"github.com/toyz/testgen/internal/errors"
)

// DiagnosticReporter prints generation failures with their location and suggestions
type DiagnosticReporter struct {
	out     io.Writer
	verbose bool
}

// NewDiagnosticReporter creates a new diagnostic reporter
func NewDiagnosticReporter(out io.Writer, verbose bool) *DiagnosticReporter {
	return &DiagnosticReporter{
		out:     out,
		verbose: verbose,
	}
}

// ReportError reports the failure of a single input file
func (r *DiagnosticReporter) ReportError(path string, err error) {
	fmt.Fprintf(r.out, "\nERROR: Test Generation Failed\n")
	fmt.Fprintf(r.out, "=============================\n\n")

	r.printErrorHeader(errors.CodeOf(err))
	fmt.Fprintf(r.out, "Message: %s\n\n", err.Error())

	detail := innermost(err)
	if detail == nil {
		fmt.Fprintf(r.out, "File: %s\n\n", path)
		return
	}

	loc := detail.Location()
	if loc.Line > 0 {
		fmt.Fprintf(r.out, "Location: %s:%d:%d\n\n", path, loc.Line, loc.Column)
	} else {
		fmt.Fprintf(r.out, "File: %s\n\n", path)
	}

	if ctx := detail.Context(); len(ctx) > 0 {
		r.printContext(ctx)
	}

	if suggestions := detail.Suggestions(); len(suggestions) > 0 {
		fmt.Fprintf(r.out, "Suggestions:\n")
		for i, s := range suggestions {
			fmt.Fprintf(r.out, "   %d. %s\n", i+1, s)
		}
		fmt.Fprintf(r.out, "\n")
	}

	if r.verbose {
		fmt.Fprintf(r.out, "Error chain:\n")
		for e := err; e != nil; e = stderrors.Unwrap(e) {
			fmt.Fprintf(r.out, "   %T: %s\n", e, e.Error())
		}
		fmt.Fprintf(r.out, "\n")
	}
}

// innermost returns the deepest error in the chain that carries diagnostics
func innermost(err error) errors.TestgenError {
	var found errors.TestgenError
	for err != nil {
		var te errors.TestgenError
		if !stderrors.As(err, &te) {
			break
		}
		found = te
		err = te.Unwrap()
	}
	return found
}

func (r *DiagnosticReporter) printErrorHeader(code errors.ErrorCode) {
	var title string
	switch code {
	case errors.MalformedInputErrorCode:
		title = "Malformed Input"
	case errors.NoDeclarationFoundErrorCode:
		title = "No Declaration Found"
	case errors.TemplateErrorCode:
		title = "Template Error"
	case errors.FileSystemErrorCode:
		title = "File System Error"
	case errors.GenerationErrorCode:
		title = "Generation Error"
	default:
		title = "Unknown Error"
	}

	fmt.Fprintf(r.out, "Type: %s\n", title)
	fmt.Fprintf(r.out, "%s\n\n", strings.Repeat("-", len(title)+6))
}

func (r *DiagnosticReporter) printContext(context map[string]interface{}) {
	keys := make([]string, 0, len(context))
	for key := range context {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fmt.Fprintf(r.out, "Context:\n")
	for _, key := range keys {
		fmt.Fprintf(r.out, "   %s: %v\n", formatContextKey(key), context[key])
	}
	fmt.Fprintf(r.out, "\n")
}

// formatContextKey converts snake_case keys to Title Case
func formatContextKey(key string) string {
	parts := strings.Split(key, "_")
	for i, part := range parts {
		if len(part) > 0 {
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, " ")
}

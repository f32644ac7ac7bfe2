package parser

import (
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/toyz/testgen/internal/errors"
)

const maxTokenLength = 40

// SyntaxErrorReporter turns the first broken node of a syntax tree into a MalformedInputError
type SyntaxErrorReporter struct {
	source []byte
}

// NewSyntaxErrorReporter creates a reporter for the given source
func NewSyntaxErrorReporter(source []byte) *SyntaxErrorReporter {
	return &SyntaxErrorReporter{source: source}
}

// Report returns nil when the tree parsed cleanly
func (r *SyntaxErrorReporter) Report(root *sitter.Node) error {
	if root == nil {
		return errors.NewMalformedInputError("source could not be parsed")
	}
	if !root.HasError() {
		return nil
	}

	broken := firstBrokenNode(root)
	if broken == nil {
		// HasError without a reachable ERROR or MISSING node; report the whole unit
		return errors.NewMalformedInputError("source is not a valid compilation unit").
			WithSuggestion("Check that braces, parentheses and semicolons are balanced")
	}

	point := broken.StartPoint()
	loc := errors.SourceLocation{Line: int(point.Row) + 1, Column: int(point.Column) + 1}

	var err *errors.MalformedInputError
	if broken.IsMissing() {
		err = errors.NewMalformedInputError(fmt.Sprintf("missing '%s'", broken.Type()))
	} else {
		err = errors.NewMalformedInputErrorWithToken("unexpected syntax", r.token(broken), int(broken.StartByte()))
	}

	return err.WithLocation(loc).WithSuggestion(r.suggestion(broken))
}

func (r *SyntaxErrorReporter) token(n *sitter.Node) string {
	text := strings.TrimSpace(n.Content(r.source))
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	if len(text) > maxTokenLength {
		text = text[:maxTokenLength] + "..."
	}
	return text
}

func (r *SyntaxErrorReporter) suggestion(n *sitter.Node) string {
	switch {
	case n.IsMissing() && (n.Type() == "}" || n.Type() == ")"):
		return fmt.Sprintf("Add the missing '%s'", n.Type())
	case n.IsMissing() && n.Type() == ";":
		return "Terminate the statement with ';'"
	case int(n.EndByte()) >= len(r.source):
		return "The source ends unexpectedly; check for unbalanced braces"
	default:
		return "Check the syntax near the reported position"
	}
}

// firstBrokenNode returns the first ERROR or MISSING node in document order
func firstBrokenNode(n *sitter.Node) *sitter.Node {
	if n.Type() == nodeError || n.IsMissing() {
		return n
	}
	if !n.HasError() {
		return nil
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if found := firstBrokenNode(n.Child(i)); found != nil {
			return found
		}
	}
	return nil
}

package annotations

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/toyz/testgen/internal/errors"
)

// Annotation represents a parsed Java annotation expression such as
// @Service, @org.springframework.stereotype.Service or @RequestMapping("/users")
type Annotation struct {
	Pos  lexer.Position
	Path []string      `parser:"'@' @Ident ( '.' @Ident )*"`
	Args *ArgumentList `parser:"( '(' @@ ')' )?"`
}

// ArgumentList is the bracket-balanced token sequence between parentheses
type ArgumentList struct {
	Elements []*Element `parser:"@@*"`
}

// Element is a nested group or a single token
type Element struct {
	Parens *ArgumentList `parser:"  '(' @@ ')'"`
	Braces *ArgumentList `parser:"| '{' @@ '}'"`
	Token  *string       `parser:"| @( TextBlock | String | Char | Number | Ident | Punct )"`
}

// Name returns the annotation name exactly as written, qualified if it was qualified
func (a *Annotation) Name() string {
	return strings.Join(a.Path, ".")
}

// SimpleName returns the last segment of the annotation name
func (a *Annotation) SimpleName() string {
	if len(a.Path) == 0 {
		return ""
	}
	return a.Path[len(a.Path)-1]
}

// HasArguments reports whether the annotation was written with a parenthesised argument list
func (a *Annotation) HasArguments() bool {
	return a.Args != nil
}

// Arguments returns the top-level arguments, each rendered from its tokens
func (a *Annotation) Arguments() []string {
	if a.Args == nil || len(a.Args.Elements) == 0 {
		return nil
	}

	var (
		args    []string
		current strings.Builder
	)
	for _, element := range a.Args.Elements {
		if element.Token != nil && *element.Token == "," {
			args = append(args, current.String())
			current.Reset()
			continue
		}
		element.render(&current)
	}
	return append(args, current.String())
}

func (l *ArgumentList) render(b *strings.Builder) {
	for _, element := range l.Elements {
		element.render(b)
	}
}

func (e *Element) render(b *strings.Builder) {
	switch {
	case e.Parens != nil:
		b.WriteString("(")
		e.Parens.render(b)
		b.WriteString(")")
	case e.Braces != nil:
		b.WriteString("{")
		e.Braces.render(b)
		b.WriteString("}")
	case e.Token != nil:
		b.WriteString(*e.Token)
	}
}

// Parser parses Java annotation expressions with alecthomas/participle
type Parser struct {
	parser *participle.Parser[Annotation]
}

// NewParser creates a new annotation parser
func NewParser() *Parser {
	lex := lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `//[^\n]*|/\*([^*]|\*+[^*/])*\*+/`},
		{Name: "TextBlock", Pattern: `"""(?s:.*?)"""`},
		{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
		{Name: "Char", Pattern: `'(\\.|[^'\\])*'`},
		{Name: "Number", Pattern: `[0-9][0-9a-zA-Z_]*(\.[0-9a-zA-Z_]+)?`},
		// Java identifier start and part characters
		{Name: "Ident", Pattern: `[\p{L}\p{Nl}\p{Sc}\p{Pc}][\p{L}\p{N}\p{Mn}\p{Mc}\p{Sc}\p{Pc}]*`},
		{Name: "Bracket", Pattern: `[(){}]`},
		{Name: "Punct", Pattern: `[^\s\p{L}\p{N}\p{Mn}\p{Mc}\p{Sc}\p{Pc}(){}"']`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	return &Parser{
		parser: participle.MustBuild[Annotation](
			participle.Lexer(lex),
			participle.Elide("Whitespace", "Comment"),
			participle.UseLookahead(2),
		),
	}
}

// Parse parses a single annotation expression
func (p *Parser) Parse(text string) (*Annotation, error) {
	annotation, err := p.parser.ParseString("", strings.TrimSpace(text))
	if err != nil {
		return nil, toMalformedInput(text, err)
	}
	return annotation, nil
}

var defaultParser = NewParser()

// Parse parses a single annotation expression with the shared parser
func Parse(text string) (*Annotation, error) {
	return defaultParser.Parse(text)
}

func toMalformedInput(text string, err error) error {
	var perr participle.Error
	if !stderrors.As(err, &perr) {
		return errors.NewMalformedInputError(fmt.Sprintf("invalid annotation %q", text)).WithCause(err)
	}

	pos := perr.Position()
	return errors.NewMalformedInputError(fmt.Sprintf("invalid annotation %q: %s", text, perr.Message())).
		WithLocation(errors.SourceLocation{Line: pos.Line, Column: pos.Column}).
		WithCause(err)
}

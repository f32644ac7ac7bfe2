package generator

import (
	"fmt"

	"github.com/toyz/testgen/internal/classifier"
	"github.com/toyz/testgen/internal/errors"
	"github.com/toyz/testgen/internal/parser"
	"github.com/toyz/testgen/internal/templates"
)

// Stages reported on GenerationError
const (
	StageBuild    = "build"
	StageClassify = "classify"
	StageAssemble = "assemble"
)

var _ TestGenerator = (*Generator)(nil)

// Generator composes model building, classification and assembly.
// It holds no per-call state and may be shared between goroutines.
type Generator struct {
	builder   ModelBuilder
	assembler TestAssembler
}

// NewGenerator creates a generator backed by the tree-sitter model builder and the built-in templates
func NewGenerator() *Generator {
	return NewGeneratorWith(parser.NewJavaParser(), templates.NewAssembler())
}

// NewGeneratorWith creates a generator over custom collaborators
func NewGeneratorWith(builder ModelBuilder, assembler TestAssembler) *Generator {
	return &Generator{
		builder:   builder,
		assembler: assembler,
	}
}

// Result is a generated test class
type Result struct {
	ClassName string // name of the class the tests were generated for
	Output    string
}

// TestFileName returns the conventional file name of the generated test class
func (r *Result) TestFileName() string {
	return r.ClassName + "Test.java"
}

// Generate produces the text of a test class for the first class or interface in source.
// Any failure is returned as a *errors.GenerationError and no partial output is returned.
func (g *Generator) Generate(source string) (string, error) {
	result, err := g.GenerateClass(source)
	if err != nil {
		return "", err
	}
	return result.Output, nil
}

// GenerateClass is Generate that also reports the name of the modelled class
func (g *Generator) GenerateClass(source string) (result *Result, err error) {
	stage := StageBuild
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = errors.WrapGenerateError(stage, fmt.Errorf("panic during %s: %v", stage, r))
		}
	}()

	class, err := g.builder.Build(source)
	if err != nil {
		return nil, errors.WrapGenerateError(stage, err)
	}
	if class == nil {
		return nil, errors.WrapGenerateError(stage, errors.NewNoDeclarationFoundError())
	}

	stage = StageClassify
	category := classifier.ClassifyClass(class)

	stage = StageAssemble
	output, err := g.assembler.Assemble(class, category)
	if err != nil {
		return nil, errors.WrapGenerateError(stage, err)
	}

	return &Result{ClassName: class.Name, Output: output}, nil
}

// Package testgen generates JUnit 5 / Mockito test skeletons from Java source.
//
// A single Generator is safe for concurrent use:
//
//	out, err := testgen.Generate(source)
//	if err != nil {
//		// err.Error() starts with "Failed to generate tests: "
//	}
package testgen

import (
	"github.com/toyz/testgen/internal/errors"
	"github.com/toyz/testgen/internal/generator"
)

// ErrorCode identifies the kind of failure behind a generation error
type ErrorCode = errors.ErrorCode

// Failure kinds reported by Code
const (
	MalformedInput     = errors.MalformedInputErrorCode
	NoDeclarationFound = errors.NoDeclarationFoundErrorCode
	GenerationFailure  = errors.GenerationErrorCode
	TemplateFailure    = errors.TemplateErrorCode
)

// Generator produces test source from Java source
type Generator interface {
	Generate(source string) (string, error)
}

var defaultGenerator = generator.NewGenerator()

// New returns a new Generator
func New() Generator {
	return generator.NewGenerator()
}

// Generate runs the default generator over source
func Generate(source string) (string, error) {
	return defaultGenerator.Generate(source)
}

// Code reports the most specific failure kind carried by err
func Code(err error) ErrorCode {
	return errors.CodeOf(err)
}

package errors

import "fmt"

// MalformedInputError reports source text that cannot be parsed as a compilation unit
type MalformedInputError struct {
	*BaseError
	Token    string // the offending source text, truncated
	Position int    // byte offset in the input where the error occurred
}

// NewMalformedInputError creates a new malformed input error
func NewMalformedInputError(message string) *MalformedInputError {
	return &MalformedInputError{
		BaseError: New(MalformedInputErrorCode, message),
	}
}

// NewMalformedInputErrorWithToken creates a malformed input error with token information
func NewMalformedInputErrorWithToken(message, token string, position int) *MalformedInputError {
	if token != "" {
		message = fmt.Sprintf("%s (near '%s')", message, token)
	}

	return &MalformedInputError{
		BaseError: New(MalformedInputErrorCode, message),
		Token:     token,
		Position:  position,
	}
}

// WithLocation adds location information to the error
func (e *MalformedInputError) WithLocation(loc SourceLocation) *MalformedInputError {
	e.BaseError.WithLocation(loc)
	return e
}

// WithCause adds an underlying error cause
func (e *MalformedInputError) WithCause(cause error) *MalformedInputError {
	e.BaseError.WithCause(cause)
	return e
}

// WithSuggestion adds a helpful suggestion
func (e *MalformedInputError) WithSuggestion(suggestion string) *MalformedInputError {
	e.BaseError.WithSuggestion(suggestion)
	return e
}

// NoDeclarationFoundError reports well-formed source without a class or interface
type NoDeclarationFoundError struct {
	*BaseError
}

// NewNoDeclarationFoundError creates a new missing declaration error
func NewNoDeclarationFoundError() *NoDeclarationFoundError {
	return &NoDeclarationFoundError{
		BaseError: New(NoDeclarationFoundErrorCode, "no class or interface declaration found").
			WithSuggestion("Submit the source of a single class or interface"),
	}
}

// GenerationError represents an error during test generation
type GenerationError struct {
	*BaseError
	Stage string // stage of generation where error occurred
}


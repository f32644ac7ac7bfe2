package errors

import "fmt"

// GenerationFailurePrefix starts every message produced by WrapGenerateError
const GenerationFailurePrefix = "Failed to generate tests: "

// WrapGenerateError wraps any failure of a generation call into the single error
// kind the engine exposes. The cause stays reachable through Unwrap.
func WrapGenerateError(stage string, cause error) *GenerationError {
	return &GenerationError{
		BaseError: Wrap(GenerationErrorCode, GenerationFailurePrefix+cause.Error(), cause),
		Stage:     stage,
	}
}

// WrapTemplateError wraps template processing errors
func WrapTemplateError(templateName, operation string, cause error) *GenerationError {
	message := fmt.Sprintf("failed to %s template '%s'", operation, templateName)
	return &GenerationError{
		BaseError: Wrap(TemplateErrorCode, message, cause).
			WithContext("template", templateName),
		Stage: operation,
	}
}

// TemplateError creates a template error
func TemplateError(templateName, operation, message string) *GenerationError {
	fullMessage := fmt.Sprintf("template error in '%s' during %s: %s", templateName, operation, message)
	return &GenerationError{
		BaseError: New(TemplateErrorCode, fullMessage).
			WithContext("template", templateName),
		Stage: operation,
	}
}

// WrapFileSystemError wraps file system related errors
func WrapFileSystemError(operation, path string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s file '%s'", operation, path)
	return Wrap(FileSystemErrorCode, message, cause).
		WithContext("operation", operation).
		WithContext("path", path)
}

// WrapConfigurationError wraps configuration-related errors
func WrapConfigurationError(configType, operation string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s configuration '%s'", operation, configType)
	return Wrap(ConfigurationErrorCode, message, cause).
		WithContext("config_type", configType).
		WithContext("operation", operation)
}

// ConfigurationError creates a configuration error
func ConfigurationError(key, message string) *BaseError {
	fullMessage := fmt.Sprintf("configuration error in '%s': %s", key, message)
	return New(ConfigurationErrorCode, fullMessage).
		WithContext("config_key", key)
}

// WrapTransportError wraps errors raised by the HTTP engines
func WrapTransportError(engine, operation string, cause error) *BaseError {
	message := fmt.Sprintf("%s server failed to %s", engine, operation)
	return Wrap(TransportErrorCode, message, cause).
		WithContext("engine", engine)
}

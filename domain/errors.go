package domain

import "fmt"

// Error codes for the lint error taxonomy
const (
	ErrCodeConfigError       = "CONFIG_ERROR"
	ErrCodeParseDegraded     = "PARSE_DEGRADED"
	ErrCodeInternalRuleError = "INTERNAL_RULE_ERROR"
	ErrCodeIOError           = "IO_ERROR"
	ErrCodeFileNotFound      = "FILE_NOT_FOUND"
	ErrCodeInvalidInput      = "INVALID_INPUT"
	ErrCodeUnsupportedFormat = "UNSUPPORTED_FORMAT"
	ErrCodeOutputError       = "OUTPUT_ERROR"
	ErrCodeValidationError   = "VALIDATION_ERROR"
)

// LintError is the error type used across the lint domain
type LintError struct {
	Code    string
	Message string
	Cause   error
}

// Error implements the error interface
func (e LintError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As
func (e LintError) Unwrap() error {
	return e.Cause
}

// NewLintError creates a new LintError with an arbitrary code
func NewLintError(code, message string, cause error) error {
	return LintError{Code: code, Message: message, Cause: cause}
}

// NewConfigError creates a configuration error.
// Configuration errors are fatal: they abort the run before any
// document is evaluated.
func NewConfigError(message string, cause error) error {
	return LintError{Code: ErrCodeConfigError, Message: message, Cause: cause}
}

// NewParseDegradedError creates a parse degradation error.
// These are never propagated as errors; the engine converts them into
// an informational finding on the affected document.
func NewParseDegradedError(message string, cause error) error {
	return LintError{Code: ErrCodeParseDegraded, Message: message, Cause: cause}
}

// NewInternalRuleError creates an error for a detector that failed on
// unexpected input. It is isolated per rule and surfaces as a finding.
func NewInternalRuleError(ruleID string, cause error) error {
	return LintError{
		Code:    ErrCodeInternalRuleError,
		Message: fmt.Sprintf("rule %q failed", ruleID),
		Cause:   cause,
	}
}

// NewIOError creates an I/O error
func NewIOError(message string, cause error) error {
	return LintError{Code: ErrCodeIOError, Message: message, Cause: cause}
}

// NewFileNotFoundError creates a file not found error
func NewFileNotFoundError(path string, cause error) error {
	return LintError{
		Code:    ErrCodeFileNotFound,
		Message: fmt.Sprintf("file not found: %s", path),
		Cause:   cause,
	}
}

// NewInvalidInputError creates an invalid input error
func NewInvalidInputError(message string, cause error) error {
	return LintError{Code: ErrCodeInvalidInput, Message: message, Cause: cause}
}

// NewUnsupportedFormatError creates an error for files the linter
// cannot analyze
func NewUnsupportedFormatError(path string) error {
	return LintError{
		Code:    ErrCodeUnsupportedFormat,
		Message: fmt.Sprintf("unsupported file format: %s", path),
	}
}

// NewOutputError creates an output error
func NewOutputError(message string, cause error) error {
	return LintError{Code: ErrCodeOutputError, Message: message, Cause: cause}
}

// NewValidationError creates a validation error
func NewValidationError(message string, cause error) error {
	return LintError{Code: ErrCodeValidationError, Message: message, Cause: cause}
}

// LintExitError carries a process exit code from the severity gate to main
type LintExitError struct {
	Code    int
	Message string
}

func (e *LintExitError) Error() string {
	return e.Message
}

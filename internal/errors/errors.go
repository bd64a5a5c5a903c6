// Package errors defines the stable error code system for webforge.
package errors

import (
	"errors"
	"fmt"
	"io"
)

// Code is a stable error code string.
type Code string

// Error codes. Stable public contract; scripts may match on these.
const (
	EUsage Code = "E_USAGE"

	// Prerequisite error codes
	ENodeNotInstalled   Code = "E_NODE_NOT_INSTALLED"
	ENodeVersion        Code = "E_NODE_VERSION"
	EPMNotFound         Code = "E_PM_NOT_FOUND"
	EGitNotInstalled    Code = "E_GIT_NOT_INSTALLED"
	EDockerNotInstalled Code = "E_DOCKER_NOT_INSTALLED"

	// Configuration error codes
	EManifestInvalid Code = "E_MANIFEST_INVALID"
	EManifestExists  Code = "E_MANIFEST_EXISTS"
	ESettingsInvalid Code = "E_SETTINGS_INVALID"
	EPromptFailed    Code = "E_PROMPT_FAILED"

	// Step execution error codes
	EWriteFailed   Code = "E_WRITE_FAILED"
	EGitInitFailed Code = "E_GIT_INIT_FAILED"
	EInstallFailed Code = "E_INSTALL_FAILED"
	EAuditFindings Code = "E_AUDIT_FINDINGS"
	ETestsFailed   Code = "E_TESTS_FAILED"
	EBuildFailed   Code = "E_BUILD_FAILED"

	// Sequencer error codes
	EInterrupted Code = "E_INTERRUPTED"
	ELogFailed   Code = "E_LOG_FAILED"
	EInternal    Code = "E_INTERNAL"
)

// ForgeError is the standard error type for webforge errors.
type ForgeError struct {
	Code    Code
	Msg     string
	Cause   error
	Details map[string]string // optional structured context
}

// Error returns the stable error format: "CODE: message".
func (e *ForgeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *ForgeError) Unwrap() error {
	return e.Cause
}

// New creates a new ForgeError with the given code and message.
func New(code Code, msg string) error {
	return &ForgeError{Code: code, Msg: msg}
}

// NewWithDetails creates a new ForgeError with code, message, and details.
// Details map is defensively copied (nil if empty).
func NewWithDetails(code Code, msg string, details map[string]string) error {
	return &ForgeError{Code: code, Msg: msg, Details: copyDetails(details)}
}

// Wrap creates a new ForgeError wrapping an underlying error.
func Wrap(code Code, msg string, err error) error {
	return &ForgeError{Code: code, Msg: msg, Cause: err}
}

// WrapWithDetails creates a new ForgeError wrapping an underlying error with details.
func WrapWithDetails(code Code, msg string, err error, details map[string]string) error {
	return &ForgeError{Code: code, Msg: msg, Cause: err, Details: copyDetails(details)}
}

// GetCode extracts the error code from an error, or empty string if not a ForgeError.
func GetCode(err error) Code {
	var fe *ForgeError
	if errors.As(err, &fe) {
		return fe.Code
	}
	return ""
}

// AsForgeError returns (*ForgeError, true) if err is or wraps a ForgeError.
func AsForgeError(err error) (*ForgeError, bool) {
	var fe *ForgeError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

func copyDetails(details map[string]string) map[string]string {
	if len(details) == 0 {
		return nil
	}
	cp := make(map[string]string, len(details))
	for k, v := range details {
		cp[k] = v
	}
	return cp
}

// ExitCode returns the appropriate exit code for an error.
// Returns 0 if err is nil, 2 for E_USAGE, 1 for all other errors.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if GetCode(err) == EUsage {
		return 2
	}
	return 1
}

// Print writes the error to w in the stable stderr format:
//
//	error_code: <CODE>
//	<message>
func Print(w io.Writer, err error) {
	if err == nil {
		return
	}
	var fe *ForgeError
	if errors.As(err, &fe) {
		fmt.Fprintf(w, "error_code: %s\n", fe.Code)
		fmt.Fprintln(w, fe.Msg)
	} else {
		// Fallback for non-ForgeError errors (should not happen in practice)
		fmt.Fprintln(w, err.Error())
	}
}

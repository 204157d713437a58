package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Path errors
	ErrPathOutsideRoot     ErrorCode = "PATH_OUTSIDE_ROOT"
	ErrRootNotFound        ErrorCode = "ROOT_NOT_FOUND"
	ErrProjectRootMismatch ErrorCode = "PROJECT_ROOT_MISMATCH"

	// Configuration errors
	ErrConfigMissing         ErrorCode = "CONFIG_MISSING"
	ErrConfigParse           ErrorCode = "CONFIG_PARSE"
	ErrConfigExists          ErrorCode = "CONFIG_EXISTS"
	ErrProjectConfigInvalid  ErrorCode = "PROJECT_CONFIG_INVALID"
	ErrPlaceholderUnknown    ErrorCode = "PLACEHOLDER_UNKNOWN"
	ErrVcpkgHostPathsMissing ErrorCode = "VCPKG_HOST_PATHS_MISSING"

	// Spec errors
	ErrMountSpecInvalid     ErrorCode = "MOUNT_SPEC_INVALID"
	ErrMountHostMissing     ErrorCode = "MOUNT_HOST_MISSING"
	ErrToolchainPathMissing ErrorCode = "TOOLCHAIN_PATH_MISSING"

	// Wrapper errors
	ErrWrapperNameInvalid     ErrorCode = "WRAPPER_NAME_INVALID"
	ErrWrapperPathIsDirectory ErrorCode = "WRAPPER_PATH_IS_DIRECTORY"

	// External tool errors
	ErrExternalToolMissing ErrorCode = "EXTERNAL_TOOL_MISSING"
	ErrExternalCommand     ErrorCode = "EXTERNAL_COMMAND"

	// Diagnostics
	ErrDoctorFailed ErrorCode = "DOCTOR_FAILED"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
)

// WincrossError represents a structured error with code and details
type WincrossError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *WincrossError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *WincrossError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *WincrossError) Is(target error) bool {
	var targetErr *WincrossError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new WincrossError with the given code and message
func New(code ErrorCode, message string) *WincrossError {
	return &WincrossError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new WincrossError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *WincrossError {
	return &WincrossError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a WincrossError
func Wrap(err error, code ErrorCode, message string) *WincrossError {
	if err == nil {
		return nil
	}
	return &WincrossError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *WincrossError {
	if err == nil {
		return nil
	}
	return &WincrossError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *WincrossError) WithDetail(key string, value interface{}) *WincrossError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var wErr *WincrossError
	if errors.As(err, &wErr) {
		return wErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a WincrossError
func GetErrorCode(err error) ErrorCode {
	var wErr *WincrossError
	if errors.As(err, &wErr) {
		return wErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a WincrossError
func GetErrorDetails(err error) map[string]interface{} {
	var wErr *WincrossError
	if errors.As(err, &wErr) {
		return wErr.Details
	}
	return nil
}

// DetailExitCode is the detail key carrying a child process exit status.
const DetailExitCode = "exit_code"

// ExternalCommand wraps a failed child process so its exit status survives
// up to the process boundary.
func ExternalCommand(err error, exitCode int, command string) *WincrossError {
	return Wrapf(err, ErrExternalCommand, "%s exited with status %d", command, exitCode).
		WithDetail(DetailExitCode, exitCode)
}

// ExitCode maps an error to the process exit status. Child process failures
// keep the child's status; every other error exits with 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if IsErrorCode(err, ErrExternalCommand) {
		if code, ok := GetErrorDetails(err)[DetailExitCode].(int); ok && code > 0 {
			return code
		}
	}
	return 1
}

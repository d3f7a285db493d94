package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ErrorCode represents different types of shell errors
type ErrorCode int

const (
	ErrCodeUnknown ErrorCode = iota
	ErrCodeWindowMissing
	ErrCodeWindowOperation
	ErrCodeEmit
	ErrCodePayload
	ErrCodeMenu
	ErrCodeNotStarted
	ErrCodeLoopStopped
	ErrCodeDuplicateID
	ErrCodeInternal
)

// String returns a string representation of the error code
func (e ErrorCode) String() string {
	switch e {
	case ErrCodeWindowMissing:
		return "WINDOW_MISSING"
	case ErrCodeWindowOperation:
		return "WINDOW_OPERATION"
	case ErrCodeEmit:
		return "EMIT"
	case ErrCodePayload:
		return "PAYLOAD"
	case ErrCodeMenu:
		return "MENU"
	case ErrCodeNotStarted:
		return "NOT_STARTED"
	case ErrCodeLoopStopped:
		return "LOOP_STOPPED"
	case ErrCodeDuplicateID:
		return "DUPLICATE_ID"
	case ErrCodeInternal:
		return "INTERNAL"
	default:
		return "UNKNOWN"
	}
}

// ShellError is an error raised by the native shell with classification and context
type ShellError struct {
	Op        string            // operation name
	Err       error             // underlying error
	Code      ErrorCode         // error classification
	Context   map[string]string // additional context information
	Timestamp time.Time         // when the error occurred
}

func (e *ShellError) Error() string {
	if e == nil {
		return "shell error"
	}

	var parts []string

	if e.Op != "" {
		parts = append(parts, fmt.Sprintf("op=%s", e.Op))
	}

	if e.Code != ErrCodeUnknown {
		parts = append(parts, fmt.Sprintf("code=%s", e.Code.String()))
	}

	// Context keys are sorted so the message is deterministic
	if len(e.Context) > 0 {
		keys := make([]string, 0, len(e.Context))
		for k := range e.Context {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%s", k, e.Context[k]))
		}
	}

	contextStr := ""
	if len(parts) > 0 {
		contextStr = fmt.Sprintf(" [%s]", strings.Join(parts, " "))
	}

	if e.Err != nil {
		return e.Err.Error() + contextStr
	}
	return "shell error" + contextStr
}

func (e *ShellError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is implements error matching for errors.Is
func (e *ShellError) Is(target error) bool {
	if e == nil {
		return false
	}
	if t, ok := target.(*ShellError); ok {
		return e.Code == t.Code
	}
	if e.Err != nil {
		return errors.Is(e.Err, target)
	}
	return false
}

// GetCode returns the error code as a string (for logging interface compatibility)
func (e *ShellError) GetCode() string {
	if e == nil {
		return ErrCodeUnknown.String()
	}
	return e.Code.String()
}

// GetContext returns the error context (for logging interface compatibility)
func (e *ShellError) GetContext() map[string]string {
	if e == nil || e.Context == nil {
		return make(map[string]string)
	}
	return e.Context
}

// GetTimestamp returns the error timestamp (for logging interface compatibility)
func (e *ShellError) GetTimestamp() time.Time {
	if e == nil {
		return time.Time{}
	}
	return e.Timestamp
}

// WithContext adds context information to the error by mutating the receiver.
// Not safe once the error has been shared between goroutines.
func (e *ShellError) WithContext(key, value string) *ShellError {
	if e.Context == nil {
		e.Context = make(map[string]string)
	}
	e.Context[key] = value
	return e
}

// NewShellError creates a new shell error with the given parameters
func NewShellError(op string, err error, code ErrorCode) *ShellError {
	return &ShellError{
		Op:        op,
		Err:       err,
		Code:      code,
		Context:   make(map[string]string),
		Timestamp: time.Now(),
	}
}

// NewShellErrorWithContext creates a new shell error with additional context
func NewShellErrorWithContext(op string, err error, code ErrorCode, context map[string]string) *ShellError {
	shellErr := NewShellError(op, err, code)
	if context != nil {
		shellErr.Context = make(map[string]string, len(context))
		for k, v := range context {
			shellErr.Context[k] = v
		}
	}
	return shellErr
}

// CodeOf returns the classification of err, or ErrCodeUnknown when err is not a ShellError
func CodeOf(err error) ErrorCode {
	var shellErr *ShellError
	if errors.As(err, &shellErr) {
		return shellErr.Code
	}
	return ErrCodeUnknown
}

// IsWindowMissing checks if the error reports a missing named window
func IsWindowMissing(err error) bool {
	return CodeOf(err) == ErrCodeWindowMissing
}

// IsWindowOperation checks if a native window operation failed
func IsWindowOperation(err error) bool {
	return CodeOf(err) == ErrCodeWindowOperation
}

// IsEmit checks if the error is an event emission failure
func IsEmit(err error) bool {
	return CodeOf(err) == ErrCodeEmit
}

// IsPayload checks if the error is a malformed front-end payload
func IsPayload(err error) bool {
	return CodeOf(err) == ErrCodePayload
}

// IsMenu checks if the error is a menu construction or update failure
func IsMenu(err error) bool {
	return CodeOf(err) == ErrCodeMenu
}

// IsNotStarted checks if the runtime was used before application startup
func IsNotStarted(err error) bool {
	return CodeOf(err) == ErrCodeNotStarted
}

// IsLoopStopped checks if work was submitted to a stopped event loop
func IsLoopStopped(err error) bool {
	return CodeOf(err) == ErrCodeLoopStopped
}

// IsDuplicateID checks if the error is a duplicate menu identifier
func IsDuplicateID(err error) bool {
	return CodeOf(err) == ErrCodeDuplicateID
}

// IsInternal checks if the error is an internal/API misuse error
func IsInternal(err error) bool {
	return CodeOf(err) == ErrCodeInternal
}

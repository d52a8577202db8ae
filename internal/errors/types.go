package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeExecution    ErrorType = "execution"
	ErrorTypePanic        ErrorType = "panic"
	ErrorTypeRegistration ErrorType = "registration"
	ErrorTypeConfig       ErrorType = "config"
	ErrorTypeInternal     ErrorType = "internal"
)

// Common error codes.
const (
	ErrCodeLessonFailed   = "ERR_LESSON_FAILED"
	ErrCodeLessonPanicked = "ERR_LESSON_PANICKED"
	ErrCodeDuplicateID    = "ERR_DUPLICATE_ID"
	ErrCodeNilUnit        = "ERR_NIL_UNIT"
	ErrCodeConfigInvalid  = "ERR_CONFIG_INVALID"
)

var (
	// ErrDuplicateID is wrapped by registration errors for a colliding unit id.
	ErrDuplicateID = errors.New("duplicate unit id")

	// ErrUnhandledPanic is the cause of a panic whose value is not an error.
	ErrUnhandledPanic = errors.New("unhandled panic")
)

// RunError is a structured error type with unit context.
type RunError struct {
	Type     ErrorType
	Code     string
	Message  string
	Cause    error
	UnitID   int
	UnitName string
	Context  map[string]interface{}
}

// Error implements the error interface.
func (e *RunError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	if e.UnitName != "" {
		parts = append(parts, fmt.Sprintf("unit:%d:%s", e.UnitID, e.UnitName))
	}

	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *RunError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison.
func (e *RunError) Is(target error) bool {
	var t *RunError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}

	return false
}

// WithContext adds context information to the error.
func (e *RunError) WithContext(key string, value interface{}) *RunError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value

	return e
}

// WithUnit attaches the id and name of the unit the error belongs to.
func (e *RunError) WithUnit(id int, name string) *RunError {
	e.UnitID = id
	e.UnitName = name

	return e
}

// Detail returns the message shown to the user for a failed unit: the
// cause's text when there is one, the error's own message otherwise.
func (e *RunError) Detail() string {
	if e.Cause != nil {
		return e.Cause.Error()
	}

	return e.Message
}

// NewExecutionError wraps an error returned by a unit's behavior.
func NewExecutionError(cause error) *RunError {
	return &RunError{
		Type:    ErrorTypeExecution,
		Code:    ErrCodeLessonFailed,
		Message: "failed to execute",
		Cause:   cause,
	}
}

// NewPanicError converts a recovered panic value. Panics carrying an error
// keep it as the cause; anything else becomes ErrUnhandledPanic.
func NewPanicError(recovered interface{}) *RunError {
	e := &RunError{
		Type:    ErrorTypePanic,
		Code:    ErrCodeLessonPanicked,
		Message: "panicked during execution",
	}

	if err, ok := recovered.(error); ok {
		e.Cause = err
	} else {
		e.Cause = ErrUnhandledPanic
		e.WithContext("panic_value", fmt.Sprint(recovered))
	}

	return e
}

// NewRegistrationError reports a unit that could not be registered.
func NewRegistrationError(code, message string, cause error) *RunError {
	return &RunError{
		Type:    ErrorTypeRegistration,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewConfigError creates a configuration error.
func NewConfigError(code, message string) *RunError {
	return &RunError{
		Type:    ErrorTypeConfig,
		Code:    code,
		Message: message,
	}
}

// IsPanic reports whether err came from a recovered panic.
func IsPanic(err error) bool {
	var re *RunError
	if errors.As(err, &re) {
		return re.Type == ErrorTypePanic
	}

	return false
}

// IsUnhandled reports whether err came from a panic whose value was not an error.
func IsUnhandled(err error) bool {
	return IsPanic(err) && errors.Is(err, ErrUnhandledPanic)
}

// IsRegistrationError checks if an error is registration-related.
func IsRegistrationError(err error) bool {
	var re *RunError
	if errors.As(err, &re) {
		return re.Type == ErrorTypeRegistration
	}

	return false
}

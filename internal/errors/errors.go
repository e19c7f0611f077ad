package errors

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrorCategory represents different types of errors that can occur
type ErrorCategory string

const (
	// Errors that should stop the process before any run starts
	ErrorCategoryFatal         ErrorCategory = "FATAL"
	ErrorCategoryConfiguration ErrorCategory = "CONFIG"
	ErrorCategoryValidation    ErrorCategory = "VALIDATION"

	// Errors raised while reading inputs or writing reports
	ErrorCategoryInput  ErrorCategory = "INPUT"
	ErrorCategoryOutput ErrorCategory = "OUTPUT"

	// Cancelled or otherwise interrupted runs
	ErrorCategoryCancelled ErrorCategory = "CANCELLED"
	ErrorCategoryInternal  ErrorCategory = "INTERNAL"
)

// OptimizerError represents a categorized error with context
type OptimizerError struct {
	Category   ErrorCategory
	Component  string
	Operation  string
	Message    string
	Underlying error
	Context    map[string]interface{}
}

// Error implements the error interface
func (e *OptimizerError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("[%s:%s] %s: %s: %v", e.Category, e.Component, e.Operation, e.Message, e.Underlying)
	}
	return fmt.Sprintf("[%s:%s] %s: %s", e.Category, e.Component, e.Operation, e.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (e *OptimizerError) Unwrap() error {
	return e.Underlying
}

// IsFatal returns whether this error should stop the whole batch
func (e *OptimizerError) IsFatal() bool {
	return e.Category == ErrorCategoryFatal ||
		e.Category == ErrorCategoryConfiguration ||
		e.Category == ErrorCategoryValidation
}

// NewOptimizerError creates a new categorized error
func NewOptimizerError(category ErrorCategory, component, operation, message string) *OptimizerError {
	return &OptimizerError{
		Category:  category,
		Component: component,
		Operation: operation,
		Message:   message,
		Context:   make(map[string]interface{}),
	}
}

// WrapError wraps an existing error with optimizer error context
func WrapError(err error, category ErrorCategory, component, operation string) *OptimizerError {
	if err == nil {
		return nil
	}

	return &OptimizerError{
		Category:   category,
		Component:  component,
		Operation:  operation,
		Message:    "operation failed",
		Underlying: err,
		Context:    make(map[string]interface{}),
	}
}

// WithContext adds context information to the error
func (e *OptimizerError) WithContext(key string, value interface{}) *OptimizerError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// CategorizeError attempts to categorize a generic error
func CategorizeError(err error, component, operation string) *OptimizerError {
	if err == nil {
		return nil
	}

	var optErr *OptimizerError
	if errors.As(err, &optErr) {
		return optErr
	}

	if errors.Is(err, os.ErrNotExist) || errors.Is(err, os.ErrPermission) {
		return WrapError(err, ErrorCategoryInput, component, operation)
	}

	errMsg := strings.ToLower(err.Error())

	if strings.Contains(errMsg, "context canceled") || strings.Contains(errMsg, "deadline exceeded") {
		return WrapError(err, ErrorCategoryCancelled, component, operation)
	}

	if strings.Contains(errMsg, "invalid") || strings.Contains(errMsg, "must be") ||
		strings.Contains(errMsg, "minimum") || strings.Contains(errMsg, "maximum") {
		return WrapError(err, ErrorCategoryValidation, component, operation)
	}

	if strings.Contains(errMsg, "json") || strings.Contains(errMsg, "parse") {
		return WrapError(err, ErrorCategoryConfiguration, component, operation)
	}

	return WrapError(err, ErrorCategoryInternal, component, operation)
}

// IsCategory reports whether err carries the given category anywhere in its chain
func IsCategory(err error, category ErrorCategory) bool {
	var optErr *OptimizerError
	if errors.As(err, &optErr) {
		return optErr.Category == category
	}
	return false
}

// Common error constructors
func NewValidationError(component, operation, message string) *OptimizerError {
	return NewOptimizerError(ErrorCategoryValidation, component, operation, message)
}

func NewConfigurationError(component, operation string, err error) *OptimizerError {
	return WrapError(err, ErrorCategoryConfiguration, component, operation)
}

func NewInputError(component, operation string, err error) *OptimizerError {
	return WrapError(err, ErrorCategoryInput, component, operation)
}

func NewOutputError(component, operation string, err error) *OptimizerError {
	return WrapError(err, ErrorCategoryOutput, component, operation)
}

func NewCancelledError(component, operation string, err error) *OptimizerError {
	return WrapError(err, ErrorCategoryCancelled, component, operation)
}

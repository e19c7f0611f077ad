package errors

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimizerError_ErrorString(t *testing.T) {
	err := NewValidationError("optimization", "Run", "target must be non-negative")
	assert.Equal(t, "[VALIDATION:optimization] Run: target must be non-negative", err.Error())

	wrapped := NewOutputError("reporting", "WriteCSV", fmt.Errorf("disk full"))
	assert.Equal(t, "[OUTPUT:reporting] WriteCSV: operation failed: disk full", wrapped.Error())
}

func TestWrapError_Nil(t *testing.T) {
	assert.Nil(t, WrapError(nil, ErrorCategoryInternal, "x", "y"))
	assert.Nil(t, CategorizeError(nil, "x", "y"))
}

func TestOptimizerError_UnwrapAndAs(t *testing.T) {
	base := fmt.Errorf("boom")
	err := fmt.Errorf("outer: %w", NewConfigurationError("config", "Load", base))

	var optErr *OptimizerError
	require.True(t, errors.As(err, &optErr))
	assert.Equal(t, ErrorCategoryConfiguration, optErr.Category)
	assert.True(t, errors.Is(err, base))
	assert.True(t, optErr.IsFatal())
	assert.True(t, IsCategory(err, ErrorCategoryConfiguration))
	assert.False(t, IsCategory(err, ErrorCategoryOutput))
}

func TestOptimizerError_WithContext(t *testing.T) {
	err := NewValidationError("config", "Validate", "bad").WithContext("field", "targets")
	assert.Equal(t, "targets", err.Context["field"])

	bare := &OptimizerError{}
	bare.WithContext("k", 1)
	assert.Equal(t, 1, bare.Context["k"])
}

func TestCategorizeError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorCategory
	}{
		{"missing file", fmt.Errorf("open: %w", os.ErrNotExist), ErrorCategoryInput},
		{"cancelled", context.Canceled, ErrorCategoryCancelled},
		{"validation", fmt.Errorf("mutation rate must be within [0,1]"), ErrorCategoryValidation},
		{"json", fmt.Errorf("invalid character in json"), ErrorCategoryValidation},
		{"parse", fmt.Errorf("could not parse number"), ErrorCategoryConfiguration},
		{"unknown", fmt.Errorf("something odd"), ErrorCategoryInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CategorizeError(tt.err, "test", "op")
			assert.Equal(t, tt.expected, got.Category)
		})
	}
}

func TestCategorizeError_KeepsExisting(t *testing.T) {
	original := NewOutputError("reporting", "WriteXLSX", fmt.Errorf("locked"))
	assert.Same(t, original, CategorizeError(original, "other", "op"))
	assert.False(t, original.IsFatal())
}

// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code matching

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/expedition/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "out_of_bounds",
			code:    errors.ErrRangeOutOfBounds,
			message: "range [0,11) exceeds length 10",
			wantStr: "[RANGE_OUT_OF_BOUNDS] range [0,11) exceeds length 10",
		},
		{
			name:    "inverted",
			code:    errors.ErrRangeInverted,
			message: "range start 5 is after end 3",
			wantStr: "[RANGE_INVERTED] range start 5 is after end 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrUnknownFormat, "unknown format %q", "bmp")
	assert.Equal(t, `unknown format "bmp"`, err.Message)
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrDecode, "cannot decode document")

		assert.Equal(t, errors.ErrDecode, err.Code)
		assert.Same(t, baseErr, err.Wrapped)
		assert.Equal(t, "[DECODE] cannot decode document: base error", err.Error())
		assert.True(t, stderrors.Is(err, baseErr))
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "internal error"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "internal %d", 1))
	})
}

func TestWithDetails(t *testing.T) {
	err := errors.New(errors.ErrRangeOutOfBounds, "out of bounds").
		WithDetail("start", 0).
		WithDetails(map[string]interface{}{"end": 11, "length": 10})

	assert.Equal(t, 0, err.Details["start"])
	assert.Equal(t, 11, err.Details["end"])
	assert.Equal(t, 10, err.Details["length"])
	assert.Equal(t, err.Details, errors.GetErrorDetails(err))
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrRangeInverted, "error 1")
	err2 := errors.New(errors.ErrRangeInverted, "error 2")
	err3 := errors.New(errors.ErrRangeOutOfBounds, "error 3")

	assert.True(t, err1.Is(err2))
	assert.False(t, err1.Is(err3))
	assert.True(t, stderrors.Is(err1, errors.Sentinel(errors.ErrRangeInverted)))
	assert.False(t, stderrors.Is(err1, errors.Sentinel(errors.ErrRangeOutOfBounds)))
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{"matching_code", errors.New(errors.ErrThemeLoad, "x"), errors.ErrThemeLoad, true},
		{"different_code", errors.New(errors.ErrThemeLoad, "x"), errors.ErrInternal, false},
		{"wrapped_error", errors.Wrap(stderrors.New("base"), errors.ErrConfigParse, "bad"), errors.ErrConfigParse, true},
		{"standard_error", stderrors.New("standard error"), errors.ErrNotFound, false},
		{"nil_error", nil, errors.ErrNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errors.IsErrorCode(tt.err, tt.code))
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrRender, errors.GetErrorCode(errors.New(errors.ErrRender, "x")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("standard error")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(nil))
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	decodeErr := errors.Wrap(rootCause, errors.ErrDecode, "cannot read document")
	configErr := errors.Wrap(decodeErr, errors.ErrConfigLoad, "failed to load config")

	assert.True(t, errors.IsErrorCode(configErr, errors.ErrConfigLoad))

	var middle *errors.Error
	require.True(t, stderrors.As(configErr.Unwrap(), &middle))
	assert.Equal(t, errors.ErrDecode, middle.Code)

	assert.True(t, stderrors.Is(configErr, rootCause))
}

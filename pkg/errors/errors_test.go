package errors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ssserr "github.com/arlovane/mersig/pkg/errors"
)

var (
	errInner     = errors.New("inner")
	errRootCause = errors.New("root cause")
	errPlain     = errors.New("plain error")
	errPlainCode = errors.New("plain")
)

func TestExitCodes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"success", nil, ssserr.ExitSuccess},
		{"general error", ssserr.ErrGeneral, ssserr.ExitInvalidInput},
		{"invalid input", ssserr.ErrMalformedShare, ssserr.ExitInvalidInput},
		{"out of range", ssserr.ErrThresholdTooSmall, ssserr.ExitOutOfRange},
		{"illegal state", ssserr.ErrUninitialized, ssserr.ExitIllegalState},
		{"invalid argument", ssserr.ErrNilSecret, ssserr.ExitInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			code := ssserr.ExitCode(tt.err)
			assert.Equal(t, tt.expected, code)
		})
	}
}

func TestExitCodeWrappedError(t *testing.T) {
	t.Parallel()
	wrapped := ssserr.Wrap(ssserr.ErrThresholdTooSmall, "splitting secret")
	code := ssserr.ExitCode(wrapped)
	assert.Equal(t, ssserr.ExitOutOfRange, code)
}

func TestSentinelErrors(t *testing.T) {
	t.Parallel()
	// Verify that wrapping preserves error identity.
	wrapped := ssserr.Wrap(ssserr.ErrGeneral, "wrapped")
	require.ErrorIs(t, wrapped, ssserr.ErrGeneral)

	wrapped = ssserr.Wrap(ssserr.ErrMalformedShare, "wrapped")
	require.ErrorIs(t, wrapped, ssserr.ErrMalformedShare)

	wrapped = ssserr.Wrap(ssserr.ErrThresholdTooSmall, "wrapped")
	require.ErrorIs(t, wrapped, ssserr.ErrThresholdTooSmall)

	wrapped = ssserr.Wrap(ssserr.ErrUninitialized, "wrapped")
	require.ErrorIs(t, wrapped, ssserr.ErrUninitialized)

	wrapped = ssserr.Wrap(ssserr.ErrNotEnoughShares, "wrapped")
	require.ErrorIs(t, wrapped, ssserr.ErrNotEnoughShares)
}

func TestSentinelErrors_kindLevel(t *testing.T) {
	t.Parallel()
	// A kind-level sentinel (empty Code) matches any error of that Kind.
	assert.ErrorIs(t, ssserr.ErrThresholdTooSmall, ssserr.ErrOutOfRange)
	assert.ErrorIs(t, ssserr.ErrUninitialized, ssserr.ErrIllegalState)
	assert.ErrorIs(t, ssserr.ErrMalformedShare, ssserr.ErrInvalidInput)
	assert.ErrorIs(t, ssserr.ErrNilSecret, ssserr.ErrInvalidArgument)
	assert.NotErrorIs(t, ssserr.ErrThresholdTooSmall, ssserr.ErrIllegalState)
}

func TestErrorCode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		err      error
		expected string
	}{
		{ssserr.ErrGeneral, "GENERAL_ERROR"},
		{ssserr.ErrMalformedShare, "MALFORMED_SHARE"},
		{ssserr.ErrThresholdTooSmall, "THRESHOLD_TOO_SMALL"},
		{ssserr.ErrUninitialized, "UNINITIALIZED"},
		{ssserr.ErrNotEnoughShares, "NOT_ENOUGH_SHARES"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			t.Parallel()
			var se *ssserr.SSSError
			require.ErrorAs(t, tt.err, &se)
			assert.Equal(t, tt.expected, se.Code)
		})
	}
}

func TestWithDetails(t *testing.T) {
	t.Parallel()
	details := map[string]string{
		"k": "3",
		"n": "2",
	}

	err := ssserr.WithDetails(ssserr.ErrTooFewShares, details)

	var se *ssserr.SSSError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, details, se.Details)
}

func TestWithSuggestion(t *testing.T) {
	t.Parallel()
	suggestion := "raise n to at least k"
	err := ssserr.WithSuggestion(ssserr.ErrTooFewShares, suggestion)

	var se *ssserr.SSSError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, suggestion, se.Suggestion)
}

func TestWithDetailsAndSuggestion(t *testing.T) {
	t.Parallel()
	details := map[string]string{"key": "value"}
	suggestion := "try this instead"

	err := ssserr.WithDetails(ssserr.ErrGeneral, details)
	err = ssserr.WithSuggestion(err, suggestion)

	var se *ssserr.SSSError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, details, se.Details)
	assert.Equal(t, suggestion, se.Suggestion)
}

func TestWrap(t *testing.T) {
	t.Parallel()
	wrapped := ssserr.Wrap(ssserr.ErrNotEnoughShares, "combine: got %d", 1)
	assert.Contains(t, wrapped.Error(), "combine: got 1")
	assert.ErrorIs(t, wrapped, ssserr.ErrNotEnoughShares)
}

func TestNew(t *testing.T) {
	t.Parallel()
	err := ssserr.New(ssserr.KindInvalidInput, "CUSTOM_ERROR", "custom error message")
	assert.Equal(t, "custom error message", err.Error())

	var se *ssserr.SSSError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "CUSTOM_ERROR", se.Code)
	assert.Equal(t, ssserr.KindInvalidInput, se.Kind)
}

func TestSSSError_Error(t *testing.T) {
	t.Parallel()

	t.Run("message only", func(t *testing.T) {
		t.Parallel()
		err := &ssserr.SSSError{Code: "TEST", Message: "something failed"}
		assert.Equal(t, "something failed", err.Error())
	})

	t.Run("with details sorted", func(t *testing.T) {
		t.Parallel()
		err := &ssserr.SSSError{
			Code:    "TEST",
			Message: "failed",
			Details: map[string]string{"beta": "2", "alpha": "1"},
		}
		assert.Equal(t, "failed (alpha: 1) (beta: 2)", err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		t.Parallel()
		err := &ssserr.SSSError{
			Code:    "TEST",
			Message: "outer",
			Cause:   errInner,
		}
		assert.Equal(t, "outer: inner", err.Error())
	})

	t.Run("with details and cause", func(t *testing.T) {
		t.Parallel()
		err := &ssserr.SSSError{
			Code:    "TEST",
			Message: "outer",
			Details: map[string]string{"key": "val"},
			Cause:   errInner,
		}
		assert.Equal(t, "outer (key: val): inner", err.Error())
	})
}

func TestSSSError_Error_deterministic(t *testing.T) {
	t.Parallel()
	err := &ssserr.SSSError{
		Code:    "TEST",
		Message: "msg",
		Details: map[string]string{
			"charlie": "3",
			"alpha":   "1",
			"bravo":   "2",
			"delta":   "4",
		},
	}
	first := err.Error()
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, err.Error(), "Error() output must be deterministic (iteration %d)", i)
	}
}

func TestSSSError_Unwrap(t *testing.T) {
	t.Parallel()

	t.Run("with cause", func(t *testing.T) {
		t.Parallel()
		err := &ssserr.SSSError{Code: "TEST", Message: "wrapper", Cause: errRootCause}
		assert.Equal(t, errRootCause, err.Unwrap())
	})

	t.Run("nil cause", func(t *testing.T) {
		t.Parallel()
		err := &ssserr.SSSError{Code: "TEST", Message: "no cause"}
		assert.NoError(t, err.Unwrap())
	})
}

func TestSSSError_Is(t *testing.T) {
	t.Parallel()

	t.Run("matching code", func(t *testing.T) {
		t.Parallel()
		a := &ssserr.SSSError{Code: "SAME_CODE", Message: "a"}
		b := &ssserr.SSSError{Code: "SAME_CODE", Message: "b"}
		assert.True(t, a.Is(b))
	})

	t.Run("different code", func(t *testing.T) {
		t.Parallel()
		a := &ssserr.SSSError{Code: "CODE_A", Message: "a"}
		b := &ssserr.SSSError{Code: "CODE_B", Message: "b"}
		assert.False(t, a.Is(b))
	})

	t.Run("kind-only target", func(t *testing.T) {
		t.Parallel()
		a := &ssserr.SSSError{Kind: ssserr.KindOutOfRange, Code: "SOME_CODE", Message: "a"}
		b := &ssserr.SSSError{Kind: ssserr.KindOutOfRange}
		assert.True(t, a.Is(b))
	})

	t.Run("non-SSSError target", func(t *testing.T) {
		t.Parallel()
		a := &ssserr.SSSError{Code: "TEST", Message: "a"}
		assert.False(t, a.Is(errPlain))
	})
}

func TestAs(t *testing.T) {
	t.Parallel()

	t.Run("SSSError target", func(t *testing.T) {
		t.Parallel()
		err := ssserr.Wrap(ssserr.ErrNotEnoughShares, "wrapped")
		var se *ssserr.SSSError
		assert.True(t, ssserr.As(err, &se))
		assert.Equal(t, "NOT_ENOUGH_SHARES", se.Code)
	})

	t.Run("non-SSSError", func(t *testing.T) {
		t.Parallel()
		var se *ssserr.SSSError
		assert.False(t, ssserr.As(errPlain, &se))
	})
}

func TestIs(t *testing.T) {
	t.Parallel()

	t.Run("matching sentinel", func(t *testing.T) {
		t.Parallel()
		wrapped := ssserr.Wrap(ssserr.ErrNotEnoughShares, "context")
		assert.True(t, ssserr.Is(wrapped, ssserr.ErrNotEnoughShares))
	})

	t.Run("non-matching", func(t *testing.T) {
		t.Parallel()
		wrapped := ssserr.Wrap(ssserr.ErrNotEnoughShares, "context")
		assert.False(t, ssserr.Is(wrapped, ssserr.ErrUninitialized))
	})

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()
		assert.False(t, ssserr.Is(nil, ssserr.ErrGeneral))
	})
}

func TestCode_edgeCases(t *testing.T) {
	t.Parallel()

	t.Run("SSSError", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "NOT_ENOUGH_SHARES", ssserr.Code(ssserr.ErrNotEnoughShares))
	})

	t.Run("non-SSSError", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "GENERAL_ERROR", ssserr.Code(errPlainCode))
	})

	t.Run("nil", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "GENERAL_ERROR", ssserr.Code(nil))
	})
}

func TestWrap_edgeCases(t *testing.T) {
	t.Parallel()

	t.Run("nil input", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, ssserr.Wrap(nil, "context"))
	})

	t.Run("non-SSSError", func(t *testing.T) {
		t.Parallel()
		wrapped := ssserr.Wrap(errPlain, "context")
		var se *ssserr.SSSError
		require.ErrorAs(t, wrapped, &se)
		assert.Equal(t, "GENERAL_ERROR", se.Code)
		assert.Equal(t, "context", se.Message)
		assert.Equal(t, errPlain, se.Cause)
	})

	t.Run("format args", func(t *testing.T) {
		t.Parallel()
		wrapped := ssserr.Wrap(ssserr.ErrNotEnoughShares, "combine attempt %d of %d", 1, 3)
		assert.Contains(t, wrapped.Error(), "combine attempt 1 of 3")
	})

	t.Run("field preservation", func(t *testing.T) {
		t.Parallel()
		original := ssserr.WithDetails(ssserr.ErrNotEnoughShares, map[string]string{"key": "val"})
		original = ssserr.WithSuggestion(original, "try this")
		wrapped := ssserr.Wrap(original, "context")

		var se *ssserr.SSSError
		require.ErrorAs(t, wrapped, &se)
		assert.Equal(t, "NOT_ENOUGH_SHARES", se.Code)
		assert.Equal(t, map[string]string{"key": "val"}, se.Details)
		assert.Equal(t, "try this", se.Suggestion)
		assert.Equal(t, ssserr.ExitOutOfRange, se.ExitCode())
	})
}

func TestWithDetails_edgeCases(t *testing.T) {
	t.Parallel()

	t.Run("nil input", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, ssserr.WithDetails(nil, map[string]string{"k": "v"}))
	})

	t.Run("non-SSSError input", func(t *testing.T) {
		t.Parallel()
		result := ssserr.WithDetails(errPlain, map[string]string{"k": "v"})
		var se *ssserr.SSSError
		require.ErrorAs(t, result, &se)
		assert.Equal(t, "GENERAL_ERROR", se.Code)
		assert.Equal(t, "plain error", se.Message)
		assert.Equal(t, map[string]string{"k": "v"}, se.Details)
		assert.Equal(t, errPlain, se.Cause)
	})
}

func TestWithSuggestion_edgeCases(t *testing.T) {
	t.Parallel()

	t.Run("nil input", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, ssserr.WithSuggestion(nil, "suggestion"))
	})

	t.Run("non-SSSError input", func(t *testing.T) {
		t.Parallel()
		result := ssserr.WithSuggestion(errPlain, "try this")
		var se *ssserr.SSSError
		require.ErrorAs(t, result, &se)
		assert.Equal(t, "GENERAL_ERROR", se.Code)
		assert.Equal(t, "plain error", se.Message)
		assert.Equal(t, "try this", se.Suggestion)
		assert.Equal(t, errPlain, se.Cause)
	})
}

func TestExitCode_nonSSSError(t *testing.T) {
	t.Parallel()
	assert.Equal(t, ssserr.ExitGeneral, ssserr.ExitCode(errPlain))
}

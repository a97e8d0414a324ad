// Package errors provides structured error handling for mersig.
// It defines sentinel errors, exit codes, and helpers for adding
// context, details, and suggestions to errors.
//
//nolint:revive // Package name intentionally shadows stdlib for domain-specific error handling
package errors

import (
	"errors"
	"fmt"
	"sort"
)

// Kind names one of the five error categories of the error handling
// design. Fatal conditions are not a Kind — they panic rather than return
// an error value.
type Kind string

// Error kinds.
const (
	KindInvalidArgument Kind = "INVALID_ARGUMENT"
	KindOutOfRange      Kind = "OUT_OF_RANGE"
	KindIllegalState    Kind = "ILLEGAL_STATE"
	KindInvalidInput    Kind = "INVALID_INPUT"
)

// Exit codes per Kind plus general/success. KindInvalidArgument and
// KindInvalidInput share ExitInvalidInput.
const (
	ExitSuccess      = 0 // Successful execution
	ExitGeneral      = 1 // General/unknown error
	ExitInvalidInput = 2 // Malformed, non-hex, or otherwise unparsable input
	ExitOutOfRange   = 3 // Argument outside its permitted range
	ExitIllegalState = 4 // Operation invalid for the receiver's current state
)

func exitCodeForKind(k Kind) int {
	switch k {
	case KindOutOfRange:
		return ExitOutOfRange
	case KindIllegalState:
		return ExitIllegalState
	case KindInvalidArgument, KindInvalidInput:
		return ExitInvalidInput
	default:
		return ExitGeneral
	}
}

// SSSError is the structured error type for mersig.
type SSSError struct {
	Kind       Kind              // Error category
	Code       string            // Machine-readable error code
	Message    string            // Human-readable message
	Details    map[string]string // Additional context
	Suggestion string            // Actionable suggestion for the user
	Cause      error             // Underlying error
}

func (e *SSSError) Error() string {
	msg := e.Message

	// Include details in error message (sorted for deterministic output)
	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			msg = fmt.Sprintf("%s (%s: %s)", msg, k, e.Details[k])
		}
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *SSSError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is for SSSError. A target with an empty Code matches
// any error of the same Kind; otherwise Code must match exactly.
func (e *SSSError) Is(target error) bool {
	var t *SSSError
	if errors.As(target, &t) {
		if t.Code == "" {
			return e.Kind == t.Kind
		}
		return e.Code == t.Code
	}
	return false
}

// ExitCode returns the exit code this error maps to.
func (e *SSSError) ExitCode() int {
	return exitCodeForKind(e.Kind)
}

// Kind-level sentinels — match with errors.Is against just the category.
var (
	ErrInvalidArgument = &SSSError{Kind: KindInvalidArgument}
	ErrOutOfRange      = &SSSError{Kind: KindOutOfRange}
	ErrIllegalState    = &SSSError{Kind: KindIllegalState}
	ErrInvalidInput    = &SSSError{Kind: KindInvalidInput}
)

// Sentinel errors.
var (
	ErrGeneral = &SSSError{
		Kind:    KindInvalidInput,
		Code:    "GENERAL_ERROR",
		Message: "an error occurred",
	}

	// Splitter/level argument errors.
	ErrThresholdTooSmall = &SSSError{
		Kind:       KindOutOfRange,
		Code:       "THRESHOLD_TOO_SMALL",
		Message:    "threshold k must be at least 2",
		Suggestion: "choose a threshold of 2 or more",
	}

	ErrTooFewShares = &SSSError{
		Kind:       KindOutOfRange,
		Code:       "TOO_FEW_SHARES",
		Message:    "the number of shares n must be at least the threshold k",
		Suggestion: "raise n to at least k, or lower k",
	}

	ErrSharesOutOfRange = &SSSError{
		Kind:    KindOutOfRange,
		Code:    "SHARES_OUT_OF_RANGE",
		Message: "n is outside the permitted range",
	}

	ErrLevelOutOfRange = &SSSError{
		Kind:       KindOutOfRange,
		Code:       "LEVEL_OUT_OF_RANGE",
		Message:    "security level is outside the permitted range",
		Suggestion: "use a known Mersenne exponent, or let the level be inferred automatically",
	}

	ErrUninitialized = &SSSError{
		Kind:    KindIllegalState,
		Code:    "UNINITIALIZED",
		Message: "security level has not been set",
	}

	ErrNilSecret = &SSSError{
		Kind:    KindInvalidArgument,
		Code:    "NIL_SECRET",
		Message: "secret must not be nil",
	}

	// Combiner/share parsing errors.
	ErrNotEnoughShares = &SSSError{
		Kind:       KindOutOfRange,
		Code:       "NOT_ENOUGH_SHARES",
		Message:    "at least two shares are required to reconstruct a secret",
		Suggestion: "supply more shares",
	}

	ErrDuplicateShareX = &SSSError{
		Kind:    KindInvalidInput,
		Code:    "DUPLICATE_SHARE_X",
		Message: "two or more shares have the same x-coordinate",
	}

	ErrMalformedShare = &SSSError{
		Kind:       KindInvalidInput,
		Code:       "MALFORMED_SHARE",
		Message:    "share could not be parsed",
		Suggestion: "a share must be two hex strings separated by a single '-'",
	}

	ErrNonHexShare = &SSSError{
		Kind:    KindInvalidInput,
		Code:    "NON_HEX_SHARE",
		Message: "share contains non-hexadecimal characters",
	}

	ErrNoShareValues = &SSSError{
		Kind:    KindInvalidInput,
		Code:    "NO_SHARE_VALUES",
		Message: "no share values available to infer a security level from",
	}

	// Ambient stack errors.
	ErrConfigNotFound = &SSSError{
		Kind:    KindInvalidInput,
		Code:    "CONFIG_NOT_FOUND",
		Message: "configuration file not found",
	}

	ErrConfigInvalid = &SSSError{
		Kind:    KindInvalidInput,
		Code:    "CONFIG_INVALID",
		Message: "configuration file is invalid",
	}

	ErrBundleDecryption = &SSSError{
		Kind:       KindInvalidInput,
		Code:       "BUNDLE_DECRYPTION_FAILED",
		Message:    "decryption failed - wrong password or corrupted bundle",
		Suggestion: "check the password and try again",
	}

	ErrUnknownConfigKey = &SSSError{
		Kind:    KindInvalidInput,
		Code:    "UNKNOWN_CONFIG_KEY",
		Message: "unknown config key",
	}

	ErrInvalidFormat = &SSSError{
		Kind:    KindInvalidArgument,
		Code:    "INVALID_FORMAT",
		Message: "invalid value for this configuration key",
	}
)

// New creates a new SSSError with the given kind, code, and message.
func New(kind Kind, code, message string) *SSSError {
	return &SSSError{
		Kind:    kind,
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context, preserving Kind/Code/
// Suggestion when err is (or wraps) an *SSSError.
func Wrap(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, args...)

	var se *SSSError
	if errors.As(err, &se) {
		return &SSSError{
			Kind:       se.Kind,
			Code:       se.Code,
			Message:    fmt.Sprintf("%s: %s", msg, se.Message),
			Details:    se.Details,
			Suggestion: se.Suggestion,
			Cause:      err,
		}
	}

	return &SSSError{
		Kind:    KindInvalidInput,
		Code:    "GENERAL_ERROR",
		Message: msg,
		Cause:   err,
	}
}

// WithDetails adds details to an error.
func WithDetails(err error, details map[string]string) error {
	if err == nil {
		return nil
	}

	var se *SSSError
	if errors.As(err, &se) {
		return &SSSError{
			Kind:       se.Kind,
			Code:       se.Code,
			Message:    se.Message,
			Details:    details,
			Suggestion: se.Suggestion,
			Cause:      se.Cause,
		}
	}

	return &SSSError{
		Kind:    KindInvalidInput,
		Code:    "GENERAL_ERROR",
		Message: err.Error(),
		Details: details,
		Cause:   err,
	}
}

// WithSuggestion adds a suggestion to an error.
func WithSuggestion(err error, suggestion string) error {
	if err == nil {
		return nil
	}

	var se *SSSError
	if errors.As(err, &se) {
		return &SSSError{
			Kind:       se.Kind,
			Code:       se.Code,
			Message:    se.Message,
			Details:    se.Details,
			Suggestion: suggestion,
			Cause:      se.Cause,
		}
	}

	return &SSSError{
		Kind:       KindInvalidInput,
		Code:       "GENERAL_ERROR",
		Message:    err.Error(),
		Suggestion: suggestion,
		Cause:      err,
	}
}

// ExitCode returns the appropriate exit code for an error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var se *SSSError
	if errors.As(err, &se) {
		return se.ExitCode()
	}

	return ExitGeneral
}

// Code returns the error code for an error.
func Code(err error) string {
	var se *SSSError
	if errors.As(err, &se) {
		return se.Code
	}
	return "GENERAL_ERROR"
}

// Is wraps errors.Is for convenience.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience.
func As(err error, target any) bool {
	return errors.As(err, target)
}

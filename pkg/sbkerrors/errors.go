// Package sbkerrors provides the tagged error taxonomy and CLI exit
// codes for the SBK core (spec.md §7), adapted from Sigil's
// pkg/errors structured-error pattern.
package sbkerrors

import (
	"errors"
	"fmt"
	"sort"
)

// Exit codes for the CLI collaborator contract (spec.md §6).
const (
	ExitSuccess  = 0
	ExitGeneral  = 1
	ExitInput    = 2
	ExitAuth     = 3
	ExitNotFound = 4
)

// SBKError is the structured error type returned across the core's
// public API boundary.
type SBKError struct {
	Code     string            // Machine-readable tag, e.g. "ECC_UNRECOVERABLE"
	Message  string            // Human-readable message; never contains secret bytes
	Details  map[string]string // Additional non-secret context
	Cause    error
	ExitCode int
}

func (e *SBKError) Error() string {
	msg := e.Message
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

func (e *SBKError) Unwrap() error { return e.Cause }

// Is implements errors.Is by comparing tags, so a wrapped SBKError
// still matches its sentinel via errors.Is(err, ErrECCUnrecoverable).
func (e *SBKError) Is(target error) bool {
	var t *SBKError
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// Sentinel errors, one per taxonomy entry in spec.md §7.
var (
	ErrInvalidInput = &SBKError{
		Code:     "INVALID_INPUT",
		Message:  "invalid input",
		ExitCode: ExitInput,
	}

	ErrAmbiguousWord = &SBKError{
		Code:     "AMBIGUOUS_WORD",
		Message:  "word matches more than one wordlist entry within the fuzzy-match distance",
		ExitCode: ExitInput,
	}

	ErrUnknownWord = &SBKError{
		Code:     "UNKNOWN_WORD",
		Message:  "word does not match any wordlist entry",
		ExitCode: ExitInput,
	}

	ErrIntcodeChecksum = &SBKError{
		Code:     "INTCODE_CHECKSUM",
		Message:  "intcode index does not match its position, or too few bytes were supplied",
		ExitCode: ExitInput,
	}

	ErrECCUnrecoverable = &SBKError{
		Code:     "ECC_UNRECOVERABLE",
		Message:  "too many corrupted or erased positions to recover",
		ExitCode: ExitInput,
	}

	ErrInsufficientShares = &SBKError{
		Code:     "INSUFFICIENT_SHARES",
		Message:  "fewer than the threshold number of distinct valid shares were provided",
		ExitCode: ExitInput,
	}

	ErrForcedSecret = &SBKError{
		Code:     "FORCED_SECRET",
		Message:  "a share has x=0",
		ExitCode: ExitInput,
	}

	ErrDuplicateX = &SBKError{
		Code:     "DUPLICATE_X",
		Message:  "two shares have an identical index",
		ExitCode: ExitInput,
	}

	ErrParamRoundTrip = &SBKError{
		Code:     "PARAM_ROUND_TRIP",
		Message:  "encoded parameters do not decode to an identical value",
		ExitCode: ExitGeneral,
	}

	ErrParamMismatch = &SBKError{
		Code:     "PARAM_MISMATCH",
		Message:  "shares were presented with differing headers",
		ExitCode: ExitInput,
	}

	ErrCancelled = &SBKError{
		Code:     "CANCELLED",
		Message:  "operation aborted at a step boundary",
		ExitCode: ExitGeneral,
	}

	ErrKDFFailure = &SBKError{
		Code:     "KDF_FAILURE",
		Message:  "the key derivation primitive reported an error",
		ExitCode: ExitGeneral,
	}
)

// New creates an SBKError with the given tag and message.
func New(code, message string) *SBKError {
	return &SBKError{Code: code, Message: message, ExitCode: ExitGeneral}
}

// Wrap attaches additional context to err while preserving its tag and
// exit code if it is (or wraps) an *SBKError.
func Wrap(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	msg := fmt.Sprintf(format, args...)

	var se *SBKError
	if errors.As(err, &se) {
		return &SBKError{
			Code:     se.Code,
			Message:  fmt.Sprintf("%s: %s", msg, se.Message),
			Details:  se.Details,
			Cause:    err,
			ExitCode: se.ExitCode,
		}
	}
	return &SBKError{Code: "GENERAL_ERROR", Message: msg, Cause: err, ExitCode: ExitGeneral}
}

// WithDetails attaches non-secret key/value context to err.
func WithDetails(err error, details map[string]string) error {
	if err == nil {
		return nil
	}
	var se *SBKError
	if errors.As(err, &se) {
		return &SBKError{
			Code:     se.Code,
			Message:  se.Message,
			Details:  details,
			Cause:    se.Cause,
			ExitCode: se.ExitCode,
		}
	}
	return &SBKError{Code: "GENERAL_ERROR", Message: err.Error(), Details: details, Cause: err, ExitCode: ExitGeneral}
}

// ExitCodeFor returns the process exit code associated with err, or
// ExitGeneral if err does not wrap an *SBKError.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var se *SBKError
	if errors.As(err, &se) {
		return se.ExitCode
	}
	return ExitGeneral
}

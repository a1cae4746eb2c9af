package seeds

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrWrite                = errors.New("write failed")
	ErrVerificationMismatch = errors.New("verification mismatch")
)

// WriteError is returned when an upsert fails. The remaining records are not
// attempted.
type WriteError struct {
	ID      string
	Written []string
	Err     error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s (after %d successful writes): %v", e.ID, len(e.Written), e.Err)
}

func (e *WriteError) Unwrap() []error {
	return []error{ErrWrite, e.Err}
}

// VerificationError is returned when the post-write re-read does not contain
// every catalog id. Err is set when the re-read itself failed, in which case
// Missing holds the whole catalog.
type VerificationError struct {
	Missing []string
	Err     error
}

func (e *VerificationError) Error() string {
	msg := "missing emotions after creation: " + strings.Join(e.Missing, ", ")
	if e.Err != nil {
		msg += fmt.Sprintf(" (re-read failed: %v)", e.Err)
	}
	return msg
}

func (e *VerificationError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrVerificationMismatch}
	}
	return []error{ErrVerificationMismatch, e.Err}
}

// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import (
	"errors"
	"fmt"
)

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Memo operations
	OpMemoCreate  Op = "create memo"
	OpMemoDelete  Op = "delete memo"
	OpMemoEdit    Op = "edit memo"
	OpMemoRefresh Op = "refresh memos"
	OpMemoLoad    Op = "load memos"

	// State operations
	OpStateLoad Op = "load saved state"
	OpStateSave Op = "save state"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}

// Error tags an error with the operation that failed, so a caller further up
// can report it without knowing where it came from.
type Error struct {
	Op  Op
	Err error
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *Error) Unwrap() error { return e.Err }

// Wrap tags err with op. A nil err stays nil.
func Wrap(op Op, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}

// FormatAs formats err with the operation it was tagged with by Wrap, or
// with fallback when it carries none.
func FormatAs(fallback Op, err error) string {
	var e *Error
	if errors.As(err, &e) {
		return Format(e.Op, e.Err)
	}
	return Format(fallback, err)
}

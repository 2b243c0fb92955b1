// Package serrors provides the semantic error kinds of the contact book.
//
// Domain constructors report failures with With, tagging them with a Kind such
// as ErrValidation. Callers further up add context with Propagate, which keeps
// the kind of the underlying error so errors.Is(err, serrors.ErrValidation)
// still holds after wrapping.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a semantic error category. Only NewKind creates Kinds.
type Kind interface {
	error
	isKind()
}

type kind string

func (k kind) Error() string { return string(k) }
func (k kind) isKind()       {}

// NewKind returns the Kind named name.
func NewKind(name string) Kind { return kind(name) }

var (
	// ErrValidation marks a value rejected at construction time: an empty
	// contact name or a malformed phone number.
	ErrValidation = NewKind("VALIDATION")
	// ErrNotFound marks a contact or phone that is not in the book.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrInternal is the kind given by Propagate to errors that carry none.
	ErrInternal = NewKind("INTERNAL")
)

// Error carries a Kind, an optional cause and a message. errors.Is and
// errors.As see both the kind and the cause chain.
type Error struct {
	kind  Kind
	cause error
	msg   string
}

// With returns an error of kind k with a formatted message and no cause.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap returns an error of kind k that wraps err under a formatted message.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, cause: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// Propagate wraps err under a formatted message, keeping the kind found in
// err's chain. Errors without a kind become ErrInternal. A nil err yields nil.
func Propagate(err error, msgFmt string, args ...any) error {
	if err == nil {
		return nil
	}

	k := KindOf(err)
	if k == nil {
		k = ErrInternal
	}

	return Wrap(k, err, msgFmt, args...)
}

// KindOf returns the kind carried anywhere in err's chain, or nil.
func KindOf(err error) Kind {
	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return nil
}

// Error formats as "<msg>: <cause>", dropping whichever part is empty. With
// neither set it falls back to the kind's name.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.cause != nil:
		return e.msg + ": " + e.cause.Error()
	case e.msg != "":
		return e.msg
	case e.cause != nil:
		return e.cause.Error()
	case e.kind != nil:
		return e.kind.Error()
	default:
		return "unknown error"
	}
}

// Unwrap returns the cause.
func (e *Error) Unwrap() error { return e.cause }

// Is matches target against the kind, then the cause chain.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}

	return (e.kind != nil && errors.Is(e.kind, target)) ||
		(e.cause != nil && errors.Is(e.cause, target))
}

// As assigns the kind, or an error from the cause chain, to target.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}

	return (e.kind != nil && errors.As(e.kind, target)) ||
		(e.cause != nil && errors.As(e.cause, target))
}

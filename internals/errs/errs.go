// Package errs defines the error kinds the workflow services return.
// Controllers map kinds to HTTP statuses; services never touch HTTP.
package errs

import (
	"errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	KindValidation          Kind = "VALIDATION"
	KindNotFound            Kind = "NOT_FOUND"
	KindCapacity            Kind = "CAPACITY"
	KindTypeMismatch        Kind = "TYPE_MISMATCH"
	KindDuplicateAssignment Kind = "DUPLICATE_ASSIGNMENT"
	KindImmutableRecord     Kind = "IMMUTABLE_RECORD"
	KindAlreadySubmitted    Kind = "ALREADY_SUBMITTED"
)

// Error carries a kind, a human message and, for validation failures,
// the offending field.
type Error struct {
	Kind    Kind
	Field   string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

// Is matches by kind so callers can use errors.Is with the sentinels below.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// Sentinels for errors.Is checks.
var (
	ErrValidation          = &Error{Kind: KindValidation}
	ErrNotFound            = &Error{Kind: KindNotFound}
	ErrCapacity            = &Error{Kind: KindCapacity}
	ErrTypeMismatch        = &Error{Kind: KindTypeMismatch}
	ErrDuplicateAssignment = &Error{Kind: KindDuplicateAssignment}
	ErrImmutableRecord     = &Error{Kind: KindImmutableRecord}
	ErrAlreadySubmitted    = &Error{Kind: KindAlreadySubmitted}
)

func Validation(field, message string) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: message}
}

func NotFound(entity, id string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s %s not found", entity, id)}
}

func Capacity(message string) *Error {
	return &Error{Kind: KindCapacity, Message: message}
}

func TypeMismatch(message string) *Error {
	return &Error{Kind: KindTypeMismatch, Message: message}
}

func DuplicateAssignment(message string) *Error {
	return &Error{Kind: KindDuplicateAssignment, Message: message}
}

func ImmutableRecord(message string) *Error {
	return &Error{Kind: KindImmutableRecord, Message: message}
}

func AlreadySubmitted(message string) *Error {
	return &Error{Kind: KindAlreadySubmitted, Message: message}
}

func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// KindOf extracts the kind from err, or "" when err is not a domain error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

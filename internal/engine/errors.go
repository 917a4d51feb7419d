package engine

import (
	"errors"
	"fmt"
)

// Kind classifies analysis failures so callers can branch on the category
// without parsing messages.
type Kind int

const (
	// KindSourceUnavailable means the input resource could not be opened or
	// parsed at all.
	KindSourceUnavailable Kind = iota + 1

	// KindSchema means a required column is absent from the input table.
	KindSchema

	// KindType means a selected cell could not be coerced to a number.
	KindType

	// KindEmptyInput means the data set contains no usable rows.
	KindEmptyInput

	// KindRange means a position or x value is negative.
	KindRange

	// KindMissingValue means a magnitude, shear or moment value is NaN
	// after coercion.
	KindMissingValue

	// KindDomain means a scalar parameter is outside its valid domain,
	// e.g. a non-positive span length or a sampling resolution below 2.
	KindDomain
)

func (k Kind) String() string {
	switch k {
	case KindSourceUnavailable:
		return "source unavailable"
	case KindSchema:
		return "schema error"
	case KindType:
		return "type error"
	case KindEmptyInput:
		return "empty input"
	case KindRange:
		return "range error"
	case KindMissingValue:
		return "missing value"
	case KindDomain:
		return "domain error"
	}
	return "unknown error"
}

// Error is the failure type returned by the loader, validator, solver and
// sampler. The engine never recovers from these itself; they propagate to
// the command layer unchanged.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Errorf builds an Error of the given kind with a formatted message.
func Errorf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// WrapError builds an Error of the given kind around an underlying cause.
func WrapError(kind Kind, err error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

// IsKind reports whether err is (or wraps) an engine Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

package dialerr

import (
	"errors"
	"fmt"
)

type ErrKind int16

const (
	Unknown ErrKind = iota
	// Usage is a problem with the command line itself: no sub-command,
	// missing or malformed options.
	Usage
	// Configuration is a well-formed but unusable partition configuration.
	Configuration
	// IO is a read or write failure during a pass.
	IO
)

func (ek ErrKind) String() string {
	switch ek {
	case Usage:
		return "UsageError"
	case Configuration:
		return "ConfigurationError"
	case IO:
		return "IOError"
	default:
		return "Unknown"
	}
}

// Error is the terminal error of a hashdial invocation.
type Error struct {
	errKind    ErrKind
	errMessage string
	cause      error
}

func New(kind ErrKind, msg string) *Error {
	return &Error{
		errKind:    kind,
		errMessage: msg,
	}
}

func Newf(kind ErrKind, format string, args ...any) *Error {
	return New(kind, fmt.Sprintf(format, args...))
}

// Wrap returns an Error of the given kind whose cause is err.
func Wrap(kind ErrKind, msg string, err error) *Error {
	return &Error{
		errKind:    kind,
		errMessage: msg,
		cause:      err,
	}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s, %v", e.errKind, e.errMessage, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.errKind, e.errMessage)
}

func (e *Error) Unwrap() error {
	return e.cause
}

func (e *Error) ErrorKind() ErrKind {
	return e.errKind
}

func (e *Error) ErrorMessage() string {
	return e.errMessage
}

// KindOf returns the kind of the first Error in err's chain, or Unknown.
func KindOf(err error) ErrKind {
	var e *Error
	if errors.As(err, &e) {
		return e.errKind
	}
	return Unknown
}

// Is reports whether err's chain carries an Error of the given kind.
func Is(err error, kind ErrKind) bool {
	return err != nil && KindOf(err) == kind
}

package errors

import (
	"errors"
	"fmt"
)

type ComplexError struct {
	Err   error
	Cause error
}

func (e ComplexError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Cause.Error())
}

func (e ComplexError) Unwrap() error {
	return e.Cause
}

func Error(msg string) error {
	return errors.New(msg)
}

func Errorf(msg string, args ...interface{}) error {
	return fmt.Errorf(msg, args...)
}

// WrapError annotates cause with msg, preserving cause for errors.Is/As.
// A nil cause is replaced with a placeholder so the annotation is never lost.
func WrapError(cause error, msg string) error {
	return WrapComplexError(cause, errors.New(msg))
}

func WrapErrorf(cause error, msg string, args ...interface{}) error {
	return WrapComplexError(cause, fmt.Errorf(msg, args...))
}

func WrapComplexError(cause, err error) error {
	if cause == nil {
		cause = errors.New("<nil cause>")
	}

	return ComplexError{
		Err:   err,
		Cause: cause,
	}
}

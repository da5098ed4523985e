package httperr

import (
	"github.com/pkg/errors"
)

// New returns an error with msg and the stack at the call site.
func New(msg string) error {
	return errors.New(msg)
}

// Errorf formats according to a format specifier and records the stack.
func Errorf(format string, args ...interface{}) error {
	return errors.Errorf(format, args...)
}

// Wrap behaves as github.com/pkg/errors.Wrap: it adds msg as a layer of
// context on top of err. Wrap returns nil if err is nil.
func Wrap(err error, msg string) error {
	return errors.Wrap(err, msg)
}

// Wrapf is Wrap with a format specifier.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// Cause returns the innermost error of the chain.
func Cause(err error) error {
	if e, ok := err.(*Error); ok && !e.rendered {
		err = e.report
	}
	return errors.Cause(err)
}

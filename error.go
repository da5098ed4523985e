package httperr

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"reflect"

	"github.com/pkg/errors"
)

var (
	// ErrNil is the cause held by an Error built from a nil error. From adds
	// the stack of its caller.
	ErrNil = stderrors.New("httperr: nil error")

	// ErrConsumed is the body of any Render after the first one.
	ErrConsumed = stderrors.New("httperr: error already rendered")
)

// Error wraps an arbitrary error so that it can be served as an
// http.StatusInternalServerError response.
//
// An Error always holds exactly one non-nil error until it is rendered.
type Error struct {
	report   error
	rendered bool
}

// From converts any error into an *Error. It never fails.
//
// If err already is an *Error the same pointer is returned. A nil err (or a
// nil pointer) is replaced by ErrNil.
func From[E error](err E) *Error {
	var report error = err
	if isNil(report) {
		return &Error{report: errors.WithStack(ErrNil)}
	}
	if e, ok := report.(*Error); ok && e != nil {
		return e
	}
	return &Error{report: report}
}

// Status always returns http.StatusInternalServerError.
func (e *Error) Status() int {
	return http.StatusInternalServerError
}

func (e *Error) Error() string {
	if e.rendered {
		return ErrConsumed.Error()
	}
	return e.report.Error()
}

// Unwrap exposes the wrapped error to errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.report
}

// Format delegates to the wrapped error, so %+v prints the full chain.
func (e *Error) Format(s fmt.State, verb rune) {
	var err error = ErrConsumed
	if !e.rendered {
		err = e.report
	}
	if f, ok := err.(fmt.Formatter); ok {
		f.Format(s, verb)
		return
	}
	switch verb {
	case 'q':
		fmt.Fprintf(s, "%q", err.Error())
	default:
		fmt.Fprint(s, err.Error())
	}
}

// Rendered reports whether Render has been called.
func (e *Error) Rendered() bool {
	return e.rendered
}

// Render builds the 500 response for e. The wrapped error moves into the
// returned Response and e is spent: any later Render returns a response
// whose body is ErrConsumed.
func (e *Error) Render() Response {
	if e.rendered {
		return newTextResponse(e.Status(), ErrConsumed, ErrConsumed.Error())
	}
	err := e.report
	e.rendered = true
	e.report = nil
	return newTextResponse(e.Status(), err, report(err))
}

// isNil catches nil pointers such as a nil *os.PathError stored in an
// error. Nil slices and maps can carry a working Error method, so they are
// not nil here.
func isNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// report is the debug representation of err: every message in the chain,
// plus the stack traces recorded by github.com/pkg/errors.
func report(err error) string {
	return fmt.Sprintf("%+v", err)
}

package httperr

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// Handle is the function signature used so that Adapt can turn returned
// errors into responses.
//
// The first return value is served if error is nil, otherwise the error is
// served as a 500 via From and Render. A nil value with a nil error is
// served as 204.
type Handle[T http.Handler] func(http.ResponseWriter, *http.Request, httprouter.Params) (T, error)

// Adapt is middleware that converts a Handle into an httprouter.Handle.
func Adapt[T http.Handler](h Handle[T]) httprouter.Handle {
	return func(w http.ResponseWriter, req *http.Request, ps httprouter.Params) {
		v, err := h(w, req, ps)
		if err != nil {
			From(err).Render().ServeHTTP(w, req)
			return
		}
		if isNil(v) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		v.ServeHTTP(w, req)
	}
}

// AdaptFunc converts a handler that writes its own successful output into
// an httprouter.Handle. A returned error is served as a 500.
//
// The handler must not have written anything when it returns an error.
func AdaptFunc(h func(http.ResponseWriter, *http.Request, httprouter.Params) error) httprouter.Handle {
	return func(w http.ResponseWriter, req *http.Request, ps httprouter.Params) {
		if err := h(w, req, ps); err != nil {
			From(err).Render().ServeHTTP(w, req)
		}
	}
}

// HandlerFunc is an http.Handler for plain net/http muxes whose errors are
// served as a 500.
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// ServeHTTP calls f and renders its error, if any.
func (f HandlerFunc) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if err := f(w, req); err != nil {
		From(err).Render().ServeHTTP(w, req)
	}
}

/*
Package httperr implements a shim layer between handler functions that return
errors and the httprouter.Handle function signature.

Any error can be turned into an *Error with From, and an *Error renders as an
http 500 whose body is the full chain of the error, formatted with %+v:

	func (srv *server) index(w http.ResponseWriter, r *http.Request, ps httprouter.Params) (httperr.HTML, error) {
		b, err := os.ReadFile("index.html")
		if err != nil {
			return "", httperr.Wrap(err, "reading index")
		}
		return httperr.HTML(b), nil
	}

	r.GET("/", httperr.Adapt(srv.index))

The Adapt function serves the returned value when the error is nil, and
otherwise serves From(err).Render(). Every failure, whatever its origin,
surfaces the same way: status 500 with a text/plain body holding the root
cause first, then each layer of context added with Wrap or Wrapf, each
followed by the stack trace recorded by github.com/pkg/errors.

There are two reasons this package exists. First, handlers can return as
soon as something fails instead of remembering to write an error response
and then return:

	if err != nil {
		http.Error(w, "this is a failure", http.StatusInternalServerError)
	}
	// oops, this shouldn't be reached.

Second, the response carries the whole chain, so a failing request shows
what went wrong without a trip to the logs.

An *Error is single use. Render moves the wrapped error into the Response;
rendering the same *Error again yields a 500 whose body is ErrConsumed.

There is no throw statement or propagation annotation: failures propagate
with a plain early return of the error.
*/
package httperr

package httperr

import (
	"net/http"
)

// Response is a fully built http response. It implements http.Handler so
// that any router can serve it.
type Response struct {
	Status int
	Header http.Header
	Body   []byte

	// Err is the error the response was rendered from, if any.
	Err error
}

func newTextResponse(status int, err error, body string) Response {
	h := http.Header{}
	h.Set("Content-Type", "text/plain; charset=utf-8")
	h.Set("X-Content-Type-Options", "nosniff")
	return Response{
		Status: status,
		Header: h,
		Body:   []byte(body),
		Err:    err,
	}
}

// ServeHTTP writes the headers, the status and the body. A zero Status is
// served as a 500.
func (r Response) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	for k, vs := range r.Header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	status := r.Status
	if status == 0 {
		status = http.StatusInternalServerError
	}
	writeBody(w, req, w.Header().Get("Content-Type"), status, r.Body)
}

func pathOf(req *http.Request) string {
	if req == nil || req.URL == nil {
		return ""
	}
	return req.URL.Path
}

package httperr

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// Text is served as text/plain with status 200.
type Text string

func (t Text) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	writeBody(w, req, "text/plain; charset=utf-8", http.StatusOK, []byte(t))
}

// HTML is served as text/html with status 200.
type HTML string

func (h HTML) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	writeBody(w, req, "text/html; charset=utf-8", http.StatusOK, []byte(h))
}

// Success houses an http status code and data that will be encoded as JSON.
type Success struct {
	data   interface{}
	status int
}

// NewSuccess exists to give a Handle's return value an alternate http status.
//
// For example, if you need to communicate that a resource was created:
//
//	r := NewResource()
//	return NewSuccess(r, http.StatusCreated), nil
func NewSuccess(data interface{}, status int) Success {
	return Success{
		data:   data,
		status: status,
	}
}

// JSON is NewSuccess with http.StatusOK.
func JSON(data interface{}) Success {
	return NewSuccess(data, http.StatusOK)
}

// Status is the status the data is served with.
func (s Success) Status() int {
	return s.status
}

// Data is the value to be encoded.
func (s Success) Data() interface{} {
	return s.data
}

// ServeHTTP encodes the data. An encoding failure is served as a 500. The
// zero Success is served as 200 with a null body.
func (s Success) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	b, err := json.Marshal(s.data)
	if err != nil {
		From(Wrap(err, "json encode")).Render().ServeHTTP(w, req)
		return
	}
	status := s.status
	if status == 0 {
		status = http.StatusOK
	}
	writeBody(w, req, "application/json", status, append(b, '\n'))
}

func writeBody(w http.ResponseWriter, req *http.Request, contentType string, status int, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)
	if req != nil && req.Method == http.MethodHead {
		return
	}
	if _, err := w.Write(body); err != nil {
		logger.WithError(err).WithField("path", pathOf(req)).Warn("writing response body")
	}
}

package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/segmentio/ksuid"
	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, root string) *httptest.Server {
	t.Helper()

	logger, _ := logtest.NewNullLogger()
	ts := httptest.NewServer(NewServer(root, logger))
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, ts *httptest.Server, path string) (*http.Response, string) {
	t.Helper()

	resp, err := ts.Client().Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(b)
}

func TestIndex(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>demo</h1>"), 0o644))

	ts := newTestServer(t, dir)

	resp, body := get(t, ts, "/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "<h1>demo</h1>", body)
	assert.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))
}

func TestIndexMissing(t *testing.T) {
	ts := newTestServer(t, t.TempDir())

	resp, body := get(t, ts, "/")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, body, "reading index")
	assert.Contains(t, body, "index.html")
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0o644))

	ts := newTestServer(t, dir)

	resp, body := get(t, ts, "/v1/files/notes.txt")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "hello", body)

	resp, body = get(t, ts, "/v1/files/missing.txt")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, body, `reading "/missing.txt"`)
}

func TestFail(t *testing.T) {
	ts := newTestServer(t, t.TempDir())

	tests := []struct {
		label string
		path  string
		want  []string
	}{
		{"no context", "/v1/fail/0", []string{"simulated failure"}},
		{"two layers", "/v1/fail/2", []string{"simulated failure", "layer 1", "layer 2"}},
		{"bad depth", "/v1/fail/abc", []string{"invalid syntax", `parsing depth "abc"`}},
		{"out of range", "/v1/fail/99", []string{"depth 99 out of range"}},
	}

	for _, test := range tests {
		t.Run(test.label, func(t *testing.T) {
			resp, body := get(t, ts, test.path)
			assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

			last := -1
			for _, w := range test.want {
				i := strings.Index(body, w)
				require.True(t, i >= 0, "%q not in %q", w, body)
				assert.True(t, i > last, "%q out of order in %q", w, body)
				last = i
			}
		})
	}
}

func TestHealthAndVersion(t *testing.T) {
	ts := newTestServer(t, t.TempDir())

	resp, body := get(t, ts, "/v1/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, body)

	resp, body = get(t, ts, "/v1/version")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	v := map[string]string{}
	require.NoError(t, json.Unmarshal([]byte(body), &v))
	assert.Equal(t, Version, v["version"])
	assert.Equal(t, Git, v["git"])
}

func TestRequestLog(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	srv := NewServer(t.TempDir(), logger)

	w := httptest.NewRecorder()
	srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/fail/1", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	id := w.Header().Get("X-Request-Id")
	_, err := ksuid.Parse(id)
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, log.InfoLevel, entry.Level)
	assert.Equal(t, id, entry.Data["request_id"])
	assert.Equal(t, "/v1/fail/1", entry.Data["path"])
	assert.Equal(t, http.StatusInternalServerError, entry.Data["status"])
	assert.Equal(t, w.Body.Len(), entry.Data["bytes"])
}

func TestRecorder(t *testing.T) {
	w := httptest.NewRecorder()
	rec := newRecorder(w)

	assert.Equal(t, http.StatusOK, rec.status)

	rec.WriteHeader(http.StatusTeapot)
	_, err := rec.Write([]byte("short"))
	require.NoError(t, err)
	_, err = rec.Write([]byte(" and stout"))
	require.NoError(t, err)
	rec.Flush()

	assert.Equal(t, http.StatusTeapot, rec.status)
	assert.Equal(t, len("short and stout"), rec.bytes)
	assert.True(t, w.Flushed)
	assert.Equal(t, w, rec.Unwrap())
	assert.Equal(t, http.StatusTeapot, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t, t.TempDir())

	resp, _ := get(t, ts, "/metrics")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

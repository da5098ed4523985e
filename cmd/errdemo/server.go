package main

import (
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/segmentio/ksuid"
	log "github.com/sirupsen/logrus"

	"github.com/wish/httperr"
	"github.com/wish/httperr/metrics"
)

// maxDepth bounds the number of context layers /v1/fail/:depth will add.
const maxDepth = 32

// Server implements http.Handler for the demo http server.
type Server struct {
	root string
	log  log.FieldLogger

	handler http.Handler
}

// ServeHTTP dispatches to the underlying router.
func (srv *Server) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	srv.handler.ServeHTTP(w, req)
}

// NewServer returns a ready-to-use Server that serves files out of root.
func NewServer(root string, logger log.FieldLogger) *Server {
	if logger == nil {
		logger = log.StandardLogger()
	}
	srv := &Server{
		root: root,
		log:  logger,
	}

	hndlr := registerRoutes(srv)
	srv.handler = timer{Handler: hndlr, log: srv.log}

	return srv
}

func registerRoutes(srv *Server) http.Handler {
	r := httprouter.New()

	r.GET("/", httperr.Adapt(srv.index))
	r.GET("/v1/files/*path", httperr.Adapt(srv.file))
	r.GET("/v1/fail/:depth", httperr.Adapt(srv.fail))
	r.GET("/v1/health", httperr.Adapt(srv.health))
	r.GET("/v1/version", httperr.Adapt(srv.version))

	r.Handler("GET", "/metrics", promhttp.Handler())

	return r
}

func (srv *Server) index(w http.ResponseWriter, req *http.Request, _ httprouter.Params) (httperr.HTML, error) {
	b, err := srv.read("index.html")
	if err != nil {
		return "", httperr.Wrap(err, "reading index")
	}
	return httperr.HTML(b), nil
}

func (srv *Server) file(w http.ResponseWriter, req *http.Request, ps httprouter.Params) (httperr.Text, error) {
	name := ps.ByName("path")
	b, err := srv.read(name)
	if err != nil {
		return "", httperr.Wrapf(err, "reading %q", name)
	}
	return httperr.Text(b), nil
}

// read opens name relative to root; http.Dir keeps it from escaping root.
func (srv *Server) read(name string) ([]byte, error) {
	f, err := http.Dir(filepath.Clean(srv.root)).Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, httperr.Wrap(err, "read")
	}
	return b, nil
}

func (srv *Server) fail(w http.ResponseWriter, req *http.Request, ps httprouter.Params) (httperr.Text, error) {
	raw := ps.ByName("depth")
	depth, err := strconv.Atoi(raw)
	if err != nil {
		return "", httperr.Wrapf(err, "parsing depth %q", raw)
	}
	if depth < 0 || depth > maxDepth {
		return "", httperr.Errorf("depth %d out of range [0, %d]", depth, maxDepth)
	}

	err = httperr.New("simulated failure")
	for i := 1; i <= depth; i++ {
		err = httperr.Wrapf(err, "layer %d", i)
	}
	return "", err
}

func (srv *Server) health(w http.ResponseWriter, req *http.Request, _ httprouter.Params) (httperr.Success, error) {
	return httperr.JSON(map[string]string{"status": "ok"}), nil
}

type timer struct {
	http.Handler

	log log.FieldLogger
}

func (t timer) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	start := time.Now()
	id := ksuid.New().String()
	w.Header().Set("X-Request-Id", id)

	rec := newRecorder(w)
	t.Handler.ServeHTTP(rec, req)

	metrics.HTTPLatency(req.URL.Path, start)
	metrics.HTTPStatus(req.URL.Path, rec.status)
	if rec.status == http.StatusInternalServerError {
		metrics.ErrorResponse(req.URL.Path)
	}

	t.log.WithFields(log.Fields{
		"request_id": id,
		"method":     req.Method,
		"path":       req.URL.Path,
		"status":     rec.status,
		"bytes":      rec.bytes,
		"duration":   time.Since(start),
	}).Info("request")
}

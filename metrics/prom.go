package metrics

import (
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpReqLatencies = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "httperr",
		Subsystem: "http_server",
		Name:      "request_latency_ms",
		Help:      "Latency in ms of http requests grouped by req path",
		Buckets:   buckets(),
	}, []string{"path"})

	httpStatus = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "httperr",
		Subsystem: "http_server",
		Name:      "status_count",
		Help:      "The count of http responses issued classified by status and api endpoint",
	}, []string{"path", "code"})

	errorResponses = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "httperr",
		Subsystem: "http_server",
		Name:      "error_response_count",
		Help:      "The count of handler errors rendered as 500 responses grouped by req path",
	}, []string{"path"})
)

// RegisterPromMetrics registers all the metrics with the default registerer.
//
// Registering twice is not an error; the collectors already registered are
// reused.
func RegisterPromMetrics() error {
	return Register(prometheus.DefaultRegisterer)
}

// Register registers all the metrics with r.
func Register(r prometheus.Registerer) error {
	if err := r.Register(httpReqLatencies); err != nil {
		c, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			return errors.Wrap(err, "registering http request latency")
		}
		httpReqLatencies = c.ExistingCollector.(*prometheus.HistogramVec)
	}

	if err := r.Register(httpStatus); err != nil {
		c, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			return errors.Wrap(err, "registering http response counter")
		}
		httpStatus = c.ExistingCollector.(*prometheus.CounterVec)
	}

	if err := r.Register(errorResponses); err != nil {
		c, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			return errors.Wrap(err, "registering error response counter")
		}
		errorResponses = c.ExistingCollector.(*prometheus.CounterVec)
	}

	return nil
}

// msSince returns milliseconds since start.
func msSince(start time.Time) float64 {
	return float64(time.Since(start) / time.Millisecond)
}

// buckets returns the default prometheus buckets scaled to milliseconds.
func buckets() []float64 {
	r := []float64{}

	for _, v := range prometheus.DefBuckets {
		r = append(r, v*float64(time.Second/time.Millisecond))
	}
	return r
}

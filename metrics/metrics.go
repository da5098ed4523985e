package metrics

import (
	"fmt"
	"time"
)

// HTTPLatency records http request latency for a path.
func HTTPLatency(path string, start time.Time) {
	httpReqLatencies.WithLabelValues(path).Observe(msSince(start))
}

// HTTPStatus counts responses for a path by status class (200, 400, 500, ...).
func HTTPStatus(path string, status int) {
	httpStatus.WithLabelValues(path, fmt.Sprintf("%d", bucketHTTPStatus(status))).Inc()
}

// ErrorResponse counts rendered error responses for a path.
func ErrorResponse(path string) {
	errorResponses.WithLabelValues(path).Inc()
}

// bucketHTTPStatus rounds down to the nearest hundred to facilitate categorizing http statuses.
func bucketHTTPStatus(i int) int {
	return i - i%100
}

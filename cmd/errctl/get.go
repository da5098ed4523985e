package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// result is what a probe saw.
type result struct {
	Status int
	Body   string
}

func get(ctx context.Context, c *http.Client, host, path string) (result, error) {
	url := strings.TrimRight(host, "/") + "/" + strings.TrimLeft(path, "/")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return result{}, errors.Wrap(err, "building request")
	}

	resp, err := c.Do(req)
	if err != nil {
		return result{}, errors.Wrapf(err, "get %v", url)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return result{}, errors.Wrap(err, "reading body")
	}

	return result{Status: resp.StatusCode, Body: string(b)}, nil
}

// exitCode maps a probe's status to the process exit code.
func exitCode(r result) int {
	if r.Status >= http.StatusInternalServerError {
		return 2
	}
	return 0
}

func (r result) String() string {
	return fmt.Sprintf("%d %s\n\n%s", r.Status, http.StatusText(r.Status), r.Body)
}

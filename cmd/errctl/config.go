package main

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

type config struct {
	Host    string
	Timeout time.Duration
}

func parseConfig() (config, error) {
	c := config{
		Host:    "http://localhost:8080",
		Timeout: 5 * time.Second,
	}
	if err := envconfig.Process("errctl", &c); err != nil {
		return c, errors.Wrap(err, "parsing environment")
	}
	return c, nil
}

func (c config) String() string {
	var r string
	r += fmt.Sprintf("ERRCTL_HOST=%v\n", c.Host)
	r += fmt.Sprintf("ERRCTL_TIMEOUT=%v\n", c.Timeout)
	return r
}

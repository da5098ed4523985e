package main

import "time"

// Flags is parsed to populate the flags for command errdemo.
type Flags struct {
	Port int `long:"port" default:"8080" description:"Port for the http server"`

	Root string `short:"r" long:"root" default:"." description:"directory holding index.html and the files served under /v1/files/"`

	LogLevel string `long:"log_level" default:"info" description:"logrus level (debug, info, warn, error)"`

	ShutdownTimeout time.Duration `long:"shutdown_timeout" default:"5s" description:"how long in-flight requests get on shutdown"`
}

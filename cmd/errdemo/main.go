package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	flags "github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"

	"github.com/wish/httperr"
	"github.com/wish/httperr/metrics"
)

func main() {
	var config Flags
	parser := flags.NewParser(&config, flags.Default)
	a, err := parser.Parse()
	if err != nil {
		os.Exit(1)
	}

	if len(a) > 0 {
		switch a[0] {
		case "v", "version":
			PrintVersions()
			os.Exit(0)
		}
	}

	lvl, err := log.ParseLevel(config.LogLevel)
	if err != nil {
		log.Fatalf("bad log level: %v", err)
	}
	log.SetLevel(lvl)
	httperr.SetLogger(log.WithField("component", "httperr"))

	if err := metrics.RegisterPromMetrics(); err != nil {
		log.Fatalf("Unable to register prometheus metrics: %v", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", config.Port))
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	httpS := &http.Server{
		Handler: NewServer(config.Root, log.StandardLogger()),
	}

	go func() {
		log.WithField("port", config.Port).Info("Starting server")
		if err := httpS.Serve(lis); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, syscall.SIGTERM, syscall.SIGINT)

	<-stopChan
	log.Info("Got shutdown signal, gracefully shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := httpS.Shutdown(ctx); err != nil {
		log.Errorf("shutdown: %v", err)
	}
}

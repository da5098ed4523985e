package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	log "github.com/sirupsen/logrus"
)

const usage = `errctl [get <path>|env]`

func main() {
	c, err := parseConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	cmd := ""
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "get":
		if len(os.Args) < 3 {
			fmt.Fprintf(os.Stderr, "usage: %v\n", usage)
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), c.Timeout)
		r, err := get(ctx, &http.Client{}, c.Host, os.Args[2])
		cancel()
		if err != nil {
			fmt.Fprintf(os.Stderr, "probe: %+v\n", err)
			os.Exit(1)
		}

		fmt.Print(r)
		os.Exit(exitCode(r))
	case "env":
		fmt.Print(c)
	default:
		fmt.Fprintf(os.Stderr, "usage: %v\n", usage)
		os.Exit(1)
	}
}

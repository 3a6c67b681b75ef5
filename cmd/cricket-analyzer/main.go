// Package main is the entry point for the cricket-match-analyzer application
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
)

// Version is set during build using ldflags
var (
	version = "dev"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		// Report failures have already been printed one per line
		if !errors.Is(err, errReportsFailed) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

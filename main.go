package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charlessiwelejalusi/jalusi-aws-handler/cmd"
	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/logger"
)

func main() {
	defer func() {
		if rec := recover(); rec != nil {
			logger.LogPanic(rec)
			os.Exit(1)
		}
	}()

	// Ctrl+C and SIGTERM cancel the context every command runs under,
	// so waiters and SSH sessions unwind instead of dying mid-flight.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

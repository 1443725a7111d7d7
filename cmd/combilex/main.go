package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/msto63/combilex/cmd/combilex/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Execute(ctx); err != nil {
		stop()
		os.Exit(cmd.ExitCode(err))
	}
}

// Command becas-seed creates the demo user in the credential store.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/polkiloo/becas/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()
	opts, err := parseOptions(os.Args[1:], os.LookupEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "becas-seed: %v\n", err)
		stop()
		os.Exit(2)
	}

	log := logger.New(opts.Config)
	if err := seed(ctx, opts, log); err != nil {
		fmt.Fprintf(os.Stderr, "becas-seed: %v\n", err)
		stop()
		os.Exit(1)
	}
}

package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/fx"
)

// run starts app, blocks until ctx is cancelled or the app asks to stop,
// and returns the process exit code.
func run(ctx context.Context, app *fx.App) int {
	if err := app.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "failed to start becas: %v\n", err)
		return 1
	}

	var code int
	select {
	case <-ctx.Done():
	case sig := <-app.Wait():
		code = sig.ExitCode
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		fmt.Fprintf(os.Stderr, "failed to stop becas: %v\n", err)
		return 1
	}
	return code
}

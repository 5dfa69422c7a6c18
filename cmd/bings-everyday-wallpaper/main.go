package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"

	"github.com/handiism/bings-everyday-wallpaper/internal/app"
	"github.com/handiism/bings-everyday-wallpaper/internal/output"
)

func main() {
	output.Init()

	// Handle interrupts
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := newRootCmd(defaultDeps())
	err := rootCmd.ExecuteContext(ctx)
	stop()

	os.Exit(exitCode(err))
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}

	var failure *app.Failure
	if errors.As(err, &failure) {
		if failure.Canceled() {
			color.New(color.FgYellow).Fprintln(os.Stderr, "Download cancelled.")
			return 130
		}
		return 1
	}

	// Argument errors never reached the run, so nothing has reported them yet.
	output.Error("%v", err)
	return 1
}

// Package main starts gesturebackup.
//
// It wires process signals into a context so a watcher waiting for a
// removable volume can shut down cleanly, then hands over to the cobra
// command tree in cmd/.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"gesturebackup/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cmd.Execute(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

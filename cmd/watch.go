package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"gesturebackup/internal/activation"
	"gesturebackup/internal/config"
	"gesturebackup/internal/gesture"
	"gesturebackup/internal/input"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Track pointer gestures and back up when confirmed (default)",
	RunE:  runWatch,
}

func init() {
	addWatchFlags(watchCmd)
}

// addWatchFlags is shared with the root command, which runs watch by default.
func addWatchFlags(cmd *cobra.Command) {
	cmd.Flags().Int(config.KeyScreenWidth, 0, "screen width in pixels (detected with xrandr when unset)")
	cmd.Flags().Int(config.KeyScreenHeight, 0, "screen height in pixels (detected with xrandr when unset)")
	cmd.Flags().String(config.KeyInput, "-", `pointer input file or FIFO, "-" for stdin`)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	for _, key := range []string{config.KeyScreenWidth, config.KeyScreenHeight, config.KeyInput} {
		bindFlag(v, key, cmd, key)
	}
	if err := acquireInstanceLock(); err != nil {
		return err
	}
	defer releaseInstanceLock()

	e, err := setup(true)
	if err != nil {
		return err
	}
	defer e.close()

	ctx := cmd.Context()
	screen, err := input.ResolveScreen(ctx, input.Screen{Width: e.cfg.ScreenWidth, Height: e.cfg.ScreenHeight})
	if err != nil {
		return fmt.Errorf("screen size unknown, pass --width and --height: %w", err)
	}
	tracker, err := gesture.NewTracker(screen.Width, screen.Height)
	if err != nil {
		return err
	}

	r, err := openInput(e.cfg.Input, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer r.Close()
	src := input.NewLineSource(r, e.log)

	n := e.notifier()
	engine := e.engine(n)
	coord := activation.NewCoordinator(activation.BackupFunc(func(ctx context.Context) error {
		_, err := engine.Execute(ctx, e.cfg.SourceDir, e.cfg.Filter())
		return err
	}), n, e.log)

	e.log.WithField("screen", screen.String()).
		WithField("source", e.cfg.SourceDir).
		WithField("filter", e.cfg.Filter()).
		Info("watching for gestures")

	workerDone := make(chan error, 1)
	go func() { workerDone <- coord.Run(ctx) }()

	watchErr := activation.Watch(ctx, src, tracker, coord)
	coord.Close()
	workerErr := <-workerDone

	if skipped := src.Skipped(); skipped > 0 {
		e.log.WithField("skipped", skipped).Warn("malformed pointer lines ignored")
	}
	if ctx.Err() != nil {
		e.log.Info("shutting down")
		return nil
	}
	if watchErr != nil {
		return watchErr
	}
	return workerErr
}

func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pointer input: %w", err)
	}
	return f, nil
}

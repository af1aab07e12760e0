package activation

import (
	"context"

	"gesturebackup/internal/gesture"
	"gesturebackup/internal/input"
)

// Watch feeds every position from src through tracker into c until the
// source ends or ctx is done.
func Watch(ctx context.Context, src input.Source, tracker *gesture.Tracker, c *Coordinator) error {
	return src.Stream(ctx, func(p gesture.Coordinate) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if status := tracker.Update(p); status.Completed() {
			c.Handle(ctx, status)
		}
		return nil
	})
}

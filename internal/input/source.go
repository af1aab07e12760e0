// Package input supplies absolute pointer positions and the screen size to
// the gesture tracker.
package input

import (
	"context"

	"gesturebackup/internal/gesture"
)

// Source emits pointer positions in the order they were observed. Stream
// returns when the source is exhausted, emit fails, or ctx is done.
type Source interface {
	Stream(ctx context.Context, emit func(gesture.Coordinate) error) error
}

// SourceFunc adapts a function literal to the Source interface.
type SourceFunc func(ctx context.Context, emit func(gesture.Coordinate) error) error

// Stream calls the underlying function.
func (f SourceFunc) Stream(ctx context.Context, emit func(gesture.Coordinate) error) error {
	return f(ctx, emit)
}

// Points replays a fixed sequence of positions.
func Points(points ...gesture.Coordinate) Source {
	return SourceFunc(func(ctx context.Context, emit func(gesture.Coordinate) error) error {
		for _, p := range points {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := emit(p); err != nil {
				return err
			}
		}
		return nil
	})
}

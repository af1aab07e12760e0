package gesture

import (
	"fmt"
	"sync"
)

// Status classifies a single pointer update.
type Status int

const (
	// StatusInsideCurrent means the pointer is still inside the current region.
	StatusInsideCurrent Status = iota
	// StatusInsideNext means the pointer advanced into the next region.
	StatusInsideNext
	// StatusActivationComplete means the last region of the activation loop was entered.
	StatusActivationComplete
	// StatusConfirmationComplete means the last region of the confirmation strip was entered.
	StatusConfirmationComplete
	// StatusOutside means the pointer left the path and progress was reset.
	StatusOutside
)

func (s Status) String() string {
	switch s {
	case StatusInsideCurrent:
		return "inside-current"
	case StatusInsideNext:
		return "inside-next"
	case StatusActivationComplete:
		return "activation-complete"
	case StatusConfirmationComplete:
		return "confirmation-complete"
	case StatusOutside:
		return "outside"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Completed reports whether s marks the end of a shape.
func (s Status) Completed() bool {
	return s == StatusActivationComplete || s == StatusConfirmationComplete
}

// Tracker follows the pointer along the current shape's path. It keeps only
// the active shape and the index of the region reached so far, so every
// update is O(1).
//
// Tracker is safe for concurrent use; updates are serialised by an internal lock.
type Tracker struct {
	mu       sync.Mutex
	width    int
	height   int
	shape    Shape
	path     Path
	position int
}

// NewTracker creates a tracker for a width x height screen, starting with the
// activation shape.
func NewTracker(width, height int) (*Tracker, error) {
	if err := ValidateScreen(width, height); err != nil {
		return nil, err
	}
	return &Tracker{
		width:  width,
		height: height,
		shape:  ShapeActivation,
		path:   GeneratePath(width, height, ShapeActivation),
	}, nil
}

// Update feeds one pointer position into the automaton.
func (t *Tracker) Update(p Coordinate) Status {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.path[t.position].Contains(p) {
		return StatusInsideCurrent
	}

	last := len(t.path) - 1
	if t.position < last && t.path[t.position+1].Contains(p) {
		t.position++
		if t.position == last {
			return t.completeShape()
		}
		return StatusInsideNext
	}

	t.position = 0
	return StatusOutside
}

// completeShape swaps in the other shape's path. Caller holds t.mu.
func (t *Tracker) completeShape() Status {
	finished := t.shape
	t.shape = finished.Other()
	t.path = GeneratePath(t.width, t.height, t.shape)
	t.position = 0

	if finished == ShapeActivation {
		return StatusActivationComplete
	}
	return StatusConfirmationComplete
}

// Shape returns the shape currently being tracked.
func (t *Tracker) Shape() Shape {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.shape
}

// Position returns the index of the region reached on the current path.
func (t *Tracker) Position() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.position
}

// PathLen returns the number of regions in the current path.
func (t *Tracker) PathLen() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.path)
}

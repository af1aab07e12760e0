// Package gesture recognises the two secret pointer shapes that arm and
// trigger a backup.
//
// This package handles:
//   - Geometric primitives (Coordinate, Region, Path)
//   - Deterministic path generation for the activation and confirmation shapes
//   - The Tracker automaton that turns a live pointer stream into completion events
//
// Nothing in this package performs I/O; it is safe to drive from tests with
// synthetic coordinates.
package gesture

import "fmt"

// Coordinate is an absolute integer screen position.
type Coordinate struct {
	X int
	Y int
}

// Region is an axis-aligned rectangle with inclusive corners.
type Region struct {
	TopLeft     Coordinate
	BottomRight Coordinate
}

// NewRegion builds a region from its corner coordinates.
func NewRegion(x1, y1, x2, y2 int) Region {
	return Region{
		TopLeft:     Coordinate{X: x1, Y: y1},
		BottomRight: Coordinate{X: x2, Y: y2},
	}
}

// Contains reports whether p lies inside the region. All four bounds are inclusive.
func (r Region) Contains(p Coordinate) bool {
	return p.X >= r.TopLeft.X && p.X <= r.BottomRight.X &&
		p.Y >= r.TopLeft.Y && p.Y <= r.BottomRight.Y
}

// Center returns the integer midpoint of the region.
func (r Region) Center() Coordinate {
	return Coordinate{
		X: r.TopLeft.X + (r.BottomRight.X-r.TopLeft.X)/2,
		Y: r.TopLeft.Y + (r.BottomRight.Y-r.TopLeft.Y)/2,
	}
}

func (r Region) String() string {
	return fmt.Sprintf("[(%d,%d)-(%d,%d)]", r.TopLeft.X, r.TopLeft.Y, r.BottomRight.X, r.BottomRight.Y)
}

// Path is an ordered sequence of regions that must be visited strictly forward.
type Path []Region

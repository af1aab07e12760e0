package gesture

import "fmt"

// Shape selects which path-generation rule is active.
type Shape int

const (
	// ShapeActivation is the closed loop along the screen border that arms the system.
	ShapeActivation Shape = iota
	// ShapeConfirmation is the horizontal strip across the middle of the screen.
	ShapeConfirmation
)

func (s Shape) String() string {
	switch s {
	case ShapeActivation:
		return "activation"
	case ShapeConfirmation:
		return "confirmation"
	default:
		return fmt.Sprintf("shape(%d)", int(s))
	}
}

// Other returns the shape that follows s once s has been drawn.
func (s Shape) Other() Shape {
	if s == ShapeActivation {
		return ShapeConfirmation
	}
	return ShapeActivation
}

const (
	// minCells is the number of cells along the short (vertical) side of the screen.
	minCells = 8
	// overshoot extends border cells past the physical screen edge so that
	// pointer positions clamped at a corner still register.
	overshoot = 100
)

// ValidateScreen rejects screen sizes for which the generated paths would be
// too short to describe a shape.
func ValidateScreen(width, height int) error {
	cell := height / minCells
	if width <= 0 || cell <= 0 {
		return fmt.Errorf("screen %dx%d too small for gesture paths", width, height)
	}
	if minCells+(width-height)/cell < 3 {
		return fmt.Errorf("screen %dx%d too narrow for gesture paths", width, height)
	}
	return nil
}

// GeneratePath builds the region sequence for shape on a width x height screen.
// The result depends only on its arguments.
//
// The activation loop runs down the left edge, right along the bottom, up the
// right edge and back left along the top. Each edge after the first starts
// one cell in, because its corner cell is the last cell of the previous edge.
func GeneratePath(width, height int, shape Shape) Path {
	cell := height / minCells
	extra := (width - height) / cell

	if shape == ShapeConfirmation {
		return confirmationPath(width, height, cell, extra)
	}

	path := make(Path, 0, 4*minCells+2*extra)

	// left edge, top to bottom
	i := 0
	for ; i < minCells-1; i++ {
		path = append(path, NewRegion(-overshoot, i*cell, cell, (i+1)*cell))
	}
	path = append(path, NewRegion(-overshoot, i*cell, cell, height+overshoot))

	// bottom edge, left to right
	for i = 1; i < minCells+extra-1; i++ {
		path = append(path, NewRegion(i*cell, height-cell, (i+1)*cell, height+overshoot))
	}
	path = append(path, NewRegion(i*cell, height-cell, width+overshoot, height+overshoot))

	// right edge, bottom to top
	for i = 1; i < minCells-1; i++ {
		path = append(path, NewRegion(width-cell, height-(i+1)*cell, width+overshoot, height-i*cell))
	}
	path = append(path, NewRegion(width-cell, -overshoot, width+overshoot, height-i*cell))

	// top edge, right to left
	for i = 1; i < minCells+extra-2; i++ {
		path = append(path, NewRegion(width-(i+1)*cell, -overshoot, width-i*cell, cell))
	}
	path = append(path, NewRegion(cell, -overshoot, width-i*cell, cell))

	return path
}

func confirmationPath(width, height, cell, extra int) Path {
	top := height/2 - 2*cell
	bottom := height/2 + 2*cell

	path := make(Path, 0, minCells+extra)
	i := 0
	for ; i < minCells+extra-1; i++ {
		path = append(path, NewRegion(i*cell, top, (i+1)*cell, bottom))
	}
	return append(path, NewRegion(i*cell, top, width, bottom))
}

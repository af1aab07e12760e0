package gesture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegionContainsIsInclusive(t *testing.T) {
	r := NewRegion(10, 20, 30, 40)

	tests := []struct {
		name string
		p    Coordinate
		want bool
	}{
		{"top-left corner", Coordinate{10, 20}, true},
		{"bottom-right corner", Coordinate{30, 40}, true},
		{"top-right corner", Coordinate{30, 20}, true},
		{"inside", Coordinate{15, 25}, true},
		{"left of region", Coordinate{9, 25}, false},
		{"right of region", Coordinate{31, 25}, false},
		{"above region", Coordinate{15, 19}, false},
		{"below region", Coordinate{15, 41}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Contains(tt.p))
		})
	}
}

func TestGeneratePathIsDeterministic(t *testing.T) {
	for _, shape := range []Shape{ShapeActivation, ShapeConfirmation} {
		a := GeneratePath(1920, 1080, shape)
		b := GeneratePath(1920, 1080, shape)
		assert.Equal(t, a, b, "shape %s", shape)
	}
}

func TestGeneratePathCellCounts(t *testing.T) {
	// 1920x1080: cell = 135, extra = 840/135 = 6
	activation := GeneratePath(1920, 1080, ShapeActivation)
	// left 8 + bottom 13 + right 7 + top 12; every edge after the first
	// shares its corner cell with the previous edge
	assert.Len(t, activation, 40)

	confirmation := GeneratePath(1920, 1080, ShapeConfirmation)
	assert.Len(t, confirmation, 14)
}

func TestGeneratePathActivationBounds(t *testing.T) {
	p := GeneratePath(1920, 1080, ShapeActivation)

	assert.Equal(t, NewRegion(-100, 0, 135, 135), p[0])
	assert.Equal(t, NewRegion(-100, 945, 135, 1180), p[7], "left edge absorbs bottom-left overshoot")
	assert.Equal(t, NewRegion(135, 945, 270, 1180), p[8])
	assert.Equal(t, NewRegion(1755, 945, 2020, 1180), p[20], "bottom edge absorbs bottom-right overshoot")
	assert.Equal(t, NewRegion(1785, 810, 2020, 945), p[21])
	assert.Equal(t, NewRegion(1785, -100, 2020, 135), p[27], "right edge absorbs top-right overshoot")
	assert.Equal(t, NewRegion(1650, -100, 1785, 135), p[28])
	assert.Equal(t, NewRegion(135, -100, 300, 135), p[39], "top edge stops one cell short of the start")
}

func TestGeneratePathConfirmationBounds(t *testing.T) {
	p := GeneratePath(1920, 1080, ShapeConfirmation)

	for i, r := range p {
		assert.Equal(t, 270, r.TopLeft.Y, "cell %d", i)
		assert.Equal(t, 810, r.BottomRight.Y, "cell %d", i)
	}
	assert.Equal(t, NewRegion(0, 270, 135, 810), p[0])
	assert.Equal(t, NewRegion(1755, 270, 1920, 810), p[len(p)-1])
}

func TestGeneratePathRegionsAreReachable(t *testing.T) {
	sizes := [][2]int{{1920, 1080}, {1366, 768}, {2560, 1440}, {1024, 1024}}
	for _, size := range sizes {
		for _, shape := range []Shape{ShapeActivation, ShapeConfirmation} {
			p := GeneratePath(size[0], size[1], shape)
			require.GreaterOrEqual(t, len(p), 3)
			for i := 1; i < len(p); i++ {
				c := p[i].Center()
				assert.False(t, p[i-1].Contains(c),
					"%dx%d %s: center of region %d lies in region %d", size[0], size[1], shape, i, i-1)
			}
		}
	}
}

func TestValidateScreen(t *testing.T) {
	assert.NoError(t, ValidateScreen(1920, 1080))
	assert.NoError(t, ValidateScreen(1024, 1024))
	assert.Error(t, ValidateScreen(1920, 7))
	assert.Error(t, ValidateScreen(0, 1080))
	assert.Error(t, ValidateScreen(200, 1080), "portrait strip too narrow")
}

func TestShapeOther(t *testing.T) {
	assert.Equal(t, ShapeConfirmation, ShapeActivation.Other())
	assert.Equal(t, ShapeActivation, ShapeConfirmation.Other())
}

package gesture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testWidth  = 1920
	testHeight = 1080
)

// walk returns one point per region of p, each inside its region and outside
// the previous one.
func walk(p Path) []Coordinate {
	points := make([]Coordinate, len(p))
	for i, r := range p {
		points[i] = r.Center()
	}
	return points
}

func newTestTracker(t *testing.T) *Tracker {
	t.Helper()
	tr, err := NewTracker(testWidth, testHeight)
	require.NoError(t, err)
	return tr
}

func TestNewTrackerRejectsTinyScreen(t *testing.T) {
	_, err := NewTracker(10, 5)
	assert.Error(t, err)
}

func TestTrackerCompletesActivationOnLastRegion(t *testing.T) {
	tr := newTestTracker(t)
	points := walk(GeneratePath(testWidth, testHeight, ShapeActivation))

	assert.Equal(t, StatusInsideCurrent, tr.Update(points[0]))
	for i := 1; i < len(points)-1; i++ {
		status := tr.Update(points[i])
		require.Equal(t, StatusInsideNext, status, "region %d", i)
		// lingering inside the region changes nothing
		require.Equal(t, StatusInsideCurrent, tr.Update(points[i]), "region %d", i)
		require.Equal(t, i, tr.Position())
	}

	assert.Equal(t, StatusActivationComplete, tr.Update(points[len(points)-1]))
	assert.Equal(t, ShapeConfirmation, tr.Shape())
	assert.Equal(t, 0, tr.Position())
	assert.Equal(t, len(GeneratePath(testWidth, testHeight, ShapeConfirmation)), tr.PathLen())
}

func TestTrackerCompletesConfirmationAfterActivation(t *testing.T) {
	tr := newTestTracker(t)

	completions := 0
	var last Status
	for _, p := range walk(GeneratePath(testWidth, testHeight, ShapeActivation)) {
		if s := tr.Update(p); s.Completed() {
			completions++
			last = s
		}
	}
	require.Equal(t, 1, completions)
	require.Equal(t, StatusActivationComplete, last)

	points := walk(GeneratePath(testWidth, testHeight, ShapeConfirmation))
	for i, p := range points {
		s := tr.Update(p)
		if i == len(points)-1 {
			assert.Equal(t, StatusConfirmationComplete, s)
		} else {
			assert.False(t, s.Completed(), "completed early at region %d", i)
		}
	}
	assert.Equal(t, ShapeActivation, tr.Shape())
	assert.Equal(t, 0, tr.Position())
}

func TestTrackerResetsOnDeviation(t *testing.T) {
	tr := newTestTracker(t)
	points := walk(GeneratePath(testWidth, testHeight, ShapeActivation))

	for i := 0; i < 15; i++ {
		tr.Update(points[i])
	}
	require.Equal(t, 14, tr.Position())

	// the middle of the screen is on no activation region
	assert.Equal(t, StatusOutside, tr.Update(Coordinate{X: 960, Y: 540}))
	assert.Equal(t, 0, tr.Position())
	assert.Equal(t, ShapeActivation, tr.Shape())

	// a second deviation is an idempotent restart
	assert.Equal(t, StatusOutside, tr.Update(Coordinate{X: 961, Y: 541}))
	assert.Equal(t, 0, tr.Position())
}

func TestTrackerDoesNotSkipRegions(t *testing.T) {
	tr := newTestTracker(t)
	points := walk(GeneratePath(testWidth, testHeight, ShapeActivation))

	tr.Update(points[0])
	assert.Equal(t, StatusOutside, tr.Update(points[2]), "jumping two regions ahead restarts")
	assert.Equal(t, 0, tr.Position())
}

func TestTrackerDoesNotMoveBackward(t *testing.T) {
	tr := newTestTracker(t)
	points := walk(GeneratePath(testWidth, testHeight, ShapeActivation))

	for i := 0; i < 4; i++ {
		tr.Update(points[i])
	}
	require.Equal(t, 3, tr.Position())
	assert.Equal(t, StatusOutside, tr.Update(points[2]))
	assert.Equal(t, 0, tr.Position())
}

func TestTrackerRestartedGestureStillCompletes(t *testing.T) {
	tr := newTestTracker(t)
	points := walk(GeneratePath(testWidth, testHeight, ShapeActivation))

	for i := 0; i < 20; i++ {
		tr.Update(points[i])
	}
	tr.Update(Coordinate{X: 960, Y: 540})

	var statuses []Status
	for _, p := range points {
		statuses = append(statuses, tr.Update(p))
	}
	assert.Equal(t, StatusActivationComplete, statuses[len(statuses)-1])
	for _, s := range statuses[:len(statuses)-1] {
		assert.False(t, s.Completed())
	}
}

func TestConfirmationStripAloneDoesNotComplete(t *testing.T) {
	tr := newTestTracker(t)

	for _, p := range walk(GeneratePath(testWidth, testHeight, ShapeConfirmation)) {
		assert.False(t, tr.Update(p).Completed())
	}
	assert.Equal(t, ShapeActivation, tr.Shape())
}

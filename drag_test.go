package gowire3d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDragAngles(t *testing.T) {
	aboutY, aboutX := DragAngles(10, 10, 100, -170)
	assert.InDelta(t, math.Pi/2, aboutY, float64EqualityThreshold)
	assert.InDelta(t, -math.Pi, aboutX, float64EqualityThreshold)
}

func TestDragRotateLifecycle(t *testing.T) {
	var d DragRotate
	assert.Equal(t, DragIdle, d.State())

	_, _, ok := d.Drag(5, 5)
	assert.False(t, ok, "no drag before a press")

	d.Press(20, 30)
	assert.Equal(t, DragDragging, d.State())
	assert.Equal(t, "dragging", d.State().String())

	aboutY, aboutX, ok := d.Drag(20+180, 30)
	require.True(t, ok)
	assert.InDelta(t, math.Pi, aboutY, float64EqualityThreshold)
	assert.Equal(t, 0.0, aboutX)

	aboutY, aboutX, ok = d.Release(20, 30+90)
	require.True(t, ok)
	assert.Equal(t, 0.0, aboutY)
	assert.InDelta(t, math.Pi/2, aboutX, float64EqualityThreshold)
	assert.Equal(t, DragIdle, d.State())

	_, _, ok = d.Release(0, 0)
	assert.False(t, ok, "release without a drag")
}

func TestApplyDragOrder(t *testing.T) {
	m := NewMesh(map[int]*Point3d{1: NewPoint3d(1, 0, 0)}, nil)

	// Y first turns +X into -Z, then X turns -Z into +Y.
	p, _ := ApplyDrag(m, math.Pi/2, math.Pi/2).Vertex(1)
	assert.InDelta(t, 0.0, p.GetX(), float64EqualityThreshold)
	assert.InDelta(t, 1.0, p.GetY(), float64EqualityThreshold)
	assert.InDelta(t, 0.0, p.GetZ(), float64EqualityThreshold)

	orig, _ := m.Vertex(1)
	assert.True(t, orig.Equal(NewPoint3d(1, 0, 0)))
}

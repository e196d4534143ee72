package gowire3d

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

type Axis int

const (
	RotX Axis = iota
	RotY
	RotZ
)

func (a Axis) String() string {
	switch a {
	case RotX:
		return "x"
	case RotY:
		return "y"
	case RotZ:
		return "z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// NewRotationMatrix returns the right-handed rotation by theta radians about
// the X or Y axis. Z has no matrix form here, see Point3d.RotateAboutZ.
func NewRotationMatrix(axis Axis, theta float64) mgl64.Mat3 {
	switch axis {
	case RotX:
		return mgl64.Rotate3DX(theta)
	case RotY:
		return mgl64.Rotate3DY(theta)
	}
	panic(fmt.Sprintf("gowire3d: no rotation matrix for axis %s", axis))
}

// DegreesToRadians converts the whole-degree angles produced by drag
// gestures.
func DegreesToRadians(degrees int) float64 {
	return mgl64.DegToRad(float64(degrees))
}

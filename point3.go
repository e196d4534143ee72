package gowire3d

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// pointScale is the number of stored steps per world unit (two decimals).
const pointScale = 100

// MaxCoordinate is the largest magnitude a Point3d can hold. Larger values
// are clamped.
const MaxCoordinate = math.MaxInt64 / pointScale

// Point3d is an immutable point whose coordinates are stored as whole
// hundredths, truncated toward zero.
type Point3d struct {
	x, y, z int64
}

func NewPoint3d(x, y, z float64) *Point3d {
	return &Point3d{
		x: quantize(x),
		y: quantize(y),
		z: quantize(z),
	}
}

// quantize truncates v toward zero at two decimals, clamped to the int64
// range. Unlike a literal trunc(v*100), a product within 1e-9 (relative)
// of a whole hundredth is snapped to it first: 0.29 stays 0.29 instead of
// becoming 0.28, and 1.2399999999995 becomes 1.24. Re-quantizing a stored
// value therefore never moves it.
func quantize(v float64) int64 {
	scaled := v * pointScale
	switch {
	case scaled >= math.MaxInt64:
		return math.MaxInt64
	case scaled <= math.MinInt64:
		return math.MinInt64
	}
	if r := math.Round(scaled); math.Abs(scaled-r) <= 1e-9*math.Max(1, math.Abs(scaled)) {
		scaled = r
	}
	return int64(math.Trunc(scaled))
}

func (p *Point3d) GetX() float64 { return float64(p.x) / pointScale }
func (p *Point3d) GetY() float64 { return float64(p.y) / pointScale }
func (p *Point3d) GetZ() float64 { return float64(p.z) / pointScale }

func (p *Point3d) vec() mgl64.Vec3 {
	return mgl64.Vec3{p.GetX(), p.GetY(), p.GetZ()}
}

func fromVec(v mgl64.Vec3) *Point3d {
	return NewPoint3d(v[0], v[1], v[2])
}

// Equal reports whether both points hold the same stored coordinates.
func (p *Point3d) Equal(o *Point3d) bool {
	return p.x == o.x && p.y == o.y && p.z == o.z
}

// ProjectOnXY drops the depth coordinate.
func (p *Point3d) ProjectOnXY() *Point3d {
	return NewPoint3d(p.GetX(), p.GetY(), 0)
}

func (p *Point3d) RotateAboutX(theta float64) *Point3d {
	return fromVec(NewRotationMatrix(RotX, theta).Mul3x1(p.vec()))
}

func (p *Point3d) RotateAboutY(theta float64) *Point3d {
	return fromVec(NewRotationMatrix(RotY, theta).Mul3x1(p.vec()))
}

// RotateAboutZ keeps the legacy viewer's formula: both x and y become
// x*sin(theta) + y*cos(theta). It is not an orthogonal rotation.
func (p *Point3d) RotateAboutZ(theta float64) *Point3d {
	x, y := p.GetX(), p.GetY()
	v := x*math.Sin(theta) + y*math.Cos(theta)
	return NewPoint3d(v, v, p.GetZ())
}

// Rotate dispatches on one of RotX, RotY or RotZ.
func (p *Point3d) Rotate(axis Axis, theta float64) *Point3d {
	switch axis {
	case RotX:
		return p.RotateAboutX(theta)
	case RotY:
		return p.RotateAboutY(theta)
	case RotZ:
		return p.RotateAboutZ(theta)
	}
	panic(fmt.Sprintf("gowire3d: unknown rotation axis %d", axis))
}

func (p *Point3d) String() string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", p.GetX(), p.GetY(), p.GetZ())
}

package vmath

import "github.com/go-gl/mathgl/mgl64"

// Axis constants in world space; -Z is "forward" for an identity rotation
var (
	AxisX   = mgl64.Vec3{1, 0, 0}
	AxisY   = mgl64.Vec3{0, 1, 0}
	AxisZ   = mgl64.Vec3{0, 0, 1}
	Forward = mgl64.Vec3{0, 0, -1}
)

// Transform is a world pose: translation plus unit-quaternion orientation
type Transform struct {
	Translation mgl64.Vec3
	Rotation    mgl64.Quat
}

// NewTransform returns a transform at the given translation with identity rotation
func NewTransform(translation mgl64.Vec3) Transform {
	return Transform{
		Translation: translation,
		Rotation:    mgl64.QuatIdent(),
	}
}

// Forward returns the unit forward direction (local -Z rotated into world space)
func (t *Transform) Forward() mgl64.Vec3 {
	return t.Rotation.Rotate(Forward)
}

// RotateY rotates around the world Y axis
func (t *Transform) RotateY(angle float64) {
	if angle == 0 {
		return
	}
	t.Rotation = mgl64.QuatRotate(angle, AxisY).Mul(t.Rotation).Normalize()
}

// RotateLocalZ rotates around the transform's own Z axis
func (t *Transform) RotateLocalZ(angle float64) {
	if angle == 0 {
		return
	}
	t.Rotation = t.Rotation.Mul(mgl64.QuatRotate(angle, AxisZ)).Normalize()
}

// LengthSq returns the squared magnitude of v
func LengthSq(v mgl64.Vec3) float64 {
	return v.Dot(v)
}

package component

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/void-drift/vmath"
)

// TransformComponent is the world pose of an entity
type TransformComponent struct {
	vmath.Transform
}

// VelocityComponent holds linear velocity in units per second
type VelocityComponent struct {
	Value mgl64.Vec3
}

// AccelerationComponent holds linear acceleration in units per second squared
type AccelerationComponent struct {
	Value mgl64.Vec3
}

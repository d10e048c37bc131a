package physics

import "github.com/go-gl/mathgl/mgl64"

// IntegratePosition advances position by velocity over dt seconds: p = p + v*dt
func IntegratePosition(pos, vel mgl64.Vec3, dt float64) mgl64.Vec3 {
	return pos.Add(vel.Mul(dt))
}

// IntegrateVelocity advances velocity by acceleration over dt seconds: v = v + a*dt
func IntegrateVelocity(vel, acc mgl64.Vec3, dt float64) mgl64.Vec3 {
	return vel.Add(acc.Mul(dt))
}

package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Float64Source is the subset of *rand.Rand used for sampling
type Float64Source interface {
	Float64() float64
}

// RandomOnDisk returns a point uniformly distributed on the XZ disk of the given radius (y = 0)
func RandomOnDisk(rng Float64Source, radius float64) mgl64.Vec3 {
	r := radius * math.Sqrt(rng.Float64())
	theta := 2 * math.Pi * rng.Float64()
	return mgl64.Vec3{r * math.Cos(theta), 0, r * math.Sin(theta)}
}

// RandomPlanarVelocity returns a velocity with uniform direction in the XZ plane
// and magnitude uniform in [minSpeed, maxSpeed]
func RandomPlanarVelocity(rng Float64Source, minSpeed, maxSpeed float64) mgl64.Vec3 {
	theta := 2 * math.Pi * rng.Float64()
	speed := minSpeed + rng.Float64()*(maxSpeed-minSpeed)
	return mgl64.Vec3{math.Cos(theta) * speed, 0, math.Sin(theta) * speed}
}

// RandomOrientation returns a uniformly distributed unit quaternion (Shoemake)
func RandomOrientation(rng Float64Source) mgl64.Quat {
	u1, u2, u3 := rng.Float64(), rng.Float64(), rng.Float64()
	a := math.Sqrt(1 - u1)
	b := math.Sqrt(u1)
	return mgl64.Quat{
		W: b * math.Cos(2*math.Pi*u3),
		V: mgl64.Vec3{
			a * math.Sin(2*math.Pi*u2),
			a * math.Cos(2*math.Pi*u2),
			b * math.Sin(2*math.Pi*u3),
		},
	}
}

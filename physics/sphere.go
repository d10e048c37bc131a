package physics

import "github.com/go-gl/mathgl/mgl64"

// SpheresOverlap reports whether two spheres intersect
// Touching spheres (distance == rA+rB) do not overlap
func SpheresOverlap(posA mgl64.Vec3, radiusA float64, posB mgl64.Vec3, radiusB float64) bool {
	d := posA.Sub(posB)
	reach := radiusA + radiusB
	return d.Dot(d) < reach*reach
}

package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// cellAspect is the height of a terminal cell over its width
const cellAspect = 2.0

// Viewport maps the world XZ plane onto screen cells, looking down the Y axis
// Screen up is world -Z; screen right is world +X
type Viewport struct {
	centerX, centerY float64
	scaleX, scaleY   float64
}

// NewViewport fits a square of halfExtent world units around the origin into width x height cells
func NewViewport(width, height int, halfExtent float64) Viewport {
	if halfExtent <= 0 {
		halfExtent = 1
	}
	sx := float64(width) / (2 * halfExtent)
	if byRows := float64(height) * cellAspect / (2 * halfExtent); byRows < sx {
		sx = byRows
	}
	return Viewport{
		centerX: float64(width) / 2,
		centerY: float64(height) / 2,
		scaleX:  sx,
		scaleY:  sx / cellAspect,
	}
}

// Project returns the cell for a world position
func (v Viewport) Project(p mgl64.Vec3) (int, int) {
	x := v.centerX + p.X()*v.scaleX
	y := v.centerY + p.Z()*v.scaleY
	return int(math.Floor(x)), int(math.Floor(y))
}

// Octant returns the compass octant 0..7 (N, NE, E, ... NW) of a forward direction
func Octant(forward mgl64.Vec3) int {
	if forward.X() == 0 && forward.Z() == 0 {
		return 0
	}
	angle := math.Atan2(forward.X(), -forward.Z())
	o := int(math.Round(angle / (math.Pi / 4)))
	return ((o % 8) + 8) % 8
}

package renderers

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/void-drift/engine"
	"github.com/lixenwraith/void-drift/render"
)

// BoundaryRenderer traces the despawn circle and the origin marker
type BoundaryRenderer struct {
	world *engine.World
}

// NewBoundaryRenderer creates a boundary renderer
func NewBoundaryRenderer(world *engine.World) *BoundaryRenderer {
	return &BoundaryRenderer{world: world}
}

// Render implements SystemRenderer
func (r *BoundaryRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	style := tcell.StyleDefault.Foreground(render.RgbBoundary).Background(render.RgbBackground)
	radius := r.world.Resources.Config.Tuning.Despawn.Distance

	// Enough samples for one dot per column along the circumference
	steps := int(2*math.Pi*radius) + 1
	for i := 0; i < steps; i++ {
		theta := 2 * math.Pi * float64(i) / float64(steps)
		x, y := ctx.View.Project(mgl64.Vec3{radius * math.Cos(theta), 0, radius * math.Sin(theta)})
		if y < ctx.FieldHeight {
			buf.Set(x, y, '·', style)
		}
	}

	x, y := ctx.View.Project(mgl64.Vec3{})
	if y < ctx.FieldHeight {
		buf.Set(x, y, '+', style)
	}
}

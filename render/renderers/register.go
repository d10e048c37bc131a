package renderers

import (
	"github.com/lixenwraith/void-drift/engine"
	"github.com/lixenwraith/void-drift/render"
)

// RegisterAll adds the standard layers to o
func RegisterAll(o *render.RenderOrchestrator, world *engine.World) {
	o.Register(NewBoundaryRenderer(world), render.PriorityBoundary)
	o.Register(NewEntityRenderer(world), render.PriorityEntities)
	o.Register(NewStatusBarRenderer(world), render.PriorityUI)
	o.Register(NewOverlayRenderer(), render.PriorityOverlay)
}

package render

import (
	"github.com/lixenwraith/void-drift/engine"
	"github.com/lixenwraith/void-drift/parameter"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	// Screen dimensions
	Width  int
	Height int

	// Rows above the HUD
	FieldHeight int

	Tick  int64
	State engine.State

	View Viewport
}

// NewRenderContext builds the context for one frame of w
func NewRenderContext(w *engine.World, width, height int) RenderContext {
	field := height - parameter.HUDHeight
	if field < 0 {
		field = 0
	}
	ctx := RenderContext{
		Width:       width,
		Height:      height,
		FieldHeight: field,
	}
	half := parameter.ViewMargin * parameter.DespawnDistance
	if w.Resources.Config != nil {
		half = parameter.ViewMargin * w.Resources.Config.Tuning.Despawn.Distance
	}
	ctx.View = NewViewport(width, field, half)
	if w.Resources.Time != nil {
		ctx.Tick = w.Resources.Time.FrameNumber
	}
	if w.Resources.State != nil {
		ctx.State = w.Resources.State.Current()
	}
	return ctx
}

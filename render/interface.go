package render

// SystemRenderer is implemented by everything that draws a layer of the frame
type SystemRenderer interface {
	Render(ctx RenderContext, buf *RenderBuffer)
}

// VisibilityToggle is optionally implemented for layers that are only drawn in some states
type VisibilityToggle interface {
	IsVisible(ctx RenderContext) bool
}

package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/void-drift/core"
	"github.com/lixenwraith/void-drift/engine"
	"github.com/lixenwraith/void-drift/render"
)

// EntityRenderer draws every entity with a scene at its projected position
// Asteroids first, then missiles, then the ship on top
type EntityRenderer struct {
	world *engine.World
}

// NewEntityRenderer creates an entity renderer
func NewEntityRenderer(world *engine.World) *EntityRenderer {
	return &EntityRenderer{world: world}
}

// Render implements SystemRenderer
func (r *EntityRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	c := &r.world.Components
	for _, tag := range []engine.QueryableStore{c.Asteroid, c.SpaceshipMissile} {
		for _, e := range r.world.Query().With(tag).With(c.Transform).With(c.Scene).Execute() {
			r.draw(ctx, buf, e, false)
		}
	}
	for _, e := range r.world.Query().With(c.Spaceship).With(c.Transform).With(c.Scene).Execute() {
		r.draw(ctx, buf, e, true)
	}
}

func (r *EntityRenderer) draw(ctx render.RenderContext, buf *render.RenderBuffer, e core.Entity, heading bool) {
	c := &r.world.Components
	tr, _ := c.Transform.GetComponent(e)
	sc, _ := c.Scene.GetComponent(e)
	if sc.Scene == nil {
		return
	}

	x, y := ctx.View.Project(tr.Translation)
	if y >= ctx.FieldHeight {
		return
	}

	glyph := sc.Scene.Rune()
	style := tcell.StyleDefault.Foreground(render.SceneColor(sc.Scene)).Background(render.RgbBackground)
	if heading {
		glyph = sc.Scene.HeadingRune(render.Octant(tr.Forward()))
		style = style.Bold(true)
		if c.SpaceshipShield.HasEntity(e) {
			style = style.Background(render.RgbShield)
		}
	}
	buf.Set(x, y, glyph, style)
}

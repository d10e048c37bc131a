package renderers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/void-drift/engine"
	"github.com/lixenwraith/void-drift/render"
	"github.com/lixenwraith/void-drift/status"
)

// StatusBarRenderer draws the HUD line at the bottom from the status registry
type StatusBarRenderer struct {
	world *engine.World
	reg   *status.Registry
}

// NewStatusBarRenderer creates a status bar renderer
func NewStatusBarRenderer(world *engine.World) *StatusBarRenderer {
	return &StatusBarRenderer{
		world: world,
		reg:   world.Resources.Status,
	}
}

// Render implements SystemRenderer
func (s *StatusBarRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	y := ctx.Height - 1
	if y < 0 {
		return
	}
	base := render.StyleStatusBar
	buf.FillRow(y, base)

	x := buf.SetString(1, y, s.reg.Labels.Get(status.KeyRunState).Load(), base.Bold(true))
	x = s.sep(buf, x, y)

	if s.reg.Bools.Get(status.KeyShipAlive).Load() {
		hp := s.reg.Floats.Get(status.KeyShipHealth).Get()
		maxHP := s.world.Resources.Config.Tuning.Spaceship.Health
		hpStyle := base.Foreground(render.RgbHealthOK)
		if hp < maxHP*0.3 {
			hpStyle = base.Foreground(render.RgbHealthLow)
		}
		x = buf.SetString(x, y, fmt.Sprintf("HP %.0f", hp), hpStyle)
		if s.reg.Bools.Get(status.KeyShipShield).Load() {
			x = buf.SetString(x+1, y, "SHIELD", base.Foreground(render.RgbShield).Bold(true))
		}
	} else {
		x = buf.SetString(x, y, "no ship", base.Foreground(render.RgbHealthLow))
	}
	x = s.sep(buf, x, y)

	x = buf.SetString(x, y, fmt.Sprintf("rocks %d  shots %d  score %d",
		s.reg.Ints.Get(status.KeyAsteroids).Load(),
		s.reg.Ints.Get(status.KeyMissiles).Load(),
		s.reg.Ints.Get(status.KeyAsteroidsShot).Load(),
	), base)
	x = s.sep(buf, x, y)

	if s.reg.Bools.Get(status.KeyAudioMuted).Load() {
		x = buf.SetString(x, y, "muted", base.Foreground(tcell.ColorGray))
		x = s.sep(buf, x, y)
	}
	if n := s.reg.Ints.Get(status.KeyObservers).Load(); n > 0 {
		x = buf.SetString(x, y, fmt.Sprintf("obs %d", n), base)
		x = s.sep(buf, x, y)
	}

	tick := fmt.Sprintf("t %d", ctx.Tick)
	if right := ctx.Width - len(tick) - 1; right > x {
		buf.SetString(right, y, tick, base.Dim(true))
	}
}

func (s *StatusBarRenderer) sep(buf *render.RenderBuffer, x, y int) int {
	return buf.SetString(x, y, " │ ", render.StyleStatusBar.Dim(true))
}

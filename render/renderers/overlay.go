package renderers

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/void-drift/engine"
	"github.com/lixenwraith/void-drift/render"
)

// OverlayRenderer draws the centered Paused / GAME OVER box
type OverlayRenderer struct{}

// NewOverlayRenderer creates a new overlay renderer
func NewOverlayRenderer() *OverlayRenderer {
	return &OverlayRenderer{}
}

// IsVisible returns true outside of play
func (r *OverlayRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.State != engine.StateInPlay
}

// Render implements SystemRenderer
func (r *OverlayRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	var title, hint string
	titleStyle := tcell.StyleDefault.Background(render.RgbOverlayBg).Bold(true)
	switch ctx.State {
	case engine.StatePaused:
		title, hint = "PAUSED", "Esc resume   Ctrl+Q quit"
		titleStyle = titleStyle.Foreground(render.RgbOverlay)
	case engine.StateGameOver:
		title, hint = "GAME OVER", "Space restart   Ctrl+Q quit"
		titleStyle = titleStyle.Foreground(render.RgbGameOver)
	default:
		return
	}

	width := utf8.RuneCountInString(hint) + 4
	height := 5
	left := (ctx.Width - width) / 2
	top := (ctx.FieldHeight - height) / 2
	if left < 0 {
		left = 0
	}
	if top < 0 {
		top = 0
	}

	frame := tcell.StyleDefault.Foreground(render.RgbStatusBar).Background(render.RgbOverlayBg)
	for y := top; y < top+height; y++ {
		for x := left; x < left+width; x++ {
			ch := ' '
			switch {
			case (y == top || y == top+height-1) && (x == left || x == left+width-1):
				ch = '+'
			case y == top || y == top+height-1:
				ch = '-'
			case x == left || x == left+width-1:
				ch = '|'
			}
			buf.Set(x, y, ch, frame)
		}
	}

	center := func(s string) int {
		return left + (width-utf8.RuneCountInString(s))/2
	}
	buf.SetString(center(title), top+1, title, titleStyle)
	buf.SetString(center(hint), top+3, hint, frame)
}

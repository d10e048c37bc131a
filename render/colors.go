package render

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/void-drift/asset"
)

var (
	RgbBackground = tcell.NewRGBColor(10, 12, 24)    // Deep space
	RgbBoundary   = tcell.NewRGBColor(40, 44, 70)    // Dim indigo
	RgbStatusBar  = tcell.NewRGBColor(220, 220, 220) // Light gray
	RgbStatusBg   = tcell.NewRGBColor(30, 32, 48)
	RgbHealthOK   = tcell.NewRGBColor(80, 220, 120)
	RgbHealthLow  = tcell.NewRGBColor(255, 80, 80)
	RgbShield     = tcell.NewRGBColor(100, 180, 255)
	RgbOverlay    = tcell.NewRGBColor(255, 220, 0)
	RgbOverlayBg  = tcell.NewRGBColor(20, 20, 36)
	RgbGameOver   = tcell.NewRGBColor(255, 90, 90)
)

var (
	StyleBackground = tcell.StyleDefault.Background(RgbBackground)
	StyleStatusBar  = tcell.StyleDefault.Foreground(RgbStatusBar).Background(RgbStatusBg)
)

var (
	sceneColorMu sync.Mutex
	sceneColors  = make(map[string]tcell.Color)
)

// SceneColor resolves a scene color name or #rrggbb, white when unknown
func SceneColor(scene *asset.Scene) tcell.Color {
	if scene == nil {
		return tcell.ColorWhite
	}
	sceneColorMu.Lock()
	defer sceneColorMu.Unlock()

	if c, ok := sceneColors[scene.Color]; ok {
		return c
	}
	c := tcell.GetColor(scene.Color)
	if c == tcell.ColorDefault {
		c = tcell.ColorWhite
	}
	sceneColors[scene.Color] = c
	return c
}

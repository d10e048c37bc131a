package engine

import (
	"testing/fstest"

	"github.com/lixenwraith/void-drift/asset"
	"github.com/lixenwraith/void-drift/config"
)

// TestScenes is a minimal scene set for tests
func TestScenes() fstest.MapFS {
	return fstest.MapFS{
		"spaceship.yaml": {Data: []byte("glyph: \"A\"\ncolor: \"#00ffff\"\n")},
		"asteroid.yaml":  {Data: []byte("glyph: \"@\"\ncolor: gray\n")},
		"missile.yaml":   {Data: []byte("glyph: \"*\"\ncolor: yellow\n")},
	}
}

// NewTestWorld creates a world with every resource attached
// Uses default tuning, TestScenes and a fixed seed; the run state is created but not started
func NewTestWorld() *World {
	w := NewWorld()

	registry, err := asset.Load(TestScenes(), asset.Required...)
	if err != nil {
		panic(err)
	}

	w.Resources.Config = &ConfigResource{Tuning: config.Default()}
	w.Resources.Input = &InputResource{}
	w.Resources.Asset = &AssetResource{Registry: registry}
	w.Resources.Rand = NewRandResource(1)
	w.Resources.State = NewRunState(w)
	return w
}

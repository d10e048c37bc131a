package assets

import (
	"testing"

	"github.com/lixenwraith/void-drift/asset"
)

func TestEmbeddedScenesLoad(t *testing.T) {
	r, err := asset.Load(FS, asset.Required...)
	if err != nil {
		t.Fatalf("embedded scenes: %v", err)
	}
	if r.MustScene(asset.Spaceship).HeadingRune(0) != '↑' {
		t.Error("spaceship headings not loaded")
	}
}

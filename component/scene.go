package component

import "github.com/lixenwraith/void-drift/asset"

// SceneComponent binds an entity to its visual scene from the asset registry
type SceneComponent struct {
	Scene *asset.Scene
}

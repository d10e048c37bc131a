package asset

import (
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// Scene names required by the simulation
const (
	Spaceship = "spaceship"
	Asteroid  = "asteroid"
	Missile   = "missile"
)

// Required lists the scenes the game cannot start without
var Required = []string{Spaceship, Asteroid, Missile}

// ErrAssetMissing is returned when a scene file is absent or unreadable
var ErrAssetMissing = errors.New("asset missing")

// Registry maps scene names to loaded scenes
// Read-only after Load
type Registry struct {
	scenes map[string]*Scene
}

// Load reads <name>.yaml from fsys for every name
// Fails on the first missing or malformed scene
func Load(fsys fs.FS, names ...string) (*Registry, error) {
	r := &Registry{scenes: make(map[string]*Scene, len(names))}
	for _, name := range names {
		s, err := loadScene(fsys, name)
		if err != nil {
			return nil, err
		}
		r.scenes[name] = s
	}
	return r, nil
}

func loadScene(fsys fs.FS, name string) (*Scene, error) {
	path := name + ".yaml"
	raw, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrAssetMissing, path, err)
	}

	var s Scene
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrAssetMissing, path, err)
	}
	if err := s.validate(name); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrAssetMissing, path, err)
	}
	return &s, nil
}

// Scene returns a loaded scene
func (r *Registry) Scene(name string) (*Scene, bool) {
	s, ok := r.scenes[name]
	return s, ok
}

// MustScene returns a loaded scene, panicking if it was never loaded
// Only valid for names passed to Load
func (r *Registry) MustScene(name string) *Scene {
	s, ok := r.scenes[name]
	if !ok {
		panic(fmt.Sprintf("scene %q not loaded", name))
	}
	return s
}

// Len returns the number of loaded scenes
func (r *Registry) Len() int {
	return len(r.scenes)
}

// Package assets carries the default scene files compiled into the binary
package assets

import "embed"

// FS holds spaceship.yaml, asteroid.yaml and missile.yaml
//
//go:embed *.yaml
var FS embed.FS

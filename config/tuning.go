package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/void-drift/parameter"
)

//go:embed tuning.schema.json
var schemaText string

// ErrInvalidTuning wraps every validation failure
var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning is the full set of gameplay values, loaded from tuning.yaml over Default()
type Tuning struct {
	Frame     Frame     `yaml:"frame" json:"frame"`
	Spaceship Spaceship `yaml:"spaceship" json:"spaceship"`
	Missile   Missile   `yaml:"missile" json:"missile"`
	Asteroid  Asteroid  `yaml:"asteroid" json:"asteroid"`
	Spawner   Spawner   `yaml:"spawner" json:"spawner"`
	Despawn   Despawn   `yaml:"despawn" json:"despawn"`
	Input     Input     `yaml:"input" json:"input"`
	Audio     Audio     `yaml:"audio" json:"audio"`
	Observer  Observer  `yaml:"observer" json:"observer"`
}

type Frame struct {
	Rate       int `yaml:"rate" json:"rate"`
	MaxDeltaMs int `yaml:"max_delta_ms" json:"max_delta_ms"`
}

type Spaceship struct {
	Start          [3]float64 `yaml:"start" json:"start"`
	Speed          float64    `yaml:"speed" json:"speed"`
	RotationSpeed  float64    `yaml:"rotation_speed" json:"rotation_speed"`
	RollSpeed      float64    `yaml:"roll_speed" json:"roll_speed"`
	ColliderRadius float64    `yaml:"collider_radius" json:"collider_radius"`
	Health         float64    `yaml:"health" json:"health"`
	Damage         float64    `yaml:"damage" json:"damage"`
}

type Missile struct {
	Speed          float64 `yaml:"speed" json:"speed"`
	SpawnOffset    float64 `yaml:"spawn_offset" json:"spawn_offset"`
	ColliderRadius float64 `yaml:"collider_radius" json:"collider_radius"`
	Health         float64 `yaml:"health" json:"health"`
	Damage         float64 `yaml:"damage" json:"damage"`
}

type Asteroid struct {
	ColliderRadius float64 `yaml:"collider_radius" json:"collider_radius"`
	Health         float64 `yaml:"health" json:"health"`
	Damage         float64 `yaml:"damage" json:"damage"`
}

type Spawner struct {
	IntervalSeconds float64 `yaml:"interval_seconds" json:"interval_seconds"`
	Radius          float64 `yaml:"radius" json:"radius"`
	SpeedMin        float64 `yaml:"speed_min" json:"speed_min"`
	SpeedMax        float64 `yaml:"speed_max" json:"speed_max"`
}

type Despawn struct {
	Distance float64 `yaml:"distance" json:"distance"`
}

type Input struct {
	HoldWindowMs   int `yaml:"hold_window_ms" json:"hold_window_ms"`
	RepeatWindowMs int `yaml:"repeat_window_ms" json:"repeat_window_ms"`
}

type Audio struct {
	Enabled           bool    `yaml:"enabled" json:"enabled"`
	Volume            float64 `yaml:"volume" json:"volume"`
	MissileCooldownMs int     `yaml:"missile_cooldown_ms" json:"missile_cooldown_ms"`
}

type Observer struct {
	Addr       string `yaml:"addr" json:"addr"`
	SendBuffer int    `yaml:"send_buffer" json:"send_buffer"`
}

// Default returns the built-in tuning
func Default() Tuning {
	return Tuning{
		Frame: Frame{
			Rate:       parameter.FrameRate,
			MaxDeltaMs: int(parameter.FrameMaxDelta / time.Millisecond),
		},
		Spaceship: Spaceship{
			Start:          [3]float64{parameter.SpaceshipStartX, parameter.SpaceshipStartY, parameter.SpaceshipStartZ},
			Speed:          parameter.SpaceshipSpeed,
			RotationSpeed:  parameter.SpaceshipRotationSpeed,
			RollSpeed:      parameter.SpaceshipRollSpeed,
			ColliderRadius: parameter.SpaceshipColliderRadius,
			Health:         parameter.SpaceshipHealth,
			Damage:         parameter.SpaceshipDamage,
		},
		Missile: Missile{
			Speed:          parameter.MissileSpeed,
			SpawnOffset:    parameter.MissileForwardSpawnOffset,
			ColliderRadius: parameter.MissileColliderRadius,
			Health:         parameter.MissileHealth,
			Damage:         parameter.MissileDamage,
		},
		Asteroid: Asteroid{
			ColliderRadius: parameter.AsteroidColliderRadius,
			Health:         parameter.AsteroidHealth,
			Damage:         parameter.AsteroidDamage,
		},
		Spawner: Spawner{
			IntervalSeconds: parameter.SpawnIntervalSeconds,
			Radius:          parameter.SpawnRadius,
			SpeedMin:        parameter.AsteroidSpeedMin,
			SpeedMax:        parameter.AsteroidSpeedMax,
		},
		Despawn: Despawn{Distance: parameter.DespawnDistance},
		Input: Input{
			HoldWindowMs:   int(parameter.KeyHoldWindow / time.Millisecond),
			RepeatWindowMs: int(parameter.KeyRepeatWindow / time.Millisecond),
		},
		Audio: Audio{
			Enabled:           true,
			Volume:            parameter.AudioMasterVolume,
			MissileCooldownMs: int(parameter.AudioMissileCooldown / time.Millisecond),
		},
		Observer: Observer{SendBuffer: parameter.ObserverSendBuffer},
	}
}

// Load reads a tuning file and overlays it on Default()
// Unknown keys are rejected; the merged result must pass Validate
func Load(path string) (Tuning, error) {
	f, err := os.Open(path)
	if err != nil {
		return Tuning{}, err
	}
	defer f.Close()

	t, err := Decode(f)
	if err != nil {
		return Tuning{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Decode parses a tuning document from r and overlays it on Default()
func Decode(r io.Reader) (Tuning, error) {
	t := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return Tuning{}, fmt.Errorf("%w: %v", ErrInvalidTuning, err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = jsonschema.CompileString("tuning.schema.json", schemaText)
	})
	return schema, schemaErr
}

// Validate checks t against the embedded schema and the cross-field rules the schema cannot express
func (t Tuning) Validate() error {
	s, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("tuning schema: %w", err)
	}

	raw, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTuning, err)
	}
	var doc any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTuning, err)
	}
	if err := s.Validate(doc); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTuning, flatten(err))
	}

	if t.Spawner.SpeedMin > t.Spawner.SpeedMax {
		return fmt.Errorf("%w: spawner.speed_min %.2f > speed_max %.2f", ErrInvalidTuning, t.Spawner.SpeedMin, t.Spawner.SpeedMax)
	}
	if t.Input.RepeatWindowMs > t.Input.HoldWindowMs {
		return fmt.Errorf("%w: input.repeat_window_ms %d > hold_window_ms %d", ErrInvalidTuning, t.Input.RepeatWindowMs, t.Input.HoldWindowMs)
	}
	if t.Spawner.Radius >= t.Despawn.Distance {
		return fmt.Errorf("%w: spawner.radius %.2f must be inside despawn.distance %.2f", ErrInvalidTuning, t.Spawner.Radius, t.Despawn.Distance)
	}
	return nil
}

// flatten collapses a schema error tree to one line per leaf
func flatten(err error) string {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err.Error()
	}
	var leaves []string
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			loc := e.InstanceLocation
			if loc == "" {
				loc = "/"
			}
			leaves = append(leaves, loc+": "+e.Message)
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(ve)
	return strings.Join(leaves, "; ")
}

// MaxDelta is the tick clamp
func (f Frame) MaxDelta() time.Duration {
	return time.Duration(f.MaxDeltaMs) * time.Millisecond
}

// Interval is the time between ticks
func (f Frame) Interval() time.Duration {
	return time.Second / time.Duration(f.Rate)
}

// StartPosition is the spawn translation
func (s Spaceship) StartPosition() mgl64.Vec3 {
	return mgl64.Vec3{s.Start[0], s.Start[1], s.Start[2]}
}

// HoldWindow is how long a key stays down after its first press
func (i Input) HoldWindow() time.Duration {
	return time.Duration(i.HoldWindowMs) * time.Millisecond
}

// RepeatWindow is how long a key stays down after an auto-repeat
func (i Input) RepeatWindow() time.Duration {
	return time.Duration(i.RepeatWindowMs) * time.Millisecond
}

// MissileCooldown is the minimum gap between fire cues
func (a Audio) MissileCooldown() time.Duration {
	return time.Duration(a.MissileCooldownMs) * time.Millisecond
}

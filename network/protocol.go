package network

import (
	"fmt"
	"sort"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/void-drift/core"
	"github.com/lixenwraith/void-drift/engine"
)

// ProtocolVersion is bumped on any incompatible Frame change
const ProtocolVersion = 1

// Frame is one simulation snapshot sent to observers as a binary websocket message
type Frame struct {
	Version  uint8         `msgpack:"v"`
	Tick     int64         `msgpack:"tick"`
	State    string        `msgpack:"state"`
	Entities []EntityFrame `msgpack:"entities"`
}

// EntityFrame is the observable part of one entity
type EntityFrame struct {
	ID       uint64     `msgpack:"id"`
	Kind     string     `msgpack:"kind"`
	Scene    string     `msgpack:"scene,omitempty"`
	Position [3]float64 `msgpack:"pos"`
	Forward  [3]float64 `msgpack:"fwd"`
	Radius   float64    `msgpack:"r,omitempty"`
	Health   float64    `msgpack:"hp,omitempty"`
	Shield   bool       `msgpack:"shield,omitempty"`
}

// Encode serializes the frame
func (f *Frame) Encode() ([]byte, error) {
	return msgpack.Marshal(f)
}

// DecodeFrame parses a frame, rejecting unknown protocol versions
func DecodeFrame(data []byte) (*Frame, error) {
	var f Frame
	if err := msgpack.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if f.Version != ProtocolVersion {
		return nil, fmt.Errorf("observer frame version %d, want %d", f.Version, ProtocolVersion)
	}
	return &f, nil
}

// BuildFrame snapshots every entity with a transform, ordered by id
// Must run on the game loop goroutine
func BuildFrame(w *engine.World) *Frame {
	c := &w.Components

	f := &Frame{Version: ProtocolVersion}
	if w.Resources.Time != nil {
		f.Tick = w.Resources.Time.FrameNumber
	}
	if w.Resources.State != nil {
		f.State = w.Resources.State.Current().String()
	}

	entities := c.Transform.GetAllEntities()
	sort.Slice(entities, func(i, j int) bool { return entities[i] < entities[j] })

	f.Entities = make([]EntityFrame, 0, len(entities))
	for _, e := range entities {
		f.Entities = append(f.Entities, entityFrame(w, e))
	}
	return f
}

func entityFrame(w *engine.World, e core.Entity) EntityFrame {
	c := &w.Components
	ef := EntityFrame{
		ID:   uint64(e),
		Kind: w.KindOf(e).String(),
	}

	if t, ok := c.Transform.GetComponent(e); ok {
		ef.Position = t.Translation
		ef.Forward = t.Forward()
	}
	if col, ok := c.Collider.GetComponent(e); ok {
		ef.Radius = col.Radius
	}
	if h, ok := c.Health.GetComponent(e); ok {
		ef.Health = h.Value
	}
	if s, ok := c.Scene.GetComponent(e); ok && s.Scene != nil {
		ef.Scene = s.Scene.Name
	}
	ef.Shield = c.SpaceshipShield.HasEntity(e)
	return ef
}

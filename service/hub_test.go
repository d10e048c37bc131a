package service

import (
	"errors"
	"slices"
	"testing"

	"github.com/lixenwraith/void-drift/engine"
)

type fakeService struct {
	name     string
	deps     []string
	initErr  error
	startErr error
	trace    *[]string
	args     []any
}

func (f *fakeService) Name() string           { return f.name }
func (f *fakeService) Dependencies() []string { return f.deps }
func (f *fakeService) Init(args ...any) error {
	f.args = args
	*f.trace = append(*f.trace, "init:"+f.name)
	return f.initErr
}
func (f *fakeService) Start() error {
	*f.trace = append(*f.trace, "start:"+f.name)
	return f.startErr
}
func (f *fakeService) Stop() error {
	*f.trace = append(*f.trace, "stop:"+f.name)
	return nil
}

func TestHubLifecycleOrder(t *testing.T) {
	var trace []string
	h := NewHub()
	observer := &fakeService{name: "observer", deps: []string{"audio"}, trace: &trace}
	audio := &fakeService{name: "audio", trace: &trace}
	if err := h.Register(observer, "addr"); err != nil {
		t.Fatal(err)
	}
	if err := h.Register(audio, true); err != nil {
		t.Fatal(err)
	}
	if err := h.Register(&fakeService{name: "audio", trace: &trace}); err == nil {
		t.Error("duplicate name accepted")
	}

	if err := h.InitAll(); err != nil {
		t.Fatal(err)
	}
	if err := h.StartAll(); err != nil {
		t.Fatal(err)
	}
	h.StopAll()

	want := []string{"init:audio", "init:observer", "start:audio", "start:observer", "stop:observer", "stop:audio"}
	if !slices.Equal(trace, want) {
		t.Errorf("trace = %v, want %v", trace, want)
	}
	if len(observer.args) != 1 || observer.args[0] != "addr" {
		t.Errorf("observer args = %v", observer.args)
	}
	if got := MustGet[*fakeService](h, "audio"); got != audio {
		t.Error("MustGet returned another instance")
	}
}

func TestHubStartRollback(t *testing.T) {
	var trace []string
	h := NewHub()
	h.Register(&fakeService{name: "a", trace: &trace})
	h.Register(&fakeService{name: "b", deps: []string{"a"}, startErr: errors.New("boom"), trace: &trace})

	if err := h.InitAll(); err != nil {
		t.Fatal(err)
	}
	if err := h.StartAll(); err == nil {
		t.Fatal("start error swallowed")
	}
	want := []string{"init:a", "init:b", "start:a", "start:b", "stop:a"}
	if !slices.Equal(trace, want) {
		t.Errorf("trace = %v, want %v", trace, want)
	}
}

func TestHubDependencyErrors(t *testing.T) {
	var trace []string
	h := NewHub()
	h.Register(&fakeService{name: "a", deps: []string{"missing"}, trace: &trace})
	if err := h.InitAll(); err == nil {
		t.Error("unregistered dependency accepted")
	}

	h = NewHub()
	h.Register(&fakeService{name: "a", deps: []string{"b"}, trace: &trace})
	h.Register(&fakeService{name: "b", deps: []string{"a"}, trace: &trace})
	if err := h.InitAll(); err == nil {
		t.Error("cycle accepted")
	}
}

type eventService struct {
	fakeService
	attached bool
}

func (e *eventService) Attach(w *engine.World, s *engine.Schedule) { e.attached = true }
func (e *eventService) EventTypes() []engine.EventType {
	return []engine.EventType{engine.EventMissileFired}
}
func (e *eventService) HandleEvent(ev engine.GameEvent) {}

func TestHubAttach(t *testing.T) {
	var trace []string
	h := NewHub()
	svc := &eventService{fakeService: fakeService{name: "audio", trace: &trace}}
	h.Register(svc)

	w := engine.NewTestWorld()
	sched := engine.NewSchedule(w)
	h.AttachAll(w, sched)

	if !svc.attached {
		t.Error("Attach not called")
	}
	if !sched.Router().HasHandlers(engine.EventMissileFired) {
		t.Error("event handler not registered")
	}
}

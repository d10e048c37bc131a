package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/void-drift/asset"
	"github.com/lixenwraith/void-drift/assets"
	"github.com/lixenwraith/void-drift/audio"
	"github.com/lixenwraith/void-drift/config"
	"github.com/lixenwraith/void-drift/core"
	"github.com/lixenwraith/void-drift/engine"
	"github.com/lixenwraith/void-drift/input"
	"github.com/lixenwraith/void-drift/network"
	"github.com/lixenwraith/void-drift/render"
	"github.com/lixenwraith/void-drift/render/renderers"
	"github.com/lixenwraith/void-drift/service"
	"github.com/lixenwraith/void-drift/system"
)

var (
	configFlag  = flag.String("config", "", "tuning YAML file (default: built-in tuning)")
	assetsFlag  = flag.String("assets", "", "scene directory (default: embedded scenes)")
	seedFlag    = flag.Int64("seed", 0, "random seed, 0 derives one from the clock")
	debugFlag   = flag.Bool("debug", false, "write logs to "+logDir+"/"+logFileName)
	observeFlag = flag.String("observe", "", "observer websocket address, overrides tuning (e.g. :8787)")
	muteFlag    = flag.Bool("mute", false, "start with audio muted")
	fpsFlag     = flag.Int("fps", 0, "tick rate override, 0 keeps the tuning value")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()
	os.Exit(run())
}

func run() int {
	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	tuning := config.Default()
	if *configFlag != "" {
		t, err := config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			return 1
		}
		tuning = t
	}
	if *fpsFlag != 0 {
		tuning.Frame.Rate = *fpsFlag
		if err := tuning.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "config: -fps: %v\n", err)
			return 1
		}
	}

	var sceneFS fs.FS = assets.FS
	if *assetsFlag != "" {
		sceneFS = os.DirFS(*assetsFlag)
	}
	registry, err := asset.Load(sceneFS, asset.Required...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "assets: %v\n", err)
		return 1
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("void-drift: seed %d", seed)

	game, err := newGame(tuning, registry, seed, engine.NewMonotonicTimeProvider())
	if err != nil {
		fmt.Fprintf(os.Stderr, "init: %v\n", err)
		return 1
	}

	hub, audioSvc, err := newHub(tuning)
	if err != nil {
		fmt.Fprintf(os.Stderr, "services: %v\n", err)
		return 1
	}
	hub.AttachAll(game.World, game.Schedule)
	if err := hub.StartAll(); err != nil {
		fmt.Fprintf(os.Stderr, "services: %v\n", err)
		return 1
	}
	defer hub.StopAll()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "terminal: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "terminal: %v\n", err)
		return 1
	}
	core.SetTerminalRestore(screen.Fini)
	defer screen.Fini()
	screen.HideCursor()

	orchestrator := render.NewRenderOrchestrator(screen)
	renderers.RegisterAll(orchestrator, game.World)

	keyboard := input.NewKeyboard(input.DefaultKeyTable(), tuning.Input.HoldWindow(), tuning.Input.RepeatWindow())
	return loop(screen, game, keyboard, orchestrator, hub, audioSvc, tuning.Frame.Interval())
}

// newGame builds the world, its resources and the registered schedule
func newGame(tuning config.Tuning, registry *asset.Registry, seed int64, provider engine.TimeProvider) (*engine.Game, error) {
	world := engine.NewWorld()
	world.Resources.Config = &engine.ConfigResource{Tuning: tuning}
	world.Resources.Input = &engine.InputResource{}
	world.Resources.Asset = &engine.AssetResource{Registry: registry}
	world.Resources.Rand = engine.NewRandResource(seed)
	world.Resources.State = engine.NewRunState(world)

	sched := engine.NewSchedule(world)
	clock := engine.NewPausableClock(provider)
	game := engine.NewGame(world, sched, clock, tuning.Frame.MaxDelta())

	if err := system.Register(world, sched); err != nil {
		return nil, err
	}
	return game, nil
}

// newHub registers and initializes the audio and observer services
func newHub(tuning config.Tuning) (*service.Hub, *audio.AudioService, error) {
	audioCfg := audio.ConfigFromTuning(tuning.Audio)
	if *muteFlag {
		audioCfg.Enabled = false
	}
	observerCfg := network.ConfigFromTuning(tuning.Observer)
	if *observeFlag != "" {
		observerCfg.Address = *observeFlag
	}

	hub := service.NewHub()
	audioSvc := audio.NewService()
	if err := hub.Register(audioSvc, audioCfg); err != nil {
		return nil, nil, err
	}
	if err := hub.Register(network.NewService(), observerCfg); err != nil {
		return nil, nil, err
	}
	if err := hub.InitAll(); err != nil {
		return nil, nil, err
	}
	return hub, audioSvc, nil
}

// loop owns the world: input, ticks, rendering and frame publishing all happen here
func loop(screen tcell.Screen, game *engine.Game, keyboard *input.Keyboard, orchestrator *render.RenderOrchestrator,
	hub *service.Hub, audioSvc *audio.AudioService, interval time.Duration) int {

	events := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	})

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return 0
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch keyboard.HandleEvent(ev) {
				case input.IntentQuit:
					return 0
				case input.IntentToggleMute:
					audioSvc.ToggleMute()
				}
			case *tcell.EventResize:
				screen.Sync()
				orchestrator.Resize()
			}

		case <-ticker.C:
			game.Step(keyboard.Snapshot(time.Now()))
			orchestrator.RenderFrame(game.World)
			hub.PublishFrame(game.World)
		}
	}
}

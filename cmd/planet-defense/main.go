package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/planet-defense/audio"
	"github.com/lixenwraith/planet-defense/config"
	"github.com/lixenwraith/planet-defense/engine"
	"github.com/lixenwraith/planet-defense/input"
	"github.com/lixenwraith/planet-defense/parameter"
	"github.com/lixenwraith/planet-defense/render"
	"github.com/lixenwraith/planet-defense/scene"
	"github.com/lixenwraith/planet-defense/system"
)

var (
	configPath = flag.String("config", "", "Config file (YAML, JSON or TOML)")
	scenePath  = flag.String("scene", "", "Scene file (YAML or JSON), overrides config scene; built-in scene when both are empty")
	muteFlag   = flag.Bool("mute", false, "Disable audio regardless of config")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "planet-defense: %v\n", err)
		os.Exit(1)
	}
}

// scenePathFor prefers the flag over the configured path
func scenePathFor(flagPath, configured string) string {
	if flagPath != "" {
		return flagPath
	}
	return configured
}

func loadScene(path string) (*scene.Scene, error) {
	if path == "" {
		return scene.Default()
	}
	return scene.Load(path)
}

func run() error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}

	logger, logFile, err := setupLogging(cfg.Log)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	keys, err := input.LoadKeyConfig(input.DefaultKeyTable(), cfg.Keys)
	if err != nil {
		return fmt.Errorf("key bindings: %w", err)
	}

	path := scenePathFor(*scenePath, cfg.Scene)
	sc, err := loadScene(path)
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("Scene load failed")
		return err
	}

	world := engine.NewWorld(cfg, logger)
	system.RegisterAll(world)
	if err := world.Load(sc); err != nil {
		logger.Error().Err(err).Msg("Scene population failed")
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			logger.Error().Interface("panic", r).Msg("Crashed")
			fmt.Fprintf(os.Stderr, "\nPLANET-DEFENSE CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	sound := audio.NewService(cfg.Audio, logger)
	defer sound.Close()

	hud := render.NewHUD()
	renderer := render.NewTerminalRenderer(screen, hud)

	return loop(world, screen, renderer, hud, sound, keys, logger)
}

// loop drives the fixed-interval frame cycle until quit
func loop(world *engine.World, screen tcell.Screen, renderer *render.TerminalRenderer, hud *render.HUD,
	sound *audio.Service, keys *input.KeyTable, logger zerolog.Logger) error {

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, parameter.InputBufferSize)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	for range ticker.C {
	drain:
		for {
			select {
			case ev := <-events:
				switch ev := ev.(type) {
				case *tcell.EventKey:
					quit, err := input.Apply(world, keys.Lookup(ev))
					if err != nil {
						logger.Error().Err(err).Msg("Action failed")
						return err
					}
					if quit {
						logger.Info().Int("score", world.State.Score).Msg("Quit")
						return nil
					}
				case *tcell.EventResize:
					renderer.Resize()
					screen.Sync()
				}
			default:
				break drain
			}
		}

		world.Step()

		pending := world.Events.Consume()
		hud.ApplyAll(pending)
		sound.Handle(pending)

		frame := render.BuildFrame(world, renderer.Aspect())
		if err := renderer.Draw(frame, world.Registry.Meshes); err != nil {
			logger.Error().Err(err).Msg("Draw failed")
			return err
		}
	}
	return nil
}

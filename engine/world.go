package engine

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/planet-defense/config"
	"github.com/lixenwraith/planet-defense/event"
	"github.com/lixenwraith/planet-defense/scene"
	"github.com/lixenwraith/planet-defense/vmath"
)

// ErrNoScene is returned by Reset before any scene was loaded
var ErrNoScene = errors.New("no scene loaded")

// World owns the registry, game state, camera and event queue and drives the frame step
type World struct {
	Config   *config.Config
	Registry *Registry
	State    *GameState
	Camera   *Camera
	Events   *event.EventQueue
	Rand     *vmath.FastRand
	Log      zerolog.Logger

	scene   *scene.Scene
	systems []System
}

// NewWorld creates an empty world; call Load before stepping
func NewWorld(cfg *config.Config, log zerolog.Logger) *World {
	w := &World{
		Config:   cfg,
		Registry: NewRegistry(),
		State:    &GameState{},
		Events:   event.NewEventQueue(),
		Rand:     vmath.NewFastRand(cfg.Seed),
		Log:      log,
		systems:  make([]System, 0),
	}
	w.Camera = w.newCamera()
	return w
}

func (w *World) newCamera() *Camera {
	c := &w.Config.Camera
	return NewCamera(c.EyeVec(), c.CenterVec(), c.UpVec(), c.FOV, c.RotateStep)
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)

	// Sort by priority (bubble sort, small N)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns a copy of all registered systems
func (w *World) Systems() []System {
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Step advances the simulation by one frame
// Never blocks; systems run in priority order
func (w *World) Step() {
	w.State.Frame++
	for _, s := range w.systems {
		s.Update()
	}
}

// Load clears the world and populates it from a scene
func (w *World) Load(s *scene.Scene) error {
	w.scene = s
	return w.Reset()
}

// Reset clears every entity, mesh, pending event and state value, then repopulates
// from the last loaded scene
func (w *World) Reset() error {
	if w.scene == nil {
		return ErrNoScene
	}

	w.Registry.Clear()
	w.Events.Reset()
	w.State = &GameState{}
	w.Camera = w.newCamera()
	w.Rand.Seed(w.Config.Seed)

	for _, s := range w.systems {
		if r, ok := s.(Resettable); ok {
			r.Init()
		}
	}

	w.Emit(event.EventGameReset, nil)
	if err := w.populate(w.scene); err != nil {
		return err
	}

	w.PlaySound(event.SoundGameStart)
	w.Log.Info().
		Int("entities", w.Registry.Count()).
		Int("stations", len(w.State.Stations)).
		Float32("viewDelta", w.State.ViewDelta).
		Msg("World loaded")
	return nil
}

// Emit queues an event stamped with the current frame
func (w *World) Emit(t event.EventType, payload any) {
	w.Events.Push(event.GameEvent{Type: t, Payload: payload, Frame: w.State.Frame})
}

// PlaySound queues an audio cue
func (w *World) PlaySound(s event.SoundType) {
	w.Emit(event.EventSoundRequest, &event.SoundRequestPayload{SoundType: s})
}

package engine

import (
	"github.com/rs/zerolog"

	"github.com/lixenwraith/planet-defense/config"
	"github.com/lixenwraith/planet-defense/event"
	"github.com/lixenwraith/planet-defense/scene"
)

// NewTestWorld creates a world with default config and a silent logger, loaded with s
// Systems are not registered; callers add what they exercise
func NewTestWorld(s *scene.Scene) (*World, error) {
	return NewTestWorldWithConfig(config.Default(), s)
}

// NewTestWorldWithConfig is NewTestWorld with caller-supplied tunables
func NewTestWorldWithConfig(cfg *config.Config, s *scene.Scene) (*World, error) {
	w := NewWorld(cfg, zerolog.Nop())
	if err := w.Load(s); err != nil {
		return nil, err
	}
	return w, nil
}

func alpha(a float32) *float32 { return &a }

// NewTestScene builds a small scene: planet and shield at the origin, two stations
// on the +X and -X axes, a moon on +Z, and a highlight marker
func NewTestScene() *scene.Scene {
	return &scene.Scene{
		Ellipsoids: []scene.Ellipsoid{
			{Kind: "planet", A: 0.5, B: 0.5, C: 0.5},
			{Kind: "shield", A: 0.65, B: 0.65, C: 0.65, MaterialDef: scene.MaterialDef{Alpha: alpha(0.4)}},
			{Kind: "station", Label: "East", X: 1, A: 0.05, B: 0.05, C: 0.05},
			{Kind: "station", Label: "West", X: -1, A: 0.05, B: 0.05, C: 0.05},
			{Kind: "moon", Z: 2, A: 0.15, B: 0.15, C: 0.15},
			{Kind: "highlight", X: 1, A: 0.07, B: 0.07, C: 0.07, MaterialDef: scene.MaterialDef{Alpha: alpha(0.5)}},
		},
	}
}

// EventsOfType drains the queue and returns events matching t
func EventsOfType(w *World, t event.EventType) []event.GameEvent {
	var result []event.GameEvent
	for _, ev := range w.Events.Consume() {
		if ev.Type == t {
			result = append(result, ev)
		}
	}
	return result
}

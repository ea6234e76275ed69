package engine

import (
	"github.com/lixenwraith/planet-defense/component"
	"github.com/lixenwraith/planet-defense/core"
	"github.com/lixenwraith/planet-defense/scene"
)

// Phase is the coarse game lifecycle
type Phase int

const (
	// PhaseRunning accepts input and spawns asteroids
	PhaseRunning Phase = iota
	// PhaseApocalypse plays the end sequence; spawning, recharge and firing stop
	PhaseApocalypse
	// PhaseOver holds after the planet is gone until restart
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseApocalypse:
		return "apocalypse"
	case PhaseOver:
		return "over"
	}
	return "unknown"
}

// GameState is the single aggregate of mutable game-wide values
type GameState struct {
	Phase Phase
	Frame int64

	Score int

	PlanetHealth    float32
	PlanetMaxHealth float32

	ShieldLevel     int
	ShieldMaxLevel  int
	ShieldBaseAlpha float32

	// Stations is the ordered slot list, Selected indexes it
	Stations []component.StationSlot
	Selected int

	// Singleton entities, zero when absent
	Planet    core.Entity
	Shield    core.Entity
	Moon      core.Entity
	Highlight core.Entity

	SpawnCounter  int
	SpawnInterval int

	ApocalypseFrame int

	BlendMode int

	Bounds    scene.Bounds
	ViewDelta float32
}

// GameOver reports whether the end sequence has started
func (s *GameState) GameOver() bool {
	return s.Phase != PhaseRunning
}

// SelectedSlot returns the selected station slot
func (s *GameState) SelectedSlot() (*component.StationSlot, bool) {
	if len(s.Stations) == 0 {
		return nil, false
	}
	s.clampSelection()
	return &s.Stations[s.Selected], true
}

// SlotFor finds the slot of a station entity
func (s *GameState) SlotFor(e core.Entity) (int, bool) {
	for i := range s.Stations {
		if s.Stations[i].Entity == e {
			return i, true
		}
	}
	return -1, false
}

// RemoveStation splices a station out of the slot list and re-clamps the selection
// The selection stays on the same station when an earlier slot is removed
func (s *GameState) RemoveStation(e core.Entity) (component.StationSlot, bool) {
	idx, ok := s.SlotFor(e)
	if !ok {
		return component.StationSlot{}, false
	}
	slot := s.Stations[idx]
	s.Stations = append(s.Stations[:idx], s.Stations[idx+1:]...)

	if idx < s.Selected {
		s.Selected--
	}
	s.clampSelection()
	return slot, true
}

// CycleSelection moves the selection by delta, wrapping around
func (s *GameState) CycleSelection(delta int) bool {
	n := len(s.Stations)
	if n == 0 {
		s.Selected = 0
		return false
	}
	s.Selected = ((s.Selected+delta)%n + n) % n
	return true
}

func (s *GameState) clampSelection() {
	if s.Selected >= len(s.Stations) {
		s.Selected = len(s.Stations) - 1
	}
	if s.Selected < 0 {
		s.Selected = 0
	}
}

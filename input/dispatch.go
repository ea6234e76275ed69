package input

import (
	"github.com/lixenwraith/planet-defense/engine"
)

var rotations = map[Action]engine.RotateDirection{
	ActionRotateLeft:  engine.RotateLeft,
	ActionRotateRight: engine.RotateRight,
	ActionRotateUp:    engine.RotateUp,
	ActionRotateDown:  engine.RotateDown,
}

// Apply performs an action against the world
// Returns quit=true for ActionQuit; the only error source is a failed restart
func Apply(w *engine.World, a Action) (quit bool, err error) {
	if dir, ok := rotations[a]; ok {
		w.RotateView(dir)
		return false, nil
	}

	switch a {
	case ActionSelectNext:
		w.SelectStation(1)
	case ActionSelectPrev:
		w.SelectStation(-1)
	case ActionFire:
		w.Fire()
	case ActionMoveForward:
		w.MoveView(1)
	case ActionMoveBack:
		w.MoveView(-1)
	case ActionCycleBlend:
		w.CycleBlendMode()
	case ActionRestart:
		err = w.Restart()
	case ActionQuit:
		quit = true
	}
	return quit, err
}

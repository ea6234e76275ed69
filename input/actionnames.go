package input

import "strings"

// actionRegistry maps canonical action names to actions
// Used by the key binding loader to resolve config strings
var actionRegistry = map[string]Action{
	// Unbind sentinel
	"none": ActionNone,

	"select_next":  ActionSelectNext,
	"select_prev":  ActionSelectPrev,
	"fire":         ActionFire,
	"rotate_left":  ActionRotateLeft,
	"rotate_right": ActionRotateRight,
	"rotate_up":    ActionRotateUp,
	"rotate_down":  ActionRotateDown,
	"move_forward": ActionMoveForward,
	"move_back":    ActionMoveBack,
	"cycle_blend":  ActionCycleBlend,
	"restart":      ActionRestart,
	"quit":         ActionQuit,
}

var actionNames = func() map[Action]string {
	m := make(map[Action]string, len(actionRegistry))
	for name, a := range actionRegistry {
		m[a] = name
	}
	return m
}()

// ActionByName resolves a canonical action name, case-insensitive
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[strings.ToLower(strings.TrimSpace(name))]
	return a, ok
}

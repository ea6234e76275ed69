package input

// Action is a discrete player command
type Action uint8

const (
	ActionNone Action = iota

	// Station
	ActionSelectNext
	ActionSelectPrev
	ActionFire

	// View
	ActionRotateLeft
	ActionRotateRight
	ActionRotateUp
	ActionRotateDown
	ActionMoveForward
	ActionMoveBack

	// Display and session
	ActionCycleBlend
	ActionRestart
	ActionQuit
)

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

package engine

import (
	"github.com/lixenwraith/planet-defense/core"
	"github.com/lixenwraith/planet-defense/event"
	"github.com/lixenwraith/planet-defense/parameter"
)

// SelectStation cycles the selected station by delta (+1 next, -1 previous)
func (w *World) SelectStation(delta int) {
	if !w.State.CycleSelection(delta) {
		return
	}
	w.syncHighlight()
	w.emitSelection()
}

// Fire launches a shot from the selected station toward the aim point
// Returns false when the game is over, no station remains, or the station is recharging
func (w *World) Fire() (core.Entity, bool) {
	if w.State.GameOver() {
		return 0, false
	}
	slot, ok := w.State.SelectedSlot()
	if !ok || !slot.ReadyToFire {
		return 0, false
	}

	e, err := w.SpawnShot(slot.Position, w.Camera.AimPoint(w.Config.Camera.AimRange))
	if err != nil {
		w.Log.Error().Err(err).Str("station", slot.Label).Msg("Fire failed")
		return 0, false
	}

	slot.ReadyToFire = false
	slot.RechargeCounter = 0
	w.EmitRecharge(slot)
	w.PlaySound(event.SoundFire)
	return e, true
}

// RotateView turns the camera one step
func (w *World) RotateView(dir RotateDirection) {
	w.Camera.Rotate(dir)
}

// MoveView steps the eye along the view by the scene-scaled delta
func (w *World) MoveView(sign float32) {
	w.Camera.Move(sign * w.State.ViewDelta)
}

// CycleBlendMode advances the renderer blend mode
func (w *World) CycleBlendMode() {
	w.State.BlendMode = (w.State.BlendMode + 1) % parameter.BlendModeCount
}

// Restart reloads the current scene from scratch
func (w *World) Restart() error {
	w.Log.Info().Int("score", w.State.Score).Msg("Restart")
	return w.Reset()
}

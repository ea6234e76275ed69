package engine

import (
	"github.com/lixenwraith/planet-defense/event"
)

// BeginApocalypse ends play once planet health is gone
// Clears asteroids, stations, shield and highlight; the planet stays for the end sequence
func (w *World) BeginApocalypse() {
	if w.State.Phase != PhaseRunning {
		return
	}
	st := w.State
	st.Phase = PhaseApocalypse
	st.ApocalypseFrame = 0
	st.PlanetHealth = 0

	cleared := w.Registry.DestroyBatch(w.Registry.Asteroids.Entities())
	for _, e := range w.Registry.Stations.Entities() {
		w.Destroy(e)
	}
	w.Destroy(st.Shield)
	w.Destroy(st.Highlight)
	st.ShieldLevel = 0

	w.EmitPlanetHealth()
	w.EmitShieldLevel()
	w.Emit(event.EventGameOver, nil)
	w.PlaySound(event.SoundGameOver)
	w.Log.Info().
		Int("score", st.Score).
		Int("asteroidsCleared", cleared).
		Int64("frame", st.Frame).
		Msg("Game over")
}

// FinishApocalypse destroys the planet and signals the end of the game
func (w *World) FinishApocalypse() {
	if w.State.Phase != PhaseApocalypse {
		return
	}
	w.Destroy(w.State.Planet)
	w.State.Phase = PhaseOver
	w.Emit(event.EventGameEnded, nil)
	w.Log.Info().Int64("frame", w.State.Frame).Msg("Game ended")
}

package engine

import (
	"github.com/lixenwraith/planet-defense/component"
	"github.com/lixenwraith/planet-defense/event"
)

// emitFullStatus publishes every HUD value, used after a load
func (w *World) emitFullStatus() {
	st := w.State
	w.Emit(event.EventScoreChanged, &event.ScorePayload{Score: st.Score})
	w.EmitPlanetHealth()
	w.EmitShieldLevel()
	for i := range st.Stations {
		slot := &st.Stations[i]
		if b, ok := w.Registry.Get(slot.Entity); ok {
			w.EmitStationHealth(b)
		}
		w.EmitRecharge(slot)
	}
	w.emitSelection()
}

// EmitPlanetHealth publishes planet health
func (w *World) EmitPlanetHealth() {
	w.Emit(event.EventPlanetHealth, &event.PlanetHealthPayload{
		Health:    w.State.PlanetHealth,
		MaxHealth: w.State.PlanetMaxHealth,
	})
}

// EmitShieldLevel publishes shield strength
func (w *World) EmitShieldLevel() {
	w.Emit(event.EventShieldLevel, &event.ShieldPayload{
		Level:    w.State.ShieldLevel,
		MaxLevel: w.State.ShieldMaxLevel,
	})
}

// EmitStationHealth publishes one station's health
func (w *World) EmitStationHealth(b *component.Body) {
	w.Emit(event.EventStationHealth, &event.StationHealthPayload{
		Label:     b.Label,
		Health:    b.Health,
		MaxHealth: b.MaxHealth,
	})
}

// EmitRecharge publishes a slot's firing readiness
func (w *World) EmitRecharge(slot *component.StationSlot) {
	w.Emit(event.EventRechargeState, &event.RechargePayload{Label: slot.Label, Ready: slot.ReadyToFire})
}

func (w *World) emitSelection() {
	slot, ok := w.State.SelectedSlot()
	if !ok {
		w.Emit(event.EventSelectionChanged, &event.SelectionPayload{Index: -1})
		return
	}
	w.Emit(event.EventSelectionChanged, &event.SelectionPayload{Index: w.State.Selected, Label: slot.Label})
}

package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/planet-defense/engine"
	"github.com/lixenwraith/planet-defense/event"
)

func TestRechargeRestoresFiring(t *testing.T) {
	w := newWorld(t, NewRechargeSystem)
	_, ok := w.Fire()
	require.True(t, ok)
	w.Events.Consume()

	threshold := w.Config.Station.RechargeFrames
	stepN(w, threshold-1)
	slot := &w.State.Stations[0]
	assert.False(t, slot.ReadyToFire)
	assert.Equal(t, threshold-1, slot.RechargeCounter)
	_, ok = w.Fire()
	assert.False(t, ok)

	w.Step()
	assert.True(t, slot.ReadyToFire)
	recharged := engine.EventsOfType(w, event.EventRechargeState)
	require.Len(t, recharged, 1)
	assert.Equal(t, &event.RechargePayload{Label: "East", Ready: true}, recharged[0].Payload)

	_, ok = w.Fire()
	assert.True(t, ok)
}

func TestRechargeLeavesReadyStationsAlone(t *testing.T) {
	w := newWorld(t, NewRechargeSystem)
	stepN(w, 5)
	for _, slot := range w.State.Stations {
		assert.True(t, slot.ReadyToFire)
		assert.Equal(t, w.Config.Station.RechargeFrames, slot.RechargeCounter)
	}
	assert.Empty(t, engine.EventsOfType(w, event.EventRechargeState))
}

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/planet-defense/component"
	"github.com/lixenwraith/planet-defense/core"
)

func stateWithStations(n int) *GameState {
	st := &GameState{}
	for i := 1; i <= n; i++ {
		st.Stations = append(st.Stations, component.StationSlot{Entity: core.Entity(i)})
	}
	return st
}

func TestCycleSelectionWraps(t *testing.T) {
	st := stateWithStations(3)

	assert.True(t, st.CycleSelection(1))
	assert.Equal(t, 1, st.Selected)
	st.CycleSelection(2)
	assert.Equal(t, 0, st.Selected)
	st.CycleSelection(-1)
	assert.Equal(t, 2, st.Selected)
}

func TestCycleSelectionEmpty(t *testing.T) {
	st := &GameState{Selected: 4}
	assert.False(t, st.CycleSelection(1))
	assert.Equal(t, 0, st.Selected)

	_, ok := st.SelectedSlot()
	assert.False(t, ok)
}

func TestRemoveStationKeepsSelectionOnSameStation(t *testing.T) {
	st := stateWithStations(3)
	st.Selected = 2

	_, ok := st.RemoveStation(1)
	require.True(t, ok)

	slot, ok := st.SelectedSlot()
	require.True(t, ok)
	assert.Equal(t, 1, st.Selected)
	assert.EqualValues(t, 3, slot.Entity)
}

func TestRemoveStationClampsSelection(t *testing.T) {
	st := stateWithStations(3)
	st.Selected = 2

	_, ok := st.RemoveStation(3)
	require.True(t, ok)
	assert.Equal(t, 1, st.Selected)

	st.RemoveStation(2)
	st.RemoveStation(1)
	assert.Empty(t, st.Stations)
	assert.Equal(t, 0, st.Selected)

	_, ok = st.RemoveStation(1)
	assert.False(t, ok)
}

func TestPhase(t *testing.T) {
	st := &GameState{}
	assert.False(t, st.GameOver())
	st.Phase = PhaseApocalypse
	assert.True(t, st.GameOver())
	assert.Equal(t, "apocalypse", st.Phase.String())
	assert.Equal(t, "over", PhaseOver.String())
}

package component

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/planet-defense/core"
)

// StationSlot is the firing state of one weapon station
type StationSlot struct {
	Entity          core.Entity
	Position        mgl32.Vec3
	Label           string
	RechargeCounter int
	ReadyToFire     bool
}

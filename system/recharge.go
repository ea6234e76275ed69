package system

import (
	"github.com/lixenwraith/planet-defense/engine"
	"github.com/lixenwraith/planet-defense/parameter"
)

// RechargeSystem counts frames since each station last fired
type RechargeSystem struct {
	world *engine.World
}

func NewRechargeSystem(world *engine.World) engine.System {
	return &RechargeSystem{world: world}
}

func (s *RechargeSystem) Priority() int {
	return parameter.PriorityRecharge
}

func (s *RechargeSystem) Update() {
	st := s.world.State
	if st.Phase != engine.PhaseRunning {
		return
	}

	threshold := s.world.Config.Station.RechargeFrames
	for i := range st.Stations {
		slot := &st.Stations[i]
		if slot.ReadyToFire {
			continue
		}
		slot.RechargeCounter++
		if slot.RechargeCounter >= threshold {
			slot.ReadyToFire = true
			s.world.EmitRecharge(slot)
		}
	}
}

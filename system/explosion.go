package system

import (
	"github.com/lixenwraith/planet-defense/engine"
	"github.com/lixenwraith/planet-defense/parameter"
)

// ExplosionSystem advances explosion sprite frames and removes finished explosions
type ExplosionSystem struct {
	world *engine.World
}

func NewExplosionSystem(world *engine.World) engine.System {
	return &ExplosionSystem{world: world}
}

func (s *ExplosionSystem) Priority() int {
	return parameter.PriorityExplosion
}

func (s *ExplosionSystem) Update() {
	cfg := &s.world.Config.Explosion
	if s.world.State.Frame%int64(cfg.FrameCadence) != 0 {
		return
	}

	for _, b := range s.world.Registry.Explosions.Values() {
		b.Frame++
		if b.Frame >= cfg.FrameCount {
			s.world.Destroy(b.Entity)
		}
	}
}

package system

import (
	"github.com/lixenwraith/planet-defense/engine"
	"github.com/lixenwraith/planet-defense/parameter"
	"github.com/lixenwraith/planet-defense/vmath"
)

// ApocalypseSystem plays the end sequence: surface explosions, a final blast, then the planet is removed
type ApocalypseSystem struct {
	world *engine.World
}

func NewApocalypseSystem(world *engine.World) engine.System {
	return &ApocalypseSystem{world: world}
}

func (s *ApocalypseSystem) Priority() int {
	return parameter.PriorityApocalypse
}

func (s *ApocalypseSystem) Update() {
	w := s.world
	st := w.State
	if st.Phase != engine.PhaseApocalypse {
		return
	}

	planet, ok := w.Registry.Get(st.Planet)
	if !ok {
		w.FinishApocalypse()
		return
	}

	cfg := &w.Config.Apocalypse
	st.ApocalypseFrame++
	if st.ApocalypseFrame <= cfg.Frames {
		if st.ApocalypseFrame%cfg.BurstEvery == 0 {
			p := vmath.EllipsoidSurfacePoint(planet.Center(), planet.Radii, w.Rand.Float32(), w.Rand.Float32())
			if _, err := w.SpawnExplosion(p, false); err != nil {
				w.Log.Error().Err(err).Msg("Explosion spawn failed")
			}
		}
		return
	}

	if _, err := w.SpawnExplosion(planet.Center(), true); err != nil {
		w.Log.Error().Err(err).Msg("Explosion spawn failed")
	}
	w.FinishApocalypse()
}

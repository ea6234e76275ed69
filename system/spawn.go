package system

import (
	"github.com/lixenwraith/planet-defense/engine"
	"github.com/lixenwraith/planet-defense/parameter"
)

// SpawnSystem launches asteroids at random intervals while the game runs
type SpawnSystem struct {
	world *engine.World

	spawned int
}

func NewSpawnSystem(world *engine.World) engine.System {
	s := &SpawnSystem{world: world}
	s.Init()
	return s
}

func (s *SpawnSystem) Init() {
	s.spawned = 0
}

func (s *SpawnSystem) Priority() int {
	return parameter.PrioritySpawn
}

// Spawned returns asteroids launched since the last reset
func (s *SpawnSystem) Spawned() int {
	return s.spawned
}

func (s *SpawnSystem) Update() {
	st := s.world.State
	if st.Phase != engine.PhaseRunning {
		return
	}

	st.SpawnCounter++
	if st.SpawnCounter < st.SpawnInterval {
		return
	}

	if _, err := s.world.SpawnAsteroid(); err != nil {
		s.world.Log.Error().Err(err).Msg("Asteroid spawn failed")
	} else {
		s.spawned++
	}
	s.world.NextSpawnInterval()
}

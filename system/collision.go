package system

import (
	"github.com/lixenwraith/planet-defense/component"
	"github.com/lixenwraith/planet-defense/engine"
	"github.com/lixenwraith/planet-defense/event"
	"github.com/lixenwraith/planet-defense/parameter"
	"github.com/lixenwraith/planet-defense/vmath"
)

// CollisionSystem tests every asteroid against every other collidable and applies damage
// Bounding spheres use the mean radius; contact requires strict overlap
type CollisionSystem struct {
	world *engine.World

	hits int
}

func NewCollisionSystem(world *engine.World) engine.System {
	s := &CollisionSystem{world: world}
	s.Init()
	return s
}

func (s *CollisionSystem) Init() {
	s.hits = 0
}

func (s *CollisionSystem) Priority() int {
	return parameter.PriorityCollision
}

// Hits returns asteroid contacts since the last reset
func (s *CollisionSystem) Hits() int {
	return s.hits
}

func (s *CollisionSystem) Update() {
	reg := s.world.Registry
	if reg.Asteroids.Count() == 0 {
		return
	}

	asteroids := reg.Asteroids.Values()
	others := reg.Collidables()

	for _, a := range asteroids {
		if !reg.Alive(a.Entity) {
			continue
		}
		for _, o := range others {
			if o.Entity == a.Entity || !reg.Alive(o.Entity) {
				continue
			}
			if !vmath.SpheresOverlap(a.Center(), a.MeanRadius(), o.Center(), o.MeanRadius()) {
				continue
			}
			s.resolve(a, o)
			// Asteroid is gone, remaining pairs are moot
			break
		}
	}
}

func (s *CollisionSystem) resolve(asteroid, other *component.Body) {
	w := s.world
	s.hits++

	if _, err := w.SpawnExplosion(asteroid.Center(), false); err != nil {
		w.Log.Error().Err(err).Msg("Explosion spawn failed")
	}
	w.Destroy(asteroid.Entity)

	w.Log.Debug().
		Uint64("asteroid", uint64(asteroid.Entity)).
		Stringer("other", other.Kind).
		Uint64("otherEntity", uint64(other.Entity)).
		Msg("Collision")

	switch other.Kind {
	case component.KindShot:
		w.Destroy(other.Entity)
		w.State.Score += w.Config.Score.ShotReward
		w.Emit(event.EventScoreChanged, &event.ScorePayload{Score: w.State.Score})

	case component.KindStation:
		s.damageStation(other)

	case component.KindShield:
		level := max(w.State.ShieldLevel, 1)
		s.damagePlanet(w.Config.Planet.Damage / float32(level))

	case component.KindPlanet:
		s.damagePlanet(w.Config.Planet.Damage)

	case component.KindAsteroid:
		// Only the tested asteroid is destroyed, the other one flies on

	case component.KindMoon:
		other.Health -= w.Config.Moon.Damage
		if other.Health <= 0 {
			other.Health = 0
			if _, err := w.SpawnExplosion(other.Center(), true); err != nil {
				w.Log.Error().Err(err).Msg("Explosion spawn failed")
			}
			w.Destroy(other.Entity)
			w.Log.Info().Msg("Moon destroyed")
		}
	}
}

func (s *CollisionSystem) damageStation(station *component.Body) {
	w := s.world
	st := w.State

	station.Health -= w.Config.Station.Damage
	if station.Health > 0 {
		w.EmitStationHealth(station)
		return
	}

	station.Health = 0
	w.EmitStationHealth(station)
	w.Destroy(station.Entity)
	w.Log.Info().Str("station", station.Label).Int("remaining", len(st.Stations)).Msg("Station destroyed")

	if st.Shield != 0 && st.ShieldLevel > 0 {
		st.ShieldLevel--
		if st.ShieldLevel == 0 {
			w.Destroy(st.Shield)
			w.Log.Info().Msg("Shield down")
		} else if shield, ok := w.Registry.Get(st.Shield); ok {
			shield.Material.Alpha = st.ShieldBaseAlpha * float32(st.ShieldLevel) / float32(st.ShieldMaxLevel)
		}
		w.EmitShieldLevel()
	}

	if len(st.Stations) == 0 {
		w.Destroy(st.Highlight)
	}
}

func (s *CollisionSystem) damagePlanet(amount float32) {
	w := s.world
	w.State.PlanetHealth -= amount
	if w.State.PlanetHealth <= 0 {
		w.State.PlanetHealth = 0
		w.BeginApocalypse()
		return
	}
	w.EmitPlanetHealth()
}

package system

import (
	"github.com/lixenwraith/planet-defense/component"
	"github.com/lixenwraith/planet-defense/engine"
	"github.com/lixenwraith/planet-defense/parameter"
	"github.com/lixenwraith/planet-defense/vmath"
)

// MotionSystem translates shots and asteroids, expires them, and orbits the moon
type MotionSystem struct {
	world *engine.World

	expired int
}

func NewMotionSystem(world *engine.World) engine.System {
	s := &MotionSystem{world: world}
	s.Init()
	return s
}

func (s *MotionSystem) Init() {
	s.expired = 0
}

func (s *MotionSystem) Priority() int {
	return parameter.PriorityMotion
}

// Expired returns entities despawned by lifespan since the last reset
func (s *MotionSystem) Expired() int {
	return s.expired
}

func (s *MotionSystem) Update() {
	cfg := s.world.Config
	reg := s.world.Registry

	for _, b := range reg.Shots.Values() {
		s.advance(b, cfg.Shot.Speed, cfg.Shot.LongevityRate, cfg.Shot.Lifespan)
	}
	for _, b := range reg.Asteroids.Values() {
		s.advance(b, cfg.Asteroid.Speed, cfg.Asteroid.LongevityRate, cfg.Asteroid.Lifespan)
	}

	if moon, ok := reg.Get(s.world.State.Moon); ok {
		angle := cfg.Moon.OrbitAngle
		moon.Translation = vmath.RotateY(moon.Center(), angle).Sub(moon.Position)
		// Tidally locked: the moon turns with its orbit
		moon.XAxis = vmath.RotateY(moon.XAxis, angle)
	}
}

func (s *MotionSystem) advance(b *component.Body, speed, rate, lifespan float32) {
	b.Translation = b.Translation.Add(b.Direction.Mul(speed))
	b.Longevity += rate
	if b.Longevity > lifespan {
		s.world.Destroy(b.Entity)
		s.expired++
	}
}

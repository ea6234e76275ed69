package config

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Validate rejects settings the simulation cannot run with
func (c *Config) Validate() error {
	for name, steps := range map[string]int{
		"geometry.staticSteps":  c.Geometry.StaticSteps,
		"geometry.dynamicSteps": c.Geometry.DynamicSteps,
	} {
		if steps < 4 || steps%2 != 0 {
			return fmt.Errorf("%w: %s must be even and at least 4, got %d", ErrInvalidConfig, name, steps)
		}
	}

	for name, v := range map[string]float32{
		"shot.radius":          c.Shot.Radius,
		"shot.speed":           c.Shot.Speed,
		"shot.lifespan":        c.Shot.Lifespan,
		"asteroid.spawnRadius": c.Asteroid.SpawnRadius,
		"asteroid.minRadius":   c.Asteroid.MinRadius,
		"asteroid.speed":       c.Asteroid.Speed,
		"asteroid.lifespan":    c.Asteroid.Lifespan,
		"explosion.radius":     c.Explosion.Radius,
		"explosion.largeScale": c.Explosion.LargeScale,
		"station.health":       c.Station.Health,
		"planet.health":        c.Planet.Health,
		"moon.health":          c.Moon.Health,
	} {
		if v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %g", ErrInvalidConfig, name, v)
		}
	}

	if c.Asteroid.MaxRadius < c.Asteroid.MinRadius {
		return fmt.Errorf("%w: asteroid.maxRadius below minRadius", ErrInvalidConfig)
	}
	if c.Asteroid.SpawnIntervalMin < 1 || c.Asteroid.SpawnIntervalMax < c.Asteroid.SpawnIntervalMin {
		return fmt.Errorf("%w: asteroid spawn interval [%d, %d]", ErrInvalidConfig,
			c.Asteroid.SpawnIntervalMin, c.Asteroid.SpawnIntervalMax)
	}
	if c.Explosion.FrameCount < 1 || c.Explosion.FrameCadence < 1 {
		return fmt.Errorf("%w: explosion frameCount and frameCadence must be at least 1", ErrInvalidConfig)
	}
	if c.Station.RechargeFrames < 0 {
		return fmt.Errorf("%w: station.rechargeFrames must not be negative", ErrInvalidConfig)
	}
	if c.Apocalypse.Frames < 0 || c.Apocalypse.BurstEvery < 1 {
		return fmt.Errorf("%w: apocalypse frames %d burstEvery %d", ErrInvalidConfig,
			c.Apocalypse.Frames, c.Apocalypse.BurstEvery)
	}

	for name, v := range map[string][]float32{
		"camera.eye":    c.Camera.Eye,
		"camera.center": c.Camera.Center,
		"camera.up":     c.Camera.Up,
	} {
		if len(v) != 3 {
			return fmt.Errorf("%w: %s needs 3 components, got %d", ErrInvalidConfig, name, len(v))
		}
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio.volume must be in [0,1], got %g", ErrInvalidConfig, c.Audio.Volume)
	}
	return nil
}

// EyeVec returns the configured camera position
func (c *CameraConfig) EyeVec() mgl32.Vec3 { return toVec3(c.Eye) }

// CenterVec returns the configured look-at point
func (c *CameraConfig) CenterVec() mgl32.Vec3 { return toVec3(c.Center) }

// UpVec returns the configured up direction
func (c *CameraConfig) UpVec() mgl32.Vec3 { return toVec3(c.Up) }

func toVec3(v []float32) mgl32.Vec3 {
	var out mgl32.Vec3
	copy(out[:], v)
	return out
}

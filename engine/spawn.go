package engine

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/planet-defense/component"
	"github.com/lixenwraith/planet-defense/core"
	"github.com/lixenwraith/planet-defense/event"
	"github.com/lixenwraith/planet-defense/mesh"
	"github.com/lixenwraith/planet-defense/parameter"
	"github.com/lixenwraith/planet-defense/vmath"
)

// spawnEllipsoid tessellates and registers an ellipsoid body
func (w *World) spawnEllipsoid(b *component.Body, steps int) (core.Entity, error) {
	m, err := mesh.Generate(b.Position, b.Radii, steps)
	if err != nil {
		return 0, fmt.Errorf("spawn %s: %w", b.Kind, err)
	}
	return w.Registry.Spawn(b, m)
}

// SpawnShot launches a shot from origin toward target
func (w *World) SpawnShot(origin, target mgl32.Vec3) (core.Entity, error) {
	cfg := &w.Config.Shot
	r := cfg.Radius
	b := &component.Body{
		Kind:      component.KindShot,
		Position:  origin,
		Radii:     mgl32.Vec3{r, r, r},
		XAxis:     mgl32.Vec3{1, 0, 0},
		YAxis:     mgl32.Vec3{0, 1, 0},
		Direction: vmath.Direction(origin, target),
		Material: component.Material{
			Ambient:   mgl32.Vec3{0.3, 0.3, 0.1},
			Diffuse:   mgl32.Vec3{1, 0.9, 0.3},
			Specular:  mgl32.Vec3{1, 1, 1},
			Shininess: parameter.ShotShininess,
			Alpha:     1,
			Texture:   parameter.ShotTexture,
		},
		Collidable: true,
	}
	e, err := w.spawnEllipsoid(b, w.Config.Geometry.DynamicSteps)
	if err != nil {
		return 0, err
	}
	w.Log.Debug().Uint64("entity", uint64(e)).Msg("Shot spawned")
	return e, nil
}

// AsteroidTarget returns where a new asteroid aims: the nearest live station,
// else the planet, else the origin
func (w *World) AsteroidTarget(from mgl32.Vec3) mgl32.Vec3 {
	best := float32(-1)
	var target mgl32.Vec3
	for _, st := range w.Registry.Stations.Values() {
		d := st.Center().Sub(from).Len()
		if best < 0 || d < best {
			best = d
			target = st.Center()
		}
	}
	if best >= 0 {
		return target
	}
	if p, ok := w.Registry.Get(w.State.Planet); ok {
		return p.Center()
	}
	return mgl32.Vec3{}
}

// SpawnAsteroid places an asteroid at a uniformly random point on the spawn sphere
func (w *World) SpawnAsteroid() (core.Entity, error) {
	point := vmath.SpherePoint(mgl32.Vec3{}, w.Config.Asteroid.SpawnRadius, w.Rand.Float32(), w.Rand.Float32())
	return w.SpawnAsteroidAt(point)
}

// SpawnAsteroidAt places an asteroid at point, aimed per AsteroidTarget
func (w *World) SpawnAsteroidAt(point mgl32.Vec3) (core.Entity, error) {
	cfg := &w.Config.Asteroid
	radii := mgl32.Vec3{
		w.Rand.Float32Range(cfg.MinRadius, cfg.MaxRadius),
		w.Rand.Float32Range(cfg.MinRadius, cfg.MaxRadius),
		w.Rand.Float32Range(cfg.MinRadius, cfg.MaxRadius),
	}
	b := &component.Body{
		Kind:      component.KindAsteroid,
		Position:  point,
		Radii:     radii,
		XAxis:     mgl32.Vec3{1, 0, 0},
		YAxis:     mgl32.Vec3{0, 1, 0},
		Direction: vmath.Direction(point, w.AsteroidTarget(point)),
		Material: component.Material{
			Ambient:   mgl32.Vec3{0.1, 0.08, 0.06},
			Diffuse:   mgl32.Vec3{0.5, 0.4, 0.3},
			Specular:  mgl32.Vec3{0.1, 0.1, 0.1},
			Shininess: 3,
			Alpha:     1,
			Texture:   parameter.AsteroidTexture,
		},
		Collidable: true,
	}
	e, err := w.spawnEllipsoid(b, w.Config.Geometry.DynamicSteps)
	if err != nil {
		return 0, err
	}
	w.Log.Debug().Uint64("entity", uint64(e)).Interface("at", point).Msg("Asteroid spawned")
	return e, nil
}

// SpawnExplosion places a stationary animated explosion
func (w *World) SpawnExplosion(location mgl32.Vec3, large bool) (core.Entity, error) {
	cfg := &w.Config.Explosion
	r := cfg.Radius
	if large {
		r *= cfg.LargeScale
	}
	b := &component.Body{
		Kind:     component.KindExplosion,
		Position: location,
		Radii:    mgl32.Vec3{r, r, r},
		XAxis:    mgl32.Vec3{1, 0, 0},
		YAxis:    mgl32.Vec3{0, 1, 0},
		Material: component.Material{
			Ambient:   mgl32.Vec3{1, 0.6, 0.2},
			Diffuse:   mgl32.Vec3{1, 0.5, 0.1},
			Specular:  mgl32.Vec3{0, 0, 0},
			Shininess: 1,
			Alpha:     cfg.Alpha,
			Texture:   parameter.ExplosionTexture,
		},
		Large: large,
	}
	e, err := w.spawnEllipsoid(b, w.Config.Geometry.DynamicSteps)
	if err != nil {
		return 0, err
	}
	w.PlaySound(event.SoundExplosion)
	return e, nil
}

// Destroy removes an entity and clears any role that referenced it
// Destroying a station also removes its slot; unknown entities are a no-op
func (w *World) Destroy(e core.Entity) bool {
	b, ok := w.Registry.Get(e)
	if !ok {
		return false
	}

	switch b.Kind {
	case component.KindStation:
		if slot, removed := w.State.RemoveStation(e); removed {
			w.Emit(event.EventStationDestroyed, &event.StationPayload{Label: slot.Label})
			w.syncHighlight()
			w.emitSelection()
		}
	case component.KindPlanet:
		if w.State.Planet == e {
			w.State.Planet = 0
		}
	case component.KindShield:
		if w.State.Shield == e {
			w.State.Shield = 0
		}
	case component.KindMoon:
		if w.State.Moon == e {
			w.State.Moon = 0
		}
	case component.KindHighlight:
		if w.State.Highlight == e {
			w.State.Highlight = 0
		}
	}

	return w.Registry.Destroy(e)
}

package engine

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/planet-defense/component"
	"github.com/lixenwraith/planet-defense/mesh"
	"github.com/lixenwraith/planet-defense/scene"
)

// minStaticRadius keeps flat triangle sets above the positive-radii invariant
const minStaticRadius = 1e-3

func materialFrom(def *scene.MaterialDef) component.Material {
	return component.Material{
		Ambient:   scene.Vec3Or(def.Ambient, mgl32.Vec3{0.1, 0.1, 0.1}),
		Diffuse:   scene.Vec3Or(def.Diffuse, mgl32.Vec3{0.6, 0.6, 0.6}),
		Specular:  scene.Vec3Or(def.Specular, mgl32.Vec3{0.3, 0.3, 0.3}),
		Shininess: def.N,
		Alpha:     def.AlphaOr(),
		Texture:   def.Texture,
	}
}

// populate spawns scene entities and initializes game state from them
func (w *World) populate(s *scene.Scene) error {
	st := w.State
	st.Bounds = scene.ComputeBounds(s)
	st.ViewDelta = st.Bounds.ViewDelta()
	st.PlanetHealth = w.Config.Planet.Health
	st.PlanetMaxHealth = w.Config.Planet.Health

	for i := range s.Triangles {
		if err := w.spawnTriangleSet(&s.Triangles[i]); err != nil {
			return fmt.Errorf("triangle set %d: %w", i, err)
		}
	}
	for i := range s.Ellipsoids {
		if err := w.spawnSceneEllipsoid(&s.Ellipsoids[i]); err != nil {
			return fmt.Errorf("ellipsoid %d: %w", i, err)
		}
	}

	if st.Shield != 0 {
		st.ShieldMaxLevel = max(len(st.Stations), 1)
		st.ShieldLevel = st.ShieldMaxLevel
		if b, ok := w.Registry.Get(st.Shield); ok {
			st.ShieldBaseAlpha = b.Material.Alpha
		}
	}

	st.SpawnInterval = w.drawSpawnInterval()
	w.syncHighlight()
	w.emitFullStatus()
	return nil
}

func (w *World) spawnTriangleSet(ts *scene.TriangleSet) error {
	verts := scene.Vec3s(ts.Vertices)
	m, err := mesh.FromTriangles(verts, scene.Vec3s(ts.Normals), scene.Vec2s(ts.UVs), scene.Indices(ts.Triangles))
	if err != nil {
		return err
	}

	// Center is the vertex average, radii the half extents
	var sum, lo, hi mgl32.Vec3
	lo, hi = verts[0], verts[0]
	for _, v := range verts {
		sum = sum.Add(v)
		for i := 0; i < 3; i++ {
			lo[i] = min(lo[i], v[i])
			hi[i] = max(hi[i], v[i])
		}
	}
	half := hi.Sub(lo).Mul(0.5)
	for i := 0; i < 3; i++ {
		half[i] = max(half[i], minStaticRadius)
	}

	b := &component.Body{
		Kind:     component.KindSceneStatic,
		Position: sum.Mul(1 / float32(len(verts))),
		Radii:    half,
		XAxis:    mgl32.Vec3{1, 0, 0},
		YAxis:    mgl32.Vec3{0, 1, 0},
		Material: materialFrom(&ts.Material),
	}
	_, err = w.Registry.Spawn(b, m)
	return err
}

func (w *World) spawnSceneEllipsoid(def *scene.Ellipsoid) error {
	kind, _ := component.ParseKind(def.Kind)
	b := &component.Body{
		Kind:       kind,
		Position:   def.Center(),
		Radii:      def.Radii(),
		XAxis:      mgl32.Vec3{1, 0, 0},
		YAxis:      mgl32.Vec3{0, 1, 0},
		Material:   materialFrom(&def.MaterialDef),
		Collidable: kind.Collidable(),
		Label:      def.Label,
	}

	switch kind {
	case component.KindStation:
		b.Health = w.Config.Station.Health
		b.MaxHealth = w.Config.Station.Health
		if b.Label == "" {
			b.Label = fmt.Sprintf("Station %d", len(w.State.Stations)+1)
		}
	case component.KindMoon:
		b.Health = w.Config.Moon.Health
		b.MaxHealth = w.Config.Moon.Health
	case component.KindShield:
		if def.Alpha == nil {
			b.Material.Alpha = w.Config.Planet.ShieldAlpha
		}
	}

	e, err := w.spawnEllipsoid(b, w.Config.Geometry.StaticSteps)
	if err != nil {
		return err
	}

	st := w.State
	switch kind {
	case component.KindStation:
		st.Stations = append(st.Stations, component.StationSlot{
			Entity:          e,
			Position:        b.Center(),
			Label:           b.Label,
			RechargeCounter: w.Config.Station.RechargeFrames,
			ReadyToFire:     true,
		})
	case component.KindPlanet:
		st.Planet = e
	case component.KindShield:
		st.Shield = e
	case component.KindMoon:
		st.Moon = e
	case component.KindHighlight:
		st.Highlight = e
	}
	return nil
}

// drawSpawnInterval picks the frames until the next asteroid
func (w *World) drawSpawnInterval() int {
	cfg := &w.Config.Asteroid
	return w.Rand.IntRange(cfg.SpawnIntervalMin, cfg.SpawnIntervalMax)
}

// NextSpawnInterval resets the spawn counter and draws a new interval
func (w *World) NextSpawnInterval() {
	w.State.SpawnCounter = 0
	w.State.SpawnInterval = w.drawSpawnInterval()
}

// syncHighlight moves the highlight marker onto the selected station
func (w *World) syncHighlight() {
	h, ok := w.Registry.Get(w.State.Highlight)
	if !ok {
		return
	}
	slot, ok := w.State.SelectedSlot()
	if !ok {
		return
	}
	h.Translation = slot.Position.Sub(h.Position)
}

package engine

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/planet-defense/component"
	"github.com/lixenwraith/planet-defense/config"
	"github.com/lixenwraith/planet-defense/event"
	"github.com/lixenwraith/planet-defense/scene"
)

func newLoadedWorld(t *testing.T) *World {
	t.Helper()
	w, err := NewTestWorld(NewTestScene())
	require.NoError(t, err)
	return w
}

func soundsIn(events []event.GameEvent) []event.SoundType {
	var result []event.SoundType
	for _, ev := range events {
		if p, ok := ev.Payload.(*event.SoundRequestPayload); ok {
			result = append(result, p.SoundType)
		}
	}
	return result
}

func TestWorldLoadPopulates(t *testing.T) {
	w := newLoadedWorld(t)
	st := w.State

	assert.Equal(t, 6, w.Registry.Count())
	assert.Equal(t, 6, w.Registry.Meshes.Count())
	assert.Equal(t, 2, w.Registry.Stations.Count())
	require.Len(t, st.Stations, 2)
	assert.Equal(t, "East", st.Stations[0].Label)
	assert.Equal(t, "West", st.Stations[1].Label)
	assert.True(t, st.Stations[0].ReadyToFire)

	assert.NotZero(t, st.Planet)
	assert.NotZero(t, st.Shield)
	assert.NotZero(t, st.Moon)
	assert.NotZero(t, st.Highlight)

	assert.Equal(t, 2, st.ShieldMaxLevel)
	assert.Equal(t, 2, st.ShieldLevel)
	assert.InDelta(t, 0.4, st.ShieldBaseAlpha, 1e-6)
	assert.Equal(t, w.Config.Planet.Health, st.PlanetHealth)

	assert.GreaterOrEqual(t, st.SpawnInterval, w.Config.Asteroid.SpawnIntervalMin)
	assert.LessOrEqual(t, st.SpawnInterval, w.Config.Asteroid.SpawnIntervalMax)

	assert.InDelta(t, 0.0373, st.ViewDelta, 1e-3)

	station, ok := w.Registry.Get(st.Stations[0].Entity)
	require.True(t, ok)
	assert.Equal(t, w.Config.Station.Health, station.Health)
	moon, ok := w.Registry.Get(st.Moon)
	require.True(t, ok)
	assert.Equal(t, w.Config.Moon.Health, moon.Health)
}

func TestWorldLoadEmitsStatus(t *testing.T) {
	w := newLoadedWorld(t)
	events := w.Events.Consume()

	types := map[event.EventType]int{}
	for _, ev := range events {
		types[ev.Type]++
	}
	assert.Equal(t, 1, types[event.EventGameReset])
	assert.Equal(t, 1, types[event.EventScoreChanged])
	assert.Equal(t, 1, types[event.EventPlanetHealth])
	assert.Equal(t, 2, types[event.EventStationHealth])
	assert.Equal(t, 2, types[event.EventRechargeState])
	assert.Equal(t, []event.SoundType{event.SoundGameStart}, soundsIn(events))
}

func TestWorldResetRequiresScene(t *testing.T) {
	w := NewWorld(config.Default(), zerolog.Nop())
	assert.ErrorIs(t, w.Reset(), ErrNoScene)
}

func TestWorldLoadRejectsBadGeometry(t *testing.T) {
	cfg := config.Default()
	cfg.Geometry.StaticSteps = 3
	_, err := NewTestWorldWithConfig(cfg, NewTestScene())
	assert.Error(t, err)
}

func TestWorldShieldAlphaFallsBackToConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Planet.ShieldAlpha = 0.3
	s := NewTestScene()
	s.Ellipsoids[1].Alpha = nil

	w, err := NewTestWorldWithConfig(cfg, s)
	require.NoError(t, err)
	shield, ok := w.Registry.Get(w.State.Shield)
	require.True(t, ok)
	assert.InDelta(t, 0.3, shield.Material.Alpha, 1e-6)
	assert.InDelta(t, 0.3, w.State.ShieldBaseAlpha, 1e-6)

	// Scene alpha wins when present
	w, err = NewTestWorldWithConfig(cfg, NewTestScene())
	require.NoError(t, err)
	assert.InDelta(t, 0.4, w.State.ShieldBaseAlpha, 1e-6)
}

func TestWorldLoadTriangleSet(t *testing.T) {
	s := &scene.Scene{
		Triangles: []scene.TriangleSet{{
			Vertices:  [][]float32{{-1, -1, -4}, {1, -1, -4}, {1, 1, -4}},
			Normals:   [][]float32{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}},
			UVs:       [][]float32{{0, 0}, {1, 0}, {1, 1}},
			Triangles: [][]uint32{{0, 1, 2}},
		}},
	}
	w, err := NewTestWorld(s)
	require.NoError(t, err)

	bodies := w.Registry.Bodies.Values()
	require.Len(t, bodies, 1)
	b := bodies[0]
	assert.Equal(t, component.KindSceneStatic, b.Kind)
	assert.False(t, b.Collidable)
	assert.Greater(t, b.Radii.Z(), float32(0), "flat sets keep positive radii")
	assert.Empty(t, w.State.Stations)
	assert.Zero(t, w.State.ShieldMaxLevel)
}

func TestHighlightFollowsSelection(t *testing.T) {
	w := newLoadedWorld(t)
	h, ok := w.Registry.Get(w.State.Highlight)
	require.True(t, ok)
	assert.True(t, h.Center().ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, 1e-5))

	w.Events.Consume()
	w.SelectStation(1)
	assert.Equal(t, 1, w.State.Selected)
	assert.True(t, h.Center().ApproxEqualThreshold(mgl32.Vec3{-1, 0, 0}, 1e-5))

	sel := EventsOfType(w, event.EventSelectionChanged)
	require.Len(t, sel, 1)
	assert.Equal(t, &event.SelectionPayload{Index: 1, Label: "West"}, sel[0].Payload)

	w.SelectStation(1)
	assert.Equal(t, 0, w.State.Selected)
}

func TestSpawnShotDirection(t *testing.T) {
	w := newLoadedWorld(t)
	e, err := w.SpawnShot(mgl32.Vec3{1, 0, 0}, mgl32.Vec3{1, 0, 10})
	require.NoError(t, err)

	b, ok := w.Registry.Get(e)
	require.True(t, ok)
	assert.Equal(t, component.KindShot, b.Kind)
	assert.True(t, w.Registry.Shots.Has(e))
	assert.True(t, b.Direction.ApproxEqualThreshold(mgl32.Vec3{0, 0, 1}, 1e-5))
	assert.Equal(t, mgl32.Vec3{}, b.Translation)
	assert.InDelta(t, w.Config.Shot.Radius, b.MeanRadius(), 1e-6)
}

func TestSpawnAsteroidAimsAtNearestStation(t *testing.T) {
	w := newLoadedWorld(t)
	e, err := w.SpawnAsteroidAt(mgl32.Vec3{4, 0, 0})
	require.NoError(t, err)

	b, _ := w.Registry.Get(e)
	assert.True(t, b.Direction.ApproxEqualThreshold(mgl32.Vec3{-1, 0, 0}, 1e-5))
	cfg := w.Config.Asteroid
	for i := 0; i < 3; i++ {
		assert.GreaterOrEqual(t, b.Radii[i], cfg.MinRadius)
		assert.LessOrEqual(t, b.Radii[i], cfg.MaxRadius)
	}

	e, err = w.SpawnAsteroidAt(mgl32.Vec3{-4, 0, 0})
	require.NoError(t, err)
	b, _ = w.Registry.Get(e)
	assert.True(t, b.Direction.ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, 1e-5))
}

func TestSpawnAsteroidAimsAtPlanetWithoutStations(t *testing.T) {
	w := newLoadedWorld(t)
	for _, e := range w.Registry.Stations.Entities() {
		w.Destroy(e)
	}
	assert.Equal(t, mgl32.Vec3{}, w.AsteroidTarget(mgl32.Vec3{0, 4, 0}))

	e, err := w.SpawnAsteroidAt(mgl32.Vec3{0, 4, 0})
	require.NoError(t, err)
	b, _ := w.Registry.Get(e)
	assert.True(t, b.Direction.ApproxEqualThreshold(mgl32.Vec3{0, -1, 0}, 1e-5))
}

func TestSpawnAsteroidOnSpawnSphere(t *testing.T) {
	w := newLoadedWorld(t)
	for i := 0; i < 20; i++ {
		e, err := w.SpawnAsteroid()
		require.NoError(t, err)
		b, _ := w.Registry.Get(e)
		assert.InDelta(t, w.Config.Asteroid.SpawnRadius, b.Position.Len(), 1e-3)
	}
	assert.Equal(t, 20, w.Registry.Asteroids.Count())
}

func TestSpawnExplosionSizes(t *testing.T) {
	w := newLoadedWorld(t)
	w.Events.Consume()

	small, err := w.SpawnExplosion(mgl32.Vec3{1, 1, 1}, false)
	require.NoError(t, err)
	large, err := w.SpawnExplosion(mgl32.Vec3{}, true)
	require.NoError(t, err)

	sb, _ := w.Registry.Get(small)
	lb, _ := w.Registry.Get(large)
	cfg := w.Config.Explosion
	assert.InDelta(t, cfg.Radius, sb.MeanRadius(), 1e-6)
	assert.InDelta(t, cfg.Radius*cfg.LargeScale, lb.MeanRadius(), 1e-5)
	assert.False(t, sb.Collidable)
	assert.True(t, sb.Translucent())
	assert.Equal(t, 2, w.Registry.Explosions.Count())

	assert.Equal(t, []event.SoundType{event.SoundExplosion, event.SoundExplosion}, soundsIn(w.Events.Consume()))
}

func TestDestroySingletonClearsRole(t *testing.T) {
	w := newLoadedWorld(t)
	moon := w.State.Moon
	assert.True(t, w.Destroy(moon))
	assert.Zero(t, w.State.Moon)
	assert.False(t, w.Destroy(moon))
}

func TestDestroyStationRemovesSlot(t *testing.T) {
	w := newLoadedWorld(t)
	w.Events.Consume()

	east := w.State.Stations[0].Entity
	require.True(t, w.Destroy(east))
	require.Len(t, w.State.Stations, 1)
	assert.Equal(t, "West", w.State.Stations[0].Label)
	assert.Equal(t, 1, w.Registry.Stations.Count())

	destroyed := EventsOfType(w, event.EventStationDestroyed)
	require.Len(t, destroyed, 1)
	assert.Equal(t, &event.StationPayload{Label: "East"}, destroyed[0].Payload)

	h, _ := w.Registry.Get(w.State.Highlight)
	assert.True(t, h.Center().ApproxEqualThreshold(mgl32.Vec3{-1, 0, 0}, 1e-5))
}

func TestFireRequiresReadyStation(t *testing.T) {
	w := newLoadedWorld(t)
	w.Events.Consume()

	e, ok := w.Fire()
	require.True(t, ok)
	assert.True(t, w.Registry.Shots.Has(e))

	shot, _ := w.Registry.Get(e)
	assert.True(t, shot.Position.ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, 1e-5))
	aim := w.Camera.AimPoint(w.Config.Camera.AimRange)
	want := aim.Sub(shot.Position).Normalize()
	assert.True(t, shot.Direction.ApproxEqualThreshold(want, 1e-4))

	slot := &w.State.Stations[0]
	assert.False(t, slot.ReadyToFire)
	assert.Zero(t, slot.RechargeCounter)

	events := w.Events.Consume()
	assert.Equal(t, []event.SoundType{event.SoundFire}, soundsIn(events))

	_, ok = w.Fire()
	assert.False(t, ok, "recharging station cannot fire")

	// Other station is independent
	w.SelectStation(1)
	_, ok = w.Fire()
	assert.True(t, ok)
	assert.Equal(t, 2, w.Registry.Shots.Count())
}

func TestFireWithoutStations(t *testing.T) {
	w := newLoadedWorld(t)
	for _, e := range w.Registry.Stations.Entities() {
		w.Destroy(e)
	}
	_, ok := w.Fire()
	assert.False(t, ok)
	assert.Zero(t, w.Registry.Shots.Count())
}

func TestCycleBlendModeWraps(t *testing.T) {
	w := newLoadedWorld(t)
	seen := map[int]bool{}
	for i := 0; i < 8; i++ {
		seen[w.State.BlendMode] = true
		w.CycleBlendMode()
	}
	assert.Len(t, seen, 4)
	assert.Equal(t, 0, w.State.BlendMode)
}

func TestMoveViewScalesWithScene(t *testing.T) {
	w := newLoadedWorld(t)
	eye := w.Camera.Eye
	w.MoveView(1)
	assert.InDelta(t, w.State.ViewDelta, w.Camera.Eye.Sub(eye).Len(), 1e-5)
}

func TestBeginApocalypse(t *testing.T) {
	w := newLoadedWorld(t)
	for i := 0; i < 3; i++ {
		_, err := w.SpawnAsteroid()
		require.NoError(t, err)
	}
	w.Events.Consume()

	w.BeginApocalypse()
	st := w.State
	assert.Equal(t, PhaseApocalypse, st.Phase)
	assert.Zero(t, st.PlanetHealth)
	assert.Zero(t, w.Registry.Asteroids.Count())
	assert.Zero(t, w.Registry.Stations.Count())
	assert.Empty(t, st.Stations)
	assert.Zero(t, st.Shield)
	assert.Zero(t, st.Highlight)
	assert.Zero(t, st.ShieldLevel)
	assert.NotZero(t, st.Planet, "planet remains for the end sequence")

	events := w.Events.Consume()
	var gameOver int
	for _, ev := range events {
		if ev.Type == event.EventGameOver {
			gameOver++
		}
	}
	assert.Equal(t, 1, gameOver)
	assert.Contains(t, soundsIn(events), event.SoundGameOver)

	// Second call is a no-op
	w.BeginApocalypse()
	assert.Empty(t, EventsOfType(w, event.EventGameOver))

	_, ok := w.Fire()
	assert.False(t, ok)

	w.FinishApocalypse()
	assert.Equal(t, PhaseOver, st.Phase)
	assert.Zero(t, st.Planet)
	assert.Len(t, EventsOfType(w, event.EventGameEnded), 1)
}

func TestRestartRestoresInitialState(t *testing.T) {
	w := newLoadedWorld(t)
	initial := w.Registry.Count()

	w.State.Score = 50
	w.Fire()
	w.RotateView(RotateLeft)
	w.BeginApocalypse()

	require.NoError(t, w.Restart())
	assert.Equal(t, PhaseRunning, w.State.Phase)
	assert.Zero(t, w.State.Score)
	assert.Equal(t, initial, w.Registry.Count())
	assert.Equal(t, initial, w.Registry.Meshes.Count())
	assert.Len(t, w.State.Stations, 2)
	assert.True(t, w.Camera.Forward.ApproxEqualThreshold(newLoadedWorld(t).Camera.Forward, 1e-6))
}

type countingSystem struct {
	priority int
	updates  *[]int
	inits    int
}

func (s *countingSystem) Update()       { *s.updates = append(*s.updates, s.priority) }
func (s *countingSystem) Priority() int { return s.priority }
func (s *countingSystem) Init()         { s.inits++ }

func TestSystemsRunInPriorityOrder(t *testing.T) {
	w := newLoadedWorld(t)
	var order []int
	late := &countingSystem{priority: 50, updates: &order}
	early := &countingSystem{priority: 10, updates: &order}
	w.AddSystem(late)
	w.AddSystem(early)

	w.Step()
	assert.Equal(t, []int{10, 50}, order)
	assert.EqualValues(t, 1, w.State.Frame)

	require.NoError(t, w.Reset())
	assert.Equal(t, 1, late.inits)
	assert.Equal(t, 1, early.inits)
	assert.Zero(t, w.State.Frame)
}

package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/planet-defense/component"
	"github.com/lixenwraith/planet-defense/engine"
)

func newWorld(t *testing.T, systems ...func(*engine.World) engine.System) *engine.World {
	t.Helper()
	w, err := engine.NewTestWorld(engine.NewTestScene())
	require.NoError(t, err)
	for _, ctor := range systems {
		w.AddSystem(ctor(w))
	}
	w.Events.Consume()
	return w
}

// placeAsteroid spawns a stationary asteroid with a fixed radius
func placeAsteroid(t *testing.T, w *engine.World, at mgl32.Vec3, radius float32) *component.Body {
	t.Helper()
	e, err := w.SpawnAsteroidAt(at)
	require.NoError(t, err)
	b, ok := w.Registry.Get(e)
	require.True(t, ok)
	b.Radii = mgl32.Vec3{radius, radius, radius}
	b.Direction = mgl32.Vec3{}
	return b
}

func stepN(w *engine.World, n int) {
	for i := 0; i < n; i++ {
		w.Step()
	}
}

func station(t *testing.T, w *engine.World, label string) *component.Body {
	t.Helper()
	for _, b := range w.Registry.Stations.Values() {
		if b.Label == label {
			return b
		}
	}
	t.Fatalf("station %q not found", label)
	return nil
}

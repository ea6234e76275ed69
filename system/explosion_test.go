package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplosionFrameBudget(t *testing.T) {
	w := newWorld(t, NewExplosionSystem)
	e, err := w.SpawnExplosion(mgl32.Vec3{2, 2, 2}, false)
	require.NoError(t, err)
	b, _ := w.Registry.Get(e)

	cfg := w.Config.Explosion
	stepN(w, cfg.FrameCadence)
	assert.Equal(t, 1, b.Frame)

	lifetime := cfg.FrameCount * cfg.FrameCadence
	stepN(w, lifetime-cfg.FrameCadence-1)
	assert.True(t, w.Registry.Alive(e))
	assert.Equal(t, cfg.FrameCount-1, b.Frame)

	w.Step()
	assert.False(t, w.Registry.Alive(e))
	assert.Zero(t, w.Registry.Explosions.Count())
	assert.Zero(t, w.Registry.Meshes.Count()-w.Registry.Count(), "no leaked mesh handles")
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/planet-defense/parameter"
)

func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, uint64(parameter.DefaultSeed), cfg.Seed)
	assert.Equal(t, parameter.StaticLongitudeSteps, cfg.Geometry.StaticSteps)
	assert.Equal(t, parameter.DynamicLongitudeSteps, cfg.Geometry.DynamicSteps)
	assert.InDelta(t, parameter.ShotSpeed, cfg.Shot.Speed, 1e-6)
	assert.InDelta(t, parameter.ShotLifespan, cfg.Shot.Lifespan, 1e-6)
	assert.Equal(t, parameter.AsteroidSpawnIntervalMin, cfg.Asteroid.SpawnIntervalMin)
	assert.Equal(t, parameter.AsteroidSpawnIntervalMax, cfg.Asteroid.SpawnIntervalMax)
	assert.InDelta(t, parameter.StationHealth, cfg.Station.Health, 1e-6)
	assert.Equal(t, parameter.StationRechargeFrames, cfg.Station.RechargeFrames)
	assert.Equal(t, parameter.ShotReward, cfg.Score.ShotReward)
	assert.Equal(t, parameter.ExplosionFrameCount, cfg.Explosion.FrameCount)
	assert.Equal(t, mgl32.Vec3(parameter.CameraEye), cfg.Camera.EyeVec())
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, cfg.Camera.UpVec())
	assert.True(t, cfg.Audio.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Keys)
}

func TestDefaultMatchesLoad(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, cfg, Default())
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "planet-defense.yaml")
	content := `
seed: 42
shot:
  speed: 0.2
  lifespan: 25
station:
  health: 4
  rechargeFrames: 5
camera:
  eye: [1, 2, 3]
audio:
  enabled: false
log:
  level: debug
keys:
  fire: space
  restart: r
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, uint64(42), cfg.Seed)
	assert.InDelta(t, 0.2, cfg.Shot.Speed, 1e-6)
	assert.InDelta(t, 25.0, cfg.Shot.Lifespan, 1e-6)
	assert.InDelta(t, 4.0, cfg.Station.Health, 1e-6)
	assert.Equal(t, 5, cfg.Station.RechargeFrames)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, cfg.Camera.EyeVec())
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "space", cfg.Keys["fire"])
	assert.Equal(t, "r", cfg.Keys["restart"])

	// Untouched keys keep defaults
	assert.InDelta(t, parameter.AsteroidSpeed, cfg.Asteroid.Speed, 1e-6)
	assert.Equal(t, parameter.ApocalypseFrames, cfg.Apocalypse.Frames)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/planet-defense.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"odd steps", "geometry:\n  staticSteps: 7\n"},
		{"negative speed", "shot:\n  speed: -1\n"},
		{"inverted interval", "asteroid:\n  spawnIntervalMin: 50\n  spawnIntervalMax: 10\n"},
		{"short eye", "camera:\n  eye: [1, 2]\n"},
		{"loud volume", "audio:\n  volume: 3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "cfg.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := Load(path)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenePathFor(t *testing.T) {
	assert.Equal(t, "flag.yaml", scenePathFor("flag.yaml", "config.yaml"))
	assert.Equal(t, "config.yaml", scenePathFor("", "config.yaml"))
	assert.Empty(t, scenePathFor("", ""))
}

func TestLoadSceneFromConfiguredPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	data := "ellipsoids:\n  - {kind: planet, a: 0.5, b: 0.5, c: 0.5}\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	sc, err := loadScene(scenePathFor("", path))
	require.NoError(t, err)
	require.Len(t, sc.Ellipsoids, 1)
	assert.Equal(t, "planet", sc.Ellipsoids[0].Kind)

	sc, err = loadScene(scenePathFor("", ""))
	require.NoError(t, err)
	assert.NotEmpty(t, sc.Ellipsoids)

	_, err = loadScene(scenePathFor("", filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, err)
}

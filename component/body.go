package component

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/planet-defense/core"
	"github.com/lixenwraith/planet-defense/mesh"
	"github.com/lixenwraith/planet-defense/vmath"
)

// Body is the single record every simulated entity carries
// Position and Radii are fixed at spawn; Translation accumulates motion
type Body struct {
	Entity core.Entity
	Kind   Kind

	Position    mgl32.Vec3
	Radii       mgl32.Vec3
	Translation mgl32.Vec3
	XAxis       mgl32.Vec3
	YAxis       mgl32.Vec3
	Direction   mgl32.Vec3

	Material Material

	// Health is meaningful only when Kind.HasHealth
	Health    float32
	MaxHealth float32

	Longevity  float32
	Collidable bool
	Mesh       mesh.Handle

	// Explosion sprite frame and size class
	Frame int
	Large bool

	// Label names stations in the HUD
	Label string
}

// Center returns the current world-space center
func (b *Body) Center() mgl32.Vec3 {
	return b.Position.Add(b.Translation)
}

// MeanRadius returns the bounding sphere radius
func (b *Body) MeanRadius() float32 {
	return vmath.MeanRadius(b.Radii)
}

// Translucent reports whether the body renders in the sorted pass
func (b *Body) Translucent() bool {
	return !b.Material.Opaque()
}

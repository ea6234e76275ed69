// Package scene parses and validates scene descriptions
package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Scene is the parsed description of the static world
// JSON input is accepted as well, field names are shared
type Scene struct {
	Triangles  []TriangleSet `yaml:"triangles"`
	Ellipsoids []Ellipsoid   `yaml:"ellipsoids"`
}

// MaterialDef holds lighting terms as loose arrays
type MaterialDef struct {
	Ambient  []float32 `yaml:"ambient"`
	Diffuse  []float32 `yaml:"diffuse"`
	Specular []float32 `yaml:"specular"`
	N        float32   `yaml:"n"`
	Alpha    *float32  `yaml:"alpha"`
	Texture  string    `yaml:"texture"`
}

// TriangleSet is a free-form mesh
type TriangleSet struct {
	Material  MaterialDef `yaml:"material"`
	Vertices  [][]float32 `yaml:"vertices"`
	Normals   [][]float32 `yaml:"normals"`
	UVs       [][]float32 `yaml:"uvs"`
	Triangles [][]uint32  `yaml:"triangles"`
}

// Ellipsoid is an axis-aligned ellipsoid with an optional role tag
type Ellipsoid struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
	A float32 `yaml:"a"`
	B float32 `yaml:"b"`
	C float32 `yaml:"c"`

	MaterialDef `yaml:",inline"`

	// Kind is one of planet, shield, station, moon, highlight; empty means static scenery
	Kind  string `yaml:"kind"`
	Label string `yaml:"label"`
}

// Center returns the ellipsoid center
func (e *Ellipsoid) Center() mgl32.Vec3 {
	return mgl32.Vec3{e.X, e.Y, e.Z}
}

// Radii returns the semi-axes
func (e *Ellipsoid) Radii() mgl32.Vec3 {
	return mgl32.Vec3{e.A, e.B, e.C}
}

// AlphaOr returns the material alpha, or 1 when absent
func (m *MaterialDef) AlphaOr() float32 {
	if m.Alpha == nil {
		return 1
	}
	return *m.Alpha
}

// Vec3s converts loose triples; callers validate first
func Vec3s(in [][]float32) []mgl32.Vec3 {
	if in == nil {
		return nil
	}
	out := make([]mgl32.Vec3, len(in))
	for i, v := range in {
		copy(out[i][:], v)
	}
	return out
}

// Vec2s converts loose pairs; callers validate first
func Vec2s(in [][]float32) []mgl32.Vec2 {
	if in == nil {
		return nil
	}
	out := make([]mgl32.Vec2, len(in))
	for i, v := range in {
		copy(out[i][:], v)
	}
	return out
}

// Indices converts loose index triples; callers validate first
func Indices(in [][]uint32) [][3]uint32 {
	out := make([][3]uint32, len(in))
	for i, tri := range in {
		copy(out[i][:], tri)
	}
	return out
}

// Vec3Or converts a triple, returning def when absent
func Vec3Or(v []float32, def mgl32.Vec3) mgl32.Vec3 {
	if len(v) != 3 {
		return def
	}
	return mgl32.Vec3{v[0], v[1], v[2]}
}

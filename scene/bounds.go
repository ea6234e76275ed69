package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Bounds is the axis-aligned box enclosing all scene geometry
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// ComputeBounds accumulates every triangle vertex and every ellipsoid extent
func ComputeBounds(s *Scene) Bounds {
	inf := float32(math.Inf(1))
	b := Bounds{
		Min: mgl32.Vec3{inf, inf, inf},
		Max: mgl32.Vec3{-inf, -inf, -inf},
	}

	for i := range s.Triangles {
		for _, v := range s.Triangles[i].Vertices {
			b.extend(mgl32.Vec3{v[0], v[1], v[2]})
		}
	}
	for i := range s.Ellipsoids {
		e := &s.Ellipsoids[i]
		c, r := e.Center(), e.Radii()
		b.extend(c.Sub(r))
		b.extend(c.Add(r))
	}

	if b.Min[0] > b.Max[0] {
		return Bounds{}
	}
	return b
}

func (b *Bounds) extend(p mgl32.Vec3) {
	for i := 0; i < 3; i++ {
		b.Min[i] = min(b.Min[i], p[i])
		b.Max[i] = max(b.Max[i], p[i])
	}
}

// ViewDelta is the per-keypress camera step, one hundredth of the scene diagonal
func (b Bounds) ViewDelta() float32 {
	return b.Max.Sub(b.Min).Len() / 100
}

// Center returns the midpoint of the box
func (b Bounds) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

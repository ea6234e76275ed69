package vmath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestMeanRadius(t *testing.T) {
	assert.InDelta(t, 2.0, MeanRadius(mgl32.Vec3{1, 2, 3}), 1e-6)
}

func TestSpheresOverlapIsStrict(t *testing.T) {
	a := mgl32.Vec3{0, 0, 0}
	b := mgl32.Vec3{2, 0, 0}

	assert.False(t, SpheresOverlap(a, 1, b, 1), "touching spheres must not overlap")
	assert.True(t, SpheresOverlap(a, 1, b, 1.01))
	assert.False(t, SpheresOverlap(a, 0.5, b, 0.5))
}

func TestSpherePointOnSphere(t *testing.T) {
	r := NewFastRand(42)
	center := mgl32.Vec3{1, 2, 3}

	for i := 0; i < 200; i++ {
		p := SpherePoint(center, 4, r.Float32(), r.Float32())
		assert.InDelta(t, 4.0, p.Sub(center).Len(), 1e-4)
	}
}

func TestSpherePointPoles(t *testing.T) {
	// v = 0 gives φ = π, the south pole; v = 1 gives the north pole
	south := SpherePoint(mgl32.Vec3{}, 1, 0, 0)
	north := SpherePoint(mgl32.Vec3{}, 1, 0, 1)
	assert.InDelta(t, -1.0, south[1], 1e-6)
	assert.InDelta(t, 1.0, north[1], 1e-6)
}

func TestEllipsoidSurfacePoint(t *testing.T) {
	r := NewFastRand(7)
	radii := mgl32.Vec3{1, 2, 0.5}

	for i := 0; i < 100; i++ {
		p := EllipsoidSurfacePoint(mgl32.Vec3{}, radii, r.Float32(), r.Float32())
		f := p[0]*p[0]/1 + p[1]*p[1]/4 + p[2]*p[2]/0.25
		assert.InDelta(t, 1.0, f, 1e-4)
	}
}

func TestRotateY(t *testing.T) {
	p := RotateY(mgl32.Vec3{1, 5, 0}, math.Pi/2)
	assert.InDelta(t, 0.0, p[0], 1e-6)
	assert.InDelta(t, 5.0, p[1], 1e-6)
	assert.InDelta(t, -1.0, p[2], 1e-6)
	assert.InDelta(t, math.Sqrt(26), p.Len(), 1e-5)
}

func TestDirection(t *testing.T) {
	d := Direction(mgl32.Vec3{1, 1, 1}, mgl32.Vec3{1, 1, 4})
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, d)
	assert.Equal(t, mgl32.Vec3{}, Direction(mgl32.Vec3{1, 1, 1}, mgl32.Vec3{1, 1, 1}))
}

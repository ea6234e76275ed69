package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// MeanRadius averages the three semi-axes, used as the bounding sphere radius
func MeanRadius(radii mgl32.Vec3) float32 {
	return (radii[0] + radii[1] + radii[2]) / 3
}

// SpheresOverlap reports strict overlap of two bounding spheres
// Touching spheres do not overlap
func SpheresOverlap(centerA mgl32.Vec3, radiusA float32, centerB mgl32.Vec3, radiusB float32) bool {
	return centerA.Sub(centerB).Len() < radiusA+radiusB
}

// SpherePoint maps u, v in [0,1) to a uniformly distributed point on a sphere
// θ = 2πu, φ = acos(2v-1)
func SpherePoint(center mgl32.Vec3, radius, u, v float32) mgl32.Vec3 {
	theta := 2 * math.Pi * float64(u)
	phi := math.Acos(2*float64(v) - 1)
	sinPhi := math.Sin(phi)
	return center.Add(mgl32.Vec3{
		float32(sinPhi * math.Cos(theta)),
		float32(math.Cos(phi)),
		float32(sinPhi * math.Sin(theta)),
	}.Mul(radius))
}

// EllipsoidSurfacePoint maps u, v in [0,1) to a point on an axis-aligned ellipsoid surface
func EllipsoidSurfacePoint(center, radii mgl32.Vec3, u, v float32) mgl32.Vec3 {
	unit := SpherePoint(mgl32.Vec3{}, 1, u, v)
	return center.Add(mgl32.Vec3{unit[0] * radii[0], unit[1] * radii[1], unit[2] * radii[2]})
}

// RotateY rotates p about the world Y axis through the origin
func RotateY(p mgl32.Vec3, angle float32) mgl32.Vec3 {
	return mgl32.Rotate3DY(angle).Mul3x1(p)
}

// Direction returns the unit vector from origin toward target
// Zero when the points coincide
func Direction(origin, target mgl32.Vec3) mgl32.Vec3 {
	d := target.Sub(origin)
	if d.Len() == 0 {
		return mgl32.Vec3{}
	}
	return d.Normalize()
}

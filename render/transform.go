package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/planet-defense/component"
	"github.com/lixenwraith/planet-defense/parameter"
)

// ModelTransform composes T(translation)·T(center)·R(axes)·S·T(-center)
// The mesh is authored at Position, so the pivot is the spawn center
func ModelTransform(b *component.Body, highlighted bool) mgl32.Mat4 {
	m := mgl32.Translate3D(-b.Position.X(), -b.Position.Y(), -b.Position.Z())

	if highlighted {
		s := float32(parameter.HighlightScale)
		m = mgl32.Scale3D(s, s, s).Mul4(m)
	}

	m = Rotation(b.XAxis, b.YAxis).Mul4(m)
	m = mgl32.Translate3D(b.Position.X(), b.Position.Y(), b.Position.Z()).Mul4(m)
	m = mgl32.Translate3D(b.Translation.X(), b.Translation.Y(), b.Translation.Z()).Mul4(m)
	return m
}

// Rotation builds the basis matrix whose columns are the body axes
func Rotation(xAxis, yAxis mgl32.Vec3) mgl32.Mat4 {
	zAxis := xAxis.Cross(yAxis)
	if zAxis.Len() == 0 {
		return mgl32.Ident4()
	}
	zAxis = zAxis.Normalize()
	return mgl32.Mat4{
		xAxis[0], xAxis[1], xAxis[2], 0,
		yAxis[0], yAxis[1], yAxis[2], 0,
		zAxis[0], zAxis[1], zAxis[2], 0,
		0, 0, 0, 1,
	}
}

package render

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/planet-defense/component"
)

func TestModelTransformIdentityAxes(t *testing.T) {
	b := &component.Body{
		Position:    mgl32.Vec3{1, 2, 3},
		Translation: mgl32.Vec3{0.5, 0, 0},
		XAxis:       mgl32.Vec3{1, 0, 0},
		YAxis:       mgl32.Vec3{0, 1, 0},
	}
	m := ModelTransform(b, false)

	center := mgl32.TransformCoordinate(b.Position, m)
	assert.True(t, center.ApproxEqualThreshold(mgl32.Vec3{1.5, 2, 3}, 1e-5))

	p := mgl32.TransformCoordinate(mgl32.Vec3{2, 2, 3}, m)
	assert.True(t, p.ApproxEqualThreshold(mgl32.Vec3{2.5, 2, 3}, 1e-5))
}

func TestModelTransformHighlightScalesAboutCenter(t *testing.T) {
	b := &component.Body{
		Position: mgl32.Vec3{1, 0, 0},
		XAxis:    mgl32.Vec3{1, 0, 0},
		YAxis:    mgl32.Vec3{0, 1, 0},
	}
	m := ModelTransform(b, true)

	assert.True(t, mgl32.TransformCoordinate(b.Position, m).ApproxEqualThreshold(b.Position, 1e-5))
	p := mgl32.TransformCoordinate(mgl32.Vec3{2, 0, 0}, m)
	assert.True(t, p.ApproxEqualThreshold(mgl32.Vec3{2.2, 0, 0}, 1e-5))
}

func TestModelTransformRotatesAboutCenter(t *testing.T) {
	// X axis turned to -Z: a quarter turn about Y
	b := &component.Body{
		Position: mgl32.Vec3{0, 0, 2},
		XAxis:    mgl32.Vec3{0, 0, -1},
		YAxis:    mgl32.Vec3{0, 1, 0},
	}
	m := ModelTransform(b, false)

	p := mgl32.TransformCoordinate(mgl32.Vec3{1, 0, 2}, m)
	assert.True(t, p.ApproxEqualThreshold(mgl32.Vec3{0, 0, 1}, 1e-5))
}

func TestRotationDegenerateAxes(t *testing.T) {
	assert.Equal(t, mgl32.Ident4(), Rotation(mgl32.Vec3{1, 0, 0}, mgl32.Vec3{1, 0, 0}))
}

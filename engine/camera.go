package engine

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/planet-defense/parameter"
)

// RotateDirection names a view rotation
type RotateDirection int

const (
	RotateLeft RotateDirection = iota
	RotateRight
	RotateUp
	RotateDown
)

// Camera is a first-person view: a fixed eye whose look direction rotates
type Camera struct {
	Eye     mgl32.Vec3
	Forward mgl32.Vec3 // Unit look direction
	Up      mgl32.Vec3 // Unit, orthogonal to Forward

	FOV        float32
	RotateStep float32
}

// NewCamera builds a camera from eye, look-at point and approximate up
func NewCamera(eye, center, up mgl32.Vec3, fov, rotateStep float32) *Camera {
	c := &Camera{Eye: eye, FOV: fov, RotateStep: rotateStep}
	c.Forward = center.Sub(eye).Normalize()
	c.Up = orthonormalUp(c.Forward, up)
	return c
}

// Right returns the unit vector to the right of the view
func (c *Camera) Right() mgl32.Vec3 {
	return c.Forward.Cross(c.Up).Normalize()
}

// Rotate turns the view by one step
// Left and right turn about Up, up and down pitch about Right
func (c *Camera) Rotate(dir RotateDirection) {
	var rot mgl32.Mat4
	switch dir {
	case RotateLeft:
		rot = mgl32.HomogRotate3D(c.RotateStep, c.Up)
	case RotateRight:
		rot = mgl32.HomogRotate3D(-c.RotateStep, c.Up)
	case RotateUp:
		rot = mgl32.HomogRotate3D(c.RotateStep, c.Right())
	case RotateDown:
		rot = mgl32.HomogRotate3D(-c.RotateStep, c.Right())
	default:
		return
	}
	c.Forward = rot.Mul4x1(c.Forward.Vec4(0)).Vec3().Normalize()
	c.Up = orthonormalUp(c.Forward, rot.Mul4x1(c.Up.Vec4(0)).Vec3())
}

// Move translates the eye along the look direction
func (c *Camera) Move(distance float32) {
	c.Eye = c.Eye.Add(c.Forward.Mul(distance))
}

// Center returns a point one unit ahead of the eye
func (c *Camera) Center() mgl32.Vec3 {
	return c.Eye.Add(c.Forward)
}

// AimPoint returns the firing target at the given range along the view
func (c *Camera) AimPoint(distance float32) mgl32.Vec3 {
	return c.Eye.Add(c.Forward.Mul(distance))
}

// View returns the world-to-camera matrix
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.Center(), c.Up)
}

// Projection returns a perspective matrix for the given aspect ratio
func (c *Camera) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, parameter.CameraNear, parameter.CameraFar)
}

// orthonormalUp removes the forward component from up
func orthonormalUp(forward, up mgl32.Vec3) mgl32.Vec3 {
	u := up.Sub(forward.Mul(up.Dot(forward)))
	if u.Len() < 1e-6 {
		// Looking straight along up, pick any perpendicular
		u = forward.Cross(mgl32.Vec3{1, 0, 0})
		if u.Len() < 1e-6 {
			u = forward.Cross(mgl32.Vec3{0, 0, 1})
		}
	}
	return u.Normalize()
}

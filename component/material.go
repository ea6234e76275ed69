package component

import "github.com/go-gl/mathgl/mgl32"

// Material carries Blinn-Phong lighting terms and a texture identifier
// Alpha below 1 marks the owner as translucent for depth sorting
type Material struct {
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
	Shininess float32
	Alpha     float32
	Texture   string
}

// Opaque reports whether the material renders in the opaque pass
func (m Material) Opaque() bool {
	return m.Alpha >= 1
}

package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/planet-defense/component"
	"github.com/lixenwraith/planet-defense/core"
	"github.com/lixenwraith/planet-defense/engine"
	"github.com/lixenwraith/planet-defense/mesh"
	"github.com/lixenwraith/planet-defense/parameter"
)

// BlendMode selects how texture and lighting combine, cycled by the player
type BlendMode int

const (
	// BlendLitTexture modulates the texture by lighting and honors material alpha
	BlendLitTexture BlendMode = iota
	// BlendTexture draws the unlit texture with material alpha
	BlendTexture
	// BlendTextureOpaque draws the unlit texture ignoring material alpha
	BlendTextureOpaque
	// BlendFlat draws lighting only, fully opaque
	BlendFlat
)

func (m BlendMode) String() string {
	switch m {
	case BlendLitTexture:
		return "lit-texture"
	case BlendTexture:
		return "texture"
	case BlendTextureOpaque:
		return "texture-opaque"
	case BlendFlat:
		return "flat"
	}
	return "unknown"
}

// DrawCommand is one body ready for a renderer
type DrawCommand struct {
	Entity   core.Entity
	Kind     component.Kind
	Model    mgl32.Mat4
	Material component.Material
	Mesh     mesh.Handle
	Texture  string
	Frame    int // Explosion sprite frame

	// World-space bounding sphere after the model transform
	Center mgl32.Vec3
	Radius float32
}

// Frame is everything a renderer needs for one picture
// Opaque commands come first in scene order, then translucent back to front
type Frame struct {
	View       mgl32.Mat4
	Projection mgl32.Mat4
	Eye        mgl32.Vec3
	Light      mgl32.Vec3
	BlendMode  BlendMode
	Commands   []DrawCommand
	Opaque     int // Commands[:Opaque] are the opaque pass

	SpriteFrames int // Explosion sprite sheet length
}

// MeshSource resolves mesh handles, satisfied by mesh.Arena
type MeshSource interface {
	Get(h mesh.Handle) (*mesh.Mesh, bool)
}

// Renderer draws a frame; implementations own their output surface
type Renderer interface {
	Draw(f *Frame, meshes MeshSource) error
}

// BuildFrame snapshots the world into draw commands for the given viewport aspect
func BuildFrame(w *engine.World, aspect float32) *Frame {
	cam := w.Camera
	opaque, translucent := Partition(w.Registry.Bodies.Values(), cam.Eye)

	var selected core.Entity
	if slot, ok := w.State.SelectedSlot(); ok {
		selected = slot.Entity
	}

	f := &Frame{
		View:       cam.View(),
		Projection: cam.Projection(aspect),
		Eye:        cam.Eye,
		Light:      cam.Eye.Add(cam.Up.Mul(2)),
		BlendMode:  BlendMode(w.State.BlendMode),
		Commands:   make([]DrawCommand, 0, len(opaque)+len(translucent)),
		Opaque:     len(opaque),

		SpriteFrames: w.Config.Explosion.FrameCount,
	}
	for _, b := range opaque {
		f.Commands = append(f.Commands, command(b, b.Entity == selected))
	}
	for _, b := range translucent {
		f.Commands = append(f.Commands, command(b, b.Entity == selected))
	}
	return f
}

func command(b *component.Body, highlighted bool) DrawCommand {
	model := ModelTransform(b, highlighted)
	radius := b.MeanRadius()
	if highlighted {
		radius *= parameter.HighlightScale
	}
	return DrawCommand{
		Entity:   b.Entity,
		Kind:     b.Kind,
		Model:    model,
		Material: b.Material,
		Mesh:     b.Mesh,
		Texture:  b.Material.Texture,
		Frame:    b.Frame,
		Center:   mgl32.TransformCoordinate(b.Position, model),
		Radius:   radius,
	}
}

package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/planet-defense/component"
	"github.com/lixenwraith/planet-defense/mesh"
	"github.com/lixenwraith/planet-defense/parameter"
)

// TerminalRenderer draws frames as shaded background cells on a tcell screen
// Each terminal cell is CellAspect times taller than wide; the bottom HUDRows rows hold the HUD
type TerminalRenderer struct {
	screen tcell.Screen
	hud    *HUD

	width, height int
	color         []RGB
	depth         []float32
}

// NewTerminalRenderer creates a renderer on an initialized screen
func NewTerminalRenderer(screen tcell.Screen, hud *HUD) *TerminalRenderer {
	r := &TerminalRenderer{screen: screen, hud: hud}
	r.Resize()
	return r
}

// Resize re-reads the screen size
func (r *TerminalRenderer) Resize() {
	r.width, r.height = r.screen.Size()
	n := r.width * r.viewHeight()
	if cap(r.color) < n {
		r.color = make([]RGB, n)
		r.depth = make([]float32, n)
	}
	r.color = r.color[:n]
	r.depth = r.depth[:n]
}

func (r *TerminalRenderer) viewHeight() int {
	return max(r.height-parameter.HUDRows, 0)
}

// Aspect returns the viewport width over height in square units
func (r *TerminalRenderer) Aspect() float32 {
	vh := r.viewHeight()
	if vh == 0 || r.width == 0 {
		return 1
	}
	return float32(r.width) / (float32(vh) * parameter.CellAspect)
}

// Draw composes the frame and the HUD and shows the screen
func (r *TerminalRenderer) Draw(f *Frame, meshes MeshSource) error {
	if w, h := r.screen.Size(); w != r.width || h != r.height {
		r.Resize()
	}

	inf := float32(math.Inf(1))
	for i := range r.color {
		r.color[i] = RGBBlack
		r.depth[i] = inf
	}

	pv := f.Projection.Mul4(f.View)
	for i := range f.Commands {
		cmd := &f.Commands[i]
		write := i < f.Opaque
		if cmd.Kind == component.KindSceneStatic {
			if m, ok := meshes.Get(cmd.Mesh); ok {
				r.drawMesh(f, cmd, m, pv, write)
			}
			continue
		}
		r.drawSphere(f, cmd, pv, write)
	}

	r.flush()
	return nil
}

// project maps a world point to fractional cell coordinates and eye depth
func (r *TerminalRenderer) project(pv mgl32.Mat4, p mgl32.Vec3) (x, y, w float32, ok bool) {
	clip := pv.Mul4x1(p.Vec4(1))
	w = clip.W()
	if w <= parameter.CameraNear {
		return 0, 0, 0, false
	}
	ndcX, ndcY := clip.X()/w, clip.Y()/w
	x = (ndcX + 1) / 2 * float32(r.width)
	y = (1 - ndcY) / 2 * float32(r.viewHeight())
	return x, y, w, true
}

// surface applies the blend mode to a lit color
func surface(f *Frame, cmd *DrawCommand, lit RGB) (RGB, float64) {
	tex := TextureColor(cmd.Texture)
	if cmd.Kind == component.KindExplosion {
		tex = spriteColor(tex, cmd.Frame, f.SpriteFrames)
	}
	alpha := float64(cmd.Material.Alpha)

	switch f.BlendMode {
	case BlendTexture:
		return tex, alpha
	case BlendTextureOpaque:
		return tex, 1
	case BlendFlat:
		return lit, 1
	}
	return Modulate(tex, lit), alpha
}

// shade evaluates ambient, Lambert diffuse and Blinn-Phong specular terms
func shade(mat *component.Material, normal, light, view mgl32.Vec3) RGB {
	lambert := max(0, normal.Dot(light))
	half := light.Add(view)
	var highlight float32
	if half.Len() > 0 {
		highlight = float32(math.Pow(float64(max(0, normal.Dot(half.Normalize()))), float64(mat.Shininess)))
	}
	c := mat.Ambient.Add(mat.Diffuse.Mul(lambert)).Add(mat.Specular.Mul(highlight))
	return FromVec3(c)
}

func (r *TerminalRenderer) plot(x, y int, z float32, c RGB, alpha float64, write bool) {
	if x < 0 || y < 0 || x >= r.width || y >= r.viewHeight() {
		return
	}
	i := y*r.width + x
	if z >= r.depth[i] {
		return
	}
	r.color[i] = Blend(r.color[i], c, alpha)
	if write {
		r.depth[i] = z
	}
}

// drawSphere shades the projected bounding sphere cell by cell
func (r *TerminalRenderer) drawSphere(f *Frame, cmd *DrawCommand, pv mgl32.Mat4, write bool) {
	cx, cy, w, ok := r.project(pv, cmd.Center)
	if !ok {
		return
	}

	// Projection[5] is the focal length in NDC units
	ry := cmd.Radius * f.Projection[5] / w * float32(r.viewHeight()) / 2
	rx := ry * parameter.CellAspect

	// View-space light keeps the per-cell normal math in screen axes
	centerView := f.View.Mul4x1(cmd.Center.Vec4(1)).Vec3()
	lightView := f.View.Mul4x1(f.Light.Vec4(1)).Vec3()
	light := lightView.Sub(centerView)
	if light.Len() > 0 {
		light = light.Normalize()
	}
	view := mgl32.Vec3{0, 0, 1}

	if ry < parameter.MinProjectedRadius {
		c, a := surface(f, cmd, shade(&cmd.Material, view, light, view))
		r.plot(int(cx), int(cy), w, c, a, write)
		return
	}

	minX, maxX := max(0, int(cx-rx-1)), min(r.width-1, int(cx+rx+1))
	minY, maxY := max(0, int(cy-ry-1)), min(r.viewHeight()-1, int(cy+ry+1))
	for sy := minY; sy <= maxY; sy++ {
		for sx := minX; sx <= maxX; sx++ {
			nx := (float32(sx) + 0.5 - cx) / rx
			ny := (float32(sy) + 0.5 - cy) / ry
			d2 := nx*nx + ny*ny
			if d2 > 1 {
				continue
			}
			nz := float32(math.Sqrt(float64(1 - d2)))
			normal := mgl32.Vec3{nx, -ny, nz}
			c, a := surface(f, cmd, shade(&cmd.Material, normal, light, view))
			r.plot(sx, sy, w-nz*cmd.Radius, c, a, write)
		}
	}
}

// drawMesh rasterizes a triangle set with flat shading per triangle
func (r *TerminalRenderer) drawMesh(f *Frame, cmd *DrawCommand, m *mesh.Mesh, pv mgl32.Mat4, write bool) {
	for _, tri := range m.Triangles {
		var world [3]mgl32.Vec3
		var sx, sy, sw [3]float32
		visible := true
		for k, idx := range tri {
			world[k] = mgl32.TransformCoordinate(m.Vertices[idx], cmd.Model)
			var ok bool
			if sx[k], sy[k], sw[k], ok = r.project(pv, world[k]); !ok {
				visible = false
				break
			}
		}
		if !visible {
			continue
		}

		normal := world[1].Sub(world[0]).Cross(world[2].Sub(world[0]))
		if normal.Len() == 0 {
			continue
		}
		normal = normal.Normalize()
		centroid := world[0].Add(world[1]).Add(world[2]).Mul(1.0 / 3)
		view := f.Eye.Sub(centroid).Normalize()
		if normal.Dot(view) < 0 {
			normal = normal.Mul(-1)
		}
		light := f.Light.Sub(centroid).Normalize()
		c, a := surface(f, cmd, shade(&cmd.Material, normal, light, view))

		area := (sx[1]-sx[0])*(sy[2]-sy[0]) - (sx[2]-sx[0])*(sy[1]-sy[0])
		if area == 0 {
			continue
		}
		minX := max(0, int(min(sx[0], sx[1], sx[2])))
		maxX := min(r.width-1, int(max(sx[0], sx[1], sx[2])))
		minY := max(0, int(min(sy[0], sy[1], sy[2])))
		maxY := min(r.viewHeight()-1, int(max(sy[0], sy[1], sy[2])))
		for y := minY; y <= maxY; y++ {
			for x := minX; x <= maxX; x++ {
				px, py := float32(x)+0.5, float32(y)+0.5
				w0 := ((sx[1]-px)*(sy[2]-py) - (sx[2]-px)*(sy[1]-py)) / area
				w1 := ((sx[2]-px)*(sy[0]-py) - (sx[0]-px)*(sy[2]-py)) / area
				w2 := 1 - w0 - w1
				if w0 < 0 || w1 < 0 || w2 < 0 {
					continue
				}
				r.plot(x, y, w0*sw[0]+w1*sw[1]+w2*sw[2], c, a, write)
			}
		}
	}
}

func (r *TerminalRenderer) flush() {
	vh := r.viewHeight()
	for y := 0; y < vh; y++ {
		for x := 0; x < r.width; x++ {
			style := tcell.StyleDefault.Background(r.color[y*r.width+x].Tcell())
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}

	if r.hud != nil && r.height >= parameter.HUDRows {
		hudStyle := tcell.StyleDefault.Foreground(tcell.NewRGBColor(200, 200, 210)).Background(tcell.ColorBlack)
		for i, line := range r.hud.Lines() {
			y := vh + i
			x := 0
			for _, ch := range line {
				if x >= r.width {
					break
				}
				r.screen.SetContent(x, y, ch, nil, hudStyle)
				x++
			}
			for ; x < r.width; x++ {
				r.screen.SetContent(x, y, ' ', nil, hudStyle)
			}
		}
	}
	r.screen.Show()
}

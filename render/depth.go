package render

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/planet-defense/component"
)

// Partition splits bodies into draw passes
// Opaque bodies keep input order; translucent bodies are ordered farthest first by
// eye-space Z distance, ties keeping input order
func Partition(bodies []*component.Body, eye mgl32.Vec3) (opaque, translucent []*component.Body) {
	opaque = make([]*component.Body, 0, len(bodies))
	for _, b := range bodies {
		if b.Material.Opaque() {
			opaque = append(opaque, b)
		} else {
			translucent = append(translucent, b)
		}
	}

	sort.SliceStable(translucent, func(i, j int) bool {
		return depth(translucent[i], eye) > depth(translucent[j], eye)
	})
	return opaque, translucent
}

func depth(b *component.Body, eye mgl32.Vec3) float32 {
	d := eye.Z() - b.Center().Z()
	if d < 0 {
		return -d
	}
	return d
}

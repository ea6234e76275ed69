// Package mesh generates and owns triangle meshes addressed by stable handles
package mesh

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Sentinel errors
var (
	ErrInvalidSteps = errors.New("invalid longitude steps")
	ErrOddSteps     = fmt.Errorf("%w: must be even", ErrInvalidSteps)
	ErrTooFewSteps  = fmt.Errorf("%w: must be at least 4", ErrInvalidSteps)
	ErrInvalidRadii = errors.New("ellipsoid radii must be positive")
	ErrInvalidMesh  = errors.New("invalid triangle mesh")
)

// Mesh is an indexed triangle list with per-vertex normals and texture coordinates
type Mesh struct {
	Vertices  []mgl32.Vec3
	Normals   []mgl32.Vec3
	UVs       []mgl32.Vec2
	Triangles [][3]uint32
}

// VertexCount returns the number of vertices
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// FromTriangles builds a mesh from loose arrays, validating lengths and index bounds
// Missing normals or uvs are zero filled
func FromTriangles(vertices, normals []mgl32.Vec3, uvs []mgl32.Vec2, triangles [][3]uint32) (*Mesh, error) {
	if len(vertices) == 0 {
		return nil, fmt.Errorf("%w: no vertices", ErrInvalidMesh)
	}
	if len(triangles) == 0 {
		return nil, fmt.Errorf("%w: no triangles", ErrInvalidMesh)
	}
	if normals != nil && len(normals) != len(vertices) {
		return nil, fmt.Errorf("%w: %d normals for %d vertices", ErrInvalidMesh, len(normals), len(vertices))
	}
	if uvs != nil && len(uvs) != len(vertices) {
		return nil, fmt.Errorf("%w: %d uvs for %d vertices", ErrInvalidMesh, len(uvs), len(vertices))
	}
	for i, tri := range triangles {
		for _, idx := range tri {
			if int(idx) >= len(vertices) {
				return nil, fmt.Errorf("%w: triangle %d references vertex %d of %d", ErrInvalidMesh, i, idx, len(vertices))
			}
		}
	}

	m := &Mesh{
		Vertices:  append([]mgl32.Vec3(nil), vertices...),
		Triangles: append([][3]uint32(nil), triangles...),
	}
	if normals != nil {
		m.Normals = append([]mgl32.Vec3(nil), normals...)
	} else {
		m.Normals = make([]mgl32.Vec3, len(vertices))
	}
	if uvs != nil {
		m.UVs = append([]mgl32.Vec2(nil), uvs...)
	} else {
		m.UVs = make([]mgl32.Vec2, len(vertices))
	}
	return m, nil
}

package mesh

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Generate tessellates an axis-aligned ellipsoid on a latitude/longitude grid
//
// Layout: south pole, N/2-1 rings of N vertices (no seam duplicate), north pole.
// Vertex count is 2 + N*(N/2-1), triangle count is 2*N*(N/2-1).
// Normals are the unnormalized gradient (2x/a², 2y/b², 2z/c²) of the surface.
func Generate(center, radii mgl32.Vec3, longitudeSteps int) (*Mesh, error) {
	if longitudeSteps < 4 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewSteps, longitudeSteps)
	}
	if longitudeSteps%2 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrOddSteps, longitudeSteps)
	}
	if radii[0] <= 0 || radii[1] <= 0 || radii[2] <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidRadii, radii)
	}

	n := longitudeSteps
	rings := n/2 - 1
	increment := 2 * math.Pi / float64(n)
	vertexCount := 2 + n*rings

	m := &Mesh{
		Vertices:  make([]mgl32.Vec3, 0, vertexCount),
		Normals:   make([]mgl32.Vec3, 0, vertexCount),
		UVs:       make([]mgl32.Vec2, 0, vertexCount),
		Triangles: make([][3]uint32, 0, 2*n*rings),
	}

	addVertex := func(x, y, z float64, u, v float32) {
		local := mgl32.Vec3{float32(x) * radii[0], float32(y) * radii[1], float32(z) * radii[2]}
		m.Vertices = append(m.Vertices, center.Add(local))
		m.Normals = append(m.Normals, mgl32.Vec3{
			2 * local[0] / (radii[0] * radii[0]),
			2 * local[1] / (radii[1] * radii[1]),
			2 * local[2] / (radii[2] * radii[2]),
		})
		m.UVs = append(m.UVs, mgl32.Vec2{u, v})
	}

	// South pole
	addVertex(0, -1, 0, 0.5, 0)

	for k := 1; k <= rings; k++ {
		lat := -math.Pi/2 + float64(k)*increment
		cosLat, sinLat := math.Cos(lat), math.Sin(lat)
		v := float32(k) / float32(n/2)
		for j := 0; j < n; j++ {
			long := float64(j) * increment
			addVertex(cosLat*math.Sin(long), sinLat, cosLat*math.Cos(long), float32(j)/float32(n), v)
		}
	}

	// North pole
	addVertex(0, 1, 0, 0.5, 1)

	south := uint32(0)
	north := uint32(1 + rings*n)

	// South fan
	for j := 0; j < n; j++ {
		m.Triangles = append(m.Triangles, [3]uint32{south, ringIndex(0, j, n), ringIndex(0, (j+1)%n, n)})
	}

	// Strips between adjacent rings
	for r := 0; r < rings-1; r++ {
		for j := 0; j < n; j++ {
			ll := ringIndex(r, j, n)
			lr := ringIndex(r, (j+1)%n, n)
			ul := ll + uint32(n)
			ur := lr + uint32(n)
			m.Triangles = append(m.Triangles, [3]uint32{ll, ul, ur}, [3]uint32{ll, ur, lr})
		}
	}

	// North fan
	for j := 0; j < n; j++ {
		m.Triangles = append(m.Triangles, [3]uint32{ringIndex(rings-1, j, n), north, ringIndex(rings-1, (j+1)%n, n)})
	}

	return m, nil
}

// ringIndex maps ring r (0-based from the south) and column j to a vertex index
func ringIndex(r, j, n int) uint32 {
	return uint32(1 + r*n + j)
}

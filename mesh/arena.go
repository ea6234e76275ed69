package mesh

// Handle addresses a mesh in an Arena
// Zero is never issued
type Handle uint32

// Arena owns meshes by handle
// Handles are monotonic and never reissued until Clear, so a released handle stays dead
type Arena struct {
	meshes  map[Handle]*Mesh
	handles []Handle // Live handles in insertion order
	next    Handle
}

// NewArena creates an empty arena
func NewArena() *Arena {
	return &Arena{
		meshes:  make(map[Handle]*Mesh),
		handles: make([]Handle, 0, 64),
		next:    1,
	}
}

// Add stores a mesh and returns its handle
func (a *Arena) Add(m *Mesh) Handle {
	h := a.next
	a.next++
	a.meshes[h] = m
	a.handles = append(a.handles, h)
	return h
}

// Get returns the mesh for a live handle
func (a *Arena) Get(h Handle) (*Mesh, bool) {
	m, ok := a.meshes[h]
	return m, ok
}

// Release tombstones a handle; releasing a dead handle is a no-op
func (a *Arena) Release(h Handle) bool {
	if _, ok := a.meshes[h]; !ok {
		return false
	}
	delete(a.meshes, h)
	for i, live := range a.handles {
		if live == h {
			a.handles = append(a.handles[:i], a.handles[i+1:]...)
			break
		}
	}
	return true
}

// Handles returns a copy of the live handles in insertion order
func (a *Arena) Handles() []Handle {
	result := make([]Handle, len(a.handles))
	copy(result, a.handles)
	return result
}

// Count returns the number of live meshes
func (a *Arena) Count() int {
	return len(a.meshes)
}

// Clear drops every mesh and restarts handle numbering
func (a *Arena) Clear() {
	a.meshes = make(map[Handle]*Mesh)
	a.handles = make([]Handle, 0, 64)
	a.next = 1
}

package engine

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/planet-defense/component"
	"github.com/lixenwraith/planet-defense/core"
	"github.com/lixenwraith/planet-defense/mesh"
)

// ErrInvalidBody rejects bodies that violate spawn invariants
var ErrInvalidBody = errors.New("invalid body")

// Registry is the authoritative entity collection
// Kind subsets share body pointers with the master store and never own entities
type Registry struct {
	nextEntityID core.Entity

	Bodies     *Store[*component.Body]
	Asteroids  *Store[*component.Body]
	Shots      *Store[*component.Body]
	Explosions *Store[*component.Body]
	Stations   *Store[*component.Body]

	Meshes *mesh.Arena
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		nextEntityID: 1,
		Bodies:       NewStore[*component.Body](),
		Asteroids:    NewStore[*component.Body](),
		Shots:        NewStore[*component.Body](),
		Explosions:   NewStore[*component.Body](),
		Stations:     NewStore[*component.Body](),
		Meshes:       mesh.NewArena(),
	}
}

// subset returns the kind-specific view, nil for untracked kinds
func (r *Registry) subset(k component.Kind) *Store[*component.Body] {
	switch k {
	case component.KindAsteroid:
		return r.Asteroids
	case component.KindShot:
		return r.Shots
	case component.KindExplosion:
		return r.Explosions
	case component.KindStation:
		return r.Stations
	}
	return nil
}

// Spawn assigns an entity and mesh handle to the body and indexes it
func (r *Registry) Spawn(b *component.Body, m *mesh.Mesh) (core.Entity, error) {
	if b.Radii[0] <= 0 || b.Radii[1] <= 0 || b.Radii[2] <= 0 {
		return 0, fmt.Errorf("%w: %s radii %v", ErrInvalidBody, b.Kind, b.Radii)
	}
	if m == nil {
		return 0, fmt.Errorf("%w: %s without mesh", ErrInvalidBody, b.Kind)
	}

	e := r.nextEntityID
	r.nextEntityID++

	b.Entity = e
	b.Mesh = r.Meshes.Add(m)
	r.Bodies.Set(e, b)
	if sub := r.subset(b.Kind); sub != nil {
		sub.Set(e, b)
	}
	return e, nil
}

// Get returns the live body for an entity
func (r *Registry) Get(e core.Entity) (*component.Body, bool) {
	return r.Bodies.Get(e)
}

// Alive reports whether the entity is still registered
func (r *Registry) Alive(e core.Entity) bool {
	return r.Bodies.Has(e)
}

// Destroy unregisters an entity and releases its mesh
// Returns false for unknown or already destroyed entities
func (r *Registry) Destroy(e core.Entity) bool {
	b, ok := r.Bodies.Get(e)
	if !ok {
		return false
	}
	if sub := r.subset(b.Kind); sub != nil {
		sub.Remove(e)
	}
	r.Meshes.Release(b.Mesh)
	r.Bodies.Remove(e)
	return true
}

// DestroyBatch unregisters many entities in one pass, returning how many were live
func (r *Registry) DestroyBatch(entities []core.Entity) int {
	live := make([]core.Entity, 0, len(entities))
	for _, e := range entities {
		if b, ok := r.Bodies.Get(e); ok {
			r.Meshes.Release(b.Mesh)
			live = append(live, e)
		}
	}
	r.Asteroids.RemoveBatch(live)
	r.Shots.RemoveBatch(live)
	r.Explosions.RemoveBatch(live)
	r.Stations.RemoveBatch(live)
	r.Bodies.RemoveBatch(live)
	return len(live)
}

// Collidables returns a snapshot of collidable bodies, asteroids included
func (r *Registry) Collidables() []*component.Body {
	result := make([]*component.Body, 0, r.Bodies.Count())
	for _, b := range r.Bodies.Values() {
		if b.Collidable {
			result = append(result, b)
		}
	}
	return result
}

// Count returns the number of live entities
func (r *Registry) Count() int {
	return r.Bodies.Count()
}

// Clear removes every entity and mesh and restarts numbering
func (r *Registry) Clear() {
	r.nextEntityID = 1
	r.Bodies.Clear()
	r.Asteroids.Clear()
	r.Shots.Clear()
	r.Explosions.Clear()
	r.Stations.Clear()
	r.Meshes.Clear()
}

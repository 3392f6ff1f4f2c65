// Package entity provides the entity records of the simulation, the ordered
// registries that own them, the countdown timers they tick, and the closed
// kind tables describing each enemy and coin variant.
package entity

// Registry is an insertion-ordered collection of entities of one kind.
// Entities are held by pointer and removed by identity.
type Registry[T any] struct {
	items []*T
}

// NewRegistry creates an empty registry with the given capacity hint.
func NewRegistry[T any](capacity int) *Registry[T] {
	return &Registry[T]{items: make([]*T, 0, capacity)}
}

// Add appends an entity.
func (r *Registry[T]) Add(e *T) {
	r.items = append(r.items, e)
}

// Remove deletes the given entity and reports whether it was present.
func (r *Registry[T]) Remove(e *T) bool {
	for i, item := range r.items {
		if item == e {
			copy(r.items[i:], r.items[i+1:])
			r.items[len(r.items)-1] = nil
			r.items = r.items[:len(r.items)-1]
			return true
		}
	}
	return false
}

// RemoveWhere deletes every entity matching pred and returns how many were
// removed. Each entity is visited exactly once, in insertion order.
func (r *Registry[T]) RemoveWhere(pred func(*T) bool) int {
	kept := r.items[:0]
	for _, item := range r.items {
		if !pred(item) {
			kept = append(kept, item)
		}
	}
	removed := len(r.items) - len(kept)
	// Clear the tail so removed entities can be collected
	for i := len(kept); i < len(r.items); i++ {
		r.items[i] = nil
	}
	r.items = kept
	return removed
}

// Snapshot returns a copy of the current entity list.
// Callers may add or remove entities while ranging over it.
func (r *Registry[T]) Snapshot() []*T {
	out := make([]*T, len(r.items))
	copy(out, r.items)
	return out
}

// Each calls fn for every entity in insertion order.
// fn must not add or remove entities; use Snapshot for that.
func (r *Registry[T]) Each(fn func(*T)) {
	for _, item := range r.items {
		fn(item)
	}
}

// Contains reports whether e is in the registry.
func (r *Registry[T]) Contains(e *T) bool {
	for _, item := range r.items {
		if item == e {
			return true
		}
	}
	return false
}

// Len returns the number of entities.
func (r *Registry[T]) Len() int {
	return len(r.items)
}

// Clear removes all entities.
func (r *Registry[T]) Clear() {
	for i := range r.items {
		r.items[i] = nil
	}
	r.items = r.items[:0]
}

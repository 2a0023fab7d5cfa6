// Package assets maps opaque sprite handles to renderer-owned resources.
// Bodies store only a SpriteID; the resource itself lives in one shared
// Registry and is never duplicated per body.
package assets

import "github.com/kamstrup/intmap"

// SpriteID is an opaque handle to a sprite registered with a Registry.
// The zero value is never issued and means "no sprite".
type SpriteID uint32

// Registry owns the sprite table shared by all bodies. T is whatever the
// renderer uses as its image type; the simulation core never inspects it.
type Registry[T any] struct {
	sprites *intmap.Map[SpriteID, T]
	next    SpriteID
}

// NewRegistry creates an empty sprite registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		sprites: intmap.New[SpriteID, T](16),
	}
}

// Register stores the resource and returns its handle.
func (r *Registry[T]) Register(sprite T) SpriteID {
	r.next++
	r.sprites.Put(r.next, sprite)
	return r.next
}

// Lookup resolves a handle to its resource.
func (r *Registry[T]) Lookup(id SpriteID) (T, bool) {
	return r.sprites.Get(id)
}

// Len returns the number of registered sprites.
func (r *Registry[T]) Len() int {
	return r.sprites.Len()
}

// Package handle mints opaque references to host-owned objects and resolves
// them back. Callers outside the store only ever hold a Handle; the object
// behind it never crosses the API boundary.
package handle

import (
	"sync"

	"github.com/google/uuid"
)

// Handle is an opaque reference to a host-owned object. It is comparable and
// carries no inspectable state beyond its identity.
type Handle struct {
	id uuid.UUID
}

// Nil is the zero Handle; it never resolves.
var Nil = Handle{}

// IsNil returns true for the zero Handle
func (h Handle) IsNil() bool {
	return h.id == uuid.Nil
}

// String returns the handle identity for diagnostics
func (h Handle) String() string {
	return h.id.String()
}

// Registry owns the mapping from handles to live objects
type Registry struct {
	mu      sync.RWMutex
	objects map[Handle]interface{}
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		objects: make(map[Handle]interface{}),
	}
}

// Register stores obj and returns a fresh Handle for it
func (r *Registry) Register(obj interface{}) Handle {
	h := Handle{id: uuid.New()}
	r.mu.Lock()
	r.objects[h] = obj
	r.mu.Unlock()
	return h
}

// Resolve returns the object behind h, or false if h is unknown or released
func (r *Registry) Resolve(h Handle) (interface{}, bool) {
	r.mu.RLock()
	obj, ok := r.objects[h]
	r.mu.RUnlock()
	return obj, ok
}

// Release drops the object behind h. Releasing an unknown handle is a no-op.
func (r *Registry) Release(h Handle) {
	r.mu.Lock()
	delete(r.objects, h)
	r.mu.Unlock()
}

// Len returns the number of live handles
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.objects)
}

package lookout

import "fmt"

// Registry assigns each ComponentType a dense, stable ComponentID on first
// use. Ids are never reused. A Registry is shared by every engine of a world
// and is not reset by Engine.Dispose.
type Registry struct {
	ids   map[ComponentType]ComponentID
	types []ComponentType
}

func newRegistry() *Registry {
	return &Registry{ids: make(map[ComponentType]ComponentID)}
}

// Register returns the id of t, allocating the next one if t is new.
func (r *Registry) Register(t ComponentType) ComponentID {
	if t == nil {
		panic("lookout: cannot register a nil component type")
	}
	t = canonicalType(t)
	if id, ok := r.ids[t]; ok {
		return id
	}
	id := ComponentID(len(r.types))
	r.ids[t] = id
	r.types = append(r.types, t)
	return id
}

// ID looks up t without registering it.
func (r *Registry) ID(t ComponentType) (ComponentID, bool) {
	if t == nil {
		return 0, false
	}
	id, ok := r.ids[canonicalType(t)]
	return id, ok
}

// Type returns the ComponentType registered under id.
func (r *Registry) Type(id ComponentID) ComponentType {
	if int(id) >= len(r.types) {
		panic(fmt.Sprintf("lookout: component id %d not registered", id))
	}
	return r.types[id]
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	return len(r.types)
}

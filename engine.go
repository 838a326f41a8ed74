package lookout

import (
	"fmt"
	"iter"
)

var _ Engine = &engine{}

// engine caches one view per canonical query and keeps every cached view
// consistent with component and entity state as events arrive.
//
// An engine is not safe for concurrent use.
type engine struct {
	registry *Registry
	source   Source
	bus      *EventBus
	unsubs   []func()

	masks   maskStore
	views   *SimpleCache[*view]
	reverse map[ComponentID][]QueryKey

	debug    bool
	disposed bool
}

func newEngine(reg *Registry, source Source, bus *EventBus) *engine {
	e := &engine{
		registry: reg,
		source:   source,
		bus:      bus,
		masks:    newMaskStore(reg),
		views: &SimpleCache[*view]{
			itemIndices: make(map[QueryKey]int),
			maxCapacity: Config.cacheCapacity,
		},
		reverse: make(map[ComponentID][]QueryKey),
		debug:   Config.debug,
	}
	if bus != nil {
		e.unsubs = append(e.unsubs,
			Subscribe(bus, e.componentEnabled),
			Subscribe(bus, e.componentDisabled),
			Subscribe(bus, e.entityEnabled),
			Subscribe(bus, e.entityDisabled),
			Subscribe(bus, e.entityRemoved),
		)
	}
	return e
}

func (e *engine) Registry() *Registry {
	return e.registry
}

// Len returns the number of cached views.
func (e *engine) Len() int {
	return e.views.Len()
}

// View returns the shared view for the given component types, building and
// populating it on first request. Any permutation of the same types returns
// the same view.
func (e *engine) View(types ...ComponentType) (View, error) {
	if e.disposed {
		return nil, EngineDisposedError{}
	}
	q, err := compileQuery(e.registry, types)
	if err != nil {
		return nil, err
	}
	if idx, ok := e.views.GetIndex(q.key); ok {
		return e.views.GetItem(idx), nil
	}
	if e.views.Len() >= e.views.maxCapacity {
		return nil, CacheCapacityError{Capacity: e.views.maxCapacity}
	}

	v := newView(q)
	if e.source != nil {
		for ent := range e.source.Entities() {
			rec := e.masks.record(ent)
			if rec.matches(q) {
				v.set(ent, q.materialize(ent))
			}
		}
	}
	e.register(v)
	Config.logger.Printf("view %q built with %d entities", q.key, v.Size())
	return v, nil
}

// register caches v and indexes it under each of its component ids. The
// caller has already checked the cache, so a duplicate is a bug.
func (e *engine) register(v *view) {
	if _, err := e.views.Register(v.q.key, v); err != nil {
		panic(fmt.Errorf("lookout: registering view: %w", err))
	}
	for _, id := range v.q.ids {
		e.reverse[id] = append(e.reverse[id], v.q.key)
	}
}

func (e *engine) viewFor(key QueryKey) *view {
	idx, ok := e.views.GetIndex(key)
	if !ok {
		return nil
	}
	return e.views.GetItem(idx)
}

// FindFirst returns the first matching entity in source order without
// caching a view.
func (e *engine) FindFirst(types ...ComponentType) (Entity, Tuple, bool, error) {
	seq, err := e.FindAll(types...)
	if err != nil {
		return nil, nil, false, err
	}
	for ent, tuple := range seq {
		return ent, tuple, true, nil
	}
	return nil, nil, false, nil
}

// FindAll returns a lazy sequence of matches without caching a view.
//
// The sequence is not a snapshot: every range over it starts a fresh pass
// over the live source. Changing entities while a pass is in progress gives
// implementation-defined results; use CollectAll when a stable result is
// needed.
func (e *engine) FindAll(types ...ComponentType) (iter.Seq2[Entity, Tuple], error) {
	if e.disposed {
		return nil, EngineDisposedError{}
	}
	q, err := compileQuery(e.registry, types)
	if err != nil {
		return nil, err
	}
	return func(yield func(Entity, Tuple) bool) {
		if e.disposed || e.source == nil {
			return
		}
		for ent := range e.source.Entities() {
			rec := e.masks.record(ent)
			if !rec.matches(q) {
				continue
			}
			if !yield(ent, q.materialize(ent)) {
				return
			}
		}
	}, nil
}

// CollectAll eagerly materializes FindAll.
func (e *engine) CollectAll(types ...ComponentType) ([]Match, error) {
	seq, err := e.FindAll(types...)
	if err != nil {
		return nil, err
	}
	var out []Match
	for ent, tuple := range seq {
		out = append(out, Match{Entity: ent, Tuple: tuple})
	}
	return out, nil
}

// PickOne returns the first enabled instance of t on an enabled entity.
func (e *engine) PickOne(t ComponentType) (ComponentInstance, bool) {
	if e.disposed || t == nil {
		return nil, false
	}
	if id, ok := e.registry.ID(t); ok {
		if v := e.viewFor(keyOf([]ComponentID{id})); v != nil {
			if v.Size() == 0 {
				return nil, false
			}
			return v.tuples[0][0], true
		}
	}
	if e.source == nil {
		return nil, false
	}
	t = canonicalType(t)
	for ent := range e.source.Entities() {
		if !ent.Enabled() {
			continue
		}
		inst, ok := ent.Component(t)
		if !ok || inst == nil || !inst.Enabled() {
			continue
		}
		return inst, true
	}
	return nil, false
}

// Dispose detaches the engine from its bus and clears every cached view.
// The registry is left untouched.
func (e *engine) Dispose() {
	if e.disposed {
		return
	}
	e.disposed = true
	for _, unsub := range e.unsubs {
		unsub()
	}
	e.unsubs = nil
	for _, v := range e.views.Items() {
		v.clear()
	}
	Config.logger.Printf("engine disposed, dropped %d views", e.views.Len())
	e.views.Clear()
	e.reverse = make(map[ComponentID][]QueryKey)
	e.masks.reset()
}

// verifyAll panics if any view is internally inconsistent. Only runs in
// debug mode.
func (e *engine) verifyAll() {
	if !e.debug {
		return
	}
	for _, v := range e.views.Items() {
		if err := v.verify(); err != nil {
			Config.logger.Printf("invariant violated: %v", err)
			panic(err)
		}
	}
}

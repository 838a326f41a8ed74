package lookout

// componentEnabled sets the bit first, then offers the entity to the views
// that reference the component type.
func (e *engine) componentEnabled(ev ComponentEnabled) {
	if ev.Entity == nil || ev.Component == nil {
		return
	}
	id := e.registry.Register(ev.Component.Type())
	rec := e.masks.record(ev.Entity)
	rec.mask = rec.mask.set(id)
	if rec.enabled {
		e.offer(rec, e.reverse[id])
	}
	e.verifyAll()
}

// componentDisabled clears the bit first, then drops the entity from every
// view that references the type. Losing any required type breaks the match,
// so no re-test is needed.
func (e *engine) componentDisabled(ev ComponentDisabled) {
	if ev.Entity == nil || ev.Component == nil {
		return
	}
	id := e.registry.Register(ev.Component.Type())
	rec := e.masks.record(ev.Entity)
	rec.mask = rec.mask.clear(id)
	e.withdraw(rec.entity.ID(), e.reverse[id])
	e.verifyAll()
}

func (e *engine) entityEnabled(ev EntityEnabled) {
	if ev.Entity == nil {
		return
	}
	rec := e.masks.record(ev.Entity)
	if rec.enabled {
		return
	}
	rec.enabled = true
	rec.mask.forEachSet(func(id ComponentID) {
		e.offer(rec, e.reverse[id])
	})
	e.verifyAll()
}

func (e *engine) entityDisabled(ev EntityDisabled) {
	if ev.Entity == nil {
		return
	}
	rec := e.masks.record(ev.Entity)
	rec.enabled = false
	rec.mask.forEachSet(func(id ComponentID) {
		e.withdraw(rec.entity.ID(), e.reverse[id])
	})
	e.verifyAll()
}

// entityRemoved drops the entity from every view and forgets its mask.
func (e *engine) entityRemoved(ev EntityRemoved) {
	if ev.Entity == nil {
		return
	}
	rec, ok := e.masks.remove(ev.Entity.ID())
	if !ok {
		return
	}
	rec.mask.forEachSet(func(id ComponentID) {
		e.withdraw(rec.entity.ID(), e.reverse[id])
	})
	e.verifyAll()
}

// offer inserts rec's entity into each keyed view it is missing from and
// now matches.
func (e *engine) offer(rec *entityRecord, keys []QueryKey) {
	for _, key := range keys {
		v := e.viewFor(key)
		if v == nil || v.Has(rec.entity.ID()) {
			continue
		}
		if rec.matches(v.q) {
			v.set(rec.entity, v.q.materialize(rec.entity))
		}
	}
}

func (e *engine) withdraw(id EntityID, keys []QueryKey) {
	for _, key := range keys {
		if v := e.viewFor(key); v != nil {
			v.delete(id)
		}
	}
}

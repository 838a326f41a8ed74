package lookout

import (
	"fmt"
	"iter"
)

var _ View = &view{}

// view is dense, swap-remove storage of the entities matching one query.
// entities[i] and tuples[i] always describe the same entity.
type view struct {
	q        query
	index    map[EntityID]int
	entities []Entity
	tuples   []Tuple

	onAdd    listeners[func(Entity, Tuple)]
	onRemove listeners[func(Entity, Tuple)]
	onClear  listeners[func()]
}

func newView(q query) *view {
	return &view{
		q:     q,
		index: make(map[EntityID]int),
	}
}

func (v *view) Key() QueryKey {
	return v.q.key
}

// Types returns the component types in tuple order.
func (v *view) Types() []ComponentType {
	out := make([]ComponentType, len(v.q.types))
	copy(out, v.q.types)
	return out
}

func (v *view) Get(id EntityID) (Tuple, bool) {
	i, ok := v.index[id]
	if !ok {
		return nil, false
	}
	return v.tuples[i], true
}

func (v *view) Has(id EntityID) bool {
	_, ok := v.index[id]
	return ok
}

func (v *view) Size() int {
	return len(v.entities)
}

// All ranges over the live contents. Mutating the view while ranging is
// unspecified; use Snapshot first.
func (v *view) All() iter.Seq2[Entity, Tuple] {
	return func(yield func(Entity, Tuple) bool) {
		for i := 0; i < len(v.entities); i++ {
			if !yield(v.entities[i], v.tuples[i]) {
				return
			}
		}
	}
}

func (v *view) Entities() []Entity {
	out := make([]Entity, len(v.entities))
	copy(out, v.entities)
	return out
}

func (v *view) Snapshot() []Match {
	out := make([]Match, len(v.entities))
	for i, e := range v.entities {
		out[i] = Match{Entity: e, Tuple: v.tuples[i].clone()}
	}
	return out
}

func (v *view) OnAdd(fn func(Entity, Tuple)) func() {
	return v.onAdd.add(fn)
}

func (v *view) OnRemove(fn func(Entity, Tuple)) func() {
	return v.onRemove.add(fn)
}

func (v *view) OnClear(fn func()) func() {
	return v.onClear.add(fn)
}

// set inserts e, or overwrites its tuple in place without an add event.
func (v *view) set(e Entity, tuple Tuple) {
	if i, ok := v.index[e.ID()]; ok {
		v.tuples[i] = tuple
		return
	}
	v.index[e.ID()] = len(v.entities)
	v.entities = append(v.entities, e)
	v.tuples = append(v.tuples, tuple)
	for _, l := range v.onAdd.current() {
		l.fn(e, tuple)
	}
}

// delete swaps the last element into e's slot and shrinks by one.
func (v *view) delete(id EntityID) bool {
	i, ok := v.index[id]
	if !ok {
		return false
	}
	e, removed := v.entities[i], v.tuples[i]
	last := len(v.entities) - 1
	if i != last {
		v.entities[i] = v.entities[last]
		v.tuples[i] = v.tuples[last]
		v.index[v.entities[i].ID()] = i
	}
	v.entities[last] = nil
	v.tuples[last] = nil
	v.entities = v.entities[:last]
	v.tuples = v.tuples[:last]
	delete(v.index, id)

	for _, l := range v.onRemove.current() {
		l.fn(e, removed)
	}
	return true
}

func (v *view) clear() {
	if len(v.entities) == 0 {
		return
	}
	clear(v.entities)
	clear(v.tuples)
	v.entities = v.entities[:0]
	v.tuples = v.tuples[:0]
	v.index = make(map[EntityID]int)
	for _, l := range v.onClear.current() {
		l.fn()
	}
}

// verify checks that the three dense structures agree.
func (v *view) verify() error {
	if len(v.entities) != len(v.tuples) || len(v.entities) != len(v.index) {
		return fmt.Errorf("view %q: %d entities, %d tuples, %d index entries",
			v.q.key, len(v.entities), len(v.tuples), len(v.index))
	}
	for i, e := range v.entities {
		if at, ok := v.index[e.ID()]; !ok || at != i {
			return fmt.Errorf("view %q: entity %d at slot %d indexed at %d", v.q.key, e.ID(), i, at)
		}
		if len(v.tuples[i]) != len(v.q.types) {
			return fmt.Errorf("view %q: entity %d has tuple of arity %d, want %d",
				v.q.key, e.ID(), len(v.tuples[i]), len(v.q.types))
		}
	}
	return nil
}

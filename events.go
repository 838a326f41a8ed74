package lookout

import "reflect"

// ComponentEnabled is published when a component of an entity becomes
// enabled, including when an enabled component is added.
type ComponentEnabled struct {
	Entity    Entity
	Component ComponentInstance
}

// ComponentDisabled is published when a component of an entity becomes
// disabled, including when an enabled component is removed.
type ComponentDisabled struct {
	Entity    Entity
	Component ComponentInstance
}

type EntityEnabled struct {
	Entity Entity
}

type EntityDisabled struct {
	Entity Entity
}

// EntityRemoved is published once an entity leaves its owner for good.
type EntityRemoved struct {
	Entity Entity
}

// EventBus is a synchronous, typed publish/subscribe hub. Handlers run in
// subscription order on the publishing goroutine.
type EventBus struct {
	handlers map[reflect.Type]any
}

// Subscribe registers handler for events of type T and returns a function
// that removes it again.
func Subscribe[T any](bus *EventBus, handler func(T)) (unsubscribe func()) {
	if bus.handlers == nil {
		bus.handlers = make(map[reflect.Type]any)
	}
	t := reflect.TypeFor[T]()
	ls, _ := bus.handlers[t].(*listeners[func(T)])
	if ls == nil {
		ls = &listeners[func(T)]{}
		bus.handlers[t] = ls
	}
	return ls.add(handler)
}

// Publish delivers event to every handler subscribed to T.
func Publish[T any](bus *EventBus, event T) {
	if bus == nil || bus.handlers == nil {
		return
	}
	ls, _ := bus.handlers[reflect.TypeFor[T]()].(*listeners[func(T)])
	if ls == nil {
		return
	}
	for _, e := range ls.current() {
		e.fn(event)
	}
}

// listeners is a copy-on-write handler list; removing a handler while the
// list is being dispatched does not disturb the dispatch in progress.
type listeners[F any] struct {
	entries []listener[F]
	nextID  int
}

type listener[F any] struct {
	id int
	fn F
}

func (l *listeners[F]) add(fn F) func() {
	l.nextID++
	id := l.nextID
	next := make([]listener[F], len(l.entries), len(l.entries)+1)
	copy(next, l.entries)
	l.entries = append(next, listener[F]{id: id, fn: fn})
	return func() { l.remove(id) }
}

func (l *listeners[F]) remove(id int) {
	for i, e := range l.entries {
		if e.id != id {
			continue
		}
		next := make([]listener[F], 0, len(l.entries)-1)
		next = append(next, l.entries[:i]...)
		l.entries = append(next, l.entries[i+1:]...)
		return
	}
}

// current returns the handler list as of now. The slice is never mutated in
// place, so it is safe to range over while handlers come and go.
func (l *listeners[F]) current() []listener[F] {
	return l.entries
}

func (l *listeners[F]) len() int {
	return len(l.entries)
}

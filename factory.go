package lookout

import "github.com/TheBitDrifter/table"

type factory struct{}

var Factory factory

func (f factory) NewRegistry() *Registry {
	return newRegistry()
}

// NewEventBus returns an empty bus; the zero EventBus is also ready to use.
func (f factory) NewEventBus() *EventBus {
	return &EventBus{}
}

// NewStorage creates a storage publishing on bus, or on a fresh bus if nil.
func (f factory) NewStorage(bus *EventBus) Storage {
	if bus == nil {
		bus = f.NewEventBus()
	}
	return newStorage(bus)
}

// NewEngine creates an engine over source, subscribed to bus.
func (f factory) NewEngine(reg *Registry, source Source, bus *EventBus) Engine {
	if reg == nil {
		reg = newRegistry()
	}
	return newEngine(reg, source, bus)
}

// NewStorageEngine creates an engine tracking sto.
func (f factory) NewStorageEngine(reg *Registry, sto Storage) Engine {
	return f.NewEngine(reg, sto, sto.Bus())
}

func (f factory) NewCursor(view View, sto Storage) *Cursor {
	return newCursor(view, sto)
}

func FactoryNewComponent[T any]() AccessibleComponent[T] {
	return AccessibleComponent[T]{
		ComponentType: table.FactoryNewElementType[T](),
	}
}

func FactoryNewCache[T any](cap int) Cache[T] {
	return &SimpleCache[T]{
		itemIndices: make(map[QueryKey]int),
		maxCapacity: cap,
	}
}

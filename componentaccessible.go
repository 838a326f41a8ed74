package lookout

// AccessibleComponent extends a base ComponentType with typed access to
// instances of T
type AccessibleComponent[T any] struct {
	ComponentType
}

var _ Blueprint = AccessibleComponent[struct{}]{}

func (c AccessibleComponent[T]) componentType() ComponentType {
	return c.ComponentType
}

// New creates an enabled instance holding value
func (c AccessibleComponent[T]) New(value T) *Instance[T] {
	return &Instance[T]{typ: c.ComponentType, enabled: true, Value: value}
}

// NewInstance creates an enabled, zero-valued instance
func (c AccessibleComponent[T]) NewInstance() ComponentInstance {
	return c.New(*new(T))
}

// FromTuple retrieves the value of this component from a query tuple.
// Returns nil if the tuple has no such component or it is not an Instance[T]
func (c AccessibleComponent[T]) FromTuple(t Tuple) *T {
	inst, ok := t.Get(c)
	if !ok {
		return nil
	}
	return valueOf[T](inst)
}

// GetFromEntity retrieves the value of this component for the specified entity
func (c AccessibleComponent[T]) GetFromEntity(e Entity) *T {
	inst, ok := e.Component(c.ComponentType)
	if !ok {
		return nil
	}
	return valueOf[T](inst)
}

// Pick returns the value of the first enabled instance of this component
// known to the engine
func (c AccessibleComponent[T]) Pick(engine Engine) *T {
	inst, ok := engine.PickOne(c)
	if !ok {
		return nil
	}
	return valueOf[T](inst)
}

func valueOf[T any](inst ComponentInstance) *T {
	typed, ok := inst.(*Instance[T])
	if !ok {
		return nil
	}
	return &typed.Value
}

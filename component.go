package lookout

// Instance is the reference ComponentInstance holding a value of type T.
type Instance[T any] struct {
	typ     ComponentType
	enabled bool
	Value   T
}

var _ ComponentInstance = &Instance[struct{}]{}

func (i *Instance[T]) Type() ComponentType {
	return i.typ
}

func (i *Instance[T]) Enabled() bool {
	return i.enabled
}

func (i *Instance[T]) setEnabled(enabled bool) {
	i.enabled = enabled
}

// toggleable instances can have their enabled state flipped by a Storage.
type toggleable interface {
	ComponentInstance
	setEnabled(bool)
}

type typeHolder interface {
	componentType() ComponentType
}

// canonicalType unwraps handles such as AccessibleComponent so every lookup
// keys on the same underlying element type.
func canonicalType(t ComponentType) ComponentType {
	if h, ok := t.(typeHolder); ok {
		return h.componentType()
	}
	return t
}

package lookout

import "fmt"

type EmptyQueryError struct{}

func (e EmptyQueryError) Error() string {
	return "invalid argument: query requires at least one component type"
}

type NilComponentTypeError struct {
	Index int
}

func (e NilComponentTypeError) Error() string {
	return fmt.Sprintf("invalid argument: component type at position %d is nil", e.Index)
}

type EngineDisposedError struct{}

func (e EngineDisposedError) Error() string {
	return "engine has been disposed"
}

type CacheCapacityError struct {
	Capacity int
}

func (e CacheCapacityError) Error() string {
	return fmt.Sprintf("cache at maximum capacity (%d)", e.Capacity)
}

type DuplicateKeyError struct {
	Key QueryKey
}

func (e DuplicateKeyError) Error() string {
	return fmt.Sprintf("query key already registered: %q", e.Key)
}

// MaskDesyncError reports an entity whose mask claims a component the entity
// cannot produce.
type MaskDesyncError struct {
	Entity EntityID
	Type   ComponentType
}

func (e MaskDesyncError) Error() string {
	return fmt.Sprintf("mask of entity %d marks component %v as enabled but the entity has no enabled instance", e.Entity, e.Type)
}

type LockedStorageError struct{}

func (e LockedStorageError) Error() string {
	return "storage is currently locked"
}

type ComponentExistsError struct {
	Component ComponentType
}

func (e ComponentExistsError) Error() string {
	return fmt.Sprintf("component already exists on entity: %T", e.Component)
}

type ComponentNotFoundError struct {
	Component ComponentType
}

func (e ComponentNotFoundError) Error() string {
	return fmt.Sprintf("component does not exist on entity: %T", e.Component)
}

type EntityNotFoundError struct {
	ID EntityID
}

func (e EntityNotFoundError) Error() string {
	return fmt.Sprintf("entity %d does not exist", e.ID)
}

type UnsupportedInstanceError struct {
	Instance ComponentInstance
}

func (e UnsupportedInstanceError) Error() string {
	return fmt.Sprintf("component instance %T cannot be managed by storage", e.Instance)
}

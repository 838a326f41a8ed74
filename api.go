package lookout

import (
	"iter"

	"github.com/TheBitDrifter/table"
)

// ComponentID is the dense id a Registry assigns to a ComponentType.
type ComponentID uint32

// EntityID identifies an entity for the lifetime of its owner.
type EntityID uint32

// ComponentType is a nominal category of component.
type ComponentType interface {
	table.ElementType
}

// ComponentInstance is a component owned by an entity.
type ComponentInstance interface {
	Type() ComponentType
	Enabled() bool
}

// Entity is the engine's read-only view of an entity owned by a collaborator.
type Entity interface {
	ID() EntityID
	Enabled() bool
	Component(ComponentType) (ComponentInstance, bool)
	Components() iter.Seq[ComponentInstance]
}

// Source supplies the entity population scanned when a view is built and by
// one-off reads.
type Source interface {
	Entities() iter.Seq[Entity]
}

// Blueprint creates fresh component instances of a single type.
type Blueprint interface {
	ComponentType
	NewInstance() ComponentInstance
}

// Engine is the reactive structural-query surface.
type Engine interface {
	View(types ...ComponentType) (View, error)
	FindFirst(types ...ComponentType) (Entity, Tuple, bool, error)
	FindAll(types ...ComponentType) (iter.Seq2[Entity, Tuple], error)
	CollectAll(types ...ComponentType) ([]Match, error)
	PickOne(ComponentType) (ComponentInstance, bool)
	Registry() *Registry
	Len() int
	Dispose()
}

// View is the read contract of a cached query result.
//
// Removal swaps the last element into the removed slot, so the relative order
// of the remaining elements is not stable across removals.
type View interface {
	Key() QueryKey
	Types() []ComponentType
	Get(EntityID) (Tuple, bool)
	Has(EntityID) bool
	Size() int
	All() iter.Seq2[Entity, Tuple]
	Entities() []Entity
	Snapshot() []Match
	OnAdd(func(Entity, Tuple)) (unsubscribe func())
	OnRemove(func(Entity, Tuple)) (unsubscribe func())
	OnClear(func()) (unsubscribe func())
}

// Match pairs an entity with its materialized tuple.
type Match struct {
	Entity Entity
	Tuple  Tuple
}

// Storage is the in-memory reference collaborator owning entities and their
// components.
type Storage interface {
	Source
	Bus() *EventBus
	Entity(id EntityID) (StorageEntity, error)
	NewEntity(...ComponentInstance) (StorageEntity, error)
	NewEntities(int, ...Blueprint) ([]StorageEntity, error)
	EnqueueNewEntities(int, ...Blueprint) error
	DestroyEntities(...StorageEntity) error
	EnqueueDestroyEntities(...StorageEntity) error
	Len() int
	Locked() bool
	Lock()
	Unlock()
}

// StorageEntity is an entity owned by a Storage.
type StorageEntity interface {
	Entity
	AddComponent(ComponentInstance) error
	RemoveComponent(ComponentType) error
	EnableComponent(ComponentType) error
	DisableComponent(ComponentType) error
	Enable() error
	Disable() error
	EnqueueAddComponent(ComponentInstance) error
	EnqueueRemoveComponent(ComponentType) error
	EnqueueEnableComponent(ComponentType) error
	EnqueueDisableComponent(ComponentType) error
	Valid() bool
}

type iCursor interface {
	Next() bool
	Entity() Entity
	Tuple() Tuple
	Reset()
}

type Cache[T any] interface {
	GetIndex(QueryKey) (int, bool)
	GetItem(int) T
	Register(QueryKey, T) (int, error)
	Len() int
	Items() []T
	Clear()
}

package lookout

import (
	"fmt"
	"iter"

	iter_util "github.com/TheBitDrifter/util/iter"
)

var _ Storage = &storage{}

// storage keeps entities densely; destroying one swaps the last entity into
// its slot, so iteration order is insertion order only until the first
// destroy.
type storage struct {
	locked   bool
	bus      *EventBus
	nextID   EntityID
	entities []*entity
	index    map[EntityID]int
	opQueue  opQueue
}

func newStorage(bus *EventBus) *storage {
	return &storage{
		bus:     bus,
		nextID:  1,
		index:   make(map[EntityID]int),
		opQueue: newOpQueue(),
	}
}

func (sto *storage) Bus() *EventBus {
	return sto.bus
}

func (sto *storage) Entities() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for i := 0; i < len(sto.entities); i++ {
			if !yield(sto.entities[i]) {
				return
			}
		}
	}
}

func (sto *storage) Entity(id EntityID) (StorageEntity, error) {
	i, ok := sto.index[id]
	if !ok {
		return nil, EntityNotFoundError{ID: id}
	}
	return sto.entities[i], nil
}

func (sto *storage) Len() int {
	return len(sto.entities)
}

// NewEntity creates an enabled entity owning the given instances and
// publishes ComponentEnabled for each enabled one.
func (sto *storage) NewEntity(instances ...ComponentInstance) (StorageEntity, error) {
	if sto.locked {
		return nil, LockedStorageError{}
	}
	en := &entity{
		sto:        sto,
		id:         sto.nextID,
		enabled:    true,
		components: make(map[ComponentType]toggleable, len(instances)),
	}
	for _, inst := range instances {
		if err := en.attach(inst); err != nil {
			return nil, err
		}
	}
	sto.nextID++
	sto.index[en.id] = len(sto.entities)
	sto.entities = append(sto.entities, en)

	for _, t := range en.order {
		if inst := en.components[t]; inst.Enabled() {
			Publish(sto.bus, ComponentEnabled{Entity: en, Component: inst})
		}
	}
	return en, nil
}

// NewEntities creates n entities, each with fresh instances from blueprints.
func (sto *storage) NewEntities(n int, blueprints ...Blueprint) ([]StorageEntity, error) {
	if sto.locked {
		return nil, LockedStorageError{}
	}
	entities := make([]StorageEntity, 0, n)
	for range n {
		instances := make([]ComponentInstance, len(blueprints))
		for i, bp := range blueprints {
			instances[i] = bp.NewInstance()
		}
		en, err := sto.NewEntity(instances...)
		if err != nil {
			return entities, fmt.Errorf("failed to create entity: %w", err)
		}
		entities = append(entities, en)
	}
	return entities, nil
}

func (sto *storage) EnqueueNewEntities(n int, blueprints ...Blueprint) error {
	if !sto.locked {
		if _, err := sto.NewEntities(n, blueprints...); err != nil {
			return fmt.Errorf("failed to create entities directly: %w", err)
		}
		return nil
	}
	sto.opQueue.enqueueOp(operation{
		typ:        opCreate,
		amount:     n,
		blueprints: blueprints,
	})
	return nil
}

// DestroyEntities removes entities. Each enabled component is reported as
// disabled before EntityRemoved is published.
func (sto *storage) DestroyEntities(entities ...StorageEntity) error {
	if sto.locked {
		return LockedStorageError{}
	}
	for _, se := range entities {
		if se == nil {
			continue
		}
		i, ok := sto.index[se.ID()]
		if !ok {
			continue
		}
		en := sto.entities[i]

		for _, inst := range iter_util.Collect(en.Components()) {
			en.detach(inst.Type())
			if inst.Enabled() {
				Publish(sto.bus, ComponentDisabled{Entity: en, Component: inst})
			}
		}

		last := len(sto.entities) - 1
		if i != last {
			sto.entities[i] = sto.entities[last]
			sto.index[sto.entities[i].id] = i
		}
		sto.entities[last] = nil
		sto.entities = sto.entities[:last]
		delete(sto.index, en.id)
		en.destroyed = true

		Publish(sto.bus, EntityRemoved{Entity: en})
	}
	return nil
}

func (sto *storage) EnqueueDestroyEntities(entities ...StorageEntity) error {
	if !sto.locked {
		return sto.DestroyEntities(entities...)
	}
	sto.opQueue.EnqueueDestroy(sto, entities)
	return nil
}

func (sto *storage) Locked() bool {
	return sto.locked
}

func (sto *storage) Lock() {
	sto.locked = true
}

// Unlock releases the storage and applies queued operations. A queued
// operation that fails is a programming error and panics.
func (sto *storage) Unlock() {
	sto.locked = false
	if err := sto.processOperationQueue(); err != nil {
		panic(err)
	}
}

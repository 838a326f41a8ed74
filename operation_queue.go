package lookout

import (
	"fmt"
)

type operation struct {
	typ        operationType
	amount     int
	blueprints []Blueprint
	comp       ComponentType
	instance   ComponentInstance
	entities   []StorageEntity
	sto        Storage
}

type operationType int

const (
	opNone operationType = iota - 1
	opCreate
	opDestroy
	opAddComponent
	opRemoveComponent
	opEnableComponent
	opDisableComponent
)

type opKey struct {
	entity EntityID
}

type opQueue struct {
	createOps      []operation
	componentOps   []operation
	destroyOps     []operation
	pendingDestroy map[opKey]struct{}
	pendingMods    map[opKey][]int
}

func newOpQueue() opQueue {
	return opQueue{
		pendingDestroy: make(map[opKey]struct{}),
		pendingMods:    make(map[opKey][]int),
	}
}

func (q *opQueue) enqueueOp(op operation) {
	switch op.typ {
	case opCreate:
		q.createOps = append(q.createOps, op)
	case opDestroy:
		q.destroyOps = append(q.destroyOps, op)
	case opAddComponent, opRemoveComponent, opEnableComponent, opDisableComponent:
		q.EnqueueComponentOp(op)
	}
}

func (q *opQueue) empty() bool {
	return len(q.createOps) == 0 &&
		len(q.componentOps) == 0 &&
		len(q.destroyOps) == 0
}

// processOperationQueue applies creates, then component operations in the
// order they were queued, then destroys.
func (s *storage) processOperationQueue() error {
	if s.opQueue.empty() {
		return nil
	}
	q := s.opQueue
	s.opQueue = newOpQueue()

	for _, op := range q.createOps {
		if _, err := s.NewEntities(op.amount, op.blueprints...); err != nil {
			return fmt.Errorf("failed to process queued entity creation: %w", err)
		}
	}

	for _, op := range q.componentOps {
		if op.typ == opNone {
			continue
		}
		entity := op.entities[0]
		if !entity.Valid() {
			continue
		}
		var err error
		switch op.typ {
		case opAddComponent:
			err = entity.AddComponent(op.instance)
		case opRemoveComponent:
			err = entity.RemoveComponent(op.comp)
		case opEnableComponent:
			err = entity.EnableComponent(op.comp)
		case opDisableComponent:
			err = entity.DisableComponent(op.comp)
		}
		if err != nil {
			return fmt.Errorf("failed to process queued component operation on entity %d: %w", entity.ID(), err)
		}
	}

	for _, op := range q.destroyOps {
		if len(op.entities) > 0 {
			if err := op.sto.DestroyEntities(op.entities...); err != nil {
				return fmt.Errorf("failed to destroy queued entities: %w", err)
			}
		}
	}
	return nil
}

func (q *opQueue) EnqueueDestroy(sto Storage, entities []StorageEntity) {
	var newEntities []StorageEntity
	for _, entity := range entities {
		if entity == nil {
			continue
		}
		key := opKey{entity: entity.ID()}
		if _, exists := q.pendingDestroy[key]; exists {
			continue
		}
		newEntities = append(newEntities, entity)
		q.pendingDestroy[key] = struct{}{}

		// Pending component operations become no-ops
		for _, idx := range q.pendingMods[key] {
			q.componentOps[idx].typ = opNone
		}
		delete(q.pendingMods, key)
	}

	if len(newEntities) > 0 {
		q.destroyOps = append(q.destroyOps, operation{
			typ:      opDestroy,
			entities: newEntities,
			sto:      sto,
		})
	}
}

func (q *opQueue) EnqueueComponentOp(op operation) {
	key := opKey{entity: op.entities[0].ID()}

	// Entities pending destroy ignore component operations
	if _, isDestroyed := q.pendingDestroy[key]; isDestroyed {
		return
	}

	q.pendingMods[key] = append(q.pendingMods[key], len(q.componentOps))
	q.componentOps = append(q.componentOps, op)
}

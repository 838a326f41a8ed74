package lookout

import (
	"iter"
	"slices"
)

var _ StorageEntity = &entity{}

type entity struct {
	sto        *storage
	id         EntityID
	enabled    bool
	destroyed  bool
	components map[ComponentType]toggleable
	order      []ComponentType
}

func (e *entity) ID() EntityID {
	return e.id
}

func (e *entity) Enabled() bool {
	return e.enabled
}

func (e *entity) Valid() bool {
	return !e.destroyed
}

func (e *entity) Component(t ComponentType) (ComponentInstance, bool) {
	inst, ok := e.components[canonicalType(t)]
	if !ok {
		return nil, false
	}
	return inst, true
}

// Components yields instances in the order they were added.
func (e *entity) Components() iter.Seq[ComponentInstance] {
	return func(yield func(ComponentInstance) bool) {
		for _, t := range e.order {
			if !yield(e.components[t]) {
				return
			}
		}
	}
}

func (e *entity) attach(inst ComponentInstance) error {
	tog, ok := inst.(toggleable)
	if !ok {
		return UnsupportedInstanceError{Instance: inst}
	}
	t := canonicalType(inst.Type())
	if _, exists := e.components[t]; exists {
		return ComponentExistsError{Component: t}
	}
	e.components[t] = tog
	e.order = append(e.order, t)
	return nil
}

func (e *entity) detach(t ComponentType) (toggleable, bool) {
	t = canonicalType(t)
	inst, ok := e.components[t]
	if !ok {
		return nil, false
	}
	delete(e.components, t)
	e.order = slices.DeleteFunc(e.order, func(o ComponentType) bool { return o == t })
	return inst, true
}

func (e *entity) guard() error {
	if e.destroyed {
		return EntityNotFoundError{ID: e.id}
	}
	if e.sto.locked {
		return LockedStorageError{}
	}
	return nil
}

func (e *entity) AddComponent(inst ComponentInstance) error {
	if err := e.guard(); err != nil {
		return err
	}
	if err := e.attach(inst); err != nil {
		return err
	}
	if inst.Enabled() {
		Publish(e.sto.bus, ComponentEnabled{Entity: e, Component: inst})
	}
	return nil
}

func (e *entity) RemoveComponent(t ComponentType) error {
	if err := e.guard(); err != nil {
		return err
	}
	inst, ok := e.detach(t)
	if !ok {
		return ComponentNotFoundError{Component: canonicalType(t)}
	}
	if inst.Enabled() {
		Publish(e.sto.bus, ComponentDisabled{Entity: e, Component: inst})
	}
	return nil
}

func (e *entity) EnableComponent(t ComponentType) error {
	return e.toggleComponent(t, true)
}

func (e *entity) DisableComponent(t ComponentType) error {
	return e.toggleComponent(t, false)
}

func (e *entity) toggleComponent(t ComponentType, enabled bool) error {
	if err := e.guard(); err != nil {
		return err
	}
	inst, ok := e.components[canonicalType(t)]
	if !ok {
		return ComponentNotFoundError{Component: canonicalType(t)}
	}
	if inst.Enabled() == enabled {
		return nil
	}
	inst.setEnabled(enabled)
	if enabled {
		Publish(e.sto.bus, ComponentEnabled{Entity: e, Component: inst})
	} else {
		Publish(e.sto.bus, ComponentDisabled{Entity: e, Component: inst})
	}
	return nil
}

func (e *entity) Enable() error {
	if err := e.guard(); err != nil {
		return err
	}
	if e.enabled {
		return nil
	}
	e.enabled = true
	Publish(e.sto.bus, EntityEnabled{Entity: e})
	return nil
}

func (e *entity) Disable() error {
	if err := e.guard(); err != nil {
		return err
	}
	if !e.enabled {
		return nil
	}
	e.enabled = false
	Publish(e.sto.bus, EntityDisabled{Entity: e})
	return nil
}

func (e *entity) EnqueueAddComponent(inst ComponentInstance) error {
	if !e.sto.locked {
		return e.AddComponent(inst)
	}
	e.sto.opQueue.EnqueueComponentOp(operation{typ: opAddComponent, entities: []StorageEntity{e}, instance: inst})
	return nil
}

func (e *entity) EnqueueRemoveComponent(t ComponentType) error {
	if !e.sto.locked {
		return e.RemoveComponent(t)
	}
	e.sto.opQueue.EnqueueComponentOp(operation{typ: opRemoveComponent, entities: []StorageEntity{e}, comp: t})
	return nil
}

func (e *entity) EnqueueEnableComponent(t ComponentType) error {
	if !e.sto.locked {
		return e.EnableComponent(t)
	}
	e.sto.opQueue.EnqueueComponentOp(operation{typ: opEnableComponent, entities: []StorageEntity{e}, comp: t})
	return nil
}

func (e *entity) EnqueueDisableComponent(t ComponentType) error {
	if !e.sto.locked {
		return e.DisableComponent(t)
	}
	e.sto.opQueue.EnqueueComponentOp(operation{typ: opDisableComponent, entities: []StorageEntity{e}, comp: t})
	return nil
}

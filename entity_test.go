package lookout

import (
	"errors"
	"testing"

	iter_util "github.com/TheBitDrifter/util/iter"
)

func TestEntityCreation(t *testing.T) {
	tests := []struct {
		name        string
		blueprints  []Blueprint
		entityCount int
	}{
		{"Empty entity", nil, 1},
		{"Single component", []Blueprint{components.position}, 10},
		{"Multiple components", []Blueprint{components.position, components.velocity}, 5},
		{"Large batch", []Blueprint{components.position, components.velocity, components.health}, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := Factory.NewStorage(nil)

			entities, err := storage.NewEntities(tt.entityCount, tt.blueprints...)
			if err != nil {
				t.Fatalf("NewEntities() error = %v", err)
			}
			if len(entities) != tt.entityCount {
				t.Errorf("Created %d entities, want %d", len(entities), tt.entityCount)
			}

			seen := make(map[EntityID]bool)
			for i, entity := range entities {
				if !entity.Valid() {
					t.Errorf("Entity %d is not valid", i)
				}
				if seen[entity.ID()] {
					t.Errorf("Entity id %d issued twice", entity.ID())
				}
				seen[entity.ID()] = true

				comps := iter_util.Collect(entity.Components())
				if len(comps) != len(tt.blueprints) {
					t.Errorf("Entity %d has %d components, want %d", i, len(comps), len(tt.blueprints))
				}
				for _, c := range comps {
					if !c.Enabled() {
						t.Errorf("Entity %d component %v created disabled", i, c.Type())
					}
				}
			}
		})
	}
}

func TestEntityComponentOperations(t *testing.T) {
	storage := Factory.NewStorage(nil)
	entity, err := storage.NewEntity(components.position.New(Position{X: 1, Y: 2}))
	if err != nil {
		t.Fatalf("Failed to create entity: %v", err)
	}

	if err := entity.AddComponent(components.velocity.New(Velocity{X: 3})); err != nil {
		t.Fatalf("Failed to add velocity: %v", err)
	}
	if got := components.velocity.GetFromEntity(entity); got == nil || got.X != 3 {
		t.Errorf("velocity after add = %v, want X 3", got)
	}

	var exists ComponentExistsError
	if err := entity.AddComponent(components.velocity.New(Velocity{})); !errors.As(err, &exists) {
		t.Errorf("adding velocity twice returned %v, want ComponentExistsError", err)
	}

	if err := entity.RemoveComponent(components.position); err != nil {
		t.Fatalf("Failed to remove position: %v", err)
	}
	if _, ok := entity.Component(components.position); ok {
		t.Error("position still present after removal")
	}
	if components.position.GetFromEntity(entity) != nil {
		t.Error("GetFromEntity returned a removed component")
	}

	var notFound ComponentNotFoundError
	if err := entity.RemoveComponent(components.position); !errors.As(err, &notFound) {
		t.Errorf("removing absent position returned %v, want ComponentNotFoundError", err)
	}
	if err := entity.EnableComponent(components.health); !errors.As(err, &notFound) {
		t.Errorf("enabling absent health returned %v, want ComponentNotFoundError", err)
	}

	comps := iter_util.Collect(entity.Components())
	if len(comps) != 1 || comps[0].Type() != components.velocity.ComponentType {
		t.Errorf("components after operations = %v, want only velocity", comps)
	}
}

func TestEntityToggleEvents(t *testing.T) {
	storage := Factory.NewStorage(nil)
	entity, err := storage.NewEntity(components.health.New(Health{Current: 5, Max: 5}))
	if err != nil {
		t.Fatalf("Failed to create entity: %v", err)
	}

	var enabled, disabled, entityOff, entityOn int
	Subscribe(storage.Bus(), func(ComponentEnabled) { enabled++ })
	Subscribe(storage.Bus(), func(ComponentDisabled) { disabled++ })
	Subscribe(storage.Bus(), func(EntityDisabled) { entityOff++ })
	Subscribe(storage.Bus(), func(EntityEnabled) { entityOn++ })

	steps := []struct {
		name string
		op   func() error
	}{
		{"disable", func() error { return entity.DisableComponent(components.health) }},
		{"disable again", func() error { return entity.DisableComponent(components.health) }},
		{"enable", func() error { return entity.EnableComponent(components.health) }},
		{"enable again", func() error { return entity.EnableComponent(components.health) }},
		{"entity disable", entity.Disable},
		{"entity disable again", entity.Disable},
		{"entity enable", entity.Enable},
	}
	for _, step := range steps {
		if err := step.op(); err != nil {
			t.Fatalf("%s: %v", step.name, err)
		}
	}

	if enabled != 1 || disabled != 1 {
		t.Errorf("component events = %d enabled, %d disabled, want 1 and 1", enabled, disabled)
	}
	if entityOff != 1 || entityOn != 1 {
		t.Errorf("entity events = %d disabled, %d enabled, want 1 and 1", entityOff, entityOn)
	}
	if !entity.Enabled() {
		t.Error("entity disabled after Enable()")
	}
}

func TestEntityAddDisabledInstance(t *testing.T) {
	storage := Factory.NewStorage(nil)
	entity, err := storage.NewEntity()
	if err != nil {
		t.Fatalf("Failed to create entity: %v", err)
	}

	published := 0
	Subscribe(storage.Bus(), func(ComponentEnabled) { published++ })

	inst := components.name.New(Name{Value: "ghost"})
	inst.setEnabled(false)
	if err := entity.AddComponent(inst); err != nil {
		t.Fatalf("AddComponent failed: %v", err)
	}
	if published != 0 {
		t.Errorf("adding a disabled instance published %d events", published)
	}
	if err := entity.EnableComponent(components.name); err != nil {
		t.Fatalf("EnableComponent failed: %v", err)
	}
	if published != 1 {
		t.Errorf("enabling published %d events, want 1", published)
	}
}

func TestEntityLockedOperations(t *testing.T) {
	storage := Factory.NewStorage(nil)
	entity, err := storage.NewEntity(components.position.New(Position{}))
	if err != nil {
		t.Fatalf("Failed to create entity: %v", err)
	}

	storage.Lock()
	var locked LockedStorageError
	ops := map[string]func() error{
		"add":     func() error { return entity.AddComponent(components.velocity.New(Velocity{})) },
		"remove":  func() error { return entity.RemoveComponent(components.position) },
		"enable":  func() error { return entity.EnableComponent(components.position) },
		"disable": func() error { return entity.DisableComponent(components.position) },
		"entity":  entity.Disable,
	}
	for name, op := range ops {
		if err := op(); !errors.As(err, &locked) {
			t.Errorf("%s while locked returned %v, want LockedStorageError", name, err)
		}
	}

	if err := entity.EnqueueAddComponent(components.velocity.New(Velocity{X: 9})); err != nil {
		t.Fatalf("EnqueueAddComponent failed: %v", err)
	}
	if err := entity.EnqueueRemoveComponent(components.position); err != nil {
		t.Fatalf("EnqueueRemoveComponent failed: %v", err)
	}
	storage.Unlock()

	if got := components.velocity.GetFromEntity(entity); got == nil || got.X != 9 {
		t.Errorf("queued add not applied: %v", got)
	}
	if _, ok := entity.Component(components.position); ok {
		t.Error("queued remove not applied")
	}
}

func TestEntityUnsupportedInstance(t *testing.T) {
	storage := Factory.NewStorage(nil)
	var unsupported UnsupportedInstanceError
	if _, err := storage.NewEntity(foreignInstance{}); !errors.As(err, &unsupported) {
		t.Errorf("NewEntity with foreign instance returned %v", err)
	}
	if storage.Len() != 0 {
		t.Errorf("failed creation left %d entities", storage.Len())
	}
}

type foreignInstance struct{}

func (foreignInstance) Type() ComponentType { return components.position }
func (foreignInstance) Enabled() bool       { return true }

/*
Package lookout provides a reactive structural-query engine for Entity-Component-System data.

Given a changing population of entities, each owning typed components that can be enabled
and disabled independently, an Engine answers "which entities currently have all of
components {T1..Tn} enabled?" and keeps every cached answer correct as components and
entities change, without rescanning the population on each mutation.

Core Concepts:

  - ComponentType: a category of component, given a dense ComponentID by a Registry.
  - View: a cached, shared result set for one set of component types.
  - QueryKey: the canonical form of a type set; permutations share one View.
  - Storage: an in-memory owner of entities that publishes change events on an EventBus.

Basic Usage:

	registry := lookout.Factory.NewRegistry()
	storage := lookout.Factory.NewStorage(nil)
	engine := lookout.Factory.NewStorageEngine(registry, storage)

	position := lookout.FactoryNewComponent[Position]()
	velocity := lookout.FactoryNewComponent[Velocity]()

	storage.NewEntities(100, position, velocity)

	view, _ := engine.View(position, velocity)
	for _, tuple := range view.All() {
		pos := position.FromTuple(tuple)
		vel := velocity.FromTuple(tuple)
		pos.X += vel.X
		pos.Y += vel.Y
	}

Views are updated synchronously while the event that changed an entity is published. An
Engine and its Storage are meant for a single goroutine.
*/
package lookout

package lookout

import (
	"testing"
)

// Test component types
type Position struct {
	X, Y float64
}

type Velocity struct {
	X, Y float64
}

type Health struct {
	Current, Max int
}

type Name struct {
	Value string
}

type testComponents struct {
	position AccessibleComponent[Position]
	velocity AccessibleComponent[Velocity]
	health   AccessibleComponent[Health]
	name     AccessibleComponent[Name]
}

var components = testComponents{
	position: FactoryNewComponent[Position](),
	velocity: FactoryNewComponent[Velocity](),
	health:   FactoryNewComponent[Health](),
	name:     FactoryNewComponent[Name](),
}

// wideTypes are 64 distinct component types, one per array length.
var wideTypes = []Blueprint{
	FactoryNewComponent[[0]uint8](),
	FactoryNewComponent[[1]uint8](),
	FactoryNewComponent[[2]uint8](),
	FactoryNewComponent[[3]uint8](),
	FactoryNewComponent[[4]uint8](),
	FactoryNewComponent[[5]uint8](),
	FactoryNewComponent[[6]uint8](),
	FactoryNewComponent[[7]uint8](),
	FactoryNewComponent[[8]uint8](),
	FactoryNewComponent[[9]uint8](),
	FactoryNewComponent[[10]uint8](),
	FactoryNewComponent[[11]uint8](),
	FactoryNewComponent[[12]uint8](),
	FactoryNewComponent[[13]uint8](),
	FactoryNewComponent[[14]uint8](),
	FactoryNewComponent[[15]uint8](),
	FactoryNewComponent[[16]uint8](),
	FactoryNewComponent[[17]uint8](),
	FactoryNewComponent[[18]uint8](),
	FactoryNewComponent[[19]uint8](),
	FactoryNewComponent[[20]uint8](),
	FactoryNewComponent[[21]uint8](),
	FactoryNewComponent[[22]uint8](),
	FactoryNewComponent[[23]uint8](),
	FactoryNewComponent[[24]uint8](),
	FactoryNewComponent[[25]uint8](),
	FactoryNewComponent[[26]uint8](),
	FactoryNewComponent[[27]uint8](),
	FactoryNewComponent[[28]uint8](),
	FactoryNewComponent[[29]uint8](),
	FactoryNewComponent[[30]uint8](),
	FactoryNewComponent[[31]uint8](),
	FactoryNewComponent[[32]uint8](),
	FactoryNewComponent[[33]uint8](),
	FactoryNewComponent[[34]uint8](),
	FactoryNewComponent[[35]uint8](),
	FactoryNewComponent[[36]uint8](),
	FactoryNewComponent[[37]uint8](),
	FactoryNewComponent[[38]uint8](),
	FactoryNewComponent[[39]uint8](),
	FactoryNewComponent[[40]uint8](),
	FactoryNewComponent[[41]uint8](),
	FactoryNewComponent[[42]uint8](),
	FactoryNewComponent[[43]uint8](),
	FactoryNewComponent[[44]uint8](),
	FactoryNewComponent[[45]uint8](),
	FactoryNewComponent[[46]uint8](),
	FactoryNewComponent[[47]uint8](),
	FactoryNewComponent[[48]uint8](),
	FactoryNewComponent[[49]uint8](),
	FactoryNewComponent[[50]uint8](),
	FactoryNewComponent[[51]uint8](),
	FactoryNewComponent[[52]uint8](),
	FactoryNewComponent[[53]uint8](),
	FactoryNewComponent[[54]uint8](),
	FactoryNewComponent[[55]uint8](),
	FactoryNewComponent[[56]uint8](),
	FactoryNewComponent[[57]uint8](),
	FactoryNewComponent[[58]uint8](),
	FactoryNewComponent[[59]uint8](),
	FactoryNewComponent[[60]uint8](),
	FactoryNewComponent[[61]uint8](),
	FactoryNewComponent[[62]uint8](),
	FactoryNewComponent[[63]uint8](),
}

type world struct {
	registry *Registry
	storage  Storage
	engine   Engine
}

func newWorld(t *testing.T) world {
	t.Helper()
	registry := Factory.NewRegistry()
	storage := Factory.NewStorage(nil)
	engine := Factory.NewStorageEngine(registry, storage)
	t.Cleanup(engine.Dispose)
	return world{registry: registry, storage: storage, engine: engine}
}

// newWideWorld registers wideTypes in order so type i gets id i.
func newWideWorld(t *testing.T) world {
	t.Helper()
	w := newWorld(t)
	for i, bp := range wideTypes {
		if id := w.registry.Register(bp); id != ComponentID(i) {
			t.Fatalf("wide type %d registered as %d", i, id)
		}
	}
	return w
}

func wideInstances(ids ...int) []ComponentInstance {
	out := make([]ComponentInstance, len(ids))
	for i, id := range ids {
		out[i] = wideTypes[id].NewInstance()
	}
	return out
}

func wideQuery(ids ...int) []ComponentType {
	out := make([]ComponentType, len(ids))
	for i, id := range ids {
		out[i] = wideTypes[id]
	}
	return out
}

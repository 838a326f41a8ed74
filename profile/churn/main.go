// Profiling:
// go build ./profile/churn
// ./churn
// go tool pprof -http=":8000" -nodefraction=0.001 ./churn mem.pprof

package main

import (
	"log"

	"github.com/TheBitDrifter/lookout"
	"github.com/pkg/profile"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

type comp3 struct {
	V int64
}

func main() {
	rounds := 20
	iters := 500
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	if err := run(rounds, iters, entities); err != nil {
		log.Fatal(err)
	}
	p.Stop()
}

func run(rounds, iters, numEntities int) error {
	c1 := lookout.FactoryNewComponent[comp1]()
	c2 := lookout.FactoryNewComponent[comp2]()
	c3 := lookout.FactoryNewComponent[comp3]()

	for range rounds {
		storage := lookout.Factory.NewStorage(nil)
		engine := lookout.Factory.NewStorageEngine(nil, storage)

		both, err := engine.View(c1, c2)
		if err != nil {
			return err
		}
		if _, err := engine.View(c2, c3); err != nil {
			return err
		}

		for range iters {
			if _, err := storage.NewEntities(numEntities, c1, c2); err != nil {
				return err
			}
			for _, tuple := range both.All() {
				a, b := c1.FromTuple(tuple), c2.FromTuple(tuple)
				a.V += b.V
				a.W += b.W
			}

			var created []lookout.StorageEntity
			for _, m := range both.Snapshot() {
				en := m.Entity.(lookout.StorageEntity)
				if err := en.AddComponent(c3.New(comp3{V: 1})); err != nil {
					return err
				}
				if err := en.DisableComponent(c1); err != nil {
					return err
				}
				created = append(created, en)
			}
			if err := storage.DestroyEntities(created...); err != nil {
				return err
			}
		}
		engine.Dispose()
	}
	return nil
}

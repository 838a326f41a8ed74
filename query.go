package lookout

import (
	"slices"
	"strconv"
	"strings"
)

// QueryKey canonically identifies a set of component types: the ascending,
// de-duplicated ComponentIDs joined by commas. Any permutation of the same
// set yields the same key.
type QueryKey string

// query is the compiled, immutable form of a component-type set.
type query struct {
	key   QueryKey
	ids   []ComponentID
	types []ComponentType
	mask  bitmask
}

// compileQuery validates types, registers them and builds the canonical
// key and mask.
func compileQuery(reg *Registry, types []ComponentType) (query, error) {
	if len(types) == 0 {
		return query{}, EmptyQueryError{}
	}
	ids := make([]ComponentID, 0, len(types))
	for i, t := range types {
		if t == nil {
			return query{}, NilComponentTypeError{Index: i}
		}
		ids = append(ids, reg.Register(t))
	}
	slices.Sort(ids)
	ids = slices.Compact(ids)

	q := query{
		key:   keyOf(ids),
		ids:   ids,
		types: make([]ComponentType, len(ids)),
		mask:  newBitmask(ids...),
	}
	for i, id := range ids {
		q.types[i] = reg.Type(id)
	}
	return q, nil
}

// keyOf joins sorted ids into a QueryKey.
func keyOf(sorted []ComponentID) QueryKey {
	var b strings.Builder
	for i, id := range sorted {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(id), 10))
	}
	return QueryKey(b.String())
}

// materialize builds the tuple for e. Callers only ask for entities whose
// mask matches q, so a missing or disabled instance is a desync.
func (q query) materialize(e Entity) Tuple {
	tuple := make(Tuple, len(q.types))
	for i, t := range q.types {
		inst, ok := e.Component(t)
		if !ok || inst == nil || !inst.Enabled() {
			panic(MaskDesyncError{Entity: e.ID(), Type: t})
		}
		tuple[i] = inst
	}
	return tuple
}

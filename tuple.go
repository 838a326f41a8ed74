package lookout

// Tuple holds the component instances materialized for one entity of a view,
// ordered by ascending ComponentID (the order of View.Types).
type Tuple []ComponentInstance

// Get returns the instance of type t, if present.
func (t Tuple) Get(ct ComponentType) (ComponentInstance, bool) {
	ct = canonicalType(ct)
	for _, inst := range t {
		if canonicalType(inst.Type()) == ct {
			return inst, true
		}
	}
	return nil, false
}

func (t Tuple) clone() Tuple {
	out := make(Tuple, len(t))
	copy(out, t)
	return out
}

package lookout

// entityRecord is the engine-side state of one entity: the ids of its
// enabled components plus the entity's own enabled flag, which acts as an
// implicit bit every query requires.
type entityRecord struct {
	entity  Entity
	mask    bitmask
	enabled bool
}

func (r *entityRecord) matches(q query) bool {
	return r.enabled && r.mask.matches(q.mask)
}

// maskStore owns the entityRecords. Records are built lazily from the
// entity's current state and dropped when the entity is removed.
type maskStore struct {
	reg     *Registry
	records map[EntityID]*entityRecord
}

func newMaskStore(reg *Registry) maskStore {
	return maskStore{
		reg:     reg,
		records: make(map[EntityID]*entityRecord),
	}
}

// record returns the record for e, building it on first sight.
func (s *maskStore) record(e Entity) *entityRecord {
	if rec, ok := s.records[e.ID()]; ok {
		rec.entity = e
		return rec
	}
	rec := &entityRecord{entity: e, enabled: e.Enabled()}
	for inst := range e.Components() {
		if inst == nil || !inst.Enabled() {
			continue
		}
		rec.mask = rec.mask.set(s.reg.Register(inst.Type()))
	}
	s.records[e.ID()] = rec
	return rec
}

func (s *maskStore) lookup(id EntityID) (*entityRecord, bool) {
	rec, ok := s.records[id]
	return rec, ok
}

func (s *maskStore) remove(id EntityID) (*entityRecord, bool) {
	rec, ok := s.records[id]
	if ok {
		delete(s.records, id)
	}
	return rec, ok
}

func (s *maskStore) len() int {
	return len(s.records)
}

func (s *maskStore) reset() {
	s.records = make(map[EntityID]*entityRecord)
}

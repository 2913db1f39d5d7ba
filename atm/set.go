package atm

// A Set is the collection of machines of one playback session. Membership
// is fixed at construction; only the entity pointers are replaced as the
// projector produces updated copies.
type Set struct {
	entities  []*Entity
	nameIndex map[Name]int
}

// NewSet creates a Set from the given entities. A duplicated name panics,
// as the name is the entity identity.
func NewSet(entities []*Entity) *Set {
	s := &Set{
		entities:  make([]*Entity, len(entities)),
		nameIndex: make(map[Name]int, len(entities)),
	}

	copy(s.entities, entities)

	for i, e := range entities {
		if _, ok := s.nameIndex[e.Name]; ok {
			panic("atm " + string(e.Name) + " already in the set")
		}
		s.nameIndex[e.Name] = i
	}

	return s
}

// ByName returns the entity with the given name.
func (s *Set) ByName(name Name) (*Entity, bool) {
	i, ok := s.nameIndex[name]
	if !ok {
		return nil, false
	}

	return s.entities[i], true
}

// Replace swaps in an updated copy of an entity. Replacing a name that is
// not in the set is a no-op.
func (s *Set) Replace(e *Entity) {
	i, ok := s.nameIndex[e.Name]
	if !ok {
		return
	}

	s.entities[i] = e
}

// All returns a snapshot of the entity pointers in insertion order.
func (s *Set) All() []*Entity {
	snapshot := make([]*Entity, len(s.entities))
	copy(snapshot, s.entities)

	return snapshot
}

// Len returns the number of entities in the set.
func (s *Set) Len() int {
	return len(s.entities)
}

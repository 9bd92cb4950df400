package ltxtoc

import "strconv"

// IDSet is the registry of identifiers in use within one document.
type IDSet struct {
	used map[string]struct{}
}

// NewIDSet returns an IDSet seeded with ids.
func NewIDSet(ids ...string) *IDSet {
	s := &IDSet{used: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		s.used[id] = struct{}{}
	}
	return s
}

// Has reports whether id is registered.
func (s *IDSet) Has(id string) bool {
	_, ok := s.used[id]
	return ok
}

// Len returns the number of registered ids.
func (s *IDSet) Len() int {
	return len(s.used)
}

// Claim registers and returns base if it is free. Otherwise it probes
// base-2, base-3, ... and registers the first free candidate.
func (s *IDSet) Claim(base string) string {
	id := base
	for i := 2; s.Has(id); i++ {
		id = base + "-" + strconv.Itoa(i)
	}
	s.used[id] = struct{}{}
	return id
}

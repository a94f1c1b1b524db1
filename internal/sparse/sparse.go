// Package sparse provides a sparse set over small dense uint32 universes.
//
// A sparse set supports O(1) insertion, membership testing, and iteration
// while keeping a dense, order-stable list of its members. It is the
// workhorse for tracking state sets over a bounded, dense identifier space
// — the state-expression atom set, a SAFA's declared and final state sets,
// and the backward frontier in Accepts all reduce to the same shape: a set
// of small integers bounded by some maxID+1.
package sparse

// Set is a set of uint32 values bounded by a fixed capacity, supporting
// O(1) Insert/Contains/Remove and O(n) ordered iteration via Values.
//
// The sparse array maps a value to its index in the dense array; a value
// is a member iff that index is in range and points back at the value.
// Callers pick the capacity up front (typically maxStateId+1) since values
// outside [0, capacity) can never be inserted.
type Set struct {
	sparse []uint32
	dense  []uint32
	size   uint32
}

// New creates an empty Set over the universe [0, capacity).
func New(capacity uint32) *Set {
	return &Set{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds value to the set, returning true if it was not already a
// member. Values outside the set's capacity are silently ignored — the
// caller is expected to size the set to the relevant state universe ahead
// of time.
func (s *Set) Insert(value uint32) bool {
	if s.Contains(value) {
		return false
	}
	if value >= uint32(len(s.sparse)) {
		return false
	}
	s.sparse[value] = s.size
	s.dense = append(s.dense, value)
	s.size++
	return true
}

// Contains reports whether value is a member of the set.
func (s *Set) Contains(value uint32) bool {
	if value >= uint32(len(s.sparse)) {
		return false
	}
	idx := s.sparse[value]
	return idx < s.size && s.dense[idx] == value
}

// Remove deletes value from the set. A no-op if value isn't a member.
func (s *Set) Remove(value uint32) {
	if !s.Contains(value) {
		return
	}
	idx := s.sparse[value]
	last := s.dense[s.size-1]
	s.dense[idx] = last
	s.sparse[last] = idx
	s.size--
	s.dense = s.dense[:s.size]
}

// Clear empties the set in O(1).
func (s *Set) Clear() {
	s.size = 0
	s.dense = s.dense[:0]
}

// Len returns the number of members.
func (s *Set) Len() int {
	return int(s.size)
}

// IsEmpty reports whether the set has no members.
func (s *Set) IsEmpty() bool {
	return s.size == 0
}

// Values returns the members in insertion order, except that Remove moves
// the last member into the removed member's position. The returned slice aliases
// the set's storage and is only valid until the next mutating call.
func (s *Set) Values() []uint32 {
	return s.dense[:s.size]
}

// Clone returns an independent copy of s.
func (s *Set) Clone() *Set {
	c := &Set{
		sparse: make([]uint32, len(s.sparse)),
		dense:  make([]uint32, s.size, cap(s.dense)),
		size:   s.size,
	}
	copy(c.sparse, s.sparse)
	copy(c.dense, s.dense[:s.size])
	return c
}

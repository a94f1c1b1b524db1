package safa

// Builder incrementally assembles a transition list for New. Real callers
// — a surface-syntax compiler, out of scope for this package — build a
// SAFA's transitions one at a time rather than constructing the whole
// slice up front; Builder exists for them. New itself only needs the
// finished slice (Builder.Build).
type Builder struct {
	transitions []Transition
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends a transition and returns the Builder for chaining.
func (b *Builder) Add(from State, guard Predicate, to Expr) *Builder {
	b.transitions = append(b.transitions, Transition{From: from, Guard: guard, To: to})
	return b
}

// Len returns the number of transitions added so far.
func (b *Builder) Len() int {
	return len(b.transitions)
}

// Build returns the accumulated transitions. The returned slice aliases
// the Builder's storage; callers that keep using the Builder afterward
// should not mutate it.
func (b *Builder) Build() []Transition {
	return b.transitions
}

package safa

// Predicate is an opaque value from the caller's Boolean algebra. The core
// never inspects a Predicate's internal structure — every operation on one
// goes through Algebra.
type Predicate = any

// Symbol is an opaque input-alphabet value, evaluated against a Predicate
// only through Algebra.Eval. Used by the reference Accepts semantics.
type Symbol = any

// Minterm is one entry returned by Algebra.Minterms: Pred is the
// satisfiable conjunction of the positive entries of Positive and the
// negations of the rest, and Positive[i] is true iff the i-th input
// predicate to Minterms was required positive in this conjunction.
//
// The set of returned Minterms partitions the universe: their predicates
// are pairwise unsatisfiable in conjunction and their disjunction is true.
type Minterm struct {
	Pred     Predicate
	Positive []bool
}

// Algebra is the abstract Boolean algebra of predicates a SAFA is built
// over. Concrete theories (character equality, integer ranges, tuples, ...)
// are external collaborators — this package depends only on this
// capability set, never on a particular alphabet.
//
// Implementations may be backed by a real SAT solver with a timeout; any
// error returned from IsSatisfiable or Minterms is treated as fatal by this
// package and surfaces to the caller wrapped in a SolverTimeoutError.
type Algebra interface {
	// MkAnd, MkOr, and MkNot build new predicates from existing ones.
	// MkTrue and MkFalse are the algebra's Boolean constants. All five are
	// total — they never fail.
	MkAnd(p, q Predicate) Predicate
	MkOr(p, q Predicate) Predicate
	MkNot(p Predicate) Predicate
	MkTrue() Predicate
	MkFalse() Predicate

	// IsSatisfiable reports whether p has a model. May return an error if
	// the underlying SAT oracle fails or times out.
	IsSatisfiable(p Predicate) (bool, error)

	// Minterms partitions the universe into every satisfiable conjunction
	// of ±preds, one Minterm per conjunction, in an algebra-determined but
	// fixed order. May return an error if the oracle fails or times out.
	Minterms(preds []Predicate) ([]Minterm, error)

	// Eval reports whether symbol satisfies predicate p. Used only by the
	// reference Accepts semantics — TransitionTables and IsEquivalent never
	// call it.
	Eval(p Predicate, symbol Symbol) bool
}

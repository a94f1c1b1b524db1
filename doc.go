// Package safa implements Symbolic Alternating Finite Automata (SAFA):
// finite automata whose transition guards are predicates drawn from an
// abstract Boolean algebra and whose transition targets are positive
// Boolean formulas over states, rather than single successor states.
//
// A SAFA generalizes the ordinary symbolic finite automaton along two axes
// at once. First, the alphabet is never inspected directly — every guard
// is an opaque value P supplied by a caller-provided Algebra, so the same
// automaton code runs over characters, integers, tuples, or anything else
// with a Boolean-algebra structure. Second, a transition's target is not a
// single state but an Expr: a positive Boolean formula over states, so a
// single symbol can fork execution into an AND of obligations (every
// branch must eventually accept) as well as the familiar OR of
// alternatives.
//
// # Basic usage
//
// Construct transitions and hand them to New, which validates, indexes,
// and normalizes them:
//
//	t1 := safa.Transition{From: 0, Guard: isA, To: safa.AtomExpr(1)}
//	t2 := safa.Transition{From: 1, Guard: ba.MkTrue(), To: safa.AtomExpr(1)}
//	a, err := safa.New([]safa.Transition{t1, t2}, 0, []safa.State{1}, ba)
//
// Run it on a word with the reference backward-evaluation semantics:
//
//	ok := a.Accepts([]safa.Symbol{symA}, ba)
//
// Combine automata algebraically and decide language equivalence:
//
//	u, err := a.UnionWith(b, ba)
//	i, err := a.IntersectWith(b, ba)
//	eq, stats, err := safa.IsEquivalent(a, b, ba)
//
// # What this package does not do
//
// It does not implement a concrete predicate algebra (no character or
// integer theory ships here — see Algebra), does not parse a surface
// syntax into a SAFA, does not determinize the state expression, does not
// minimize automata, and has no standalone complementation operation
// (obtainable by De Morgan over Expr and the caller's algebra, but not
// specified as a method here). It has no I/O, no CLI, and no visualization.
package safa

package safa

import "github.com/JoeOsborn/symbolicautomata/internal/conv"

// UnionWith returns a SAFA accepting L(s) ∪ L(other): both automata's
// states are renumbered into disjoint ranges (other's states shifted by
// s.MaxStateID()+1) and spliced under a fresh initial state that inherits
// every transition leaving either original initial state.
func (s *SAFA) UnionWith(other *SAFA, ba Algebra) (*SAFA, error) {
	return binaryProduct(s, other, ba, opUnion)
}

// IntersectWith returns a SAFA accepting L(s) ∩ L(other): states are
// renumbered the same way as UnionWith, but the fresh initial state only
// gets transitions for pairs (t1, t2) — one leaving each original initial
// state — whose conjoined guard is satisfiable, targeting the AND of their
// (offset) successor expressions.
func (s *SAFA) IntersectWith(other *SAFA, ba Algebra) (*SAFA, error) {
	return binaryProduct(s, other, ba, opIntersection)
}

type productOp int

const (
	opUnion productOp = iota
	opIntersection
)

func binaryProduct(a1, a2 *SAFA, ba Algebra, op productOp) (*SAFA, error) {
	offset := State(conv.AddUint32(uint32(a1.maxStateID), 1))
	newInitial := State(conv.AddUint32(conv.AddUint32(uint32(a1.maxStateID), uint32(a2.maxStateID)), 2))

	var transitions []Transition
	for _, st := range a1.States() {
		transitions = append(transitions, a1.moves[st]...)
	}
	for _, st := range a2.States() {
		for _, t := range a2.moves[st] {
			transitions = append(transitions, Transition{
				From:  t.From + offset,
				Guard: t.Guard,
				To:    t.To.Offset(offset),
			})
		}
	}

	switch op {
	case opUnion:
		for _, t := range a1.moves[a1.initial] {
			transitions = append(transitions, Transition{From: newInitial, Guard: t.Guard, To: t.To})
		}
		for _, t := range a2.moves[a2.initial] {
			transitions = append(transitions, Transition{
				From:  newInitial,
				Guard: t.Guard,
				To:    t.To.Offset(offset),
			})
		}
	case opIntersection:
		for _, t1 := range a1.moves[a1.initial] {
			for _, t2 := range a2.moves[a2.initial] {
				guard := ba.MkAnd(t1.Guard, t2.Guard)
				ok, err := ba.IsSatisfiable(guard)
				if err != nil {
					return nil, wrapSolverErr("IntersectWith", err)
				}
				if !ok {
					continue
				}
				to := t1.To.And(t2.To.Offset(offset))
				transitions = append(transitions, Transition{From: newInitial, Guard: guard, To: to})
			}
		}
	}

	var finals []State
	for _, st := range a1.States() {
		if a1.IsFinal(st) {
			finals = append(finals, st)
		}
	}
	for _, st := range a2.States() {
		if a2.IsFinal(st) {
			finals = append(finals, st+offset)
		}
	}

	return New(transitions, newInitial, finals, ba)
}

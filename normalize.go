package safa

// Normalize rebuilds s so that every source state's outgoing guards are
// pairwise unsatisfiable (a mintermized partition of that state's guard
// set), by asking ba.Minterms for each state's guard list and, for each
// returned minterm with a nonempty positive set, emitting a transition
// whose target is the OR of the original targets selected by that
// minterm. A minterm with an empty positive set denotes "none of this
// state's guards apply" and contributes nothing — it is silently dropped,
// same as the False-target case.
//
// Normalize never changes the declared state set, the initial state, or
// the final states; it only replaces each state's transition list with a
// semantically equivalent mintermized one. It is idempotent up to Expr
// equivalence and preserves the automaton's language.
func (s *SAFA) Normalize(ba Algebra) (*SAFA, error) {
	out := newIndex(s.maxStateID)
	out.initial = s.initial
	out.declared = s.declared.Clone()
	out.finals = s.finals.Clone()

	for _, st := range s.States() {
		ts := s.moves[st]
		if len(ts) == 0 {
			continue
		}
		guards := make([]Predicate, len(ts))
		for i, t := range ts {
			guards[i] = t.Guard
		}
		minterms, err := ba.Minterms(guards)
		if err != nil {
			return nil, wrapSolverErr("Normalize", err)
		}
		for _, m := range minterms {
			combined := FalseExpr()
			for i, positive := range m.Positive {
				if positive {
					combined = combined.Or(ts[i].To)
				}
			}
			if combined.IsFalse() {
				continue
			}
			out.addTransition(Transition{From: st, Guard: m.Pred, To: combined})
		}
	}
	return out, nil
}

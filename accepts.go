package safa

import "github.com/JoeOsborn/symbolicautomata/internal/sparse"

// Accepts is the reference acceptance semantics, used for testing rather
// than performance: it runs the automaton backward over word.
//
// Starting from the final states, each symbol (read in reverse) is used to
// compute the set of states from which firing some transition whose guard
// the symbol satisfies lands in a StateExpression that already has a model
// in the current candidate set; if that computed set is ever empty the
// word is rejected outright. After consuming every symbol, the word is
// accepted iff the initial state is among the surviving candidates.
func (s *SAFA) Accepts(word []Symbol, ba Algebra) bool {
	candidates := s.Final()
	if len(word) == 0 {
		return candidates.Contains(uint32(s.initial))
	}
	for i := len(word) - 1; i >= 0; i-- {
		a := word[i]
		next := sparse.New(uint32(s.maxStateID) + 1)
		for _, st := range s.States() {
			for _, t := range s.moves[st] {
				if !ba.Eval(t.Guard, a) {
					continue
				}
				if t.To.HasModel(candidates) {
					next.Insert(uint32(t.From))
					break
				}
			}
		}
		if next.IsEmpty() {
			return false
		}
		candidates = next
	}
	return candidates.Contains(uint32(s.initial))
}

package safa

// EquivStats reports search-size counters for one IsEquivalent call, useful
// for debugging and tuning the way meta.Engine.Stats reports search effort
// for a compiled regex — it carries no information IsEquivalent's bool
// result doesn't already imply, but it's cheap to collect and handy for
// understanding why a particular pair of automata was slow to compare.
type EquivStats struct {
	// PairsExplored counts worklist pops (configuration pairs whose moves
	// were actually enumerated).
	PairsExplored int
	// PairsDiscovered counts distinct (L, R) pairs added to the similarity
	// relation, including the seed pair.
	PairsDiscovered int
	// PairsReused counts times a freshly computed pair was already present
	// in the similarity relation and so was not re-enqueued.
	PairsReused int
}

// IsEquivalent decides whether L(left) = L(right) by a FIFO worklist
// bisimulation over pairs of StateExpressions, each denoting a current
// configuration that is accepting iff it has a model in the corresponding
// automaton's final states.
//
// Right-hand transition tables are refined under the left-hand guard
// chosen for the pair (TransitionTables(..., gLeft, ba)), while left-hand
// tables are only refined under ba.MkTrue(); every satisfiable left choice
// is matched against a right-hand partition of the same symbol region.
// This asymmetry is sound, not symmetric, but the discovered relation still
// witnesses language equivalence when the search completes without finding
// a mismatched-acceptance pair.
//
// Any error from the algebra surfaces unchanged (wrapped where it
// originates, in TransitionTables or IsSatisfiable); the partial similarity
// relation and worklist are discarded on any exit path.
func IsEquivalent(left, right *SAFA, ba Algebra) (bool, EquivStats, error) {
	var stats EquivStats

	leftCfg := AtomExpr(left.Initial())
	rightCfg := AtomExpr(right.Initial())

	// The empty word: the initial configurations must agree on acceptance.
	if leftCfg.HasModel(left.Final()) != rightCfg.HasModel(right.Final()) {
		return false, stats, nil
	}

	sim := newSimilarity()
	sim.Add(leftCfg, rightCfg)
	stats.PairsDiscovered++

	type cfgPair struct {
		L, R Expr
	}
	queue := []cfgPair{{leftCfg, rightCfg}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		stats.PairsExplored++

		leftMoves, err := left.TransitionTables(cur.L.States(), ba.MkTrue(), ba)
		if err != nil {
			return false, stats, err
		}
		for _, lt := range leftMoves {
			lPrime, err := cur.L.Substitute(lt.asSubstitution())
			if err != nil {
				return false, stats, err
			}
			lAccepts := lPrime.HasModel(left.Final())

			rightMoves, err := right.TransitionTables(cur.R.States(), lt.Guard, ba)
			if err != nil {
				return false, stats, err
			}
			for _, rt := range rightMoves {
				rPrime, err := cur.R.Substitute(rt.asSubstitution())
				if err != nil {
					return false, stats, err
				}
				rAccepts := rPrime.HasModel(right.Final())

				if lAccepts != rAccepts {
					return false, stats, nil
				}
				if sim.IsMember(lPrime, rPrime) {
					stats.PairsReused++
					continue
				}
				sim.Add(lPrime, rPrime)
				stats.PairsDiscovered++
				queue = append(queue, cfgPair{lPrime, rPrime})
			}
		}
	}
	return true, stats, nil
}

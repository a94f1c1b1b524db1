package safa

import "sort"

// TransitionTable is one outcome of TransitionTables: Guard is a refined
// predicate and Table gives, for every state the enumeration was asked
// about, the successor Expr chosen for that state under Guard.
type TransitionTable struct {
	Guard Predicate
	table map[State]Expr
}

// At returns the successor Expr recorded for st, or FalseExpr (the
// sentinel) if st was never part of the enumeration's state set.
func (tt TransitionTable) At(st State) Expr {
	if e, ok := tt.table[st]; ok {
		return e
	}
	return FalseExpr()
}

// asSubstitution exposes the table in the shape Expr.Substitute expects.
// Callers must only Substitute an Expr whose States() are a subset of the
// states this table was built over.
func (tt TransitionTable) asSubstitution() map[State]Expr {
	return tt.table
}

// TransitionTables enumerates every satisfiable combination of outgoing
// guards, one per state in states, refined under constraint: starting from
// the singleton list [(constraint, emptyTable)], it processes states in
// ascending order and, for each (guard, table) currently held and each
// outgoing transition (s, g_t, to) of the state being processed, appends
// (guard && g_t, table with table[s]=to) whenever that conjunction is
// satisfiable. The part of guard that none of the state's outgoing guards
// covers, when satisfiable, is appended as well, with table[s]=False.
//
// On return: for automata whose per-state guards are pairwise disjoint (as
// New and Normalize produce), the returned guards are pairwise
// unsatisfiable in conjunction, their disjunction equals constraint, and
// every satisfiable combination of per-state guard choices (including the
// False choice of a state with no move) appears exactly once.
func (s *SAFA) TransitionTables(states []State, constraint Predicate, ba Algebra) ([]TransitionTable, error) {
	ordered := append([]State(nil), states...)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })

	candidates := []TransitionTable{{Guard: constraint, table: map[State]Expr{}}}
	for _, st := range ordered {
		var next []TransitionTable
		for _, cand := range candidates {
			uncovered := cand.Guard
			for _, t := range s.moves[st] {
				uncovered = ba.MkAnd(uncovered, ba.MkNot(t.Guard))
				refined := ba.MkAnd(cand.Guard, t.Guard)
				ok, err := ba.IsSatisfiable(refined)
				if err != nil {
					return nil, wrapSolverErr("TransitionTables", err)
				}
				if !ok {
					continue
				}
				table := cloneTable(cand.table)
				table[st] = t.To
				next = append(next, TransitionTable{Guard: refined, table: table})
			}
			// Symbols under cand.Guard that no transition of st accepts send
			// st to False.
			ok, err := ba.IsSatisfiable(uncovered)
			if err != nil {
				return nil, wrapSolverErr("TransitionTables", err)
			}
			if ok {
				table := cloneTable(cand.table)
				table[st] = FalseExpr()
				next = append(next, TransitionTable{Guard: uncovered, table: table})
			}
		}
		candidates = next
	}
	return candidates, nil
}

func cloneTable(t map[State]Expr) map[State]Expr {
	out := make(map[State]Expr, len(t)+1)
	for k, v := range t {
		out[k] = v
	}
	return out
}

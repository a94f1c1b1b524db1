package safa

import (
	"fmt"
	"sort"
	"strings"

	"github.com/JoeOsborn/symbolicautomata/internal/sparse"
)

// SAFA is an immutable Symbolic Alternating Finite Automaton: a finite set
// of declared states, an initial state, a set of final states, and an
// index from each state to its outgoing transitions.
//
// SAFA values are only ever produced by New, Empty, Normalize,
// UnionWith, and IntersectWith, each of which returns a fresh value —
// inputs are never mutated, and a SAFA may be freely shared by reference.
type SAFA struct {
	declared    *sparse.Set
	initial     State
	finals      *sparse.Set
	moves       map[State][]Transition
	maxStateID  State
	transitions int
}

// New builds a SAFA from a transition list (mk_safa): it starts from a
// blank automaton, declares initial and every member of finals, then
// inserts each transition whose Guard is satisfiable under ba (an
// unsatisfiable transition is silently dropped, per spec), growing the
// declared-state universe and maxStateId as it goes. The result is
// returned normalized (see Normalize).
//
// Any error from ba.IsSatisfiable is wrapped in a *SolverTimeoutError and
// returned as-is; no partial SAFA is returned on error.
func New(transitions []Transition, initial State, finals []State, ba Algebra) (*SAFA, error) {
	maxID := initial
	for _, f := range finals {
		maxID = maxState(maxID, f)
	}
	for _, t := range transitions {
		maxID = maxState(maxID, t.From)
		for _, s := range t.To.States() {
			maxID = maxState(maxID, s)
		}
	}
	raw := newIndex(maxID)
	raw.initial = initial
	raw.declared.Insert(uint32(initial))
	for _, f := range finals {
		raw.declared.Insert(uint32(f))
		raw.finals.Insert(uint32(f))
	}
	for _, t := range transitions {
		ok, err := ba.IsSatisfiable(t.Guard)
		if err != nil {
			return nil, wrapSolverErr("New", err)
		}
		if !ok {
			continue
		}
		raw.addTransition(t)
	}
	return raw.Normalize(ba)
}

// Empty returns the SAFA accepting exactly the empty language: one state
// (the initial state), no transitions, no final states.
func Empty(ba Algebra) *SAFA {
	s := newIndex(0)
	s.declared.Insert(0)
	return s
}

// newIndex allocates a blank SAFA whose per-state arrays are sized for
// states up to maxID inclusive.
func newIndex(maxID State) *SAFA {
	capacity := uint32(maxID) + 1
	return &SAFA{
		declared:   sparse.New(capacity),
		finals:     sparse.New(capacity),
		moves:      make(map[State][]Transition),
		maxStateID: maxID,
	}
}

// addTransition records a (pre-checked) transition, growing declared and
// maxStateID to cover every atom it mentions.
func (s *SAFA) addTransition(t Transition) {
	s.declared.Insert(uint32(t.From))
	for _, atom := range t.To.States() {
		s.declared.Insert(uint32(atom))
	}
	s.moves[t.From] = append(s.moves[t.From], t)
	s.transitions++
}

func maxState(a, b State) State {
	if b > a {
		return b
	}
	return a
}

// Initial returns the initial state.
func (s *SAFA) Initial() State {
	return s.initial
}

// MaxStateID returns the largest state identifier ever seen.
func (s *SAFA) MaxStateID() State {
	return s.maxStateID
}

// TransitionCount returns the total number of stored transitions.
func (s *SAFA) TransitionCount() int {
	return s.transitions
}

// IsFinal reports whether st is a final state.
func (s *SAFA) IsFinal(st State) bool {
	return s.finals.Contains(uint32(st))
}

// Final returns a fresh sparse set containing the final states, sized for
// this automaton's state universe — suitable as the F argument to
// Expr.HasModel.
func (s *SAFA) Final() *sparse.Set {
	return s.finals.Clone()
}

// States returns the declared states in ascending order.
func (s *SAFA) States() []State {
	vals := append([]uint32(nil), s.declared.Values()...)
	sort.Slice(vals, func(i, j int) bool { return vals[i] < vals[j] })
	out := make([]State, len(vals))
	for i, v := range vals {
		out[i] = State(v)
	}
	return out
}

// MovesFrom returns the transitions whose From is st, in insertion order.
// The returned slice aliases SAFA-owned storage and must not be mutated.
func (s *SAFA) MovesFrom(st State) []Transition {
	return s.moves[st]
}

// String renders a compact debug summary of the automaton.
func (s *SAFA) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "SAFA{states=%d, initial=%d, finals=%d, transitions=%d}",
		s.declared.Len(), s.initial, s.finals.Len(), s.transitions)
	return b.String()
}

package safa_test

import (
	"testing"

	safa "github.com/JoeOsborn/symbolicautomata"
	"github.com/JoeOsborn/symbolicautomata/internal/testalgebra"
)

// acceptsExactlyA builds the 2-state automaton from spec.md scenario S2:
// 0 -['a']-> 1, final={1}. It accepts the single-symbol word "a" and
// nothing else (in particular not "ab" or the empty word).
func acceptsExactlyA(t *testing.T, ba testalgebra.Algebra) *safa.SAFA {
	t.Helper()
	transitions := []safa.Transition{
		{From: 0, Guard: safa.Predicate(testalgebra.Byte('a')), To: safa.AtomExpr(1)},
	}
	a, err := safa.New(transitions, 0, []safa.State{1}, ba)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return a
}

func TestAcceptsS2ExactlyA(t *testing.T) {
	ba := testalgebra.New()
	a := acceptsExactlyA(t, ba)

	if !a.Accepts([]safa.Symbol{byte('a')}, ba) {
		t.Fatal(`expected "a" to be accepted`)
	}
	if a.Accepts([]safa.Symbol{byte('a'), byte('b')}, ba) {
		t.Fatal(`expected "ab" to be rejected`)
	}
	if a.Accepts([]safa.Symbol{}, ba) {
		t.Fatal("expected the empty word to be rejected (initial state is not final)")
	}
}

func TestAcceptsS3OrderMatters(t *testing.T) {
	ba := testalgebra.New()
	// A accepts "ab".
	a, err := safa.New([]safa.Transition{
		{From: 0, Guard: safa.Predicate(testalgebra.Byte('a')), To: safa.AtomExpr(1)},
		{From: 1, Guard: safa.Predicate(testalgebra.Byte('b')), To: safa.AtomExpr(2)},
	}, 0, []safa.State{2}, ba)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// B accepts "ba".
	b, err := safa.New([]safa.Transition{
		{From: 0, Guard: safa.Predicate(testalgebra.Byte('b')), To: safa.AtomExpr(1)},
		{From: 1, Guard: safa.Predicate(testalgebra.Byte('a')), To: safa.AtomExpr(2)},
	}, 0, []safa.State{2}, ba)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !a.Accepts([]safa.Symbol{byte('a'), byte('b')}, ba) {
		t.Fatal(`expected A to accept "ab"`)
	}
	if b.Accepts([]safa.Symbol{byte('a'), byte('b')}, ba) {
		t.Fatal(`expected B to reject "ab"`)
	}
}

func TestAcceptsS4DisjunctiveFinal(t *testing.T) {
	ba := testalgebra.New()
	// q0 -[true]-> q0 | q1, final = {q0, q1}.
	a, err := safa.New([]safa.Transition{
		{From: 0, Guard: ba.MkTrue(), To: safa.AtomExpr(0).Or(safa.AtomExpr(1))},
	}, 0, []safa.State{0, 1}, ba)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !a.Accepts([]safa.Symbol{byte('x')}, ba) {
		t.Fatal(`expected "x" to be accepted`)
	}
	if !a.Accepts([]safa.Symbol{}, ba) {
		t.Fatal("expected the empty word to be accepted, since initial state 0 is final")
	}
}

func TestAcceptsEmptySAFARejectsEverything(t *testing.T) {
	ba := testalgebra.New()
	e := safa.Empty(ba)
	if e.Accepts([]safa.Symbol{}, ba) {
		t.Fatal("Empty should reject the empty word")
	}
	if e.Accepts([]safa.Symbol{byte('a')}, ba) {
		t.Fatal("Empty should reject every nonempty word")
	}
}

func TestAcceptsDeadStateRejects(t *testing.T) {
	ba := testalgebra.New()
	a := acceptsExactlyA(t, ba)
	// Past the accepting state there are no outgoing transitions, so any
	// further symbol collapses the candidate set to empty and rejects.
	if a.Accepts([]safa.Symbol{byte('a'), byte('a')}, ba) {
		t.Fatal(`expected "aa" to be rejected`)
	}
}

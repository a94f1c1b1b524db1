package safa_test

import (
	"testing"

	safa "github.com/JoeOsborn/symbolicautomata"
	"github.com/JoeOsborn/symbolicautomata/internal/testalgebra"
)

// startsWithA accepts every nonempty word whose first byte is 'a'. It is
// built as a total DFA (every state has a transition covering every byte)
// so that complementTotal (equivalence_test.go) can complement it by
// flipping final states alone.
func startsWithA(t *testing.T, ba testalgebra.Algebra) *safa.SAFA {
	t.Helper()
	notA := ba.MkNot(safa.Predicate(testalgebra.Byte('a')))
	a, err := safa.New([]safa.Transition{
		{From: 0, Guard: safa.Predicate(testalgebra.Byte('a')), To: safa.AtomExpr(1)},
		{From: 0, Guard: notA, To: safa.AtomExpr(2)},
		{From: 1, Guard: ba.MkTrue(), To: safa.AtomExpr(1)},
		{From: 2, Guard: ba.MkTrue(), To: safa.AtomExpr(2)},
	}, 0, []safa.State{1}, ba)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return a
}

// endsWithB accepts every nonempty word whose last byte is 'b'. Built as a
// total 2-state DFA (q0 = "last byte wasn't b, or start", q1 = "last byte
// was b") for the same reason as startsWithA.
func endsWithB(t *testing.T, ba testalgebra.Algebra) *safa.SAFA {
	t.Helper()
	notB := ba.MkNot(safa.Predicate(testalgebra.Byte('b')))
	a, err := safa.New([]safa.Transition{
		{From: 0, Guard: safa.Predicate(testalgebra.Byte('b')), To: safa.AtomExpr(1)},
		{From: 0, Guard: notB, To: safa.AtomExpr(0)},
		{From: 1, Guard: safa.Predicate(testalgebra.Byte('b')), To: safa.AtomExpr(1)},
		{From: 1, Guard: notB, To: safa.AtomExpr(0)},
	}, 0, []safa.State{1}, ba)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return a
}

func asWord(s string) []safa.Symbol {
	out := make([]safa.Symbol, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = s[i]
	}
	return out
}

func TestIntersectionSoundnessS5(t *testing.T) {
	ba := testalgebra.New()
	a := startsWithA(t, ba)
	b := endsWithB(t, ba)

	inter, err := a.IntersectWith(b, ba)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := map[string]bool{
		"aab": true,
		"bab": false,
		"aaa": false,
	}
	for word, want := range cases {
		got := inter.Accepts(asWord(word), ba)
		if got != want {
			t.Fatalf("Accepts(intersection, %q) = %v, want %v", word, got, want)
		}
		if got != (a.Accepts(asWord(word), ba) && b.Accepts(asWord(word), ba)) {
			t.Fatalf("intersection unsound on %q", word)
		}
	}
}

func TestUnionSoundness(t *testing.T) {
	ba := testalgebra.New()
	a := startsWithA(t, ba)
	b := endsWithB(t, ba)

	u, err := a.UnionWith(b, ba)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	words := []string{"aab", "bab", "aaa", "zzb", "zzz"}
	for _, word := range words {
		got := u.Accepts(asWord(word), ba)
		want := a.Accepts(asWord(word), ba) || b.Accepts(asWord(word), ba)
		if got != want {
			t.Fatalf("union unsound on %q: got %v, want %v", word, got, want)
		}
	}
}

func TestIntersectionWithEmptyIsEmpty(t *testing.T) {
	ba := testalgebra.New()
	a := startsWithA(t, ba)
	empty := safa.Empty(ba)

	inter, err := a.IntersectWith(empty, ba)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inter.Accepts(asWord("aab"), ba) {
		t.Fatal("intersection with the empty-language automaton should accept nothing")
	}
}

func TestUnionWithEmptyIsIdentity(t *testing.T) {
	ba := testalgebra.New()
	a := startsWithA(t, ba)
	empty := safa.Empty(ba)

	u, err := a.UnionWith(empty, ba)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, word := range []string{"abc", "zzz", "aaa"} {
		if u.Accepts(asWord(word), ba) != a.Accepts(asWord(word), ba) {
			t.Fatalf("union with Empty changed acceptance of %q", word)
		}
	}
}

package testalgebra

import (
	"testing"

	safa "github.com/JoeOsborn/symbolicautomata"
)

func TestAlgebraSatisfiesInterface(t *testing.T) {
	var _ safa.Algebra = New()
}

func TestAlgebraEval(t *testing.T) {
	ba := New()
	p := safa.Predicate(Byte('x'))
	if !ba.Eval(p, byte('x')) {
		t.Fatal("Eval should match the byte the predicate was built from")
	}
	if ba.Eval(p, byte('y')) {
		t.Fatal("Eval should reject a different byte")
	}
}

func TestAlgebraMkOps(t *testing.T) {
	ba := New()
	a := safa.Predicate(Range('a', 'm'))
	b := safa.Predicate(Range('g', 'z'))

	and := ba.MkAnd(a, b).(BytePred)
	if !and.Test('h') || and.Test('b') {
		t.Fatal("MkAnd should match only the overlap")
	}

	or := ba.MkOr(a, b).(BytePred)
	if !or.Test('b') || !or.Test('x') {
		t.Fatal("MkOr should match either side")
	}

	not := ba.MkNot(a).(BytePred)
	if not.Test('b') || !not.Test('z') {
		t.Fatal("MkNot should invert membership")
	}

	ok, err := ba.IsSatisfiable(ba.MkTrue())
	if err != nil || !ok {
		t.Fatal("MkTrue should be satisfiable")
	}
	ok, err = ba.IsSatisfiable(ba.MkFalse())
	if err != nil || ok {
		t.Fatal("MkFalse should not be satisfiable")
	}
}

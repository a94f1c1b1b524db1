package testalgebra

import safa "github.com/JoeOsborn/symbolicautomata"

// Algebra adapts BytePred/Minterms to safa.Algebra, giving the safa
// package's test suite a concrete instance to drive the abstract machinery with —
// the role the teacher's regexp/syntax-derived NFAs play in its own tests.
type Algebra struct{}

// New returns a fresh Algebra value.
func New() Algebra {
	return Algebra{}
}

func (Algebra) MkAnd(p, q safa.Predicate) safa.Predicate { return p.(BytePred).And(q.(BytePred)) }
func (Algebra) MkOr(p, q safa.Predicate) safa.Predicate  { return p.(BytePred).Or(q.(BytePred)) }
func (Algebra) MkNot(p safa.Predicate) safa.Predicate    { return p.(BytePred).Not() }
func (Algebra) MkTrue() safa.Predicate                   { return All() }
func (Algebra) MkFalse() safa.Predicate                  { return None() }

func (Algebra) IsSatisfiable(p safa.Predicate) (bool, error) {
	return p.(BytePred).IsSatisfiable(), nil
}

func (Algebra) Minterms(preds []safa.Predicate) ([]safa.Minterm, error) {
	typed := make([]BytePred, len(preds))
	for i, p := range preds {
		typed[i] = p.(BytePred)
	}
	ms := Minterms(typed)
	out := make([]safa.Minterm, len(ms))
	for i, m := range ms {
		out[i] = safa.Minterm{Pred: m.Pred, Positive: m.Positive}
	}
	return out, nil
}

func (Algebra) Eval(p safa.Predicate, symbol safa.Symbol) bool {
	return p.(BytePred).Test(symbol.(byte))
}

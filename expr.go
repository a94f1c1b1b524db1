package safa

import (
	"fmt"
	"sort"
	"strings"

	"github.com/JoeOsborn/symbolicautomata/internal/sparse"
)

// Expr is a positive Boolean formula over State atoms: built from False,
// True, Atom(s), Or, and And — no negation. Internally it is kept as a
// sum-of-products (an antichain of minimal satisfying state sets, i.e. its
// prime implicants): terms is a list of sorted, deduplicated atom sets,
// and no term is a subset of another. Because the prime-implicant set of a
// monotone Boolean function is unique, two Exprs built by different paths
// that denote the same function always reduce to the same terms — Expr
// values support direct structural equality (see Equal) as a genuine
// semantic-equivalence test, not just a syntactic approximation.
//
// Expr values are immutable; every operation returns a new Expr.
type Expr struct {
	terms [][]State
}

// FalseExpr is the Boolean constant false (no satisfying state set; the
// empty disjunction).
func FalseExpr() Expr {
	return Expr{}
}

// TrueExpr is the Boolean constant true (satisfied by every state set,
// including the empty one; the empty conjunction).
func TrueExpr() Expr {
	return Expr{terms: [][]State{{}}}
}

// AtomExpr is the formula satisfied exactly by state sets containing s.
func AtomExpr(s State) Expr {
	return Expr{terms: [][]State{{s}}}
}

// IsFalse reports whether e is the constant False.
func (e Expr) IsFalse() bool {
	return len(e.terms) == 0
}

// IsTrue reports whether e is the constant True.
func (e Expr) IsTrue() bool {
	return len(e.terms) == 1 && len(e.terms[0]) == 0
}

// Or returns e || other.
func (e Expr) Or(other Expr) Expr {
	merged := make([][]State, 0, len(e.terms)+len(other.terms))
	merged = append(merged, e.terms...)
	merged = append(merged, other.terms...)
	return Expr{terms: reduceAntichain(merged)}
}

// And returns e && other.
func (e Expr) And(other Expr) Expr {
	if e.IsFalse() || other.IsFalse() {
		return FalseExpr()
	}
	product := make([][]State, 0, len(e.terms)*len(other.terms))
	for _, a := range e.terms {
		for _, b := range other.terms {
			product = append(product, unionTerm(a, b))
		}
	}
	return Expr{terms: reduceAntichain(product)}
}

// Offset returns e with every atom s renamed to s+k.
func (e Expr) Offset(k State) Expr {
	out := make([][]State, len(e.terms))
	for i, term := range e.terms {
		nt := make([]State, len(term))
		for j, s := range term {
			nt[j] = s + k
		}
		out[i] = nt
	}
	return Expr{terms: out}
}

// States returns the atoms appearing in e, sorted ascending with no
// duplicates. By construction (terms carry only atoms that are actually
// part of a prime implicant) every element returned is a free variable of
// the formula — there are no dead atoms after simplification.
func (e Expr) States() []State {
	seen := map[State]struct{}{}
	var out []State
	for _, term := range e.terms {
		for _, s := range term {
			if _, ok := seen[s]; !ok {
				seen[s] = struct{}{}
				out = append(out, s)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// HasModel reports whether assigning true exactly to the members of F
// satisfies e: some term's atoms are all contained in F.
func (e Expr) HasModel(F *sparse.Set) bool {
	for _, term := range e.terms {
		if termSatisfiedBy(term, F) {
			return true
		}
	}
	return false
}

func termSatisfiedBy(term []State, F *sparse.Set) bool {
	for _, s := range term {
		if !F.Contains(uint32(s)) {
			return false
		}
	}
	return true
}

// Substitute structurally replaces every atom s with table[s], distributing
// over Or and And (homomorphic, identity on the True/False constants).
// Every atom in e.States() must have an entry in table; a missing entry is
// a programming error and is reported as an *IllegalArgumentError.
func (e Expr) Substitute(table map[State]Expr) (Expr, error) {
	result := FalseExpr()
	for _, term := range e.terms {
		acc := TrueExpr()
		for _, s := range term {
			repl, ok := table[s]
			if !ok {
				return Expr{}, &IllegalArgumentError{
					Detail: fmt.Sprintf("substitute: no entry for state %d", s),
				}
			}
			acc = acc.And(repl)
		}
		result = result.Or(acc)
	}
	return result, nil
}

// String renders e as an OR of ANDs, shorter terms first, e.g.
// "(1) | (0 & 2)", "true", or "false".
func (e Expr) String() string {
	if e.IsFalse() {
		return "false"
	}
	if e.IsTrue() {
		return "true"
	}
	parts := make([]string, len(e.terms))
	for i, term := range e.terms {
		atoms := make([]string, len(term))
		for j, s := range term {
			atoms[j] = fmt.Sprintf("%d", s)
		}
		parts[i] = "(" + strings.Join(atoms, " & ") + ")"
	}
	return strings.Join(parts, " | ")
}

// Equal reports whether e and other denote the same Boolean function,
// relying on the uniqueness of the prime-implicant (minimal antichain)
// representation both values are kept in.
func (e Expr) Equal(other Expr) bool {
	if len(e.terms) != len(other.terms) {
		return false
	}
	a := canonicalTermOrder(e.terms)
	b := canonicalTermOrder(other.terms)
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}

func canonicalTermOrder(terms [][]State) [][]State {
	out := make([][]State, len(terms))
	copy(out, terms)
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) < len(out[j])
		}
		for k := range out[i] {
			if out[i][k] != out[j][k] {
				return out[i][k] < out[j][k]
			}
		}
		return false
	})
	return out
}

// unionTerm returns the sorted, deduplicated union of two atom sets.
func unionTerm(a, b []State) []State {
	merged := make([]State, 0, len(a)+len(b))
	merged = append(merged, a...)
	merged = append(merged, b...)
	sort.Slice(merged, func(i, j int) bool { return merged[i] < merged[j] })
	out := merged[:0]
	var last State
	hasLast := false
	for _, s := range merged {
		if hasLast && s == last {
			continue
		}
		out = append(out, s)
		last = s
		hasLast = true
	}
	return out
}

// subsetTerm reports whether every element of a appears in b. Both must be
// sorted ascending.
func subsetTerm(a, b []State) bool {
	if len(a) > len(b) {
		return false
	}
	i := 0
	for _, s := range b {
		if i == len(a) {
			break
		}
		if a[i] == s {
			i++
		}
	}
	return i == len(a)
}

// reduceAntichain sorts terms ascending (each term already sorted/deduped
// by its constructor) and drops every term that is a superset of another
// term in the list, leaving the unique minimal antichain of satisfying
// sets (the formula's prime implicants).
func reduceAntichain(terms [][]State) [][]State {
	norm := make([][]State, len(terms))
	for i, t := range terms {
		norm[i] = unionTerm(t, nil)
	}
	sort.Slice(norm, func(i, j int) bool {
		if len(norm[i]) != len(norm[j]) {
			return len(norm[i]) < len(norm[j])
		}
		for k := range norm[i] {
			if norm[i][k] != norm[j][k] {
				return norm[i][k] < norm[j][k]
			}
		}
		return false
	})
	var kept [][]State
	for _, t := range norm {
		subsumed := false
		for _, k := range kept {
			if subsetTerm(k, t) {
				subsumed = true
				break
			}
		}
		if !subsumed {
			kept = append(kept, t)
		}
	}
	return kept
}

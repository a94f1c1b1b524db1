// Package testalgebra provides a concrete, test-only predicate algebra
// over bytes, so the rest of the module's test suites can drive SAFA
// construction, Accepts, Normalize, the product operations, and
// IsEquivalent with real guards instead of opaque stand-ins — the same
// role the teacher's regexp/syntax-derived NFAs play for its own tests.
// Concrete algebras are out of scope for the public API; this one is not
// exported outside the module.
package testalgebra

import "sort"

// BytePred is a set of bytes represented as a 256-bit bitset, split into
// four uint64 words. It is its own Predicate value — safa.Algebra treats
// it as an opaque any, but within this package it's a plain bitset so
// MkAnd/MkOr/MkNot/IsSatisfiable/Minterms are simple bit twiddling.
type BytePred [4]uint64

// Byte returns the singleton predicate matching exactly b.
func Byte(b byte) BytePred {
	var p BytePred
	p.set(b)
	return p
}

// Range returns the predicate matching every byte in [lo, hi] inclusive.
func Range(lo, hi byte) BytePred {
	var p BytePred
	for b := int(lo); b <= int(hi); b++ {
		p.set(byte(b))
	}
	return p
}

// All returns the predicate matching every byte.
func All() BytePred {
	return BytePred{^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0)}
}

// None returns the predicate matching no byte.
func None() BytePred {
	return BytePred{}
}

func (p *BytePred) set(b byte) {
	p[b/64] |= 1 << uint(b%64)
}

// Test reports whether b is a member of p.
func (p BytePred) Test(b byte) bool {
	return p[b/64]&(1<<uint(b%64)) != 0
}

// And returns the bitwise AND of p and q.
func (p BytePred) And(q BytePred) BytePred {
	var out BytePred
	for i := range out {
		out[i] = p[i] & q[i]
	}
	return out
}

// Or returns the bitwise OR of p and q.
func (p BytePred) Or(q BytePred) BytePred {
	var out BytePred
	for i := range out {
		out[i] = p[i] | q[i]
	}
	return out
}

// Not returns the complement of p over the full byte alphabet.
func (p BytePred) Not() BytePred {
	var out BytePred
	for i := range out {
		out[i] = ^p[i]
	}
	return out
}

// IsSatisfiable reports whether p matches at least one byte.
func (p BytePred) IsSatisfiable() bool {
	for _, w := range p {
		if w != 0 {
			return true
		}
	}
	return false
}

// Minterm is the byte-algebra analogue of safa.Minterm, typed over
// BytePred; Algebra.Minterms converts each one to a safa.Minterm.
type Minterm struct {
	Pred     BytePred
	Positive []bool
}

// Minterms partitions the 256-byte alphabet by which of preds each byte
// satisfies, returning one Minterm per distinct pattern that at least one
// byte actually exhibits. Patterns are returned in ascending order of their
// positive-bit pattern, giving Minterms a fixed, reproducible iteration
// order as spec.md §5 requires.
func Minterms(preds []BytePred) []Minterm {
	groups := map[uint64][]byte{}
	for b := 0; b < 256; b++ {
		var mask uint64
		for i, p := range preds {
			if p.Test(byte(b)) {
				mask |= 1 << uint(i)
			}
		}
		groups[mask] = append(groups[mask], byte(b))
	}

	masks := make([]uint64, 0, len(groups))
	for m := range groups {
		masks = append(masks, m)
	}
	sort.Slice(masks, func(i, j int) bool { return masks[i] < masks[j] })

	out := make([]Minterm, 0, len(masks))
	for _, mask := range masks {
		var bp BytePred
		for _, b := range groups[mask] {
			bp.set(b)
		}
		positive := make([]bool, len(preds))
		for i := range preds {
			positive[i] = mask&(1<<uint(i)) != 0
		}
		out = append(out, Minterm{Pred: bp, Positive: positive})
	}
	return out
}

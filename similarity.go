package safa

// similarity is a monotone set of (L, R) Expr pairs, queried by IsEquivalent
// to avoid re-exploring a configuration pair it has already scheduled.
//
// Because Expr keeps its unique prime-implicant (minimal antichain) form
// (see Expr.Equal), a plain syntactic membership check over that canonical
// form already decides semantic equality of the pair itself — this is the
// "conservative implementation... plain syntactic equality" option spec.md
// §9 calls out as sound but slower to converge than a full SAT-backed
// congruence closure over every previously recorded pair: a pair that is
// only entailed by combining several recorded pairs (rather than matching
// one outright) will still be re-explored here instead of recognized
// immediately. Soundness — never wrongly claiming membership — does not
// depend on that upgrade.
type similarity struct {
	recorded map[string]struct{}
}

func newSimilarity() *similarity {
	return &similarity{recorded: map[string]struct{}{}}
}

func pairKey(l, r Expr) string {
	return l.String() + "\x00" + r.String()
}

// Add records the pair (l, r).
func (s *similarity) Add(l, r Expr) {
	s.recorded[pairKey(l, r)] = struct{}{}
}

// IsMember reports whether (l, r) has already been recorded.
func (s *similarity) IsMember(l, r Expr) bool {
	_, ok := s.recorded[pairKey(l, r)]
	return ok
}

package safa

// State is an opaque dense nonnegative state identifier. States of a
// single SAFA form a finite set; identifiers need not be contiguous after
// UnionWith/IntersectWith renumbering, but are always non-negative and bounded by
// that automaton's maxStateId.
type State uint32

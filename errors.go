package safa

import (
	"errors"
	"fmt"
)

// Common safa errors. Compare against these with errors.Is; wrapped forms
// below (IllegalArgumentError, SolverTimeoutError) carry additional context
// and unwrap to one of these sentinels.
var (
	// ErrIllegalArgument indicates a transition, state, or substitution
	// table referenced a state outside its declared universe.
	ErrIllegalArgument = errors.New("safa: illegal argument")

	// ErrSolverTimeout indicates the algebra's SAT oracle exceeded its
	// budget, or otherwise failed, while answering IsSatisfiable or
	// Minterms.
	ErrSolverTimeout = errors.New("safa: solver timeout")
)

// IllegalArgumentError wraps ErrIllegalArgument with the offending detail:
// a transition naming an undeclared state, an initial state missing from
// the state set, or a Substitute call whose table omits an atom of the
// expression being substituted.
type IllegalArgumentError struct {
	Detail string
}

func (e *IllegalArgumentError) Error() string {
	return fmt.Sprintf("safa: illegal argument: %s", e.Detail)
}

func (e *IllegalArgumentError) Unwrap() error {
	return ErrIllegalArgument
}

// SolverTimeoutError wraps ErrSolverTimeout with the operation that was
// running when the algebra reported failure, and the algebra's own error.
type SolverTimeoutError struct {
	Op  string
	Err error
}

func (e *SolverTimeoutError) Error() string {
	return fmt.Sprintf("safa: %s: solver timeout: %v", e.Op, e.Err)
}

func (e *SolverTimeoutError) Unwrap() error {
	return ErrSolverTimeout
}

// wrapSolverErr wraps a non-nil algebra error as a SolverTimeoutError
// tagged with the calling operation. Returns nil if err is nil.
func wrapSolverErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &SolverTimeoutError{Op: op, Err: err}
}

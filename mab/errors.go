package mab

import (
	"errors"
	"fmt"
)

// A ContradictionError is raised when a branch of the search discovers
// that no assignment can satisfy the current equation set: a purely
// constant equation that is non-zero, or two classifiers proposing
// conflicting values for the same symbol. It is recovered by the parent
// branch trying its next alternative.
type ContradictionError struct {
	Message string
}

func (e *ContradictionError) Error() string { return fmt.Sprintf("contradiction: %s", e.Message) }

// Contradiction builds a ContradictionError.
func Contradiction(format string, args ...any) error {
	return &ContradictionError{Message: fmt.Sprintf(format, args...)}
}

// IsContradiction reports whether err is (or wraps) a ContradictionError.
func IsContradiction(err error) bool {
	var ce *ContradictionError
	return errors.As(err, &ce)
}

// A CouldNotSolveError is raised by a leaf frame that exhausted every
// classifier strategy without resolving any equation.
type CouldNotSolveError struct {
	Message string
}

func (e *CouldNotSolveError) Error() string { return fmt.Sprintf("could not solve: %s", e.Message) }

// CouldNotSolve builds a CouldNotSolveError.
func CouldNotSolve(format string, args ...any) error {
	return &CouldNotSolveError{Message: fmt.Sprintf(format, args...)}
}

// IsCouldNotSolve reports whether err is (or wraps) a CouldNotSolveError.
func IsCouldNotSolve(err error) bool {
	var ce *CouldNotSolveError
	return errors.As(err, &ce)
}

// isSearchError reports whether err is a search error that a classifier
// loop should recover from by trying its next branch, rather than an
// input-validity error that must propagate unconditionally.
func isSearchError(err error) bool {
	return IsContradiction(err) || IsCouldNotSolve(err)
}

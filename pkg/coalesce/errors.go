package coalesce

import (
	"errors"
	"fmt"
)

// ErrInternal marks invariant violations inside the coalescer. Errors
// wrapping it indicate a defect in the grouping logic, not bad input.
var ErrInternal = errors.New("internal coalescer error")

// ConflictError reports two distinct version values landing on the same
// canonical property name. This happens when the name mapping folds
// candidates from differently-versioned artifacts together, or when an
// assignment collides with a pre-existing property value.
type ConflictError struct {
	Candidate string // unmapped candidate name (version.<groupId>[.<artifactId>])
	Canonical string // canonical name the candidate resolved to
	Value     string // version being assigned
	Existing  string // version already stored under Canonical
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf(
		"cannot merge property %q into %q: distinct values %q and %q; adjust the %q entry in the name mapping",
		e.Candidate, e.Canonical, e.Value, e.Existing, e.Canonical)
}

// DuplicateError reports a groupId:artifactId coordinate appearing more than
// once in the input with disagreeing versions. Identical repeats are
// tolerated; disagreeing ones would silently drop data if accepted.
type DuplicateError struct {
	Coordinate string
	First      string
	Second     string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate dependency %s with conflicting versions %q and %q",
		e.Coordinate, e.First, e.Second)
}

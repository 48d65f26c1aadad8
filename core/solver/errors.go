package solver

import (
	"errors"
	"fmt"
)

// Error taxonomy from spec.md section 7. Each is a sentinel matched
// with errors.Is; concrete errors wrap one of these with %w so callers
// get both the category and the detail in one value.
var (
	// ErrCapacity is raised after the feasibility precondition check
	// and before any variable is allocated: demand exceeds
	// resource-slot capacity.
	ErrCapacity = errors.New("capacity error")

	// ErrInfeasible is raised by the solver: the constraint system
	// admits no assignment.
	ErrInfeasible = errors.New("infeasible")

	// ErrTimeoutWithoutFeasible is raised when the time budget expires
	// before any feasible solution was found.
	ErrTimeoutWithoutFeasible = errors.New("timeout without feasible solution")

	// ErrSolver is raised when the underlying CP-SAT engine reports an
	// internal failure; the original error is wrapped verbatim.
	ErrSolver = errors.New("solver error")
)

// CapacityError reports which demand exceeded which capacity.
type CapacityError struct {
	Kind     string // "match" or "jury"
	Demand   int
	Capacity int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s demand %d exceeds capacity %d", e.Kind, e.Demand, e.Capacity)
}

func (e *CapacityError) Unwrap() error { return ErrCapacity }

// newCapacityError builds a CapacityError whose Unwrap chain includes
// ErrCapacity, so errors.Is(err, ErrCapacity) succeeds.
func newCapacityError(kind string, demand, capacity int) error {
	return &CapacityError{Kind: kind, Demand: demand, Capacity: capacity}
}

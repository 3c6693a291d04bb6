package engine

import (
	"errors"
	"fmt"
)

// Domain errors for engine operations.
var (
	// ErrInvalidStarBudget indicates a non-positive star count in the
	// configuration.
	ErrInvalidStarBudget = errors.New("engine: star budget must be positive")

	// ErrInvalidMaxDt indicates a non-positive delta-time clamp.
	ErrInvalidMaxDt = errors.New("engine: max dt must be positive")

	// ErrUnknownMorphology indicates a morphology override that names no
	// recipe.
	ErrUnknownMorphology = errors.New("engine: unknown morphology")
)

// ResetError reports a failed reset attempt. The previous body store
// stays live, so the frame loop keeps running on the old population.
type ResetError struct {
	Morphology string
	Wrapped    error
}

func (e *ResetError) Error() string {
	return fmt.Sprintf("reset to %s failed: %v", e.Morphology, e.Wrapped)
}

func (e *ResetError) Unwrap() error { return e.Wrapped }

/*
Copyright © 2016 the chemswarm authors.
This file is part of chemswarm.

chemswarm is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

chemswarm is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with chemswarm.  If not, see <http://www.gnu.org/licenses/>.
*/

package chemswarm

import "fmt"

// GridMisconfiguredError is returned when a Grid's extent and resolution
// do not divide into an integer number of cells.
type GridMisconfiguredError struct {
	Axis string
	Span float64
	H    float64
}

func (e *GridMisconfiguredError) Error() string {
	return fmt.Sprintf("chemswarm: grid misconfigured: %s span %g is not an integer multiple of h=%g", e.Axis, e.Span, e.H)
}

// OutOfBoundsError is returned by Grid.PosToIndex when a position falls
// outside the valid (non-suppressed) cell range.
type OutOfBoundsError struct {
	X, Y float64
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("chemswarm: position (%.6g, %.6g) is out of bounds", e.X, e.Y)
}

// SolverDivergenceError is returned when the implicit diffusion solve or
// the decay that follows it produces a non-finite result. Reaching the
// solver's iteration cap is not an error.
type SolverDivergenceError struct {
	Species string
	Reason  string
}

func (e *SolverDivergenceError) Error() string {
	return fmt.Sprintf("chemswarm: diffusion solver diverged for species %q: %s", e.Species, e.Reason)
}

// MalformedTransitionTableError is returned when an agent class's
// transition table does not mention every declared sensor exactly once in
// every entry, or is not total over (state, sensor-truth-tuple).
type MalformedTransitionTableError struct {
	Class  string
	Reason string
}

func (e *MalformedTransitionTableError) Error() string {
	return fmt.Sprintf("chemswarm: agent class %q has a malformed transition table: %s", e.Class, e.Reason)
}

// TransitionUndefinedError is returned at runtime when a (state,
// sensor-truth-tuple) key has no entry in the transition table. This
// should be unreachable for a class that passed construction-time
// totality validation; it is retained as a defensive runtime check.
type TransitionUndefinedError struct {
	Class string
	State string
}

func (e *TransitionUndefinedError) Error() string {
	return fmt.Sprintf("chemswarm: agent class %q: no transition defined from state %q for the observed sensor values", e.Class, e.State)
}

// ReactionShapeMismatchError is returned when an agent class's Reaction or
// Exchange function returns a vector whose length is neither 0 (the
// "scalar zero" convention) nor the number of declared species.
type ReactionShapeMismatchError struct {
	Class    string
	Func     string
	Got      int
	Expected int
}

func (e *ReactionShapeMismatchError) Error() string {
	return fmt.Sprintf("chemswarm: agent class %q: %s returned a vector of length %d, expected 0 or %d", e.Class, e.Func, e.Got, e.Expected)
}

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

// Actuator is a named subset of an agent class's FSM states. It is active
// for an agent whenever that agent's current state belongs to the set.
type Actuator struct {
	Active map[string]bool
}

// NewActuator builds an Actuator active in the given states.
func NewActuator(states ...string) Actuator {
	active := make(map[string]bool, len(states))
	for _, s := range states {
		active[s] = true
	}
	return Actuator{Active: active}
}

// Param is a scalar parameter that is either a plain constant or an
// actuated value: one of two constants selected by whether a named
// actuator is active for the agent being read. This replaces a
// dynamically re-reading property object with a pure sum type.
type Param[T any] struct {
	actuated bool
	constant T
	actuator string
	trueVal  T
	falseVal T
}

// ConstParam builds a non-actuated Param that always resolves to v.
func ConstParam[T any](v T) Param[T] {
	return Param[T]{constant: v}
}

// ActuatedParam builds a Param that resolves to trueVal when actuator is
// active for the reading agent, and falseVal otherwise.
func ActuatedParam[T any](actuator string, trueVal, falseVal T) Param[T] {
	return Param[T]{actuated: true, actuator: actuator, trueVal: trueVal, falseVal: falseVal}
}

// Resolve evaluates p for an agent currently in fsmState, using the
// actuator set declared by its agent class. Resolution is a pure function
// of (p, fsmState, actuators): it is never cached across an FSM
// transition.
func (p Param[T]) Resolve(fsmState string, actuators map[string]Actuator) T {
	if !p.actuated {
		return p.constant
	}
	if actuators[p.actuator].Active[fsmState] {
		return p.trueVal
	}
	return p.falseVal
}

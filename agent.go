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

import (
	"errors"
	"strings"
)

// SensorKind distinguishes a sensor that reads the field at the agent's
// cell from one that reads the agent's own reservoir.
type SensorKind int

const (
	// FieldSensorKind reads U[species] at the agent's current cell.
	FieldSensorKind SensorKind = iota
	// ReservoirSensorKind reads the agent's own reservoir[species].
	ReservoirSensorKind
)

// SensorDescriptor is either a FieldSensor or a ReservoirSensor: a
// thresholded read of one species, compared with >=.
type SensorDescriptor struct {
	Name         string
	Kind         SensorKind
	SpeciesIndex int
	Threshold    float64
}

// RawTransition is the author-facing form of one transition-table entry:
// a state, an unordered list of sensor names (each optionally prefixed
// with '^' to mean "false"), and the resulting next state. Every declared
// sensor must be mentioned exactly once.
type RawTransition struct {
	State   string
	Sensors []string
	Next    string
}

// transitionKey is the canonical, normalized form of a transition-table
// entry: a state index and a bitmask over sensors in declaration order
// (bit i set means the i-th declared sensor is true).
type transitionKey struct {
	state int
	mask  uint32
}

// AgentClassSpec is the author-facing, builder input for an AgentClass.
type AgentClassSpec struct {
	Name         string
	Clock        float64
	States       []string
	Sensors      []SensorDescriptor
	Actuators    map[string]Actuator
	Transitions  []RawTransition
	Displacement Param[float64]
	Ascent       map[int]Param[float64] // keyed by species index
	Reaction     ReactionFunc
	Exchange     ReactionFunc
	FixedPos     *Point
}

// ReactionFunc computes a per-cell reaction or exchange vector from the
// local species concentrations. fsmState and actuators are supplied so
// that an actuated subexpression of the vector can resolve itself with
// Param.Resolve.
type ReactionFunc func(conc []float64, fsmState string, actuators map[string]Actuator) []float64

// AgentClass is the immutable, shared, read-only descriptor for one swarm
// type: its finite-state machine, sensors, actuators, and behavior
// functions. Per-agent mutable state lives in AgentState.
type AgentClass struct {
	Name      string
	Clock     float64
	States    []string
	Sensors   []SensorDescriptor
	Actuators map[string]Actuator

	Displacement Param[float64]
	Ascent       map[int]Param[float64]
	Reaction     ReactionFunc
	Exchange     ReactionFunc
	FixedPos     *Point

	stateIndex  map[string]int
	sensorIndex map[string]int
	transitions map[transitionKey]int
}

// StateIndex returns the index of state name within States.
func (c *AgentClass) StateIndex(name string) (int, bool) {
	i, ok := c.stateIndex[name]
	return i, ok
}

// Next looks up the canonical transition for (state, sensorValues),
// returning the next state index. sensorValues must have length
// len(c.Sensors), in declaration order.
func (c *AgentClass) Next(state int, sensorValues []bool) (int, error) {
	if len(c.transitions) == 0 {
		return state, nil
	}
	key := transitionKey{state: state, mask: maskOf(sensorValues)}
	next, ok := c.transitions[key]
	if !ok {
		return 0, &TransitionUndefinedError{Class: c.Name, State: c.States[state]}
	}
	return next, nil
}

func maskOf(values []bool) uint32 {
	var m uint32
	for i, v := range values {
		if v {
			m |= 1 << uint(i)
		}
	}
	return m
}

// NewAgentClass validates and canonicalizes spec into an AgentClass. The
// author-facing transition table (state, [maybe-negated sensor names]) is
// normalized to (state, bitvector) form, and the table is required to be
// total: exactly len(States) * 2^len(Sensors) canonical entries, each
// mentioning every declared sensor exactly once.
func NewAgentClass(spec AgentClassSpec) (*AgentClass, error) {
	c := &AgentClass{
		Name:         spec.Name,
		Clock:        spec.Clock,
		States:       spec.States,
		Sensors:      spec.Sensors,
		Actuators:    spec.Actuators,
		Displacement: spec.Displacement,
		Ascent:       spec.Ascent,
		Reaction:     spec.Reaction,
		Exchange:     spec.Exchange,
		FixedPos:     spec.FixedPos,
		stateIndex:   make(map[string]int, len(spec.States)),
		sensorIndex:  make(map[string]int, len(spec.Sensors)),
		transitions:  make(map[transitionKey]int, len(spec.Transitions)),
	}
	for i, s := range spec.States {
		c.stateIndex[s] = i
	}
	for i, s := range spec.Sensors {
		c.sensorIndex[s.Name] = i
	}

	if len(spec.Transitions) == 0 {
		return c, nil
	}

	for _, raw := range spec.Transitions {
		stateIdx, ok := c.stateIndex[raw.State]
		if !ok {
			return nil, &MalformedTransitionTableError{Class: c.Name, Reason: "transition references undeclared state " + raw.State}
		}
		nextIdx, ok := c.stateIndex[raw.Next]
		if !ok {
			return nil, &MalformedTransitionTableError{Class: c.Name, Reason: "transition targets undeclared state " + raw.Next}
		}
		mask, mentioned, err := canonicalizeSensors(c.sensorIndex, raw.Sensors)
		if err != nil {
			return nil, &MalformedTransitionTableError{Class: c.Name, Reason: err.Error()}
		}
		if mentioned != len(c.Sensors) {
			return nil, &MalformedTransitionTableError{Class: c.Name, Reason: "entry does not mention every declared sensor exactly once"}
		}
		key := transitionKey{state: stateIdx, mask: mask}
		if _, dup := c.transitions[key]; dup {
			return nil, &MalformedTransitionTableError{Class: c.Name, Reason: "duplicate entry for state " + raw.State}
		}
		c.transitions[key] = nextIdx
	}

	want := len(spec.States) * (1 << uint(len(spec.Sensors)))
	if len(c.transitions) != want {
		return nil, &MalformedTransitionTableError{Class: c.Name, Reason: "transition table is not total over (state, sensor-truth-tuple)"}
	}
	return c, nil
}

// canonicalizeSensors converts a raw, possibly '^'-prefixed, sensor name
// list into a bitmask plus a count of how many distinct declared sensors
// were mentioned (for totality/duplicate-mention checking by the caller).
func canonicalizeSensors(index map[string]int, names []string) (uint32, int, error) {
	var mask uint32
	seen := make(map[int]bool, len(names))
	for _, raw := range names {
		name := raw
		truth := true
		if strings.HasPrefix(raw, "^") {
			name = raw[1:]
			truth = false
		}
		i, ok := index[name]
		if !ok {
			return 0, 0, errors.New("transition entry mentions undeclared sensor " + name)
		}
		if seen[i] {
			return 0, 0, errors.New("transition entry mentions sensor " + name + " more than once")
		}
		seen[i] = true
		if truth {
			mask |= 1 << uint(i)
		}
	}
	return mask, len(seen), nil
}

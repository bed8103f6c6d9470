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

package programs

import "github.com/chemswarm/chemswarm"

// lineGeneration has two stationary anchor agents, each continuously
// emitting a distinct pheromone, and a worker swarm that shuttles along
// the gradient between them, laying a third "material" species as it
// goes to trace a line connecting the two anchors.
func lineGeneration() (*chemswarm.Program, error) {
	startPos := chemswarm.Point{X: 10, Y: 50}
	start, err := chemswarm.NewAgentClass(chemswarm.AgentClassSpec{
		Name:     "start",
		Clock:    1,
		States:   []string{"active"},
		FixedPos: &startPos,
		Reaction: vectorReaction(1.0, 0.0, 0.0),
	})
	if err != nil {
		return nil, err
	}

	finishPos := chemswarm.Point{X: 90, Y: 50}
	finish, err := chemswarm.NewAgentClass(chemswarm.AgentClassSpec{
		Name:     "finish",
		Clock:    1,
		States:   []string{"active"},
		FixedPos: &finishPos,
		Reaction: vectorReaction(0.0, 1.0, 0.0),
	})
	if err != nil {
		return nil, err
	}

	worker, err := chemswarm.NewAgentClass(chemswarm.AgentClassSpec{
		Name:   "worker",
		Clock:  0.1,
		States: []string{"free", "ascending"},
		Sensors: []chemswarm.SensorDescriptor{
			{Name: "near_start", Kind: chemswarm.FieldSensorKind, SpeciesIndex: 0, Threshold: 0.5},
			{Name: "near_finish", Kind: chemswarm.FieldSensorKind, SpeciesIndex: 1, Threshold: 0.5},
		},
		Actuators: map[string]chemswarm.Actuator{
			"explore":  chemswarm.NewActuator("free"),
			"generate": chemswarm.NewActuator("ascending"),
		},
		Transitions: []chemswarm.RawTransition{
			{State: "free", Sensors: []string{"near_start", "near_finish"}, Next: "free"},
			{State: "free", Sensors: []string{"near_start", "^near_finish"}, Next: "ascending"},
			{State: "free", Sensors: []string{"^near_start", "near_finish"}, Next: "free"},
			{State: "free", Sensors: []string{"^near_start", "^near_finish"}, Next: "free"},
			{State: "ascending", Sensors: []string{"near_start", "near_finish"}, Next: "ascending"},
			{State: "ascending", Sensors: []string{"near_start", "^near_finish"}, Next: "ascending"},
			{State: "ascending", Sensors: []string{"^near_start", "near_finish"}, Next: "free"},
			{State: "ascending", Sensors: []string{"^near_start", "^near_finish"}, Next: "ascending"},
		},
		Ascent: map[int]chemswarm.Param[float64]{
			0: chemswarm.ActuatedParam("explore", 1.0, 0.0),
			1: chemswarm.ActuatedParam("generate", 1.0, 0.0),
		},
		Displacement: chemswarm.ConstParam(0.5),
		Reaction: func(conc []float64, fsmState string, actuators map[string]chemswarm.Actuator) []float64 {
			r := chemswarm.ActuatedParam("generate", 0.1, 0.0).Resolve(fsmState, actuators)
			return []float64{0, 0, r}
		},
	})
	if err != nil {
		return nil, err
	}

	swarms := []chemswarm.SwarmSpec{
		{Class: start, Count: 1},
		{Class: finish, Count: 1},
		{Class: worker, Count: 48},
	}
	return &chemswarm.Program{
		Grid: chemswarm.GridSpec{XLo: 0, XHi: 100, YLo: 0, YHi: 100, H: 1},
		Species: []chemswarm.Species{
			{Name: "pheromone_a", Diffusion: 1, Decay: 0.01},
			{Name: "pheromone_b", Diffusion: 1, Decay: 0.01},
			{Name: "material", Diffusion: 0, Decay: 0.001},
		},
		Swarms: swarms,
	}, nil
}

// vectorReaction builds a fixed-vector ReactionFunc independent of state
// or actuation, for stationary anchor agents that only ever emit.
func vectorReaction(v ...float64) chemswarm.ReactionFunc {
	return func(conc []float64, fsmState string, actuators map[string]chemswarm.Actuator) []float64 {
		return v
	}
}

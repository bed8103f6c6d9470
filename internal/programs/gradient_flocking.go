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

// Package programs is the built-in registry of named chemswarm.Program
// constructors. A program's transition table and reaction/exchange
// closures cannot be expressed in the TOML run configuration, so each
// program lives here as Go code and is selected from config by name.
package programs

import "github.com/chemswarm/chemswarm"

// gradientFlocking is a single, stateless swarm that ascends a pheromone
// gradient it continuously emits, causing the swarm to cluster.
func gradientFlocking() (*chemswarm.Program, error) {
	flocker, err := chemswarm.NewAgentClass(chemswarm.AgentClassSpec{
		Name:         "flocker",
		Clock:        0.1,
		States:       []string{"free"},
		Displacement: chemswarm.ConstParam(1.0),
		Ascent: map[int]chemswarm.Param[float64]{
			0: chemswarm.ConstParam(0.5),
		},
		Reaction: constReaction(0.4),
	})
	if err != nil {
		return nil, err
	}

	return &chemswarm.Program{
		Grid:    chemswarm.GridSpec{XLo: 0, XHi: 100, YLo: 0, YHi: 100, H: 1},
		Species: []chemswarm.Species{{Name: "pheromone", Diffusion: 1, Decay: 0.01}},
		Swarms:  []chemswarm.SwarmSpec{{Class: flocker, Count: 50}},
	}, nil
}

// constReaction builds a single-species ReactionFunc that always injects
// v, regardless of state or actuation.
func constReaction(v float64) chemswarm.ReactionFunc {
	return func(conc []float64, fsmState string, actuators map[string]chemswarm.Actuator) []float64 {
		return []float64{v}
	}
}

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

// selectiveFlocking is gradientFlocking's swarm, but agents dock once the
// local pheromone concentration crosses a threshold, which cuts their
// random displacement from 1.0 to 0.1, producing a cluster that
// stabilizes rather than collapsing to a point.
func selectiveFlocking() (*chemswarm.Program, error) {
	flocker, err := chemswarm.NewAgentClass(chemswarm.AgentClassSpec{
		Name:  "flocker",
		Clock: 0.1,
		States: []string{
			"free", "docked",
		},
		Sensors: []chemswarm.SensorDescriptor{
			{Name: "pheromone", Kind: chemswarm.FieldSensorKind, SpeciesIndex: 0, Threshold: 0.5},
		},
		Actuators: map[string]chemswarm.Actuator{
			"immobilize": chemswarm.NewActuator("docked"),
		},
		Transitions: []chemswarm.RawTransition{
			{State: "free", Sensors: []string{"pheromone"}, Next: "docked"},
			{State: "free", Sensors: []string{"^pheromone"}, Next: "free"},
			{State: "docked", Sensors: []string{"pheromone"}, Next: "docked"},
			{State: "docked", Sensors: []string{"^pheromone"}, Next: "free"},
		},
		Displacement: chemswarm.ActuatedParam("immobilize", 0.1, 1.0),
		Reaction:     constReaction(0.4),
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

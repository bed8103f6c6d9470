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

// transport is two stationary anchors, each marking their location with a
// distinct pheromone, and a worker swarm that cycles empty -> transport ->
// release -> empty, picking material up while empty (on its way to the
// start anchor), carrying it toward the target anchor, and depositing it
// there.
func transport() (*chemswarm.Program, error) {
	startPos := chemswarm.Point{X: 25, Y: 75}
	start, err := chemswarm.NewAgentClass(chemswarm.AgentClassSpec{
		Name:     "start",
		Clock:    1,
		States:   []string{"active"},
		FixedPos: &startPos,
		Reaction: vectorReaction(10.0, 0.0, 0.0),
	})
	if err != nil {
		return nil, err
	}

	targetPos := chemswarm.Point{X: 90, Y: 10}
	target, err := chemswarm.NewAgentClass(chemswarm.AgentClassSpec{
		Name:     "target",
		Clock:    1,
		States:   []string{"active"},
		FixedPos: &targetPos,
		Reaction: vectorReaction(0.0, 10.0, 0.0),
	})
	if err != nil {
		return nil, err
	}

	worker, err := chemswarm.NewAgentClass(chemswarm.AgentClassSpec{
		Name:   "worker",
		Clock:  0.1,
		States: []string{"empty", "transport", "release"},
		Sensors: []chemswarm.SensorDescriptor{
			{Name: "at_start", Kind: chemswarm.FieldSensorKind, SpeciesIndex: 0, Threshold: 0.5},
			{Name: "at_target", Kind: chemswarm.FieldSensorKind, SpeciesIndex: 1, Threshold: 0.5},
		},
		Actuators: map[string]chemswarm.Actuator{
			"return":  chemswarm.NewActuator("empty"),
			"move":    chemswarm.NewActuator("transport"),
			"dispose": chemswarm.NewActuator("release"),
		},
		Transitions: []chemswarm.RawTransition{
			{State: "empty", Sensors: []string{"at_start", "at_target"}, Next: "transport"},
			{State: "empty", Sensors: []string{"at_start", "^at_target"}, Next: "transport"},
			{State: "empty", Sensors: []string{"^at_start", "at_target"}, Next: "empty"},
			{State: "empty", Sensors: []string{"^at_start", "^at_target"}, Next: "empty"},

			{State: "transport", Sensors: []string{"at_start", "at_target"}, Next: "release"},
			{State: "transport", Sensors: []string{"at_start", "^at_target"}, Next: "transport"},
			{State: "transport", Sensors: []string{"^at_start", "at_target"}, Next: "release"},
			{State: "transport", Sensors: []string{"^at_start", "^at_target"}, Next: "transport"},

			{State: "release", Sensors: []string{"at_start", "at_target"}, Next: "empty"},
			{State: "release", Sensors: []string{"at_start", "^at_target"}, Next: "empty"},
			{State: "release", Sensors: []string{"^at_start", "at_target"}, Next: "release"},
			{State: "release", Sensors: []string{"^at_start", "^at_target"}, Next: "empty"},
		},
		Ascent: map[int]chemswarm.Param[float64]{
			0: chemswarm.ActuatedParam("return", 2.0, 0.0),
			1: chemswarm.ActuatedParam("move", 2.0, 0.0),
		},
		Displacement: chemswarm.ActuatedParam("move", 0.1, 1.0),
		// Exchange is re-architected against a field-only, reservoir-free
		// signature (see chemswarm.ReactionFunc): pickup and dispose are
		// state-gated constant rates rather than proportional to the agent's
		// current reservoir. Nothing bounds the reservoir: it grows while
		// the worker is empty and can go negative while it stays in release.
		Exchange: func(conc []float64, fsmState string, actuators map[string]chemswarm.Actuator) []float64 {
			pickup := chemswarm.ActuatedParam("return", 1.0, 0.0).Resolve(fsmState, actuators)
			dispose := chemswarm.ActuatedParam("dispose", 0.1, 0.0).Resolve(fsmState, actuators)
			return []float64{0, 0, pickup - dispose}
		},
	})
	if err != nil {
		return nil, err
	}

	return &chemswarm.Program{
		Grid: chemswarm.GridSpec{XLo: 0, XHi: 100, YLo: 0, YHi: 100, H: 1},
		Species: []chemswarm.Species{
			{Name: "pheromone_a", Diffusion: 1, Decay: 0.01},
			{Name: "pheromone_b", Diffusion: 1, Decay: 0.01},
			{Name: "material", Diffusion: 0.01, Decay: 0, Initial: 0.5},
		},
		Swarms: []chemswarm.SwarmSpec{
			{Class: start, Count: 1},
			{Class: target, Count: 1},
			{Class: worker, Count: 50},
		},
	}, nil
}

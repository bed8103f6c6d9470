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

import "math/rand"

// AgentState is the per-agent mutable runtime record: position, current
// FSM state (by index into its class's States), reservoir, and cached
// sensor truths.
type AgentState struct {
	Class     *AgentClass
	Pos       Point
	State     int
	Reservoir []float64
	Sensors   []bool
}

// newAgentState creates one agent of class c, seeding its position (fixed
// position if the class declares one, otherwise uniform-random in the
// domain) and its initial FSM state (States[0]).
func newAgentState(c *AgentClass, grid *Grid, numSpecies int, rng *rand.Rand) *AgentState {
	pos := Point{
		X: grid.XLo + rng.Float64()*(grid.XHi-grid.XLo),
		Y: grid.YLo + rng.Float64()*(grid.YHi-grid.YLo),
	}
	if c.FixedPos != nil {
		pos = *c.FixedPos
	}
	return &AgentState{
		Class:     c,
		Pos:       pos,
		State:     0,
		Reservoir: make([]float64, numSpecies),
		Sensors:   make([]bool, len(c.Sensors)),
	}
}

// FSMState returns the agent's current state name.
func (a *AgentState) FSMState() string {
	return a.Class.States[a.State]
}

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
	"math"

	"github.com/ctessum/sparse"
)

// FSMDriver advances each agent's finite-state machine on its own
// clock-gated schedule: sensors are re-read and a transition is taken
// only on the first step of each clock interval.
type FSMDriver struct {
	sensors *SensorEvaluator
}

// NewFSMDriver binds an FSMDriver to grid.
func NewFSMDriver(grid *Grid) *FSMDriver {
	return &FSMDriver{sensors: NewSensorEvaluator(grid)}
}

// clockFires reports whether an agent with clock tau fires on a step
// starting at time t with size dt: t mod tau < dt. Using a strict
// inequality (rather than the spec prose's "<=") keeps the gate from
// firing twice per interval when tau is a multiple of dt — at t=0 and
// again at t=dt, which would violate "exactly once per ceil(tau/dt)
// steps". t=0 still always fires, since math.Mod(0, tau) = 0 < dt for
// any positive dt.
func clockFires(t, dt, tau float64) bool {
	return math.Mod(t, tau) < dt
}

// Step evaluates sensors and advances the FSM for every agent whose clock
// fires at time t, in agent order.
func (f *FSMDriver) Step(U []*sparse.DenseArray, agents []*AgentState, t, dt float64) error {
	for _, a := range agents {
		c := a.Class
		if !clockFires(t, dt, c.Clock) {
			continue
		}
		if err := f.sensors.Evaluate(U, a); err != nil {
			return err
		}
		next, err := c.Next(a.State, a.Sensors)
		if err != nil {
			return err
		}
		a.State = next
	}
	return nil
}

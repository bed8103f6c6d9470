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

import "testing"

func TestConstParamIgnoresState(t *testing.T) {
	p := ConstParam(2.5)
	actuators := map[string]Actuator{"moving": NewActuator("active")}
	if got := p.Resolve("idle", actuators); got != 2.5 {
		t.Errorf("got %g, want 2.5", got)
	}
	if got := p.Resolve("active", actuators); got != 2.5 {
		t.Errorf("got %g, want 2.5", got)
	}
}

func TestActuatedParamFollowsCurrentStateOnly(t *testing.T) {
	p := ActuatedParam("moving", 10.0, 1.0)
	actuators := map[string]Actuator{"moving": NewActuator("active")}

	if got := p.Resolve("active", actuators); got != 10 {
		t.Errorf("active: got %g, want 10", got)
	}
	if got := p.Resolve("idle", actuators); got != 1 {
		t.Errorf("idle: got %g, want 1", got)
	}
	// Re-resolving for the same Param after a simulated state change must
	// reflect only the new state, never a cached prior resolution.
	if got := p.Resolve("active", actuators); got != 10 {
		t.Errorf("re-resolve after idle: got %g, want 10", got)
	}
}

func TestActuatedParamMissingActuatorIsFalsy(t *testing.T) {
	p := ActuatedParam("undeclared", 10.0, 1.0)
	if got := p.Resolve("anything", nil); got != 1 {
		t.Errorf("got %g, want 1 (falseVal) for a missing actuator", got)
	}
}

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

func TestClockFiresOnlyAtItsOwnInterval(t *testing.T) {
	cases := []struct {
		t, dt, tau float64
		want       bool
	}{
		{0, 1, 2, true},
		{1, 1, 2, false},
		{2, 1, 2, true},
		{3, 1, 2, false},
		{0, 0.5, 1, true},
	}
	for _, c := range cases {
		if got := clockFires(c.t, c.dt, c.tau); got != c.want {
			t.Errorf("clockFires(%g, %g, %g) = %v, want %v", c.t, c.dt, c.tau, got, c.want)
		}
	}
}

// TestFSMDriverSkipsUngatedAgents verifies that an agent's sensors and
// state are left untouched on a step where its clock does not fire, even
// if the underlying field would otherwise trigger a transition.
func TestFSMDriverSkipsUngatedAgents(t *testing.T) {
	g, err := NewGrid(0, 4, 0, 4, 1)
	if err != nil {
		t.Fatal(err)
	}
	class, err := NewAgentClass(AgentClassSpec{
		Name:    "watcher",
		Clock:   2,
		States:  []string{"idle", "tripped"},
		Sensors: []SensorDescriptor{{Name: "hot", Kind: FieldSensorKind, SpeciesIndex: 0, Threshold: 1}},
		Transitions: []RawTransition{
			{State: "idle", Sensors: []string{"hot"}, Next: "tripped"},
			{State: "idle", Sensors: []string{"^hot"}, Next: "idle"},
			{State: "tripped", Sensors: []string{"hot"}, Next: "tripped"},
			{State: "tripped", Sensors: []string{"^hot"}, Next: "idle"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	species := []Species{{Name: "A", Diffusion: 0, Decay: 0, Initial: 0}}
	U := NewFieldState(g, species)
	p, _ := g.PosToIndex(2, 2)
	U[0].Elements[p] = 5 // well above threshold

	a := &AgentState{Class: class, Pos: Point{X: 2, Y: 2}, State: 0, Sensors: make([]bool, 1)}
	driver := NewFSMDriver(g)

	// t=1, dt=1, tau=2: clock does not fire (1 mod 2 = 1, not < dt=1).
	if err := driver.Step(U, []*AgentState{a}, 1, 1); err != nil {
		t.Fatal(err)
	}
	if a.FSMState() != "idle" {
		t.Errorf("state after an ungated step = %q, want %q", a.FSMState(), "idle")
	}

	// t=2, dt=1, tau=2: clock fires (2 mod 2 = 0 < dt=1).
	if err := driver.Step(U, []*AgentState{a}, 2, 1); err != nil {
		t.Fatal(err)
	}
	if a.FSMState() != "tripped" {
		t.Errorf("state after a gated step = %q, want %q", a.FSMState(), "tripped")
	}
}

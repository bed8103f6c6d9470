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

func twoStateTwoSensorSpec() AgentClassSpec {
	return AgentClassSpec{
		Name:    "toggle",
		Clock:   1,
		States:  []string{"idle", "active"},
		Sensors: []SensorDescriptor{{Name: "hot"}, {Name: "full"}},
		Transitions: []RawTransition{
			{State: "idle", Sensors: []string{"hot", "full"}, Next: "active"},
			{State: "idle", Sensors: []string{"hot", "^full"}, Next: "active"},
			{State: "idle", Sensors: []string{"^hot", "full"}, Next: "idle"},
			{State: "idle", Sensors: []string{"^hot", "^full"}, Next: "idle"},
			{State: "active", Sensors: []string{"hot", "full"}, Next: "active"},
			{State: "active", Sensors: []string{"hot", "^full"}, Next: "active"},
			{State: "active", Sensors: []string{"^hot", "full"}, Next: "idle"},
			{State: "active", Sensors: []string{"^hot", "^full"}, Next: "idle"},
		},
	}
}

func TestNewAgentClassAcceptsTotalTable(t *testing.T) {
	c, err := NewAgentClass(twoStateTwoSensorSpec())
	if err != nil {
		t.Fatalf("valid total table was rejected: %v", err)
	}
	idle, _ := c.StateIndex("idle")
	next, err := c.Next(idle, []bool{true, false})
	if err != nil {
		t.Fatal(err)
	}
	active, _ := c.StateIndex("active")
	if next != active {
		t.Errorf("got state %d, want %d (active)", next, active)
	}
}

func TestNewAgentClassRejectsMissingEntry(t *testing.T) {
	spec := twoStateTwoSensorSpec()
	spec.Transitions = spec.Transitions[:len(spec.Transitions)-1]
	if _, err := NewAgentClass(spec); err == nil {
		t.Error("expected a MalformedTransitionTableError for a non-total table")
	}
}

func TestNewAgentClassRejectsDuplicateEntry(t *testing.T) {
	spec := twoStateTwoSensorSpec()
	spec.Transitions = append(spec.Transitions, RawTransition{
		State: "idle", Sensors: []string{"hot", "full"}, Next: "idle",
	})
	if _, err := NewAgentClass(spec); err == nil {
		t.Error("expected a MalformedTransitionTableError for a duplicate entry")
	}
}

func TestNewAgentClassRejectsUndeclaredSensor(t *testing.T) {
	spec := twoStateTwoSensorSpec()
	spec.Transitions[0].Sensors = []string{"hot", "unknown"}
	if _, err := NewAgentClass(spec); err == nil {
		t.Error("expected a MalformedTransitionTableError for an undeclared sensor")
	}
}

func TestNewAgentClassRejectsPartialMention(t *testing.T) {
	spec := twoStateTwoSensorSpec()
	spec.Transitions[0].Sensors = []string{"hot"}
	if _, err := NewAgentClass(spec); err == nil {
		t.Error("expected a MalformedTransitionTableError when an entry omits a declared sensor")
	}
}

func TestAgentClassWithNoTransitionsIsStateless(t *testing.T) {
	c, err := NewAgentClass(AgentClassSpec{Name: "static", States: []string{"only"}})
	if err != nil {
		t.Fatal(err)
	}
	next, err := c.Next(0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if next != 0 {
		t.Errorf("stateless class should stay in state 0, got %d", next)
	}
}

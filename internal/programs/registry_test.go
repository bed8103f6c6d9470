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

import (
	"testing"

	"github.com/chemswarm/chemswarm"
)

func TestBuildRejectsUnknownName(t *testing.T) {
	if _, err := Build("no-such-program"); err == nil {
		t.Error("expected an error for an unregistered program name")
	}
}

func TestEveryRegisteredProgramBuildsAndRuns(t *testing.T) {
	for _, name := range Names() {
		name := name
		t.Run(name, func(t *testing.T) {
			program, err := Build(name)
			if err != nil {
				t.Fatalf("Build(%q): %v", name, err)
			}
			e, err := chemswarm.NewEngine(program, 7)
			if err != nil {
				t.Fatalf("NewEngine: %v", err)
			}
			if err := e.Init(); err != nil {
				t.Fatalf("Init: %v", err)
			}
			for i := 0; i < 3; i++ {
				if err := e.Step(0.1); err != nil {
					t.Fatalf("Step %d: %v", i, err)
				}
			}
		})
	}
}

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
	"fmt"
	"sort"

	"github.com/chemswarm/chemswarm"
)

var registry = map[string]func() (*chemswarm.Program, error){
	"gradient-flocking":  gradientFlocking,
	"selective-flocking": selectiveFlocking,
	"line-generation":    lineGeneration,
	"transport":          transport,
}

// Build constructs the named built-in program. The run configuration
// selects a program by this name because a transition table or a
// reaction/exchange closure cannot be expressed in TOML.
func Build(name string) (*chemswarm.Program, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("programs: no built-in program named %q (available: %v)", name, Names())
	}
	return ctor()
}

// Names returns the registered program names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

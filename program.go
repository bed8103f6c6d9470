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

// GridSpec describes the spatial domain and its discretization.
type GridSpec struct {
	XLo, XHi, YLo, YHi float64
	H                  float64
}

// SwarmSpec declares one group of agents: a shared class descriptor and
// how many independent instances of it to create.
type SwarmSpec struct {
	Class *AgentClass
	Count int
}

// Program is the full declarative bundle that an Engine is built from:
// the grid, the ordered species list, and the ordered swarm groups. The
// flat agent population is the concatenation of each SwarmSpec's Count
// instances, in Swarms order.
type Program struct {
	Grid    GridSpec
	Species []Species
	Swarms  []SwarmSpec
}

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

// Package chemswarm simulates chemical swarm programs: a population of
// mobile finite-state agents coupled to one or more reaction-diffusion
// chemical fields on a 2D rectangular grid. A Program declares the grid,
// the chemical species, and the agent classes; an Engine advances the
// joint field/agent state one fixed time step at a time.
package chemswarm

// Version is the current release of the chemswarm engine.
const Version = "0.1.0"

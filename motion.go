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
	"math/rand"

	"github.com/ctessum/sparse"
)

// MotionModel advances agent positions by a Brownian term and a
// chemotactic ascent term, clipped to stay inside the domain.
type MotionModel struct {
	grid  *Grid
	probe *GradientProbe
}

// NewMotionModel binds a MotionModel to grid.
func NewMotionModel(grid *Grid) *MotionModel {
	return &MotionModel{grid: grid, probe: NewGradientProbe(grid)}
}

// Step updates every agent's position in construction order, drawing from
// rng in that same order so that a run is reproducible for a fixed seed.
// Agents whose class declares a fixed position are skipped entirely.
func (m *MotionModel) Step(U []*sparse.DenseArray, agents []*AgentState, dt float64, rng *rand.Rand) error {
	for _, a := range agents {
		c := a.Class
		if c.FixedPos != nil {
			continue
		}

		displacement := c.Displacement.Resolve(a.FSMState(), c.Actuators)
		d := Point{
			X: displacement * math.Pow(dt, -0.5) * (2*rng.Float64() - 1),
			Y: displacement * math.Pow(dt, -0.5) * (2*rng.Float64() - 1),
		}

		for k, speedParam := range c.Ascent {
			speed := speedParam.Resolve(a.FSMState(), c.Actuators)
			if speed == 0 {
				continue
			}
			gx, gy, err := m.probe.Gradient(U[k].Elements, a.Pos.X, a.Pos.Y)
			if err != nil {
				return err
			}
			if gx == 0 && gy == 0 {
				continue
			}
			norm := math.Hypot(gx, gy)
			d.X += dt * speed * gx / norm
			d.Y += dt * speed * gy / norm
		}

		d = m.grid.Clip(a.Pos, d)
		a.Pos.X += d.X
		a.Pos.Y += d.Y
	}
	return nil
}

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

// GradientProbe computes a central-difference gradient of a field at an
// arbitrary real position, returning the zero vector near the domain
// boundary rather than reading out-of-range neighbor cells.
type GradientProbe struct {
	grid *Grid
}

// NewGradientProbe binds a GradientProbe to grid.
func NewGradientProbe(grid *Grid) *GradientProbe {
	return &GradientProbe{grid: grid}
}

// Gradient returns the central-difference gradient of field at (x, y). A
// component is 0 when (x, y) lies closer than one grid spacing H to the
// domain boundary along that component's axis.
func (g *GradientProbe) Gradient(field []float64, x, y float64) (float64, float64, error) {
	grid := g.grid
	p, err := grid.PosToIndex(x, y)
	if err != nil {
		return 0, 0, err
	}

	var gx, gy float64
	if x-grid.XLo >= grid.H && grid.XHi-x >= grid.H {
		gx = (field[p+1] - field[p-1]) / (2 * grid.H)
	}
	if y-grid.YLo >= grid.H && grid.YHi-y >= grid.H {
		gy = (field[p+grid.Mx] - field[p-grid.Mx]) / (2 * grid.H)
	}
	return gx, gy, nil
}

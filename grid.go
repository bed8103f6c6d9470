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

import "math"

// gridTol is the tolerance used to check that the domain extent divides
// evenly into cells of size H.
const gridTol = 1e-8

// clipEpsilon keeps a clipped position strictly inside the domain.
const clipEpsilon = 1e-5

// Point is a 2D position or displacement.
type Point struct {
	X, Y float64
}

// Grid is the immutable 2D rectangular mesh that chemical fields and agent
// positions live on. It is constructed once and never mutated.
type Grid struct {
	XLo, XHi, YLo, YHi float64
	H                  float64
	Mx, My             int
}

// NewGrid builds a Grid, validating that the domain extent is an integer
// multiple of H to within gridTol.
func NewGrid(xlo, xhi, ylo, yhi, h float64) (*Grid, error) {
	mx := (xhi - xlo) / h
	if math.Abs(math.Round(mx)-mx) >= gridTol {
		return nil, &GridMisconfiguredError{Axis: "x", Span: xhi - xlo, H: h}
	}
	my := (yhi - ylo) / h
	if math.Abs(math.Round(my)-my) >= gridTol {
		return nil, &GridMisconfiguredError{Axis: "y", Span: yhi - ylo, H: h}
	}
	return &Grid{
		XLo: xlo, XHi: xhi, YLo: ylo, YHi: yhi, H: h,
		Mx: int(math.Round(mx)) + 1,
		My: int(math.Round(my)) + 1,
	}, nil
}

// N is the total number of cells in the grid.
func (g *Grid) N() int { return g.Mx * g.My }

// Index linearizes integer cell coordinates (i, j) as i + j*Mx.
func (g *Grid) Index(i, j int) int { return i + j*g.Mx }

// PosToIndex maps a real position to its cell's linear index. Following
// the source this is grounded on, the top row of cells (index >=
// Mx*(My-1)) is treated as out of bounds, along with any position outside
// the domain.
func (g *Grid) PosToIndex(x, y float64) (int, error) {
	i := int(math.Floor((x - g.XLo) / (g.XHi - g.XLo) * float64(g.Mx-1)))
	j := int(math.Floor((y - g.YLo) / (g.YHi - g.YLo) * float64(g.My-1)))
	p := i + j*g.Mx
	if x < g.XLo || x > g.XHi || p < 0 || p >= g.Mx*(g.My-1) {
		return 0, &OutOfBoundsError{X: x, Y: y}
	}
	return p, nil
}

// Clip returns the largest same-direction displacement d' such that pos+d'
// remains inside [XLo, XHi-eps) x [YLo, YHi-eps), scaling axis by axis in
// x-then-y order as in the reference implementation.
func (g *Grid) Clip(pos, d Point) Point {
	npx := pos.X + d.X
	if npx < g.XLo && d.X != 0 {
		d.X, d.Y = scale(d, -(pos.X-g.XLo)/d.X)
	} else if npx >= g.XHi && d.X != 0 {
		d.X, d.Y = scale(d, (g.XHi-pos.X-clipEpsilon)/d.X)
	}
	npy := pos.Y + d.Y
	if npy < g.YLo && d.Y != 0 {
		d.X, d.Y = scale(d, -(pos.Y-g.YLo)/d.Y)
	} else if npy >= g.YHi && d.Y != 0 {
		d.X, d.Y = scale(d, (g.YHi-pos.Y-clipEpsilon)/d.Y)
	}
	return d
}

func scale(d Point, factor float64) (float64, float64) {
	return d.X * factor, d.Y * factor
}

// Laplacian is a matrix-free representation of the 5-point discrete
// Laplacian with row-wraparound suppression, scaled by 1/H^2. It is shared
// read-only across every species' implicit diffusion solve.
type Laplacian struct {
	grid *Grid
}

// NewLaplacian builds the stencil applier for g.
func NewLaplacian(g *Grid) *Laplacian {
	return &Laplacian{grid: g}
}

// Apply computes dst = A*src using the 5-point stencil [-4, +1, +1, +1,
// +1] on center/E/W/N/S, suppressing the E coefficient on the last column
// of a row and the W coefficient on the first column, then scaling by
// 1/H^2. dst and src must not alias and must both have length g.N().
func (l *Laplacian) Apply(dst, src []float64) {
	g := l.grid
	mx, my := g.Mx, g.My
	invH2 := 1. / (g.H * g.H)
	for j := 0; j < my; j++ {
		rowOff := j * mx
		for i := 0; i < mx; i++ {
			p := rowOff + i
			v := -4 * src[p]
			if i < mx-1 {
				v += src[p+1]
			}
			if i > 0 {
				v += src[p-1]
			}
			if j < my-1 {
				v += src[p+mx]
			}
			if j > 0 {
				v += src[p-mx]
			}
			dst[p] = v * invH2
		}
	}
}

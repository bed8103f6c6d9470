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
	"errors"
	"math"
	"runtime"
	"sync"

	"github.com/ctessum/sparse"
	"gonum.org/v1/gonum/mat"
)

// Species is an immutable descriptor of one chemical field: its diffusion
// and decay constants and its uniform initial concentration.
type Species struct {
	Name      string
	Diffusion float64
	Decay     float64
	Initial   float64
}

// NewFieldState allocates one *sparse.DenseArray per species, each of
// length grid.N(), initialized to that species' Initial concentration.
func NewFieldState(grid *Grid, species []Species) []*sparse.DenseArray {
	u := make([]*sparse.DenseArray, len(species))
	for k, c := range species {
		arr := sparse.ZerosDense(grid.N())
		for p := range arr.Elements {
			arr.Elements[p] = c.Initial
		}
		u[k] = arr
	}
	return u
}

// FieldSolver evolves the field state for one species over one time step
// by operator splitting: an implicit diffusion solve followed by an
// explicit decay. It holds no per-step mutable state, so one FieldSolver
// can be reused across an Engine's entire lifetime.
type FieldSolver struct {
	lap *Laplacian
}

// NewFieldSolver builds a solver bound to grid's Laplacian stencil.
func NewFieldSolver(grid *Grid) *FieldSolver {
	return &FieldSolver{lap: NewLaplacian(grid)}
}

// Step advances U in place over one time step dt for every species in
// species. Each species' diffusion/decay is independent of every other
// species', so the species are fanned out across goroutines the way the
// teacher's Calculations helper fans cells out across workers.
func (s *FieldSolver) Step(species []Species, U []*sparse.DenseArray, dt float64) error {
	nprocs := runtime.GOMAXPROCS(0)
	if nprocs > len(species) {
		nprocs = len(species)
	}
	if nprocs < 1 {
		return nil
	}

	errs := make([]error, nprocs)
	var wg sync.WaitGroup
	wg.Add(nprocs)
	for pp := 0; pp < nprocs; pp++ {
		go func(pp int) {
			defer wg.Done()
			for k := pp; k < len(species); k += nprocs {
				if err := s.stepOne(species[k], U[k].Elements, dt); err != nil {
					errs[pp] = err
					return
				}
			}
		}(pp)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *FieldSolver) stepOne(c Species, u []float64, dt float64) error {
	uPrime, err := s.implicitDiffuse(c.Diffusion, dt, u)
	if err != nil {
		return &SolverDivergenceError{Species: c.Name, Reason: err.Error()}
	}
	for p, v := range uPrime {
		f := v - dt*c.Decay*v
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return &SolverDivergenceError{Species: c.Name, Reason: "non-finite value after decay"}
		}
		u[p] = f
	}
	return nil
}

// implicitDiffuse solves (I - dt*D*A) u' = b for u', where A is the
// matrix-free 5-point Laplacian. The system is symmetric positive
// definite for D, dt >= 0, so it is solved with conjugate gradient rather
// than materializing or factoring A; this keeps the solve sparse without
// pulling in a dedicated sparse-solver dependency.
func (s *FieldSolver) implicitDiffuse(D, dt float64, b []float64) ([]float64, error) {
	n := len(b)
	if D == 0 {
		out := make([]float64, n)
		copy(out, b)
		return out, nil
	}

	apply := func(v, out []float64) {
		s.lap.Apply(out, v)
		for i := range out {
			out[i] = v[i] - dt*D*out[i]
		}
	}

	bCopy := make([]float64, n)
	copy(bCopy, b)

	x := mat.NewVecDense(n, nil) // initial guess: zero
	r := mat.NewVecDense(n, bCopy)
	p := mat.NewVecDense(n, nil)
	p.CopyVec(r)
	ap := mat.NewVecDense(n, make([]float64, n))

	rsOld := mat.Dot(r, r)
	if rsOld == 0 {
		return make([]float64, n), nil
	}

	const maxIter = 2000
	const tol = 1e-10
	bNorm := math.Sqrt(mat.Dot(r, r))

	for iter := 0; iter < maxIter; iter++ {
		apply(p.RawVector().Data, ap.RawVector().Data)
		denom := mat.Dot(p, ap)
		if denom == 0 {
			break
		}
		alpha := rsOld / denom
		x.AddScaledVec(x, alpha, p)
		r.AddScaledVec(r, -alpha, ap)

		rsNew := mat.Dot(r, r)
		if math.Sqrt(rsNew) <= tol*bNorm {
			rsOld = rsNew
			break
		}
		beta := rsNew / rsOld
		p.AddScaledVec(r, beta, p)
		rsOld = rsNew
	}

	out := make([]float64, n)
	copy(out, x.RawVector().Data)
	for _, v := range out {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errNonFinite
		}
	}
	return out, nil
}

var errNonFinite = errors.New("non-finite value during conjugate-gradient solve")

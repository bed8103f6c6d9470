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
	"runtime"
	"sync"

	"github.com/ctessum/sparse"
	"gonum.org/v1/gonum/mat"
)

// ReactionCoupler injects each agent's local reaction and exchange terms
// into the field and the agent's reservoir. Every agent participates
// every step, regardless of its FSM clock. Concurrent writes into the
// same cell are serialized through a per-cell lock, mirroring the
// teacher's per-Cell RWMutex used in its own concurrent cell pipeline.
type ReactionCoupler struct {
	grid  *Grid
	locks []sync.Mutex
}

// NewReactionCoupler allocates one lock per cell of grid.
func NewReactionCoupler(grid *Grid) *ReactionCoupler {
	return &ReactionCoupler{grid: grid, locks: make([]sync.Mutex, grid.N())}
}

// Step applies reaction then exchange for every agent, fanning out across
// goroutines in round-robin order.
func (rc *ReactionCoupler) Step(species []Species, U []*sparse.DenseArray, agents []*AgentState, dt float64) error {
	k := len(species)
	h2 := rc.grid.H * rc.grid.H

	nprocs := runtime.GOMAXPROCS(0)
	if nprocs > len(agents) {
		nprocs = len(agents)
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
			conc := make([]float64, k)
			for ii := pp; ii < len(agents); ii += nprocs {
				if err := rc.applyOne(k, h2, dt, species, U, agents[ii], conc); err != nil {
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

func (rc *ReactionCoupler) applyOne(k int, h2, dt float64, species []Species, U []*sparse.DenseArray, a *AgentState, conc []float64) error {
	p, err := rc.grid.PosToIndex(a.Pos.X, a.Pos.Y)
	if err != nil {
		return err
	}

	rc.locks[p].Lock()
	defer rc.locks[p].Unlock()

	for i := 0; i < k; i++ {
		conc[i] = U[i].Elements[p]
	}

	fsmState, actuators := a.FSMState(), a.Class.Actuators
	r, err := shapeVector(a.Class.Reaction, conc, fsmState, actuators, k)
	if err != nil {
		return &ReactionShapeMismatchError{Class: a.Class.Name, Func: "reaction", Got: len(r), Expected: k}
	}
	rv := mat.NewVecDense(k, append([]float64(nil), r...))
	rv.ScaleVec(dt/h2, rv)
	for i := 0; i < k; i++ {
		U[i].Elements[p] += rv.AtVec(i)
		conc[i] = U[i].Elements[p]
	}

	e, err := shapeVector(a.Class.Exchange, conc, fsmState, actuators, k)
	if err != nil {
		return &ReactionShapeMismatchError{Class: a.Class.Name, Func: "exchange", Got: len(e), Expected: k}
	}
	ev := mat.NewVecDense(k, append([]float64(nil), e...))
	ev.ScaleVec(dt/h2, ev)
	for i := 0; i < k; i++ {
		delta := ev.AtVec(i)
		U[i].Elements[p] -= delta
		a.Reservoir[i] += delta
	}
	return nil
}

// shapeVector calls fn (if non-nil) and normalizes its result to a
// length-k vector, treating a nil/empty result as the "scalar zero"
// convention.
func shapeVector(fn ReactionFunc, conc []float64, fsmState string, actuators map[string]Actuator, k int) ([]float64, error) {
	if fn == nil {
		return make([]float64, k), nil
	}
	v := fn(conc, fsmState, actuators)
	if len(v) == 0 {
		return make([]float64, k), nil
	}
	if len(v) != k {
		return v, errShapeMismatch
	}
	return v, nil
}

var errShapeMismatch = errors.New("reaction/exchange vector shape mismatch")

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
	"fmt"
	"math/rand"

	"github.com/ctessum/sparse"
	"gonum.org/v1/gonum/floats"
)

// Engine composes the Grid, FieldSolver, MotionModel, ReactionCoupler and
// FSMDriver into a single step(dt) in a fixed operator-splitting order:
// diffuse/decay the fields, move the agents, couple reaction/exchange
// terms into the fields, then evaluate sensors and FSM transitions. It is
// not reentrant: a caller must not invoke Step concurrently with itself
// or with Snapshot.
type Engine struct {
	Grid    *Grid
	Species []Species
	U       []*sparse.DenseArray
	Agents  []*AgentState

	T float64

	rng      *rand.Rand
	solver   *FieldSolver
	motion   *MotionModel
	reaction *ReactionCoupler
	fsm      *FSMDriver

	swarms []SwarmSpec
}

// NewEngine builds an Engine from program, seeding its RNG stream with
// seed so that replays with the same program and seed are deterministic.
// The engine is not usable until Init is called.
func NewEngine(program *Program, seed int64) (*Engine, error) {
	grid, err := NewGrid(program.Grid.XLo, program.Grid.XHi, program.Grid.YLo, program.Grid.YHi, program.Grid.H)
	if err != nil {
		return nil, err
	}
	return &Engine{
		Grid:     grid,
		Species:  program.Species,
		rng:      rand.New(rand.NewSource(seed)),
		solver:   NewFieldSolver(grid),
		motion:   NewMotionModel(grid),
		reaction: NewReactionCoupler(grid),
		fsm:      NewFSMDriver(grid),
		swarms:   program.Swarms,
	}, nil
}

// Init allocates field state at each species' Initial concentration and
// instantiates one AgentState per declared swarm instance, in swarms
// order. It must be called exactly once before the first Step.
func (e *Engine) Init() error {
	e.U = NewFieldState(e.Grid, e.Species)
	e.T = 0

	var agents []*AgentState
	for _, sw := range e.swarms {
		for i := 0; i < sw.Count; i++ {
			agents = append(agents, newAgentState(sw.Class, e.Grid, len(e.Species), e.rng))
		}
	}
	e.Agents = agents
	return nil
}

// Step advances the joint field/agent state by exactly dt, following the
// fixed phase order: diffusion+decay, motion, reaction/exchange,
// clock-gated sensor+FSM update, then t += dt.
func (e *Engine) Step(dt float64) error {
	if dt <= 0 {
		return fmt.Errorf("chemswarm: Step: dt must be positive, got %g", dt)
	}
	if err := e.solver.Step(e.Species, e.U, dt); err != nil {
		return err
	}
	if err := e.motion.Step(e.U, e.Agents, dt, e.rng); err != nil {
		return err
	}
	if err := e.reaction.Step(e.Species, e.U, e.Agents, dt); err != nil {
		return err
	}
	if err := e.fsm.Step(e.U, e.Agents, e.T, dt); err != nil {
		return err
	}
	e.T += dt
	return nil
}

// TotalMass returns the sum of species k's field concentrations over all
// cells, for checking mass conservation.
func (e *Engine) TotalMass(k int) float64 {
	return floats.Sum(e.U[k].Elements)
}

// AgentSnapshot is a read-only, decoupled view of one agent's runtime
// state for external consumers.
type AgentSnapshot struct {
	Pos       Point
	State     string
	Reservoir []float64
	Sensors   []bool
}

// Snapshot is a read-only view of the engine's joint state at a point in
// simulated time.
type Snapshot struct {
	T      float64
	Fields [][]float64
	Agents []AgentSnapshot
}

// Snapshot copies out the current joint state. Mutating the returned
// value never affects the engine.
func (e *Engine) Snapshot() Snapshot {
	fields := make([][]float64, len(e.U))
	for k, arr := range e.U {
		fields[k] = append([]float64(nil), arr.Elements...)
	}
	agents := make([]AgentSnapshot, len(e.Agents))
	for i, a := range e.Agents {
		agents[i] = AgentSnapshot{
			Pos:       a.Pos,
			State:     a.FSMState(),
			Reservoir: append([]float64(nil), a.Reservoir...),
			Sensors:   append([]bool(nil), a.Sensors...),
		}
	}
	return Snapshot{T: e.T, Fields: fields, Agents: agents}
}

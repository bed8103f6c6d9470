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

import "github.com/ctessum/sparse"

// SensorEvaluator snapshots each of an agent's sensor truths at its
// current cell, in sensor declaration order.
type SensorEvaluator struct {
	grid *Grid
}

// NewSensorEvaluator binds a SensorEvaluator to grid.
func NewSensorEvaluator(grid *Grid) *SensorEvaluator {
	return &SensorEvaluator{grid: grid}
}

// Evaluate refreshes a.Sensors in place from the current field state U and
// the agent's own reservoir.
func (s *SensorEvaluator) Evaluate(U []*sparse.DenseArray, a *AgentState) error {
	p, err := s.grid.PosToIndex(a.Pos.X, a.Pos.Y)
	if err != nil {
		return err
	}
	for i, sd := range a.Class.Sensors {
		switch sd.Kind {
		case FieldSensorKind:
			a.Sensors[i] = U[sd.SpeciesIndex].Elements[p] >= sd.Threshold
		case ReservoirSensorKind:
			a.Sensors[i] = a.Reservoir[sd.SpeciesIndex] >= sd.Threshold
		}
	}
	return nil
}

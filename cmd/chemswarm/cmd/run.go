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

package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/chemswarm/chemswarm"
	"github.com/chemswarm/chemswarm/internal/programs"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a chemswarm simulation.",
	Long:  "run builds the program named in the configuration file and advances it Steps times of size Dt.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return labelErr(Run(Config))
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in registered programs.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range programs.Names() {
			fmt.Println(name)
		}
	},
}

// Run builds the program named in c, advances it c.Steps times, and
// writes a final snapshot to c.OutputFile if one is given.
func Run(c *ConfigData) error {
	program, err := programs.Build(c.Program)
	if err != nil {
		return err
	}

	e, err := chemswarm.NewEngine(program, c.Seed)
	if err != nil {
		return err
	}
	if err := e.Init(); err != nil {
		return err
	}

	for i := 0; i < c.Steps; i++ {
		if err := e.Step(c.Dt); err != nil {
			return fmt.Errorf("step %d: %v", i, err)
		}
		if c.SnapshotEvery > 0 && (i+1)%c.SnapshotEvery == 0 {
			Log.WithFields(logrus.Fields{"step": i + 1, "t": e.T}).Info("chemswarm progress")
		}
	}

	snap := e.Snapshot()
	Log.WithFields(logrus.Fields{"t": snap.T, "agents": len(snap.Agents)}).Info("chemswarm run complete")

	if c.OutputFile == "" {
		return nil
	}
	return writeSnapshot(c.OutputFile, snap)
}

// writeSnapshot writes one row per agent to a CSV file at path.
func writeSnapshot(path string, snap chemswarm.Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %v", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"agent", "x", "y", "state"}); err != nil {
		return err
	}
	for i, a := range snap.Agents {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(a.Pos.X, 'g', -1, 64),
			strconv.FormatFloat(a.Pos.Y, 'g', -1, 64),
			a.State,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

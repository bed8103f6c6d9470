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
	"bufio"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ConfigData holds the information needed to run one simulation: which
// built-in program to build, its random seed, and the step schedule. The
// program's transition table and reaction/exchange closures are not
// representable in TOML, so Program only names one of the registered
// built-ins; see internal/programs.
type ConfigData struct {
	// Program is the name of a built-in registered program, e.g.
	// "gradient-flocking" or "transport".
	Program string

	// Seed seeds the engine's deterministic random number stream.
	Seed int64

	// Steps is the number of fixed-size steps to advance.
	Steps int

	// Dt is the size of each step.
	Dt float64

	// OutputFile is the path to write the final snapshot to, as CSV. It
	// can include environment variables. If empty, the snapshot is only
	// summarized in the log.
	OutputFile string

	// SnapshotEvery, if > 0, writes an intermediate progress line to the
	// log every that many steps.
	SnapshotEvery int
}

// ReadConfigFile reads and parses a TOML configuration file.
func ReadConfigFile(filename string) (config *ConfigData, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("the configuration file you have specified, %v, does not "+
			"appear to exist. Please check the file name and location and try again", filename)
	}
	defer file.Close()

	reader := bufio.NewReader(file)
	bytes, err := ioutil.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("problem reading configuration file: %v", err)
	}

	config = new(ConfigData)
	if _, err := toml.Decode(string(bytes), config); err != nil {
		return nil, fmt.Errorf("there has been an error parsing the configuration file: %v", err)
	}

	config.OutputFile = os.ExpandEnv(config.OutputFile)

	if config.Program == "" {
		return nil, fmt.Errorf("you need to specify a Program in the configuration file")
	}
	if config.Steps < 1 {
		return nil, fmt.Errorf("Steps must be >= 1, got %d", config.Steps)
	}
	if config.Dt <= 0 {
		return nil, fmt.Errorf("Dt must be > 0, got %g", config.Dt)
	}

	if config.OutputFile != "" {
		if err := os.MkdirAll(filepath.Dir(config.OutputFile), os.ModePerm); err != nil {
			return nil, fmt.Errorf("problem creating output directory: %v", err)
		}
	}
	return config, nil
}

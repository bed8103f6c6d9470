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

package main

import (
	"os"

	"github.com/chemswarm/chemswarm/cmd/chemswarm/cmd"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

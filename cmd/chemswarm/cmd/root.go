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

// Package cmd contains commands and subcommands for the chemswarm
// command-line interface.
package cmd

import (
	"fmt"

	"github.com/chemswarm/chemswarm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configFile string

	// Config holds the global configuration data.
	Config *ConfigData

	// Log is the package-wide structured logger.
	Log = logrus.StandardLogger()
)

// RootCmd is the main command.
var RootCmd = &cobra.Command{
	Use:   "chemswarm",
	Short: "A chemical swarm simulation engine.",
	Long: `chemswarm simulates a population of mobile finite-state agents coupled to
	one or more reaction-diffusion chemical fields on a 2D grid.
	Use the subcommands specified below to access the model functionality.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return labelErr(startup(configFile))
	},
}

func startup(configFile string) error {
	var err error
	Config, err = ReadConfigFile(configFile)
	if err != nil {
		return err
	}
	Log.WithFields(logrus.Fields{"config": configFile, "version": chemswarm.Version}).Info("chemswarm starting")
	return nil
}

func labelErr(err error) error {
	if err != nil {
		return fmt.Errorf("chemswarm: %v", err)
	}
	return nil
}

func init() {
	RootCmd.AddCommand(versionCmd)
	RootCmd.AddCommand(runCmd)
	RootCmd.AddCommand(listCmd)

	RootCmd.PersistentFlags().StringVar(&configFile, "config", "./chemswarm.toml", "configuration file location")
	Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of chemswarm.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("chemswarm v%s\n", chemswarm.Version)
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
}

// Copyright 2018, the skymap project authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"

	cli "gopkg.in/urfave/cli.v1"
)

const version = "1.0.0"

var commands = cli.Commands{
	cli.Command{
		Name:      "plot",
		Aliases:   []string{"p"},
		Usage:     "Plot the sky coverage of a set of visits",
		ArgsUsage: "ROOT TRACT VISITS",
		Flags:     plotFlags,
		Action:    plotAction,
	},
	cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Launch the skymap webserver",
		Action:  serveAction,
	},
	cli.Command{
		Name:    "version",
		Aliases: []string{"v"},
		Usage:   "Print the version number of the skymap CLI",
		Action:  versionAction,
	},
	cli.Command{
		Name:    "ingest",
		Aliases: []string{"i"},
		Usage:   "Update the exposure index from a repository",
		Flags:   ingestFlags,
		Action:  ingestAction,
	},
	cli.Command{
		Name:    "migrate",
		Aliases: []string{"m"},
		Usage:   "Update database schema",
		Action:  migrateDatabaseAction,
	},
}

func createCliApp() (app *cli.App) {
	app = cli.NewApp()
	app.Name = "skymap"
	app.Usage = "Visualize the sky coverage of telescope exposures"
	app.Version = version
	app.Commands = commands
	return
}

func versionAction(*cli.Context) {
	fmt.Println(version)
}

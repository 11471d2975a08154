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
	"errors"
	"fmt"
	"os"
	"strconv"

	cli "gopkg.in/urfave/cli.v1"

	"github.com/jonathansick-shadow/skymap/butler"
	"github.com/jonathansick-shadow/skymap/footprint"
	"github.com/jonathansick-shadow/skymap/render"
)

var plotFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "ccds, c",
		Usage: "Detector serials to plot, as C1^C2^C3; default is every science detector",
	},
	cli.BoolFlag{
		Name:  "showPatch, p",
		Usage: "Overlay the sky map patch boundaries",
	},
	cli.StringFlag{
		Name:  "saveFile",
		Usage: "Output image path; a temporary file is used when omitted",
	},
	cli.StringFlag{
		Name:  "ccdKey",
		Usage: "Data ID field naming the detector",
		Value: "ccd",
	},
}

func plotAction(c *cli.Context) error {
	if c.NArg() != 3 {
		return errors.New("Usage: skymap plot ROOT TRACT VISITS")
	}
	root := c.Args().Get(0)
	tract, err := strconv.Atoi(c.Args().Get(1))
	if err != nil {
		return fmt.Errorf("The tract value %q is invalid", c.Args().Get(1))
	}
	visits, err := footprint.ParseIDList(c.Args().Get(2))
	if err != nil {
		return fmt.Errorf("The visits value %q is invalid: %v", c.Args().Get(2), err)
	}

	opts := footprint.Options{Visits: visits, CCDKey: c.String("ccdKey")}
	if raw := c.String("ccds"); raw != "" {
		if opts.CCDs, err = footprint.ParseIDSet(raw); err != nil {
			return fmt.Errorf("The ccds value %q is invalid: %v", raw, err)
		}
	}

	repo, err := butler.Open(root)
	if err != nil {
		return err
	}
	ctx := &footprint.Context{Butler: repo}

	cam, err := repo.Camera()
	if err != nil {
		return fmt.Errorf("Could not load the camera description: %v", err)
	}

	figure := render.NewFigure()
	report := footprint.DrawVisits(ctx, repo, cam, figure, opts)

	for _, failure := range report.Failures {
		fmt.Fprintf(os.Stderr, "skipped visit=%d ccd=%d: %v\n", failure.Visit, failure.CCD, failure.Err)
	}
	fmt.Printf("Plotted %d footprints (%d skipped)\n", report.Plotted(), len(report.Failures))

	limits, err := report.Limits()
	if err != nil {
		return err
	}
	figure.SetLimits(limits.XLim, limits.YLim)

	if c.Bool("showPatch") {
		sm, err := repo.SkyMap()
		if err != nil {
			return fmt.Errorf("Could not load the sky map: %v", err)
		}
		if tract < 0 || tract >= sm.Len() {
			return fmt.Errorf("Tract %d is out of range; the sky map has %d tracts", tract, sm.Len())
		}
		if err = footprint.DrawPatchOverlay(figure, sm, limits); err != nil {
			return fmt.Errorf("Error drawing the patch overlay: %v", err)
		}
	}

	saveFile := c.String("saveFile")
	if saveFile == "" {
		tmp, err := os.CreateTemp("", "skymap-coverage-*.png")
		if err != nil {
			return err
		}
		saveFile = tmp.Name()
		tmp.Close()
	}
	if err = figure.Save(saveFile); err != nil {
		return fmt.Errorf("Error saving the plot: %v", err)
	}
	fmt.Printf("Saved coverage plot to %s\n", saveFile)
	return nil
}

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

	cli "gopkg.in/urfave/cli.v1"

	"github.com/jonathansick-shadow/skymap/exposureindex/db"
	"github.com/jonathansick-shadow/skymap/util"
)

var ingestFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "root",
		Usage: "Repository root; SKYMAP_REPOSITORY_ROOT when omitted",
	},
	cli.StringFlag{
		Name:  "ccdKey",
		Usage: "Data ID field naming the detector",
		Value: "ccd",
	},
}

//ingestAction computes footprints for every exposure in the repository
//and upserts them into the exposure index.
func ingestAction(c *cli.Context) error {
	root := c.String("root")
	if root == "" {
		root = util.GetRepositoryRoot()
	}
	if root == "" {
		return errors.New("No repository root; pass --root or set SKYMAP_REPOSITORY_ROOT")
	}

	importer := db.NewImporter(root, c.String("ccdKey"), util.GetIngestWorkers(), getDbConnectionFunc)

	result, err := importer.Import(&util.BasicLogContext{})
	if err != nil {
		return err
	}
	fmt.Println(result)
	return nil
}

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

package util

import (
	"os"
	"strconv"
)

// Environment variables
const (
	REPOSITORY_ROOT = "SKYMAP_REPOSITORY_ROOT"
	CAMERA_FILE     = "SKYMAP_CAMERA_FILE"
	SKY_MAP_FILE    = "SKYMAP_SKY_MAP_FILE"
	INGEST_WORKERS  = "SKYMAP_INGEST_WORKERS"
)

const defaultCameraFile = "camera.json"
const defaultSkyMapFile = "skymap.json"

// GetRepositoryRoot returns the SKYMAP_REPOSITORY_ROOT environment variable;
// it is only a fallback for commands that do not take a root argument
func GetRepositoryRoot() string {
	root, ok := os.LookupEnv(REPOSITORY_ROOT)
	if !ok {
		LogAlert(&BasicLogContext{}, "Did not get a repository root from the environment.")
	}
	return root
}

// GetCameraFileName returns the name of the camera description file
// within a repository root
func GetCameraFileName() string {
	name, ok := os.LookupEnv(CAMERA_FILE)
	if !ok {
		return defaultCameraFile
	}
	return name
}

// GetSkyMapFileName returns the name of the sky map configuration file
// within a repository root
func GetSkyMapFileName() string {
	name, ok := os.LookupEnv(SKY_MAP_FILE)
	if !ok {
		return defaultSkyMapFile
	}
	return name
}

const defaultIngestWorkers = 10

// GetIngestWorkers returns the number of concurrent workers an exposure
// index ingest uses
func GetIngestWorkers() int {
	workers, err := strconv.Atoi(os.Getenv(INGEST_WORKERS))
	if err != nil || workers < 1 {
		return defaultIngestWorkers
	}
	return workers
}

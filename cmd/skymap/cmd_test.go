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
	"io/ioutil"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/jonathansick-shadow/skymap/butler"
	"github.com/jonathansick-shadow/skymap/util"
)

const testCameraJSON = `{
	"name": "testCam",
	"detectors": [
		{"serial": 1, "type": "SCIENCE",
		 "bbox": {"min": {"x": 0, "y": 0}, "max": {"x": 2047, "y": 4095}}}
	]
}`

const testSkyMapJSON = `{"pixelScale": 100, "patchInnerDimensions": [500, 500]}`

const testMetadataJSON = `{
	"CTYPE1": "RA---TAN", "CTYPE2": "DEC--TAN",
	"CRVAL1": 80.0, "CRVAL2": -35.0,
	"CRPIX1": 1024.5, "CRPIX2": 2048.5,
	"CD1_1": -5.55e-5, "CD1_2": 0, "CD2_1": 0, "CD2_2": 5.55e-5,
	"FILTER": "r", "DATE-OBS": "2015-02-18T05:12:00", "EXPTIME": 30
}`

func makeTestRepo(t *testing.T) string {
	root := t.TempDir()
	assert.Nil(t, os.WriteFile(filepath.Join(root, "camera.json"), []byte(testCameraJSON), 0644))
	assert.Nil(t, os.WriteFile(filepath.Join(root, "skymap.json"), []byte(testSkyMapJSON), 0644))
	dir := filepath.Join(root, "calexp_md", "100")
	assert.Nil(t, os.MkdirAll(dir, 0755))
	assert.Nil(t, os.WriteFile(filepath.Join(dir, "ccd1.json"), []byte(testMetadataJSON), 0644))
	return root
}

func TestServe_CallsLaunchServer(t *testing.T) {
	root := makeTestRepo(t)
	getButlerFunc = func(util.LogContext) (*butler.Butler, error) { // Mock
		return butler.Open(root)
	}
	success := make(chan bool)
	launchServerFunc = func(portStr string, router *mux.Router) { // Mock
		success <- true
	}
	timer := time.NewTimer(1 * time.Second)

	go serveAction(nil)

	select {
	case <-success:
	case <-timer.C:
		assert.Fail(t, "launchServer not called within 1 second of serve()")
	}
}

func TestServe_BaseHealthCheckEndpoint(t *testing.T) {
	root := makeTestRepo(t)
	getButlerFunc = func(util.LogContext) (*butler.Butler, error) { // Mock
		return butler.Open(root)
	}
	success := make(chan bool)
	launchServerFunc = func(portStr string, router *mux.Router) { // Mock
		req := httptest.NewRequest("GET", "/", strings.NewReader(""))
		response := httptest.NewRecorder()
		router.ServeHTTP(response, req)
		responseBody, _ := ioutil.ReadAll(response.Result().Body)
		success <- (string(responseBody) == "OK")
	}

	timer := time.NewTimer(1 * time.Second)

	go serveAction(nil)

	select {
	case ok := <-success:
		assert.True(t, ok)
	case <-timer.C:
		assert.Fail(t, "launchServer not called within 1 second of serve()")
	}
}

func TestServe_CoverageEndpoint(t *testing.T) {
	root := makeTestRepo(t)
	getButlerFunc = func(util.LogContext) (*butler.Butler, error) { // Mock
		return butler.Open(root)
	}
	body := make(chan string)
	launchServerFunc = func(portStr string, router *mux.Router) { // Mock
		req := httptest.NewRequest("GET", "/coverage?visits=100", strings.NewReader(""))
		response := httptest.NewRecorder()
		router.ServeHTTP(response, req)
		responseBody, _ := ioutil.ReadAll(response.Result().Body)
		body <- string(responseBody)
	}

	timer := time.NewTimer(1 * time.Second)

	go serveAction(nil)

	select {
	case responseBody := <-body:
		assert.Contains(t, responseBody, `"FeatureCollection"`)
	case <-timer.C:
		assert.Fail(t, "launchServer not called within 1 second of serve()")
	}
}

func TestPlot_SavesFile(t *testing.T) {
	root := makeTestRepo(t)
	saveFile := filepath.Join(t.TempDir(), "coverage.png")

	err := createCliApp().Run([]string{"skymap", "plot", "--saveFile", saveFile, "-p", root, "0", "100"})
	assert.Nil(t, err)

	data, err := os.ReadFile(saveFile)
	assert.Nil(t, err)
	assert.NotEmpty(t, data)
}

func TestPlot_BadArguments(t *testing.T) {
	root := makeTestRepo(t)

	err := createCliApp().Run([]string{"skymap", "plot", root, "0"})
	assert.NotNil(t, err)

	err = createCliApp().Run([]string{"skymap", "plot", root, "zero", "100"})
	assert.NotNil(t, err)

	err = createCliApp().Run([]string{"skymap", "plot", root, "0", "1^two"})
	assert.NotNil(t, err)
}

func TestPlot_NoFootprints(t *testing.T) {
	root := makeTestRepo(t)

	saveFile := filepath.Join(t.TempDir(), "coverage.png")
	err := createCliApp().Run([]string{"skymap", "plot", "--saveFile", saveFile, root, "0", "999"})
	assert.NotNil(t, err)
	_, statErr := os.Stat(saveFile)
	assert.True(t, os.IsNotExist(statErr))
}

func TestPlot_TractOutOfRange(t *testing.T) {
	root := makeTestRepo(t)

	saveFile := filepath.Join(t.TempDir(), "coverage.png")
	err := createCliApp().Run([]string{"skymap", "plot", "--saveFile", saveFile, "-p", root, "99", "100"})
	assert.NotNil(t, err)
}

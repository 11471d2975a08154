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
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/jonathansick-shadow/skymap/butler"
	"github.com/jonathansick-shadow/skymap/exposureindex"
	"github.com/jonathansick-shadow/skymap/footprint"
	"github.com/jonathansick-shadow/skymap/util"
)

func getPortStr() string {
	if port, ok := os.LookupEnv("PORT"); ok {
		return ":" + port
	}
	return ":8080"
}

func getButler(ctx util.LogContext) (*butler.Butler, error) {
	return butler.Open(util.GetRepositoryRoot())
}

var getButlerFunc = getButler

func createRouter(ctx util.LogContext) (*mux.Router, error) {
	router := mux.NewRouter()
	router.HandleFunc("/", func(writer http.ResponseWriter, request *http.Request) {
		writer.Write([]byte("OK"))
	})

	if coverageHandler, err := footprint.NewCoverageHandler(getButlerFunc); err == nil {
		router.Handle("/coverage", coverageHandler)
	} else {
		return nil, err
	}

	if plotHandler, err := footprint.NewPlotHandler(getButlerFunc); err == nil {
		router.Handle("/coverage/plot.png", plotHandler)
	} else {
		return nil, err
	}

	// The exposure index endpoint is optional; without a database the
	// repository-backed endpoints still serve.
	if exposuresHandler, err := exposureindex.NewExposuresHandler(getDbConnectionFunc); err == nil {
		router.Handle("/localindex/exposures/{visit}", exposuresHandler)
	} else {
		util.LogAlert(ctx, "No exposure index database available; /localindex routes disabled")
	}

	return router, nil
}

func serveAction(*cli.Context) {
	logContext := &(util.BasicLogContext{})

	portStr := getPortStr()

	if router, err := createRouter(logContext); err == nil {
		launchServerFunc(portStr, router)
	} else {
		util.LogSimpleErr(logContext, "Failed to create router: ", err)
	}
}

var launchServerFunc = launchServer

func launchServer(portStr string, router *mux.Router) {
	server := http.Server{
		Addr:    portStr,
		Handler: router,
	}

	log.Fatal(server.ListenAndServe())
}

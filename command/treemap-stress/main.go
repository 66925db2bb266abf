// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/treemap/background"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE", program)
	}

	if len(arguments) > 0 {
		exitwithstatus.Message("%s: extraneous extra arguments: %v", program, arguments)
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0o600)
		if nil != err {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	s := newSoak(&theConfiguration.Stress, logger.New("stress"))

	if len(options["verbose"]) > 0 {
		fmt.Printf("configuration: %#v\n", theConfiguration.Stress)
		fmt.Printf("seed: %d\n", s.seed)
	}

	// concurrent search load, one process per configured reader
	processes := background.Processes{}
	for i := 0; i < theConfiguration.Stress.Readers; i += 1 {
		processes = append(processes, &reader{
			n:    i + 1,
			log:  logger.New("reader"),
			rand: rand.New(rand.NewSource(s.seed + int64(i) + 1)),
		})
	}
	readers := background.Start(processes, s)

	start := time.Now()
	runError := s.run()
	elapsed := time.Since(start)

	readers.Stop()

	out := io.Writer(os.Stdout)
	if len(options["quiet"]) > 0 {
		out = io.Discard
	}
	s.report(out, elapsed)

	if nil != runError {
		log.Criticalf("stress run failed: %s", runError)
		exitwithstatus.Message("%s: stress run failed: %s", program, runError)
	}

	if failures := s.stats.orderFailures.Uint64(); failures > 0 {
		log.Criticalf("traverse order failures: %d", failures)
		exitwithstatus.Message("%s: %d traverse order failures detected", program, failures)
	}
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/daniel7grant/tinystamp/configuration"
	"github.com/daniel7grant/tinystamp/datetime"
	"github.com/daniel7grant/tinystamp/fault"
	tinyversion "github.com/daniel7grant/tinystamp/version"
	"github.com/daniel7grant/tinystamp/wallclock"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "" // blank means the library version

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "json", HasArg: getoptions.NO_ARGUMENT, Short: 'j'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "samples", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'n'},
		{Long: "seed", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
		{Long: "suffix", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'x'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, programVersion())
	}

	if len(options["help"]) > 0 || 0 != len(arguments) {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--json] [--config-file=FILE] [--samples=N] [--seed=N] [--suffix=Z|+00:00]", program)
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	configurationFile := ""
	if 1 == len(options["config-file"]) {
		configurationFile = options["config-file"][0]
	}

	masterConfiguration, err := readConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	samples := masterConfiguration.Samples
	if 0 != len(options["samples"]) {
		samples, err = strconv.Atoi(options["samples"][0])
		if nil != err || samples <= 0 {
			exitwithstatus.Message("%s: samples: %q  error: %s", program, options["samples"][0], fault.ErrInvalidSampleCount)
		}
	}

	seed := wallclock.System().Now().UnixNano()
	if 0 != len(options["seed"]) {
		seed, err = strconv.ParseInt(options["seed"][0], 10, 64)
		if nil != err {
			exitwithstatus.Message("%s: seed: %q  error: %s", program, options["seed"][0], err)
		}
	}

	suffix := masterConfiguration.Suffix()
	if 0 != len(options["suffix"]) {
		suffix, err = datetime.ParseSuffix(options["suffix"][0])
		if nil != err {
			exitwithstatus.Message("%s: suffix: %q  error: %s", program, options["suffix"][0], err)
		}
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", programVersion())
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	c, err := newChecker(suffix, logger.New(checkLoggerPrefix))
	fault.PanicIfError("reference formatter", err)

	result, err := c.run(samples, seed)

	if len(options["json"]) > 0 && nil != result {
		b, jsonErr := json.MarshalIndent(result, "", "  ")
		if nil != jsonErr {
			exitwithstatus.Message("%s: JSON error: %s", program, jsonErr)
		}
		fmt.Printf("%s\n", b)
	} else if nil != result {
		fmt.Printf("%s\n", result)
		if len(options["verbose"]) > 0 {
			for _, m := range result.Mismatches {
				fmt.Printf("  %d  %s  expected: %q  actual: %q\n", m.Timestamp, m.Field, m.Expected, m.Actual)
			}
		}
	}

	if nil != err {
		log.Errorf("cross check failed: %s", err)
		exitwithstatus.Message("%s: %s", program, err)
	}
}

func programVersion() string {
	if "" == version {
		return tinyversion.Version
	}
	return version
}

// with no file the defaults log to a private temporary directory
func readConfiguration(file string) (*configuration.Configuration, error) {
	if "" != file {
		return configuration.GetConfiguration(file)
	}

	directory := filepath.Join(os.TempDir(), "tinystamp")
	if err := os.MkdirAll(directory, 0700); nil != err {
		return nil, err
	}
	return configuration.Default(directory)
}

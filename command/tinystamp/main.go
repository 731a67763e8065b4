// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/daniel7grant/tinystamp/configuration"
	"github.com/daniel7grant/tinystamp/datetime"
	tinyversion "github.com/daniel7grant/tinystamp/version"
	"github.com/daniel7grant/tinystamp/wallclock"
)

type metadata struct {
	config  *configuration.Configuration
	suffix  datetime.Suffix
	clock   wallclock.Source
	log     *logger.L
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "" // blank means the library version

func main() {
	app := newApp(os.Stdout, os.Stderr, wallclock.System())

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func programVersion() string {
	if "" == version {
		return tinyversion.Version
	}
	return version
}

func newApp(w io.Writer, e io.Writer, clock wallclock.Source) *cli.App {

	app := cli.NewApp()
	app.Name = "tinystamp"
	app.Usage = "convert unix timestamps to ISO-8601 text"
	app.Version = programVersion()
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config-file, c",
			Value: "",
			Usage: " Lua configuration `FILE`",
		},
		cli.StringFlag{
			Name:  "suffix, s",
			Value: "",
			Usage: " UTC suffix `STYLE` [Z|+00:00], overrides the configuration",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "format",
			Usage:     "ISO-8601 text of timestamps",
			ArgsUsage: "TIMESTAMP...",
			Action:    runFormat,
		},
		{
			Name:      "date",
			Usage:     "civil date of timestamps",
			ArgsUsage: "TIMESTAMP...",
			Action:    runDate,
		},
		{
			Name:      "time",
			Usage:     "time of day of timestamps",
			ArgsUsage: "TIMESTAMP...",
			Action:    runTime,
		},
		{
			Name:   "now",
			Usage:  "ISO-8601 text of the current time",
			Action: runNow,
		},
		{
			Name:      "info",
			Usage:     "all fields of timestamps as JSON",
			ArgsUsage: "TIMESTAMP...",
			Action:    runInfo,
		},
		{
			Name:  "version",
			Usage: "display version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", programVersion())
				return nil
			},
		},
	}

	// read the configuration and start logging
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		switch command {
		case "", "version", "help", "h":
			return nil
		}

		file := c.GlobalString("config-file")
		config, err := readConfiguration(file)
		if nil != err {
			return err
		}

		suffix := config.Suffix()
		if s := c.GlobalString("suffix"); "" != s {
			suffix, err = datetime.ParseSuffix(s)
			if nil != err {
				return err
			}
		}

		if verbose {
			fmt.Fprintf(e, "config file: %q\n", file)
			fmt.Fprintf(e, "log directory: %q\n", config.Logging.Directory)
			fmt.Fprintf(e, "suffix: %q\n", suffix)
		}

		if err := logger.Initialise(config.Logging); nil != err {
			return err
		}

		log := logger.New("main")
		log.Infof("version: %s  command: %s", programVersion(), command)
		log.Debugf("configuration: %+v", config)

		c.App.Metadata["config"] = &metadata{
			config:  config,
			suffix:  suffix,
			clock:   clock,
			log:     log,
			verbose: verbose,
			e:       e,
			w:       c.App.Writer,
		}
		return nil
	}

	// flush the log
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		m.log.Info("finished")
		logger.Finalise()
		delete(c.App.Metadata, "config")
		return nil
	}

	return app
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

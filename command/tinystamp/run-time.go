// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/daniel7grant/tinystamp/datetime"
)

// the time of day has no window, any timestamp is accepted
func runTime(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	timestamps, err := parseTimestamps(c.Args())
	if nil != err {
		return err
	}

	for _, ts := range timestamps {
		fmt.Fprintf(m.w, "%s\n", datetime.ToClockTime(ts))
	}
	return nil
}

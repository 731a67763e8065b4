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

func runFormat(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	timestamps, err := parseTimestamps(c.Args())
	if nil != err {
		return err
	}

	for _, ts := range timestamps {
		d, err := datetime.New(ts)
		if nil != err {
			m.log.Errorf("format: %d  error: %s", ts, err)
			return fmt.Errorf("timestamp: %d  %w", ts, err)
		}
		s, err := d.Format(m.suffix)
		if nil != err {
			return err
		}
		m.log.Debugf("format: %d -> %s", ts, s)
		fmt.Fprintf(m.w, "%s\n", s)
	}
	return nil
}

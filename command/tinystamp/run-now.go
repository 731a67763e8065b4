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

func runNow(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	d, err := datetime.Now(m.clock)
	if nil != err {
		m.log.Criticalf("wall clock error: %s", err)
		return err
	}

	s, err := d.Format(m.suffix)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "timestamp: %d\n", d.Timestamp())
	}
	fmt.Fprintf(m.w, "%s\n", s)
	return nil
}

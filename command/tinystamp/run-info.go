// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli"

	"github.com/daniel7grant/tinystamp/datetime"
)

type timestampInfo struct {
	Timestamp uint64             `json:"timestamp"`
	Date      datetime.CivilDate `json:"date"`
	Time      datetime.ClockTime `json:"time"`
	ISO8601   string             `json:"iso8601"`
}

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	timestamps, err := parseTimestamps(c.Args())
	if nil != err {
		return err
	}

	result := make([]timestampInfo, 0, len(timestamps))
	for _, ts := range timestamps {
		d, err := datetime.New(ts)
		if nil != err {
			m.log.Errorf("info: %d  error: %s", ts, err)
			return fmt.Errorf("timestamp: %d  %w", ts, err)
		}
		s, err := d.Format(m.suffix)
		if nil != err {
			return err
		}
		result = append(result, timestampInfo{
			Timestamp: d.Timestamp(),
			Date:      d.CivilDate(),
			Time:      d.ClockTime(),
			ISO8601:   s,
		})
	}

	b, err := json.MarshalIndent(result, "", "  ")
	if nil != err {
		return err
	}
	fmt.Fprintf(m.w, "%s\n", b)
	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli"

	"github.com/daniel7grant/tinystamp/fault"
)

// decimal seconds since the unix epoch, at least one is required
func parseTimestamps(arguments cli.Args) ([]uint64, error) {
	if 0 == len(arguments) {
		return nil, fault.ErrMissingTimestamp
	}

	timestamps := make([]uint64, 0, len(arguments))
	for _, a := range arguments {
		ts, err := strconv.ParseUint(a, 10, 64)
		if nil != err {
			if e, ok := err.(*strconv.NumError); ok && strconv.ErrRange == e.Err {
				return nil, fmt.Errorf("argument: %q  %w", a, fault.ErrTimestampLengthExceed)
			}
			return nil, fmt.Errorf("argument: %q  %w", a, fault.ErrInvalidTimestamp)
		}
		timestamps = append(timestamps, ts)
	}
	return timestamps, nil
}

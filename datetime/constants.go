// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package datetime

// epoch and supported window
const (
	Epoch            uint64 = 978307200  // 2001-01-01T00:00:00Z
	EpochYear               = 2001       // the first year of the first cycle
	MaximumYear             = 2100       // only January and February are supported
	MaximumTimestamp uint64 = 4107542399 // 2100-02-28T23:59:59Z
)

// unit sizes
const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour

	daysPerYear  = 365
	daysPerCycle = 4*daysPerYear + 1 // 1461

	yearsPerCycle = 4

	// position of the leap year within a cycle
	//
	// the epoch year 2001 is position 0, so position 3 is 2004,
	// 2008, ... i.e. the last year of every cycle; this is not the
	// general "year % 4" rule, it only holds for this anchor
	leapPosition = yearsPerCycle - 1
)

// cumulative days at the start of each month, index 12 is the year length
var (
	ordinaryMonths = [13]uint64{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334, 365}
	leapMonths     = [13]uint64{0, 31, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335, 366}
)

// select the table for a position in the cycle
func monthTable(yearInCycle uint64) *[13]uint64 {
	if leapPosition == yearInCycle {
		return &leapMonths
	}
	return &ordinaryMonths
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package datetime

import (
	"fmt"
)

// ClockTime - time of day in UTC
type ClockTime struct {
	Hour   int `json:"hour"`   // 0 .. 23
	Minute int `json:"minute"` // 0 .. 59
	Second int `json:"second"` // 0 .. 59
}

// String - HH:MM:SS
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
}

// ToClockTime - the time of day of any timestamp
//
// the epoch is a whole number of days after the unix epoch, so the
// remainder can be taken from the raw value
func ToClockTime(timestamp uint64) ClockTime {
	seconds := timestamp % secondsPerDay
	return ClockTime{
		Hour:   int(seconds / secondsPerHour),
		Minute: int(seconds % secondsPerHour / secondsPerMinute),
		Second: int(seconds % secondsPerMinute),
	}
}

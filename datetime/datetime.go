// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package datetime

import (
	"github.com/daniel7grant/tinystamp/fault"
	"github.com/daniel7grant/tinystamp/wallclock"
)

// Datetime - an immutable timestamp inside the supported window
//
// the value is held as seconds after the epoch so the zero value is
// the epoch itself; every query recomputes, nothing is cached
type Datetime struct {
	elapsed uint64
}

// New - wrap a count of seconds since the unix epoch
func New(timestamp uint64) (Datetime, error) {
	if err := checkTimestamp(timestamp); nil != err {
		return Datetime{}, err
	}
	return Datetime{elapsed: timestamp - Epoch}, nil
}

// Now - the current time from a wall clock
//
// a clock reading before the epoch gives ErrClockBeforeEpoch
func Now(source wallclock.Source) (Datetime, error) {
	seconds, err := wallclock.UnixSeconds(source)
	if nil != err {
		return Datetime{}, err
	}
	if seconds < Epoch {
		return Datetime{}, fault.ErrClockBeforeEpoch
	}
	return New(seconds)
}

// Timestamp - seconds since the unix epoch
func (d Datetime) Timestamp() uint64 {
	return Epoch + d.elapsed
}

// CivilDate - the date as a structure
func (d Datetime) CivilDate() CivilDate {
	return civilDate(d.Timestamp())
}

// ClockTime - the time of day as a structure
func (d Datetime) ClockTime() ClockTime {
	return ToClockTime(d.Timestamp())
}

// Date - year, month and day
func (d Datetime) Date() (year int, month int, day int) {
	c := civilDate(d.Timestamp())
	return c.Year, c.Month, c.Day
}

// Clock - hour, minute and second
func (d Datetime) Clock() (hour int, minute int, second int) {
	c := ToClockTime(d.Timestamp())
	return c.Hour, c.Minute, c.Second
}

// Format - ISO-8601 with a specific suffix
//
// an empty suffix selects DefaultSuffix, anything unrecognised is
// rejected with ErrInvalidSuffix
func (d Datetime) Format(suffix Suffix) (string, error) {
	s, err := ParseSuffix(string(suffix))
	if nil != err {
		return "", err
	}
	return format(d.Timestamp(), s), nil
}

// FormatISO8601 - ISO-8601 with the default suffix
func (d Datetime) FormatISO8601() string {
	return format(d.Timestamp(), DefaultSuffix)
}

// String - same as FormatISO8601
func (d Datetime) String() string {
	return d.FormatISO8601()
}

// MarshalText - for JSON and other text encodings
func (d Datetime) MarshalText() ([]byte, error) {
	return []byte(d.FormatISO8601()), nil
}

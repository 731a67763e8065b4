// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package datetime

import (
	"fmt"

	"github.com/daniel7grant/tinystamp/fault"
)

// CivilDate - a proleptic Gregorian date
type CivilDate struct {
	Year  int `json:"year"`
	Month int `json:"month"` // 1 .. 12
	Day   int `json:"day"`   // 1 .. 31
}

// String - YYYY-MM-DD
func (d CivilDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// ToCivilDate - the civil date containing the timestamp
func ToCivilDate(timestamp uint64) (CivilDate, error) {
	if err := checkTimestamp(timestamp); nil != err {
		return CivilDate{}, err
	}
	return civilDate(timestamp), nil
}

// DaysInMonth - number of days in a month of a year in the supported window
//
// February 2100 is only partly inside the window so it is rejected
func DaysInMonth(year int, month int) (int, error) {
	if year < EpochYear {
		return 0, fault.ErrBeforeEpoch
	}
	if month < 1 || month > 12 {
		return 0, fault.ErrInvalidDate
	}
	if year > MaximumYear || (MaximumYear == year && month > 1) {
		return 0, fault.ErrBeyondSupportedRange
	}
	yearInCycle := uint64(year-EpochYear) % yearsPerCycle
	table := monthTable(yearInCycle)
	return int(table[month] - table[month-1]), nil
}

// FromCivil - seconds since the unix epoch for a date and time of day
//
// this is the inverse of ToCivilDate and ToClockTime
func FromCivil(date CivilDate, clock ClockTime) (uint64, error) {
	if date.Year < EpochYear {
		return 0, fault.ErrBeforeEpoch
	}
	if date.Year > MaximumYear {
		return 0, fault.ErrBeyondSupportedRange
	}
	if date.Month < 1 || date.Month > 12 || date.Day < 1 {
		return 0, fault.ErrInvalidDate
	}
	if clock.Hour < 0 || clock.Hour > 23 ||
		clock.Minute < 0 || clock.Minute > 59 ||
		clock.Second < 0 || clock.Second > 59 {
		return 0, fault.ErrInvalidClock
	}

	years := uint64(date.Year - EpochYear)
	cycles := years / yearsPerCycle
	yearInCycle := years % yearsPerCycle

	table := monthTable(yearInCycle)
	if uint64(date.Day) > table[date.Month]-table[date.Month-1] {
		return 0, fault.ErrInvalidDate
	}

	days := cycles*daysPerCycle + yearInCycle*daysPerYear + table[date.Month-1] + uint64(date.Day) - 1

	timestamp := Epoch + days*secondsPerDay +
		uint64(clock.Hour)*secondsPerHour +
		uint64(clock.Minute)*secondsPerMinute +
		uint64(clock.Second)

	if timestamp > MaximumTimestamp {
		return 0, fault.ErrBeyondSupportedRange
	}
	return timestamp, nil
}

// reject anything outside the supported window
func checkTimestamp(timestamp uint64) error {
	if timestamp < Epoch {
		return fault.ErrBeforeEpoch
	}
	if timestamp > MaximumTimestamp {
		return fault.ErrBeyondSupportedRange
	}
	return nil
}

// the conversion itself, timestamp must already be checked
func civilDate(timestamp uint64) CivilDate {
	days := (timestamp - Epoch) / secondsPerDay

	cycles := days / daysPerCycle
	dayInCycle := days % daysPerCycle

	// day 1460 is the 366th day of the leap year that closes the
	// cycle, dividing by 365 below would put it in a fifth year
	if daysPerCycle-1 == dayInCycle {
		return CivilDate{
			Year:  EpochYear + leapPosition + yearsPerCycle*int(cycles),
			Month: 12,
			Day:   31,
		}
	}

	yearInCycle := dayInCycle / daysPerYear
	dayInYear := dayInCycle % daysPerYear

	table := monthTable(yearInCycle)

	// table[12] is at least 365 so this always stops by December
	month := 1
	for table[month] <= dayInYear {
		month += 1
	}

	return CivilDate{
		Year:  EpochYear + yearsPerCycle*int(cycles) + int(yearInCycle),
		Month: month,
		Day:   int(dayInYear-table[month-1]) + 1,
	}
}

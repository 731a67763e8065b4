// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package datetime

import (
	"fmt"

	"github.com/daniel7grant/tinystamp/fault"
)

// Suffix - the literal appended to denote UTC
type Suffix string

// the recognised suffix styles
const (
	SuffixZ      Suffix = "Z"
	SuffixOffset Suffix = "+00:00"

	DefaultSuffix = SuffixZ
)

// ParseSuffix - convert a configuration value to a Suffix
//
// an empty value selects the default
func ParseSuffix(s string) (Suffix, error) {
	switch Suffix(s) {
	case "":
		return DefaultSuffix, nil
	case SuffixZ:
		return SuffixZ, nil
	case SuffixOffset:
		return SuffixOffset, nil
	default:
		return "", fault.ErrInvalidSuffix
	}
}

// String - the literal text
func (s Suffix) String() string {
	return string(s)
}

// FormatISO8601 - YYYY-MM-DDTHH:MM:SS followed by the suffix
func FormatISO8601(timestamp uint64, suffix Suffix) (string, error) {
	if err := checkTimestamp(timestamp); nil != err {
		return "", err
	}
	s, err := ParseSuffix(string(suffix))
	if nil != err {
		return "", err
	}
	return format(timestamp, s), nil
}

// fixed width fields, years stay below 10000 inside the supported window
//
// both timestamp and suffix must already be checked
func format(timestamp uint64, suffix Suffix) string {
	date := civilDate(timestamp)
	clock := ToClockTime(timestamp)
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d%s",
		date.Year, date.Month, date.Day,
		clock.Hour, clock.Minute, clock.Second,
		suffix,
	)
}

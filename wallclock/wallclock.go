// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallclock

import (
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/daniel7grant/tinystamp/fault"
)

//go:generate mockgen -destination=mocks/source.go -package=mocks github.com/daniel7grant/tinystamp/wallclock Source

// Source - anything that can report the current time
//
// clockwork.Clock and clockwork.FakeClock both satisfy this
type Source interface {
	Now() time.Time
}

// System - the operating system clock
func System() Source {
	return clockwork.NewRealClock()
}

// UnixSeconds - read the source once and return whole seconds since
// 1970-01-01T00:00:00Z
func UnixSeconds(source Source) (uint64, error) {
	seconds := source.Now().Unix()
	if seconds < 0 {
		return 0, fault.ErrClockBeforeUnixEpoch
	}
	return uint64(seconds), nil
}

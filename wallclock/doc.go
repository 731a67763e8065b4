// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wallclock - the source of the current time
//
// the calendar arithmetic never reads the operating system clock
// itself, it is given a Source and asks it for "now" exactly once
package wallclock

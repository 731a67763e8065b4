// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package datetime - integer only conversion of unix seconds to a
// Gregorian civil date and time of day
//
// All arithmetic is anchored at a single epoch: 2001-01-01T00:00:00Z.
// From there the calendar repeats in 4 year cycles of 1461 days
// where the fourth year is the leap year (2004, 2008, ...). This is
// exact up to 2100-02-28, after which the Gregorian century rule
// would drop a day, so timestamps are accepted only inside:
//
//   [Epoch, MaximumTimestamp]
//
// The time of day does not depend on the date and is defined for any
// value.
package datetime

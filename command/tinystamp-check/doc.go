// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Cross check the calendar arithmetic against the time package
//
// This program draws random timestamps from the supported window and
// compares the date, the time of day and the ISO-8601 text with the
// same instant rendered by the standard library through strftime.
// It exits with a non-zero status if any of them disagree.
package main

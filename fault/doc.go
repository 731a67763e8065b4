// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - shared error values and the critical log channel
//
// Every error is a single comparable value grouped into a class
// (invalid, length, process…) that callers test with the IsErrXxx
// predicates instead of matching message text.
package fault

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Convert unix timestamps to ISO-8601 text
//
//   tinystamp [--config-file=FILE] [--suffix=Z|+00:00] COMMAND [TIMESTAMP...]
//
// the optional configuration file is Lua, see tinystamp.conf.sample
package main

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

const (
	criticalTag   = "PANIC"
	panicInterval = 100 * time.Millisecond
)

// channel for the last messages before a failure
var log *logger.L

// Initialise - open the critical channel
//
// the logger package must already be initialised
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New(criticalTag)
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush and close the critical channel
func Finalise() {
	if nil == log {
		return
	}
	log.Flush()
	log = nil
}

// Criticalf - record a formatted message prefixed by the caller's location
func Criticalf(format string, arguments ...interface{}) {
	emit(located(2, fmt.Sprintf(format, arguments...)))
}

// PanicIfError - record and panic when err is set
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	s := located(2, fmt.Sprintf("%s failed with error: %s", message, err))
	emit(s)
	time.Sleep(panicInterval) // let the log writer drain
	panic(s)
}

func located(skip int, message string) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return message
	}
	return fmt.Sprintf("(%q:%d) %s", file, line, message)
}

// without a channel the message goes to stdout
func emit(message string) {
	if nil == log {
		fmt.Printf("*** %s\n", message)
		return
	}
	log.Critical(message)
	log.Flush()
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrBeforeEpoch           = InvalidError("timestamp is before epoch")
	ErrBeyondSupportedRange  = InvalidError("timestamp is beyond supported range")
	ErrClockBeforeEpoch      = ProcessError("wall clock reports a time before epoch")
	ErrClockBeforeUnixEpoch  = ProcessError("wall clock reports a time before unix epoch")
	ErrCrossCheckMismatch    = ProcessError("cross check mismatch")
	ErrInvalidClock          = InvalidError("invalid clock time")
	ErrInvalidConfiguration  = InvalidError("configuration file must return a table")
	ErrInvalidDate           = InvalidError("invalid civil date")
	ErrInvalidDirectory      = InvalidError("invalid directory")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidSampleCount    = InvalidError("invalid sample count")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrInvalidSuffix         = InvalidError("invalid utc suffix style")
	ErrInvalidTimestamp      = InvalidError("invalid timestamp")
	ErrMissingTimestamp      = InvalidError("missing timestamp")
	ErrNotFoundConfigFile    = NotFoundError("config file is not found")
	ErrNotPlainFileName      = InvalidError("file name must not contain a path")
	ErrTimestampLengthExceed = LengthError("timestamp has too many digits")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }

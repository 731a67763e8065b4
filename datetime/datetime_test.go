// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package datetime_test

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"

	"github.com/daniel7grant/tinystamp/datetime"
	"github.com/daniel7grant/tinystamp/fault"
	"github.com/daniel7grant/tinystamp/wallclock/mocks"
)

func TestNew(t *testing.T) {
	ts := uint64(1712224891)
	d, err := datetime.New(ts)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, ts, d.Timestamp(), "wrong timestamp")
}

func TestNewOutsideWindow(t *testing.T) {
	_, err := datetime.New(datetime.Epoch - 1)
	assert.Equal(t, fault.ErrBeforeEpoch, err, "wrong error")

	_, err = datetime.New(0)
	assert.Equal(t, fault.ErrBeforeEpoch, err, "wrong error")

	_, err = datetime.New(datetime.MaximumTimestamp + 1)
	assert.Equal(t, fault.ErrBeyondSupportedRange, err, "wrong error")
}

func TestQueries(t *testing.T) {
	d, err := datetime.New(1712311291)
	if !assert.Nil(t, err, "wrong error") {
		return
	}

	year, month, day := d.Date()
	assert.Equal(t, 2024, year, "wrong year")
	assert.Equal(t, 4, month, "wrong month")
	assert.Equal(t, 5, day, "wrong day")

	hour, minute, second := d.Clock()
	assert.Equal(t, 10, hour, "wrong hour")
	assert.Equal(t, 1, minute, "wrong minute")
	assert.Equal(t, 31, second, "wrong second")

	assert.Equal(t, datetime.CivilDate{Year: 2024, Month: 4, Day: 5}, d.CivilDate(), "wrong civil date")
	assert.Equal(t, datetime.ClockTime{Hour: 10, Minute: 1, Second: 31}, d.ClockTime(), "wrong clock time")

	assert.Equal(t, "2024-04-05T10:01:31Z", d.FormatISO8601(), "wrong ISO-8601")
	assert.Equal(t, "2024-04-05T10:01:31Z", d.String(), "wrong string")
	assert.Equal(t, "2024-04-05T10:01:31Z", fmt.Sprintf("%v", d), "wrong default rendering")
}

func TestFormatSuffix(t *testing.T) {
	d, err := datetime.New(1712311291)
	if !assert.Nil(t, err, "wrong error") {
		return
	}

	fixtures := []struct {
		suffix   datetime.Suffix
		expected string
		err      error
	}{
		{datetime.SuffixZ, "2024-04-05T10:01:31Z", nil},
		{datetime.SuffixOffset, "2024-04-05T10:01:31+00:00", nil},
		{datetime.Suffix(""), "2024-04-05T10:01:31Z", nil},
		{datetime.Suffix("UTC"), "", fault.ErrInvalidSuffix},
		{datetime.Suffix("z"), "", fault.ErrInvalidSuffix},
	}

	for i, f := range fixtures {
		actual, err := d.Format(f.suffix)
		assert.Equal(t, f.err, err, "%d: wrong error for: %q", i, f.suffix)
		assert.Equal(t, f.expected, actual, "%d: wrong text for: %q", i, f.suffix)
	}
}

// a Datetime that never went through New is the epoch
func TestZeroValue(t *testing.T) {
	var d datetime.Datetime

	assert.Equal(t, datetime.Epoch, d.Timestamp(), "wrong timestamp")

	year, month, day := d.Date()
	assert.Equal(t, 2001, year, "wrong year")
	assert.Equal(t, 1, month, "wrong month")
	assert.Equal(t, 1, day, "wrong day")

	hour, minute, second := d.Clock()
	assert.Equal(t, 0, hour, "wrong hour")
	assert.Equal(t, 0, minute, "wrong minute")
	assert.Equal(t, 0, second, "wrong second")

	assert.Equal(t, "2001-01-01T00:00:00Z", d.String(), "wrong string")

	b, err := json.Marshal(d)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, `"2001-01-01T00:00:00Z"`, string(b), "wrong JSON")
}

// the value returned alongside an error is still inside the window
func TestErrorValueInsideWindow(t *testing.T) {
	for _, ts := range []uint64{0, datetime.Epoch - 1, datetime.MaximumTimestamp + 1, ^uint64(0)} {
		d, err := datetime.New(ts)
		assert.NotNil(t, err, "timestamp: %d  no error", ts)
		assert.Equal(t, datetime.Epoch, d.Timestamp(), "timestamp: %d  wrong fallback", ts)
		assert.Equal(t, "2001-01-01T00:00:00Z", d.String(), "timestamp: %d  wrong text", ts)
	}

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockSource(ctl)
	m.EXPECT().Now().Return(time.Date(1999, time.June, 1, 0, 0, 0, 0, time.UTC)).Times(1)

	d, err := datetime.Now(m)
	assert.Equal(t, fault.ErrClockBeforeEpoch, err, "wrong error")
	year, _, _ := d.Date()
	assert.Equal(t, 2001, year, "wrong year")
}

// repeated queries on one value give identical results
func TestQueriesRepeatable(t *testing.T) {
	d, err := datetime.New(1709251199)
	if !assert.Nil(t, err, "wrong error") {
		return
	}
	first := d.String()
	for i := 0; i < 3; i += 1 {
		assert.Equal(t, first, d.String(), "%d: value changed", i)
		assert.Equal(t, uint64(1709251199), d.Timestamp(), "%d: timestamp changed", i)
	}
}

func TestMarshalText(t *testing.T) {
	d, err := datetime.New(1712311291)
	if !assert.Nil(t, err, "wrong error") {
		return
	}

	b, err := json.Marshal(struct {
		At datetime.Datetime `json:"at"`
	}{At: d})
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, `{"at":"2024-04-05T10:01:31Z"}`, string(b), "wrong JSON")
}

func TestNowFakeClock(t *testing.T) {
	fake := clockwork.NewFakeClockAt(time.Date(2024, time.February, 29, 23, 59, 59, 500, time.UTC))

	d, err := datetime.Now(fake)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, "2024-02-29T23:59:59Z", d.String(), "wrong now")

	fake.Advance(time.Second)

	d, err = datetime.Now(fake)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, "2024-03-01T00:00:00Z", d.String(), "wrong now after advance")
}

func TestNowClockBeforeEpoch(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockSource(ctl)
	m.EXPECT().Now().Return(time.Date(2000, time.December, 31, 23, 59, 59, 0, time.UTC)).Times(1)

	_, err := datetime.Now(m)
	assert.Equal(t, fault.ErrClockBeforeEpoch, err, "wrong error")
	assert.True(t, fault.IsErrProcess(err), "environment failure must be a process error")
}

func TestNowClockBeforeUnixEpoch(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockSource(ctl)
	m.EXPECT().Now().Return(time.Unix(-1, 0)).Times(1)

	_, err := datetime.Now(m)
	assert.Equal(t, fault.ErrClockBeforeUnixEpoch, err, "wrong error")
}

func TestNowClockBeyondWindow(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockSource(ctl)
	m.EXPECT().Now().Return(time.Date(2100, time.March, 1, 0, 0, 0, 0, time.UTC)).Times(1)

	_, err := datetime.Now(m)
	assert.Equal(t, fault.ErrBeyondSupportedRange, err, "wrong error")
}

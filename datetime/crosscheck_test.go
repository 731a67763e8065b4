// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package datetime_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/lestrrat-go/strftime"
	"github.com/stretchr/testify/assert"

	"github.com/daniel7grant/tinystamp/datetime"
)

const (
	sampleCount = 20000
	sampleSeed  = 20240405
)

// uniform sample over the supported window, always including both ends
func samples(n int) []uint64 {
	r := rand.New(rand.NewSource(sampleSeed))
	span := int64(datetime.MaximumTimestamp - datetime.Epoch + 1)

	s := make([]uint64, 0, n+2)
	s = append(s, datetime.Epoch, datetime.MaximumTimestamp)
	for i := 0; i < n; i += 1 {
		s = append(s, datetime.Epoch+uint64(r.Int63n(span)))
	}
	return s
}

// compare against the time package rendered through strftime
func TestCrossCheck(t *testing.T) {
	zulu, err := strftime.New("%Y-%m-%dT%H:%M:%SZ")
	if !assert.Nil(t, err, "strftime pattern error") {
		return
	}
	offset, err := strftime.New("%Y-%m-%dT%H:%M:%S+00:00")
	if !assert.Nil(t, err, "strftime pattern error") {
		return
	}

	failures := 0
	for _, ts := range samples(sampleCount) {
		reference := time.Unix(int64(ts), 0).UTC()

		d, err := datetime.New(ts)
		if nil != err {
			t.Errorf("timestamp: %d  unexpected error: %s", ts, err)
			failures += 1
		} else {
			offsetText, formatErr := d.Format(datetime.SuffixOffset)
			year, month, day := reference.Date()
			hour, minute, second := reference.Clock()
			ok := assert.Equal(t, datetime.CivilDate{Year: year, Month: int(month), Day: day}, d.CivilDate(), "date of: %d", ts) &&
				assert.Equal(t, datetime.ClockTime{Hour: hour, Minute: minute, Second: second}, d.ClockTime(), "clock of: %d", ts) &&
				assert.Equal(t, zulu.FormatString(reference), d.String(), "Z text of: %d", ts) &&
				assert.Nil(t, formatErr, "offset format error of: %d", ts) &&
				assert.Equal(t, offset.FormatString(reference), offsetText, "offset text of: %d", ts)
			if !ok {
				failures += 1
			}
		}
		if failures > 10 {
			t.Fatalf("too many failures, stopping")
		}
	}
}

// every derived field reconstructs the input timestamp
func TestRoundTrip(t *testing.T) {
	for _, ts := range samples(sampleCount) {
		d, err := datetime.New(ts)
		if !assert.Nil(t, err, "timestamp: %d", ts) {
			return
		}
		actual, err := datetime.FromCivil(d.CivilDate(), d.ClockTime())
		if !assert.Nil(t, err, "timestamp: %d", ts) {
			return
		}
		if !assert.Equal(t, ts, actual, "round trip of: %d", ts) {
			return
		}
	}
}

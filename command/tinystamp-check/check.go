// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/lestrrat-go/strftime"

	"github.com/daniel7grant/tinystamp/datetime"
	"github.com/daniel7grant/tinystamp/fault"
)

const (
	checkLoggerPrefix = "check"
	maximumMismatches = 10 // stop collecting after this many
	progressInterval  = 100000
)

type mismatch struct {
	Timestamp uint64 `json:"timestamp"`
	Field     string `json:"field"`
	Expected  string `json:"expected"`
	Actual    string `json:"actual"`
}

type report struct {
	Samples    int        `json:"samples"`
	Seed       int64      `json:"seed"`
	Checked    int        `json:"checked"`
	Mismatches []mismatch `json:"mismatches"`
}

type checker struct {
	suffix    datetime.Suffix
	reference *strftime.Strftime
	log       *logger.L
}

func newChecker(suffix datetime.Suffix, log *logger.L) (*checker, error) {
	suffix, err := datetime.ParseSuffix(suffix.String())
	if nil != err {
		return nil, err
	}
	reference, err := strftime.New("%Y-%m-%dT%H:%M:%S" + suffix.String())
	if nil != err {
		return nil, err
	}
	return &checker{
		suffix:    suffix,
		reference: reference,
		log:       log,
	}, nil
}

// the window ends first, then uniform random samples
func (c *checker) run(samples int, seed int64) (*report, error) {
	if samples <= 0 {
		return nil, fault.ErrInvalidSampleCount
	}

	c.log.Infof("samples: %d  seed: %d  suffix: %q", samples, seed, c.suffix)

	r := rand.New(rand.NewSource(seed))
	span := int64(datetime.MaximumTimestamp - datetime.Epoch + 1)

	result := &report{
		Samples:    samples,
		Seed:       seed,
		Mismatches: []mismatch{},
	}

	for i := 0; i < samples+2; i += 1 {
		var ts uint64
		switch i {
		case 0:
			ts = datetime.Epoch
		case 1:
			ts = datetime.MaximumTimestamp
		default:
			ts = datetime.Epoch + uint64(r.Int63n(span))
		}

		result.Checked += 1
		for _, m := range c.check(ts) {
			fault.Criticalf("timestamp: %d  %s  expected: %q  actual: %q", m.Timestamp, m.Field, m.Expected, m.Actual)
			result.Mismatches = append(result.Mismatches, m)
		}
		if len(result.Mismatches) >= maximumMismatches {
			c.log.Warnf("stopping after: %d mismatches", len(result.Mismatches))
			break
		}
		if 0 == result.Checked%progressInterval {
			c.log.Debugf("checked: %d", result.Checked)
		}
	}

	c.log.Infof("checked: %d  mismatches: %d", result.Checked, len(result.Mismatches))

	if 0 != len(result.Mismatches) {
		return result, fault.ErrCrossCheckMismatch
	}
	return result, nil
}

// compare one timestamp field by field
func (c *checker) check(ts uint64) []mismatch {
	reference := time.Unix(int64(ts), 0).UTC()

	d, err := datetime.New(ts)
	if nil != err {
		return []mismatch{{
			Timestamp: ts,
			Field:     "error",
			Expected:  "nil",
			Actual:    err.Error(),
		}}
	}

	year, month, day := reference.Date()
	hour, minute, second := reference.Clock()

	expected := []string{
		datetime.CivilDate{Year: year, Month: int(month), Day: day}.String(),
		datetime.ClockTime{Hour: hour, Minute: minute, Second: second}.String(),
		c.reference.FormatString(reference),
	}
	text, err := d.Format(c.suffix)
	if nil != err {
		text = err.Error()
	}
	actual := []string{
		d.CivilDate().String(),
		d.ClockTime().String(),
		text,
	}
	fields := []string{"date", "time", "text"}

	var result []mismatch
	for i := range fields {
		if expected[i] != actual[i] {
			result = append(result, mismatch{
				Timestamp: ts,
				Field:     fields[i],
				Expected:  expected[i],
				Actual:    actual[i],
			})
		}
	}
	return result
}

func (r *report) String() string {
	return fmt.Sprintf("samples: %d  seed: %d  checked: %d  mismatches: %d", r.Samples, r.Seed, r.Checked, len(r.Mismatches))
}

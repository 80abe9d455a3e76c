// Copyright 2024 The open62541pp Authors. All rights reserved.

package ua_test

import (
	"testing"

	"gotest.tools/assert"

	"github.com/umati/open62541pp/ua"
)

func TestResultGood(t *testing.T) {
	res := ua.NewResult(42)
	assert.Equal(t, res.Code(), ua.Good)
	assert.Equal(t, res.HasValue(), true)
	v, err := res.Value()
	assert.NilError(t, err)
	assert.Equal(t, v, 42)
	assert.Equal(t, res.MustValue(), 42)
	assert.Equal(t, res.ValueOr(0), 42)
	assert.NilError(t, res.Err())
}

func TestResultZeroValue(t *testing.T) {
	var res ua.Result[int]
	assert.Equal(t, res.Code(), ua.Good)
	assert.Equal(t, res.HasValue(), true)
	assert.Equal(t, res.MustValue(), 0)
}

func TestResultBad(t *testing.T) {
	res := ua.NewResultBad[float64](ua.NewBadResult(ua.BadNodeIDUnknown))
	assert.Equal(t, res.Code(), ua.BadNodeIDUnknown)
	assert.Equal(t, res.HasValue(), false)
	v, err := res.Value()
	assert.Equal(t, err, error(ua.BadNodeIDUnknown))
	assert.Equal(t, v, 0.0)
	assert.Equal(t, res.ValueOr(1.5), 1.5)
	assert.Equal(t, res.Err(), error(ua.BadNodeIDUnknown))
}

func TestResultUncertain(t *testing.T) {
	res := ua.NewResultWithStatus(ua.UncertainInitialValue, "stale")
	assert.Equal(t, res.Code(), ua.UncertainInitialValue)
	assert.Equal(t, res.Code().IsUncertain(), true)
	assert.Equal(t, res.HasValue(), true)
	v, err := res.Value()
	assert.NilError(t, err)
	assert.Equal(t, v, "stale")
	assert.Equal(t, res.ValueOr("fresh"), "stale")
}

func TestNewBadResultPanicsOnGood(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	ua.NewBadResult(ua.Good)
}

func TestNewResultWithStatusPanicsOnBad(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	ua.NewResultWithStatus(ua.BadInternalError, 1)
}

func TestMustValuePanicsOnBad(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	res := ua.NewResultBad[int](ua.NewBadResult(ua.BadOutOfMemory))
	res.MustValue()
}

func TestVoidResult(t *testing.T) {
	res := ua.NewVoidResult(ua.Good)
	assert.Equal(t, res.Code(), ua.Good)
	assert.NilError(t, res.Err())

	bad := ua.NewVoidResultBad(ua.NewBadResult(ua.BadNotWritable))
	assert.Equal(t, bad.Code(), ua.BadNotWritable)
	assert.Equal(t, bad.Err(), error(ua.BadNotWritable))
}

func TestStatusCodeSeverity(t *testing.T) {
	assert.Equal(t, ua.Good.IsGood(), true)
	assert.Equal(t, ua.Good.IsBad(), false)
	assert.Equal(t, ua.UncertainLastUsableValue.IsUncertain(), true)
	assert.Equal(t, ua.BadTimeout.IsBad(), true)
	assert.Equal(t, ua.BadTimeout.IsGood(), false)
}

func TestStatusCodeString(t *testing.T) {
	assert.Equal(t, ua.BadNodeIDUnknown.String(), "BadNodeIDUnknown")
	assert.Equal(t, ua.Good.String(), "Good")
	// info bits do not change the name
	withBits := ua.Good | ua.InfoTypeDataValue | ua.Overflow
	assert.Equal(t, withBits.String(), "Good")
	// unknown codes format as hex
	assert.Equal(t, ua.StatusCode(0x80FF0000).String(), "0x80FF0000")
}

// Copyright 2024 The open62541pp Authors. All rights reserved.

package ua

import (
	"time"

	"github.com/umati/open62541pp/native"
)

// Variant holds a value of any builtin type.
type Variant = native.Variant

// DataValue holds a value with its quality and timestamps.
type DataValue struct {
	Value           Variant
	StatusCode      StatusCode
	SourceTimestamp time.Time
	ServerTimestamp time.Time
}

// NewDataValue constructs a DataValue.
func NewDataValue(value Variant, statusCode StatusCode, sourceTimestamp, serverTimestamp time.Time) DataValue {
	return DataValue{
		Value:           value,
		StatusCode:      statusCode,
		SourceTimestamp: sourceTimestamp,
		ServerTimestamp: serverTimestamp,
	}
}

// IsGood reports whether the quality of the value is good.
func (d DataValue) IsGood() bool {
	return d.StatusCode.IsGood()
}

// WithOverflowBit returns a copy of the DataValue with the queue overflow
// info bits set in its status code.
func (d DataValue) WithOverflowBit() DataValue {
	d.StatusCode |= InfoTypeDataValue | Overflow
	return d
}

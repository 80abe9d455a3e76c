// Copyright 2024 The open62541pp Authors. All rights reserved.

// Package ua provides the value-type layer of the library: status codes, the
// generic Result container, and wrappers that own native values and manage
// their lifecycle through the type table of package native.
package ua

import (
	"fmt"
)

// StatusCode is the result of a service operation, classified into the
// severity bands Good, Uncertain and Bad by its top two bits.
type StatusCode uint32

const (
	severityMask      StatusCode = 0xC0000000
	severityGood      StatusCode = 0x00000000
	severityUncertain StatusCode = 0x40000000
	severityBad       StatusCode = 0x80000000
)

// IsGood returns true if the severity is Good.
func (c StatusCode) IsGood() bool {
	return c&severityMask == severityGood
}

// IsUncertain returns true if the severity is Uncertain.
func (c StatusCode) IsUncertain() bool {
	return c&severityMask == severityUncertain
}

// IsBad returns true if the severity is Bad.
func (c StatusCode) IsBad() bool {
	return c&severityMask == severityBad
}

// Error implements the error interface.
func (c StatusCode) Error() string {
	return c.String()
}

// String returns the symbolic name of the StatusCode, e.g. "BadNodeIDUnknown".
func (c StatusCode) String() string {
	if name, ok := statusCodeNames[c&^(InfoTypeDataValue|Overflow)]; ok {
		return name
	}
	return fmt.Sprintf("0x%08X", uint32(c))
}

// StatusCodes
const (
	Good                      StatusCode = 0x00000000
	BadUnexpectedError        StatusCode = 0x80010000
	BadInternalError          StatusCode = 0x80020000
	BadOutOfMemory            StatusCode = 0x80030000
	BadResourceUnavailable    StatusCode = 0x80040000
	BadCommunicationError     StatusCode = 0x80050000
	BadEncodingError          StatusCode = 0x80060000
	BadDecodingError          StatusCode = 0x80070000
	BadEncodingLimitsExceeded StatusCode = 0x80080000
	BadTimeout                StatusCode = 0x800A0000
	BadServiceUnsupported     StatusCode = 0x800B0000
	BadShutdown               StatusCode = 0x800C0000
	BadServerNotConnected     StatusCode = 0x800D0000
	BadServerHalted           StatusCode = 0x800E0000
	BadTooManyOperations      StatusCode = 0x80100000
	BadDataTypeIDUnknown      StatusCode = 0x80110000
	BadUserAccessDenied       StatusCode = 0x801F0000
	BadIdentityTokenInvalid   StatusCode = 0x80200000
	BadIdentityTokenRejected  StatusCode = 0x80210000
	BadSubscriptionIDInvalid  StatusCode = 0x80280000
	BadNothingToDo            StatusCode = 0x800F0000
	BadWaitingForInitialData  StatusCode = 0x80320000
	BadNodeIDInvalid          StatusCode = 0x80330000
	BadNodeIDUnknown          StatusCode = 0x80340000
	BadAttributeIDInvalid     StatusCode = 0x80350000
	BadIndexRangeInvalid      StatusCode = 0x80360000
	BadIndexRangeNoData       StatusCode = 0x80370000
	BadDataEncodingInvalid    StatusCode = 0x80380000
	BadNotReadable            StatusCode = 0x803A0000
	BadNotWritable            StatusCode = 0x803B0000
	BadOutOfRange             StatusCode = 0x803C0000
	BadNotSupported           StatusCode = 0x803D0000
	BadNotFound               StatusCode = 0x803E0000
	BadNodeIDExists           StatusCode = 0x805E0000
	BadMonitoringModeInvalid  StatusCode = 0x80410000
	BadMonitoredItemIDInvalid StatusCode = 0x80420000
	BadTooManySubscriptions   StatusCode = 0x80770000
	BadInvalidArgument        StatusCode = 0x80AB0000
	BadInvalidState           StatusCode = 0x80AF0000
	UncertainInitialValue     StatusCode = 0x40920000
	UncertainLastUsableValue  StatusCode = 0x40900000
)

// info bits set on DataValue status codes
const (
	// InfoTypeDataValue marks the info bits as DataValue info bits.
	InfoTypeDataValue StatusCode = 0x00000400
	// Overflow signals that a queued value was discarded.
	Overflow StatusCode = 0x00000080
)

var statusCodeNames = map[StatusCode]string{
	Good:                      "Good",
	BadUnexpectedError:        "BadUnexpectedError",
	BadInternalError:          "BadInternalError",
	BadOutOfMemory:            "BadOutOfMemory",
	BadResourceUnavailable:    "BadResourceUnavailable",
	BadCommunicationError:     "BadCommunicationError",
	BadEncodingError:          "BadEncodingError",
	BadDecodingError:          "BadDecodingError",
	BadEncodingLimitsExceeded: "BadEncodingLimitsExceeded",
	BadTimeout:                "BadTimeout",
	BadServiceUnsupported:     "BadServiceUnsupported",
	BadShutdown:               "BadShutdown",
	BadServerNotConnected:     "BadServerNotConnected",
	BadServerHalted:           "BadServerHalted",
	BadNothingToDo:            "BadNothingToDo",
	BadTooManyOperations:      "BadTooManyOperations",
	BadDataTypeIDUnknown:      "BadDataTypeIDUnknown",
	BadUserAccessDenied:       "BadUserAccessDenied",
	BadIdentityTokenInvalid:   "BadIdentityTokenInvalid",
	BadIdentityTokenRejected:  "BadIdentityTokenRejected",
	BadSubscriptionIDInvalid:  "BadSubscriptionIDInvalid",
	BadWaitingForInitialData:  "BadWaitingForInitialData",
	BadNodeIDInvalid:          "BadNodeIDInvalid",
	BadNodeIDUnknown:          "BadNodeIDUnknown",
	BadAttributeIDInvalid:     "BadAttributeIDInvalid",
	BadIndexRangeInvalid:      "BadIndexRangeInvalid",
	BadIndexRangeNoData:       "BadIndexRangeNoData",
	BadDataEncodingInvalid:    "BadDataEncodingInvalid",
	BadNotReadable:            "BadNotReadable",
	BadNotWritable:            "BadNotWritable",
	BadOutOfRange:             "BadOutOfRange",
	BadNotSupported:           "BadNotSupported",
	BadNotFound:               "BadNotFound",
	BadNodeIDExists:           "BadNodeIDExists",
	BadMonitoringModeInvalid:  "BadMonitoringModeInvalid",
	BadMonitoredItemIDInvalid: "BadMonitoredItemIDInvalid",
	BadTooManySubscriptions:   "BadTooManySubscriptions",
	BadInvalidArgument:        "BadInvalidArgument",
	BadInvalidState:           "BadInvalidState",
	UncertainInitialValue:     "UncertainInitialValue",
	UncertainLastUsableValue:  "UncertainLastUsableValue",
}

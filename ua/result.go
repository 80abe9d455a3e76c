// Copyright 2024 The open62541pp Authors. All rights reserved.

package ua

import (
	"fmt"
)

// BadResult represents a bad outcome stored in a Result.
type BadResult struct {
	code StatusCode
}

// NewBadResult constructs a BadResult from a bad status code.
// Passing a code that is not bad is a programming error and panics.
func NewBadResult(code StatusCode) BadResult {
	if !code.IsBad() {
		panic(fmt.Sprintf("ua: BadResult requires a bad status code, got %s", code))
	}
	return BadResult{code: code}
}

// Code returns the status code.
func (r BadResult) Code() StatusCode {
	return r.code
}

// Result encapsulates a status code and a result value.
// A result may have one of the following contents:
//   - just a bad status code
//   - a good status code and a value
//   - an uncertain status code and a value
//
// The zero Result has a good status code and the zero value of T.
type Result[T any] struct {
	code  StatusCode
	value T
}

// NewResult constructs a Result with a good status code and the given value.
func NewResult[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// NewResultWithStatus constructs a Result with the given status code and value.
// Passing a bad code is a programming error and panics; bad outcomes carry no
// value and are built from a BadResult instead.
func NewResultWithStatus[T any](code StatusCode, value T) Result[T] {
	if code.IsBad() {
		panic(fmt.Sprintf("ua: Result with value requires a status code that is not bad, got %s", code))
	}
	return Result[T]{code: code, value: value}
}

// NewResultBad constructs a valueless Result from a BadResult.
func NewResultBad[T any](result BadResult) Result[T] {
	return Result[T]{code: result.Code()}
}

// Code returns the status code of the Result.
func (r Result[T]) Code() StatusCode {
	return r.code
}

// HasValue returns true if the Result stores a value. Bad results carry no
// value.
func (r Result[T]) HasValue() bool {
	return !r.code.IsBad()
}

// Value returns the stored value, or the bad status code as error.
// The value of an uncertain Result is returned without error; inspect Code
// to distinguish degraded values.
func (r Result[T]) Value() (T, error) {
	if r.code.IsBad() {
		var zero T
		return zero, r.code
	}
	return r.value, nil
}

// MustValue returns the stored value without an error check.
// It panics with the stored status code when the Result is bad; it is meant
// for call sites that already verified the status.
func (r Result[T]) MustValue() T {
	if r.code.IsBad() {
		panic(r.code)
	}
	return r.value
}

// ValueOr returns the stored value, or defaultValue when the status code is
// bad.
func (r Result[T]) ValueOr(defaultValue T) T {
	if r.code.IsBad() {
		return defaultValue
	}
	return r.value
}

// Err returns the status code as error when it is bad, and nil otherwise.
func (r Result[T]) Err() error {
	if r.code.IsBad() {
		return r.code
	}
	return nil
}

// VoidResult is a Result that carries only a status code.
type VoidResult struct {
	code StatusCode
}

// NewVoidResult constructs a VoidResult with the given status code.
func NewVoidResult(code StatusCode) VoidResult {
	return VoidResult{code: code}
}

// NewVoidResultBad constructs a VoidResult from a BadResult.
func NewVoidResultBad(result BadResult) VoidResult {
	return VoidResult{code: result.Code()}
}

// Code returns the status code of the VoidResult.
func (r VoidResult) Code() StatusCode {
	return r.code
}

// Err returns the status code as error when it is bad, and nil otherwise.
func (r VoidResult) Err() error {
	if r.code.IsBad() {
		return r.code
	}
	return nil
}

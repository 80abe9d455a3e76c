// Copyright 2024 The open62541pp Authors. All rights reserved.

package ua

import (
	"github.com/umati/open62541pp/native"
)

// Wrapper owns exactly one instance of a native value and manages its
// lifecycle through the type table. The wrapped value is always in a valid
// state between public operations.
//
// Go assignment of a Wrapper is a shallow copy that aliases the owned
// buffers; use Clone for an independently owned deep copy and Move to
// transfer ownership. Clear releases the owned value and is idempotent, so
// clearing after a Move is a no-op.
type Wrapper[T any] struct {
	id  native.TypeID
	val T
}

// NewWrapper constructs a Wrapper owning a zero-initialized native value.
func NewWrapper[T any](id native.TypeID) Wrapper[T] {
	return Wrapper[T]{id: id}
}

// AdoptWrapper constructs a Wrapper that takes ownership of an externally
// built native value without copying it. The caller must not use or release
// the value afterwards.
func AdoptWrapper[T any](id native.TypeID, value T) Wrapper[T] {
	return Wrapper[T]{id: id, val: value}
}

// TypeID returns the type table id of the owned value.
func (w *Wrapper[T]) TypeID() native.TypeID {
	return w.typeID()
}

// typeID resolves the table id, filling it in for a zero-valued Wrapper that
// never went through a constructor.
func (w *Wrapper[T]) typeID() native.TypeID {
	if w.id == 0 {
		w.id = native.TypeIDOf(&w.val)
	}
	return w.id
}

// Handle returns the address of the owned native value for passing to
// functions of the underlying stack. Callers must not release or reassign
// the buffers behind the returned pointer.
func (w *Wrapper[T]) Handle() *T {
	return &w.val
}

// Clone returns a deep copy of the Wrapper. Variable-length fields of the
// copy are independently owned.
func (w *Wrapper[T]) Clone() Wrapper[T] {
	out := Wrapper[T]{id: w.typeID()}
	native.Types[w.id].Copy(&out.val, &w.val)
	return out
}

// Move transfers ownership of the native value to the returned Wrapper and
// resets the source to the type's zero state.
func (w *Wrapper[T]) Move() Wrapper[T] {
	out := Wrapper[T]{id: w.typeID(), val: w.val}
	var zero T
	w.val = zero
	return out
}

// CopyFrom releases the owned value and replaces it with a deep copy of src.
func (w *Wrapper[T]) CopyFrom(src *Wrapper[T]) {
	native.Types[w.typeID()].Clear(&w.val)
	native.Types[w.id].Copy(&w.val, &src.val)
}

// MoveFrom releases the owned value, takes ownership of the value of src and
// resets src to the type's zero state.
func (w *Wrapper[T]) MoveFrom(src *Wrapper[T]) {
	native.Types[w.typeID()].Clear(&w.val)
	w.val = src.val
	var zero T
	src.val = zero
}

// Clear releases the owned value and resets it to the type's zero state.
// Clearing an already cleared or moved-from Wrapper is a no-op.
func (w *Wrapper[T]) Clear() {
	native.Types[w.typeID()].Clear(&w.val)
}

// Marshal returns the binary representation of the owned value.
func (w *Wrapper[T]) Marshal() ([]byte, error) {
	data, err := native.Marshal(w.typeID(), &w.val)
	if err != nil {
		return nil, BadEncodingError
	}
	return data, nil
}

// Unmarshal releases the owned value and replaces it with the decoded
// representation. On failure the owned value is reset to the type's zero
// state and BadDecodingError is returned.
func (w *Wrapper[T]) Unmarshal(data []byte) error {
	native.Types[w.typeID()].Clear(&w.val)
	if err := native.Unmarshal(w.id, data, &w.val); err != nil {
		native.Types[w.id].Clear(&w.val)
		return BadDecodingError
	}
	return nil
}

// Equal reports whether both wrappers own structurally equal values under the
// equality semantics of the type table.
func (w *Wrapper[T]) Equal(other *Wrapper[T]) bool {
	if w.typeID() != other.typeID() {
		return false
	}
	return native.Types[w.id].Equal(&w.val, &other.val)
}

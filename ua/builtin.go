// Copyright 2024 The open62541pp Authors. All rights reserved.

package ua

import (
	"encoding/binary"
	"fmt"

	uuid "github.com/google/uuid"

	"github.com/umati/open62541pp/native"
)

// String wraps the native string type.
type String struct {
	Wrapper[native.String]
}

// NewString constructs a String owning a copy of s.
func NewString(s string) String {
	return String{AdoptWrapper(native.TypeIDString, native.NewString(s))}
}

// AdoptString constructs a String that takes ownership of a native value.
func AdoptString(value native.String) String {
	return String{AdoptWrapper(native.TypeIDString, value)}
}

// Get returns an owning copy of the text, safe past the wrapper's lifetime.
func (s String) Get() string {
	return string(s.val.Data)
}

// View returns the text bytes without copying. The view is valid only while
// the wrapper is alive and unmodified.
func (s String) View() []byte {
	return s.val.Data
}

// Equal reports structural equality.
func (s String) Equal(other String) bool {
	return s.Wrapper.Equal(&other.Wrapper)
}

// String implements fmt.Stringer.
func (s String) String() string {
	return s.Get()
}

// ByteString wraps the native byte string type.
type ByteString struct {
	Wrapper[native.ByteString]
}

// NewByteString constructs a ByteString owning a copy of b.
func NewByteString(b []byte) ByteString {
	return ByteString{AdoptWrapper(native.TypeIDByteString, native.NewByteString(b))}
}

// Get returns an owning copy of the bytes.
func (b ByteString) Get() []byte {
	if b.val.Data == nil {
		return nil
	}
	out := make([]byte, len(b.val.Data))
	copy(out, b.val.Data)
	return out
}

// View returns the bytes without copying, valid only while the wrapper is
// alive and unmodified.
func (b ByteString) View() []byte {
	return b.val.Data
}

// Equal reports structural equality.
func (b ByteString) Equal(other ByteString) bool {
	return b.Wrapper.Equal(&other.Wrapper)
}

// XMLElement wraps the native XML element type.
type XMLElement struct {
	Wrapper[native.XMLElement]
}

// NewXMLElement constructs an XMLElement owning a copy of s.
func NewXMLElement(s string) XMLElement {
	return XMLElement{AdoptWrapper(native.TypeIDXMLElement, native.NewXMLElement(s))}
}

// Get returns an owning copy of the XML fragment.
func (x XMLElement) Get() string {
	return string(x.val.Data)
}

// View returns the fragment bytes without copying, valid only while the
// wrapper is alive and unmodified.
func (x XMLElement) View() []byte {
	return x.val.Data
}

// Equal reports structural equality.
func (x XMLElement) Equal(other XMLElement) bool {
	return x.Wrapper.Equal(&other.Wrapper)
}

// Guid wraps the native 16 byte globally unique identifier.
type Guid struct {
	Wrapper[native.Guid]
}

// NewGuid constructs a Guid from its four wire-layout components.
func NewGuid(data1 uint32, data2, data3 uint16, data4 [8]byte) Guid {
	return Guid{AdoptWrapper(native.TypeIDGuid, native.Guid{
		Data1: data1,
		Data2: data2,
		Data3: data3,
		Data4: data4,
	})}
}

// NewGuidFromUUID constructs a Guid from a uuid.UUID.
func NewGuidFromUUID(id uuid.UUID) Guid {
	var data4 [8]byte
	copy(data4[:], id[8:])
	return NewGuid(
		binary.BigEndian.Uint32(id[0:4]),
		binary.BigEndian.Uint16(id[4:6]),
		binary.BigEndian.Uint16(id[6:8]),
		data4,
	)
}

// UUID returns the Guid as a uuid.UUID.
func (g Guid) UUID() uuid.UUID {
	var id uuid.UUID
	binary.BigEndian.PutUint32(id[0:4], g.val.Data1)
	binary.BigEndian.PutUint16(id[4:6], g.val.Data2)
	binary.BigEndian.PutUint16(id[6:8], g.val.Data3)
	copy(id[8:], g.val.Data4[:])
	return id
}

// Equal reports structural equality.
func (g Guid) Equal(other Guid) bool {
	return g.Wrapper.Equal(&other.Wrapper)
}

// String returns the canonical UUID representation.
func (g Guid) String() string {
	return g.UUID().String()
}

// QualifiedName wraps the native qualified name type, pairing a name and a
// namespace index.
type QualifiedName struct {
	Wrapper[native.QualifiedName]
}

// NewQualifiedName constructs a QualifiedName from a namespace index and a
// name.
func NewQualifiedName(namespaceIndex uint16, name string) QualifiedName {
	return QualifiedName{AdoptWrapper(native.TypeIDQualifiedName, native.QualifiedName{
		NamespaceIndex: namespaceIndex,
		Name:           native.NewString(name),
	})}
}

// NamespaceIndex returns the namespace index.
func (q QualifiedName) NamespaceIndex() uint16 {
	return q.val.NamespaceIndex
}

// Name returns an owning copy of the name.
func (q QualifiedName) Name() string {
	return string(q.val.Name.Data)
}

// NameView returns the name bytes without copying, valid only while the
// wrapper is alive and unmodified.
func (q QualifiedName) NameView() []byte {
	return q.val.Name.Data
}

// Equal reports structural equality.
func (q QualifiedName) Equal(other QualifiedName) bool {
	return q.Wrapper.Equal(&other.Wrapper)
}

// String returns a string representation, e.g. "2:Demo".
func (q QualifiedName) String() string {
	return fmt.Sprintf("%d:%s", q.val.NamespaceIndex, q.val.Name.Data)
}

// LocalizedText wraps the native localized text type, pairing text and a
// locale string.
type LocalizedText struct {
	Wrapper[native.LocalizedText]
}

// NewLocalizedText constructs a LocalizedText from text and locale string.
func NewLocalizedText(text, locale string) LocalizedText {
	return LocalizedText{AdoptWrapper(native.TypeIDLocalizedText, native.LocalizedText{
		Locale: native.NewString(locale),
		Text:   native.NewString(text),
	})}
}

// Text returns an owning copy of the text.
func (l LocalizedText) Text() string {
	return string(l.val.Text.Data)
}

// TextView returns the text bytes without copying, valid only while the
// wrapper is alive and unmodified.
func (l LocalizedText) TextView() []byte {
	return l.val.Text.Data
}

// Locale returns an owning copy of the locale.
func (l LocalizedText) Locale() string {
	return string(l.val.Locale.Data)
}

// LocaleView returns the locale bytes without copying, valid only while the
// wrapper is alive and unmodified.
func (l LocalizedText) LocaleView() []byte {
	return l.val.Locale.Data
}

// Equal reports structural equality.
func (l LocalizedText) Equal(other LocalizedText) bool {
	return l.Wrapper.Equal(&other.Wrapper)
}

// String returns the string representation, e.g. "text (locale)".
func (l LocalizedText) String() string {
	return fmt.Sprintf("%s (%s)", l.val.Text.Data, l.val.Locale.Data)
}

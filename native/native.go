// Copyright 2024 The open62541pp Authors. All rights reserved.

// Package native provides the value types, type table and binary codec of the
// underlying protocol stack. Values are plain structs laid out like their
// C counterparts; dynamic-length fields own their buffers. Lifecycle
// operations (zero-init, deep copy, clear, equality, encode, decode) are
// reached through the process-wide type table indexed by TypeID.
package native

import (
	"bytes"
)

// String holds a sequence of UTF-8 bytes. A nil Data is the null string.
type String struct {
	Data []byte
}

// NewString returns a String that owns a copy of s.
func NewString(s string) String {
	if len(s) == 0 {
		return String{}
	}
	return String{Data: []byte(s)}
}

// ByteString holds an opaque sequence of bytes. A nil Data is the null value.
type ByteString struct {
	Data []byte
}

// NewByteString returns a ByteString that owns a copy of b.
func NewByteString(b []byte) ByteString {
	if len(b) == 0 {
		return ByteString{}
	}
	d := make([]byte, len(b))
	copy(d, b)
	return ByteString{Data: d}
}

// XMLElement holds an XML fragment as bytes.
type XMLElement struct {
	Data []byte
}

// NewXMLElement returns an XMLElement that owns a copy of s.
func NewXMLElement(s string) XMLElement {
	if len(s) == 0 {
		return XMLElement{}
	}
	return XMLElement{Data: []byte(s)}
}

// Guid is a 16 byte globally unique identifier, split into the four
// fields of its wire layout.
type Guid struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

// QualifiedName pairs a name and a namespace index.
type QualifiedName struct {
	NamespaceIndex uint16
	Name           String
}

// LocalizedText pairs text with a locale identifier.
type LocalizedText struct {
	Locale String
	Text   String
}

// IDType is the variant tag of the NodeID union.
type IDType int32

// IDTypes
const (
	IDTypeNumeric IDType = iota
	IDTypeString
	IDTypeGUID
	IDTypeOpaque
)

// NodeID identifies a node. The foreign representation is a tagged union;
// here the variants are explicit fields selected by IDType.
type NodeID struct {
	NamespaceIndex uint16
	IDType         IDType
	Numeric        uint32
	String         String
	GUID           Guid
	Opaque         ByteString
}

// ReadValueID selects a node attribute to read.
type ReadValueID struct {
	NodeID       NodeID
	AttributeID  uint32
	IndexRange   String
	DataEncoding QualifiedName
}

// NodeAttributes holds the optional base attributes of a node. Fields are
// meaningful only when the corresponding bit of SpecifiedAttributes is set.
type NodeAttributes struct {
	SpecifiedAttributes uint32
	DisplayName         LocalizedText
	Description         LocalizedText
	WriteMask           uint32
	UserWriteMask       uint32
}

// ObjectAttributes holds the optional attributes of an object node.
type ObjectAttributes struct {
	SpecifiedAttributes uint32
	DisplayName         LocalizedText
	Description         LocalizedText
	WriteMask           uint32
	UserWriteMask       uint32
	EventNotifier       byte
}

// VariableAttributes holds the optional attributes of a variable node.
type VariableAttributes struct {
	SpecifiedAttributes     uint32
	DisplayName             LocalizedText
	Description             LocalizedText
	WriteMask               uint32
	UserWriteMask           uint32
	Value                   Variant
	DataType                NodeID
	ValueRank               int32
	ArrayDimensions         []uint32
	AccessLevel             byte
	UserAccessLevel         byte
	MinimumSamplingInterval float64
	Historizing             bool
}

// Variant holds a value of one of the scalar builtin types, or nil.
type Variant interface{}

// scalarVariant reports whether v is within the scalar builtin set.
func scalarVariant(v Variant) bool {
	switch v.(type) {
	case nil, bool, int8, byte, int16, uint16, int32, uint32, int64, uint64, float32, float64, string:
		return true
	}
	return false
}

// equalVariant compares two scalar variants. Values outside the scalar
// builtin set compare unequal.
func equalVariant(a, b Variant) bool {
	if !scalarVariant(a) || !scalarVariant(b) {
		return false
	}
	return a == b
}

// Attribute bits of the SpecifiedAttributes masks.
const (
	AttributeMaskNone                    uint32 = 0
	AttributeMaskAccessLevel             uint32 = 1 << 0
	AttributeMaskArrayDimensions         uint32 = 1 << 1
	AttributeMaskBrowseName              uint32 = 1 << 2
	AttributeMaskContainsNoLoops         uint32 = 1 << 3
	AttributeMaskDataType                uint32 = 1 << 4
	AttributeMaskDescription             uint32 = 1 << 5
	AttributeMaskDisplayName             uint32 = 1 << 6
	AttributeMaskEventNotifier           uint32 = 1 << 7
	AttributeMaskExecutable              uint32 = 1 << 8
	AttributeMaskHistorizing             uint32 = 1 << 9
	AttributeMaskInverseName             uint32 = 1 << 10
	AttributeMaskIsAbstract              uint32 = 1 << 11
	AttributeMaskMinimumSamplingInterval uint32 = 1 << 12
	AttributeMaskNodeClass               uint32 = 1 << 13
	AttributeMaskNodeID                  uint32 = 1 << 14
	AttributeMaskSymmetric               uint32 = 1 << 15
	AttributeMaskUserAccessLevel         uint32 = 1 << 16
	AttributeMaskUserExecutable          uint32 = 1 << 17
	AttributeMaskUserWriteMask           uint32 = 1 << 18
	AttributeMaskValueRank               uint32 = 1 << 19
	AttributeMaskWriteMask               uint32 = 1 << 20
	AttributeMaskValue                   uint32 = 1 << 21
)

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	d := make([]byte, len(b))
	copy(d, b)
	return d
}

func copyString(dst, src *String) {
	dst.Data = cloneBytes(src.Data)
}

func clearString(v *String) {
	v.Data = nil
}

func equalString(a, b *String) bool {
	return bytes.Equal(a.Data, b.Data)
}

func copyByteString(dst, src *ByteString) {
	dst.Data = cloneBytes(src.Data)
}

func copyXMLElement(dst, src *XMLElement) {
	dst.Data = cloneBytes(src.Data)
}

func copyQualifiedName(dst, src *QualifiedName) {
	dst.NamespaceIndex = src.NamespaceIndex
	copyString(&dst.Name, &src.Name)
}

func equalQualifiedName(a, b *QualifiedName) bool {
	return a.NamespaceIndex == b.NamespaceIndex && equalString(&a.Name, &b.Name)
}

func copyLocalizedText(dst, src *LocalizedText) {
	copyString(&dst.Locale, &src.Locale)
	copyString(&dst.Text, &src.Text)
}

func equalLocalizedText(a, b *LocalizedText) bool {
	return equalString(&a.Locale, &b.Locale) && equalString(&a.Text, &b.Text)
}

func copyNodeID(dst, src *NodeID) {
	dst.NamespaceIndex = src.NamespaceIndex
	dst.IDType = src.IDType
	dst.Numeric = src.Numeric
	dst.GUID = src.GUID
	copyString(&dst.String, &src.String)
	copyByteString(&dst.Opaque, &src.Opaque)
}

func equalNodeID(a, b *NodeID) bool {
	if a.NamespaceIndex != b.NamespaceIndex || a.IDType != b.IDType {
		return false
	}
	switch a.IDType {
	case IDTypeNumeric:
		return a.Numeric == b.Numeric
	case IDTypeString:
		return equalString(&a.String, &b.String)
	case IDTypeGUID:
		return a.GUID == b.GUID
	case IDTypeOpaque:
		return bytes.Equal(a.Opaque.Data, b.Opaque.Data)
	}
	return false
}

func copyReadValueID(dst, src *ReadValueID) {
	copyNodeID(&dst.NodeID, &src.NodeID)
	dst.AttributeID = src.AttributeID
	copyString(&dst.IndexRange, &src.IndexRange)
	copyQualifiedName(&dst.DataEncoding, &src.DataEncoding)
}

func equalReadValueID(a, b *ReadValueID) bool {
	return equalNodeID(&a.NodeID, &b.NodeID) &&
		a.AttributeID == b.AttributeID &&
		equalString(&a.IndexRange, &b.IndexRange) &&
		equalQualifiedName(&a.DataEncoding, &b.DataEncoding)
}

func copyNodeAttributes(dst, src *NodeAttributes) {
	dst.SpecifiedAttributes = src.SpecifiedAttributes
	copyLocalizedText(&dst.DisplayName, &src.DisplayName)
	copyLocalizedText(&dst.Description, &src.Description)
	dst.WriteMask = src.WriteMask
	dst.UserWriteMask = src.UserWriteMask
}

func equalNodeAttributes(a, b *NodeAttributes) bool {
	return a.SpecifiedAttributes == b.SpecifiedAttributes &&
		equalLocalizedText(&a.DisplayName, &b.DisplayName) &&
		equalLocalizedText(&a.Description, &b.Description) &&
		a.WriteMask == b.WriteMask &&
		a.UserWriteMask == b.UserWriteMask
}

func copyObjectAttributes(dst, src *ObjectAttributes) {
	dst.SpecifiedAttributes = src.SpecifiedAttributes
	copyLocalizedText(&dst.DisplayName, &src.DisplayName)
	copyLocalizedText(&dst.Description, &src.Description)
	dst.WriteMask = src.WriteMask
	dst.UserWriteMask = src.UserWriteMask
	dst.EventNotifier = src.EventNotifier
}

func equalObjectAttributes(a, b *ObjectAttributes) bool {
	return a.SpecifiedAttributes == b.SpecifiedAttributes &&
		equalLocalizedText(&a.DisplayName, &b.DisplayName) &&
		equalLocalizedText(&a.Description, &b.Description) &&
		a.WriteMask == b.WriteMask &&
		a.UserWriteMask == b.UserWriteMask &&
		a.EventNotifier == b.EventNotifier
}

func copyVariableAttributes(dst, src *VariableAttributes) {
	dst.SpecifiedAttributes = src.SpecifiedAttributes
	copyLocalizedText(&dst.DisplayName, &src.DisplayName)
	copyLocalizedText(&dst.Description, &src.Description)
	dst.WriteMask = src.WriteMask
	dst.UserWriteMask = src.UserWriteMask
	dst.Value = src.Value
	copyNodeID(&dst.DataType, &src.DataType)
	dst.ValueRank = src.ValueRank
	if src.ArrayDimensions != nil {
		dst.ArrayDimensions = make([]uint32, len(src.ArrayDimensions))
		copy(dst.ArrayDimensions, src.ArrayDimensions)
	} else {
		dst.ArrayDimensions = nil
	}
	dst.AccessLevel = src.AccessLevel
	dst.UserAccessLevel = src.UserAccessLevel
	dst.MinimumSamplingInterval = src.MinimumSamplingInterval
	dst.Historizing = src.Historizing
}

func equalVariableAttributes(a, b *VariableAttributes) bool {
	if a.SpecifiedAttributes != b.SpecifiedAttributes ||
		!equalLocalizedText(&a.DisplayName, &b.DisplayName) ||
		!equalLocalizedText(&a.Description, &b.Description) ||
		a.WriteMask != b.WriteMask ||
		a.UserWriteMask != b.UserWriteMask ||
		!equalVariant(a.Value, b.Value) ||
		!equalNodeID(&a.DataType, &b.DataType) ||
		a.ValueRank != b.ValueRank ||
		a.AccessLevel != b.AccessLevel ||
		a.UserAccessLevel != b.UserAccessLevel ||
		a.MinimumSamplingInterval != b.MinimumSamplingInterval ||
		a.Historizing != b.Historizing {
		return false
	}
	if len(a.ArrayDimensions) != len(b.ArrayDimensions) {
		return false
	}
	for i := range a.ArrayDimensions {
		if a.ArrayDimensions[i] != b.ArrayDimensions[i] {
			return false
		}
	}
	return true
}

// Copyright 2024 The open62541pp Authors. All rights reserved.

package native

import (
	"unsafe"
)

// TypeID indexes an entry of the type table.
type TypeID int32

// TypeIDs
const (
	TypeIDString TypeID = iota
	TypeIDByteString
	TypeIDXMLElement
	TypeIDGuid
	TypeIDQualifiedName
	TypeIDLocalizedText
	TypeIDNodeID
	TypeIDReadValueID
	TypeIDNodeAttributes
	TypeIDObjectAttributes
	TypeIDVariableAttributes
	typeIDCount
)

// DataType describes the layout and lifecycle operations of one native type.
// All operations take pointers to the described type; passing a pointer to a
// different type is a programming error.
type DataType struct {
	Name string
	ID   TypeID
	Size uintptr

	// New returns a pointer to a zero-initialized value.
	New func() interface{}
	// Copy deep-copies src into dst, independently duplicating all
	// variable-length owned buffers. Previous content of dst is dropped.
	Copy func(dst, src interface{})
	// Clear resets the value to its zero state, releasing owned buffers.
	// Clearing an already zeroed value is a no-op.
	Clear func(v interface{})
	// Equal reports field-wise structural equality.
	Equal func(a, b interface{}) bool
	// Encode writes the binary representation of the value.
	Encode func(enc *Encoder, v interface{}) error
	// Decode reads the binary representation into the value.
	Decode func(dec *Decoder, v interface{}) error
}

// Types is the process-wide type table, initialized before main and read-only
// afterwards.
var Types = [typeIDCount]DataType{
	TypeIDString: {
		Name:   "String",
		ID:     TypeIDString,
		Size:   unsafe.Sizeof(String{}),
		New:    func() interface{} { return new(String) },
		Copy:   func(dst, src interface{}) { copyString(dst.(*String), src.(*String)) },
		Clear:  func(v interface{}) { clearString(v.(*String)) },
		Equal:  func(a, b interface{}) bool { return equalString(a.(*String), b.(*String)) },
		Encode: func(enc *Encoder, v interface{}) error { return enc.WriteString(*v.(*String)) },
		Decode: func(dec *Decoder, v interface{}) error { return dec.ReadString(v.(*String)) },
	},
	TypeIDByteString: {
		Name:  "ByteString",
		ID:    TypeIDByteString,
		Size:  unsafe.Sizeof(ByteString{}),
		New:   func() interface{} { return new(ByteString) },
		Copy:  func(dst, src interface{}) { copyByteString(dst.(*ByteString), src.(*ByteString)) },
		Clear: func(v interface{}) { v.(*ByteString).Data = nil },
		Equal: func(a, b interface{}) bool {
			return equalString(&String{a.(*ByteString).Data}, &String{b.(*ByteString).Data})
		},
		Encode: func(enc *Encoder, v interface{}) error { return enc.WriteByteString(*v.(*ByteString)) },
		Decode: func(dec *Decoder, v interface{}) error { return dec.ReadByteString(v.(*ByteString)) },
	},
	TypeIDXMLElement: {
		Name:  "XmlElement",
		ID:    TypeIDXMLElement,
		Size:  unsafe.Sizeof(XMLElement{}),
		New:   func() interface{} { return new(XMLElement) },
		Copy:  func(dst, src interface{}) { copyXMLElement(dst.(*XMLElement), src.(*XMLElement)) },
		Clear: func(v interface{}) { v.(*XMLElement).Data = nil },
		Equal: func(a, b interface{}) bool {
			return equalString(&String{a.(*XMLElement).Data}, &String{b.(*XMLElement).Data})
		},
		Encode: func(enc *Encoder, v interface{}) error { return enc.WriteXMLElement(*v.(*XMLElement)) },
		Decode: func(dec *Decoder, v interface{}) error { return dec.ReadXMLElement(v.(*XMLElement)) },
	},
	TypeIDGuid: {
		Name:   "Guid",
		ID:     TypeIDGuid,
		Size:   unsafe.Sizeof(Guid{}),
		New:    func() interface{} { return new(Guid) },
		Copy:   func(dst, src interface{}) { *dst.(*Guid) = *src.(*Guid) },
		Clear:  func(v interface{}) { *v.(*Guid) = Guid{} },
		Equal:  func(a, b interface{}) bool { return *a.(*Guid) == *b.(*Guid) },
		Encode: func(enc *Encoder, v interface{}) error { return enc.WriteGuid(*v.(*Guid)) },
		Decode: func(dec *Decoder, v interface{}) error { return dec.ReadGuid(v.(*Guid)) },
	},
	TypeIDQualifiedName: {
		Name:  "QualifiedName",
		ID:    TypeIDQualifiedName,
		Size:  unsafe.Sizeof(QualifiedName{}),
		New:   func() interface{} { return new(QualifiedName) },
		Copy:  func(dst, src interface{}) { copyQualifiedName(dst.(*QualifiedName), src.(*QualifiedName)) },
		Clear: func(v interface{}) { *v.(*QualifiedName) = QualifiedName{} },
		Equal: func(a, b interface{}) bool {
			return equalQualifiedName(a.(*QualifiedName), b.(*QualifiedName))
		},
		Encode: func(enc *Encoder, v interface{}) error { return enc.WriteQualifiedName(*v.(*QualifiedName)) },
		Decode: func(dec *Decoder, v interface{}) error { return dec.ReadQualifiedName(v.(*QualifiedName)) },
	},
	TypeIDLocalizedText: {
		Name:  "LocalizedText",
		ID:    TypeIDLocalizedText,
		Size:  unsafe.Sizeof(LocalizedText{}),
		New:   func() interface{} { return new(LocalizedText) },
		Copy:  func(dst, src interface{}) { copyLocalizedText(dst.(*LocalizedText), src.(*LocalizedText)) },
		Clear: func(v interface{}) { *v.(*LocalizedText) = LocalizedText{} },
		Equal: func(a, b interface{}) bool {
			return equalLocalizedText(a.(*LocalizedText), b.(*LocalizedText))
		},
		Encode: func(enc *Encoder, v interface{}) error { return enc.WriteLocalizedText(*v.(*LocalizedText)) },
		Decode: func(dec *Decoder, v interface{}) error { return dec.ReadLocalizedText(v.(*LocalizedText)) },
	},
	TypeIDNodeID: {
		Name:   "NodeId",
		ID:     TypeIDNodeID,
		Size:   unsafe.Sizeof(NodeID{}),
		New:    func() interface{} { return new(NodeID) },
		Copy:   func(dst, src interface{}) { copyNodeID(dst.(*NodeID), src.(*NodeID)) },
		Clear:  func(v interface{}) { *v.(*NodeID) = NodeID{} },
		Equal:  func(a, b interface{}) bool { return equalNodeID(a.(*NodeID), b.(*NodeID)) },
		Encode: func(enc *Encoder, v interface{}) error { return enc.WriteNodeID(*v.(*NodeID)) },
		Decode: func(dec *Decoder, v interface{}) error { return dec.ReadNodeID(v.(*NodeID)) },
	},
	TypeIDReadValueID: {
		Name:   "ReadValueId",
		ID:     TypeIDReadValueID,
		Size:   unsafe.Sizeof(ReadValueID{}),
		New:    func() interface{} { return new(ReadValueID) },
		Copy:   func(dst, src interface{}) { copyReadValueID(dst.(*ReadValueID), src.(*ReadValueID)) },
		Clear:  func(v interface{}) { *v.(*ReadValueID) = ReadValueID{} },
		Equal:  func(a, b interface{}) bool { return equalReadValueID(a.(*ReadValueID), b.(*ReadValueID)) },
		Encode: func(enc *Encoder, v interface{}) error { return enc.WriteReadValueID(*v.(*ReadValueID)) },
		Decode: func(dec *Decoder, v interface{}) error { return dec.ReadReadValueID(v.(*ReadValueID)) },
	},
	TypeIDNodeAttributes: {
		Name:  "NodeAttributes",
		ID:    TypeIDNodeAttributes,
		Size:  unsafe.Sizeof(NodeAttributes{}),
		New:   func() interface{} { return new(NodeAttributes) },
		Copy:  func(dst, src interface{}) { copyNodeAttributes(dst.(*NodeAttributes), src.(*NodeAttributes)) },
		Clear: func(v interface{}) { *v.(*NodeAttributes) = NodeAttributes{} },
		Equal: func(a, b interface{}) bool {
			return equalNodeAttributes(a.(*NodeAttributes), b.(*NodeAttributes))
		},
		Encode: func(enc *Encoder, v interface{}) error { return enc.WriteNodeAttributes(*v.(*NodeAttributes)) },
		Decode: func(dec *Decoder, v interface{}) error { return dec.ReadNodeAttributes(v.(*NodeAttributes)) },
	},
	TypeIDObjectAttributes: {
		Name: "ObjectAttributes",
		ID:   TypeIDObjectAttributes,
		Size: unsafe.Sizeof(ObjectAttributes{}),
		New:  func() interface{} { return new(ObjectAttributes) },
		Copy: func(dst, src interface{}) {
			copyObjectAttributes(dst.(*ObjectAttributes), src.(*ObjectAttributes))
		},
		Clear: func(v interface{}) { *v.(*ObjectAttributes) = ObjectAttributes{} },
		Equal: func(a, b interface{}) bool {
			return equalObjectAttributes(a.(*ObjectAttributes), b.(*ObjectAttributes))
		},
		Encode: func(enc *Encoder, v interface{}) error {
			return enc.WriteObjectAttributes(*v.(*ObjectAttributes))
		},
		Decode: func(dec *Decoder, v interface{}) error { return dec.ReadObjectAttributes(v.(*ObjectAttributes)) },
	},
	TypeIDVariableAttributes: {
		Name: "VariableAttributes",
		ID:   TypeIDVariableAttributes,
		Size: unsafe.Sizeof(VariableAttributes{}),
		New:  func() interface{} { return new(VariableAttributes) },
		Copy: func(dst, src interface{}) {
			copyVariableAttributes(dst.(*VariableAttributes), src.(*VariableAttributes))
		},
		Clear: func(v interface{}) { *v.(*VariableAttributes) = VariableAttributes{} },
		Equal: func(a, b interface{}) bool {
			return equalVariableAttributes(a.(*VariableAttributes), b.(*VariableAttributes))
		},
		Encode: func(enc *Encoder, v interface{}) error {
			return enc.WriteVariableAttributes(*v.(*VariableAttributes))
		},
		Decode: func(dec *Decoder, v interface{}) error {
			return dec.ReadVariableAttributes(v.(*VariableAttributes))
		},
	},
}

// TypeIDOf returns the type table id for a pointer to a native value.
func TypeIDOf(v interface{}) TypeID {
	switch v.(type) {
	case *ByteString:
		return TypeIDByteString
	case *XMLElement:
		return TypeIDXMLElement
	case *Guid:
		return TypeIDGuid
	case *QualifiedName:
		return TypeIDQualifiedName
	case *LocalizedText:
		return TypeIDLocalizedText
	case *NodeID:
		return TypeIDNodeID
	case *ReadValueID:
		return TypeIDReadValueID
	case *NodeAttributes:
		return TypeIDNodeAttributes
	case *ObjectAttributes:
		return TypeIDObjectAttributes
	case *VariableAttributes:
		return TypeIDVariableAttributes
	}
	return TypeIDString
}

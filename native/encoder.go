// Copyright 2024 The open62541pp Authors. All rights reserved.

package native

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/djherbis/buffer"
	"github.com/pkg/errors"
)

// ErrEncoding is returned when a value cannot be encoded.
var ErrEncoding = errors.New("encoding error")

// node id encoding bytes
const (
	nodeIDEncodingTwoByte    byte = 0x00
	nodeIDEncodingFourByte   byte = 0x01
	nodeIDEncodingNumeric    byte = 0x02
	nodeIDEncodingString     byte = 0x03
	nodeIDEncodingGuid       byte = 0x04
	nodeIDEncodingByteString byte = 0x05
)

// localized text encoding bits
const (
	localizedTextLocale byte = 0x01
	localizedTextText   byte = 0x02
)

// variant type ids of the scalar builtin types
const (
	variantTypeNull    byte = 0
	variantTypeBoolean byte = 1
	variantTypeSByte   byte = 2
	variantTypeByte    byte = 3
	variantTypeInt16   byte = 4
	variantTypeUInt16  byte = 5
	variantTypeInt32   byte = 6
	variantTypeUInt32  byte = 7
	variantTypeInt64   byte = 8
	variantTypeUInt64  byte = 9
	variantTypeFloat   byte = 10
	variantTypeDouble  byte = 11
	variantTypeString  byte = 12
)

// Encoder writes the binary representation of native values.
type Encoder struct {
	w  io.Writer
	bs [8]byte
}

// NewEncoder returns a new encoder that writes to an io.Writer.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// WriteBoolean writes a bool.
func (enc *Encoder) WriteBoolean(value bool) error {
	if value {
		enc.bs[0] = 1
	} else {
		enc.bs[0] = 0
	}
	_, err := enc.w.Write(enc.bs[:1])
	return err
}

// WriteByte writes a byte.
func (enc *Encoder) WriteByte(value byte) error {
	enc.bs[0] = value
	_, err := enc.w.Write(enc.bs[:1])
	return err
}

// WriteSByte writes an int8.
func (enc *Encoder) WriteSByte(value int8) error {
	return enc.WriteByte(byte(value))
}

// WriteInt16 writes an int16.
func (enc *Encoder) WriteInt16(value int16) error {
	return enc.WriteUInt16(uint16(value))
}

// WriteUInt16 writes a uint16.
func (enc *Encoder) WriteUInt16(value uint16) error {
	binary.LittleEndian.PutUint16(enc.bs[:2], value)
	_, err := enc.w.Write(enc.bs[:2])
	return err
}

// WriteInt32 writes an int32.
func (enc *Encoder) WriteInt32(value int32) error {
	return enc.WriteUInt32(uint32(value))
}

// WriteUInt32 writes a uint32.
func (enc *Encoder) WriteUInt32(value uint32) error {
	binary.LittleEndian.PutUint32(enc.bs[:4], value)
	_, err := enc.w.Write(enc.bs[:4])
	return err
}

// WriteInt64 writes an int64.
func (enc *Encoder) WriteInt64(value int64) error {
	return enc.WriteUInt64(uint64(value))
}

// WriteUInt64 writes a uint64.
func (enc *Encoder) WriteUInt64(value uint64) error {
	binary.LittleEndian.PutUint64(enc.bs[:8], value)
	_, err := enc.w.Write(enc.bs[:8])
	return err
}

// WriteFloat writes a float32.
func (enc *Encoder) WriteFloat(value float32) error {
	return enc.WriteUInt32(math.Float32bits(value))
}

// WriteDouble writes a float64.
func (enc *Encoder) WriteDouble(value float64) error {
	return enc.WriteUInt64(math.Float64bits(value))
}

func (enc *Encoder) writeBytes(data []byte) error {
	if data == nil {
		return enc.WriteInt32(-1)
	}
	if err := enc.WriteInt32(int32(len(data))); err != nil {
		return err
	}
	_, err := enc.w.Write(data)
	return err
}

// WriteString writes a String. A nil buffer is written as length -1.
func (enc *Encoder) WriteString(value String) error {
	return enc.writeBytes(value.Data)
}

// WriteByteString writes a ByteString.
func (enc *Encoder) WriteByteString(value ByteString) error {
	return enc.writeBytes(value.Data)
}

// WriteXMLElement writes an XMLElement.
func (enc *Encoder) WriteXMLElement(value XMLElement) error {
	return enc.writeBytes(value.Data)
}

// WriteGuid writes a Guid.
func (enc *Encoder) WriteGuid(value Guid) error {
	if err := enc.WriteUInt32(value.Data1); err != nil {
		return err
	}
	if err := enc.WriteUInt16(value.Data2); err != nil {
		return err
	}
	if err := enc.WriteUInt16(value.Data3); err != nil {
		return err
	}
	_, err := enc.w.Write(value.Data4[:])
	return err
}

// WriteQualifiedName writes a QualifiedName.
func (enc *Encoder) WriteQualifiedName(value QualifiedName) error {
	if err := enc.WriteUInt16(value.NamespaceIndex); err != nil {
		return err
	}
	return enc.WriteString(value.Name)
}

// WriteLocalizedText writes a LocalizedText. Only non-null locale and text
// are written, selected by the leading encoding mask byte.
func (enc *Encoder) WriteLocalizedText(value LocalizedText) error {
	var mask byte
	if value.Locale.Data != nil {
		mask |= localizedTextLocale
	}
	if value.Text.Data != nil {
		mask |= localizedTextText
	}
	if err := enc.WriteByte(mask); err != nil {
		return err
	}
	if mask&localizedTextLocale != 0 {
		if err := enc.WriteString(value.Locale); err != nil {
			return err
		}
	}
	if mask&localizedTextText != 0 {
		if err := enc.WriteString(value.Text); err != nil {
			return err
		}
	}
	return nil
}

// WriteNodeID writes a NodeID, selecting the most compact encoding.
func (enc *Encoder) WriteNodeID(value NodeID) error {
	switch value.IDType {
	case IDTypeNumeric:
		switch {
		case value.Numeric <= 255 && value.NamespaceIndex == 0:
			if err := enc.WriteByte(nodeIDEncodingTwoByte); err != nil {
				return err
			}
			return enc.WriteByte(byte(value.Numeric))
		case value.Numeric <= 65535 && value.NamespaceIndex <= 255:
			if err := enc.WriteByte(nodeIDEncodingFourByte); err != nil {
				return err
			}
			if err := enc.WriteByte(byte(value.NamespaceIndex)); err != nil {
				return err
			}
			return enc.WriteUInt16(uint16(value.Numeric))
		default:
			if err := enc.WriteByte(nodeIDEncodingNumeric); err != nil {
				return err
			}
			if err := enc.WriteUInt16(value.NamespaceIndex); err != nil {
				return err
			}
			return enc.WriteUInt32(value.Numeric)
		}
	case IDTypeString:
		if err := enc.WriteByte(nodeIDEncodingString); err != nil {
			return err
		}
		if err := enc.WriteUInt16(value.NamespaceIndex); err != nil {
			return err
		}
		return enc.WriteString(value.String)
	case IDTypeGUID:
		if err := enc.WriteByte(nodeIDEncodingGuid); err != nil {
			return err
		}
		if err := enc.WriteUInt16(value.NamespaceIndex); err != nil {
			return err
		}
		return enc.WriteGuid(value.GUID)
	case IDTypeOpaque:
		if err := enc.WriteByte(nodeIDEncodingByteString); err != nil {
			return err
		}
		if err := enc.WriteUInt16(value.NamespaceIndex); err != nil {
			return err
		}
		return enc.WriteByteString(value.Opaque)
	}
	return errors.Wrapf(ErrEncoding, "unknown node id type %d", value.IDType)
}

// WriteReadValueID writes a ReadValueID.
func (enc *Encoder) WriteReadValueID(value ReadValueID) error {
	if err := enc.WriteNodeID(value.NodeID); err != nil {
		return err
	}
	if err := enc.WriteUInt32(value.AttributeID); err != nil {
		return err
	}
	if err := enc.WriteString(value.IndexRange); err != nil {
		return err
	}
	return enc.WriteQualifiedName(value.DataEncoding)
}

// WriteVariant writes a scalar Variant as a type id byte followed by the value.
func (enc *Encoder) WriteVariant(value Variant) error {
	switch v := value.(type) {
	case nil:
		return enc.WriteByte(variantTypeNull)
	case bool:
		if err := enc.WriteByte(variantTypeBoolean); err != nil {
			return err
		}
		return enc.WriteBoolean(v)
	case int8:
		if err := enc.WriteByte(variantTypeSByte); err != nil {
			return err
		}
		return enc.WriteSByte(v)
	case byte:
		if err := enc.WriteByte(variantTypeByte); err != nil {
			return err
		}
		return enc.WriteByte(v)
	case int16:
		if err := enc.WriteByte(variantTypeInt16); err != nil {
			return err
		}
		return enc.WriteInt16(v)
	case uint16:
		if err := enc.WriteByte(variantTypeUInt16); err != nil {
			return err
		}
		return enc.WriteUInt16(v)
	case int32:
		if err := enc.WriteByte(variantTypeInt32); err != nil {
			return err
		}
		return enc.WriteInt32(v)
	case uint32:
		if err := enc.WriteByte(variantTypeUInt32); err != nil {
			return err
		}
		return enc.WriteUInt32(v)
	case int64:
		if err := enc.WriteByte(variantTypeInt64); err != nil {
			return err
		}
		return enc.WriteInt64(v)
	case uint64:
		if err := enc.WriteByte(variantTypeUInt64); err != nil {
			return err
		}
		return enc.WriteUInt64(v)
	case float32:
		if err := enc.WriteByte(variantTypeFloat); err != nil {
			return err
		}
		return enc.WriteFloat(v)
	case float64:
		if err := enc.WriteByte(variantTypeDouble); err != nil {
			return err
		}
		return enc.WriteDouble(v)
	case string:
		if err := enc.WriteByte(variantTypeString); err != nil {
			return err
		}
		return enc.WriteString(NewString(v))
	}
	return errors.Wrapf(ErrEncoding, "unsupported variant type %T", value)
}

// WriteNodeAttributes writes a NodeAttributes. Optional fields are written
// only when the corresponding bit of the specified-attributes mask is set.
func (enc *Encoder) WriteNodeAttributes(value NodeAttributes) error {
	if err := enc.WriteUInt32(value.SpecifiedAttributes); err != nil {
		return err
	}
	return enc.writeBaseAttributes(value.SpecifiedAttributes, value.DisplayName, value.Description, value.WriteMask, value.UserWriteMask)
}

func (enc *Encoder) writeBaseAttributes(mask uint32, displayName, description LocalizedText, writeMask, userWriteMask uint32) error {
	if mask&AttributeMaskDisplayName != 0 {
		if err := enc.WriteLocalizedText(displayName); err != nil {
			return err
		}
	}
	if mask&AttributeMaskDescription != 0 {
		if err := enc.WriteLocalizedText(description); err != nil {
			return err
		}
	}
	if mask&AttributeMaskWriteMask != 0 {
		if err := enc.WriteUInt32(writeMask); err != nil {
			return err
		}
	}
	if mask&AttributeMaskUserWriteMask != 0 {
		if err := enc.WriteUInt32(userWriteMask); err != nil {
			return err
		}
	}
	return nil
}

// WriteObjectAttributes writes an ObjectAttributes, mask-gated.
func (enc *Encoder) WriteObjectAttributes(value ObjectAttributes) error {
	if err := enc.WriteUInt32(value.SpecifiedAttributes); err != nil {
		return err
	}
	if err := enc.writeBaseAttributes(value.SpecifiedAttributes, value.DisplayName, value.Description, value.WriteMask, value.UserWriteMask); err != nil {
		return err
	}
	if value.SpecifiedAttributes&AttributeMaskEventNotifier != 0 {
		return enc.WriteByte(value.EventNotifier)
	}
	return nil
}

// WriteVariableAttributes writes a VariableAttributes, mask-gated.
func (enc *Encoder) WriteVariableAttributes(value VariableAttributes) error {
	mask := value.SpecifiedAttributes
	if err := enc.WriteUInt32(mask); err != nil {
		return err
	}
	if err := enc.writeBaseAttributes(mask, value.DisplayName, value.Description, value.WriteMask, value.UserWriteMask); err != nil {
		return err
	}
	if mask&AttributeMaskValue != 0 {
		if err := enc.WriteVariant(value.Value); err != nil {
			return err
		}
	}
	if mask&AttributeMaskDataType != 0 {
		if err := enc.WriteNodeID(value.DataType); err != nil {
			return err
		}
	}
	if mask&AttributeMaskValueRank != 0 {
		if err := enc.WriteInt32(value.ValueRank); err != nil {
			return err
		}
	}
	if mask&AttributeMaskArrayDimensions != 0 {
		if err := enc.WriteInt32(int32(len(value.ArrayDimensions))); err != nil {
			return err
		}
		for _, dim := range value.ArrayDimensions {
			if err := enc.WriteUInt32(dim); err != nil {
				return err
			}
		}
	}
	if mask&AttributeMaskAccessLevel != 0 {
		if err := enc.WriteByte(value.AccessLevel); err != nil {
			return err
		}
	}
	if mask&AttributeMaskUserAccessLevel != 0 {
		if err := enc.WriteByte(value.UserAccessLevel); err != nil {
			return err
		}
	}
	if mask&AttributeMaskMinimumSamplingInterval != 0 {
		if err := enc.WriteDouble(value.MinimumSamplingInterval); err != nil {
			return err
		}
	}
	if mask&AttributeMaskHistorizing != 0 {
		if err := enc.WriteBoolean(value.Historizing); err != nil {
			return err
		}
	}
	return nil
}

// Marshal encodes the value identified by id into a new byte slice, using a
// pooled scratch buffer for assembly.
func Marshal(id TypeID, value interface{}) ([]byte, error) {
	scratch := buffer.NewPartitionAt(bufferPool)
	defer scratch.Reset()
	enc := NewEncoder(scratch)
	if err := Types[id].Encode(enc, value); err != nil {
		return nil, err
	}
	out := make([]byte, scratch.Len())
	if _, err := io.ReadFull(scratch, out); err != nil {
		return nil, errors.Wrap(ErrEncoding, err.Error())
	}
	return out, nil
}

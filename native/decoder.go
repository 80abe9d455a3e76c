// Copyright 2024 The open62541pp Authors. All rights reserved.

package native

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"

	"github.com/pkg/errors"
)

// ErrDecoding is returned when a buffer cannot be decoded.
var ErrDecoding = errors.New("decoding error")

// the limit on the length of decoded strings and arrays.
const maxArrayLength = 16 * 1024 * 1024

// Decoder reads the binary representation of native values.
type Decoder struct {
	r  io.Reader
	bs [8]byte
}

// NewDecoder returns a new decoder that reads from an io.Reader.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// ReadBoolean reads a bool.
func (dec *Decoder) ReadBoolean(value *bool) error {
	if _, err := io.ReadFull(dec.r, dec.bs[:1]); err != nil {
		return ErrDecoding
	}
	*value = dec.bs[0] != 0
	return nil
}

// ReadByte reads a byte.
func (dec *Decoder) ReadByte(value *byte) error {
	if _, err := io.ReadFull(dec.r, dec.bs[:1]); err != nil {
		return ErrDecoding
	}
	*value = dec.bs[0]
	return nil
}

// ReadSByte reads an int8.
func (dec *Decoder) ReadSByte(value *int8) error {
	var b byte
	if err := dec.ReadByte(&b); err != nil {
		return err
	}
	*value = int8(b)
	return nil
}

// ReadUInt16 reads a uint16.
func (dec *Decoder) ReadUInt16(value *uint16) error {
	if _, err := io.ReadFull(dec.r, dec.bs[:2]); err != nil {
		return ErrDecoding
	}
	*value = binary.LittleEndian.Uint16(dec.bs[:2])
	return nil
}

// ReadInt16 reads an int16.
func (dec *Decoder) ReadInt16(value *int16) error {
	var v uint16
	if err := dec.ReadUInt16(&v); err != nil {
		return err
	}
	*value = int16(v)
	return nil
}

// ReadUInt32 reads a uint32.
func (dec *Decoder) ReadUInt32(value *uint32) error {
	if _, err := io.ReadFull(dec.r, dec.bs[:4]); err != nil {
		return ErrDecoding
	}
	*value = binary.LittleEndian.Uint32(dec.bs[:4])
	return nil
}

// ReadInt32 reads an int32.
func (dec *Decoder) ReadInt32(value *int32) error {
	var v uint32
	if err := dec.ReadUInt32(&v); err != nil {
		return err
	}
	*value = int32(v)
	return nil
}

// ReadUInt64 reads a uint64.
func (dec *Decoder) ReadUInt64(value *uint64) error {
	if _, err := io.ReadFull(dec.r, dec.bs[:8]); err != nil {
		return ErrDecoding
	}
	*value = binary.LittleEndian.Uint64(dec.bs[:8])
	return nil
}

// ReadInt64 reads an int64.
func (dec *Decoder) ReadInt64(value *int64) error {
	var v uint64
	if err := dec.ReadUInt64(&v); err != nil {
		return err
	}
	*value = int64(v)
	return nil
}

// ReadFloat reads a float32.
func (dec *Decoder) ReadFloat(value *float32) error {
	var v uint32
	if err := dec.ReadUInt32(&v); err != nil {
		return err
	}
	*value = math.Float32frombits(v)
	return nil
}

// ReadDouble reads a float64.
func (dec *Decoder) ReadDouble(value *float64) error {
	var v uint64
	if err := dec.ReadUInt64(&v); err != nil {
		return err
	}
	*value = math.Float64frombits(v)
	return nil
}

func (dec *Decoder) readBytes(data *[]byte) error {
	var num int32
	if err := dec.ReadInt32(&num); err != nil {
		return err
	}
	if num < 0 {
		*data = nil
		return nil
	}
	if num > maxArrayLength {
		return errors.Wrapf(ErrDecoding, "length %d exceeds limit", num)
	}
	bs := make([]byte, num)
	if _, err := io.ReadFull(dec.r, bs); err != nil {
		return ErrDecoding
	}
	*data = bs
	return nil
}

// ReadString reads a String.
func (dec *Decoder) ReadString(value *String) error {
	return dec.readBytes(&value.Data)
}

// ReadByteString reads a ByteString.
func (dec *Decoder) ReadByteString(value *ByteString) error {
	return dec.readBytes(&value.Data)
}

// ReadXMLElement reads an XMLElement.
func (dec *Decoder) ReadXMLElement(value *XMLElement) error {
	return dec.readBytes(&value.Data)
}

// ReadGuid reads a Guid.
func (dec *Decoder) ReadGuid(value *Guid) error {
	if err := dec.ReadUInt32(&value.Data1); err != nil {
		return err
	}
	if err := dec.ReadUInt16(&value.Data2); err != nil {
		return err
	}
	if err := dec.ReadUInt16(&value.Data3); err != nil {
		return err
	}
	if _, err := io.ReadFull(dec.r, value.Data4[:]); err != nil {
		return ErrDecoding
	}
	return nil
}

// ReadQualifiedName reads a QualifiedName.
func (dec *Decoder) ReadQualifiedName(value *QualifiedName) error {
	if err := dec.ReadUInt16(&value.NamespaceIndex); err != nil {
		return err
	}
	return dec.ReadString(&value.Name)
}

// ReadLocalizedText reads a LocalizedText.
func (dec *Decoder) ReadLocalizedText(value *LocalizedText) error {
	var mask byte
	if err := dec.ReadByte(&mask); err != nil {
		return err
	}
	value.Locale = String{}
	value.Text = String{}
	if mask&localizedTextLocale != 0 {
		if err := dec.ReadString(&value.Locale); err != nil {
			return err
		}
	}
	if mask&localizedTextText != 0 {
		if err := dec.ReadString(&value.Text); err != nil {
			return err
		}
	}
	return nil
}

// ReadNodeID reads a NodeID.
func (dec *Decoder) ReadNodeID(value *NodeID) error {
	var encoding byte
	if err := dec.ReadByte(&encoding); err != nil {
		return err
	}
	*value = NodeID{}
	switch encoding {
	case nodeIDEncodingTwoByte:
		var id byte
		if err := dec.ReadByte(&id); err != nil {
			return err
		}
		value.IDType = IDTypeNumeric
		value.Numeric = uint32(id)
		return nil
	case nodeIDEncodingFourByte:
		var ns byte
		if err := dec.ReadByte(&ns); err != nil {
			return err
		}
		var id uint16
		if err := dec.ReadUInt16(&id); err != nil {
			return err
		}
		value.NamespaceIndex = uint16(ns)
		value.IDType = IDTypeNumeric
		value.Numeric = uint32(id)
		return nil
	case nodeIDEncodingNumeric:
		if err := dec.ReadUInt16(&value.NamespaceIndex); err != nil {
			return err
		}
		value.IDType = IDTypeNumeric
		return dec.ReadUInt32(&value.Numeric)
	case nodeIDEncodingString:
		if err := dec.ReadUInt16(&value.NamespaceIndex); err != nil {
			return err
		}
		value.IDType = IDTypeString
		return dec.ReadString(&value.String)
	case nodeIDEncodingGuid:
		if err := dec.ReadUInt16(&value.NamespaceIndex); err != nil {
			return err
		}
		value.IDType = IDTypeGUID
		return dec.ReadGuid(&value.GUID)
	case nodeIDEncodingByteString:
		if err := dec.ReadUInt16(&value.NamespaceIndex); err != nil {
			return err
		}
		value.IDType = IDTypeOpaque
		return dec.ReadByteString(&value.Opaque)
	}
	return errors.Wrapf(ErrDecoding, "unknown node id encoding 0x%02X", encoding)
}

// ReadReadValueID reads a ReadValueID.
func (dec *Decoder) ReadReadValueID(value *ReadValueID) error {
	if err := dec.ReadNodeID(&value.NodeID); err != nil {
		return err
	}
	if err := dec.ReadUInt32(&value.AttributeID); err != nil {
		return err
	}
	if err := dec.ReadString(&value.IndexRange); err != nil {
		return err
	}
	return dec.ReadQualifiedName(&value.DataEncoding)
}

// ReadVariant reads a scalar Variant.
func (dec *Decoder) ReadVariant(value *Variant) error {
	var typeID byte
	if err := dec.ReadByte(&typeID); err != nil {
		return err
	}
	switch typeID {
	case variantTypeNull:
		*value = nil
		return nil
	case variantTypeBoolean:
		var v bool
		if err := dec.ReadBoolean(&v); err != nil {
			return err
		}
		*value = v
		return nil
	case variantTypeSByte:
		var v int8
		if err := dec.ReadSByte(&v); err != nil {
			return err
		}
		*value = v
		return nil
	case variantTypeByte:
		var v byte
		if err := dec.ReadByte(&v); err != nil {
			return err
		}
		*value = v
		return nil
	case variantTypeInt16:
		var v int16
		if err := dec.ReadInt16(&v); err != nil {
			return err
		}
		*value = v
		return nil
	case variantTypeUInt16:
		var v uint16
		if err := dec.ReadUInt16(&v); err != nil {
			return err
		}
		*value = v
		return nil
	case variantTypeInt32:
		var v int32
		if err := dec.ReadInt32(&v); err != nil {
			return err
		}
		*value = v
		return nil
	case variantTypeUInt32:
		var v uint32
		if err := dec.ReadUInt32(&v); err != nil {
			return err
		}
		*value = v
		return nil
	case variantTypeInt64:
		var v int64
		if err := dec.ReadInt64(&v); err != nil {
			return err
		}
		*value = v
		return nil
	case variantTypeUInt64:
		var v uint64
		if err := dec.ReadUInt64(&v); err != nil {
			return err
		}
		*value = v
		return nil
	case variantTypeFloat:
		var v float32
		if err := dec.ReadFloat(&v); err != nil {
			return err
		}
		*value = v
		return nil
	case variantTypeDouble:
		var v float64
		if err := dec.ReadDouble(&v); err != nil {
			return err
		}
		*value = v
		return nil
	case variantTypeString:
		var s String
		if err := dec.ReadString(&s); err != nil {
			return err
		}
		*value = string(s.Data)
		return nil
	}
	return errors.Wrapf(ErrDecoding, "unsupported variant type id %d", typeID)
}

// ReadNodeAttributes reads a NodeAttributes.
func (dec *Decoder) ReadNodeAttributes(value *NodeAttributes) error {
	*value = NodeAttributes{}
	if err := dec.ReadUInt32(&value.SpecifiedAttributes); err != nil {
		return err
	}
	return dec.readBaseAttributes(value.SpecifiedAttributes, &value.DisplayName, &value.Description, &value.WriteMask, &value.UserWriteMask)
}

func (dec *Decoder) readBaseAttributes(mask uint32, displayName, description *LocalizedText, writeMask, userWriteMask *uint32) error {
	if mask&AttributeMaskDisplayName != 0 {
		if err := dec.ReadLocalizedText(displayName); err != nil {
			return err
		}
	}
	if mask&AttributeMaskDescription != 0 {
		if err := dec.ReadLocalizedText(description); err != nil {
			return err
		}
	}
	if mask&AttributeMaskWriteMask != 0 {
		if err := dec.ReadUInt32(writeMask); err != nil {
			return err
		}
	}
	if mask&AttributeMaskUserWriteMask != 0 {
		if err := dec.ReadUInt32(userWriteMask); err != nil {
			return err
		}
	}
	return nil
}

// ReadObjectAttributes reads an ObjectAttributes.
func (dec *Decoder) ReadObjectAttributes(value *ObjectAttributes) error {
	*value = ObjectAttributes{}
	if err := dec.ReadUInt32(&value.SpecifiedAttributes); err != nil {
		return err
	}
	if err := dec.readBaseAttributes(value.SpecifiedAttributes, &value.DisplayName, &value.Description, &value.WriteMask, &value.UserWriteMask); err != nil {
		return err
	}
	if value.SpecifiedAttributes&AttributeMaskEventNotifier != 0 {
		return dec.ReadByte(&value.EventNotifier)
	}
	return nil
}

// ReadVariableAttributes reads a VariableAttributes.
func (dec *Decoder) ReadVariableAttributes(value *VariableAttributes) error {
	*value = VariableAttributes{}
	if err := dec.ReadUInt32(&value.SpecifiedAttributes); err != nil {
		return err
	}
	mask := value.SpecifiedAttributes
	if err := dec.readBaseAttributes(mask, &value.DisplayName, &value.Description, &value.WriteMask, &value.UserWriteMask); err != nil {
		return err
	}
	if mask&AttributeMaskValue != 0 {
		if err := dec.ReadVariant(&value.Value); err != nil {
			return err
		}
	}
	if mask&AttributeMaskDataType != 0 {
		if err := dec.ReadNodeID(&value.DataType); err != nil {
			return err
		}
	}
	if mask&AttributeMaskValueRank != 0 {
		if err := dec.ReadInt32(&value.ValueRank); err != nil {
			return err
		}
	}
	if mask&AttributeMaskArrayDimensions != 0 {
		var num int32
		if err := dec.ReadInt32(&num); err != nil {
			return err
		}
		if num < 0 {
			num = 0
		}
		if num > maxArrayLength {
			return errors.Wrapf(ErrDecoding, "length %d exceeds limit", num)
		}
		dims := make([]uint32, num)
		for i := range dims {
			if err := dec.ReadUInt32(&dims[i]); err != nil {
				return err
			}
		}
		value.ArrayDimensions = dims
	}
	if mask&AttributeMaskAccessLevel != 0 {
		if err := dec.ReadByte(&value.AccessLevel); err != nil {
			return err
		}
	}
	if mask&AttributeMaskUserAccessLevel != 0 {
		if err := dec.ReadByte(&value.UserAccessLevel); err != nil {
			return err
		}
	}
	if mask&AttributeMaskMinimumSamplingInterval != 0 {
		if err := dec.ReadDouble(&value.MinimumSamplingInterval); err != nil {
			return err
		}
	}
	if mask&AttributeMaskHistorizing != 0 {
		if err := dec.ReadBoolean(&value.Historizing); err != nil {
			return err
		}
	}
	return nil
}

// Unmarshal decodes data into the value identified by id.
func Unmarshal(id TypeID, data []byte, value interface{}) error {
	dec := NewDecoder(bytes.NewReader(data))
	return Types[id].Decode(dec, value)
}

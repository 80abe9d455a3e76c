// Copyright 2024 The open62541pp Authors. All rights reserved.

package ua

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	uuid "github.com/google/uuid"

	"github.com/umati/open62541pp/native"
)

// IDType is the variant tag of a NodeID identifier.
type IDType = native.IDType

// IDTypes
const (
	IDTypeNumeric = native.IDTypeNumeric
	IDTypeString  = native.IDTypeString
	IDTypeGUID    = native.IDTypeGUID
	IDTypeOpaque  = native.IDTypeOpaque
)

// NodeID wraps the native node identifier, a tagged union of numeric, string,
// guid and opaque identifiers.
type NodeID struct {
	Wrapper[native.NodeID]
}

// NewNodeIDNumeric constructs a new NodeID of numeric type.
func NewNodeIDNumeric(namespaceIndex uint16, identifier uint32) NodeID {
	return NodeID{AdoptWrapper(native.TypeIDNodeID, native.NodeID{
		NamespaceIndex: namespaceIndex,
		IDType:         native.IDTypeNumeric,
		Numeric:        identifier,
	})}
}

// NewNodeIDString constructs a new NodeID of string type.
func NewNodeIDString(namespaceIndex uint16, identifier string) NodeID {
	return NodeID{AdoptWrapper(native.TypeIDNodeID, native.NodeID{
		NamespaceIndex: namespaceIndex,
		IDType:         native.IDTypeString,
		String:         native.NewString(identifier),
	})}
}

// NewNodeIDGUID constructs a new NodeID of GUID type.
func NewNodeIDGUID(namespaceIndex uint16, identifier uuid.UUID) NodeID {
	g := NewGuidFromUUID(identifier)
	return NodeID{AdoptWrapper(native.TypeIDNodeID, native.NodeID{
		NamespaceIndex: namespaceIndex,
		IDType:         native.IDTypeGUID,
		GUID:           *g.Handle(),
	})}
}

// NewNodeIDOpaque constructs a new NodeID of opaque type.
func NewNodeIDOpaque(namespaceIndex uint16, identifier []byte) NodeID {
	return NodeID{AdoptWrapper(native.TypeIDNodeID, native.NodeID{
		NamespaceIndex: namespaceIndex,
		IDType:         native.IDTypeOpaque,
		Opaque:         native.NewByteString(identifier),
	})}
}

// NamespaceIndex returns the namespace index.
func (n NodeID) NamespaceIndex() uint16 {
	return n.val.NamespaceIndex
}

// IDType returns the identifier type.
func (n NodeID) IDType() IDType {
	return n.val.IDType
}

// Identifier returns the identifier of the selected variant.
func (n NodeID) Identifier() interface{} {
	switch n.val.IDType {
	case native.IDTypeNumeric:
		return n.val.Numeric
	case native.IDTypeString:
		return string(n.val.String.Data)
	case native.IDTypeGUID:
		return Guid{AdoptWrapper(native.TypeIDGuid, n.val.GUID)}.UUID()
	case native.IDTypeOpaque:
		return append([]byte(nil), n.val.Opaque.Data...)
	}
	return nil
}

// IsNil returns true if the NodeID is the nil value of its variant.
func (n NodeID) IsNil() bool {
	if n.val.NamespaceIndex > 0 {
		return false
	}
	switch n.val.IDType {
	case native.IDTypeNumeric:
		return n.val.Numeric == 0
	case native.IDTypeString:
		return len(n.val.String.Data) == 0
	case native.IDTypeGUID:
		return n.val.GUID == native.Guid{}
	case native.IDTypeOpaque:
		return len(n.val.Opaque.Data) == 0
	}
	return false
}

// Equal reports structural equality of the selected variants.
func (n NodeID) Equal(other NodeID) bool {
	return n.Wrapper.Equal(&other.Wrapper)
}

// ParseNodeID returns a NodeID from a string representation.
//   - ParseNodeID("i=85") // numeric, assumes ns=0
//   - ParseNodeID("ns=2;s=Demo.Static.Scalar.Float") // string
//   - ParseNodeID("ns=2;g=5ce9dbce-5d79-434c-9ac3-1cfba9a6e92c") // guid
//   - ParseNodeID("ns=2;b=YWJjZA==") // opaque byte string
func ParseNodeID(s string) NodeID {
	var ns uint64
	var err error
	if strings.HasPrefix(s, "ns=") {
		pos := strings.Index(s, ";")
		if pos == -1 {
			return NodeID{NewWrapper[native.NodeID](native.TypeIDNodeID)}
		}
		ns, err = strconv.ParseUint(s[3:pos], 10, 16)
		if err != nil {
			return NodeID{NewWrapper[native.NodeID](native.TypeIDNodeID)}
		}
		s = s[pos+1:]
	}
	switch {
	case strings.HasPrefix(s, "i="):
		id, err := strconv.ParseUint(s[2:], 10, 32)
		if err != nil {
			return NodeID{NewWrapper[native.NodeID](native.TypeIDNodeID)}
		}
		return NewNodeIDNumeric(uint16(ns), uint32(id))
	case strings.HasPrefix(s, "s="):
		return NewNodeIDString(uint16(ns), s[2:])
	case strings.HasPrefix(s, "g="):
		id, err := uuid.Parse(s[2:])
		if err != nil {
			return NodeID{NewWrapper[native.NodeID](native.TypeIDNodeID)}
		}
		return NewNodeIDGUID(uint16(ns), id)
	case strings.HasPrefix(s, "b="):
		id, err := base64.StdEncoding.DecodeString(s[2:])
		if err != nil {
			return NodeID{NewWrapper[native.NodeID](native.TypeIDNodeID)}
		}
		return NewNodeIDOpaque(uint16(ns), id)
	}
	return NodeID{NewWrapper[native.NodeID](native.TypeIDNodeID)}
}

// String returns a string representation of the NodeID, e.g. "ns=2;s=Demo".
func (n NodeID) String() string {
	var id string
	switch n.val.IDType {
	case native.IDTypeNumeric:
		id = fmt.Sprintf("i=%d", n.val.Numeric)
	case native.IDTypeString:
		id = fmt.Sprintf("s=%s", n.val.String.Data)
	case native.IDTypeGUID:
		id = fmt.Sprintf("g=%s", Guid{AdoptWrapper(native.TypeIDGuid, n.val.GUID)}.UUID())
	case native.IDTypeOpaque:
		id = fmt.Sprintf("b=%s", base64.StdEncoding.EncodeToString(n.val.Opaque.Data))
	default:
		return ""
	}
	if n.val.NamespaceIndex > 0 {
		return fmt.Sprintf("ns=%d;%s", n.val.NamespaceIndex, id)
	}
	return id
}

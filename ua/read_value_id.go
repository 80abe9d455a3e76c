// Copyright 2024 The open62541pp Authors. All rights reserved.

package ua

import (
	"github.com/umati/open62541pp/native"
)

// AttributeID identifies an attribute of a node.
type AttributeID uint32

// AttributeIDs
const (
	AttributeIDNodeID                  AttributeID = 1
	AttributeIDNodeClass               AttributeID = 2
	AttributeIDBrowseName              AttributeID = 3
	AttributeIDDisplayName             AttributeID = 4
	AttributeIDDescription             AttributeID = 5
	AttributeIDWriteMask               AttributeID = 6
	AttributeIDUserWriteMask           AttributeID = 7
	AttributeIDIsAbstract              AttributeID = 8
	AttributeIDSymmetric               AttributeID = 9
	AttributeIDInverseName             AttributeID = 10
	AttributeIDContainsNoLoops         AttributeID = 11
	AttributeIDEventNotifier           AttributeID = 12
	AttributeIDValue                   AttributeID = 13
	AttributeIDDataType                AttributeID = 14
	AttributeIDValueRank               AttributeID = 15
	AttributeIDArrayDimensions         AttributeID = 16
	AttributeIDAccessLevel             AttributeID = 17
	AttributeIDUserAccessLevel         AttributeID = 18
	AttributeIDMinimumSamplingInterval AttributeID = 19
	AttributeIDHistorizing             AttributeID = 20
	AttributeIDExecutable              AttributeID = 21
	AttributeIDUserExecutable          AttributeID = 22
)

// ReadValueID wraps the native read value id, selecting a node attribute to
// read or monitor.
type ReadValueID struct {
	Wrapper[native.ReadValueID]
}

// NewReadValueID constructs a ReadValueID from a node id and an attribute id.
func NewReadValueID(nodeID NodeID, attributeID AttributeID) ReadValueID {
	var inner native.ReadValueID
	native.Types[native.TypeIDNodeID].Copy(&inner.NodeID, nodeID.Handle())
	inner.AttributeID = uint32(attributeID)
	return ReadValueID{AdoptWrapper(native.TypeIDReadValueID, inner)}
}

// NodeID returns an owning copy of the node id.
func (r ReadValueID) NodeID() NodeID {
	var inner native.NodeID
	native.Types[native.TypeIDNodeID].Copy(&inner, &r.val.NodeID)
	return NodeID{AdoptWrapper(native.TypeIDNodeID, inner)}
}

// AttributeID returns the attribute id.
func (r ReadValueID) AttributeID() AttributeID {
	return AttributeID(r.val.AttributeID)
}

// IndexRange returns an owning copy of the index range.
func (r ReadValueID) IndexRange() string {
	return string(r.val.IndexRange.Data)
}

// DataEncoding returns an owning copy of the data encoding name.
func (r ReadValueID) DataEncoding() QualifiedName {
	var inner native.QualifiedName
	native.Types[native.TypeIDQualifiedName].Copy(&inner, &r.val.DataEncoding)
	return QualifiedName{AdoptWrapper(native.TypeIDQualifiedName, inner)}
}

// Equal reports structural equality.
func (r ReadValueID) Equal(other ReadValueID) bool {
	return r.Wrapper.Equal(&other.Wrapper)
}

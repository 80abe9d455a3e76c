// Copyright 2024 The open62541pp Authors. All rights reserved.

package ua

import (
	"github.com/umati/open62541pp/native"
)

// Attribute bits of the specified-attributes masks. The encoder serializes
// only the optional fields whose bit is set.
const (
	AttributeMaskNone                    = native.AttributeMaskNone
	AttributeMaskAccessLevel             = native.AttributeMaskAccessLevel
	AttributeMaskArrayDimensions         = native.AttributeMaskArrayDimensions
	AttributeMaskBrowseName              = native.AttributeMaskBrowseName
	AttributeMaskContainsNoLoops         = native.AttributeMaskContainsNoLoops
	AttributeMaskDataType                = native.AttributeMaskDataType
	AttributeMaskDescription             = native.AttributeMaskDescription
	AttributeMaskDisplayName             = native.AttributeMaskDisplayName
	AttributeMaskEventNotifier           = native.AttributeMaskEventNotifier
	AttributeMaskExecutable              = native.AttributeMaskExecutable
	AttributeMaskHistorizing             = native.AttributeMaskHistorizing
	AttributeMaskInverseName             = native.AttributeMaskInverseName
	AttributeMaskIsAbstract              = native.AttributeMaskIsAbstract
	AttributeMaskMinimumSamplingInterval = native.AttributeMaskMinimumSamplingInterval
	AttributeMaskNodeClass               = native.AttributeMaskNodeClass
	AttributeMaskNodeID                  = native.AttributeMaskNodeID
	AttributeMaskSymmetric               = native.AttributeMaskSymmetric
	AttributeMaskUserAccessLevel         = native.AttributeMaskUserAccessLevel
	AttributeMaskUserExecutable          = native.AttributeMaskUserExecutable
	AttributeMaskUserWriteMask           = native.AttributeMaskUserWriteMask
	AttributeMaskValueRank               = native.AttributeMaskValueRank
	AttributeMaskWriteMask               = native.AttributeMaskWriteMask
	AttributeMaskValue                   = native.AttributeMaskValue
)

// ValueRank constrains the dimensionality of a variable value.
type ValueRank int32

// ValueRanks
const (
	ValueRankScalarOrOneDimension ValueRank = -3
	ValueRankAny                  ValueRank = -2
	ValueRankScalar               ValueRank = -1
	ValueRankOneOrMoreDimensions  ValueRank = 0
	ValueRankOneDimension         ValueRank = 1
	ValueRankTwoDimensions        ValueRank = 2
	ValueRankThreeDimensions      ValueRank = 3
)

// NodeAttributes wraps the native base node attributes. Optional fields are
// meaningful only when set through the fluent setters, which also record the
// field in the specified-attributes mask.
type NodeAttributes struct {
	Wrapper[native.NodeAttributes]
}

// NewNodeAttributes constructs a NodeAttributes with no attribute specified.
func NewNodeAttributes() *NodeAttributes {
	return &NodeAttributes{NewWrapper[native.NodeAttributes](native.TypeIDNodeAttributes)}
}

// SpecifiedAttributes returns the mask of explicitly set attributes.
func (a *NodeAttributes) SpecifiedAttributes() uint32 {
	return a.val.SpecifiedAttributes
}

// SetDisplayName sets the display name attribute.
func (a *NodeAttributes) SetDisplayName(value LocalizedText) *NodeAttributes {
	setLocalizedText(&a.val.DisplayName, value)
	a.val.SpecifiedAttributes |= native.AttributeMaskDisplayName
	return a
}

// DisplayName returns an owning copy of the display name attribute.
func (a *NodeAttributes) DisplayName() LocalizedText {
	return copyLocalizedText(&a.val.DisplayName)
}

// SetDescription sets the description attribute.
func (a *NodeAttributes) SetDescription(value LocalizedText) *NodeAttributes {
	setLocalizedText(&a.val.Description, value)
	a.val.SpecifiedAttributes |= native.AttributeMaskDescription
	return a
}

// Description returns an owning copy of the description attribute.
func (a *NodeAttributes) Description() LocalizedText {
	return copyLocalizedText(&a.val.Description)
}

// SetWriteMask sets the write mask attribute.
func (a *NodeAttributes) SetWriteMask(value uint32) *NodeAttributes {
	a.val.WriteMask = value
	a.val.SpecifiedAttributes |= native.AttributeMaskWriteMask
	return a
}

// WriteMask returns the write mask attribute.
func (a *NodeAttributes) WriteMask() uint32 {
	return a.val.WriteMask
}

// SetUserWriteMask sets the user write mask attribute.
func (a *NodeAttributes) SetUserWriteMask(value uint32) *NodeAttributes {
	a.val.UserWriteMask = value
	a.val.SpecifiedAttributes |= native.AttributeMaskUserWriteMask
	return a
}

// UserWriteMask returns the user write mask attribute.
func (a *NodeAttributes) UserWriteMask() uint32 {
	return a.val.UserWriteMask
}

// ObjectAttributes wraps the native object node attributes.
type ObjectAttributes struct {
	Wrapper[native.ObjectAttributes]
}

// NewObjectAttributes constructs an ObjectAttributes with no attribute
// specified.
func NewObjectAttributes() *ObjectAttributes {
	return &ObjectAttributes{NewWrapper[native.ObjectAttributes](native.TypeIDObjectAttributes)}
}

// SpecifiedAttributes returns the mask of explicitly set attributes.
func (a *ObjectAttributes) SpecifiedAttributes() uint32 {
	return a.val.SpecifiedAttributes
}

// SetDisplayName sets the display name attribute.
func (a *ObjectAttributes) SetDisplayName(value LocalizedText) *ObjectAttributes {
	setLocalizedText(&a.val.DisplayName, value)
	a.val.SpecifiedAttributes |= native.AttributeMaskDisplayName
	return a
}

// DisplayName returns an owning copy of the display name attribute.
func (a *ObjectAttributes) DisplayName() LocalizedText {
	return copyLocalizedText(&a.val.DisplayName)
}

// SetDescription sets the description attribute.
func (a *ObjectAttributes) SetDescription(value LocalizedText) *ObjectAttributes {
	setLocalizedText(&a.val.Description, value)
	a.val.SpecifiedAttributes |= native.AttributeMaskDescription
	return a
}

// Description returns an owning copy of the description attribute.
func (a *ObjectAttributes) Description() LocalizedText {
	return copyLocalizedText(&a.val.Description)
}

// SetWriteMask sets the write mask attribute.
func (a *ObjectAttributes) SetWriteMask(value uint32) *ObjectAttributes {
	a.val.WriteMask = value
	a.val.SpecifiedAttributes |= native.AttributeMaskWriteMask
	return a
}

// WriteMask returns the write mask attribute.
func (a *ObjectAttributes) WriteMask() uint32 {
	return a.val.WriteMask
}

// SetUserWriteMask sets the user write mask attribute.
func (a *ObjectAttributes) SetUserWriteMask(value uint32) *ObjectAttributes {
	a.val.UserWriteMask = value
	a.val.SpecifiedAttributes |= native.AttributeMaskUserWriteMask
	return a
}

// UserWriteMask returns the user write mask attribute.
func (a *ObjectAttributes) UserWriteMask() uint32 {
	return a.val.UserWriteMask
}

// SetEventNotifier sets the event notifier attribute.
func (a *ObjectAttributes) SetEventNotifier(value byte) *ObjectAttributes {
	a.val.EventNotifier = value
	a.val.SpecifiedAttributes |= native.AttributeMaskEventNotifier
	return a
}

// EventNotifier returns the event notifier attribute.
func (a *ObjectAttributes) EventNotifier() byte {
	return a.val.EventNotifier
}

// VariableAttributes wraps the native variable node attributes.
type VariableAttributes struct {
	Wrapper[native.VariableAttributes]
}

// NewVariableAttributes constructs a VariableAttributes with no attribute
// specified.
func NewVariableAttributes() *VariableAttributes {
	return &VariableAttributes{NewWrapper[native.VariableAttributes](native.TypeIDVariableAttributes)}
}

// SpecifiedAttributes returns the mask of explicitly set attributes.
func (a *VariableAttributes) SpecifiedAttributes() uint32 {
	return a.val.SpecifiedAttributes
}

// SetDisplayName sets the display name attribute.
func (a *VariableAttributes) SetDisplayName(value LocalizedText) *VariableAttributes {
	setLocalizedText(&a.val.DisplayName, value)
	a.val.SpecifiedAttributes |= native.AttributeMaskDisplayName
	return a
}

// DisplayName returns an owning copy of the display name attribute.
func (a *VariableAttributes) DisplayName() LocalizedText {
	return copyLocalizedText(&a.val.DisplayName)
}

// SetDescription sets the description attribute.
func (a *VariableAttributes) SetDescription(value LocalizedText) *VariableAttributes {
	setLocalizedText(&a.val.Description, value)
	a.val.SpecifiedAttributes |= native.AttributeMaskDescription
	return a
}

// Description returns an owning copy of the description attribute.
func (a *VariableAttributes) Description() LocalizedText {
	return copyLocalizedText(&a.val.Description)
}

// SetWriteMask sets the write mask attribute.
func (a *VariableAttributes) SetWriteMask(value uint32) *VariableAttributes {
	a.val.WriteMask = value
	a.val.SpecifiedAttributes |= native.AttributeMaskWriteMask
	return a
}

// WriteMask returns the write mask attribute.
func (a *VariableAttributes) WriteMask() uint32 {
	return a.val.WriteMask
}

// SetUserWriteMask sets the user write mask attribute.
func (a *VariableAttributes) SetUserWriteMask(value uint32) *VariableAttributes {
	a.val.UserWriteMask = value
	a.val.SpecifiedAttributes |= native.AttributeMaskUserWriteMask
	return a
}

// UserWriteMask returns the user write mask attribute.
func (a *VariableAttributes) UserWriteMask() uint32 {
	return a.val.UserWriteMask
}

// SetValue sets the value attribute.
func (a *VariableAttributes) SetValue(value Variant) *VariableAttributes {
	a.val.Value = value
	a.val.SpecifiedAttributes |= native.AttributeMaskValue
	return a
}

// Value returns the value attribute.
func (a *VariableAttributes) Value() Variant {
	return a.val.Value
}

// SetDataType sets the data type attribute.
func (a *VariableAttributes) SetDataType(value NodeID) *VariableAttributes {
	native.Types[native.TypeIDNodeID].Clear(&a.val.DataType)
	native.Types[native.TypeIDNodeID].Copy(&a.val.DataType, value.Handle())
	a.val.SpecifiedAttributes |= native.AttributeMaskDataType
	return a
}

// DataType returns an owning copy of the data type attribute.
func (a *VariableAttributes) DataType() NodeID {
	var inner native.NodeID
	native.Types[native.TypeIDNodeID].Copy(&inner, &a.val.DataType)
	return NodeID{AdoptWrapper(native.TypeIDNodeID, inner)}
}

// SetValueRank sets the value rank attribute.
func (a *VariableAttributes) SetValueRank(value ValueRank) *VariableAttributes {
	a.val.ValueRank = int32(value)
	a.val.SpecifiedAttributes |= native.AttributeMaskValueRank
	return a
}

// ValueRank returns the value rank attribute.
func (a *VariableAttributes) ValueRank() ValueRank {
	return ValueRank(a.val.ValueRank)
}

// SetArrayDimensions sets the array dimensions attribute. The previous
// dimensions are released before the new ones are stored; setting the
// attribute twice keeps a single mask bit set.
func (a *VariableAttributes) SetArrayDimensions(value []uint32) *VariableAttributes {
	a.val.ArrayDimensions = nil
	if value != nil {
		dims := make([]uint32, len(value))
		copy(dims, value)
		a.val.ArrayDimensions = dims
	}
	a.val.SpecifiedAttributes |= native.AttributeMaskArrayDimensions
	return a
}

// ArrayDimensions returns the array dimensions without copying, valid only
// while the wrapper is alive and unmodified.
func (a *VariableAttributes) ArrayDimensions() []uint32 {
	return a.val.ArrayDimensions
}

// SetAccessLevel sets the access level attribute.
func (a *VariableAttributes) SetAccessLevel(value byte) *VariableAttributes {
	a.val.AccessLevel = value
	a.val.SpecifiedAttributes |= native.AttributeMaskAccessLevel
	return a
}

// AccessLevel returns the access level attribute.
func (a *VariableAttributes) AccessLevel() byte {
	return a.val.AccessLevel
}

// SetMinimumSamplingInterval sets the minimum sampling interval attribute in
// milliseconds.
func (a *VariableAttributes) SetMinimumSamplingInterval(value float64) *VariableAttributes {
	a.val.MinimumSamplingInterval = value
	a.val.SpecifiedAttributes |= native.AttributeMaskMinimumSamplingInterval
	return a
}

// MinimumSamplingInterval returns the minimum sampling interval attribute.
func (a *VariableAttributes) MinimumSamplingInterval() float64 {
	return a.val.MinimumSamplingInterval
}

// SetHistorizing sets the historizing attribute.
func (a *VariableAttributes) SetHistorizing(value bool) *VariableAttributes {
	a.val.Historizing = value
	a.val.SpecifiedAttributes |= native.AttributeMaskHistorizing
	return a
}

// Historizing returns the historizing attribute.
func (a *VariableAttributes) Historizing() bool {
	return a.val.Historizing
}

// setLocalizedText releases the previous content of dst and stores a deep
// copy of value.
func setLocalizedText(dst *native.LocalizedText, value LocalizedText) {
	native.Types[native.TypeIDLocalizedText].Clear(dst)
	native.Types[native.TypeIDLocalizedText].Copy(dst, value.Handle())
}

// copyLocalizedText returns an owning copy of src.
func copyLocalizedText(src *native.LocalizedText) LocalizedText {
	var inner native.LocalizedText
	native.Types[native.TypeIDLocalizedText].Copy(&inner, src)
	return LocalizedText{AdoptWrapper(native.TypeIDLocalizedText, inner)}
}

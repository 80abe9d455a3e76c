// Copyright 2024 The open62541pp Authors. All rights reserved.

package server

import (
	"sync"
	"time"

	"github.com/umati/open62541pp/ua"
)

// access level bits of a variable node
const (
	AccessLevelCurrentRead  byte = 0x01
	AccessLevelCurrentWrite byte = 0x02
)

// VariableNode is a node holding a value in the namespace.
type VariableNode struct {
	nodeID                  ua.NodeID
	browseName              ua.QualifiedName
	displayName             ua.LocalizedText
	description             ua.LocalizedText
	writeMask               uint32
	userWriteMask           uint32
	dataType                ua.NodeID
	valueRank               ua.ValueRank
	arrayDimensions         []uint32
	accessLevel             byte
	minimumSamplingInterval float64
	historizing             bool
	value                   ua.DataValue
}

// NodeID returns an owning copy of the node id.
func (n *VariableNode) NodeID() ua.NodeID {
	return n.nodeID.Clone()
}

// BrowseName returns an owning copy of the browse name.
func (n *VariableNode) BrowseName() ua.QualifiedName {
	return n.browseName.Clone()
}

// DisplayName returns an owning copy of the display name.
func (n *VariableNode) DisplayName() ua.LocalizedText {
	return n.displayName.Clone()
}

// AccessLevel returns the access level.
func (n *VariableNode) AccessLevel() byte {
	return n.accessLevel
}

// Namespace holds the variable nodes of a server and serves attribute reads
// and writes.
type Namespace struct {
	sync.RWMutex
	srv      *Server
	nodes    map[string]*VariableNode
	monitors map[string][]*MonitoredItem
}

// NewNamespace initializes a new instance of the Namespace.
func NewNamespace(srv *Server) *Namespace {
	return &Namespace{
		srv:      srv,
		nodes:    make(map[string]*VariableNode),
		monitors: make(map[string][]*MonitoredItem),
	}
}

// AddVariableNode adds a variable node to the namespace. Only the attribute
// fields recorded in the specified-attributes mask of attributes are
// applied, the remaining fields keep their defaults. Until the first write
// the value quality is UncertainInitialValue, unless the value attribute is
// specified.
func (ns *Namespace) AddVariableNode(nodeID ua.NodeID, browseName ua.QualifiedName, attributes *ua.VariableAttributes) ua.VoidResult {
	if nodeID.IsNil() {
		return ua.NewVoidResultBad(ua.NewBadResult(ua.BadNodeIDInvalid))
	}
	key := nodeID.String()
	ns.Lock()
	defer ns.Unlock()
	if _, ok := ns.nodes[key]; ok {
		return ua.NewVoidResultBad(ua.NewBadResult(ua.BadNodeIDExists))
	}
	now := time.Now()
	n := &VariableNode{
		nodeID:      nodeID.Clone(),
		browseName:  browseName.Clone(),
		valueRank:   ua.ValueRankAny,
		accessLevel: AccessLevelCurrentRead | AccessLevelCurrentWrite,
		value:       ua.NewDataValue(nil, ua.UncertainInitialValue, now, now),
	}
	if attributes != nil {
		mask := attributes.SpecifiedAttributes()
		if mask&ua.AttributeMaskDisplayName != 0 {
			n.displayName = attributes.DisplayName()
		}
		if mask&ua.AttributeMaskDescription != 0 {
			n.description = attributes.Description()
		}
		if mask&ua.AttributeMaskWriteMask != 0 {
			n.writeMask = attributes.WriteMask()
		}
		if mask&ua.AttributeMaskUserWriteMask != 0 {
			n.userWriteMask = attributes.UserWriteMask()
		}
		if mask&ua.AttributeMaskDataType != 0 {
			n.dataType = attributes.DataType()
		}
		if mask&ua.AttributeMaskValueRank != 0 {
			n.valueRank = attributes.ValueRank()
		}
		if mask&ua.AttributeMaskArrayDimensions != 0 {
			dims := attributes.ArrayDimensions()
			n.arrayDimensions = make([]uint32, len(dims))
			copy(n.arrayDimensions, dims)
		}
		if mask&ua.AttributeMaskAccessLevel != 0 {
			n.accessLevel = attributes.AccessLevel()
		}
		if mask&ua.AttributeMaskMinimumSamplingInterval != 0 {
			n.minimumSamplingInterval = attributes.MinimumSamplingInterval()
		}
		if mask&ua.AttributeMaskHistorizing != 0 {
			n.historizing = attributes.Historizing()
		}
		if mask&ua.AttributeMaskValue != 0 {
			n.value = ua.NewDataValue(attributes.Value(), ua.Good, now, now)
		}
	}
	ns.nodes[key] = n
	ua.Log(ns.srv.logger, ua.LogLevelDebug, ua.LogCategoryServer, "added variable node %s", key)
	return ua.NewVoidResult(ua.Good)
}

// FindVariable finds the variable node with the given node id.
func (ns *Namespace) FindVariable(nodeID ua.NodeID) (*VariableNode, bool) {
	ns.RLock()
	defer ns.RUnlock()
	n, ok := ns.nodes[nodeID.String()]
	return n, ok
}

// Read returns the value of the requested attribute of the requested node.
func (ns *Namespace) Read(readValueID ua.ReadValueID) ua.Result[ua.DataValue] {
	if readValueID.IndexRange() != "" {
		return ua.NewResultBad[ua.DataValue](ua.NewBadResult(ua.BadIndexRangeInvalid))
	}
	nodeID := readValueID.NodeID()
	ns.RLock()
	defer ns.RUnlock()
	n, ok := ns.nodes[nodeID.String()]
	if !ok {
		return ua.NewResultBad[ua.DataValue](ua.NewBadResult(ua.BadNodeIDUnknown))
	}
	now := time.Now()
	var value ua.Variant
	switch readValueID.AttributeID() {
	case ua.AttributeIDNodeID:
		value = n.nodeID.Clone()
	case ua.AttributeIDBrowseName:
		value = n.browseName.Clone()
	case ua.AttributeIDDisplayName:
		value = n.displayName.Clone()
	case ua.AttributeIDDescription:
		value = n.description.Clone()
	case ua.AttributeIDWriteMask:
		value = n.writeMask
	case ua.AttributeIDUserWriteMask:
		value = n.userWriteMask
	case ua.AttributeIDDataType:
		value = n.dataType.Clone()
	case ua.AttributeIDValueRank:
		value = int32(n.valueRank)
	case ua.AttributeIDArrayDimensions:
		dims := make([]uint32, len(n.arrayDimensions))
		copy(dims, n.arrayDimensions)
		value = dims
	case ua.AttributeIDAccessLevel, ua.AttributeIDUserAccessLevel:
		value = n.accessLevel
	case ua.AttributeIDMinimumSamplingInterval:
		value = n.minimumSamplingInterval
	case ua.AttributeIDHistorizing:
		value = n.historizing
	case ua.AttributeIDValue:
		if n.accessLevel&AccessLevelCurrentRead == 0 {
			return ua.NewResultBad[ua.DataValue](ua.NewBadResult(ua.BadNotReadable))
		}
		dv := n.value
		dv.ServerTimestamp = now
		if dv.StatusCode.IsBad() {
			return ua.NewResultBad[ua.DataValue](ua.NewBadResult(dv.StatusCode))
		}
		return ua.NewResultWithStatus(dv.StatusCode, dv)
	default:
		return ua.NewResultBad[ua.DataValue](ua.NewBadResult(ua.BadAttributeIDInvalid))
	}
	return ua.NewResult(ua.NewDataValue(value, ua.Good, now, now))
}

// Write stores the given value as the value attribute of the requested node
// and notifies the monitoring items.
func (ns *Namespace) Write(nodeID ua.NodeID, attributeID ua.AttributeID, value ua.DataValue) ua.VoidResult {
	key := nodeID.String()
	ns.Lock()
	n, ok := ns.nodes[key]
	if !ok {
		ns.Unlock()
		return ua.NewVoidResultBad(ua.NewBadResult(ua.BadNodeIDUnknown))
	}
	if attributeID != ua.AttributeIDValue {
		ns.Unlock()
		return ua.NewVoidResultBad(ua.NewBadResult(ua.BadNotWritable))
	}
	if n.accessLevel&AccessLevelCurrentWrite == 0 {
		ns.Unlock()
		return ua.NewVoidResultBad(ua.NewBadResult(ua.BadNotWritable))
	}
	now := time.Now()
	if value.SourceTimestamp.IsZero() {
		value.SourceTimestamp = now
	}
	value.ServerTimestamp = now
	n.value = value
	items := make([]*MonitoredItem, len(ns.monitors[key]))
	copy(items, ns.monitors[key])
	ns.Unlock()
	for _, mi := range items {
		mi.enqueue(value)
	}
	return ua.NewVoidResult(ua.Good)
}

// subscribe registers a monitored item for data changes of the node and
// queues the current value as initial notification.
func (ns *Namespace) subscribe(mi *MonitoredItem) {
	key := mi.nodeKey
	ns.Lock()
	ns.monitors[key] = append(ns.monitors[key], mi)
	n, ok := ns.nodes[key]
	var initial ua.DataValue
	if ok {
		initial = n.value
	}
	ns.Unlock()
	if ok {
		mi.enqueue(initial)
	}
}

// unsubscribe removes a monitored item from the node.
func (ns *Namespace) unsubscribe(mi *MonitoredItem) {
	key := mi.nodeKey
	ns.Lock()
	defer ns.Unlock()
	items := ns.monitors[key]
	for i, m := range items {
		if m == mi {
			ns.monitors[key] = append(items[:i], items[i+1:]...)
			break
		}
	}
	if len(ns.monitors[key]) == 0 {
		delete(ns.monitors, key)
	}
}

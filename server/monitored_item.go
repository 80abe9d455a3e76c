// Copyright 2024 The open62541pp Authors. All rights reserved.

package server

import (
	"sync"

	deque "github.com/gammazero/deque"

	"github.com/umati/open62541pp/ua"
)

const (
	// the minimum sampling interval in ms.
	minSamplingInterval float64 = 100.0
	// the maximum number of queued notifications per item.
	maxQueueSize uint32 = 1024
)

// MonitoringParameters control the notification queue of a monitored item.
type MonitoringParameters struct {
	ClientHandle     uint32
	SamplingInterval float64
	QueueSize        uint32
	DiscardOldest    bool
}

// MonitoredItem queues the data changes of a node attribute until they are
// published by the subscription.
type MonitoredItem struct {
	sync.RWMutex
	id               uint32
	sub              *Subscription
	itemToMonitor    ua.ReadValueID
	nodeKey          string
	clientHandle     uint32
	samplingInterval float64
	queueSize        uint32
	discardOldest    bool
	queue            deque.Deque[ua.DataValue]
}

func newMonitoredItem(sub *Subscription, id uint32, itemToMonitor ua.ReadValueID, params MonitoringParameters) *MonitoredItem {
	mi := &MonitoredItem{
		id:            id,
		sub:           sub,
		itemToMonitor: itemToMonitor.Clone(),
		nodeKey:       itemToMonitor.NodeID().String(),
		clientHandle:  params.ClientHandle,
		discardOldest: params.DiscardOldest,
		queue:         deque.Deque[ua.DataValue]{},
	}
	mi.setQueueSize(params.QueueSize)
	mi.setSamplingInterval(params.SamplingInterval)
	return mi
}

// ID returns the identifier of the MonitoredItem.
func (mi *MonitoredItem) ID() uint32 {
	return mi.id
}

// ClientHandle returns the client handle of the MonitoredItem.
func (mi *MonitoredItem) ClientHandle() uint32 {
	return mi.clientHandle
}

// ItemToMonitor returns an owning copy of the read value id of the
// MonitoredItem.
func (mi *MonitoredItem) ItemToMonitor() ua.ReadValueID {
	return mi.itemToMonitor.Clone()
}

// SamplingInterval returns the revised sampling interval in ms of the
// MonitoredItem.
func (mi *MonitoredItem) SamplingInterval() float64 {
	mi.RLock()
	defer mi.RUnlock()
	return mi.samplingInterval
}

// QueueSize returns the revised queue size of the MonitoredItem.
func (mi *MonitoredItem) QueueSize() uint32 {
	mi.RLock()
	defer mi.RUnlock()
	return mi.queueSize
}

// QueueLen returns the number of queued notifications.
func (mi *MonitoredItem) QueueLen() int {
	mi.RLock()
	defer mi.RUnlock()
	return mi.queue.Len()
}

func (mi *MonitoredItem) setQueueSize(queueSize uint32) {
	if queueSize > maxQueueSize {
		queueSize = maxQueueSize
	}
	if queueSize < 1 {
		queueSize = 1
	}
	mi.queueSize = queueSize
}

func (mi *MonitoredItem) setSamplingInterval(samplingInterval float64) {
	if samplingInterval < 0 {
		samplingInterval = minSamplingInterval
	}
	mi.samplingInterval = samplingInterval
}

// enqueue appends a data change notification, trimming the queue to the
// queue size first. On overflow the boundary value that stays queued
// carries the overflow info bits in its status code. A queue of size one
// holds the latest value without overflow marking.
func (mi *MonitoredItem) enqueue(value ua.DataValue) {
	mi.Lock()
	defer mi.Unlock()
	overflow := false
	if mi.discardOldest {
		for mi.queue.Len() >= int(mi.queueSize) {
			mi.queue.PopFront() // discard oldest
			overflow = true
		}
		mi.queue.PushBack(value)
		if overflow && mi.queueSize > 1 {
			mi.queue.Set(0, mi.queue.Front().WithOverflowBit())
		}
	} else {
		for mi.queue.Len() >= int(mi.queueSize) {
			mi.queue.PopBack() // discard newest
			overflow = true
		}
		mi.queue.PushBack(value)
		if overflow && mi.queueSize > 1 {
			mi.queue.Set(mi.queue.Len()-1, mi.queue.Back().WithOverflowBit())
		}
	}
}

// Notifications drains the queue in order of arrival.
func (mi *MonitoredItem) Notifications() []ua.DataValue {
	mi.Lock()
	defer mi.Unlock()
	if mi.queue.Len() == 0 {
		return nil
	}
	values := make([]ua.DataValue, 0, mi.queue.Len())
	for mi.queue.Len() > 0 {
		values = append(values, mi.queue.PopFront())
	}
	return values
}

func (mi *MonitoredItem) delete() {
	mi.Lock()
	defer mi.Unlock()
	mi.queue.Clear()
	mi.itemToMonitor.Clear()
}

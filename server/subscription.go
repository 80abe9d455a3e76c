// Copyright 2024 The open62541pp Authors. All rights reserved.

package server

import (
	"sync"

	"github.com/umati/open62541pp/ua"
)

// Subscription groups monitored items and publishes their queued
// notifications.
type Subscription struct {
	sync.Mutex
	id                 uint32
	srv                *Server
	publishingInterval float64
	lastItemID         uint32
	items              map[uint32]*MonitoredItem
}

func newSubscription(srv *Server, id uint32, publishingInterval float64) *Subscription {
	return &Subscription{
		id:                 id,
		srv:                srv,
		publishingInterval: publishingInterval,
		items:              make(map[uint32]*MonitoredItem),
	}
}

// ID returns the identifier of the Subscription.
func (sub *Subscription) ID() uint32 {
	return sub.id
}

// PublishingInterval returns the publishing interval in ms of the
// Subscription. Zero selects on demand publishing.
func (sub *Subscription) PublishingInterval() float64 {
	return sub.publishingInterval
}

// CreateMonitoredItem creates a monitored item for the value attribute of a
// variable node. The current value of the node is queued as the initial
// notification.
func (sub *Subscription) CreateMonitoredItem(itemToMonitor ua.ReadValueID, params MonitoringParameters) ua.Result[*MonitoredItem] {
	if itemToMonitor.AttributeID() != ua.AttributeIDValue {
		return ua.NewResultBad[*MonitoredItem](ua.NewBadResult(ua.BadAttributeIDInvalid))
	}
	if _, ok := sub.srv.Namespace().FindVariable(itemToMonitor.NodeID()); !ok {
		return ua.NewResultBad[*MonitoredItem](ua.NewBadResult(ua.BadNodeIDUnknown))
	}
	sub.Lock()
	sub.lastItemID++
	mi := newMonitoredItem(sub, sub.lastItemID, itemToMonitor, params)
	sub.items[mi.ID()] = mi
	sub.Unlock()
	sub.srv.Namespace().subscribe(mi)
	ua.Log(sub.srv.logger, ua.LogLevelDebug, ua.LogCategoryServer, "subscription %d monitors %s", sub.id, mi.nodeKey)
	return ua.NewResult(mi)
}

// MonitoredItem finds the monitored item with the given id.
func (sub *Subscription) MonitoredItem(id uint32) ua.Result[*MonitoredItem] {
	sub.Lock()
	defer sub.Unlock()
	mi, ok := sub.items[id]
	if !ok {
		return ua.NewResultBad[*MonitoredItem](ua.NewBadResult(ua.BadMonitoredItemIDInvalid))
	}
	return ua.NewResult(mi)
}

// DeleteMonitoredItem deletes the monitored item with the given id.
func (sub *Subscription) DeleteMonitoredItem(id uint32) ua.VoidResult {
	sub.Lock()
	mi, ok := sub.items[id]
	if !ok {
		sub.Unlock()
		return ua.NewVoidResultBad(ua.NewBadResult(ua.BadMonitoredItemIDInvalid))
	}
	delete(sub.items, id)
	sub.Unlock()
	sub.srv.Namespace().unsubscribe(mi)
	mi.delete()
	return ua.NewVoidResult(ua.Good)
}

// Publish drains the notification queues of the monitored items and
// dispatches each notification to the callback on the worker pool of the
// server. Publish returns the number of dispatched notifications.
func (sub *Subscription) Publish(callback func(clientHandle uint32, value ua.DataValue)) int {
	sub.Lock()
	items := make([]*MonitoredItem, 0, len(sub.items))
	for _, mi := range sub.items {
		items = append(items, mi)
	}
	sub.Unlock()
	wp := sub.srv.WorkerPool()
	count := 0
	for _, mi := range items {
		handle := mi.ClientHandle()
		for _, value := range mi.Notifications() {
			value := value
			wp.Submit(func() {
				callback(handle, value)
			})
			count++
		}
	}
	return count
}

func (sub *Subscription) delete() {
	sub.Lock()
	items := make([]*MonitoredItem, 0, len(sub.items))
	for id, mi := range sub.items {
		items = append(items, mi)
		delete(sub.items, id)
	}
	sub.Unlock()
	for _, mi := range items {
		sub.srv.Namespace().unsubscribe(mi)
		mi.delete()
	}
}

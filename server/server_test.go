// Copyright 2024 The open62541pp Authors. All rights reserved.

package server_test

import (
	"sync"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gotest.tools/assert"

	"github.com/umati/open62541pp/server"
	"github.com/umati/open62541pp/ua"
)

func newTestServer(t *testing.T, options ...server.Option) *server.Server {
	t.Helper()
	srv, err := server.New("urn:testserver", "opc.tcp://localhost:4840", options...)
	assert.NilError(t, err)
	t.Cleanup(func() { srv.Close() })
	return srv
}

func addTestVariable(t *testing.T, srv *server.Server, nodeID ua.NodeID, attributes *ua.VariableAttributes) {
	t.Helper()
	res := srv.Namespace().AddVariableNode(nodeID, ua.NewQualifiedName(2, "Test"), attributes)
	assert.NilError(t, res.Err())
}

func TestNamespaceReadWrite(t *testing.T) {
	srv := newTestServer(t)
	nodeID := ua.NewNodeIDString(2, "Demo.Temperature")
	attrs := ua.NewVariableAttributes().
		SetDisplayName(ua.NewLocalizedText("Temperature", "en")).
		SetValue(21.5)
	addTestVariable(t, srv, nodeID, attrs)

	res := srv.Namespace().Read(ua.NewReadValueID(nodeID, ua.AttributeIDValue))
	dv, err := res.Value()
	assert.NilError(t, err)
	assert.Equal(t, dv.Value, 21.5)
	assert.Equal(t, dv.StatusCode, ua.Good)

	wres := srv.Namespace().Write(nodeID, ua.AttributeIDValue, ua.DataValue{Value: 22.0, StatusCode: ua.Good})
	assert.NilError(t, wres.Err())

	res = srv.Namespace().Read(ua.NewReadValueID(nodeID, ua.AttributeIDValue))
	dv, err = res.Value()
	assert.NilError(t, err)
	assert.Equal(t, dv.Value, 22.0)
}

func TestReadNonValueAttributes(t *testing.T) {
	srv := newTestServer(t)
	nodeID := ua.NewNodeIDString(2, "Demo")
	attrs := ua.NewVariableAttributes().
		SetDisplayName(ua.NewLocalizedText("Demo", "en")).
		SetValueRank(ua.ValueRankScalar).
		SetAccessLevel(server.AccessLevelCurrentRead)
	addTestVariable(t, srv, nodeID, attrs)

	res := srv.Namespace().Read(ua.NewReadValueID(nodeID, ua.AttributeIDDisplayName))
	dv, err := res.Value()
	assert.NilError(t, err)
	name, ok := dv.Value.(ua.LocalizedText)
	assert.Equal(t, ok, true)
	assert.Equal(t, name.Text(), "Demo")

	res = srv.Namespace().Read(ua.NewReadValueID(nodeID, ua.AttributeIDValueRank))
	dv, err = res.Value()
	assert.NilError(t, err)
	assert.Equal(t, dv.Value, int32(ua.ValueRankScalar))

	res = srv.Namespace().Read(ua.NewReadValueID(nodeID, ua.AttributeIDBrowseName))
	dv, err = res.Value()
	assert.NilError(t, err)
	bn, ok := dv.Value.(ua.QualifiedName)
	assert.Equal(t, ok, true)
	assert.Equal(t, bn.String(), "2:Test")
}

func TestReadUnknownNode(t *testing.T) {
	srv := newTestServer(t)
	res := srv.Namespace().Read(ua.NewReadValueID(ua.NewNodeIDString(2, "nope"), ua.AttributeIDValue))
	assert.Equal(t, res.Code(), ua.BadNodeIDUnknown)
	assert.Equal(t, res.HasValue(), false)
	dv, err := res.Value()
	assert.Equal(t, err, error(ua.BadNodeIDUnknown))
	assert.Equal(t, dv.Value, nil)
}

func TestReadInvalidAttribute(t *testing.T) {
	srv := newTestServer(t)
	nodeID := ua.NewNodeIDNumeric(2, 42)
	addTestVariable(t, srv, nodeID, nil)
	res := srv.Namespace().Read(ua.NewReadValueID(nodeID, ua.AttributeID(99)))
	assert.Equal(t, res.Code(), ua.BadAttributeIDInvalid)
}

func TestReadUncertainBeforeFirstWrite(t *testing.T) {
	srv := newTestServer(t)
	nodeID := ua.NewNodeIDString(2, "Demo.Pressure")
	addTestVariable(t, srv, nodeID, ua.NewVariableAttributes())

	res := srv.Namespace().Read(ua.NewReadValueID(nodeID, ua.AttributeIDValue))
	assert.Equal(t, res.Code(), ua.UncertainInitialValue)
	assert.Equal(t, res.HasValue(), true)

	wres := srv.Namespace().Write(nodeID, ua.AttributeIDValue, ua.DataValue{Value: 1.0, StatusCode: ua.Good})
	assert.NilError(t, wres.Err())
	res = srv.Namespace().Read(ua.NewReadValueID(nodeID, ua.AttributeIDValue))
	assert.Equal(t, res.Code(), ua.Good)
}

func TestAddVariableNodeTwice(t *testing.T) {
	srv := newTestServer(t)
	nodeID := ua.NewNodeIDNumeric(2, 7)
	addTestVariable(t, srv, nodeID, nil)
	res := srv.Namespace().AddVariableNode(nodeID, ua.NewQualifiedName(2, "Dup"), nil)
	assert.Equal(t, res.Code(), ua.BadNodeIDExists)
}

func TestAddVariableNodeNilID(t *testing.T) {
	srv := newTestServer(t)
	res := srv.Namespace().AddVariableNode(ua.NodeID{}, ua.NewQualifiedName(0, "x"), nil)
	assert.Equal(t, res.Code(), ua.BadNodeIDInvalid)
}

func TestWriteNonValueAttribute(t *testing.T) {
	srv := newTestServer(t)
	nodeID := ua.NewNodeIDNumeric(2, 8)
	addTestVariable(t, srv, nodeID, nil)
	res := srv.Namespace().Write(nodeID, ua.AttributeIDDisplayName, ua.DataValue{Value: "x"})
	assert.Equal(t, res.Code(), ua.BadNotWritable)
}

func TestWriteReadOnlyNode(t *testing.T) {
	srv := newTestServer(t)
	nodeID := ua.NewNodeIDNumeric(2, 9)
	attrs := ua.NewVariableAttributes().SetAccessLevel(server.AccessLevelCurrentRead)
	addTestVariable(t, srv, nodeID, attrs)
	res := srv.Namespace().Write(nodeID, ua.AttributeIDValue, ua.DataValue{Value: 1.0})
	assert.Equal(t, res.Code(), ua.BadNotWritable)
}

func TestSubscriptionRegistry(t *testing.T) {
	srv := newTestServer(t)
	assert.Equal(t, srv.Subscription(99).Code(), ua.BadSubscriptionIDInvalid)

	sres := srv.CreateSubscription(0)
	sub, err := sres.Value()
	assert.NilError(t, err)

	assert.Equal(t, sub.MonitoredItem(99).Code(), ua.BadMonitoredItemIDInvalid)
	assert.Equal(t, srv.MonitoredItem(sub.ID(), 99).Code(), ua.BadMonitoredItemIDInvalid)
	assert.Equal(t, srv.MonitoredItem(99, 1).Code(), ua.BadSubscriptionIDInvalid)

	nodeID := ua.NewNodeIDNumeric(2, 10)
	addTestVariable(t, srv, nodeID, nil)
	mres := sub.CreateMonitoredItem(ua.NewReadValueID(nodeID, ua.AttributeIDValue), server.MonitoringParameters{ClientHandle: 1, QueueSize: 10, DiscardOldest: true})
	mi, err := mres.Value()
	assert.NilError(t, err)
	assert.Equal(t, srv.MonitoredItem(sub.ID(), mi.ID()).MustValue(), mi)

	dres := srv.DeleteSubscription(sub.ID())
	assert.NilError(t, dres.Err())
	assert.Equal(t, srv.Subscription(sub.ID()).Code(), ua.BadSubscriptionIDInvalid)
}

func TestCreateMonitoredItemValidation(t *testing.T) {
	srv := newTestServer(t)
	sub := srv.CreateSubscription(0).MustValue()
	nodeID := ua.NewNodeIDNumeric(2, 11)
	addTestVariable(t, srv, nodeID, nil)

	res := sub.CreateMonitoredItem(ua.NewReadValueID(nodeID, ua.AttributeIDDisplayName), server.MonitoringParameters{})
	assert.Equal(t, res.Code(), ua.BadAttributeIDInvalid)

	res = sub.CreateMonitoredItem(ua.NewReadValueID(ua.NewNodeIDNumeric(2, 999), ua.AttributeIDValue), server.MonitoringParameters{})
	assert.Equal(t, res.Code(), ua.BadNodeIDUnknown)
}

func TestMonitoredItemQueueSizeClamp(t *testing.T) {
	srv := newTestServer(t)
	sub := srv.CreateSubscription(0).MustValue()
	nodeID := ua.NewNodeIDNumeric(2, 12)
	addTestVariable(t, srv, nodeID, nil)

	mi := sub.CreateMonitoredItem(ua.NewReadValueID(nodeID, ua.AttributeIDValue), server.MonitoringParameters{QueueSize: 0}).MustValue()
	assert.Equal(t, mi.QueueSize(), uint32(1))

	mi = sub.CreateMonitoredItem(ua.NewReadValueID(nodeID, ua.AttributeIDValue), server.MonitoringParameters{QueueSize: 5000}).MustValue()
	assert.Equal(t, mi.QueueSize(), uint32(1024))
}

func TestQueueOverflowDiscardOldest(t *testing.T) {
	srv := newTestServer(t)
	sub := srv.CreateSubscription(0).MustValue()
	nodeID := ua.NewNodeIDNumeric(2, 13)
	addTestVariable(t, srv, nodeID, nil)
	mi := sub.CreateMonitoredItem(ua.NewReadValueID(nodeID, ua.AttributeIDValue), server.MonitoringParameters{QueueSize: 2, DiscardOldest: true}).MustValue()

	// the initial value fills the first slot
	assert.Equal(t, mi.QueueLen(), 1)
	for _, v := range []float64{1.0, 2.0, 3.0} {
		srv.Namespace().Write(nodeID, ua.AttributeIDValue, ua.DataValue{Value: v, StatusCode: ua.Good})
	}

	values := srv.MonitoredItem(sub.ID(), mi.ID()).MustValue().Notifications()
	assert.Equal(t, len(values), 2)
	assert.Equal(t, values[0].Value, 2.0)
	assert.Equal(t, values[0].StatusCode&ua.Overflow, ua.Overflow)
	assert.Equal(t, values[1].Value, 3.0)
	assert.Equal(t, values[1].StatusCode, ua.Good)
	assert.Equal(t, mi.QueueLen(), 0)
}

func TestQueueOverflowDiscardNewest(t *testing.T) {
	srv := newTestServer(t)
	sub := srv.CreateSubscription(0).MustValue()
	nodeID := ua.NewNodeIDNumeric(2, 14)
	addTestVariable(t, srv, nodeID, nil)
	mi := sub.CreateMonitoredItem(ua.NewReadValueID(nodeID, ua.AttributeIDValue), server.MonitoringParameters{QueueSize: 2, DiscardOldest: false}).MustValue()

	for _, v := range []float64{1.0, 2.0, 3.0} {
		srv.Namespace().Write(nodeID, ua.AttributeIDValue, ua.DataValue{Value: v, StatusCode: ua.Good})
	}

	values := mi.Notifications()
	assert.Equal(t, len(values), 2)
	// the oldest entry survives, the last queued entry is replaced by the
	// incoming value which carries the overflow bit
	assert.Equal(t, values[0].StatusCode, ua.UncertainInitialValue)
	assert.Equal(t, values[1].Value, 3.0)
	assert.Equal(t, values[1].StatusCode&ua.Overflow, ua.Overflow)
}

func TestQueueSizeOneKeepsLatestWithoutOverflow(t *testing.T) {
	srv := newTestServer(t)
	sub := srv.CreateSubscription(0).MustValue()
	nodeID := ua.NewNodeIDNumeric(2, 15)
	addTestVariable(t, srv, nodeID, nil)
	mi := sub.CreateMonitoredItem(ua.NewReadValueID(nodeID, ua.AttributeIDValue), server.MonitoringParameters{QueueSize: 1, DiscardOldest: true}).MustValue()

	for _, v := range []float64{1.0, 2.0, 3.0} {
		srv.Namespace().Write(nodeID, ua.AttributeIDValue, ua.DataValue{Value: v, StatusCode: ua.Good})
	}

	values := mi.Notifications()
	assert.Equal(t, len(values), 1)
	assert.Equal(t, values[0].Value, 3.0)
	assert.Equal(t, values[0].StatusCode, ua.Good)
}

func TestPublishDispatchesOnWorkerPool(t *testing.T) {
	srv := newTestServer(t, server.WithMaxWorkerThreads(1))
	sub := srv.CreateSubscription(0).MustValue()
	nodeID := ua.NewNodeIDNumeric(2, 16)
	attrs := ua.NewVariableAttributes().SetValue(0.0)
	addTestVariable(t, srv, nodeID, attrs)
	mi := sub.CreateMonitoredItem(ua.NewReadValueID(nodeID, ua.AttributeIDValue), server.MonitoringParameters{ClientHandle: 7, QueueSize: 10, DiscardOldest: true}).MustValue()
	assert.Equal(t, mi.ClientHandle(), uint32(7))

	srv.Namespace().Write(nodeID, ua.AttributeIDValue, ua.DataValue{Value: 1.0, StatusCode: ua.Good})

	var mu sync.Mutex
	var handles []uint32
	var values []ua.Variant
	count := sub.Publish(func(clientHandle uint32, value ua.DataValue) {
		mu.Lock()
		defer mu.Unlock()
		handles = append(handles, clientHandle)
		values = append(values, value.Value)
	})
	assert.Equal(t, count, 2)

	// Close drains the worker pool
	assert.NilError(t, srv.Close())
	mu.Lock()
	defer mu.Unlock()
	assert.DeepEqual(t, handles, []uint32{7, 7})
	assert.DeepEqual(t, values, []ua.Variant{0.0, 1.0})
}

func TestDeleteMonitoredItem(t *testing.T) {
	srv := newTestServer(t)
	sub := srv.CreateSubscription(0).MustValue()
	nodeID := ua.NewNodeIDNumeric(2, 17)
	addTestVariable(t, srv, nodeID, nil)
	mi := sub.CreateMonitoredItem(ua.NewReadValueID(nodeID, ua.AttributeIDValue), server.MonitoringParameters{QueueSize: 2}).MustValue()

	assert.NilError(t, sub.DeleteMonitoredItem(mi.ID()).Err())
	assert.Equal(t, sub.MonitoredItem(mi.ID()).Code(), ua.BadMonitoredItemIDInvalid)
	assert.Equal(t, sub.DeleteMonitoredItem(mi.ID()).Code(), ua.BadMonitoredItemIDInvalid)

	// writes after deletion no longer reach the item
	srv.Namespace().Write(nodeID, ua.AttributeIDValue, ua.DataValue{Value: 1.0, StatusCode: ua.Good})
	assert.Equal(t, mi.QueueLen(), 0)
}

func TestMaxSubscriptionCount(t *testing.T) {
	srv := newTestServer(t, server.WithMaxSubscriptionCount(1))
	assert.NilError(t, srv.CreateSubscription(0).Err())
	assert.Equal(t, srv.CreateSubscription(0).Code(), ua.BadTooManySubscriptions)
}

func TestAuthenticateUserNameIdentity(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	assert.NilError(t, err)
	srv := newTestServer(t, server.WithAuthenticateUserNameIdentityFunc(
		func(userIdentity server.UserNameIdentity, applicationURI, endpointURL string) error {
			if userIdentity.UserName != "root" {
				return ua.BadUserAccessDenied
			}
			if bcrypt.CompareHashAndPassword(hash, []byte(userIdentity.Password)) != nil {
				return ua.BadUserAccessDenied
			}
			return nil
		}))

	assert.NilError(t, srv.Authenticate(server.UserNameIdentity{UserName: "root", Password: "secret"}))
	err = srv.Authenticate(server.UserNameIdentity{UserName: "root", Password: "wrong"})
	assert.Equal(t, err, error(ua.BadUserAccessDenied))
}

func TestAuthenticateWithoutAuthenticator(t *testing.T) {
	srv := newTestServer(t)
	assert.NilError(t, srv.Authenticate(server.UserNameIdentity{UserName: "anyone"}))
}

func TestLoggerReceivesMessages(t *testing.T) {
	var mu sync.Mutex
	var messages []string
	srv := newTestServer(t, server.WithLogger(func(level ua.LogLevel, category ua.LogCategory, message string) {
		mu.Lock()
		defer mu.Unlock()
		messages = append(messages, message)
	}))
	addTestVariable(t, srv, ua.NewNodeIDNumeric(2, 18), nil)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, len(messages) >= 2, true)
}

func TestStartTime(t *testing.T) {
	before := time.Now()
	srv := newTestServer(t)
	after := time.Now()
	assert.Equal(t, srv.StartTime().Before(before), false)
	assert.Equal(t, srv.StartTime().After(after), false)
}

func TestCloseTwice(t *testing.T) {
	srv, err := server.New("urn:testserver", "opc.tcp://localhost:4840")
	assert.NilError(t, err)
	assert.NilError(t, srv.Close())
	assert.NilError(t, srv.Close())
	assert.Equal(t, srv.CreateSubscription(0).Code(), ua.BadServerHalted)
}

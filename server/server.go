// Copyright 2024 The open62541pp Authors. All rights reserved.

// Package server provides an address space host with attribute read and
// write services and data change subscriptions.
package server

import (
	"sync"
	"time"

	"github.com/gammazero/workerpool"

	"github.com/umati/open62541pp/ua"
)

const (
	// the default number of worker threads processing notifications.
	defaultMaxWorkerThreads int = 4
	// the default maximum number of subscriptions.
	defaultMaxSubscriptionCount uint32 = 100
)

// Server hosts a namespace of nodes and publishes data changes to
// subscriptions.
type Server struct {
	sync.RWMutex
	applicationURI                string
	endpointURL                   string
	logger                        ua.Logger
	maxWorkerThreads              int
	maxSubscriptionCount          uint32
	userNameIdentityAuthenticator UserNameIdentityAuthenticator
	workerpool                    *workerpool.WorkerPool
	namespace                     *Namespace
	subscriptions                 map[uint32]*Subscription
	lastSubscriptionID            uint32
	startTime                     time.Time
	closed                        bool
}

// New initializes a new instance of the Server.
func New(applicationURI, endpointURL string, options ...Option) (*Server, error) {
	srv := &Server{
		applicationURI:       applicationURI,
		endpointURL:          endpointURL,
		maxWorkerThreads:     defaultMaxWorkerThreads,
		maxSubscriptionCount: defaultMaxSubscriptionCount,
		subscriptions:        make(map[uint32]*Subscription),
		startTime:            time.Now(),
	}

	// apply each option to the default
	for _, opt := range options {
		if err := opt(srv); err != nil {
			return nil, err
		}
	}

	srv.workerpool = workerpool.New(srv.maxWorkerThreads)
	srv.namespace = NewNamespace(srv)
	ua.Log(srv.logger, ua.LogLevelInfo, ua.LogCategoryServer, "server started, uri: %s", applicationURI)
	return srv, nil
}

// ApplicationURI returns the application uri of the server.
func (srv *Server) ApplicationURI() string {
	return srv.applicationURI
}

// EndpointURL returns the endpoint url of the server.
func (srv *Server) EndpointURL() string {
	return srv.endpointURL
}

// StartTime returns the time the server was started.
func (srv *Server) StartTime() time.Time {
	return srv.startTime
}

// Namespace returns the namespace of the server.
func (srv *Server) Namespace() *Namespace {
	return srv.namespace
}

// WorkerPool returns a pool of workers that process notifications.
func (srv *Server) WorkerPool() *workerpool.WorkerPool {
	srv.RLock()
	defer srv.RUnlock()
	return srv.workerpool
}

// Authenticate checks the given user identity against the configured
// authenticator. Without an authenticator any identity is accepted.
func (srv *Server) Authenticate(userIdentity UserNameIdentity) error {
	srv.RLock()
	auth := srv.userNameIdentityAuthenticator
	srv.RUnlock()
	if auth == nil {
		return nil
	}
	if err := auth.AuthenticateUserNameIdentity(userIdentity, srv.applicationURI, srv.endpointURL); err != nil {
		ua.Log(srv.logger, ua.LogLevelWarning, ua.LogCategoryServer, "user %s rejected: %s", userIdentity.UserName, err)
		return err
	}
	return nil
}

// CreateSubscription creates a subscription with the given publishing
// interval in milliseconds. An interval of zero selects on demand
// publishing.
func (srv *Server) CreateSubscription(publishingInterval float64) ua.Result[*Subscription] {
	srv.Lock()
	defer srv.Unlock()
	if srv.closed {
		return ua.NewResultBad[*Subscription](ua.NewBadResult(ua.BadServerHalted))
	}
	if uint32(len(srv.subscriptions)) >= srv.maxSubscriptionCount {
		return ua.NewResultBad[*Subscription](ua.NewBadResult(ua.BadTooManySubscriptions))
	}
	srv.lastSubscriptionID++
	sub := newSubscription(srv, srv.lastSubscriptionID, publishingInterval)
	srv.subscriptions[sub.ID()] = sub
	ua.Log(srv.logger, ua.LogLevelDebug, ua.LogCategoryServer, "created subscription %d", sub.ID())
	return ua.NewResult(sub)
}

// Subscription finds the subscription with the given id.
func (srv *Server) Subscription(id uint32) ua.Result[*Subscription] {
	srv.RLock()
	defer srv.RUnlock()
	sub, ok := srv.subscriptions[id]
	if !ok {
		return ua.NewResultBad[*Subscription](ua.NewBadResult(ua.BadSubscriptionIDInvalid))
	}
	return ua.NewResult(sub)
}

// MonitoredItem finds the monitored item with the given id within the given
// subscription.
func (srv *Server) MonitoredItem(subscriptionID, monitoredItemID uint32) ua.Result[*MonitoredItem] {
	res := srv.Subscription(subscriptionID)
	if sub, err := res.Value(); err == nil {
		return sub.MonitoredItem(monitoredItemID)
	}
	return ua.NewResultBad[*MonitoredItem](ua.NewBadResult(res.Code()))
}

// DeleteSubscription deletes the subscription with the given id.
func (srv *Server) DeleteSubscription(id uint32) ua.VoidResult {
	srv.Lock()
	defer srv.Unlock()
	sub, ok := srv.subscriptions[id]
	if !ok {
		return ua.NewVoidResultBad(ua.NewBadResult(ua.BadSubscriptionIDInvalid))
	}
	sub.delete()
	delete(srv.subscriptions, id)
	return ua.NewVoidResult(ua.Good)
}

// Close stops the server, waiting for queued notifications to be
// dispatched. Close may be called more than once.
func (srv *Server) Close() error {
	srv.Lock()
	if srv.closed {
		srv.Unlock()
		return nil
	}
	srv.closed = true
	for id, sub := range srv.subscriptions {
		sub.delete()
		delete(srv.subscriptions, id)
	}
	wp := srv.workerpool
	srv.Unlock()
	wp.StopWait()
	ua.Log(srv.logger, ua.LogLevelInfo, ua.LogCategoryServer, "server stopped")
	return nil
}

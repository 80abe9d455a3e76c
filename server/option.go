// Copyright 2024 The open62541pp Authors. All rights reserved.

package server

import (
	"github.com/pkg/errors"

	"github.com/umati/open62541pp/ua"
)

// Option is a functional option to be applied to a server during
// initialization.
type Option func(*Server) error

// WithLogger sets the logger that receives server log messages. (default: discard)
func WithLogger(logger ua.Logger) Option {
	return func(srv *Server) error {
		srv.logger = logger
		return nil
	}
}

// WithMaxWorkerThreads sets the number of worker threads that process
// notifications. (default: 4)
func WithMaxWorkerThreads(value int) Option {
	return func(srv *Server) error {
		if value < 1 {
			return errors.New("maxWorkerThreads must be at least 1")
		}
		srv.maxWorkerThreads = value
		return nil
	}
}

// WithMaxSubscriptionCount sets the maximum number of subscriptions.
// (default: 100)
func WithMaxSubscriptionCount(value uint32) Option {
	return func(srv *Server) error {
		srv.maxSubscriptionCount = value
		return nil
	}
}

// WithAuthenticateUserNameIdentityFunc sets the authentication function for
// user name identities. (default: any credentials are accepted)
func WithAuthenticateUserNameIdentityFunc(f AuthenticateUserNameIdentityFunc) Option {
	return func(srv *Server) error {
		srv.userNameIdentityAuthenticator = f
		return nil
	}
}

// WithUserNameIdentityAuthenticator sets the authenticator for user name
// identities. (default: any credentials are accepted)
func WithUserNameIdentityAuthenticator(a UserNameIdentityAuthenticator) Option {
	return func(srv *Server) error {
		srv.userNameIdentityAuthenticator = a
		return nil
	}
}

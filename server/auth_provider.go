// Copyright 2024 The open62541pp Authors. All rights reserved.

package server

// UserNameIdentity holds the credentials of a user.
type UserNameIdentity struct {
	UserName string
	Password string
}

// UserNameIdentityAuthenticator authenticates UserNameIdentity.
type UserNameIdentityAuthenticator interface {
	// AuthenticateUserNameIdentity returns nil when the user identity is
	// authenticated, or BadUserAccessDenied otherwise.
	AuthenticateUserNameIdentity(userIdentity UserNameIdentity, applicationURI string, endpointURL string) error
}

// AuthenticateUserNameIdentityFunc authenticates UserNameIdentity.
type AuthenticateUserNameIdentityFunc func(userIdentity UserNameIdentity, applicationURI string, endpointURL string) error

// AuthenticateUserNameIdentity ...
func (f AuthenticateUserNameIdentityFunc) AuthenticateUserNameIdentity(userIdentity UserNameIdentity, applicationURI string, endpointURL string) error {
	return f(userIdentity, applicationURI, endpointURL)
}

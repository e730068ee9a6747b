// Package identity provides caller identity extraction and authorization.
package identity

import "context"

// Authorizer answers whether a user id carries administrative privileges.
// The concrete identity provider stays behind this interface.
type Authorizer interface {
	IsAdmin(ctx context.Context, userID string) bool
}

// StaticAuthorizer authorizes admins from a fixed list of user ids.
type StaticAuthorizer struct {
	admins map[string]struct{}
}

// NewStaticAuthorizer creates an authorizer from a list of admin user ids.
func NewStaticAuthorizer(adminIDs []string) *StaticAuthorizer {
	admins := make(map[string]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = struct{}{}
	}
	return &StaticAuthorizer{admins: admins}
}

// IsAdmin reports whether the user id is in the admin list.
func (a *StaticAuthorizer) IsAdmin(_ context.Context, userID string) bool {
	_, ok := a.admins[userID]
	return ok
}

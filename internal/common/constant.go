// Package common contains shared constants, sentinel errors and small
// helpers used across Pegasus components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on inbound requests.
const AccessTokenHeaderName = "access_token"

// TokenExpiredMessage is the status message sent for an expired access
// token. Clients use it to decide when to refresh.
const TokenExpiredMessage = "token expired"

// Token purposes stored alongside verification tokens.
const (
	PurposeVerifyEmail   = "verify-email"
	PurposeResetPassword = "reset-password"
)

// Event routing keys published through the outbox.
const (
	RoutingKeyUserRegistered = "user.registered"
	RoutingKeyMailRequested  = "mail.requested"
)

// Package client talks to the Pegasus AuthService over gRPC.
//
// GRPCClient keeps the current token pair, attaches the access token to every
// call and refreshes it once when the server reports it expired. gRPC
// status codes are mapped to the sentinel errors in errors.go so callers can
// match them with errors.Is.
package client

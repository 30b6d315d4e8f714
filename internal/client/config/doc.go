// Package config loads runtime configuration for the pegasusctl console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the Pegasus gRPC endpoint
//	-t int      per-request timeout (seconds)
//
// # JSON schema
//
// Durations use timex.Duration, so values can be strings like "5s" or
// integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "request_timeout": "5s"
//	}
package config

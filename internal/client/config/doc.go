// Package config loads runtime configuration for the imgtool CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file named by the --config flag.
//  3. Persistent command-line flags, applied by the cli package.
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "30s" or integer
// nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "public_base_url": "http://localhost:8080",
//	  "session_file": "/home/me/.config/imagekeeper/session.json",
//	  "request_timeout": "30s"
//	}
package config

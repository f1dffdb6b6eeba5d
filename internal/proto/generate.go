// Package proto holds the generated owner API messages and gRPC stubs.
package proto

//go:generate sh -c "cd ../.. && buf generate"

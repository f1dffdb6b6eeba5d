// Package client talks to the ImageKeeper servers on behalf of the CLI.
//
// GRPCClient wraps the owner gRPC API. It injects the access token into every
// call, refreshes it once when the server reports it expired and maps status
// codes to the sentinel errors below.
//
// ViewerClient walks the public REST flow a recipient of a shared link goes
// through: initiate, verify, then fetch the image.
//
// Errors callers can match with errors.Is: ErrUnavailable, ErrUnauthorized,
// ErrNotFound, ErrRejected.
package client

// Package cli implements imgtool, the command-line front end of ImageKeeper.
//
// Offline commands work on local files and need no server: encrypt, decrypt,
// chaos, stego and watermark. Owner commands talk to the gRPC endpoint and
// keep the session tokens in a file between runs. Viewer commands walk the
// public REST flow of a shared link.
package cli

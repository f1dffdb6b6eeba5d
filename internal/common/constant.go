// Package common contains shared constants and sentinel errors used across
// ImageKeeper components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the owner's
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// ViewerEmailHeaderName lets a public downloader identify itself explicitly.
const ViewerEmailHeaderName = "X-Viewer-Email"

// AnonymousViewer is recorded when nothing better identifies a downloader.
const AnonymousViewer = "anonymous@unknown"

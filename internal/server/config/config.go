// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Blob backends.
const (
	BlobBadger = "badger"
	BlobS3     = "s3"
)

// Config holds runtime settings for the ImageKeeper server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the owner gRPC endpoint.
//   - EndpointAddrHTTP: bind address for the public REST endpoint.
//   - PublicBaseURL: externally visible base URL of the REST endpoint, used in
//     image and signed file links.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty selects the in-memory store.
//   - SecretKey: HMAC secret for signing JWTs (HS256) and file links.
//   - MasterKey: hex encoded 32-byte key that wraps per-asset keys.
//   - AccessTokenValidityDuration / RefreshTokenValidityDuration: owner token lifetimes.
//   - ViewerTicketValidityDuration: lifetime of the ticket issued after OTP verification.
//   - BlobBackend: "badger" (embedded) or "s3".
//   - BadgerPath: badger directory. Empty keeps blobs in memory.
//   - S3RootUser / S3RootPassword: credentials for the S3-compatible backend.
//   - S3Bucket / S3Region / S3BaseEndpoint: object storage settings.
//   - SMTPHost / SMTPPort / SMTPUser / SMTPPassword / SMTPFrom: outgoing mail.
//     An empty host logs mails instead of sending them.
//   - ExifToolPath / AIProtectCommand / WatermarkCommand: external tools.
//     Empty commands fall back to the in-process implementations.
//   - ExternalToolTimeout: deadline for every external tool run.
//   - RateLimitPerMinute / RateLimitBurst: per client IP limit of the public
//     initiate and request endpoints.
//   - DefaultAlgorithm: cipher used for uploads that do not name one.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	EndpointAddrGRPC             string
	EndpointAddrHTTP             string
	PublicBaseURL                string
	DatabaseDSN                  string
	SecretKey                    string
	MasterKey                    string
	AccessTokenValidityDuration  time.Duration
	RefreshTokenValidityDuration time.Duration
	ViewerTicketValidityDuration time.Duration
	BlobBackend                  string
	BadgerPath                   string
	S3RootUser                   string
	S3RootPassword               string
	S3Bucket                     string
	S3Region                     string
	S3BaseEndpoint               string
	SMTPHost                     string
	SMTPPort                     int
	SMTPUser                     string
	SMTPPassword                 string
	SMTPFrom                     string
	ExifToolPath                 string
	AIProtectCommand             string
	WatermarkCommand             string
	ExternalToolTimeout          time.Duration
	RateLimitPerMinute           int
	RateLimitBurst               int
	DefaultAlgorithm             string
	LogLevel                     string
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = ""
	c.EndpointAddrGRPC = ":50051"
	c.EndpointAddrHTTP = ":8080"
	c.PublicBaseURL = "http://localhost:8080"
	c.SecretKey = "secretKey"
	c.MasterKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"
	c.AccessTokenValidityDuration = 15 * time.Minute
	c.RefreshTokenValidityDuration = 24 * 60 * time.Minute
	c.ViewerTicketValidityDuration = 30 * time.Minute
	c.BlobBackend = BlobBadger
	c.BadgerPath = ""
	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.S3Bucket = "imagekeeper"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
	c.SMTPPort = 587
	c.SMTPFrom = "noreply@imagekeeper.local"
	c.ExifToolPath = "exiftool"
	c.ExternalToolTimeout = 30 * time.Second
	c.RateLimitPerMinute = 10
	c.RateLimitBurst = 5
	c.DefaultAlgorithm = "aes-256-cbc-hmac"
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

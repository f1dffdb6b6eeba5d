package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/imagekeeper/internal/flagx"
)

var knownFlags = []string{
	"-a", "-d", "-s", "-t", "-r", "-u", "-p", "-b", "-g", "-e",
	"-http", "-base-url", "-master-key", "-ticket-ttl", "-blob", "-badger-path",
	"-smtp-host", "-smtp-port", "-smtp-user", "-smtp-password", "-smtp-from",
	"-exiftool", "-ai-cmd", "-watermark-cmd", "-tool-timeout",
	"-rate", "-burst", "-algo", "-log-level",
}

// parseFlags populates server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t int      access token validity, minutes
//	-r int      refresh token validity, minutes
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//
// Long forms cover the REST endpoint, keys, blob backend, SMTP, external
// tools and rate limiting; see knownFlags.
//
// Notes:
//   - The function first filters os.Args to only the flags it recognizes using
//     flagx.FilterArgs, avoiding collisions with other components.
//   - Token and ticket durations are accepted as integers in minutes, the tool
//     timeout in seconds.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], knownFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run gRPC server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access_token_validity_duration (in minutes)")
	refreshTokenValidityDuration := fs.Int("r", int(config.RefreshTokenValidityDuration.Minutes()), "refresh_token_validity_duration (in minutes)")
	ticketValidityDuration := fs.Int("ticket-ttl", int(config.ViewerTicketValidityDuration.Minutes()), "viewer ticket validity (in minutes)")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 root bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 root region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	fs.StringVar(&config.EndpointAddrHTTP, "http", config.EndpointAddrHTTP, "address and port to run REST server")
	fs.StringVar(&config.PublicBaseURL, "base-url", config.PublicBaseURL, "public base URL of the REST server")
	fs.StringVar(&config.MasterKey, "master-key", config.MasterKey, "hex encoded 32-byte master key")
	fs.StringVar(&config.BlobBackend, "blob", config.BlobBackend, "blob backend: badger or s3")
	fs.StringVar(&config.BadgerPath, "badger-path", config.BadgerPath, "badger directory, empty for in-memory")

	fs.StringVar(&config.SMTPHost, "smtp-host", config.SMTPHost, "SMTP host, empty logs mails")
	fs.IntVar(&config.SMTPPort, "smtp-port", config.SMTPPort, "SMTP port")
	fs.StringVar(&config.SMTPUser, "smtp-user", config.SMTPUser, "SMTP user")
	fs.StringVar(&config.SMTPPassword, "smtp-password", config.SMTPPassword, "SMTP password")
	fs.StringVar(&config.SMTPFrom, "smtp-from", config.SMTPFrom, "sender address")

	fs.StringVar(&config.ExifToolPath, "exiftool", config.ExifToolPath, "exiftool binary")
	fs.StringVar(&config.AIProtectCommand, "ai-cmd", config.AIProtectCommand, "AI protection command")
	fs.StringVar(&config.WatermarkCommand, "watermark-cmd", config.WatermarkCommand, "external watermark command")
	toolTimeout := fs.Int("tool-timeout", int(config.ExternalToolTimeout.Seconds()), "external tool timeout (in seconds)")

	fs.IntVar(&config.RateLimitPerMinute, "rate", config.RateLimitPerMinute, "public requests per minute per IP")
	fs.IntVar(&config.RateLimitBurst, "burst", config.RateLimitBurst, "public request burst per IP")
	fs.StringVar(&config.DefaultAlgorithm, "algo", config.DefaultAlgorithm, "default upload cipher")
	fs.StringVar(&config.LogLevel, "log-level", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
	config.RefreshTokenValidityDuration = time.Duration(*refreshTokenValidityDuration) * time.Minute
	config.ViewerTicketValidityDuration = time.Duration(*ticketValidityDuration) * time.Minute
	config.ExternalToolTimeout = time.Duration(*toolTimeout) * time.Second
}

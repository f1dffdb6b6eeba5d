package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/imagekeeper/internal/flagx"
	"github.com/dmitrijs2005/imagekeeper/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON unmarshalling.
// It uses timex.Duration for interval fields, which allows parsing both
// string values such as "1s" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON
// configuration files. Values present in the file are copied into the
// runtime Config; absent ones leave it untouched.
type JsonConfig struct {
	EndpointAddrGRPC             string         `json:"endpoint_addr_grpc"`
	EndpointAddrHTTP             string         `json:"endpoint_addr_http"`
	PublicBaseURL                string         `json:"public_base_url"`
	DatabaseDSN                  string         `json:"database_dsn"`
	SecretKey                    string         `json:"secret_key"`
	MasterKey                    string         `json:"master_key"`
	AccessTokenValidityDuration  timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration timex.Duration `json:"refresh_token_validity_duration"`
	ViewerTicketValidityDuration timex.Duration `json:"viewer_ticket_validity_duration"`
	BlobBackend                  string         `json:"blob_backend"`
	BadgerPath                   string         `json:"badger_path"`
	S3RootUser                   string         `json:"s3_root_user"`
	S3RootPassword               string         `json:"s3_root_password"`
	S3Bucket                     string         `json:"s3_bucket"`
	S3Region                     string         `json:"s3_region"`
	S3BaseEndpoint               string         `json:"s3_base_endpoint"`
	SMTPHost                     string         `json:"smtp_host"`
	SMTPPort                     int            `json:"smtp_port"`
	SMTPUser                     string         `json:"smtp_user"`
	SMTPPassword                 string         `json:"smtp_password"`
	SMTPFrom                     string         `json:"smtp_from"`
	ExifToolPath                 string         `json:"exiftool_path"`
	AIProtectCommand             string         `json:"ai_protect_command"`
	WatermarkCommand             string         `json:"watermark_command"`
	ExternalToolTimeout          timex.Duration `json:"external_tool_timeout"`
	RateLimitPerMinute           int            `json:"rate_limit_per_minute"`
	RateLimitBurst               int            `json:"rate_limit_burst"`
	DefaultAlgorithm             string         `json:"default_algorithm"`
	LogLevel                     string         `json:"log_level"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path comes from the -c or -config command-line flags, or from
// $IMAGEKEEPER_CONFIG. If none is set, no JSON file is loaded. If the file cannot be read or contains
// invalid JSON, the function panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigPath(os.Args[1:])

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.PublicBaseURL, c.PublicBaseURL)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.MasterKey, c.MasterKey)
	setDuration(&config.AccessTokenValidityDuration, c.AccessTokenValidityDuration)
	setDuration(&config.RefreshTokenValidityDuration, c.RefreshTokenValidityDuration)
	setDuration(&config.ViewerTicketValidityDuration, c.ViewerTicketValidityDuration)
	setString(&config.BlobBackend, c.BlobBackend)
	setString(&config.BadgerPath, c.BadgerPath)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.SMTPHost, c.SMTPHost)
	setInt(&config.SMTPPort, c.SMTPPort)
	setString(&config.SMTPUser, c.SMTPUser)
	setString(&config.SMTPPassword, c.SMTPPassword)
	setString(&config.SMTPFrom, c.SMTPFrom)
	setString(&config.ExifToolPath, c.ExifToolPath)
	setString(&config.AIProtectCommand, c.AIProtectCommand)
	setString(&config.WatermarkCommand, c.WatermarkCommand)
	setDuration(&config.ExternalToolTimeout, c.ExternalToolTimeout)
	setInt(&config.RateLimitPerMinute, c.RateLimitPerMinute)
	setInt(&config.RateLimitBurst, c.RateLimitBurst)
	setString(&config.DefaultAlgorithm, c.DefaultAlgorithm)
	setString(&config.LogLevel, c.LogLevel)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v timex.Duration) {
	if v.Duration != 0 {
		*dst = time.Duration(v.Duration)
	}
}

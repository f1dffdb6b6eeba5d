package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the imgtool CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the owner gRPC endpoint.
//   - PublicBaseURL: base URL of the public REST endpoint used by viewers.
//   - SessionFile: where owner tokens are kept between invocations.
//   - RequestTimeout: deadline of every remote call.
type Config struct {
	ServerEndpointAddr string
	PublicBaseURL      string
	SessionFile        string
	RequestTimeout     time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.PublicBaseURL = "http://localhost:8080"
	c.SessionFile = defaultSessionFile()
	c.RequestTimeout = 30 * time.Second
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".imagekeeper-session.json"
	}
	return filepath.Join(dir, "imagekeeper", "session.json")
}

// LoadConfig applies defaults and then the JSON file at path, if any.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, path); err != nil {
		return nil, err
	}
	return cfg, nil
}

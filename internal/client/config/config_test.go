package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "127.0.0.1:50051", c.ServerEndpointAddr)
	assert.Equal(t, "http://localhost:8080", c.PublicBaseURL)
	assert.True(t, strings.HasSuffix(c.SessionFile, "session.json"))
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
}

func TestLoadConfig_NoFile(t *testing.T) {
	cfg, err := LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:50051", cfg.ServerEndpointAddr)
}

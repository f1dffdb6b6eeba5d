package netx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostJSON(t *testing.T) {
	var got map[string]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"Email not authorized","can_request_access":true}`))
	}))
	defer ts.Close()

	resp, err := PostJSON(context.Background(), ts.Client(), ts.URL, map[string]string{"email": "v@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "v@example.com", got["email"])
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.False(t, resp.OK())

	var body struct {
		Error            string `json:"error"`
		CanRequestAccess bool   `json:"can_request_access"`
	}
	require.NoError(t, resp.Decode(&body))
	assert.True(t, body.CanRequestAccess)
}

func TestGet_HeadersAndFilename(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "v@example.com", r.Header.Get("X-Viewer-Email"))
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Content-Disposition", `attachment; filename="sunset.png"`)
		_, _ = w.Write([]byte{0x89, 'P', 'N', 'G'})
	}))
	defer ts.Close()

	h := http.Header{}
	h.Set("X-Viewer-Email", "v@example.com")
	resp, err := Get(context.Background(), nil, ts.URL, h)
	require.NoError(t, err)
	assert.True(t, resp.OK())
	assert.Equal(t, "image/png", resp.ContentType)
	assert.Equal(t, "sunset.png", resp.Filename)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, resp.Body)
}

func TestDecode_NotJSON(t *testing.T) {
	r := &Response{StatusCode: 502, Body: []byte("<html>")}
	assert.ErrorContains(t, r.Decode(&struct{}{}), "502")
}

func TestGet_Unreachable(t *testing.T) {
	_, err := Get(context.Background(), nil, "http://127.0.0.1:1/x", nil)
	assert.Error(t, err)
}

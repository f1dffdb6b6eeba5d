package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/imagekeeper/internal/client/client"
	"github.com/dmitrijs2005/imagekeeper/internal/client/config"
	"github.com/dmitrijs2005/imagekeeper/internal/common"
)

// fakeAccessAPI answers the public access endpoints for token "tok".
type fakeAccessAPI struct {
	password    string
	allowed     string
	passwords   []string
	requestBody map[string]string
	downloadBy  string
}

func (f *fakeAccessAPI) router(base func() string) http.Handler {
	r := chi.NewRouter()
	writeJSON := func(w http.ResponseWriter, code int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(v)
	}
	r.Post("/api/v1/access/tok/initiate", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.passwords = append(f.passwords, body["password"])
		switch {
		case f.allowed != "" && body["email"] != f.allowed:
			writeJSON(w, http.StatusForbidden, map[string]any{"error": "email not authorized", "can_request_access": true})
		case f.password != "" && body["password"] == "":
			writeJSON(w, http.StatusOK, map[string]any{"requires_password": true})
		case f.password != "" && body["password"] != f.password:
			writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "invalid password"})
		default:
			writeJSON(w, http.StatusOK, map[string]any{"message": "code sent"})
		}
	})
	r.Post("/api/v1/access/tok/verify", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["otp"] != "123456" {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid or expired verification code"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"message":        "Access granted",
			"image_url":      base() + "/files/img",
			"allow_download": true,
			"viewer_ticket":  "ticket",
		})
	})
	r.Post("/api/v1/access/tok/request", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&f.requestBody)
		writeJSON(w, http.StatusOK, map[string]any{"request_status": "pending"})
	})
	r.Get("/api/v1/access/tok/download", func(w http.ResponseWriter, r *http.Request) {
		f.downloadBy = r.Header.Get(common.ViewerEmailHeaderName)
		w.Header().Set("Content-Disposition", `attachment; filename="protected_cat.png"`)
		_, _ = w.Write([]byte("protected"))
	})
	r.Get("/files/img", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("pngbytes"))
	})
	return r
}

func viewerApp(t *testing.T, input string, api *fakeAccessAPI) (*App, *bytes.Buffer, string) {
	t.Helper()
	var ts *httptest.Server
	ts = httptest.NewServer(api.router(func() string { return ts.URL }))
	t.Cleanup(ts.Close)

	a, out, dir := newTestApp(t, input)
	a.newViewer = func(*config.Config) *client.ViewerClient {
		return client.NewViewerClient(ts.URL, ts.Client())
	}
	return a, out, dir
}

func TestView_OpenLink(t *testing.T) {
	api := &fakeAccessAPI{}
	a, out, dir := viewerApp(t, "v@x.com\n123456\n", api)
	img := filepath.Join(dir, "seen.png")

	require.NoError(t, run(t, a, dir, "view", "tok", "--out", img, "--download"))

	got, err := os.ReadFile(img)
	require.NoError(t, err)
	assert.Equal(t, "pngbytes", string(got))

	dl, err := os.ReadFile(filepath.Join(dir, "protected_cat.png"))
	require.NoError(t, err)
	assert.Equal(t, "protected", string(dl))
	assert.Equal(t, "v@x.com", api.downloadBy)
	assert.Contains(t, out.String(), "Access granted")
}

func TestView_PasswordPrompt(t *testing.T) {
	api := &fakeAccessAPI{password: "open"}
	a, _, dir := viewerApp(t, "123456\n", api)
	stubPasswords(t, "open")

	require.NoError(t, run(t, a, dir, "view", "tok", "--email", "v@x.com", "--out", filepath.Join(dir, "i.png")))
	assert.Equal(t, []string{"", "open"}, api.passwords)
}

func TestView_Errors(t *testing.T) {
	tests := []struct {
		name    string
		api     *fakeAccessAPI
		input   string
		wantErr error
		hint    string
	}{
		{"wrong code", &fakeAccessAPI{}, "000000\n", client.ErrRejected, ""},
		{"not on allow list", &fakeAccessAPI{allowed: "friend@x.com"}, "", client.ErrUnauthorized, "imgtool request"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _, dir := viewerApp(t, tt.input, tt.api)
			err := run(t, a, dir, "view", "tok", "--email", "v@x.com", "--out", filepath.Join(dir, "i.png"))
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.hint != "" {
				assert.Contains(t, err.Error(), tt.hint)
			}
		})
	}
}

func TestRequestAccess(t *testing.T) {
	api := &fakeAccessAPI{}
	a, out, dir := viewerApp(t, "please\nlet me in\n\n", api)

	require.NoError(t, run(t, a, dir, "request", "tok", "--email", "v@x.com"))
	assert.Equal(t, map[string]string{"email": "v@x.com", "message": "please\nlet me in"}, api.requestBody)
	assert.Contains(t, out.String(), "pending")
}

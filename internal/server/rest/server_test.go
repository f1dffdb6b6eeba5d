package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/imagekeeper/internal/common"
	"github.com/dmitrijs2005/imagekeeper/internal/logging"
	"github.com/dmitrijs2005/imagekeeper/internal/pipeline"
	"github.com/dmitrijs2005/imagekeeper/internal/server/blob"
	"github.com/dmitrijs2005/imagekeeper/internal/server/services"
)

// ---- fakes ----

type fakeAccess struct {
	AccessService

	initiateRes *services.InitiateResult
	initiateErr error

	disclosure *services.Disclosure
	verifyErr  error

	outcome    services.RequestOutcome
	requestErr error

	content    *services.Content
	contentErr error

	gotToken  string
	gotClient services.ClientInfo
	gotID     services.ViewerIdentity
	gotTicket string
}

func (f *fakeAccess) Initiate(_ context.Context, token, _, _ string, c services.ClientInfo) (*services.InitiateResult, error) {
	f.gotToken, f.gotClient = token, c
	return f.initiateRes, f.initiateErr
}

func (f *fakeAccess) Verify(_ context.Context, token, _, _ string, c services.ClientInfo) (*services.Disclosure, error) {
	f.gotToken, f.gotClient = token, c
	return f.disclosure, f.verifyErr
}

func (f *fakeAccess) Request(_ context.Context, token, _, _ string) (services.RequestOutcome, error) {
	f.gotToken = token
	return f.outcome, f.requestErr
}

func (f *fakeAccess) Image(_ context.Context, token, ticket string) (*services.Content, error) {
	f.gotToken, f.gotTicket = token, ticket
	return f.content, f.contentErr
}

func (f *fakeAccess) Download(_ context.Context, token string, id services.ViewerIdentity, c services.ClientInfo) (*services.Content, error) {
	f.gotToken, f.gotID, f.gotClient = token, id, c
	return f.content, f.contentErr
}

func newTestServer(f *fakeAccess) *Server {
	return NewServer(":0", f, nil, nil, logging.Nop())
}

func do(t *testing.T, h http.Handler, method, target, body string, hdr map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	return m
}

// ---- tests ----

func TestInitiate(t *testing.T) {
	tests := []struct {
		name     string
		res      *services.InitiateResult
		err      error
		body     string
		wantCode int
		want     map[string]any
	}{
		{
			name:     "otp sent",
			res:      &services.InitiateResult{OTPSent: true},
			wantCode: http.StatusOK,
			want:     map[string]any{"message": "OTP sent successfully"},
		},
		{
			name:     "password required",
			res:      &services.InitiateResult{RequiresPassword: true},
			wantCode: http.StatusOK,
			want:     map[string]any{"message": "Password required", "requires_password": true},
		},
		{
			name:     "can request",
			err:      &services.AuthorizationError{Reason: services.ReasonCanRequest},
			wantCode: http.StatusForbidden,
			want:     map[string]any{"error": "Email not authorized", "can_request_access": true, "code": float64(403)},
		},
		{
			name:     "pending",
			err:      &services.AuthorizationError{Reason: services.ReasonPending},
			wantCode: http.StatusForbidden,
			want:     map[string]any{"error": "Your access request is pending approval", "request_status": "pending", "code": float64(403)},
		},
		{
			name:     "denied",
			err:      &services.AuthorizationError{Reason: services.ReasonDenied},
			wantCode: http.StatusForbidden,
			want: map[string]any{"error": "Your access request was denied", "request_status": "denied",
				"can_request_again": true, "code": float64(403)},
		},
		{
			name:     "exhausted",
			err:      common.ErrGrantExhausted,
			wantCode: http.StatusForbidden,
			want:     map[string]any{"error": common.ErrGrantExhausted.Error(), "code": float64(403)},
		},
		{
			name:     "bad password",
			err:      common.ErrPasswordMismatch,
			wantCode: http.StatusBadRequest,
			want:     map[string]any{"error": "invalid password", "code": float64(400)},
		},
		{
			name:     "unknown token",
			err:      common.ErrorNotFound,
			wantCode: http.StatusNotFound,
			want:     map[string]any{"error": "not found", "code": float64(404)},
		},
		{
			name:     "internal details hidden",
			err:      errors.New("pq: connection refused"),
			wantCode: http.StatusInternalServerError,
			want:     map[string]any{"error": "internal server error", "code": float64(500)},
		},
		{
			name:     "malformed body",
			body:     "{",
			wantCode: http.StatusBadRequest,
			want:     map[string]any{"error": "validation error: malformed JSON body", "code": float64(400)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeAccess{initiateRes: tt.res, initiateErr: tt.err}
			body := tt.body
			if body == "" {
				body = `{"email":"bob@example.com"}`
			}
			rec := do(t, newTestServer(f).Handler(), http.MethodPost, "/api/v1/access/tok123/initiate", body,
				map[string]string{"CF-IPCountry": "LV", "X-Forwarded-For": "198.51.100.9"})

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.want, decode(t, rec))
			if tt.body == "" {
				assert.Equal(t, "tok123", f.gotToken)
				assert.Equal(t, "LV", f.gotClient.Country)
				assert.Equal(t, "198.51.100.9", f.gotClient.IP)
			}
		})
	}
}

func TestVerify(t *testing.T) {
	f := &fakeAccess{disclosure: &services.Disclosure{
		URL:           "http://img/x.png",
		AllowDownload: true,
		Features:      pipeline.Features{Watermark: true},
		ViewerTicket:  "tkt",
	}}
	rec := do(t, newTestServer(f).Handler(), http.MethodPost, "/api/v1/access/tok/verify", `{"email":"a@b.c","otp":"123456"}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decode(t, rec)
	assert.Equal(t, "Access granted", got["message"])
	assert.Equal(t, "http://img/x.png", got["image_url"])
	assert.Equal(t, true, got["allow_download"])
	assert.Equal(t, "tkt", got["viewer_ticket"])
	assert.Equal(t, map[string]any{"watermark": true, "hidden_watermark": false, "metadata": false, "ai_protection": false},
		got["protection_features"])

	f.verifyErr = common.ErrInvalidOTP
	rec = do(t, newTestServer(f).Handler(), http.MethodPost, "/api/v1/access/tok/verify", `{}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequest(t *testing.T) {
	tests := []struct {
		name       string
		outcome    services.RequestOutcome
		err        error
		wantCode   int
		wantStatus string
	}{
		{"created", services.RequestCreated, nil, http.StatusCreated, "pending"},
		{"resubmitted", services.RequestResubmitted, nil, http.StatusCreated, "pending"},
		{"approved", services.RequestAlreadyApproved, nil, http.StatusOK, "approved"},
		{"pending", 0, common.ErrRequestPending, http.StatusForbidden, "pending"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeAccess{outcome: tt.outcome, requestErr: tt.err}
			rec := do(t, newTestServer(f).Handler(), http.MethodPost, "/api/v1/access/tok/request", `{"email":"a@b.c","message":"hi"}`, nil)
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantStatus, decode(t, rec)["request_status"])
		})
	}
}

func TestImageAndDownload(t *testing.T) {
	f := &fakeAccess{content: &services.Content{Data: []byte("PNG"), ContentType: "image/png", Filename: "protected.png"}}
	h := newTestServer(f).Handler()

	rec := do(t, h, http.MethodGet, "/api/v1/access/tok/image?ticket=abc", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "PNG", rec.Body.String())
	assert.Equal(t, "abc", f.gotTicket)
	assert.Empty(t, rec.Header().Get("Content-Disposition"))

	rec = do(t, h, http.MethodGet, "/api/v1/access/tok/download?ticket=abc", "", map[string]string{common.ViewerEmailHeaderName: "v@x.io"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="protected.png"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, services.ViewerIdentity{HeaderEmail: "v@x.io", Ticket: "abc"}, f.gotID)

	f.contentErr = common.ErrorUnauthorized
	rec = do(t, h, http.MethodGet, "/api/v1/access/tok/download", "", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	f.contentErr = common.ErrInvalidToken
	rec = do(t, h, http.MethodGet, "/api/v1/access/tok/image", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRateLimit(t *testing.T) {
	f := &fakeAccess{initiateRes: &services.InitiateResult{OTPSent: true}}
	s := NewServer(":0", f, nil, NewLimiter(1, 2), logging.Nop())
	h := s.Handler()

	for i := 0; i < 2; i++ {
		rec := do(t, h, http.MethodPost, "/api/v1/access/tok/initiate", `{"email":"a@b.c"}`, nil)
		require.Equal(t, http.StatusOK, rec.Code)
	}
	rec := do(t, h, http.MethodPost, "/api/v1/access/tok/initiate", `{"email":"a@b.c"}`, nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// Another client has its own bucket.
	rec = do(t, h, http.MethodPost, "/api/v1/access/tok/initiate", `{"email":"a@b.c"}`, map[string]string{"X-Real-IP": "192.0.2.44"})
	assert.Equal(t, http.StatusOK, rec.Code)

	// Verify is not limited.
	f.disclosure = &services.Disclosure{}
	rec = do(t, h, http.MethodPost, "/api/v1/access/tok/verify", `{}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNilLimiterAllowsAll(t *testing.T) {
	var l *Limiter
	for i := 0; i < 100; i++ {
		assert.True(t, l.Allow("x"))
	}
	assert.Nil(t, NewLimiter(0, 5))
}

func TestSignedFiles(t *testing.T) {
	store, err := blob.OpenBadger("", "http://example.test", []byte("k"))
	require.NoError(t, err)
	defer store.Close()
	require.NoError(t, store.Put(context.Background(), "grants/g1/protected.png", []byte("PNGDATA"), "image/png"))

	u, err := store.PresignGet(context.Background(), "grants/g1/protected.png")
	require.NoError(t, err)
	target := strings.TrimPrefix(u, "http://example.test")

	h := NewServer(":0", &fakeAccess{}, store, nil, logging.Nop()).Handler()

	rec := do(t, h, http.MethodGet, target, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "PNGDATA", rec.Body.String())
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))

	rec = do(t, h, http.MethodGet, strings.Replace(target, "sig=", "sig=00", 1), "", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	h := newTestServer(&fakeAccess{}).Handler()

	rec := do(t, h, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), "imagekeeper_http_requests_total")
	assert.Contains(t, string(body), `route="/healthz"`)

	rec = do(t, h, http.MethodGet, "/files/anything", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRecoveryMiddleware(t *testing.T) {
	s := newTestServer(&fakeAccess{})
	h := s.recoveryMiddleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") }))
	rec := do(t, h, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", decode(t, rec)["error"])
}

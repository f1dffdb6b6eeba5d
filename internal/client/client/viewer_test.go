package client

import (
	"context"
	"image"
	"image/color"
	"net/http"
	"net/http/httptest"
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/imagekeeper/internal/logging"
	"github.com/dmitrijs2005/imagekeeper/internal/raster"
	"github.com/dmitrijs2005/imagekeeper/internal/server/blob"
	"github.com/dmitrijs2005/imagekeeper/internal/server/config"
	"github.com/dmitrijs2005/imagekeeper/internal/server/repositories/memstore"
	"github.com/dmitrijs2005/imagekeeper/internal/server/rest"
	"github.com/dmitrijs2005/imagekeeper/internal/server/services"
	"github.com/dmitrijs2005/imagekeeper/internal/timex"
)

var codeRe = regexp.MustCompile(`code is: (\d{6})`)

type inbox struct {
	mu   sync.Mutex
	last map[string]string
}

func (b *inbox) Send(_ context.Context, _, body string, to ...string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.last == nil {
		b.last = map[string]string{}
	}
	for _, addr := range to {
		b.last[addr] = body
	}
	return nil
}

func (b *inbox) Notify(ctx context.Context, subject, body string, to ...string) {
	_ = b.Send(ctx, subject, body, to...)
}

func (b *inbox) code(t *testing.T, email string) string {
	t.Helper()
	b.mu.Lock()
	defer b.mu.Unlock()
	m := codeRe.FindStringSubmatch(b.last[email])
	require.NotNil(t, m, "no code for %s", email)
	return m[1]
}

type stack struct {
	viewer *ViewerClient
	mail   *inbox
	users  *services.UserService
	grants *services.GrantService
	access *services.AccessService
	owner  string
	asset  string
}

func newStack(t *testing.T) *stack {
	t.Helper()
	var handler http.Handler
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handler.ServeHTTP(w, r)
	}))
	t.Cleanup(ts.Close)

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.PublicBaseURL = ts.URL

	blobs, err := blob.OpenBadger("", cfg.PublicBaseURL, []byte("sign"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = blobs.Close() })

	store := memstore.New()
	l := logging.Nop()
	mail := &inbox{}
	users := services.NewUserService(store, store, cfg)
	assets := services.NewAssetService(store, store, blobs, []byte("0123456789abcdef0123456789abcdef"), "", l)
	grants := services.NewGrantService(store, store, blobs, assets, nil, l)
	access := services.NewAccessService(store, store, blobs, assets, mail, mail, timex.SystemClock{}, cfg, l)

	handler = rest.NewServer("", access, blobs, nil, l).Handler()

	ctx := context.Background()
	u, err := users.Register(ctx, "owner@example.com", "password123")
	require.NoError(t, err)

	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for i := range img.Pix {
		img.Pix[i] = uint8(i)
	}
	img.Set(0, 0, color.NRGBA{R: 1, A: 255})
	data, err := raster.EncodePNG(img)
	require.NoError(t, err)
	a, err := assets.Upload(ctx, u.ID, "tile.png", data, "")
	require.NoError(t, err)

	return &stack{
		viewer: NewViewerClient(ts.URL+"/", ts.Client()),
		mail:   mail,
		users:  users,
		grants: grants,
		access: access,
		owner:  u.ID,
		asset:  a.ID,
	}
}

func TestViewerClient_OpenGrantFlow(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	g, err := s.grants.Create(ctx, s.owner, s.asset, services.GrantInput{Name: "press", AllowDownload: true})
	require.NoError(t, err)

	needPw, err := s.viewer.Initiate(ctx, g.Token, "viewer@example.com", "")
	require.NoError(t, err)
	assert.False(t, needPw)

	_, err = s.viewer.Verify(ctx, g.Token, "viewer@example.com", "000000")
	var apiErr *APIError
	if assert.ErrorAs(t, err, &apiErr) {
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	}
	assert.ErrorIs(t, err, ErrRejected)

	d, err := s.viewer.Verify(ctx, g.Token, "viewer@example.com", s.mail.code(t, "viewer@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "Access granted", d.Message)
	assert.True(t, d.AllowDownload)
	assert.NotEmpty(t, d.ViewerTicket)

	img, err := s.viewer.Fetch(ctx, d)
	require.NoError(t, err)
	_, _, err = raster.Decode(img.Body)
	require.NoError(t, err)

	// nothing was derived, so there is nothing to download
	_, err = s.viewer.Download(ctx, g.Token, "", d.ViewerTicket)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestViewerClient_PasswordRequired(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	g, err := s.grants.Create(ctx, s.owner, s.asset, services.GrantInput{Name: "pw", Password: "hunter22"})
	require.NoError(t, err)

	needPw, err := s.viewer.Initiate(ctx, g.Token, "viewer@example.com", "")
	require.NoError(t, err)
	assert.True(t, needPw)

	_, err = s.viewer.Initiate(ctx, g.Token, "viewer@example.com", "wrong")
	assert.ErrorIs(t, err, ErrRejected)

	needPw, err = s.viewer.Initiate(ctx, g.Token, "viewer@example.com", "hunter22")
	require.NoError(t, err)
	assert.False(t, needPw)
}

func TestViewerClient_AllowListAndRequest(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	g, err := s.grants.Create(ctx, s.owner, s.asset, services.GrantInput{Name: "team", AllowedEmails: []string{"a@example.com"}})
	require.NoError(t, err)

	_, err = s.viewer.Initiate(ctx, g.Token, "b@example.com", "")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.True(t, apiErr.CanRequestAccess)
	assert.ErrorIs(t, err, ErrUnauthorized)

	st, err := s.viewer.Request(ctx, g.Token, "b@example.com", "please")
	require.NoError(t, err)
	assert.Equal(t, "pending", st)

	st, err = s.viewer.Request(ctx, g.Token, "b@example.com", "again")
	require.NoError(t, err)
	assert.Equal(t, "pending", st)

	_, err = s.viewer.Initiate(ctx, g.Token, "b@example.com", "")
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "pending", apiErr.RequestStatus)
}

func TestViewerClient_UnknownToken(t *testing.T) {
	s := newStack(t)
	_, err := s.viewer.Initiate(context.Background(), "nope", "v@example.com", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAPIError_Is(t *testing.T) {
	assert.ErrorIs(t, &APIError{StatusCode: 429}, ErrUnavailable)
	assert.ErrorIs(t, &APIError{StatusCode: 503}, ErrUnavailable)
	assert.NotErrorIs(t, &APIError{StatusCode: 404}, ErrUnauthorized)
}

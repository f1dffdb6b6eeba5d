package services

import (
	"context"
	"image"
	"image/color"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/imagekeeper/internal/logging"
	"github.com/dmitrijs2005/imagekeeper/internal/pipeline"
	"github.com/dmitrijs2005/imagekeeper/internal/raster"
	"github.com/dmitrijs2005/imagekeeper/internal/server/blob"
	"github.com/dmitrijs2005/imagekeeper/internal/server/config"
	"github.com/dmitrijs2005/imagekeeper/internal/server/models"
	"github.com/dmitrijs2005/imagekeeper/internal/server/repositories/memstore"
	"github.com/dmitrijs2005/imagekeeper/internal/timex"
)

var testMasterKey = []byte("0123456789abcdef0123456789abcdef")

type sentMail struct {
	Subject string
	Body    string
	To      []string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (m *fakeMailer) Send(_ context.Context, subject, body string, to ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{Subject: subject, Body: body, To: to})
	return nil
}

func (m *fakeMailer) Notify(ctx context.Context, subject, body string, to ...string) {
	_ = m.Send(ctx, subject, body, to...)
}

func (m *fakeMailer) last() sentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.sent) == 0 {
		return sentMail{}
	}
	return m.sent[len(m.sent)-1]
}

var codeRe = regexp.MustCompile(`code is: (\d{6})`)

// codeFor returns the newest code mailed to email.
func (m *fakeMailer) codeFor(t *testing.T, email string) string {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.sent) - 1; i >= 0; i-- {
		if len(m.sent[i].To) == 1 && m.sent[i].To[0] == email {
			if mm := codeRe.FindStringSubmatch(m.sent[i].Body); mm != nil {
				return mm[1]
			}
		}
	}
	t.Fatalf("no code mailed to %s", email)
	return ""
}

// fakeBuilder stands in for the pipeline and re-encodes the input.
type fakeBuilder struct {
	calls    int
	features pipeline.Features
}

func (b *fakeBuilder) Run(_ context.Context, img image.Image, f pipeline.Features, _ pipeline.Settings) (*pipeline.Artifact, error) {
	b.calls++
	b.features = f
	data, err := raster.EncodePNG(img)
	if err != nil {
		return nil, err
	}
	return &pipeline.Artifact{Data: data, ContentType: pipeline.ContentType}, nil
}

type env struct {
	store    *memstore.Store
	blobs    *blob.BadgerStore
	clock    *timex.FixedClock
	mailer   *fakeMailer
	notifier *fakeMailer
	builder  *fakeBuilder
	reader   *fakeReader

	users    *UserService
	assets   *AssetService
	settings *SettingsService
	grants   *GrantService
	access   *AccessService
	inspect  *InspectService
}

func newEnv(t *testing.T) *env {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()

	blobs, err := blob.OpenBadger("", cfg.PublicBaseURL, []byte("sign"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = blobs.Close() })

	e := &env{
		store:    memstore.New(),
		blobs:    blobs,
		clock:    &timex.FixedClock{T: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)},
		mailer:   &fakeMailer{},
		notifier: &fakeMailer{},
		builder:  &fakeBuilder{},
		reader:   &fakeReader{},
	}
	l := logging.Nop()
	e.users = NewUserService(e.store, e.store, cfg)
	e.assets = NewAssetService(e.store, e.store, blobs, testMasterKey, "", l)
	e.settings = NewSettingsService(e.store, e.store)
	e.grants = NewGrantService(e.store, e.store, blobs, e.assets, e.builder, l)
	e.access = NewAccessService(e.store, e.store, blobs, e.assets, e.mailer, e.notifier, e.clock, cfg, l)
	e.inspect = NewInspectService(e.store, e.store, blobs, e.assets, e.reader, t.TempDir(), l)
	return e
}

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 7), G: uint8(y * 5), B: uint8(x ^ y), A: 0xFF})
		}
	}
	data, err := raster.EncodePNG(img)
	require.NoError(t, err)
	return data
}

// seedOwner registers an owner and uploads one asset.
func (e *env) seedOwner(t *testing.T) (*models.User, *models.Asset) {
	t.Helper()
	ctx := context.Background()
	u, err := e.users.Register(ctx, "owner@example.com", "password123")
	require.NoError(t, err)
	a, err := e.assets.Upload(ctx, u.ID, "sunset.png", testPNG(t, 32, 32), "")
	require.NoError(t, err)
	return u, a
}

func (e *env) seedGrant(t *testing.T, in GrantInput) (*models.User, *models.Grant) {
	t.Helper()
	u, a := e.seedOwner(t)
	g, err := e.grants.Create(context.Background(), u.ID, a.ID, in)
	require.NoError(t, err)
	return u, g
}

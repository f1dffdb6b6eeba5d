package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/imagekeeper/internal/common"
	"github.com/dmitrijs2005/imagekeeper/internal/logging"
	"github.com/dmitrijs2005/imagekeeper/internal/pipeline"
	"github.com/dmitrijs2005/imagekeeper/internal/server/auth"
	"github.com/dmitrijs2005/imagekeeper/internal/server/blob"
	"github.com/dmitrijs2005/imagekeeper/internal/server/config"
	"github.com/dmitrijs2005/imagekeeper/internal/server/models"
)

var viewer = ClientInfo{IP: "203.0.113.7", Country: "LV"}

func TestInitiate_OpenGrantMailsCode(t *testing.T) {
	e := newEnv(t)
	_, g := e.seedGrant(t, GrantInput{Name: "friends"})

	res, err := e.access.Initiate(context.Background(), g.Token, " Bob@Example.com ", "", viewer)
	require.NoError(t, err)
	assert.True(t, res.OTPSent)

	m := e.mailer.last()
	assert.Equal(t, "Access Verification Code", m.Subject)
	assert.Equal(t, []string{"bob@example.com"}, m.To)
	assert.Contains(t, m.Body, "Valid for 5 minutes.")
}

func TestInitiate_Errors(t *testing.T) {
	e := newEnv(t)
	_, g := e.seedGrant(t, GrantInput{Name: "friends"})

	_, err := e.access.Initiate(context.Background(), g.Token, "  ", "", viewer)
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = e.access.Initiate(context.Background(), "missing", "bob@example.com", "", viewer)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	e.mailer.err = errors.New("smtp down")
	_, err = e.access.Initiate(context.Background(), g.Token, "bob@example.com", "", viewer)
	assert.ErrorIs(t, err, common.ErrorInternal)
}

func TestInitiate_Password(t *testing.T) {
	e := newEnv(t)
	u, g := e.seedGrant(t, GrantInput{Name: "friends", Password: "hunter22"})
	ctx := context.Background()

	res, err := e.access.Initiate(ctx, g.Token, "bob@example.com", "", viewer)
	require.NoError(t, err)
	assert.True(t, res.RequiresPassword)
	assert.False(t, res.OTPSent)
	assert.Empty(t, e.mailer.sent)

	_, err = e.access.Initiate(ctx, g.Token, "bob@example.com", "wrong-one", viewer)
	assert.ErrorIs(t, err, common.ErrPasswordMismatch)

	res, err = e.access.Initiate(ctx, g.Token, "bob@example.com", "hunter22", viewer)
	require.NoError(t, err)
	assert.True(t, res.OTPSent)

	entries, err := e.access.AuditLog(ctx, u.ID, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.ActionAttempt, entries[0].Action)
	assert.False(t, entries[0].Success)
}

func TestInitiate_AllowList(t *testing.T) {
	e := newEnv(t)
	u, g := e.seedGrant(t, GrantInput{Name: "family", AllowedEmails: []string{"Alice@Example.com"}})
	ctx := context.Background()

	_, err := e.access.Initiate(ctx, g.Token, "alice@example.com", "", viewer)
	require.NoError(t, err)

	var authErr *AuthorizationError
	_, err = e.access.Initiate(ctx, g.Token, "bob@example.com", "", viewer)
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, ReasonCanRequest, authErr.Reason)
	assert.ErrorIs(t, err, common.ErrEmailNotAuthorized)

	outcome, err := e.access.Request(ctx, g.Token, "bob@example.com", "please")
	require.NoError(t, err)
	assert.Equal(t, RequestCreated, outcome)

	_, err = e.access.Initiate(ctx, g.Token, "bob@example.com", "", viewer)
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, ReasonPending, authErr.Reason)

	reqs, err := e.access.ListRequests(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, reqs, 1)

	_, err = e.access.Review(ctx, u.ID, reqs[0].ID, "deny")
	require.NoError(t, err)
	_, err = e.access.Initiate(ctx, g.Token, "bob@example.com", "", viewer)
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, ReasonDenied, authErr.Reason)

	outcome, err = e.access.Request(ctx, g.Token, "bob@example.com", "pretty please")
	require.NoError(t, err)
	assert.Equal(t, RequestResubmitted, outcome)

	_, err = e.access.Review(ctx, u.ID, reqs[0].ID, "approve")
	require.NoError(t, err)
	assert.Equal(t, "Access Request Approved", e.notifier.last().Subject)

	_, err = e.access.Initiate(ctx, g.Token, "bob@example.com", "", viewer)
	require.NoError(t, err)

	got, err := e.store.Grants(e.store.Conn()).GetByID(ctx, g.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alice@example.com", "bob@example.com"}, got.AllowedEmails)
}

func TestRequest_Outcomes(t *testing.T) {
	e := newEnv(t)
	u, g := e.seedGrant(t, GrantInput{Name: "family", AllowedEmails: []string{"alice@example.com"}})
	ctx := context.Background()

	_, err := e.access.Request(ctx, g.Token, "", "hi")
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = e.access.Request(ctx, g.Token, "bob@example.com", "hi")
	require.NoError(t, err)
	n := e.notifier.last()
	assert.Equal(t, "New Access Request", n.Subject)
	assert.Equal(t, []string{"owner@example.com"}, n.To)
	assert.Equal(t, "bob@example.com has requested access to your protected image.\n\nMessage: hi", n.Body)

	_, err = e.access.Request(ctx, g.Token, "bob@example.com", "again")
	assert.ErrorIs(t, err, common.ErrRequestPending)

	reqs, err := e.access.ListRequests(ctx, u.ID)
	require.NoError(t, err)
	_, err = e.access.Review(ctx, u.ID, reqs[0].ID, "approve")
	require.NoError(t, err)

	outcome, err := e.access.Request(ctx, g.Token, "bob@example.com", "again")
	require.NoError(t, err)
	assert.Equal(t, RequestAlreadyApproved, outcome)
}

func TestRequest_OwnerOptedOut(t *testing.T) {
	e := newEnv(t)
	u, g := e.seedGrant(t, GrantInput{Name: "family", AllowedEmails: []string{"alice@example.com"}})
	ctx := context.Background()

	require.NoError(t, e.users.UpdateNotificationSettings(ctx, &models.NotificationSettings{UserID: u.ID}))
	_, err := e.access.Request(ctx, g.Token, "bob@example.com", "hi")
	require.NoError(t, err)
	assert.Empty(t, e.notifier.sent)
}

func TestReview_Validation(t *testing.T) {
	e := newEnv(t)
	u, g := e.seedGrant(t, GrantInput{Name: "family", AllowedEmails: []string{"alice@example.com"}})
	ctx := context.Background()

	_, err := e.access.Request(ctx, g.Token, "bob@example.com", "hi")
	require.NoError(t, err)
	reqs, err := e.access.ListRequests(ctx, u.ID)
	require.NoError(t, err)

	_, err = e.access.Review(ctx, u.ID, reqs[0].ID, "maybe")
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = e.access.Review(ctx, "someone-else", reqs[0].ID, "approve")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestVerify_CodeWindow(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		wantErr error
	}{
		{"just inside", 4*time.Minute + 59*time.Second, nil},
		{"just outside", 5*time.Minute + 1*time.Second, common.ErrInvalidOTP},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(t)
			_, g := e.seedGrant(t, GrantInput{Name: "friends"})
			ctx := context.Background()

			_, err := e.access.Initiate(ctx, g.Token, "bob@example.com", "", viewer)
			require.NoError(t, err)
			code := e.mailer.codeFor(t, "bob@example.com")

			e.clock.Advance(tt.elapsed)
			d, err := e.access.Verify(ctx, g.Token, "bob@example.com", code, viewer)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, d.Views)
		})
	}
}

func TestVerify_CodeIsSingleUse(t *testing.T) {
	e := newEnv(t)
	_, g := e.seedGrant(t, GrantInput{Name: "friends"})
	ctx := context.Background()

	_, err := e.access.Initiate(ctx, g.Token, "bob@example.com", "", viewer)
	require.NoError(t, err)
	code := e.mailer.codeFor(t, "bob@example.com")

	_, err = e.access.Verify(ctx, g.Token, "bob@example.com", code, viewer)
	require.NoError(t, err)
	_, err = e.access.Verify(ctx, g.Token, "bob@example.com", code, viewer)
	assert.ErrorIs(t, err, common.ErrInvalidOTP)
}

func TestVerify_WrongCodeLeavesCountUntouched(t *testing.T) {
	e := newEnv(t)
	u, g := e.seedGrant(t, GrantInput{Name: "friends"})
	ctx := context.Background()

	_, err := e.access.Initiate(ctx, g.Token, "bob@example.com", "", viewer)
	require.NoError(t, err)
	code := e.mailer.codeFor(t, "bob@example.com")
	wrong := "000000"
	if code == wrong {
		wrong = "111111"
	}

	_, err = e.access.Verify(ctx, g.Token, "bob@example.com", wrong, viewer)
	assert.ErrorIs(t, err, common.ErrInvalidOTP)
	_, err = e.access.Verify(ctx, g.Token, "bob@example.com", "", viewer)
	assert.ErrorIs(t, err, common.ErrValidation)

	got, err := e.store.Grants(e.store.Conn()).GetByID(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.CurrentViews)

	// The code is still redeemable after a failed attempt.
	_, err = e.access.Verify(ctx, g.Token, "bob@example.com", code, viewer)
	require.NoError(t, err)

	entries, err := e.access.AuditLog(ctx, u.ID, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, models.ActionView, entries[0].Action)
	assert.True(t, entries[0].Success)
	assert.Equal(t, "203.0.113.7", entries[0].IP)
}

func TestVerify_OriginalURLCarriesTicket(t *testing.T) {
	e := newEnv(t)
	_, g := e.seedGrant(t, GrantInput{Name: "friends"})
	ctx := context.Background()

	_, err := e.access.Initiate(ctx, g.Token, "bob@example.com", "", viewer)
	require.NoError(t, err)
	d, err := e.access.Verify(ctx, g.Token, "bob@example.com", e.mailer.codeFor(t, "bob@example.com"), viewer)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(d.URL, "http://localhost:8080/api/v1/access/"+g.Token+"/image?ticket="))
	claims, err := auth.ParseViewerTicket(d.ViewerTicket, []byte("secretKey"))
	require.NoError(t, err)
	assert.Equal(t, g.ID, claims.GrantID)
	assert.Equal(t, "bob@example.com", claims.Email)

	content, err := e.access.Image(ctx, g.Token, d.ViewerTicket)
	require.NoError(t, err)
	assert.Equal(t, testPNG(t, 32, 32), content.Data)

	_, err = e.access.Image(ctx, g.Token, "garbage")
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestVerify_MaxViewsUnderConcurrency(t *testing.T) {
	e := newEnv(t)
	_, g := e.seedGrant(t, GrantInput{Name: "friends", MaxViews: 3})
	ctx := context.Background()

	const viewers = 10
	emails := make([]string, viewers)
	codes := make([]string, viewers)
	for i := range emails {
		emails[i] = string(rune('a'+i)) + "@example.com"
		_, err := e.access.Initiate(ctx, g.Token, emails[i], "", viewer)
		require.NoError(t, err)
		codes[i] = e.mailer.codeFor(t, emails[i])
	}

	var ok, exhausted atomic.Int32
	var wg sync.WaitGroup
	for i := range emails {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := e.access.Verify(ctx, g.Token, emails[i], codes[i], viewer)
			switch {
			case err == nil:
				ok.Add(1)
			case errors.Is(err, common.ErrGrantExhausted):
				exhausted.Add(1)
			}
		}(i)
	}
	wg.Wait()

	assert.EqualValues(t, 3, ok.Load())
	assert.EqualValues(t, viewers-3, exhausted.Load())

	got, err := e.store.Grants(e.store.Conn()).GetByID(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.CurrentViews)

	_, err = e.access.Initiate(ctx, g.Token, "late@example.com", "", viewer)
	assert.ErrorIs(t, err, common.ErrGrantExhausted)
}

func enableWatermark(t *testing.T, e *env, ownerID, assetID string) {
	t.Helper()
	ctx := context.Background()
	st, err := e.settings.Get(ctx, ownerID, assetID)
	require.NoError(t, err)
	st.WatermarkEnabled = true
	_, err = e.settings.Update(ctx, ownerID, st)
	require.NoError(t, err)
}

func TestDownload(t *testing.T) {
	e := newEnv(t)
	u, a := e.seedOwner(t)
	ctx := context.Background()
	enableWatermark(t, e, u.ID, a.ID)
	secret := []byte("secretKey")

	features := pipeline.Features{Watermark: true}
	noDownload, err := e.grants.Create(ctx, u.ID, a.ID, GrantInput{Name: "view only", Features: features})
	require.NoError(t, err)
	ticket, err := auth.GenerateViewerTicket(noDownload.ID, "v@example.com", secret, time.Minute)
	require.NoError(t, err)
	_, err = e.access.Download(ctx, noDownload.Token, ViewerIdentity{Ticket: ticket}, viewer)
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	plain, err := e.grants.Create(ctx, u.ID, a.ID, GrantInput{Name: "plain", AllowDownload: true})
	require.NoError(t, err)
	ticket, err = auth.GenerateViewerTicket(plain.ID, "v@example.com", secret, time.Minute)
	require.NoError(t, err)
	_, err = e.access.Download(ctx, plain.Token, ViewerIdentity{Ticket: ticket}, viewer)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	open, err := e.grants.Create(ctx, u.ID, a.ID, GrantInput{Name: "open", AllowDownload: true, Features: features})
	require.NoError(t, err)
	g, err := e.grants.Create(ctx, u.ID, a.ID, GrantInput{
		Name: "download", AllowDownload: true, Features: features,
		AllowedEmails: []string{"first@example.com", "second@example.com"},
	})
	require.NoError(t, err)
	listTicket, err := auth.GenerateViewerTicket(g.ID, "second@example.com", secret, time.Minute)
	require.NoError(t, err)
	openTicket, err := auth.GenerateViewerTicket(open.ID, "ticket@example.com", secret, time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		id    ViewerIdentity
		want  string
	}{
		{"header wins", g.Token, ViewerIdentity{HeaderEmail: "Header@Example.com", Ticket: listTicket}, "header@example.com"},
		{"allow-list next", g.Token, ViewerIdentity{Ticket: listTicket}, "first@example.com"},
		{"ticket email last", open.Token, ViewerIdentity{Ticket: openTicket}, "ticket@example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := e.access.Download(ctx, tt.token, tt.id, viewer)
			require.NoError(t, err)
			assert.Equal(t, pipeline.ContentType, c.ContentType)
			assert.NotEmpty(t, c.Data)

			entries, err := e.access.AuditLog(ctx, u.ID, 1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, entries[0].Email)
			assert.Equal(t, models.ActionDownload, entries[0].Action)
			assert.True(t, entries[0].Success)
		})
	}
	assert.Equal(t, "Protected Image Downloaded", e.notifier.last().Subject)
}

func TestDownload_RequiresVerifiedViewer(t *testing.T) {
	e := newEnv(t)
	u, a := e.seedOwner(t)
	ctx := context.Background()
	enableWatermark(t, e, u.ID, a.ID)

	g, err := e.grants.Create(ctx, u.ID, a.ID, GrantInput{
		Name: "guarded", Password: "open sesame", AllowedEmails: []string{"only@example.com"},
		MaxViews: 1, AllowDownload: true, Features: pipeline.Features{Watermark: true},
	})
	require.NoError(t, err)
	other, err := auth.GenerateViewerTicket("another-grant", "only@example.com", []byte("secretKey"), time.Minute)
	require.NoError(t, err)
	expired, err := auth.GenerateViewerTicket(g.ID, "only@example.com", []byte("secretKey"), -time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name    string
		id      ViewerIdentity
		wantErr error
	}{
		{"no ticket", ViewerIdentity{}, common.ErrorUnauthorized},
		{"header alone", ViewerIdentity{HeaderEmail: "only@example.com"}, common.ErrorUnauthorized},
		{"garbage ticket", ViewerIdentity{Ticket: "garbage"}, common.ErrInvalidToken},
		{"ticket for another grant", ViewerIdentity{Ticket: other}, common.ErrInvalidToken},
		{"expired ticket", ViewerIdentity{Ticket: expired}, common.ErrTokenExpired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.access.Download(ctx, g.Token, tt.id, viewer)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	entries, err := e.access.AuditLog(ctx, u.ID, 0)
	require.NoError(t, err)
	require.Len(t, entries, len(tests))
	for _, en := range entries {
		assert.Equal(t, models.ActionDownload, en.Action)
		assert.False(t, en.Success)
	}

	_, err = e.access.Initiate(ctx, g.Token, "only@example.com", "open sesame", viewer)
	require.NoError(t, err)
	d, err := e.access.Verify(ctx, g.Token, "only@example.com", e.mailer.codeFor(t, "only@example.com"), viewer)
	require.NoError(t, err)
	require.True(t, d.AllowDownload)

	// The ticket minted by the last allowed view still covers its download.
	c, err := e.access.Download(ctx, g.Token, ViewerIdentity{Ticket: d.ViewerTicket}, viewer)
	require.NoError(t, err)
	assert.NotEmpty(t, c.Data)

	got, err := e.store.Grants(e.store.Conn()).GetByID(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.CurrentViews)
}

type presignFailStore struct {
	blob.Store
}

func (presignFailStore) PresignGet(context.Context, string) (string, error) {
	return "", errors.New("presign unavailable")
}

func TestVerify_URLFailureCostsNoView(t *testing.T) {
	e := newEnv(t)
	u, a := e.seedOwner(t)
	ctx := context.Background()
	enableWatermark(t, e, u.ID, a.ID)

	g, err := e.grants.Create(ctx, u.ID, a.ID, GrantInput{Name: "one", MaxViews: 1, Features: pipeline.Features{Watermark: true}})
	require.NoError(t, err)
	require.NotEmpty(t, g.ArtifactKey)

	cfg := &config.Config{}
	cfg.LoadDefaults()
	broken := NewAccessService(e.store, e.store, presignFailStore{e.blobs}, e.assets, e.mailer, e.notifier, e.clock, cfg, logging.Nop())

	_, err = broken.Initiate(ctx, g.Token, "bob@example.com", "", viewer)
	require.NoError(t, err)
	code := e.mailer.codeFor(t, "bob@example.com")

	_, err = broken.Verify(ctx, g.Token, "bob@example.com", code, viewer)
	require.Error(t, err)

	got, err := e.store.Grants(e.store.Conn()).GetByID(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.CurrentViews)

	d, err := e.access.Verify(ctx, g.Token, "bob@example.com", code, viewer)
	require.NoError(t, err)
	assert.Equal(t, 1, d.Views)
}

func TestIdentify_FallsBackToTicketThenAnonymous(t *testing.T) {
	e := newEnv(t)
	g := &models.Grant{ID: "g1"}
	ticket, err := auth.GenerateViewerTicket("g1", "ticket@example.com", []byte("secretKey"), time.Minute)
	require.NoError(t, err)
	other, err := auth.GenerateViewerTicket("g2", "other@example.com", []byte("secretKey"), time.Minute)
	require.NoError(t, err)

	assert.Equal(t, "ticket@example.com", e.access.identify(g, ViewerIdentity{Ticket: ticket}))
	assert.Equal(t, common.AnonymousViewer, e.access.identify(g, ViewerIdentity{Ticket: other}))
	assert.Equal(t, common.AnonymousViewer, e.access.identify(g, ViewerIdentity{}))
}

func TestGrantDelete_KeepsAuditHistory(t *testing.T) {
	e := newEnv(t)
	u, g := e.seedGrant(t, GrantInput{Name: "friends"})
	ctx := context.Background()

	_, err := e.access.Initiate(ctx, g.Token, "bob@example.com", "", viewer)
	require.NoError(t, err)
	_, err = e.access.Verify(ctx, g.Token, "bob@example.com", e.mailer.codeFor(t, "bob@example.com"), viewer)
	require.NoError(t, err)

	assert.ErrorIs(t, e.grants.Delete(ctx, "someone-else", g.ID), common.ErrorNotFound)
	require.NoError(t, e.grants.Delete(ctx, u.ID, g.ID))

	entries, err := e.access.AuditLog(ctx, u.ID, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].GrantID)
	assert.Equal(t, "friends", entries[0].GrantName)
	assert.Equal(t, g.Token, entries[0].GrantToken)
	assert.Equal(t, "sunset.png", entries[0].AssetName)

	_, err = e.access.Initiate(ctx, g.Token, "bob@example.com", "", viewer)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

package services

import (
	"context"
	"encoding/base32"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"

	"github.com/dmitrijs2005/imagekeeper/internal/common"
	"github.com/dmitrijs2005/imagekeeper/internal/cryptox"
	"github.com/dmitrijs2005/imagekeeper/internal/dbx"
	"github.com/dmitrijs2005/imagekeeper/internal/logging"
	"github.com/dmitrijs2005/imagekeeper/internal/metrics"
	"github.com/dmitrijs2005/imagekeeper/internal/pipeline"
	"github.com/dmitrijs2005/imagekeeper/internal/server/auth"
	"github.com/dmitrijs2005/imagekeeper/internal/server/blob"
	"github.com/dmitrijs2005/imagekeeper/internal/server/config"
	"github.com/dmitrijs2005/imagekeeper/internal/server/models"
	"github.com/dmitrijs2005/imagekeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/imagekeeper/internal/timex"
)

// Authorization failure reasons reported to viewers whose email is not on
// the allow-list.
const (
	ReasonCanRequest = "can_request"
	ReasonPending    = "pending"
	ReasonDenied     = "denied"
)

const otpSecretSize = 20

var otpOpts = totp.ValidateOpts{
	Period:    uint(models.OTPValidity / time.Second),
	Skew:      1,
	Digits:    otp.DigitsSix,
	Algorithm: otp.AlgorithmSHA1,
}

// AuthorizationError is returned when an email may not use a grant yet.
type AuthorizationError struct {
	Reason string
}

func (e *AuthorizationError) Error() string {
	return "email not authorized: " + e.Reason
}

func (e *AuthorizationError) Is(target error) bool { return target == common.ErrEmailNotAuthorized }

// Mailer delivers one message synchronously.
type Mailer interface {
	Send(ctx context.Context, subject, body string, to ...string) error
}

// Notifier delivers a message in the background.
type Notifier interface {
	Notify(ctx context.Context, subject, body string, to ...string)
}

// ClientInfo is the best-effort origin of a public request.
type ClientInfo struct {
	IP      string
	Country string
	Region  string
	City    string
}

type InitiateResult struct {
	RequiresPassword bool
	OTPSent          bool
}

// Disclosure is what a verified viewer receives.
type Disclosure struct {
	URL           string
	AllowDownload bool
	Features      pipeline.Features
	ViewerTicket  string
	Views         int
}

type RequestOutcome int

const (
	RequestCreated RequestOutcome = iota
	RequestResubmitted
	RequestAlreadyApproved
)

// ViewerIdentity carries the hints used to name a downloader.
type ViewerIdentity struct {
	HeaderEmail string
	Ticket      string
}

// Content is an image streamed to a viewer.
type Content struct {
	Data        []byte
	ContentType string
	Filename    string
}

// AccessService runs the public grant flow: initiate, verify, request,
// download, and the owner side of access requests and the audit log.
type AccessService struct {
	runner        dbx.Runner
	repomanager   repomanager.RepositoryManager
	blobs         blob.Store
	assets        *AssetService
	mailer        Mailer
	notifier      Notifier
	clock         timex.Clock
	secret        []byte
	ticketTTL     time.Duration
	publicBaseURL string
	logger        logging.Logger
}

func NewAccessService(r dbx.Runner, m repomanager.RepositoryManager, blobs blob.Store, assets *AssetService,
	mailer Mailer, notifier Notifier, clock timex.Clock, cfg *config.Config, l logging.Logger) *AccessService {
	return &AccessService{
		runner:        r,
		repomanager:   m,
		blobs:         blobs,
		assets:        assets,
		mailer:        mailer,
		notifier:      notifier,
		clock:         clock,
		secret:        []byte(cfg.SecretKey),
		ticketTTL:     cfg.ViewerTicketValidityDuration,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:        l.With("module", "access"),
	}
}

// Initiate checks the grant, the allow-list and the password, then mails a
// one-time code.
func (s *AccessService) Initiate(ctx context.Context, token, email, password string, client ClientInfo) (*InitiateResult, error) {
	email = common.NormalizeEmail(email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", common.ErrValidation)
	}

	g, err := s.repomanager.Grants(s.runner.Conn()).GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if !g.IsValid() {
		s.audit(ctx, g, email, client, models.ActionAttempt, false)
		s.outcome("initiate", "exhausted")
		return nil, common.ErrGrantExhausted
	}

	if !g.AllowsEmail(email) {
		if err := s.checkRequest(ctx, g, email); err != nil {
			s.outcome("initiate", "unauthorized")
			return nil, err
		}
	}

	if g.RequiresPassword() {
		if password == "" {
			return &InitiateResult{RequiresPassword: true}, nil
		}
		if !cryptox.CheckPassword(g.PasswordHash, password) {
			s.audit(ctx, g, email, client, models.ActionAttempt, false)
			s.outcome("initiate", "bad_password")
			return nil, common.ErrPasswordMismatch
		}
	}

	if err := s.issueOTP(ctx, g, email); err != nil {
		return nil, err
	}
	s.outcome("initiate", "otp_sent")
	return &InitiateResult{OTPSent: true}, nil
}

// checkRequest lets an approved requester in by adding them to the
// allow-list and explains the refusal otherwise.
func (s *AccessService) checkRequest(ctx context.Context, g *models.Grant, email string) error {
	req, err := s.repomanager.AccessRequests(s.runner.Conn()).Find(ctx, g.ID, email)
	if errors.Is(err, common.ErrorNotFound) {
		return &AuthorizationError{Reason: ReasonCanRequest}
	}
	if err != nil {
		return err
	}

	switch req.Status {
	case models.RequestApproved:
		return s.repomanager.Grants(s.runner.Conn()).AppendAllowedEmail(ctx, g.ID, email)
	case models.RequestPending:
		return &AuthorizationError{Reason: ReasonPending}
	default:
		return &AuthorizationError{Reason: ReasonDenied}
	}
}

func (s *AccessService) issueOTP(ctx context.Context, g *models.Grant, email string) error {
	now := s.clock.Now()
	secret := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(common.GenerateRandByteArray(otpSecretSize))

	code, err := totp.GenerateCodeCustom(secret, now, otpOpts)
	if err != nil {
		return common.ErrorInternal
	}

	c := &models.OTPChallenge{
		ID:        uuid.NewString(),
		GrantID:   g.ID,
		Email:     email,
		Secret:    secret,
		CreatedAt: now,
	}
	if err := s.repomanager.OTPs(s.runner.Conn()).Create(ctx, c); err != nil {
		return err
	}

	body := fmt.Sprintf("Your verification code is: %s\nValid for %d minutes.", code, int(models.OTPValidity.Minutes()))
	if err := s.mailer.Send(ctx, "Access Verification Code", body, email); err != nil {
		s.logger.Error(ctx, "otp mail failed", "grant_id", g.ID, "error", err)
		return common.ErrorInternal
	}
	return nil
}

// Verify redeems a one-time code. Claiming the code and counting the view
// happen in one transaction, so neither happens without the other.
func (s *AccessService) Verify(ctx context.Context, token, email, code string, client ClientInfo) (*Disclosure, error) {
	email = common.NormalizeEmail(email)
	code = strings.TrimSpace(code)
	if email == "" || code == "" {
		return nil, fmt.Errorf("%w: email and otp are required", common.ErrValidation)
	}

	g, err := s.repomanager.Grants(s.runner.Conn()).GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if !g.IsValid() {
		s.audit(ctx, g, email, client, models.ActionAttempt, false)
		s.outcome("verify", "exhausted")
		return nil, common.ErrGrantExhausted
	}

	// Ticket and URL come first so a failure here costs no view.
	ticket, err := auth.GenerateViewerTicket(g.ID, email, s.secret, s.ticketTTL)
	if err != nil {
		s.logger.Error(ctx, "viewer ticket failed", "grant_id", g.ID, "error", err)
		return nil, common.ErrorInternal
	}
	u, err := s.imageURL(ctx, g, ticket)
	if err != nil {
		s.logger.Error(ctx, "image url failed", "grant_id", g.ID, "error", err)
		return nil, err
	}

	var views int
	err = s.runner.InTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.claimOTP(ctx, tx, g.ID, email, code); err != nil {
			return err
		}
		var err error
		if views, err = s.repomanager.Grants(tx).IncrementViews(ctx, g.ID); err != nil {
			return err
		}
		return s.repomanager.AuditLog(tx).Append(ctx, s.entry(g, email, client, models.ActionView, true))
	})
	if err != nil {
		s.audit(ctx, g, email, client, models.ActionAttempt, false)
		s.outcome("verify", resultOf(err))
		return nil, err
	}

	s.outcome("verify", "granted")
	s.logger.Info(ctx, "access granted", "grant_id", g.ID, "views", views)
	return &Disclosure{
		URL:           u,
		AllowDownload: g.AllowDownload,
		Features:      g.Features,
		ViewerTicket:  ticket,
		Views:         views,
	}, nil
}

func (s *AccessService) claimOTP(ctx context.Context, tx dbx.DBTX, grantID, email, code string) error {
	repo := s.repomanager.OTPs(tx)
	c, err := repo.LatestUnused(ctx, grantID, email)
	if errors.Is(err, common.ErrorNotFound) {
		return common.ErrInvalidOTP
	}
	if err != nil {
		return err
	}

	now := s.clock.Now()
	if !c.Valid(now) {
		return common.ErrInvalidOTP
	}
	ok, err := totp.ValidateCustom(code, c.Secret, now, otpOpts)
	if err != nil || !ok {
		return common.ErrInvalidOTP
	}

	claimed, err := repo.Claim(ctx, c.ID)
	if err != nil {
		return err
	}
	if !claimed {
		return common.ErrInvalidOTP
	}
	return nil
}

// imageURL prefers the presigned derived artifact and falls back to the
// ticket-guarded original.
func (s *AccessService) imageURL(ctx context.Context, g *models.Grant, ticket string) (string, error) {
	if g.ArtifactKey != "" {
		return s.blobs.PresignGet(ctx, g.ArtifactKey)
	}
	return fmt.Sprintf("%s/api/v1/access/%s/image?ticket=%s", s.publicBaseURL, url.PathEscape(g.Token), url.QueryEscape(ticket)), nil
}

// Request files or refreshes an access request for email.
func (s *AccessService) Request(ctx context.Context, token, email, message string) (RequestOutcome, error) {
	email = common.NormalizeEmail(email)
	if email == "" {
		return 0, fmt.Errorf("%w: email is required", common.ErrValidation)
	}

	g, err := s.repomanager.Grants(s.runner.Conn()).GetByToken(ctx, token)
	if err != nil {
		return 0, err
	}

	repo := s.repomanager.AccessRequests(s.runner.Conn())
	now := s.clock.Now()

	existing, err := repo.Find(ctx, g.ID, email)
	switch {
	case errors.Is(err, common.ErrorNotFound):
		req := &models.AccessRequest{
			ID:        uuid.NewString(),
			GrantID:   g.ID,
			Email:     email,
			Message:   message,
			Status:    models.RequestPending,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := repo.Create(ctx, req); err != nil {
			if errors.Is(err, common.ErrAlreadyExists) {
				return 0, common.ErrRequestPending
			}
			return 0, err
		}
		s.notifyOwnerOfRequest(ctx, g, email, message)
		return RequestCreated, nil
	case err != nil:
		return 0, err
	}

	switch existing.Status {
	case models.RequestPending:
		return 0, common.ErrRequestPending
	case models.RequestApproved:
		return RequestAlreadyApproved, nil
	}

	existing.Status = models.RequestPending
	existing.Message = message
	existing.UpdatedAt = now
	if err := repo.Update(ctx, existing); err != nil {
		return 0, err
	}
	s.notifyOwnerOfRequest(ctx, g, email, message)
	return RequestResubmitted, nil
}

func (s *AccessService) notifyOwnerOfRequest(ctx context.Context, g *models.Grant, email, message string) {
	owner, prefs := s.ownerPrefs(ctx, g.OwnerID)
	if owner == nil || !prefs.AccessRequests {
		return
	}
	s.notifier.Notify(ctx, "New Access Request",
		fmt.Sprintf("%s has requested access to your protected image.\n\nMessage: %s", email, message),
		owner.Email)
}

// ListRequests returns pending requests on the owner's grants, newest first.
func (s *AccessService) ListRequests(ctx context.Context, ownerID string) ([]*models.AccessRequest, error) {
	return s.repomanager.AccessRequests(s.runner.Conn()).ListPendingByOwner(ctx, ownerID)
}

// Review approves or denies a request on one of the owner's grants.
func (s *AccessService) Review(ctx context.Context, ownerID, requestID, action string) (*models.AccessRequest, error) {
	var status string
	switch action {
	case "approve":
		status = models.RequestApproved
	case "deny":
		status = models.RequestDenied
	default:
		return nil, fmt.Errorf("%w: action must be approve or deny", common.ErrValidation)
	}

	req, err := s.repomanager.AccessRequests(s.runner.Conn()).GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	g, err := s.repomanager.Grants(s.runner.Conn()).GetByID(ctx, req.GrantID)
	if err != nil {
		return nil, err
	}
	if g.OwnerID != ownerID {
		return nil, common.ErrorNotFound
	}

	req.Status = status
	req.UpdatedAt = s.clock.Now()
	err = s.runner.InTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.AccessRequests(tx).Update(ctx, req); err != nil {
			return err
		}
		if status == models.RequestApproved {
			return s.repomanager.Grants(tx).AppendAllowedEmail(ctx, g.ID, req.Email)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if status == models.RequestApproved {
		s.notifier.Notify(ctx, "Access Request Approved", "Your request to access the protected image has been approved.", req.Email)
	} else {
		s.notifier.Notify(ctx, "Access Request Denied", "Your request to access the protected image has been denied.", req.Email)
	}
	req.GrantName = g.Name
	return req, nil
}

// Download returns the derived artifact of a grant that allows downloads.
// The caller must hold a viewer ticket issued by Verify for the same grant.
func (s *AccessService) Download(ctx context.Context, token string, id ViewerIdentity, client ClientInfo) (*Content, error) {
	g, err := s.repomanager.Grants(s.runner.Conn()).GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if err := s.checkTicket(g, id.Ticket); err != nil {
		s.audit(ctx, g, s.identify(g, id), client, models.ActionDownload, false)
		s.outcome("download", "unverified")
		return nil, err
	}
	if g.ArtifactKey == "" {
		return nil, common.ErrorNotFound
	}
	if !g.AllowDownload {
		return nil, common.ErrorUnauthorized
	}

	data, err := s.blobs.Get(ctx, g.ArtifactKey)
	if err != nil {
		return nil, err
	}

	email := s.identify(g, id)
	s.audit(ctx, g, email, client, models.ActionDownload, true)
	s.outcome("download", "ok")

	if owner, prefs := s.ownerPrefs(ctx, g.OwnerID); owner != nil && prefs.Downloads {
		s.notifier.Notify(ctx, "Protected Image Downloaded",
			fmt.Sprintf("%s downloaded your protected image shared as %q.", email, g.Name),
			owner.Email)
	}
	return &Content{Data: data, ContentType: pipeline.ContentType, Filename: "protected.png"}, nil
}

// checkTicket accepts only a live viewer ticket minted for g.
func (s *AccessService) checkTicket(g *models.Grant, ticket string) error {
	if ticket == "" {
		return common.ErrorUnauthorized
	}
	claims, err := auth.ParseViewerTicket(ticket, s.secret)
	if err != nil {
		return err
	}
	if claims.GrantID != g.ID {
		return common.ErrInvalidToken
	}
	return nil
}

// identify names the downloader: explicit header, then the first allow-list
// entry, then the ticket email, then a placeholder.
func (s *AccessService) identify(g *models.Grant, id ViewerIdentity) string {
	if e := common.NormalizeEmail(id.HeaderEmail); e != "" {
		return e
	}
	if len(g.AllowedEmails) > 0 {
		return g.AllowedEmails[0]
	}
	if id.Ticket != "" {
		if c, err := auth.ParseViewerTicket(id.Ticket, s.secret); err == nil && c.GrantID == g.ID {
			return c.Email
		}
	}
	return common.AnonymousViewer
}

// Image streams the grant's image to a holder of a valid viewer ticket: the
// derived artifact when one exists, the decrypted original otherwise.
func (s *AccessService) Image(ctx context.Context, token, ticket string) (*Content, error) {
	g, err := s.repomanager.Grants(s.runner.Conn()).GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if err := s.checkTicket(g, ticket); err != nil {
		return nil, err
	}

	if g.ArtifactKey != "" {
		data, err := s.blobs.Get(ctx, g.ArtifactKey)
		if err != nil {
			return nil, err
		}
		return &Content{Data: data, ContentType: pipeline.ContentType}, nil
	}

	a, err := s.repomanager.Assets(s.runner.Conn()).Get(ctx, g.AssetID)
	if err != nil {
		return nil, err
	}
	data, ct, err := s.assets.Open(ctx, a)
	if err != nil {
		return nil, err
	}
	return &Content{Data: data, ContentType: ct, Filename: a.Name}, nil
}

// AuditLog returns the newest entries for the owner's grants.
func (s *AccessService) AuditLog(ctx context.Context, ownerID string, limit int) ([]*models.AuditEntry, error) {
	if limit <= 0 || limit > 1000 {
		limit = 100
	}
	return s.repomanager.AuditLog(s.runner.Conn()).ListByOwner(ctx, ownerID, limit)
}

func (s *AccessService) ownerPrefs(ctx context.Context, ownerID string) (*models.User, *models.NotificationSettings) {
	owner, err := s.repomanager.Users(s.runner.Conn()).GetByID(ctx, ownerID)
	if err != nil {
		s.logger.Warn(ctx, "owner lookup failed", "owner_id", ownerID, "error", err)
		return nil, nil
	}
	prefs, err := loadNotificationSettings(ctx, s.repomanager, s.runner.Conn(), ownerID)
	if err != nil {
		s.logger.Warn(ctx, "notification settings lookup failed", "owner_id", ownerID, "error", err)
		return nil, nil
	}
	return owner, prefs
}

func (s *AccessService) entry(g *models.Grant, email string, client ClientInfo, action string, success bool) *models.AuditEntry {
	return &models.AuditEntry{
		ID:        uuid.NewString(),
		GrantID:   g.ID,
		Email:     email,
		IP:        client.IP,
		Country:   client.Country,
		Region:    client.Region,
		City:      client.City,
		Action:    action,
		Success:   success,
		CreatedAt: s.clock.Now(),
		GrantSnapshot: models.GrantSnapshot{
			GrantToken: g.Token,
			GrantName:  g.Name,
			AssetID:    g.AssetID,
			OwnerID:    g.OwnerID,
		},
	}
}

// audit appends outside any transaction. A failing audit write is logged
// and does not change the outcome.
func (s *AccessService) audit(ctx context.Context, g *models.Grant, email string, client ClientInfo, action string, success bool) {
	if err := s.repomanager.AuditLog(s.runner.Conn()).Append(ctx, s.entry(g, email, client, action, success)); err != nil {
		s.logger.Error(ctx, "audit append failed", "grant_id", g.ID, "action", action, "error", err)
	}
}

func (s *AccessService) outcome(action, result string) {
	metrics.AccessOutcomes.WithLabelValues(action, result).Inc()
}

func resultOf(err error) string {
	switch {
	case errors.Is(err, common.ErrInvalidOTP):
		return "invalid_otp"
	case errors.Is(err, common.ErrGrantExhausted):
		return "exhausted"
	default:
		return "error"
	}
}

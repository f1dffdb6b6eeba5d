// Package memstore keeps every repository in process memory. The server
// uses it when no database DSN is configured, and service tests use it.
//
// A single mutex guards all maps, so each repository call is atomic,
// including the conditional updates (view increments, OTP claims) that the
// Postgres repositories express as single statements. Store also implements
// dbx.Runner: transactions are serialized and undone on error.
package memstore

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"github.com/dmitrijs2005/imagekeeper/internal/dbx"
	"github.com/dmitrijs2005/imagekeeper/internal/server/models"
	"github.com/dmitrijs2005/imagekeeper/internal/server/repositories/accessrequests"
	"github.com/dmitrijs2005/imagekeeper/internal/server/repositories/assets"
	"github.com/dmitrijs2005/imagekeeper/internal/server/repositories/assetsettings"
	"github.com/dmitrijs2005/imagekeeper/internal/server/repositories/auditlog"
	"github.com/dmitrijs2005/imagekeeper/internal/server/repositories/grants"
	"github.com/dmitrijs2005/imagekeeper/internal/server/repositories/notifications"
	"github.com/dmitrijs2005/imagekeeper/internal/server/repositories/otps"
	"github.com/dmitrijs2005/imagekeeper/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/imagekeeper/internal/server/repositories/users"
)

var errNoSQL = errors.New("memstore: handle does not execute SQL")

type Store struct {
	mu   sync.Mutex
	txMu sync.Mutex

	users         map[string]*models.User
	refreshTokens map[string]*models.RefreshToken
	notifications map[string]*models.NotificationSettings
	assets        map[string]*models.Asset
	settings      map[string]*models.AssetSettings
	grants        map[string]*models.Grant
	otps          []*models.OTPChallenge
	requests      map[string]*models.AccessRequest
	audit         []*models.AuditEntry
}

func New() *Store {
	return &Store{
		users:         map[string]*models.User{},
		refreshTokens: map[string]*models.RefreshToken{},
		notifications: map[string]*models.NotificationSettings{},
		assets:        map[string]*models.Asset{},
		settings:      map[string]*models.AssetSettings{},
		grants:        map[string]*models.Grant{},
		requests:      map[string]*models.AccessRequest{},
	}
}

// txLog collects undo steps of one transaction.
type txLog struct {
	undo []func()
}

// handle satisfies dbx.DBTX so memstore repositories can be vended by the
// same manager calls as the SQL ones. tx is nil outside transactions.
type handle struct {
	tx *txLog
}

func (handle) ExecContext(context.Context, string, ...any) (sql.Result, error) { return nil, errNoSQL }
func (handle) QueryContext(context.Context, string, ...any) (*sql.Rows, error) { return nil, errNoSQL }
func (handle) QueryRowContext(context.Context, string, ...any) *sql.Row        { return nil }

// onUndo registers f to run if the surrounding transaction fails. Callers
// hold s.mu.
func (h handle) onUndo(f func()) {
	if h.tx != nil {
		h.tx.undo = append(h.tx.undo, f)
	}
}

func asHandle(db dbx.DBTX) handle {
	h, _ := db.(handle)
	return h
}

// Conn implements dbx.Runner.
func (s *Store) Conn() dbx.DBTX { return handle{} }

// InTx implements dbx.Runner.
func (s *Store) InTx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) (err error) {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	log := &txLog{}
	defer func() {
		if p := recover(); p != nil {
			s.rollback(log)
			panic(p)
		}
		if err != nil {
			s.rollback(log)
		}
	}()

	return fn(ctx, handle{tx: log})
}

func (s *Store) rollback(log *txLog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(log.undo) - 1; i >= 0; i-- {
		log.undo[i]()
	}
}

func (s *Store) RunMigrations(context.Context, *sql.DB) error { return nil }

func (s *Store) Users(db dbx.DBTX) users.Repository { return &userRepo{s: s, h: asHandle(db)} }

func (s *Store) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	return &refreshRepo{s: s, h: asHandle(db)}
}

func (s *Store) Notifications(db dbx.DBTX) notifications.Repository {
	return &notificationRepo{s: s, h: asHandle(db)}
}

func (s *Store) Assets(db dbx.DBTX) assets.Repository { return &assetRepo{s: s, h: asHandle(db)} }

func (s *Store) AssetSettings(db dbx.DBTX) assetsettings.Repository {
	return &settingsRepo{s: s, h: asHandle(db)}
}

func (s *Store) Grants(db dbx.DBTX) grants.Repository { return &grantRepo{s: s, h: asHandle(db)} }

func (s *Store) OTPs(db dbx.DBTX) otps.Repository { return &otpRepo{s: s, h: asHandle(db)} }

func (s *Store) AccessRequests(db dbx.DBTX) accessrequests.Repository {
	return &requestRepo{s: s, h: asHandle(db)}
}

func (s *Store) AuditLog(db dbx.DBTX) auditlog.Repository { return &auditRepo{s: s, h: asHandle(db)} }

// Package services contains server-side business logic. This file implements
// UserService, which handles owner registration, login, issuing/refreshing
// JWTs plus server-stored refresh tokens, and mail preferences.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/imagekeeper/internal/common"
	"github.com/dmitrijs2005/imagekeeper/internal/cryptox"
	"github.com/dmitrijs2005/imagekeeper/internal/dbx"
	"github.com/dmitrijs2005/imagekeeper/internal/server/auth"
	"github.com/dmitrijs2005/imagekeeper/internal/server/config"
	"github.com/dmitrijs2005/imagekeeper/internal/server/models"
	"github.com/dmitrijs2005/imagekeeper/internal/server/repositories/repomanager"
)

const minOwnerPasswordLen = 8

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// UserService provides owner account operations:
// - Register: create owners
// - Login: verify credentials and mint tokens
// - RefreshToken: rotate refresh tokens and mint new access tokens
type UserService struct {
	runner                       dbx.Runner
	repomanager                  repomanager.RepositoryManager
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(r dbx.Runner, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		runner:                       r,
		repomanager:                  m,
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}
}

// RefreshToken validates a refresh token, rotates it transactionally, and
// returns a fresh TokenPair. Expired tokens yield ErrRefreshTokenExpired.
func (s *UserService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	repo := s.repomanager.RefreshTokens(s.runner.Conn())

	token, err := repo.Find(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error searching refresh token: %w", err)
	}
	if token.Expired(time.Now()) {
		return nil, common.ErrRefreshTokenExpired
	}

	var pair *TokenPair
	if err := s.runner.InTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.RefreshTokens(tx).Delete(ctx, refreshToken); err != nil {
			return fmt.Errorf("error deleting refresh token: %w", err)
		}
		var genErr error
		pair, genErr = s.generateTokenPair(ctx, token.UserID, tx)
		return genErr
	}); err != nil {
		return nil, err
	}
	return pair, nil
}

// Register creates a new owner. The password is stored as an argon2id hash.
func (s *UserService) Register(ctx context.Context, email, password string) (*models.User, error) {
	email = common.NormalizeEmail(email)
	if email == "" || len(password) < minOwnerPasswordLen {
		return nil, fmt.Errorf("%w: email and a password of at least %d characters are required", common.ErrValidation, minOwnerPasswordLen)
	}

	user := &models.User{Email: email, PasswordHash: cryptox.HashPassword(password)}
	u, err := s.repomanager.Users(s.runner.Conn()).Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Login verifies the password and, on success, returns a new TokenPair.
func (s *UserService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	user, err := s.repomanager.Users(s.runner.Conn()).GetByEmail(ctx, common.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}
	if !cryptox.CheckPassword(user.PasswordHash, password) {
		return nil, common.ErrorUnauthorized
	}
	return s.generateTokenPair(ctx, user.ID, s.runner.Conn())
}

// NotificationSettings returns the owner's mail preferences, defaults if
// never saved.
func (s *UserService) NotificationSettings(ctx context.Context, userID string) (*models.NotificationSettings, error) {
	return loadNotificationSettings(ctx, s.repomanager, s.runner.Conn(), userID)
}

func (s *UserService) UpdateNotificationSettings(ctx context.Context, n *models.NotificationSettings) error {
	return s.repomanager.Notifications(s.runner.Conn()).Upsert(ctx, n)
}

func loadNotificationSettings(ctx context.Context, m repomanager.RepositoryManager, db dbx.DBTX, userID string) (*models.NotificationSettings, error) {
	n, err := m.Notifications(db).Get(ctx, userID)
	if errors.Is(err, common.ErrorNotFound) {
		return models.DefaultNotificationSettings(userID), nil
	}
	return n, err
}

// --- helpers below ---

func (s *UserService) generateAccessToken(userID string) (string, error) {
	return auth.GenerateToken(userID, s.jwtSecret, s.accessTokenValidityDuration)
}

func (s *UserService) generateRefreshToken() (string, error) {
	return common.MakeRandHexString(32)
}

func (s *UserService) generateTokenPair(ctx context.Context, userID string, tx dbx.DBTX) (*TokenPair, error) {
	access, err := s.generateAccessToken(userID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := s.generateRefreshToken()
	if err != nil {
		return nil, common.ErrorInternal
	}
	now := time.Now()
	repo := s.repomanager.RefreshTokens(tx)
	if _, err := repo.DeleteExpired(ctx, userID, now); err != nil {
		return nil, common.ErrorInternal
	}
	if err := repo.Create(ctx, userID, refresh, now.Add(s.refreshTokenValidityDuration)); err != nil {
		return nil, common.ErrorInternal
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

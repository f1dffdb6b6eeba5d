// Package common defines shared constants and sentinel errors used across
// server, client and codec layers of ImageKeeper. Callers should use errors.Is
// to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal      = errors.New("internal error")
	ErrorUnauthorized  = errors.New("unauthorized")
	ErrVersionConflict = errors.New("version conflict")
	ErrValidation      = errors.New("validation error")
	ErrAlreadyExists   = errors.New("already exists")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")

	// Codec errors.
	ErrMalformedCiphertext = errors.New("malformed ciphertext")
	ErrIntegrity           = errors.New("ciphertext integrity check failed")
	ErrCapacityExceeded    = errors.New("message exceeds image capacity")
	ErrUnsupportedAlgo     = errors.New("unsupported cipher algorithm")

	// Access-grant errors.
	ErrGrantExhausted     = errors.New("access grant is no longer valid")
	ErrEmailNotAuthorized = errors.New("email not authorized")
	ErrInvalidOTP         = errors.New("invalid or expired verification code")
	ErrPasswordMismatch   = errors.New("invalid password")
	ErrRequestPending     = errors.New("access request already pending")

	// Pipeline errors.
	ErrMetadataStage  = errors.New("metadata stage failed")
	ErrRenderingStage = errors.New("rendering stage failed")
)

// Package common defines shared constants and sentinel errors used across
// client and server layers of ClientPortal. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal      = errors.New("internal error")
	ErrorUnauthorized  = errors.New("unauthorized")
	ErrorAlreadyExists = errors.New("already exists")

	// Onboarding errors.
	ErrorAlreadyOnboarded = errors.New("already onboarded")
	ErrorNotOnboarded     = errors.New("not onboarded")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")

	// Backend reachability (client side).
	ErrorUnavailable = errors.New("backend unavailable")
)

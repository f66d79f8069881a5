// Copyright 2026 Parasautohuolto.fi
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/parasautohuolto/directory-service/internal/logging"
	"github.com/parasautohuolto/directory-service/internal/monitoring"
	"github.com/parasautohuolto/directory-service/internal/tracing"
	"github.com/parasautohuolto/directory-service/internal/types"
)

const tokenIssuer = "directory-service"

// SessionClaims is the payload of a session JWT. Subject carries the
// identity id.
type SessionClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// SessionManager issues and verifies first-party HS256 session tokens.
type SessionManager struct {
	secret   []byte
	lifetime time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewSessionManager(secret string, lifetime time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *SessionManager {
	m := new(SessionManager)

	m.secret = []byte(secret)
	m.lifetime = lifetime
	m.tracer = tracer
	m.monitor = monitor
	m.logger = logger

	return m
}

func (m *SessionManager) Issue(ctx context.Context, identity *types.Identity) (string, error) {
	_, span := m.tracer.Start(ctx, "authentication.SessionManager.Issue")
	defer span.End()

	now := time.Now()
	claims := SessionClaims{
		Email: identity.Email,
		Role:  identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID,
			ID:        uuid.NewString(),
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.lifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, nil
}

func (m *SessionManager) Verify(ctx context.Context, rawToken string) (*types.Principal, string, time.Time, error) {
	_, span := m.tracer.Start(ctx, "authentication.SessionManager.Verify")
	defer span.End()

	token, err := jwt.ParseWithClaims(rawToken, &SessionClaims{},
		func(token *jwt.Token) (any, error) {
			// Reject anything but HMAC to rule out algorithm confusion.
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secret, nil
		},
		jwt.WithIssuer(tokenIssuer),
	)
	if err != nil {
		return nil, "", time.Time{}, fmt.Errorf("failed to parse session token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, "", time.Time{}, fmt.Errorf("invalid session claims")
	}

	principal := &types.Principal{
		ID:    claims.Subject,
		Email: claims.Email,
		Role:  claims.Role,
	}

	return principal, claims.ID, claims.ExpiresAt.Time, nil
}

// NewLoginToken returns a fresh unguessable one-time token.
func NewLoginToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate login token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

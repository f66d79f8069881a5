// Copyright 2026 Parasautohuolto.fi
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/parasautohuolto/directory-service/internal/logging"
	"github.com/parasautohuolto/directory-service/internal/monitoring"
	"github.com/parasautohuolto/directory-service/internal/tracing"
)

// ErrInvalidLoginToken covers unknown, expired and already-used login tokens.
// Callers cannot distinguish these, by design.
var ErrInvalidLoginToken = errors.New("invalid login token")

const (
	loginTokenPrefix = "magiclink:"
	revokedPrefix    = "revoked:"
)

// Store keeps one-time login tokens and revoked session ids in redis. The
// TTL enforces expiry and GETDEL enforces single use.
type Store struct {
	client *redis.Client

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewStore(client *redis.Client, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Store {
	s := new(Store)

	s.client = client
	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}

func (s *Store) SaveLoginToken(ctx context.Context, token, email string, ttl time.Duration) error {
	ctx, span := s.tracer.Start(ctx, "authentication.Store.SaveLoginToken")
	defer span.End()

	if err := s.client.Set(ctx, loginTokenPrefix+token, email, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save login token: %w", err)
	}

	return nil
}

func (s *Store) ClaimLoginToken(ctx context.Context, token string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "authentication.Store.ClaimLoginToken")
	defer span.End()

	email, err := s.client.GetDel(ctx, loginTokenPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrInvalidLoginToken
		}
		return "", fmt.Errorf("failed to claim login token: %w", err)
	}

	return email, nil
}

func (s *Store) RevokeSession(ctx context.Context, jti string, ttl time.Duration) error {
	ctx, span := s.tracer.Start(ctx, "authentication.Store.RevokeSession")
	defer span.End()

	// Keep the entry only until the token would expire on its own.
	if ttl <= 0 {
		return nil
	}

	if err := s.client.Set(ctx, revokedPrefix+jti, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	return nil
}

func (s *Store) SessionRevoked(ctx context.Context, jti string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "authentication.Store.SessionRevoked")
	defer span.End()

	n, err := s.client.Exists(ctx, revokedPrefix+jti).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check session revocation: %w", err)
	}

	return n > 0, nil
}

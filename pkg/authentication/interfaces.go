// Copyright 2026 Parasautohuolto.fi
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"time"

	"github.com/parasautohuolto/directory-service/internal/types"
)

// IdentityResolverInterface resolves the identity backing an email address,
// creating it on first sign-in. Implemented by pkg/identities.
type IdentityResolverInterface interface {
	Resolve(ctx context.Context, email string) (*types.Identity, error)
}

// TokenStoreInterface holds one-time login tokens and the session revocation
// list. Implemented by the redis-backed Store.
type TokenStoreInterface interface {
	SaveLoginToken(ctx context.Context, token, email string, ttl time.Duration) error
	// ClaimLoginToken atomically consumes the token, returning the email it
	// was issued for. Unknown, expired and reused tokens are uniformly
	// ErrInvalidLoginToken.
	ClaimLoginToken(ctx context.Context, token string) (string, error)
	RevokeSession(ctx context.Context, jti string, ttl time.Duration) error
	SessionRevoked(ctx context.Context, jti string) (bool, error)
}

// SessionVerifierInterface verifies a raw session token and returns the
// principal it represents plus the token's id and expiry.
type SessionVerifierInterface interface {
	Verify(ctx context.Context, rawToken string) (*types.Principal, string, time.Time, error)
}

type MailerInterface interface {
	Send(ctx context.Context, to, subject, body string) error
}

type ServiceInterface interface {
	StartSignIn(ctx context.Context, email string) error
	CompleteSignIn(ctx context.Context, loginToken string) (string, *types.Identity, error)
	SignOut(ctx context.Context, principal *types.Principal, jti string, expiry time.Time) error
}

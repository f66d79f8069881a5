// Copyright 2026 Parasautohuolto.fi
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"testing"
	"time"

	"github.com/parasautohuolto/directory-service/internal/logging"
	"github.com/parasautohuolto/directory-service/internal/monitoring"
	"github.com/parasautohuolto/directory-service/internal/tracing"
	"github.com/parasautohuolto/directory-service/internal/types"
)

func newSessionManager(secret string, lifetime time.Duration) *SessionManager {
	return NewSessionManager(
		secret,
		lifetime,
		tracing.NewTracer(tracing.NewNoopConfig()),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
}

func TestSessionManager_IssueAndVerify(t *testing.T) {
	manager := newSessionManager("secret-a", time.Hour)

	identity := &types.Identity{ID: "id-1", Email: "user@example.com", Role: types.RoleAdmin}

	token, err := manager.Issue(context.Background(), identity)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	principal, jti, expiry, err := manager.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if principal.ID != identity.ID || principal.Email != identity.Email || principal.Role != identity.Role {
		t.Errorf("unexpected principal: %+v", principal)
	}
	if jti == "" {
		t.Error("expected a token id")
	}
	if remaining := time.Until(expiry); remaining < 59*time.Minute || remaining > time.Hour {
		t.Errorf("unexpected expiry: %v", expiry)
	}
}

func TestSessionManager_VerifyRejectsWrongSecret(t *testing.T) {
	token, err := newSessionManager("secret-a", time.Hour).Issue(context.Background(), &types.Identity{
		ID:    "id-1",
		Email: "user@example.com",
		Role:  types.RoleViewer,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, _, err := newSessionManager("secret-b", time.Hour).Verify(context.Background(), token); err == nil {
		t.Error("expected verification to fail with a different secret")
	}
}

func TestSessionManager_VerifyRejectsExpired(t *testing.T) {
	manager := newSessionManager("secret-a", -time.Minute)

	token, err := manager.Issue(context.Background(), &types.Identity{
		ID:    "id-1",
		Email: "user@example.com",
		Role:  types.RoleViewer,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, _, err := manager.Verify(context.Background(), token); err == nil {
		t.Error("expected verification to fail for an expired token")
	}
}

func TestNewLoginToken(t *testing.T) {
	a, err := NewLoginToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := NewLoginToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a == b {
		t.Error("expected distinct tokens")
	}
	if len(a) < 32 {
		t.Errorf("token is too short: %d chars", len(a))
	}
}

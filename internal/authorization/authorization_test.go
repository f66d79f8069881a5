// Copyright 2026 Parasautohuolto.fi
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"testing"

	"github.com/parasautohuolto/directory-service/internal/logging"
	"github.com/parasautohuolto/directory-service/internal/monitoring"
	"github.com/parasautohuolto/directory-service/internal/tracing"
	"github.com/parasautohuolto/directory-service/internal/types"
)

func newTestAuthorizer() *Authorizer {
	return NewAuthorizer(
		tracing.NewTracer(tracing.NewNoopConfig()),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
}

func TestCheckAdmin(t *testing.T) {
	testCases := []struct {
		name      string
		principal *types.Principal
		denied    bool
	}{
		{
			name:      "admin passes",
			principal: &types.Principal{ID: "u1", Role: types.RoleAdmin},
		},
		{
			name:      "editor is denied",
			principal: &types.Principal{ID: "u2", Role: types.RoleEditor},
			denied:    true,
		},
		{
			name:      "viewer is denied",
			principal: &types.Principal{ID: "u3", Role: types.RoleViewer},
			denied:    true,
		},
		{
			name:   "nil principal is denied",
			denied: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := newTestAuthorizer().CheckAdmin(context.Background(), tc.principal, PolicyInvitationsCreate)

			if tc.denied && !errors.Is(err, ErrDenied) {
				t.Errorf("expected ErrDenied, got %v", err)
			}
			if !tc.denied && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestCheckNoteAccess(t *testing.T) {
	testCases := []struct {
		name      string
		principal *types.Principal
		authorID  string
		denied    bool
	}{
		{
			name:      "author passes",
			principal: &types.Principal{ID: "u1", Role: types.RoleViewer},
			authorID:  "u1",
		},
		{
			name:      "admin passes on another author's note",
			principal: &types.Principal{ID: "u2", Role: types.RoleAdmin},
			authorID:  "u1",
		},
		{
			name:      "non-author non-admin is denied",
			principal: &types.Principal{ID: "u3", Role: types.RoleEditor},
			authorID:  "u1",
			denied:    true,
		},
		{
			name:     "nil principal is denied",
			authorID: "u1",
			denied:   true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := newTestAuthorizer().CheckNoteAccess(context.Background(), tc.principal, tc.authorID)

			if tc.denied && !errors.Is(err, ErrDenied) {
				t.Errorf("expected ErrDenied, got %v", err)
			}
			if !tc.denied && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

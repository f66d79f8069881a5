// Copyright 2026 Parasautohuolto.fi
// SPDX-License-Identifier: AGPL-3.0

package identities

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/parasautohuolto/directory-service/internal/storage"
	"github.com/parasautohuolto/directory-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package identities -destination ./mock_identities.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package identities -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package identities -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package identities -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func TestService_ResolveExistingIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockTx := NewMockTxRunnerInterface(ctrl)
	mockAuthz := NewMockAuthorizerInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	s := NewService(mockStorage, mockTx, mockAuthz, mockTracer, mockMonitor, mockLogger)

	existing := &types.Identity{ID: "id-1", Email: "user@example.com", Role: types.RoleEditor}

	mockTracer.EXPECT().Start(gomock.Any(), "identities.Service.Resolve").Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockStorage.EXPECT().GetIdentityByEmail(gomock.Any(), "user@example.com").Return(existing, nil)

	identity, err := s.Resolve(context.Background(), "user@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if identity.ID != existing.ID || identity.Role != existing.Role {
		t.Errorf("expected existing identity back, got %+v", identity)
	}
}

func TestService_ResolveCreatesIdentity(t *testing.T) {
	email := "user@example.com"
	invitation := &types.Invitation{
		ID:        "inv-1",
		Email:     email,
		Role:      types.RoleEditor,
		InvitedBy: "admin-id",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	testCases := []struct {
		name         string
		setupMocks   func(*MockStorageInterface, *MockLoggerInterface, *MockSecurityLoggerInterface)
		expectedRole string
	}{
		{
			name: "first identity becomes admin",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetPendingInvitationByEmail(gomock.Any(), email, gomock.Any()).Return(nil, storage.ErrNotFound)
				mockStorage.EXPECT().CountIdentities(gomock.Any()).Return(int64(0), nil)
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedRole: types.RoleAdmin,
		},
		{
			name: "later identities default to viewer",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetPendingInvitationByEmail(gomock.Any(), email, gomock.Any()).Return(nil, storage.ErrNotFound)
				mockStorage.EXPECT().CountIdentities(gomock.Any()).Return(int64(3), nil)
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedRole: types.RoleViewer,
		},
		{
			name: "pending invitation decides the role and is consumed",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetPendingInvitationByEmail(gomock.Any(), email, gomock.Any()).Return(invitation, nil)
				mockStorage.EXPECT().ClaimInvitation(gomock.Any(), invitation.ID, gomock.Any()).Return(nil)
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().InvitationClaimed(email, types.RoleEditor)
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedRole: types.RoleEditor,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTx := NewMockTxRunnerInterface(ctrl)
			mockAuthz := NewMockAuthorizerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, mockTx, mockAuthz, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "identities.Service.Resolve").Return(context.Background(), trace.SpanFromContext(context.Background()))
			mockStorage.EXPECT().GetIdentityByEmail(gomock.Any(), email).Return(nil, storage.ErrNotFound)
			mockTx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
				func(ctx context.Context, fn func(context.Context) error) error {
					return fn(ctx)
				},
			)

			var inserted *types.Identity
			mockStorage.EXPECT().CreateIdentity(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, identity *types.Identity) (*types.Identity, error) {
					inserted = identity
					return identity, nil
				},
			)

			tc.setupMocks(mockStorage, mockLogger, mockSecurity)

			identity, err := s.Resolve(context.Background(), email)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if identity.Role != tc.expectedRole {
				t.Errorf("expected role %s, got %s", tc.expectedRole, identity.Role)
			}
			if inserted == nil {
				t.Fatal("expected an identity insert")
			}
			if inserted.Email != email {
				t.Errorf("expected email %s, got %s", email, inserted.Email)
			}
			if inserted.ID == "" {
				t.Error("expected a generated identity ID")
			}
			if tc.expectedRole == types.RoleEditor {
				if inserted.InvitedBy == nil || *inserted.InvitedBy != invitation.InvitedBy {
					t.Errorf("expected invited_by %s, got %v", invitation.InvitedBy, inserted.InvitedBy)
				}
				if inserted.InvitedAt == nil {
					t.Error("expected invited_at to be set")
				}
			}
		})
	}
}

func TestService_ResolveLostRace(t *testing.T) {
	email := "user@example.com"
	winner := &types.Identity{ID: "id-winner", Email: email, Role: types.RoleEditor}

	testCases := []struct {
		name       string
		setupMocks func(*MockStorageInterface)
	}{
		{
			name: "concurrent invitation claim",
			setupMocks: func(mockStorage *MockStorageInterface) {
				invitation := &types.Invitation{ID: "inv-1", Email: email, Role: types.RoleEditor, ExpiresAt: time.Now().Add(time.Hour)}
				mockStorage.EXPECT().GetPendingInvitationByEmail(gomock.Any(), email, gomock.Any()).Return(invitation, nil)
				mockStorage.EXPECT().ClaimInvitation(gomock.Any(), invitation.ID, gomock.Any()).Return(storage.ErrInvitationClaimed)
			},
		},
		{
			name: "concurrent identity insert",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetPendingInvitationByEmail(gomock.Any(), email, gomock.Any()).Return(nil, storage.ErrNotFound)
				mockStorage.EXPECT().CountIdentities(gomock.Any()).Return(int64(1), nil)
				mockStorage.EXPECT().CreateIdentity(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTx := NewMockTxRunnerInterface(ctrl)
			mockAuthz := NewMockAuthorizerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, mockTx, mockAuthz, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "identities.Service.Resolve").Return(context.Background(), trace.SpanFromContext(context.Background()))
			mockStorage.EXPECT().GetIdentityByEmail(gomock.Any(), email).Return(nil, storage.ErrNotFound)
			mockTx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
				func(ctx context.Context, fn func(context.Context) error) error {
					return fn(ctx)
				},
			)
			tc.setupMocks(mockStorage)

			mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any())
			mockStorage.EXPECT().GetIdentityByEmail(gomock.Any(), email).Return(winner, nil)

			identity, err := s.Resolve(context.Background(), email)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if identity.ID != winner.ID {
				t.Errorf("expected the winner's identity, got %+v", identity)
			}
		})
	}
}

func TestService_ResolveStorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockTx := NewMockTxRunnerInterface(ctrl)
	mockAuthz := NewMockAuthorizerInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	s := NewService(mockStorage, mockTx, mockAuthz, mockTracer, mockMonitor, mockLogger)

	dbErr := errors.New("db error")

	mockTracer.EXPECT().Start(gomock.Any(), "identities.Service.Resolve").Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockStorage.EXPECT().GetIdentityByEmail(gomock.Any(), "user@example.com").Return(nil, storage.ErrNotFound)
	mockTx.EXPECT().WithTx(gomock.Any(), gomock.Any()).Return(dbErr)

	_, err := s.Resolve(context.Background(), "user@example.com")
	if !errors.Is(err, dbErr) {
		t.Errorf("expected error %v, got %v", dbErr, err)
	}
}

func TestService_List(t *testing.T) {
	admin := &types.Principal{ID: "admin-id", Email: "admin@example.com", Role: types.RoleAdmin}
	viewer := &types.Principal{ID: "viewer-id", Email: "viewer@example.com", Role: types.RoleViewer}
	expected := []*types.Identity{
		{ID: "id-1", Email: "a@example.com", Role: types.RoleAdmin},
		{ID: "id-2", Email: "b@example.com", Role: types.RoleViewer},
	}

	testCases := []struct {
		name        string
		principal   *types.Principal
		setupMocks  func(*MockStorageInterface, *MockAuthorizerInterface)
		expectedLen int
		expectedErr error
	}{
		{
			name:      "admin lists identities",
			principal: admin,
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface) {
				mockAuthz.EXPECT().CheckAdmin(gomock.Any(), admin, gomock.Any()).Return(nil)
				mockStorage.EXPECT().ListIdentities(gomock.Any()).Return(expected, nil)
			},
			expectedLen: 2,
		},
		{
			name:      "non-admin is denied",
			principal: viewer,
			setupMocks: func(_ *MockStorageInterface, mockAuthz *MockAuthorizerInterface) {
				mockAuthz.EXPECT().CheckAdmin(gomock.Any(), viewer, gomock.Any()).Return(errAccessDenied)
			},
			expectedErr: errAccessDenied,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTx := NewMockTxRunnerInterface(ctrl)
			mockAuthz := NewMockAuthorizerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, mockTx, mockAuthz, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "identities.Service.List").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockAuthz)

			identities, err := s.List(context.Background(), tc.principal)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(identities) != tc.expectedLen {
				t.Errorf("expected %d identities, got %d", tc.expectedLen, len(identities))
			}
		})
	}
}

var errAccessDenied = errors.New("access denied")

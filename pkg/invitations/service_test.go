// Copyright 2026 Parasautohuolto.fi
// SPDX-License-Identifier: AGPL-3.0

package invitations

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

//go:generate mockgen -build_flags=--mod=mod -package invitations -destination ./mock_invitations.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package invitations -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package invitations -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package invitations -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

const testBaseURL = "http://localhost:8080"

func TestService_Create(t *testing.T) {
	admin := &types.Principal{ID: "admin-id", Email: "admin@example.com", Role: types.RoleAdmin}
	viewer := &types.Principal{ID: "viewer-id", Email: "viewer@example.com", Role: types.RoleViewer}
	denied := errors.New("access denied")

	testCases := []struct {
		name        string
		principal   *types.Principal
		setupMocks  func(*MockStorageInterface, *MockAuthorizerInterface, *MockMailerInterface, *MockLoggerInterface, *MockSecurityLoggerInterface)
		expectedErr error
	}{
		{
			name:      "admin creates invitation and mail is sent",
			principal: admin,
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockMailer *MockMailerInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockAuthz.EXPECT().CheckAdmin(gomock.Any(), admin, gomock.Any()).Return(nil)
				mockStorage.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, invitation *types.Invitation) (*types.Invitation, error) {
						if invitation.Token == "" {
							t.Error("expected a generated token")
						}
						if invitation.InvitedBy != admin.ID {
							t.Errorf("expected invited_by %s, got %s", admin.ID, invitation.InvitedBy)
						}
						if !invitation.ExpiresAt.After(time.Now()) {
							t.Error("expected a future expiry")
						}
						return invitation, nil
					},
				)
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().InvitationIssued("new@example.com", types.RoleEditor)
				mockMailer.EXPECT().Send(gomock.Any(), "new@example.com", gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:      "mail failure does not fail the invitation",
			principal: admin,
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockMailer *MockMailerInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockAuthz.EXPECT().CheckAdmin(gomock.Any(), admin, gomock.Any()).Return(nil)
				mockStorage.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, invitation *types.Invitation) (*types.Invitation, error) {
						return invitation, nil
					},
				)
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().InvitationIssued("new@example.com", types.RoleEditor)
				mockMailer.EXPECT().Send(gomock.Any(), "new@example.com", gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))
				mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any(), gomock.Any())
			},
		},
		{
			name:      "non-admin is denied",
			principal: viewer,
			setupMocks: func(_ *MockStorageInterface, mockAuthz *MockAuthorizerInterface, _ *MockMailerInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				mockAuthz.EXPECT().CheckAdmin(gomock.Any(), viewer, gomock.Any()).Return(denied)
			},
			expectedErr: denied,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockAuthz := NewMockAuthorizerInterface(ctrl)
			mockMailer := NewMockMailerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, mockAuthz, mockMailer, testBaseURL, 168*time.Hour, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "invitations.Service.Create").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockAuthz, mockMailer, mockLogger, mockSecurity)

			invitation, err := s.Create(context.Background(), tc.principal, "new@example.com", types.RoleEditor)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if invitation.Email != "new@example.com" || invitation.Role != types.RoleEditor {
				t.Errorf("unexpected invitation: %+v", invitation)
			}
		})
	}
}

func TestService_CreateRejectsDisallowedRole(t *testing.T) {
	admin := &types.Principal{ID: "admin-id", Email: "admin@example.com", Role: types.RoleAdmin}

	for _, role := range []string{types.RoleAdmin, "owner", ""} {
		t.Run("role "+role, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockAuthz := NewMockAuthorizerInterface(ctrl)
			mockMailer := NewMockMailerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, mockAuthz, mockMailer, testBaseURL, 168*time.Hour, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "invitations.Service.Create").Return(context.Background(), trace.SpanFromContext(context.Background()))
			mockAuthz.EXPECT().CheckAdmin(gomock.Any(), admin, gomock.Any()).Return(nil)
			// No CreateInvitation, no mail: the role is rejected up front.

			invitation, err := s.Create(context.Background(), admin, "new@example.com", role)
			if !errors.Is(err, ErrInvalidRole) {
				t.Errorf("expected ErrInvalidRole, got %v", err)
			}
			if invitation != nil {
				t.Errorf("expected no invitation, got %+v", invitation)
			}
		})
	}
}

func TestService_Validate(t *testing.T) {
	now := time.Now()

	testCases := []struct {
		name          string
		setupMocks    func(*MockStorageInterface)
		expectedValid bool
	}{
		{
			name: "pending invitation is valid",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetInvitationByToken(gomock.Any(), "tok").Return(&types.Invitation{
					Email:     "new@example.com",
					Role:      types.RoleEditor,
					ExpiresAt: now.Add(time.Hour),
				}, nil)
			},
			expectedValid: true,
		},
		{
			name: "unknown token is invalid",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetInvitationByToken(gomock.Any(), "tok").Return(nil, storage.ErrNotFound)
			},
		},
		{
			name: "expired invitation is invalid",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetInvitationByToken(gomock.Any(), "tok").Return(&types.Invitation{
					Email:     "new@example.com",
					Role:      types.RoleEditor,
					ExpiresAt: now.Add(-time.Hour),
				}, nil)
			},
		},
		{
			name: "consumed invitation is invalid",
			setupMocks: func(mockStorage *MockStorageInterface) {
				usedAt := now.Add(-time.Minute)
				mockStorage.EXPECT().GetInvitationByToken(gomock.Any(), "tok").Return(&types.Invitation{
					Email:     "new@example.com",
					Role:      types.RoleEditor,
					ExpiresAt: now.Add(time.Hour),
					UsedAt:    &usedAt,
				}, nil)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockAuthz := NewMockAuthorizerInterface(ctrl)
			mockMailer := NewMockMailerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, mockAuthz, mockMailer, testBaseURL, 168*time.Hour, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "invitations.Service.Validate").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage)

			result, err := s.Validate(context.Background(), "tok")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if result.Valid != tc.expectedValid {
				t.Errorf("expected valid=%v, got %v", tc.expectedValid, result.Valid)
			}
			if !tc.expectedValid && (result.Email != "" || result.Role != "") {
				t.Errorf("invalid result must not leak invitation details, got %+v", result)
			}
			if tc.expectedValid && (result.Email != "new@example.com" || result.Role != types.RoleEditor) {
				t.Errorf("unexpected result: %+v", result)
			}
		})
	}
}

func TestService_List(t *testing.T) {
	admin := &types.Principal{ID: "admin-id", Role: types.RoleAdmin}
	expected := []*types.Invitation{
		{ID: "inv-2", Email: "b@example.com"},
		{ID: "inv-1", Email: "a@example.com"},
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockAuthz := NewMockAuthorizerInterface(ctrl)
	mockMailer := NewMockMailerInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	s := NewService(mockStorage, mockAuthz, mockMailer, testBaseURL, 168*time.Hour, mockTracer, mockMonitor, mockLogger)

	mockTracer.EXPECT().Start(gomock.Any(), "invitations.Service.List").Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockAuthz.EXPECT().CheckAdmin(gomock.Any(), admin, gomock.Any()).Return(nil)
	mockStorage.EXPECT().ListInvitations(gomock.Any()).Return(expected, nil)

	invitations, err := s.List(context.Background(), admin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(invitations) != 2 {
		t.Errorf("expected 2 invitations, got %d", len(invitations))
	}
}

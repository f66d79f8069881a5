// Copyright 2026 Parasautohuolto.fi
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/parasautohuolto/directory-service/internal/logging"
	"github.com/parasautohuolto/directory-service/internal/monitoring"
	"github.com/parasautohuolto/directory-service/internal/tracing"
	"github.com/parasautohuolto/directory-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_authentication.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

const (
	testBaseURL = "https://directory.parasautohuolto.fi"
	testSecret  = "test-session-secret"
)

func newTestSessionManager() *SessionManager {
	return NewSessionManager(
		testSecret,
		time.Hour,
		tracing.NewTracer(tracing.NewNoopConfig()),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
}

func TestService_StartSignIn(t *testing.T) {
	email := "user@example.com"
	errSMTP := errors.New("smtp refused")

	testCases := []struct {
		name          string
		setupMocks    func(*MockTokenStoreInterface, *MockMailerInterface, *MockLoggerInterface)
		expectErr     bool
		expectedCause error
	}{
		{
			name: "link saved and mailed",
			setupMocks: func(mockStore *MockTokenStoreInterface, mockMailer *MockMailerInterface, _ *MockLoggerInterface) {
				var savedToken string
				mockStore.EXPECT().SaveLoginToken(gomock.Any(), gomock.Any(), email, 15*time.Minute).DoAndReturn(
					func(ctx context.Context, token, email string, ttl time.Duration) error {
						savedToken = token
						return nil
					},
				)
				mockMailer.EXPECT().Send(gomock.Any(), email, "Kirjautumislinkki", gomock.Any()).DoAndReturn(
					func(ctx context.Context, to, subject, body string) error {
						if !strings.Contains(body, testBaseURL+"/api/v0/auth/callback?token="+savedToken) {
							t.Errorf("mail body is missing the callback link: %q", body)
						}
						return nil
					},
				)
			},
		},
		{
			name: "store failure aborts before mailing",
			setupMocks: func(mockStore *MockTokenStoreInterface, _ *MockMailerInterface, _ *MockLoggerInterface) {
				mockStore.EXPECT().SaveLoginToken(gomock.Any(), gomock.Any(), email, 15*time.Minute).Return(errors.New("redis down"))
			},
			expectErr: true,
		},
		{
			name: "mail failure is reported with its cause",
			setupMocks: func(mockStore *MockTokenStoreInterface, mockMailer *MockMailerInterface, mockLogger *MockLoggerInterface) {
				mockStore.EXPECT().SaveLoginToken(gomock.Any(), gomock.Any(), email, 15*time.Minute).Return(nil)
				mockMailer.EXPECT().Send(gomock.Any(), email, "Kirjautumislinkki", gomock.Any()).Return(errSMTP)
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectErr:     true,
			expectedCause: errSMTP,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := NewMockTokenStoreInterface(ctrl)
			mockResolver := NewMockIdentityResolverInterface(ctrl)
			mockMailer := NewMockMailerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "authentication.Service.StartSignIn").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStore, mockMailer, mockLogger)

			s := NewService(mockStore, newTestSessionManager(), mockResolver, mockMailer, testBaseURL, 15*time.Minute, mockTracer, mockMonitor, mockLogger)

			err := s.StartSignIn(context.Background(), email)

			if tc.expectErr && err == nil {
				t.Error("expected an error")
			}
			if !tc.expectErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tc.expectedCause != nil && !errors.Is(err, tc.expectedCause) {
				t.Errorf("expected error to wrap %v, got %v", tc.expectedCause, err)
			}
		})
	}
}

func TestService_CompleteSignIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockTokenStoreInterface(ctrl)
	mockResolver := NewMockIdentityResolverInterface(ctrl)
	mockMailer := NewMockMailerInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	identity := &types.Identity{ID: "id-1", Email: "user@example.com", Role: types.RoleEditor}

	mockTracer.EXPECT().Start(gomock.Any(), "authentication.Service.CompleteSignIn").Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockStore.EXPECT().ClaimLoginToken(gomock.Any(), "one-time-token").Return("user@example.com", nil)
	mockResolver.EXPECT().Resolve(gomock.Any(), "user@example.com").Return(identity, nil)

	manager := newTestSessionManager()
	s := NewService(mockStore, manager, mockResolver, mockMailer, testBaseURL, 15*time.Minute, mockTracer, mockMonitor, mockLogger)

	session, got, err := s.CompleteSignIn(context.Background(), "one-time-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != identity.ID {
		t.Errorf("expected identity %q, got %q", identity.ID, got.ID)
	}

	principal, jti, expiry, err := manager.Verify(context.Background(), session)
	if err != nil {
		t.Fatalf("issued session does not verify: %v", err)
	}
	if principal.ID != identity.ID || principal.Email != identity.Email || principal.Role != identity.Role {
		t.Errorf("unexpected principal: %+v", principal)
	}
	if jti == "" {
		t.Error("expected a token id")
	}
	if !expiry.After(time.Now()) {
		t.Errorf("expected a future expiry, got %v", expiry)
	}
}

func TestService_CompleteSignInRejectedToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockTokenStoreInterface(ctrl)
	mockResolver := NewMockIdentityResolverInterface(ctrl)
	mockMailer := NewMockMailerInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockSecurity := NewMockSecurityLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), "authentication.Service.CompleteSignIn").Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockStore.EXPECT().ClaimLoginToken(gomock.Any(), "stale-token").Return("", ErrInvalidLoginToken)
	mockLogger.EXPECT().Security().Return(mockSecurity)
	mockSecurity.EXPECT().AuthnFailure(gomock.Any())

	s := NewService(mockStore, newTestSessionManager(), mockResolver, mockMailer, testBaseURL, 15*time.Minute, mockTracer, mockMonitor, mockLogger)

	_, _, err := s.CompleteSignIn(context.Background(), "stale-token")
	if !errors.Is(err, ErrInvalidLoginToken) {
		t.Errorf("expected ErrInvalidLoginToken, got %v", err)
	}
}

func TestService_SignOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockTokenStoreInterface(ctrl)
	mockResolver := NewMockIdentityResolverInterface(ctrl)
	mockMailer := NewMockMailerInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockSecurity := NewMockSecurityLoggerInterface(ctrl)

	principal := &types.Principal{ID: "id-1", Email: "user@example.com", Role: types.RoleViewer}
	expiry := time.Now().Add(30 * time.Minute)

	mockTracer.EXPECT().Start(gomock.Any(), "authentication.Service.SignOut").Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockStore.EXPECT().RevokeSession(gomock.Any(), "jti-1", gomock.Any()).DoAndReturn(
		func(ctx context.Context, jti string, ttl time.Duration) error {
			if ttl <= 0 || ttl > 30*time.Minute {
				t.Errorf("expected ttl to match the remaining session lifetime, got %v", ttl)
			}
			return nil
		},
	)
	mockLogger.EXPECT().Security().Return(mockSecurity)
	mockSecurity.EXPECT().SessionRevoked("id-1")

	s := NewService(mockStore, newTestSessionManager(), mockResolver, mockMailer, testBaseURL, 15*time.Minute, mockTracer, mockMonitor, mockLogger)

	if err := s.SignOut(context.Background(), principal, "jti-1", expiry); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

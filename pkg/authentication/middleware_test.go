// Copyright 2026 Parasautohuolto.fi
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/parasautohuolto/directory-service/internal/types"
)

func TestMiddleware_Authenticate(t *testing.T) {
	principal := &types.Principal{ID: "id-1", Email: "user@example.com", Role: types.RoleEditor}
	expiry := time.Now().Add(time.Hour)

	testCases := []struct {
		name           string
		authHeader     string
		setupMocks     func(*MockSessionVerifierInterface, *MockTokenStoreInterface, *MockLoggerInterface)
		expectedStatus int
		expectNext     bool
	}{
		{
			name:       "valid session passes through",
			authHeader: "Bearer good-token",
			setupMocks: func(mockVerifier *MockSessionVerifierInterface, mockStore *MockTokenStoreInterface, _ *MockLoggerInterface) {
				mockVerifier.EXPECT().Verify(gomock.Any(), "good-token").Return(principal, "jti-1", expiry, nil)
				mockStore.EXPECT().SessionRevoked(gomock.Any(), "jti-1").Return(false, nil)
			},
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:           "missing authorization header",
			setupMocks:     func(*MockSessionVerifierInterface, *MockTokenStoreInterface, *MockLoggerInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "non-bearer authorization header",
			authHeader:     "Basic dXNlcjpwYXNz",
			setupMocks:     func(*MockSessionVerifierInterface, *MockTokenStoreInterface, *MockLoggerInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			authHeader: "Bearer bad-token",
			setupMocks: func(mockVerifier *MockSessionVerifierInterface, _ *MockTokenStoreInterface, mockLogger *MockLoggerInterface) {
				mockVerifier.EXPECT().Verify(gomock.Any(), "bad-token").Return(nil, "", time.Time{}, errors.New("failed to parse session token"))
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "revoked session",
			authHeader: "Bearer revoked-token",
			setupMocks: func(mockVerifier *MockSessionVerifierInterface, mockStore *MockTokenStoreInterface, _ *MockLoggerInterface) {
				mockVerifier.EXPECT().Verify(gomock.Any(), "revoked-token").Return(principal, "jti-1", expiry, nil)
				mockStore.EXPECT().SessionRevoked(gomock.Any(), "jti-1").Return(true, nil)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "revocation check failure",
			authHeader: "Bearer good-token",
			setupMocks: func(mockVerifier *MockSessionVerifierInterface, mockStore *MockTokenStoreInterface, mockLogger *MockLoggerInterface) {
				mockVerifier.EXPECT().Verify(gomock.Any(), "good-token").Return(principal, "jti-1", expiry, nil)
				mockStore.EXPECT().SessionRevoked(gomock.Any(), "jti-1").Return(false, errors.New("redis down"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockVerifier := NewMockSessionVerifierInterface(ctrl)
			mockStore := NewMockTokenStoreInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "authentication.Middleware.Authenticate").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockVerifier, mockStore, mockLogger)

			m := NewMiddleware(mockVerifier, mockStore, mockTracer, mockMonitor, mockLogger)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true

				got, ok := PrincipalFromContext(r.Context())
				if !ok || got.ID != principal.ID || got.Role != principal.Role {
					t.Errorf("expected principal in request context, got %+v", got)
				}

				meta, ok := SessionMetaFromContext(r.Context())
				if !ok || meta.JTI != "jti-1" || !meta.Expiry.Equal(expiry) {
					t.Errorf("expected session meta in request context, got %+v", meta)
				}
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v0/me", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			rec := httptest.NewRecorder()

			m.Authenticate()(next).ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d", tc.expectedStatus, rec.Code)
			}
			if nextCalled != tc.expectNext {
				t.Errorf("expected next called to be %v", tc.expectNext)
			}

			if tc.expectedStatus == http.StatusUnauthorized {
				var body map[string]interface{}
				if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
					t.Fatalf("failed to decode response body: %v", err)
				}
				if body["status"] != float64(http.StatusUnauthorized) {
					t.Errorf("expected status field %d in body, got %v", http.StatusUnauthorized, body["status"])
				}
			}
		})
	}
}

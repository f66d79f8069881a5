// Copyright 2026 Parasautohuolto.fi
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/parasautohuolto/directory-service/internal/logging"
	"github.com/parasautohuolto/directory-service/internal/monitoring"
	"github.com/parasautohuolto/directory-service/internal/tracing"
)

type sessionContextKey struct{}

var sessionMetaKey = sessionContextKey{}

// SessionMeta carries token bookkeeping needed by sign-out.
type SessionMeta struct {
	JTI    string
	Expiry time.Time
}

func withSessionMeta(ctx context.Context, meta SessionMeta) context.Context {
	return context.WithValue(ctx, sessionMetaKey, meta)
}

// SessionMetaFromContext returns the verified token's id and expiry.
func SessionMetaFromContext(ctx context.Context) (SessionMeta, bool) {
	meta, ok := ctx.Value(sessionMetaKey).(SessionMeta)
	return meta, ok
}

type Middleware struct {
	verifier SessionVerifierInterface
	store    TokenStoreInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(verifier SessionVerifierInterface, store TokenStoreInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		verifier: verifier,
		store:    store,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (m *Middleware) Authenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Authenticate")
			defer span.End()

			token, found := m.getBearerToken(r.Header)
			if !found {
				m.unauthorizedResponse(w, "missing authorization header")
				return
			}

			principal, jti, expiry, err := m.verifier.Verify(ctx, token)
			if err != nil {
				m.logger.Debugf("session verification failed: %v", err)
				m.unauthorizedResponse(w, "invalid token")
				return
			}

			revoked, err := m.store.SessionRevoked(ctx, jti)
			if err != nil {
				m.logger.Errorf("failed to check session revocation: %v", err)
				http.Error(w, "service unavailable", http.StatusServiceUnavailable)
				return
			}
			if revoked {
				m.unauthorizedResponse(w, "invalid token")
				return
			}

			ctx = WithPrincipal(ctx, principal)
			ctx = withSessionMeta(ctx, SessionMeta{JTI: jti, Expiry: expiry})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (m *Middleware) getBearerToken(headers http.Header) (string, bool) {
	bearer := headers.Get("Authorization")
	if bearer == "" {
		return "", false
	}

	// Only support "Bearer <token>" format (RFC 6750)
	if !strings.HasPrefix(bearer, "Bearer ") {
		return "", false
	}

	return strings.TrimPrefix(bearer, "Bearer "), true
}

func (m *Middleware) unauthorizedResponse(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  http.StatusUnauthorized,
		"message": message,
	}); err != nil {
		m.logger.Errorf("failed to encode unauthorized response: %v", err)
	}
}

// Copyright 2026 Parasautohuolto.fi
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

// SecurityLogger writes structured audit events on a dedicated named logger
// so they can be routed separately from application logs.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("event", "sys_startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("event", "sys_shutdown"))
}

func (s *SecurityLogger) AuthnFailure(detail string) {
	s.l.Warn("authentication failure",
		zap.String("event", "authn_fail"),
		zap.String("detail", detail),
	)
}

func (s *SecurityLogger) AuthzFailure(userID, policy string) {
	s.l.Warn("authorization failure",
		zap.String("event", "authz_fail"),
		zap.String("user_id", userID),
		zap.String("policy", policy),
	)
}

func (s *SecurityLogger) InvitationIssued(email, role string) {
	s.l.Info("invitation issued",
		zap.String("event", "invitation_issued"),
		zap.String("email", email),
		zap.String("role", role),
	)
}

func (s *SecurityLogger) InvitationClaimed(email, role string) {
	s.l.Info("invitation claimed",
		zap.String("event", "invitation_claimed"),
		zap.String("email", email),
		zap.String("role", role),
	)
}

func (s *SecurityLogger) SessionRevoked(userID string) {
	s.l.Info("session revoked",
		zap.String("event", "session_revoked"),
		zap.String("user_id", userID),
	)
}

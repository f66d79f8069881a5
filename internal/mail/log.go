// Copyright 2026 Parasautohuolto.fi
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"

	"github.com/parasautohuolto/directory-service/internal/logging"
)

// LogMailer writes mail to the application log instead of delivering it.
// Used when no SMTP relay is configured, e.g. local development.
type LogMailer struct {
	logger logging.LoggerInterface
}

func NewLogMailer(logger logging.LoggerInterface) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(ctx context.Context, to, subject, body string) error {
	m.logger.Infof("mail to %s: %s\n%s", to, subject, body)
	return nil
}

// Copyright 2026 Parasautohuolto.fi
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/parasautohuolto/directory-service/internal/logging"
	"github.com/parasautohuolto/directory-service/internal/monitoring"
	"github.com/parasautohuolto/directory-service/internal/tracing"
)

type Config struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

// SMTPMailer delivers mail over plain SMTP with optional AUTH. Delivery
// acceptance by the relay is all it can confirm, never receipt.
type SMTPMailer struct {
	config Config

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewSMTPMailer(config Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *SMTPMailer {
	m := new(SMTPMailer)

	m.config = config
	m.tracer = tracer
	m.monitor = monitor
	m.logger = logger

	return m
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	_, span := m.tracer.Start(ctx, "mail.SMTPMailer.Send")
	defer span.End()

	msg := strings.Join([]string{
		fmt.Sprintf("From: %s", m.config.From),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=utf-8",
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", m.config.Host, m.config.Port)

	var auth smtp.Auth
	if m.config.User != "" {
		auth = smtp.PlainAuth("", m.config.User, m.config.Pass, m.config.Host)
	}

	if err := smtp.SendMail(addr, auth, m.config.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}

	return nil
}

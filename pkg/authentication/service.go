// Copyright 2026 Parasautohuolto.fi
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"time"

	"github.com/parasautohuolto/directory-service/internal/logging"
	"github.com/parasautohuolto/directory-service/internal/monitoring"
	"github.com/parasautohuolto/directory-service/internal/tracing"
	"github.com/parasautohuolto/directory-service/internal/types"
)

type Service struct {
	store    TokenStoreInterface
	sessions *SessionManager
	resolver IdentityResolverInterface
	mailer   MailerInterface

	baseURL            string
	loginTokenLifetime time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	store TokenStoreInterface,
	sessions *SessionManager,
	resolver IdentityResolverInterface,
	mailer MailerInterface,
	baseURL string,
	loginTokenLifetime time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		store:              store,
		sessions:           sessions,
		resolver:           resolver,
		mailer:             mailer,
		baseURL:            baseURL,
		loginTokenLifetime: loginTokenLifetime,
		tracer:             tracer,
		monitor:            monitor,
		logger:             logger,
	}
}

// StartSignIn dispatches a one-time sign-in link to the given address. It
// reports whether the dispatch was accepted, never whether it was delivered.
func (s *Service) StartSignIn(ctx context.Context, email string) error {
	ctx, span := s.tracer.Start(ctx, "authentication.Service.StartSignIn")
	defer span.End()

	token, err := NewLoginToken()
	if err != nil {
		return err
	}

	if err := s.store.SaveLoginToken(ctx, token, email, s.loginTokenLifetime); err != nil {
		return err
	}

	link := fmt.Sprintf("%s/api/v0/auth/callback?token=%s", s.baseURL, token)
	body := fmt.Sprintf(
		"Kirjaudu sisään Parasautohuolto-palveluun:\n\n%s\n\nLinkki on voimassa %s ja toimii vain kerran.",
		link, s.loginTokenLifetime,
	)

	if err := s.mailer.Send(ctx, email, "Kirjautumislinkki", body); err != nil {
		s.logger.Errorf("failed to dispatch sign-in mail: %v", err)
		return fmt.Errorf("failed to dispatch sign-in link: %w", err)
	}

	return nil
}

// CompleteSignIn claims a one-time login token, resolves the identity behind
// the email it was issued for and issues a session token.
func (s *Service) CompleteSignIn(ctx context.Context, loginToken string) (string, *types.Identity, error) {
	ctx, span := s.tracer.Start(ctx, "authentication.Service.CompleteSignIn")
	defer span.End()

	email, err := s.store.ClaimLoginToken(ctx, loginToken)
	if err != nil {
		s.logger.Security().AuthnFailure("login token rejected")
		return "", nil, err
	}

	identity, err := s.resolver.Resolve(ctx, email)
	if err != nil {
		return "", nil, fmt.Errorf("failed to resolve identity: %w", err)
	}

	session, err := s.sessions.Issue(ctx, identity)
	if err != nil {
		return "", nil, err
	}

	return session, identity, nil
}

// SignOut revokes the current session; the token is rejected from here on
// even though it is still cryptographically valid.
func (s *Service) SignOut(ctx context.Context, principal *types.Principal, jti string, expiry time.Time) error {
	ctx, span := s.tracer.Start(ctx, "authentication.Service.SignOut")
	defer span.End()

	if err := s.store.RevokeSession(ctx, jti, time.Until(expiry)); err != nil {
		return err
	}

	s.logger.Security().SessionRevoked(principal.ID)
	return nil
}

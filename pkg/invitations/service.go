// Copyright 2026 Parasautohuolto.fi
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/parasautohuolto/directory-service/internal/authorization"
	"github.com/parasautohuolto/directory-service/internal/logging"
	"github.com/parasautohuolto/directory-service/internal/monitoring"
	"github.com/parasautohuolto/directory-service/internal/storage"
	"github.com/parasautohuolto/directory-service/internal/tracing"
	"github.com/parasautohuolto/directory-service/internal/types"
)

// ErrInvalidRole rejects invitation roles outside editor/viewer. Admin is
// never granted by invitation, only by the first-identity bootstrap.
var ErrInvalidRole = errors.New("invitation role must be editor or viewer")

type Service struct {
	storage StorageInterface
	authz   AuthorizerInterface
	mailer  MailerInterface

	baseURL  string
	lifetime time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	authz AuthorizerInterface,
	mailer MailerInterface,
	baseURL string,
	lifetime time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		authz:    authz,
		mailer:   mailer,
		baseURL:  baseURL,
		lifetime: lifetime,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// Create issues a single-use invitation pre-assigning a role to an email
// address. The invitation link is mailed out on a best effort basis; the
// caller gets the invitation back either way and can share the link manually.
func (s *Service) Create(ctx context.Context, principal *types.Principal, email, role string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.Create")
	defer span.End()

	if err := s.authz.CheckAdmin(ctx, principal, authorization.PolicyInvitationsCreate); err != nil {
		return nil, err
	}

	if role != types.RoleEditor && role != types.RoleViewer {
		return nil, ErrInvalidRole
	}

	token, err := newInvitationToken()
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invitation ID: %w", err)
	}

	invitation, err := s.storage.CreateInvitation(ctx, &types.Invitation{
		ID:        id.String(),
		Email:     email,
		Role:      role,
		Token:     token,
		InvitedBy: principal.ID,
		ExpiresAt: time.Now().Add(s.lifetime),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}

	s.logger.Security().InvitationIssued(email, role)

	link := fmt.Sprintf("%s/?invite=%s", s.baseURL, token)
	body := fmt.Sprintf(
		"Sinut on kutsuttu Parasautohuolto-palveluun roolilla %s.\n\nAloita tästä:\n\n%s\n\nKutsu on voimassa %s.",
		role, link, s.lifetime,
	)
	if err := s.mailer.Send(ctx, email, "Kutsu Parasautohuolto-palveluun", body); err != nil {
		s.logger.Warnf("failed to mail invitation to %s: %v", email, err)
	}

	return invitation, nil
}

func (s *Service) List(ctx context.Context, principal *types.Principal) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.List")
	defer span.End()

	if err := s.authz.CheckAdmin(ctx, principal, authorization.PolicyInvitationsList); err != nil {
		return nil, err
	}

	return s.storage.ListInvitations(ctx)
}

// Validate answers whether an invitation token is still redeemable. It never
// distinguishes unknown, expired and consumed tokens.
func (s *Service) Validate(ctx context.Context, token string) (*ValidationResult, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.Validate")
	defer span.End()

	invitation, err := s.storage.GetInvitationByToken(ctx, token)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return &ValidationResult{Valid: false}, nil
		}
		return nil, fmt.Errorf("failed to look up invitation: %w", err)
	}

	if !invitation.Pending(time.Now()) {
		return &ValidationResult{Valid: false}, nil
	}

	return &ValidationResult{
		Valid: true,
		Email: invitation.Email,
		Role:  invitation.Role,
	}, nil
}

func newInvitationToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate invitation token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Copyright 2026 Parasautohuolto.fi
// SPDX-License-Identifier: AGPL-3.0

package identities

import (
	"context"
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

type Service struct {
	storage StorageInterface
	tx      TxRunnerInterface
	authz   AuthorizerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tx TxRunnerInterface,
	authz AuthorizerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tx:      tx,
		authz:   authz,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// Resolve returns the identity for an authenticated email, creating it on
// first sign-in. The role is decided exactly once, at creation:
//
//  1. a pending invitation for the email wins and is atomically consumed,
//  2. otherwise the very first identity ever created becomes admin,
//  3. otherwise the role is viewer.
//
// Resolve is idempotent: once the identity exists every later call takes the
// fast path and performs no writes. Two concurrent calls for the same email
// are serialized by the conditional invitation claim and the unique email
// constraint; the loser re-reads the winner's row.
func (s *Service) Resolve(ctx context.Context, email string) (*types.Identity, error) {
	ctx, span := s.tracer.Start(ctx, "identities.Service.Resolve")
	defer span.End()

	identity, err := s.storage.GetIdentityByEmail(ctx, email)
	if err == nil {
		return identity, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up identity: %w", err)
	}

	var created *types.Identity
	var claimed *types.Invitation

	txErr := s.tx.WithTx(ctx, func(txCtx context.Context) error {
		now := time.Now()
		role := types.RoleViewer
		var invitedBy *string
		var invitedAt *time.Time

		invitation, err := s.storage.GetPendingInvitationByEmail(txCtx, email, now)
		switch {
		case err == nil:
			if err := s.storage.ClaimInvitation(txCtx, invitation.ID, now); err != nil {
				return err
			}
			role = invitation.Role
			invitedBy = &invitation.InvitedBy
			invitedAt = &now
			claimed = invitation

		case errors.Is(err, storage.ErrNotFound):
			count, err := s.storage.CountIdentities(txCtx)
			if err != nil {
				return err
			}
			if count == 0 {
				role = types.RoleAdmin
			}

		default:
			return err
		}

		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("failed to generate identity ID: %w", err)
		}

		created, err = s.storage.CreateIdentity(txCtx, &types.Identity{
			ID:        id.String(),
			Email:     email,
			Role:      role,
			InvitedBy: invitedBy,
			InvitedAt: invitedAt,
		})
		return err
	})

	if txErr != nil {
		// A concurrent Resolve for the same email may have claimed the
		// invitation or inserted the identity first. Either way the identity
		// now exists; fall back to reading it.
		if errors.Is(txErr, storage.ErrInvitationClaimed) || errors.Is(txErr, storage.ErrDuplicateKey) {
			s.logger.Debugf("lost identity-creation race for %s, re-reading", email)
			return s.storage.GetIdentityByEmail(ctx, email)
		}
		return nil, fmt.Errorf("failed to create identity: %w", txErr)
	}

	if claimed != nil {
		s.logger.Security().InvitationClaimed(claimed.Email, claimed.Role)
	}
	s.logger.Infof("created identity %s with role %s", created.ID, created.Role)

	return created, nil
}

func (s *Service) Get(ctx context.Context, id string) (*types.Identity, error) {
	ctx, span := s.tracer.Start(ctx, "identities.Service.Get")
	defer span.End()

	return s.storage.GetIdentity(ctx, id)
}

func (s *Service) List(ctx context.Context, principal *types.Principal) ([]*types.Identity, error) {
	ctx, span := s.tracer.Start(ctx, "identities.Service.List")
	defer span.End()

	if err := s.authz.CheckAdmin(ctx, principal, authorization.PolicyIdentitiesList); err != nil {
		return nil, err
	}

	return s.storage.ListIdentities(ctx)
}
